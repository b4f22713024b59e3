package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidPeriod   = errors.New("start must be strictly before end")
	ErrPeriodInPast    = errors.New("start cannot be in the past")
	ErrZeroPeriodBound = errors.New("start and end are required")
)

// Period is the half-open rental interval [start, end).
type Period struct {
	start time.Time
	end   time.Time
}

// NewPeriod validates the candidate interval against the reference instant.
// Equal start/end is rejected.
func NewPeriod(start, end, now time.Time) (Period, error) {
	if start.IsZero() || end.IsZero() {
		return Period{}, ErrZeroPeriodBound
	}
	if !start.Before(end) {
		return Period{}, ErrInvalidPeriod
	}
	if start.Before(now) {
		return Period{}, ErrPeriodInPast
	}
	return Period{start: start, end: end}, nil
}

// ReconstructPeriod rebuilds a persisted interval without admission checks.
func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

// Overlaps reports whether two half-open intervals intersect:
// p.start < o.end AND p.end > o.start. Touching boundaries do not overlap.
func (p Period) Overlaps(o Period) bool {
	return p.start.Before(o.end) && p.end.After(o.start)
}

// IsPast reports whether the interval ended strictly before now.
func (p Period) IsPast(now time.Time) bool {
	return p.end.Before(now)
}

func (p Period) String() string {
	return fmt.Sprintf("[%s,%s)", p.start.Format(time.RFC3339), p.end.Format(time.RFC3339))
}
