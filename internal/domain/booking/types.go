package booking

import "errors"

var ErrUnknownStateFilter = errors.New("unknown state filter")

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// StateFilter selects a temporal or status-based subset of a user's bookings.
type StateFilter string

const (
	FilterAll      StateFilter = "ALL"
	FilterCurrent  StateFilter = "CURRENT"
	FilterPast     StateFilter = "PAST"
	FilterFuture   StateFilter = "FUTURE"
	FilterWaiting  StateFilter = "WAITING"
	FilterRejected StateFilter = "REJECTED"
)

// ParseStateFilter accepts the wire token; the empty string means ALL,
// matching the gateway default.
func ParseStateFilter(raw string) (StateFilter, error) {
	if raw == "" {
		return FilterAll, nil
	}
	f := StateFilter(raw)
	switch f {
	case FilterAll, FilterCurrent, FilterPast, FilterFuture, FilterWaiting, FilterRejected:
		return f, nil
	default:
		return "", ErrUnknownStateFilter
	}
}

func (f StateFilter) String() string {
	return string(f)
}
