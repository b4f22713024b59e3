//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(24 * time.Hour)
	end := now.Add(48 * time.Hour)

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{name: "valid future interval", start: start, end: end},
		{name: "start equal to now is allowed", start: now, end: end},
		{name: "zero start", start: time.Time{}, end: end, errIs: booking.ErrZeroPeriodBound},
		{name: "zero end", start: start, end: time.Time{}, errIs: booking.ErrZeroPeriodBound},
		{name: "start equals end", start: start, end: start, errIs: booking.ErrInvalidPeriod},
		{name: "start after end", start: end, end: start, errIs: booking.ErrInvalidPeriod},
		{name: "start in the past", start: now.Add(-time.Hour), end: end, errIs: booking.ErrPeriodInPast},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := booking.NewPeriod(c.start, c.end, now)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.start, p.Start())
			assert.Equal(t, c.end, p.End())
		})
	}
}

func TestPeriodOverlaps(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
	}
	period := func(s, e int) booking.Period {
		return booking.ReconstructPeriod(day(s), day(e))
	}

	base := period(10, 20)

	cases := []struct {
		name     string
		other    booking.Period
		overlaps bool
	}{
		{name: "identical interval", other: period(10, 20), overlaps: true},
		{name: "contained interval", other: period(12, 18), overlaps: true},
		{name: "containing interval", other: period(5, 25), overlaps: true},
		{name: "overlapping left edge", other: period(5, 12), overlaps: true},
		{name: "overlapping right edge", other: period(18, 25), overlaps: true},
		{name: "touching at start does not overlap", other: period(5, 10), overlaps: false},
		{name: "touching at end does not overlap", other: period(20, 25), overlaps: false},
		{name: "disjoint before", other: period(1, 5), overlaps: false},
		{name: "disjoint after", other: period(25, 28), overlaps: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, base.Overlaps(c.other))
			// Overlap is symmetric.
			assert.Equal(t, c.overlaps, c.other.Overlaps(base))
		})
	}
}

func TestPeriodIsPast(t *testing.T) {
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	p := booking.ReconstructPeriod(start, end)

	// The bound is strict: a period ending exactly now has not finished.
	assert.True(t, p.IsPast(end.Add(time.Second)))
	assert.False(t, p.IsPast(end))
	assert.False(t, p.IsPast(start))
}

func TestParseStateFilter(t *testing.T) {
	t.Run("empty defaults to ALL", func(t *testing.T) {
		f, err := booking.ParseStateFilter("")
		require.NoError(t, err)
		assert.Equal(t, booking.FilterAll, f)
	})

	t.Run("known tokens", func(t *testing.T) {
		for _, raw := range []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"} {
			f, err := booking.ParseStateFilter(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, raw, f.String())
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := booking.ParseStateFilter("UNSUPPORTED_STATUS")
		assert.ErrorIs(t, err, booking.ErrUnknownStateFilter)
	})

	t.Run("lowercase is rejected", func(t *testing.T) {
		_, err := booking.ParseStateFilter("current")
		assert.ErrorIs(t, err, booking.ErrUnknownStateFilter)
	})
}
