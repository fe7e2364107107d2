package booking

import (
	"time"

	"shareit/internal/pkg/errs"
)

// Period is the half-open-in-neither-direction [start, end] interval a
// booking reserves. Start and end are zone-aware instants; all comparisons
// happen on instants, never on zone-naive values.
type Period struct {
	start time.Time
	end   time.Time
}

// NewPeriod validates the interval for a new booking: start strictly before
// end, and neither in the past relative to now.
func NewPeriod(start, end, now time.Time) (Period, error) {
	if !start.Before(end) {
		return Period{}, errs.Mark(errs.New("end must be after start"), errs.ErrInvalidInterval)
	}
	if start.Before(now) {
		return Period{}, errs.Mark(errs.New("start cannot be in the past"), errs.ErrInvalidInterval)
	}
	return Period{start: start, end: end}, nil
}

// ReconstructPeriod restores a stored interval without re-running
// creation-time checks; past bookings stay loadable.
func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

func (p Period) Duration() time.Duration { return p.end.Sub(p.start) }
