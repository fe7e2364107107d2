package booking

import (
	"strings"
	"time"

	"shareit/internal/pkg/errs"
)

// Status is the authoritative lifecycle state of a booking.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusCanceled Status = "CANCELED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are permitted.
func (s Status) IsTerminal() bool {
	return s.IsValid() && s != StatusWaiting
}

// State is the read-side filter classification, distinct from Status.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

func (s State) String() string {
	return string(s)
}

// ParseState converts a free-text query token into a State,
// case-insensitively. An empty token means ALL. Unknown tokens fail with
// ErrInvalidState carrying the offending value.
func ParseState(raw string) (State, error) {
	if raw == "" {
		return StateAll, nil
	}
	switch State(strings.ToUpper(raw)) {
	case StateAll:
		return StateAll, nil
	case StateCurrent:
		return StateCurrent, nil
	case StatePast:
		return StatePast, nil
	case StateFuture:
		return StateFuture, nil
	case StateWaiting:
		return StateWaiting, nil
	case StateRejected:
		return StateRejected, nil
	default:
		return "", errs.Mark(errs.Newf("unknown state: %s", raw), errs.ErrInvalidState)
	}
}

// Matches is the classification predicate for a single booking. Boundary
// rule: start == now and end == now both classify as CURRENT, so
// CURRENT/PAST/FUTURE partition the timeline with no gap or overlap.
func (s State) Matches(status Status, start, end, now time.Time) bool {
	switch s {
	case StateAll:
		return true
	case StateCurrent:
		return !start.After(now) && !end.Before(now)
	case StatePast:
		return end.Before(now)
	case StateFuture:
		return start.After(now)
	case StateWaiting:
		return status == StatusWaiting
	case StateRejected:
		return status == StatusRejected
	default:
		return false
	}
}
