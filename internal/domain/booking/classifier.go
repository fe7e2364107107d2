package booking

import (
	"sort"
	"time"
)

// FilterByState returns the bookings matching the state under now, ordered
// by start descending (most recent first). The input slice is not modified.
func FilterByState(bookings []*Booking, state State, now time.Time) []*Booking {
	out := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if state.Matches(b.status, b.period.start, b.period.end, now) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].period.start.After(out[j].period.start)
	})
	return out
}
