//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByState(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	bookerID := uuid.New()

	build := func(start, end time.Time, status booking.Status) *booking.Booking {
		return builder.NewBookingBuilder().
			WithBookerID(bookerID).
			WithPeriod(start, end).
			WithStatus(status).
			BuildStored()
	}

	past := build(now.Add(-72*time.Hour), now.Add(-48*time.Hour), booking.StatusApproved)
	current := build(now.Add(-time.Hour), now.Add(time.Hour), booking.StatusApproved)
	future := build(now.Add(24*time.Hour), now.Add(48*time.Hour), booking.StatusWaiting)
	rejected := build(now.Add(72*time.Hour), now.Add(96*time.Hour), booking.StatusRejected)
	all := []*booking.Booking{past, current, future, rejected}

	t.Run("ALL returns everything ordered by start descending", func(t *testing.T) {
		got := booking.FilterByState(all, booking.StateAll, now)
		require.Len(t, got, 4)
		assert.Equal(t, rejected.ID(), got[0].ID())
		assert.Equal(t, future.ID(), got[1].ID())
		assert.Equal(t, current.ID(), got[2].ID())
		assert.Equal(t, past.ID(), got[3].ID())
	})

	t.Run("timeline states partition", func(t *testing.T) {
		got := booking.FilterByState(all, booking.StatePast, now)
		require.Len(t, got, 1)
		assert.Equal(t, past.ID(), got[0].ID())

		got = booking.FilterByState(all, booking.StateCurrent, now)
		require.Len(t, got, 1)
		assert.Equal(t, current.ID(), got[0].ID())

		got = booking.FilterByState(all, booking.StateFuture, now)
		require.Len(t, got, 2)
		assert.Equal(t, rejected.ID(), got[0].ID())
		assert.Equal(t, future.ID(), got[1].ID())
	})

	t.Run("status states filter on status alone", func(t *testing.T) {
		got := booking.FilterByState(all, booking.StateWaiting, now)
		require.Len(t, got, 1)
		assert.Equal(t, future.ID(), got[0].ID())

		got = booking.FilterByState(all, booking.StateRejected, now)
		require.Len(t, got, 1)
		assert.Equal(t, rejected.ID(), got[0].ID())
	})

	t.Run("input order is preserved", func(t *testing.T) {
		booking.FilterByState(all, booking.StateAll, now)
		assert.Equal(t, past.ID(), all[0].ID())
		assert.Equal(t, rejected.ID(), all[3].ID())
	})

	t.Run("empty input yields empty non-nil slice", func(t *testing.T) {
		got := booking.FilterByState(nil, booking.StateAll, now)
		require.NotNil(t, got)
		assert.Len(t, got, 0)
	})

	t.Run("equal starts keep relative order", func(t *testing.T) {
		a := build(now.Add(24*time.Hour), now.Add(30*time.Hour), booking.StatusWaiting)
		b := build(now.Add(24*time.Hour), now.Add(36*time.Hour), booking.StatusWaiting)

		got := booking.FilterByState([]*booking.Booking{a, b}, booking.StateAll, now)
		require.Len(t, got, 2)
		assert.Equal(t, a.ID(), got[0].ID())
		assert.Equal(t, b.ID(), got[1].ID())
	})
}
