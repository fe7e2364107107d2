//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingCommandsCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	validCmd := func(itemID uuid.UUID) commands.CreateBookingCommand {
		return commands.CreateBookingCommand{
			ItemID: itemID,
			Start:  now.Add(24 * time.Hour),
			End:    now.Add(48 * time.Hour),
		}
	}

	t.Run("success: persists a waiting booking", func(t *testing.T) {
		f := newFakeUoW()
		bookerID := f.seedUser("Bob", "bob@example.com")
		ownerID := f.seedUser("Alice", "alice@example.com")
		itemID := f.seedItem(ownerID, true)
		uc := commands.NewBookingCommands(f, clk)

		id, err := uc.Create(ctx, bookerID, validCmd(itemID))
		require.NoError(t, err)
		require.NotNil(t, f.createdBooking)
		assert.Equal(t, f.createdBooking.ID(), id)
		assert.Equal(t, booking.StatusWaiting, f.createdBooking.Status())
		assert.Equal(t, bookerID, f.createdBooking.BookerID())
	})

	t.Run("interval validation happens before any lookup", func(t *testing.T) {
		f := newFakeUoW()
		uc := commands.NewBookingCommands(f, clk)

		cases := []struct {
			name       string
			start, end time.Time
		}{
			{"start in the past", now.Add(-time.Hour), now.Add(time.Hour)},
			{"end before start", now.Add(48 * time.Hour), now.Add(24 * time.Hour)},
			{"zero duration", now.Add(24 * time.Hour), now.Add(24 * time.Hour)},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := uc.Create(ctx, uuid.New(), commands.CreateBookingCommand{
					ItemID: uuid.New(), Start: c.start, End: c.end,
				})
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidInterval)
			})
		}
	})

	t.Run("unknown booker maps to NotFound", func(t *testing.T) {
		f := newFakeUoW()
		ownerID := f.seedUser("Alice", "alice@example.com")
		itemID := f.seedItem(ownerID, true)
		uc := commands.NewBookingCommands(f, clk)

		_, err := uc.Create(ctx, uuid.New(), validCmd(itemID))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("unknown item maps to NotFound", func(t *testing.T) {
		f := newFakeUoW()
		bookerID := f.seedUser("Bob", "bob@example.com")
		uc := commands.NewBookingCommands(f, clk)

		_, err := uc.Create(ctx, bookerID, validCmd(uuid.New()))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("unavailable item maps to Unavailable", func(t *testing.T) {
		f := newFakeUoW()
		bookerID := f.seedUser("Bob", "bob@example.com")
		ownerID := f.seedUser("Alice", "alice@example.com")
		itemID := f.seedItem(ownerID, false)
		uc := commands.NewBookingCommands(f, clk)

		_, err := uc.Create(ctx, bookerID, validCmd(itemID))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUnavailable)
	})

	t.Run("owner booking own item maps to Forbidden", func(t *testing.T) {
		f := newFakeUoW()
		ownerID := f.seedUser("Alice", "alice@example.com")
		itemID := f.seedItem(ownerID, true)
		uc := commands.NewBookingCommands(f, clk)

		_, err := uc.Create(ctx, ownerID, validCmd(itemID))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestBookingCommandsDecide(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	seed := func(f *fakeUoW, status booking.Status) (bookingID, ownerID, bookerID uuid.UUID) {
		ownerID = uuid.New()
		bookerID = uuid.New()
		bookingID = uuid.New()
		f.seedBooking(&shared.BookingSnapshot{
			ID:          bookingID,
			ItemID:      uuid.New(),
			ItemOwnerID: ownerID,
			BookerID:    bookerID,
			Start:       now.Add(24 * time.Hour),
			End:         now.Add(48 * time.Hour),
			Status:      status.String(),
		})
		return bookingID, ownerID, bookerID
	}

	t.Run("approve moves WAITING to APPROVED with a guarded write", func(t *testing.T) {
		f := newFakeUoW()
		bookingID, ownerID, _ := seed(f, booking.StatusWaiting)
		uc := commands.NewBookingCommands(f, clk)

		require.NoError(t, uc.Decide(ctx, bookingID, ownerID, true))
		assert.Equal(t, bookingID, f.statusID)
		assert.Equal(t, booking.StatusApproved, f.statusNext)
		assert.Equal(t, booking.StatusWaiting, f.statusExpected)
	})

	t.Run("reject moves WAITING to REJECTED", func(t *testing.T) {
		f := newFakeUoW()
		bookingID, ownerID, _ := seed(f, booking.StatusWaiting)
		uc := commands.NewBookingCommands(f, clk)

		require.NoError(t, uc.Decide(ctx, bookingID, ownerID, false))
		assert.Equal(t, booking.StatusRejected, f.statusNext)
	})

	t.Run("non-owner maps to Forbidden even when already decided", func(t *testing.T) {
		f := newFakeUoW()
		bookingID, _, bookerID := seed(f, booking.StatusApproved)
		uc := commands.NewBookingCommands(f, clk)

		err := uc.Decide(ctx, bookingID, bookerID, true)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
		assert.NotErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("already decided maps to Conflict", func(t *testing.T) {
		f := newFakeUoW()
		bookingID, ownerID, _ := seed(f, booking.StatusApproved)
		uc := commands.NewBookingCommands(f, clk)

		err := uc.Decide(ctx, bookingID, ownerID, true)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("losing the write race surfaces the store conflict", func(t *testing.T) {
		f := newFakeUoW()
		bookingID, ownerID, _ := seed(f, booking.StatusWaiting)
		f.statusUpdateErr = errs.Mark(errs.New("booking already decided"), errs.ErrConflict)
		uc := commands.NewBookingCommands(f, clk)

		err := uc.Decide(ctx, bookingID, ownerID, true)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("unknown booking maps to NotFound", func(t *testing.T) {
		f := newFakeUoW()
		uc := commands.NewBookingCommands(f, clk)

		err := uc.Decide(ctx, uuid.New(), uuid.New(), true)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestBookingCommandsCancel(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	seed := func(f *fakeUoW, status booking.Status) (bookingID, bookerID uuid.UUID) {
		bookerID = uuid.New()
		bookingID = uuid.New()
		f.seedBooking(&shared.BookingSnapshot{
			ID:          bookingID,
			ItemID:      uuid.New(),
			ItemOwnerID: uuid.New(),
			BookerID:    bookerID,
			Start:       now.Add(24 * time.Hour),
			End:         now.Add(48 * time.Hour),
			Status:      status.String(),
		})
		return bookingID, bookerID
	}

	t.Run("booker cancels a waiting booking", func(t *testing.T) {
		f := newFakeUoW()
		bookingID, bookerID := seed(f, booking.StatusWaiting)
		uc := commands.NewBookingCommands(f, clk)

		require.NoError(t, uc.Cancel(ctx, bookingID, bookerID))
		assert.Equal(t, booking.StatusCanceled, f.statusNext)
		assert.Equal(t, booking.StatusWaiting, f.statusExpected)
	})

	t.Run("non-booker maps to Forbidden", func(t *testing.T) {
		f := newFakeUoW()
		bookingID, _ := seed(f, booking.StatusWaiting)
		uc := commands.NewBookingCommands(f, clk)

		err := uc.Cancel(ctx, bookingID, uuid.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("decided booking maps to Conflict", func(t *testing.T) {
		f := newFakeUoW()
		bookingID, bookerID := seed(f, booking.StatusRejected)
		uc := commands.NewBookingCommands(f, clk)

		err := uc.Cancel(ctx, bookingID, bookerID)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}
