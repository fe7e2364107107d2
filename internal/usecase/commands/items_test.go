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

func TestItemCommandsCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	t.Run("success: persists an item for an existing owner", func(t *testing.T) {
		f := newFakeUoW()
		ownerID := f.seedUser("Alice", "alice@example.com")
		uc := commands.NewItemCommands(f, clk)

		id, err := uc.Create(ctx, ownerID, commands.CreateItemCommand{
			Name:        "Cordless drill",
			Description: "18V drill with two batteries",
			Available:   true,
		})
		require.NoError(t, err)
		require.NotNil(t, f.createdItem)
		assert.Equal(t, f.createdItem.ID(), id)
		assert.Equal(t, ownerID, f.createdItem.OwnerID())
	})

	t.Run("unknown owner maps to NotFound", func(t *testing.T) {
		f := newFakeUoW()
		uc := commands.NewItemCommands(f, clk)

		_, err := uc.Create(ctx, uuid.New(), commands.CreateItemCommand{
			Name: "Drill", Description: "A drill", Available: true,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("answering an unknown request maps to NotFound", func(t *testing.T) {
		f := newFakeUoW()
		ownerID := f.seedUser("Alice", "alice@example.com")
		uc := commands.NewItemCommands(f, clk)

		missing := uuid.New()
		_, err := uc.Create(ctx, ownerID, commands.CreateItemCommand{
			Name: "Drill", Description: "A drill", Available: true, RequestID: &missing,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("answering a known request records the link", func(t *testing.T) {
		f := newFakeUoW()
		ownerID := f.seedUser("Alice", "alice@example.com")
		requestID := uuid.New()
		f.requests[requestID] = &shared.RequestSnapshot{ID: requestID, Description: "need a drill", RequestorID: uuid.New()}
		uc := commands.NewItemCommands(f, clk)

		_, err := uc.Create(ctx, ownerID, commands.CreateItemCommand{
			Name: "Drill", Description: "A drill", Available: true, RequestID: &requestID,
		})
		require.NoError(t, err)
		require.NotNil(t, f.createdItem.RequestID())
		assert.Equal(t, requestID, *f.createdItem.RequestID())
	})

	t.Run("blank name maps to DomainValidation", func(t *testing.T) {
		f := newFakeUoW()
		ownerID := f.seedUser("Alice", "alice@example.com")
		uc := commands.NewItemCommands(f, clk)

		_, err := uc.Create(ctx, ownerID, commands.CreateItemCommand{
			Name: "  ", Description: "A drill", Available: true,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestItemCommandsUpdate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	t.Run("success: absent fields keep stored values", func(t *testing.T) {
		f := newFakeUoW()
		ownerID := f.seedUser("Alice", "alice@example.com")
		itemID := f.seedItem(ownerID, true)
		uc := commands.NewItemCommands(f, clk)

		unavailable := false
		err := uc.Update(ctx, itemID, ownerID, commands.UpdateItemCommand{Available: &unavailable})
		require.NoError(t, err)
		require.NotNil(t, f.updatedItem)
		assert.False(t, f.updatedItem.Available())
		assert.Equal(t, "Cordless drill", f.updatedItem.Name())
	})

	t.Run("non-owner maps to Forbidden", func(t *testing.T) {
		f := newFakeUoW()
		ownerID := f.seedUser("Alice", "alice@example.com")
		itemID := f.seedItem(ownerID, true)
		uc := commands.NewItemCommands(f, clk)

		name := "Renamed"
		err := uc.Update(ctx, itemID, uuid.New(), commands.UpdateItemCommand{Name: &name})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
		assert.Nil(t, f.updatedItem)
	})

	t.Run("unknown item maps to NotFound", func(t *testing.T) {
		f := newFakeUoW()
		uc := commands.NewItemCommands(f, clk)

		err := uc.Update(ctx, uuid.New(), uuid.New(), commands.UpdateItemCommand{})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestItemCommandsAddComment(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	seed := func(f *fakeUoW, status booking.Status, start time.Time) (itemID, authorID uuid.UUID) {
		ownerID := f.seedUser("Alice", "alice@example.com")
		authorID = f.seedUser("Bob", "bob@example.com")
		itemID = f.seedItem(ownerID, true)
		f.seedBooking(&shared.BookingSnapshot{
			ID:          uuid.New(),
			ItemID:      itemID,
			ItemOwnerID: ownerID,
			BookerID:    authorID,
			Start:       start,
			End:         start.Add(24 * time.Hour),
			Status:      status.String(),
		})
		return itemID, authorID
	}

	t.Run("success: past booker comments with trimmed text", func(t *testing.T) {
		f := newFakeUoW()
		itemID, authorID := seed(f, booking.StatusApproved, now.Add(-48*time.Hour))
		uc := commands.NewItemCommands(f, clk)

		id, err := uc.AddComment(ctx, itemID, authorID, "  Great drill  ")
		require.NoError(t, err)
		require.NotNil(t, f.createdComment)
		assert.Equal(t, f.createdComment.ID(), id)
		assert.Equal(t, "Great drill", f.createdComment.Text())
		assert.Equal(t, now, f.createdComment.Created())
	})

	t.Run("booking not yet started maps to Forbidden", func(t *testing.T) {
		f := newFakeUoW()
		itemID, authorID := seed(f, booking.StatusApproved, now.Add(time.Hour))
		uc := commands.NewItemCommands(f, clk)

		_, err := uc.AddComment(ctx, itemID, authorID, "Nice")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("rejected booking maps to Forbidden", func(t *testing.T) {
		f := newFakeUoW()
		itemID, authorID := seed(f, booking.StatusRejected, now.Add(-48*time.Hour))
		uc := commands.NewItemCommands(f, clk)

		_, err := uc.AddComment(ctx, itemID, authorID, "Nice")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("never booked maps to Forbidden", func(t *testing.T) {
		f := newFakeUoW()
		ownerID := f.seedUser("Alice", "alice@example.com")
		strangerID := f.seedUser("Mallory", "mallory@example.com")
		itemID := f.seedItem(ownerID, true)
		uc := commands.NewItemCommands(f, clk)

		_, err := uc.AddComment(ctx, itemID, strangerID, "Nice")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("blank text maps to DomainValidation", func(t *testing.T) {
		f := newFakeUoW()
		itemID, authorID := seed(f, booking.StatusApproved, now.Add(-48*time.Hour))
		uc := commands.NewItemCommands(f, clk)

		_, err := uc.AddComment(ctx, itemID, authorID, "   ")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("unknown item maps to NotFound", func(t *testing.T) {
		f := newFakeUoW()
		authorID := f.seedUser("Bob", "bob@example.com")
		uc := commands.NewItemCommands(f, clk)

		_, err := uc.AddComment(ctx, uuid.New(), authorID, "Nice")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
