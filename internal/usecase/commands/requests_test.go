//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestCommandsCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	t.Run("success: persists the request stamped with now", func(t *testing.T) {
		f := newFakeUoW()
		requestorID := f.seedUser("Bob", "bob@example.com")
		uc := commands.NewRequestCommands(f, clk)

		id, err := uc.Create(ctx, requestorID, "Looking for a cordless drill")
		require.NoError(t, err)
		require.NotNil(t, f.createdRequest)
		assert.Equal(t, f.createdRequest.ID(), id)
		assert.Equal(t, requestorID, f.createdRequest.RequestorID())
		assert.Equal(t, now, f.createdRequest.Created())
	})

	t.Run("unknown requestor maps to NotFound", func(t *testing.T) {
		f := newFakeUoW()
		uc := commands.NewRequestCommands(f, clk)

		_, err := uc.Create(ctx, uuid.New(), "Looking for a drill")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("blank description maps to DomainValidation", func(t *testing.T) {
		f := newFakeUoW()
		requestorID := f.seedUser("Bob", "bob@example.com")
		uc := commands.NewRequestCommands(f, clk)

		_, err := uc.Create(ctx, requestorID, "   ")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}
