//go:build unit

package item_test

import (
	"testing"

	"shareit/internal/domain/item"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	ownerID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := item.NewItem("Cordless drill", "18V drill with two batteries", true, ownerID, nil)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Cordless drill", actual.Name())
		assert.True(t, actual.Available())
		assert.Equal(t, ownerID, actual.OwnerID())
		assert.Nil(t, actual.RequestID())
	})

	t.Run("name and description are trimmed", func(t *testing.T) {
		actual, err := item.NewItem("  Drill  ", "  A drill  ", false, ownerID, nil)
		require.NoError(t, err)
		assert.Equal(t, "Drill", actual.Name())
		assert.Equal(t, "A drill", actual.Description())
		assert.False(t, actual.Available())
	})

	t.Run("answering a request keeps the request id", func(t *testing.T) {
		requestID := uuid.New()
		actual, err := item.NewItem("Drill", "A drill", true, ownerID, &requestID)
		require.NoError(t, err)
		require.NotNil(t, actual.RequestID())
		assert.Equal(t, requestID, *actual.RequestID())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name           string
			itemName, desc string
			errIs          error
		}{
			{"empty name", "", "A drill", item.ErrEmptyName},
			{"whitespace name", "   ", "A drill", item.ErrEmptyName},
			{"empty description", "Drill", "", item.ErrEmptyDescription},
			{"whitespace description", "Drill", "   ", item.ErrEmptyDescription},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := item.NewItem(c.itemName, c.desc, true, ownerID, nil)
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}

func TestIsOwnedBy(t *testing.T) {
	ownerID := uuid.New()
	actual, err := item.NewItem("Drill", "A drill", true, ownerID, nil)
	require.NoError(t, err)

	assert.True(t, actual.IsOwnedBy(ownerID))
	assert.False(t, actual.IsOwnedBy(uuid.New()))
}
