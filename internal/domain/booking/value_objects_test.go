//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid future interval", func(t *testing.T) {
		p, err := booking.NewPeriod(now.Add(time.Hour), now.Add(2*time.Hour), now)
		require.NoError(t, err)
		assert.Equal(t, now.Add(time.Hour), p.Start())
		assert.Equal(t, now.Add(2*time.Hour), p.End())
		assert.Equal(t, time.Hour, p.Duration())
	})

	t.Run("start equal to now is allowed", func(t *testing.T) {
		_, err := booking.NewPeriod(now, now.Add(time.Hour), now)
		require.NoError(t, err)
	})

	t.Run("invalid intervals", func(t *testing.T) {
		cases := []struct {
			name       string
			start, end time.Time
		}{
			{"end before start", now.Add(2 * time.Hour), now.Add(time.Hour)},
			{"end equal to start", now.Add(time.Hour), now.Add(time.Hour)},
			{"start in the past", now.Add(-time.Minute), now.Add(time.Hour)},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := booking.NewPeriod(c.start, c.end, now)
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidInterval)
			})
		}
	})

	t.Run("comparison is on instants across zones", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*60*60)
		// Same instant as now, expressed in another zone.
		startInJST := now.In(jst)
		_, err := booking.NewPeriod(startInJST, now.Add(time.Hour), now)
		require.NoError(t, err)
	})
}

func TestReconstructPeriod(t *testing.T) {
	// Stored bookings in the past must stay loadable.
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	p := booking.ReconstructPeriod(start, end)
	assert.Equal(t, start, p.Start())
	assert.Equal(t, end, p.End())
}
