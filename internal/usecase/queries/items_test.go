//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubItemStore struct {
	byID        map[uuid.UUID]*queries.ItemView
	byOwner     []*queries.ItemView
	searchHits  []*queries.ItemView
	comments    map[uuid.UUID][]*queries.CommentView
	searchCalls int
}

func (s *stubItemStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ItemView, error) {
	if v, ok := s.byID[id]; ok {
		return v, nil
	}
	return nil, infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
}

func (s *stubItemStore) FindByOwner(_ context.Context, _ uuid.UUID, _, _ int32) ([]*queries.ItemView, error) {
	return s.byOwner, nil
}

func (s *stubItemStore) SearchAvailable(_ context.Context, _ string, _, _ int32) ([]*queries.ItemView, error) {
	s.searchCalls++
	return s.searchHits, nil
}

func (s *stubItemStore) CommentsForItems(_ context.Context, _ []uuid.UUID) (map[uuid.UUID][]*queries.CommentView, error) {
	if s.comments == nil {
		return map[uuid.UUID][]*queries.CommentView{}, nil
	}
	return s.comments, nil
}

type stubBookingsForItems struct {
	rows []*queries.BookingView
}

func (s *stubBookingsForItems) FindByItems(_ context.Context, _ []uuid.UUID) ([]*queries.BookingView, error) {
	return s.rows, nil
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestItemQueriesSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("blank text short-circuits to empty result", func(t *testing.T) {
		store := &stubItemStore{}
		q := queries.NewItemQueries(store, &stubBookingsForItems{}, clock.NewMockClock(fixedNow()))

		for _, text := range []string{"", "   ", "\t"} {
			got, err := q.Search(ctx, text, 0, 20)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Len(t, got, 0)
		}
		assert.Equal(t, 0, store.searchCalls)
	})

	t.Run("hits come back with empty comments", func(t *testing.T) {
		hit := builder.NewItemBuilder().BuildView()
		hit.Comments = nil
		store := &stubItemStore{searchHits: []*queries.ItemView{hit}}
		q := queries.NewItemQueries(store, &stubBookingsForItems{}, clock.NewMockClock(fixedNow()))

		got, err := q.Search(ctx, "drill", 0, 20)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.NotNil(t, got[0].Comments)
		assert.Len(t, got[0].Comments, 0)
	})
}

func TestItemQueriesGetByID(t *testing.T) {
	ctx := context.Background()
	now := fixedNow()

	newStores := func(view *queries.ItemView, bookings []*queries.BookingView) (*stubItemStore, *stubBookingsForItems) {
		items := &stubItemStore{
			byID:     map[uuid.UUID]*queries.ItemView{view.ID: view},
			comments: map[uuid.UUID][]*queries.CommentView{},
		}
		return items, &stubBookingsForItems{rows: bookings}
	}

	bookingRow := func(itemID uuid.UUID, status booking.Status, start time.Time) *queries.BookingView {
		return &queries.BookingView{
			ID:     uuid.New(),
			ItemID: itemID,
			Status: status.String(),
			Start:  start,
			End:    start.Add(24 * time.Hour),
		}
	}

	t.Run("unknown item maps to NotFound", func(t *testing.T) {
		items := &stubItemStore{byID: map[uuid.UUID]*queries.ItemView{}}
		q := queries.NewItemQueries(items, &stubBookingsForItems{}, clock.NewMockClock(now))

		_, err := q.GetByID(ctx, uuid.New(), uuid.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("owner sees last and next booking", func(t *testing.T) {
		view := builder.NewItemBuilder().BuildView()
		last := bookingRow(view.ID, booking.StatusApproved, now.Add(-48*time.Hour))
		older := bookingRow(view.ID, booking.StatusApproved, now.Add(-96*time.Hour))
		next := bookingRow(view.ID, booking.StatusWaiting, now.Add(24*time.Hour))
		later := bookingRow(view.ID, booking.StatusApproved, now.Add(72*time.Hour))

		items, bookings := newStores(view, []*queries.BookingView{next, older, later, last})
		q := queries.NewItemQueries(items, bookings, clock.NewMockClock(now))

		got, err := q.GetByID(ctx, view.ID, view.OwnerID)
		require.NoError(t, err)
		require.NotNil(t, got.LastBooking)
		require.NotNil(t, got.NextBooking)
		assert.Equal(t, last.ID, got.LastBooking.ID)
		assert.Equal(t, next.ID, got.NextBooking.ID)
	})

	t.Run("rejected bookings never become next", func(t *testing.T) {
		view := builder.NewItemBuilder().BuildView()
		rejected := bookingRow(view.ID, booking.StatusRejected, now.Add(24*time.Hour))
		next := bookingRow(view.ID, booking.StatusApproved, now.Add(48*time.Hour))

		items, bookings := newStores(view, []*queries.BookingView{rejected, next})
		q := queries.NewItemQueries(items, bookings, clock.NewMockClock(now))

		got, err := q.GetByID(ctx, view.ID, view.OwnerID)
		require.NoError(t, err)
		require.NotNil(t, got.NextBooking)
		assert.Equal(t, next.ID, got.NextBooking.ID)
	})

	t.Run("canceled bookings never become last", func(t *testing.T) {
		view := builder.NewItemBuilder().BuildView()
		canceled := bookingRow(view.ID, booking.StatusCanceled, now.Add(-24*time.Hour))
		last := bookingRow(view.ID, booking.StatusApproved, now.Add(-48*time.Hour))

		items, bookings := newStores(view, []*queries.BookingView{canceled, last})
		q := queries.NewItemQueries(items, bookings, clock.NewMockClock(now))

		got, err := q.GetByID(ctx, view.ID, view.OwnerID)
		require.NoError(t, err)
		require.NotNil(t, got.LastBooking)
		assert.Equal(t, last.ID, got.LastBooking.ID)
	})

	t.Run("non-owner gets no booking summaries", func(t *testing.T) {
		view := builder.NewItemBuilder().BuildView()
		row := bookingRow(view.ID, booking.StatusApproved, now.Add(-48*time.Hour))

		items, bookings := newStores(view, []*queries.BookingView{row})
		q := queries.NewItemQueries(items, bookings, clock.NewMockClock(now))

		got, err := q.GetByID(ctx, view.ID, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got.LastBooking)
		assert.Nil(t, got.NextBooking)
		require.NotNil(t, got.Comments)
	})

	t.Run("comments are visible to any viewer", func(t *testing.T) {
		view := builder.NewItemBuilder().BuildView()
		commentView := &queries.CommentView{ID: uuid.New(), Text: "Great drill", AuthorName: "Bob"}
		items := &stubItemStore{
			byID:     map[uuid.UUID]*queries.ItemView{view.ID: view},
			comments: map[uuid.UUID][]*queries.CommentView{view.ID: {commentView}},
		}
		q := queries.NewItemQueries(items, &stubBookingsForItems{}, clock.NewMockClock(now))

		got, err := q.GetByID(ctx, view.ID, uuid.New())
		require.NoError(t, err)
		require.Len(t, got.Comments, 1)
		assert.Equal(t, "Great drill", got.Comments[0].Text)
	})
}
