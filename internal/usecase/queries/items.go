package queries

import (
	"context"
	"sort"
	"strings"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int32) ([]*ItemView, error)
	// SearchAvailable matches a lowercased substring against name OR
	// description of available items.
	SearchAvailable(ctx context.Context, text string, limit, offset int32) ([]*ItemView, error)
	CommentsForItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]*CommentView, error)
}

type BookingsForItemsStore interface {
	FindByItems(ctx context.Context, itemIDs []uuid.UUID) ([]*BookingView, error)
}

type ItemQueries interface {
	GetByID(ctx context.Context, itemID, viewerID uuid.UUID) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, from, size int) ([]*ItemView, error)
	Search(ctx context.Context, text string, from, size int) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	items    ItemReadStore
	bookings BookingsForItemsStore
	clock    clock.Clock
}

func NewItemQueries(items ItemReadStore, bookings BookingsForItemsStore, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{items: items, bookings: bookings, clock: clk}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, itemID, viewerID uuid.UUID) (*ItemView, error) {
	view, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.New("item not found"), errs.ErrNotFound)
		}
		return nil, err
	}

	comments, err := q.items.CommentsForItems(ctx, []uuid.UUID{itemID})
	if err != nil {
		return nil, err
	}
	view.Comments = commentsOrEmpty(comments[itemID])

	if view.OwnerID == viewerID {
		if err := q.attachBookingRefs(ctx, []*ItemView{view}); err != nil {
			return nil, err
		}
	}
	return view, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, from, size int) ([]*ItemView, error) {
	from, size = NormalizePage(from, size)
	views, err := q.items.FindByOwner(ctx, ownerID, int32(size), int32(from))
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return []*ItemView{}, nil
	}

	ids := make([]uuid.UUID, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	comments, err := q.items.CommentsForItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		v.Comments = commentsOrEmpty(comments[v.ID])
	}

	if err := q.attachBookingRefs(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

// Blank search text returns an empty result without touching the store.
// Two call sites of the original platform behave this way on purpose; an
// empty query means "nothing", not "everything".
func (q *itemQueriesImpl) Search(ctx context.Context, text string, from, size int) ([]*ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []*ItemView{}, nil
	}
	from, size = NormalizePage(from, size)
	views, err := q.items.SearchAvailable(ctx, text, int32(size), int32(from))
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		v.Comments = []*CommentView{}
	}
	return views, nil
}

// attachBookingRefs computes lastBooking/nextBooking for items the viewer
// owns: last = APPROVED/WAITING booking with the greatest start before now,
// next = earliest start after now excluding REJECTED.
func (q *itemQueriesImpl) attachBookingRefs(ctx context.Context, views []*ItemView) error {
	ids := make([]uuid.UUID, len(views))
	byID := make(map[uuid.UUID]*ItemView, len(views))
	for i, v := range views {
		ids[i] = v.ID
		byID[v.ID] = v
	}

	rows, err := q.bookings.FindByItems(ctx, ids)
	if err != nil {
		return err
	}

	now := q.clock.Now()
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Start.Before(rows[j].Start)
	})

	for _, row := range rows {
		v := byID[row.ItemID]
		if v == nil {
			continue
		}
		status := booking.Status(row.Status)
		if !row.Start.After(now) {
			// Rows arrive start-ascending, so the final match wins the
			// greatest-start-before-now slot.
			if status == booking.StatusApproved || status == booking.StatusWaiting {
				v.LastBooking = bookingRef(row)
			}
		} else if v.NextBooking == nil && status != booking.StatusRejected {
			v.NextBooking = bookingRef(row)
		}
	}
	return nil
}

func bookingRef(row *BookingView) *BookingRef {
	return &BookingRef{
		ID:       row.ID,
		BookerID: row.BookerID,
		Start:    row.Start,
		End:      row.End,
	}
}

func commentsOrEmpty(comments []*CommentView) []*CommentView {
	if comments == nil {
		return []*CommentView{}
	}
	return comments
}
