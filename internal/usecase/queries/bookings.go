package queries

import (
	"context"
	"sort"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByBooker(ctx context.Context, bookerID uuid.UUID) ([]*BookingView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*BookingView, error)
	FindByItems(ctx context.Context, itemIDs []uuid.UUID) ([]*BookingView, error)
}

type UserExistsStore interface {
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, bookingID, viewerID uuid.UUID) (*BookingView, error)
	// ListByBooker/ListByOwner filter by the free-text state token and page
	// the classified result.
	ListByBooker(ctx context.Context, bookerID uuid.UUID, stateRaw string, from, size int) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, stateRaw string, from, size int) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	users UserExistsStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, users UserExistsStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, users: users, clock: clk}
}

// GetByID hides bookings from everyone but the booker and the item owner.
// Outsiders get NotFound rather than Forbidden so booking ids leak nothing.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, bookingID, viewerID uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
		}
		return nil, err
	}
	if view.BookerID != viewerID && view.ItemOwnerID != viewerID {
		return nil, errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, bookerID uuid.UUID, stateRaw string, from, size int) ([]*BookingView, error) {
	return q.list(ctx, bookerID, stateRaw, from, size, q.store.FindByBooker)
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, stateRaw string, from, size int) ([]*BookingView, error) {
	return q.list(ctx, ownerID, stateRaw, from, size, q.store.FindByOwner)
}

func (q *bookingQueriesImpl) list(
	ctx context.Context,
	userID uuid.UUID,
	stateRaw string,
	from, size int,
	fetch func(ctx context.Context, userID uuid.UUID) ([]*BookingView, error),
) ([]*BookingView, error) {
	state, err := booking.ParseState(stateRaw)
	if err != nil {
		return nil, err
	}

	exists, err := q.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.Mark(errs.New("user not found"), errs.ErrNotFound)
	}

	rows, err := fetch(ctx, userID)
	if err != nil {
		return nil, err
	}

	return Classify(rows, state, q.clock.Now(), from, size), nil
}

// Classify applies the state predicate to view rows, orders by start
// descending and pages the result. It mirrors booking.FilterByState for the
// read side, where rows already carry resolved item/booker fields.
func Classify(rows []*BookingView, state booking.State, now time.Time, from, size int) []*BookingView {
	from, size = NormalizePage(from, size)

	matched := make([]*BookingView, 0, len(rows))
	for _, row := range rows {
		if state.Matches(booking.Status(row.Status), row.Start, row.End, now) {
			matched = append(matched, row)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Start.After(matched[j].Start)
	})

	if from >= len(matched) {
		return []*BookingView{}
	}
	end := from + size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[from:end]
}
