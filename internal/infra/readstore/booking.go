package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingViewColumns = `
	b.id, b.start_at, b.end_at, b.status, b.created_at,
	i.id, i.name, i.owner_id,
	u.id, u.name`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users u ON u.id = b.booker_id
		WHERE b.id = $1`

	row := r.db.QueryRow(ctx, query, id)
	v, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return v, nil
}

func (r *BookingReadStore) FindByBooker(ctx context.Context, bookerID uuid.UUID) ([]*queries.BookingView, error) {
	const query = `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users u ON u.id = b.booker_id
		WHERE b.booker_id = $1
		ORDER BY b.start_at DESC, b.id`

	return r.queryBookingViews(ctx, query, bookerID)
}

func (r *BookingReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.BookingView, error) {
	const query = `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users u ON u.id = b.booker_id
		WHERE i.owner_id = $1
		ORDER BY b.start_at DESC, b.id`

	return r.queryBookingViews(ctx, query, ownerID)
}

func (r *BookingReadStore) FindByItems(ctx context.Context, itemIDs []uuid.UUID) ([]*queries.BookingView, error) {
	const query = `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users u ON u.id = b.booker_id
		WHERE b.item_id = ANY($1)
		ORDER BY b.start_at, b.id`

	return r.queryBookingViews(ctx, query, itemIDs)
}

func (r *BookingReadStore) queryBookingViews(ctx context.Context, query string, arg any) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.BookingView, error) {
		return scanBookingView(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan bookings", err)
	}
	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.Start, &v.End, &v.Status, &v.CreatedAt,
		&v.ItemID, &v.ItemName, &v.ItemOwnerID,
		&v.BookerID, &v.BookerName,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
