package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(dbtx db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: dbtx}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	const query = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE id = $1`

	var (
		v         queries.ItemView
		requestID pgtype.UUID
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.Name, &v.Description, &v.Available, &v.OwnerID, &requestID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by id", err)
	}
	v.RequestID = pgconv.UUIDPtrFromPgtype(requestID)
	return &v, nil
}

func (r *ItemReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int32) ([]*queries.ItemView, error) {
	const query = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE owner_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	defer rows.Close()

	return collectItemViews(rows)
}

func (r *ItemReadStore) SearchAvailable(ctx context.Context, text string, limit, offset int32) ([]*queries.ItemView, error) {
	const query = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE available
		  AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, text, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	defer rows.Close()

	return collectItemViews(rows)
}

func (r *ItemReadStore) CommentsForItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]*queries.CommentView, error) {
	const query = `
		SELECT c.id, c.item_id, c.author_id, u.name, c.text, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = ANY($1)
		ORDER BY c.created_at, c.id`

	rows, err := r.db.Query(ctx, query, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]*queries.CommentView, len(itemIDs))
	for rows.Next() {
		var (
			v      queries.CommentView
			itemID uuid.UUID
		)
		if err := rows.Scan(&v.ID, &itemID, &v.AuthorID, &v.AuthorName, &v.Text, &v.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment", err)
		}
		result[itemID] = append(result[itemID], &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate comments", err)
	}
	return result, nil
}

func collectItemViews(rows pgx.Rows) ([]*queries.ItemView, error) {
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ItemView, error) {
		var (
			v         queries.ItemView
			requestID pgtype.UUID
		)
		if err := row.Scan(&v.ID, &v.Name, &v.Description, &v.Available, &v.OwnerID, &requestID); err != nil {
			return nil, err
		}
		v.RequestID = pgconv.UUIDPtrFromPgtype(requestID)
		return &v, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan items", err)
	}
	return views, nil
}
