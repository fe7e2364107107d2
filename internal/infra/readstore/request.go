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

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(dbtx db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: dbtx}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	const query = `
		SELECT id, description, requestor_id, created_at
		FROM item_requests
		WHERE id = $1`

	var v queries.RequestView
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.Description, &v.RequestorID, &v.Created)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item request by id", err)
	}
	return &v, nil
}

func (r *RequestReadStore) FindByRequestor(ctx context.Context, requestorID uuid.UUID) ([]*queries.RequestView, error) {
	const query = `
		SELECT id, description, requestor_id, created_at
		FROM item_requests
		WHERE requestor_id = $1
		ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, query, requestorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests by requestor", err)
	}
	defer rows.Close()

	return collectRequestViews(rows)
}

func (r *RequestReadStore) FindAllExcept(ctx context.Context, requestorID uuid.UUID, limit, offset int32) ([]*queries.RequestView, error) {
	const query = `
		SELECT id, description, requestor_id, created_at
		FROM item_requests
		WHERE requestor_id <> $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, requestorID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests", err)
	}
	defer rows.Close()

	return collectRequestViews(rows)
}

func (r *RequestReadStore) AnswersForRequests(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]*queries.RequestAnswerView, error) {
	const query = `
		SELECT id, name, owner_id, request_id
		FROM items
		WHERE request_id = ANY($1)
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, requestIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list answers for item requests", err)
	}
	defer rows.Close()

	answers := make(map[uuid.UUID][]*queries.RequestAnswerView)
	for rows.Next() {
		var (
			v     queries.RequestAnswerView
			reqID pgtype.UUID
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.OwnerID, &reqID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request answer", err)
		}
		v.RequestID = pgconv.UUIDPtrFromPgtype(reqID)
		if v.RequestID == nil {
			continue
		}
		answers[*v.RequestID] = append(answers[*v.RequestID], &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read request answers", err)
	}
	return answers, nil
}

func collectRequestViews(rows pgx.Rows) ([]*queries.RequestView, error) {
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.RequestView, error) {
		var v queries.RequestView
		if err := row.Scan(&v.ID, &v.Description, &v.RequestorID, &v.Created); err != nil {
			return nil, err
		}
		return &v, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan item requests", err)
	}
	return views, nil
}
