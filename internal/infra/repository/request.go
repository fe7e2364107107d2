package repository

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/infra"
	"shareit/internal/infra/db"

	"github.com/google/uuid"
)

type RequestRepository struct{}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{}
}

func (r *RequestRepository) Create(ctx context.Context, dbtx db.DBTX, req *request.ItemRequest) (uuid.UUID, error) {
	const query = `
		INSERT INTO item_requests (id, description, requestor_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query, req.ID(), req.Description(), req.RequestorID(), req.Created()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create item request", err)
	}
	return id, nil
}
