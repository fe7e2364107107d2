package repository

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/infra/db"

	"github.com/google/uuid"
)

type CommentRepository struct{}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

func (r *CommentRepository) Create(ctx context.Context, dbtx db.DBTX, c *comment.Comment) (uuid.UUID, error) {
	const query = `
		INSERT INTO comments (id, item_id, author_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query, c.ID(), c.ItemID(), c.AuthorID(), c.Text(), c.Created()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create comment", err)
	}
	return id, nil
}
