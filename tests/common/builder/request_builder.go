//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/request"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestBuilder struct {
	ID          uuid.UUID
	Description string
	RequestorID uuid.UUID
	Created     time.Time
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		ID:          uuid.New(),
		Description: "Looking for a cordless drill",
		RequestorID: uuid.New(),
		Created:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RequestBuilder) BuildDomain() (*request.ItemRequest, error) {
	return request.NewItemRequest(b.Description, b.RequestorID, b.Created)
}

func (b *RequestBuilder) BuildView() *queries.RequestView {
	return &queries.RequestView{
		ID:          b.ID,
		Description: b.Description,
		RequestorID: b.RequestorID,
		Created:     b.Created,
		Items:       []*queries.RequestAnswerView{},
	}
}

func (b *RequestBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequestRequest {
	return reqdto.CreateItemRequestRequest{
		Description: b.Description,
	}
}

// Fluent builder methods
func (b *RequestBuilder) WithDescription(description string) *RequestBuilder {
	b.Description = description
	return b
}

func (b *RequestBuilder) WithRequestorID(id uuid.UUID) *RequestBuilder {
	b.RequestorID = id
	return b
}
