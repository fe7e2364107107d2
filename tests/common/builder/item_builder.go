//go:build unit || e2e

package builder

import (
	"shareit/internal/domain/item"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	ID          uuid.UUID
	Name        string
	Description string
	Available   bool
	OwnerID     uuid.UUID
	RequestID   *uuid.UUID
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          uuid.New(),
		Name:        "Cordless drill",
		Description: "18V drill with two batteries",
		Available:   true,
		OwnerID:     uuid.New(),
	}
}

func (i *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(i)
	return i
}

// Build methods
func (i *ItemBuilder) BuildDomain() (*item.Item, error) {
	return item.NewItem(i.Name, i.Description, i.Available, i.OwnerID, i.RequestID)
}

func (i *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		OwnerID:     i.OwnerID,
		RequestID:   i.RequestID,
		Comments:    []*queries.CommentView{},
	}
}

func (i *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	available := i.Available
	return reqdto.CreateItemRequest{
		Name:        i.Name,
		Description: i.Description,
		Available:   &available,
		RequestID:   i.RequestID,
	}
}

// Fluent builder methods
func (i *ItemBuilder) WithName(name string) *ItemBuilder {
	i.Name = name
	return i
}

func (i *ItemBuilder) WithDescription(description string) *ItemBuilder {
	i.Description = description
	return i
}

func (i *ItemBuilder) WithOwnerID(id uuid.UUID) *ItemBuilder {
	i.OwnerID = id
	return i
}

func (i *ItemBuilder) WithRequestID(id *uuid.UUID) *ItemBuilder {
	i.RequestID = id
	return i
}

func (i *ItemBuilder) AsUnavailable() *ItemBuilder {
	i.Available = false
	return i
}
