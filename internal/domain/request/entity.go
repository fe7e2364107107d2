package request

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyDescription = errors.New("request description cannot be empty")

// ItemRequest is an open ask for an item that does not yet exist in the
// catalog. Listings answering it carry the request's id.
type ItemRequest struct {
	id          uuid.UUID
	description string
	requestorID uuid.UUID
	created     time.Time
}

func NewItemRequest(description string, requestorID uuid.UUID, now time.Time) (*ItemRequest, error) {
	d := strings.TrimSpace(description)
	if d == "" {
		return nil, ErrEmptyDescription
	}
	return &ItemRequest{
		id:          uuid.New(),
		description: d,
		requestorID: requestorID,
		created:     now,
	}, nil
}

func ReconstructItemRequest(id uuid.UUID, description string, requestorID uuid.UUID, created time.Time) *ItemRequest {
	return &ItemRequest{
		id:          id,
		description: description,
		requestorID: requestorID,
		created:     created,
	}
}

func (r *ItemRequest) ID() uuid.UUID          { return r.id }
func (r *ItemRequest) Description() string    { return r.description }
func (r *ItemRequest) RequestorID() uuid.UUID { return r.requestorID }
func (r *ItemRequest) Created() time.Time     { return r.created }

// Identity implements identity.Identifiable.
func (r *ItemRequest) Identity() uuid.UUID { return r.id }
