package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestAnswerResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	OwnerID   uuid.UUID  `json:"ownerId"`
	RequestID *uuid.UUID `json:"requestId,omitempty"`
}

type ItemRequestResponse struct {
	ID          uuid.UUID                `json:"id"`
	Description string                   `json:"description"`
	RequestorID uuid.UUID                `json:"requestorId"`
	Created     time.Time                `json:"created"`
	Items       []*RequestAnswerResponse `json:"items"`
}

func FromRequestView(v *queries.RequestView) *ItemRequestResponse {
	items := make([]*RequestAnswerResponse, len(v.Items))
	for i, a := range v.Items {
		items[i] = &RequestAnswerResponse{
			ID:        a.ID,
			Name:      a.Name,
			OwnerID:   a.OwnerID,
			RequestID: a.RequestID,
		}
	}
	return &ItemRequestResponse{
		ID:          v.ID,
		Description: v.Description,
		RequestorID: v.RequestorID,
		Created:     v.Created,
		Items:       items,
	}
}

func FromRequestViews(views []*queries.RequestView) []*ItemRequestResponse {
	out := make([]*ItemRequestResponse, len(views))
	for i, v := range views {
		out[i] = FromRequestView(v)
	}
	return out
}
