package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingRefResponse struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	Created    time.Time `json:"created"`
}

type ItemResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Available   bool                `json:"available"`
	OwnerID     uuid.UUID           `json:"ownerId"`
	RequestID   *uuid.UUID          `json:"requestId,omitempty"`
	LastBooking *BookingRefResponse `json:"lastBooking,omitempty"`
	NextBooking *BookingRefResponse `json:"nextBooking,omitempty"`
	Comments    []*CommentResponse  `json:"comments"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	comments := make([]*CommentResponse, len(v.Comments))
	for i, cm := range v.Comments {
		comments[i] = FromCommentView(cm)
	}
	return &ItemResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Available:   v.Available,
		OwnerID:     v.OwnerID,
		RequestID:   v.RequestID,
		LastBooking: fromBookingRef(v.LastBooking),
		NextBooking: fromBookingRef(v.NextBooking),
		Comments:    comments,
	}
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	out := make([]*ItemResponse, len(views))
	for i, v := range views {
		out[i] = FromItemView(v)
	}
	return out
}

func FromCommentView(v *queries.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:         v.ID,
		AuthorID:   v.AuthorID,
		AuthorName: v.AuthorName,
		Text:       v.Text,
		Created:    v.Created,
	}
}

func fromBookingRef(ref *queries.BookingRef) *BookingRefResponse {
	if ref == nil {
		return nil
	}
	return &BookingRefResponse{
		ID:       ref.ID,
		BookerID: ref.BookerID,
		Start:    ref.Start,
		End:      ref.End,
	}
}
