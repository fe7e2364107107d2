package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	Created    time.Time `json:"created"`
}

// BookingRef is the compact booking summary attached to owner item views.
type BookingRef struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// ItemView carries item fields plus comments. LastBooking/NextBooking are
// populated only when the viewer owns the item; every other viewer gets
// nil summaries. That is an authorization-gated shape, not a second type.
type ItemView struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Available   bool           `json:"available"`
	OwnerID     uuid.UUID      `json:"owner_id"`
	RequestID   *uuid.UUID     `json:"request_id,omitempty"`
	LastBooking *BookingRef    `json:"last_booking,omitempty"`
	NextBooking *BookingRef    `json:"next_booking,omitempty"`
	Comments    []*CommentView `json:"comments"`
}

type BookingView struct {
	ID          uuid.UUID `json:"id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      string    `json:"status"`
	ItemID      uuid.UUID `json:"item_id"`
	ItemName    string    `json:"item_name"`
	ItemOwnerID uuid.UUID `json:"item_owner_id"`
	BookerID    uuid.UUID `json:"booker_id"`
	BookerName  string    `json:"booker_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// RequestAnswerView is an item listed in response to a request.
type RequestAnswerView struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	OwnerID   uuid.UUID  `json:"owner_id"`
	RequestID *uuid.UUID `json:"request_id,omitempty"`
}

type RequestView struct {
	ID          uuid.UUID            `json:"id"`
	Description string               `json:"description"`
	RequestorID uuid.UUID            `json:"requestor_id"`
	Created     time.Time            `json:"created"`
	Items       []*RequestAnswerView `json:"items"`
}
