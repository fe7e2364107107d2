package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      string    `json:"status"`
	ItemID      uuid.UUID `json:"itemId"`
	ItemName    string    `json:"itemName"`
	ItemOwnerID uuid.UUID `json:"itemOwnerId"`
	BookerID    uuid.UUID `json:"bookerId"`
	BookerName  string    `json:"bookerName"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:          v.ID,
		Start:       v.Start,
		End:         v.End,
		Status:      v.Status,
		ItemID:      v.ItemID,
		ItemName:    v.ItemName,
		ItemOwnerID: v.ItemOwnerID,
		BookerID:    v.BookerID,
		BookerName:  v.BookerName,
		CreatedAt:   v.CreatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(views))
	for i, v := range views {
		out[i] = FromBookingView(v)
	}
	return out
}
