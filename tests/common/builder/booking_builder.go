//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	OwnerID   uuid.UUID
	BookerID  uuid.UUID
	Available bool
	Start     time.Time
	End       time.Time
	Now       time.Time
	Status    booking.Status
	ItemName  string
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:        uuid.New(),
		ItemID:    uuid.New(),
		OwnerID:   uuid.New(),
		BookerID:  uuid.New(),
		Available: true,
		Start:     now.Add(24 * time.Hour),
		End:       now.Add(48 * time.Hour),
		Now:       now,
		Status:    booking.StatusWaiting,
		ItemName:  "Cordless drill",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods

// BuildDomain runs the full creation path: period validation first, then
// the booking creation rules.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	period, err := booking.NewPeriod(b.Start, b.End, b.Now)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(booking.ItemSpec{
		ID:        b.ItemID,
		OwnerID:   b.OwnerID,
		Available: b.Available,
	}, b.BookerID, period)
}

// BuildStored reconstructs a persisted booking, bypassing creation checks.
func (b *BookingBuilder) BuildStored() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID, b.ItemID, b.BookerID,
		booking.ReconstructPeriod(b.Start, b.End),
		b.Status, b.Now, b.Now,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          b.ID,
		Start:       b.Start,
		End:         b.End,
		Status:      b.Status.String(),
		ItemID:      b.ItemID,
		ItemName:    b.ItemName,
		ItemOwnerID: b.OwnerID,
		BookerID:    b.BookerID,
		BookerName:  "Test Booker",
		CreatedAt:   b.Now,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:          b.ID,
		ItemID:      b.ItemID,
		ItemOwnerID: b.OwnerID,
		BookerID:    b.BookerID,
		Start:       b.Start,
		End:         b.End,
		Status:      b.Status.String(),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithBookerID(id uuid.UUID) *BookingBuilder {
	b.BookerID = id
	return b
}

func (b *BookingBuilder) WithOwnerID(id uuid.UUID) *BookingBuilder {
	b.OwnerID = id
	return b
}

func (b *BookingBuilder) WithItemID(id uuid.UUID) *BookingBuilder {
	b.ItemID = id
	return b
}

func (b *BookingBuilder) WithPeriod(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) AsUnavailable() *BookingBuilder {
	b.Available = false
	return b
}

// AsSelfBooking makes the booker the item owner.
func (b *BookingBuilder) AsSelfBooking() *BookingBuilder {
	b.BookerID = b.OwnerID
	return b
}
