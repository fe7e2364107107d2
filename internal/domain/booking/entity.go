package booking

import (
	"time"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

// ItemSpec is the slice of the item a booking rule needs. Callers resolve
// it before invoking domain logic; the booking never holds a partially
// loaded item.
type ItemSpec struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Available bool
}

type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	period    Period
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a WAITING booking after running the creation rules:
// the item must be open for booking and owners cannot book their own items.
func NewBooking(item ItemSpec, bookerID uuid.UUID, period Period) (*Booking, error) {
	if !item.Available {
		return nil, errs.Mark(errs.New("item is not available for booking"), errs.ErrUnavailable)
	}
	if bookerID == item.OwnerID {
		return nil, errs.Mark(errs.New("owner cannot book own item"), errs.ErrForbidden)
	}
	return &Booking{
		id:       uuid.New(),
		itemID:   item.ID,
		bookerID: bookerID,
		period:   period,
		status:   StatusWaiting,
	}, nil
}

func ReconstructBooking(id, itemID, bookerID uuid.UUID, period Period, status Status, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		period:    period,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) BookerID() uuid.UUID  { return b.bookerID }
func (b *Booking) Period() Period       { return b.period }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// Identity implements identity.Identifiable.
func (b *Booking) Identity() uuid.UUID { return b.id }

// Approve transitions WAITING -> APPROVED. Only the item owner may decide;
// the actor check runs before the status check so an unauthorized caller
// always sees Forbidden regardless of the booking's state.
func (b *Booking) Approve(actorID, itemOwnerID uuid.UUID) error {
	return b.decide(actorID, itemOwnerID, StatusApproved)
}

// Reject transitions WAITING -> REJECTED under the same rules as Approve.
func (b *Booking) Reject(actorID, itemOwnerID uuid.UUID) error {
	return b.decide(actorID, itemOwnerID, StatusRejected)
}

func (b *Booking) decide(actorID, itemOwnerID uuid.UUID, next Status) error {
	if actorID != itemOwnerID {
		return errs.Mark(errs.New("only the item owner may decide a booking"), errs.ErrForbidden)
	}
	if b.status != StatusWaiting {
		return errs.Mark(errs.Newf("booking is %s, not WAITING", b.status), errs.ErrConflict)
	}
	b.status = next
	return nil
}

// Cancel transitions WAITING -> CANCELED. Only the booker may cancel, and
// only while the booking is still waiting for a decision.
func (b *Booking) Cancel(actorID uuid.UUID) error {
	if actorID != b.bookerID {
		return errs.Mark(errs.New("only the booker may cancel a booking"), errs.ErrForbidden)
	}
	if b.status != StatusWaiting {
		return errs.Mark(errs.Newf("booking is %s, not WAITING", b.status), errs.ErrConflict)
	}
	b.status = StatusCanceled
	return nil
}
