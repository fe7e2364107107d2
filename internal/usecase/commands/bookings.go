package commands

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingCommand struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, bookerID uuid.UUID, cmd CreateBookingCommand) (uuid.UUID, error)
	Decide(ctx context.Context, bookingID, actorID uuid.UUID, approved bool) error
	Cancel(ctx context.Context, bookingID, actorID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, bookerID uuid.UUID, cmd CreateBookingCommand) (uuid.UUID, error) {
	period, err := booking.NewPeriod(cmd.Start, cmd.End, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, bookerID); derr != nil {
			return markAbsenceAsNotFound(derr, "booker not found")
		}
		itemSnap, derr := tx.Reads().ItemByID(ctx, cmd.ItemID)
		if derr != nil {
			return markAbsenceAsNotFound(derr, "item not found")
		}

		b, verr := booking.NewBooking(booking.ItemSpec{
			ID:        itemSnap.ID,
			OwnerID:   itemSnap.OwnerID,
			Available: itemSnap.Available,
		}, bookerID, period)
		if verr != nil {
			return verr
		}

		id, derr := tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *bookingCommandsImpl) Decide(ctx context.Context, bookingID, actorID uuid.UUID, approved bool) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			return markAbsenceAsNotFound(derr, "booking not found")
		}

		b := snapshotToBooking(snap)
		if approved {
			derr = b.Approve(actorID, snap.ItemOwnerID)
		} else {
			derr = b.Reject(actorID, snap.ItemOwnerID)
		}
		if derr != nil {
			return derr
		}

		// Re-checks WAITING at write time: a concurrent decision loses here
		// instead of silently overwriting.
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), snap.ID, b.Status(), booking.StatusWaiting)
	})
}

func (uc *bookingCommandsImpl) Cancel(ctx context.Context, bookingID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			return markAbsenceAsNotFound(derr, "booking not found")
		}

		b := snapshotToBooking(snap)
		if derr = b.Cancel(actorID); derr != nil {
			return derr
		}
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), snap.ID, b.Status(), booking.StatusWaiting)
	})
}

func snapshotToBooking(s *shared.BookingSnapshot) *booking.Booking {
	return booking.ReconstructBooking(
		s.ID, s.ItemID, s.BookerID,
		booking.ReconstructPeriod(s.Start, s.End),
		booking.Status(s.Status),
		time.Time{}, time.Time{},
	)
}
