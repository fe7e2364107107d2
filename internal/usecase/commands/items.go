package commands

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	domcomment "shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/patch"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateItemCommand struct {
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type UpdateItemCommand struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, cmd CreateItemCommand) (uuid.UUID, error)
	Update(ctx context.Context, itemID, ownerID uuid.UUID, cmd UpdateItemCommand) error
	AddComment(ctx context.Context, itemID, authorID uuid.UUID, text string) (uuid.UUID, error)
}

type itemCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewItemCommands(uow shared.UnitOfWork, clk clock.Clock) ItemCommands {
	return &itemCommandsImpl{uow: uow, clock: clk}
}

func (uc *itemCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, cmd CreateItemCommand) (uuid.UUID, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, ownerID); derr != nil {
			return markAbsenceAsNotFound(derr, "owner not found")
		}
		if cmd.RequestID != nil {
			if _, derr := tx.Reads().RequestByID(ctx, *cmd.RequestID); derr != nil {
				return markAbsenceAsNotFound(derr, "item request not found")
			}
		}

		it, verr := item.NewItem(cmd.Name, cmd.Description, cmd.Available, ownerID, cmd.RequestID)
		if verr != nil {
			return errs.Mark(verr, errs.ErrDomainValidation)
		}

		id, derr := tx.Items().Create(ctx, tx.DB(), it)
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

func (uc *itemCommandsImpl) Update(ctx context.Context, itemID, ownerID uuid.UUID, cmd UpdateItemCommand) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ItemByID(ctx, itemID)
		if derr != nil {
			return markAbsenceAsNotFound(derr, "item not found")
		}
		if snap.OwnerID != ownerID {
			return errs.Mark(errs.New("only the owner may edit an item"), errs.ErrForbidden)
		}

		updated, verr := item.NewItem(
			patch.Coalesce(cmd.Name, snap.Name),
			patch.Coalesce(cmd.Description, snap.Description),
			patch.Coalesce(cmd.Available, snap.Available),
			snap.OwnerID,
			snap.RequestID,
		)
		if verr != nil {
			return errs.Mark(verr, errs.ErrDomainValidation)
		}

		it := item.ReconstructItem(snap.ID, updated.Name(), updated.Description(), updated.Available(), snap.OwnerID, snap.RequestID, time.Time{}, time.Time{})
		return tx.Items().Update(ctx, tx.DB(), it)
	})
}

func (uc *itemCommandsImpl) AddComment(ctx context.Context, itemID, authorID uuid.UUID, text string) (uuid.UUID, error) {
	now := uc.clock.Now()

	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().ItemByID(ctx, itemID); derr != nil {
			return markAbsenceAsNotFound(derr, "item not found")
		}
		if _, derr := tx.Reads().UserByID(ctx, authorID); derr != nil {
			return markAbsenceAsNotFound(derr, "author not found")
		}

		snaps, derr := tx.Reads().BookingsByItem(ctx, itemID)
		if derr != nil {
			return derr
		}
		if !domcomment.Eligible(snapshotsToBookings(snaps), authorID, now) {
			return errs.Mark(errs.New("commenting requires a started, non-rejected booking of the item"), errs.ErrForbidden)
		}

		cm, verr := domcomment.NewComment(itemID, authorID, text, now)
		if verr != nil {
			return errs.Mark(verr, errs.ErrDomainValidation)
		}

		id, derr := tx.Comments().Create(ctx, tx.DB(), cm)
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

func snapshotsToBookings(snaps []*shared.BookingSnapshot) []*booking.Booking {
	out := make([]*booking.Booking, len(snaps))
	for i, s := range snaps {
		out[i] = booking.ReconstructBooking(
			s.ID, s.ItemID, s.BookerID,
			booking.ReconstructPeriod(s.Start, s.End),
			booking.Status(s.Status),
			time.Time{}, time.Time{},
		)
	}
	return out
}
