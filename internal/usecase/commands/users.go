package commands

import (
	"context"
	"time"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/patch"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateUserCommand struct {
	Name  string
	Email string
}

type UpdateUserCommand struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Create(ctx context.Context, cmd CreateUserCommand) (uuid.UUID, error)
	Update(ctx context.Context, userID uuid.UUID, cmd UpdateUserCommand) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

func (uc *userCommandsImpl) Create(ctx context.Context, cmd CreateUserCommand) (uuid.UUID, error) {
	name, err := user.NewName(cmd.Name)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	email, err := user.NewEmail(cmd.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, tx.DB(), user.NewUser(name, email))
		if derr != nil {
			return markDuplicateAsConflict(derr, "email already registered")
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *userCommandsImpl) Update(ctx context.Context, userID uuid.UUID, cmd UpdateUserCommand) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().UserByID(ctx, userID)
		if derr != nil {
			return markAbsenceAsNotFound(derr, "user not found")
		}

		name, verr := user.NewName(patch.Coalesce(cmd.Name, snap.Name))
		if verr != nil {
			return errs.Mark(verr, errs.ErrDomainValidation)
		}
		email, verr := user.NewEmail(patch.Coalesce(cmd.Email, snap.Email))
		if verr != nil {
			return errs.Mark(verr, errs.ErrDomainValidation)
		}

		// created_at/updated_at are owned by the store; zero values are ignored on update.
		updated := user.ReconstructUser(snap.ID, name, email, time.Time{}, time.Time{})
		if derr = tx.Users().Update(ctx, tx.DB(), updated); derr != nil {
			return markDuplicateAsConflict(derr, "email already registered")
		}
		return nil
	})
}

func (uc *userCommandsImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, userID); derr != nil {
			return markAbsenceAsNotFound(derr, "user not found")
		}

		hasDeps, derr := tx.Reads().UserHasDependents(ctx, userID)
		if derr != nil {
			return derr
		}
		if hasDeps {
			return errs.Mark(errs.New("user still owns items or bookings"), errs.ErrConflict)
		}
		return tx.Users().Delete(ctx, tx.DB(), userID)
	})
}

func markDuplicateAsConflict(err error, msg string) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(errs.New(msg), errs.ErrConflict)
	}
	return err
}

func markAbsenceAsNotFound(err error, msg string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.New(msg), errs.ErrNotFound)
	}
	return err
}
