package commands

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestCommands interface {
	Create(ctx context.Context, requestorID uuid.UUID, description string) (uuid.UUID, error)
}

type requestCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRequestCommands(uow shared.UnitOfWork, clk clock.Clock) RequestCommands {
	return &requestCommandsImpl{uow: uow, clock: clk}
}

func (uc *requestCommandsImpl) Create(ctx context.Context, requestorID uuid.UUID, description string) (uuid.UUID, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, requestorID); derr != nil {
			return markAbsenceAsNotFound(derr, "requestor not found")
		}

		req, verr := request.NewItemRequest(description, requestorID, uc.clock.Now())
		if verr != nil {
			return errs.Mark(verr, errs.ErrDomainValidation)
		}

		id, derr := tx.Requests().Create(ctx, tx.DB(), req)
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
