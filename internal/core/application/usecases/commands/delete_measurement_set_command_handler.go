package commands

import (
	"context"

	"tailorshop/internal/pkg/errs"
)

type DeleteMeasurementSetCommandHandler struct {
	uowFactory MeasurementUoWFactory
}

func NewDeleteMeasurementSetCommandHandler(uowFactory MeasurementUoWFactory) DeleteMeasurementSetCommandHandler {
	return DeleteMeasurementSetCommandHandler{uowFactory: uowFactory}
}

func (h DeleteMeasurementSetCommandHandler) Handle(ctx context.Context, cmd MeasurementSetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MeasurementRepository()
	set, err := repo.Get(ctx, cmd.SetID())
	if err != nil {
		return err
	}

	if !set.OwnedBy(cmd.Actor().UserID) {
		return errs.NewAccessDeniedError("delete measurement set", "not the owner")
	}

	if err = repo.Delete(ctx, set.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
