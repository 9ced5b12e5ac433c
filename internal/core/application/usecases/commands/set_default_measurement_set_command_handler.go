package commands

import (
	"context"

	"tailorshop/internal/core/domain/model/measurement"
	"tailorshop/internal/pkg/errs"
)

// SetDefaultMeasurementSetCommandHandler makes one set the owner's default.
// Siblings are cleared and the target is flagged in the same transaction, so
// readers never see two defaults or none.
type SetDefaultMeasurementSetCommandHandler struct {
	uowFactory MeasurementUoWFactory
}

func NewSetDefaultMeasurementSetCommandHandler(uowFactory MeasurementUoWFactory) SetDefaultMeasurementSetCommandHandler {
	return SetDefaultMeasurementSetCommandHandler{uowFactory: uowFactory}
}

func (h SetDefaultMeasurementSetCommandHandler) Handle(
	ctx context.Context,
	cmd MeasurementSetCommand,
) (*measurement.MeasurementSet, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MeasurementRepository()
	set, err := repo.Get(ctx, cmd.SetID())
	if err != nil {
		return nil, err
	}

	if !set.OwnedBy(cmd.Actor().UserID) {
		return nil, errs.NewAccessDeniedError("set default measurement set", "not the owner")
	}

	if err = repo.ClearDefaultFor(ctx, set.OwnerID()); err != nil {
		return nil, err
	}

	set.MarkDefault()
	if err = repo.Update(ctx, set); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return set, nil
}
