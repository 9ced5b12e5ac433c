package commands

import (
	"context"
	"time"

	"tailorshop/internal/core/domain/services"
	"tailorshop/internal/pkg/errs"
)

// UpdateMeasurementSetCommandHandler applies the same checks as creation.
// Only the owner may edit a set. Making the set the default clears the
// owner's other sets in the same transaction.
type UpdateMeasurementSetCommandHandler struct {
	uowFactory MeasurementUoWFactory
	validator  services.MeasurementValidator
}

func NewUpdateMeasurementSetCommandHandler(uowFactory MeasurementUoWFactory) UpdateMeasurementSetCommandHandler {
	return UpdateMeasurementSetCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewMeasurementValidator(),
	}
}

func (h UpdateMeasurementSetCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateMeasurementSetCommand,
) (MeasurementSetResult, error) {
	if err := cmd.Validate(); err != nil {
		return MeasurementSetResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return MeasurementSetResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MeasurementRepository()
	set, err := repo.Get(ctx, cmd.SetID())
	if err != nil {
		return MeasurementSetResult{}, err
	}

	if !set.OwnedBy(cmd.Actor().UserID) {
		return MeasurementSetResult{}, errs.NewAccessDeniedError("update measurement set", "not the owner")
	}

	if err = set.Update(cmd.Details(), time.Now().UTC()); err != nil {
		return MeasurementSetResult{}, err
	}

	report := h.validator.ReportSet(set, cmd.Details().Unit)
	if err = rejectInvalidReport(report); err != nil {
		return MeasurementSetResult{Report: report}, err
	}

	if isDefault := cmd.IsDefault(); isDefault != nil {
		if *isDefault {
			if err = repo.ClearDefaultFor(ctx, set.OwnerID()); err != nil {
				return MeasurementSetResult{}, err
			}
			set.MarkDefault()
		} else {
			set.ClearDefault()
		}
	}

	if err = repo.Update(ctx, set); err != nil {
		return MeasurementSetResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return MeasurementSetResult{}, err
	}

	return MeasurementSetResult{Set: set, Report: report}, nil
}
