package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/measurement"
	"tailorshop/internal/core/domain/services"
	"tailorshop/internal/pkg/errs"
)

// MeasurementSetResult is a stored set together with its validation report.
type MeasurementSetResult struct {
	Set    *measurement.MeasurementSet
	Report services.Report
}

// CreateMeasurementSetCommandHandler validates readings field by field and as
// a whole, and persists the set when the report is not invalid. Warnings do
// not block the save.
type CreateMeasurementSetCommandHandler struct {
	uowFactory MeasurementUoWFactory
	validator  services.MeasurementValidator
}

func NewCreateMeasurementSetCommandHandler(uowFactory MeasurementUoWFactory) CreateMeasurementSetCommandHandler {
	return CreateMeasurementSetCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewMeasurementValidator(),
	}
}

func (h CreateMeasurementSetCommandHandler) Handle(
	ctx context.Context,
	cmd CreateMeasurementSetCommand,
) (MeasurementSetResult, error) {
	if err := cmd.Validate(); err != nil {
		return MeasurementSetResult{}, err
	}

	set, err := measurement.NewMeasurementSet(kernel.NewUUID(), cmd.Actor().UserID, cmd.Details(), time.Now().UTC())
	if err != nil {
		return MeasurementSetResult{}, err
	}

	report := h.validator.ReportSet(set, cmd.Details().Unit)
	if err = rejectInvalidReport(report); err != nil {
		return MeasurementSetResult{Report: report}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return MeasurementSetResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MeasurementRepository()
	if cmd.MakeDefault() {
		if err = repo.ClearDefaultFor(ctx, set.OwnerID()); err != nil {
			return MeasurementSetResult{}, err
		}
		set.MarkDefault()
	}

	if err = repo.Add(ctx, set); err != nil {
		return MeasurementSetResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return MeasurementSetResult{}, err
	}

	return MeasurementSetResult{Set: set, Report: report}, nil
}

func rejectInvalidReport(report services.Report) error {
	if !report.HasErrors() {
		return nil
	}

	messages := make([]string, 0, len(report.Issues))
	for _, issue := range report.Issues {
		messages = append(messages, issue.Message)
	}
	return errs.NewValueIsInvalidErrorWithCause("measurements", errors.New(strings.Join(messages, "; ")))
}
