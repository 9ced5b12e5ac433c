package queries

import (
	"context"
	"slices"

	"tailorshop/internal/core/domain/model/measurement"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
)

// GetMeasurementSetQueryHandler returns one set. Only the owner may read it.
type GetMeasurementSetQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetMeasurementSetQueryHandler(uowFactory ports.UnitOfWorkFactory) GetMeasurementSetQueryHandler {
	return GetMeasurementSetQueryHandler{uowFactory: uowFactory}
}

func (h GetMeasurementSetQueryHandler) Handle(
	ctx context.Context,
	query MeasurementSetsQuery,
) (*measurement.MeasurementSet, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if query.SetID() == nil {
		return nil, errs.NewValueIsRequiredError("id")
	}

	set, err := h.uowFactory.Create().MeasurementRepository().Get(ctx, *query.SetID())
	if err != nil {
		return nil, err
	}
	if !set.OwnedBy(query.Actor().UserID) {
		return nil, errs.NewAccessDeniedError("get measurement set", "not the owner")
	}
	return set, nil
}

// ListMeasurementSetsQueryHandler returns the caller's sets, newest first.
type ListMeasurementSetsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListMeasurementSetsQueryHandler(uowFactory ports.UnitOfWorkFactory) ListMeasurementSetsQueryHandler {
	return ListMeasurementSetsQueryHandler{uowFactory: uowFactory}
}

func (h ListMeasurementSetsQueryHandler) Handle(
	ctx context.Context,
	query MeasurementSetsQuery,
) ([]*measurement.MeasurementSet, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sets, err := h.uowFactory.Create().MeasurementRepository().ListByOwner(ctx, query.Actor().UserID)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(sets, func(a, b *measurement.MeasurementSet) int {
		return b.CreatedAt().Compare(a.CreatedAt())
	})
	return sets, nil
}
