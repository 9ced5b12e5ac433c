package ports

import (
	"context"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/measurement"
)

// MeasurementRepository defines the persistence contract for measurement sets.
type MeasurementRepository interface {
	Add(ctx context.Context, aggregate *measurement.MeasurementSet) error
	Update(ctx context.Context, aggregate *measurement.MeasurementSet) error
	Get(ctx context.Context, id kernel.UUID) (*measurement.MeasurementSet, error)

	// ListByOwner returns the owner's sets, newest first.
	ListByOwner(ctx context.Context, ownerID kernel.UUID) ([]*measurement.MeasurementSet, error)

	// ClearDefaultFor unsets the default flag on every set of the owner.
	ClearDefaultFor(ctx context.Context, ownerID kernel.UUID) error

	Delete(ctx context.Context, id kernel.UUID) error
}
