package memory

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/measurement"
	"tailorshop/internal/pkg/errs"
)

type MeasurementRepository struct {
	uow *UnitOfWork
}

func (r *MeasurementRepository) Add(ctx context.Context, aggregate *measurement.MeasurementSet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	stored, err := cloneMeasurementSet(aggregate)
	if err != nil {
		return err
	}

	return r.uow.run(ctx, func(t *tables) error {
		if _, ok := t.measurements[aggregate.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("measurementSetId", errAlreadyExists)
		}
		if err := checkSingleDefault(t, stored); err != nil {
			return err
		}
		t.measurements[aggregate.ID()] = stored
		return nil
	})
}

func (r *MeasurementRepository) Update(ctx context.Context, aggregate *measurement.MeasurementSet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	stored, err := cloneMeasurementSet(aggregate)
	if err != nil {
		return err
	}

	return r.uow.run(ctx, func(t *tables) error {
		if _, ok := t.measurements[aggregate.ID()]; !ok {
			return errs.NewObjectNotFoundError("measurementSet", aggregate.ID().String())
		}
		if err := checkSingleDefault(t, stored); err != nil {
			return err
		}
		t.measurements[aggregate.ID()] = stored
		return nil
	})
}

func (r *MeasurementRepository) Get(ctx context.Context, id kernel.UUID) (*measurement.MeasurementSet, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *measurement.MeasurementSet
	err := r.uow.run(ctx, func(t *tables) error {
		set, ok := t.measurements[id]
		if !ok {
			return errs.NewObjectNotFoundError("measurementSet", id.String())
		}
		var err error
		found, err = cloneMeasurementSet(set)
		return err
	})
	return found, err
}

func (r *MeasurementRepository) ListByOwner(
	ctx context.Context,
	ownerID kernel.UUID,
) ([]*measurement.MeasurementSet, error) {
	var found []*measurement.MeasurementSet
	err := r.uow.run(ctx, func(t *tables) error {
		found = make([]*measurement.MeasurementSet, 0)
		for _, set := range t.measurements {
			if !set.OwnedBy(ownerID) {
				continue
			}
			c, err := cloneMeasurementSet(set)
			if err != nil {
				return err
			}
			found = append(found, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(found, func(a, b *measurement.MeasurementSet) int {
		return cmp.Or(
			b.CreatedAt().Compare(a.CreatedAt()),
			strings.Compare(a.ID().String(), b.ID().String()),
		)
	})
	return found, nil
}

func (r *MeasurementRepository) ClearDefaultFor(ctx context.Context, ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	return r.uow.run(ctx, func(t *tables) error {
		for id, set := range t.measurements {
			if !set.OwnedBy(ownerID) || !set.IsDefault() {
				continue
			}
			cleared, err := cloneMeasurementSet(set)
			if err != nil {
				return err
			}
			cleared.ClearDefault()
			t.measurements[id] = cleared
		}
		return nil
	})
}

func (r *MeasurementRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.uow.run(ctx, func(t *tables) error {
		if _, ok := t.measurements[id]; !ok {
			return errs.NewObjectNotFoundError("measurementSet", id.String())
		}
		delete(t.measurements, id)
		for orderID, o := range t.orders {
			if ref := o.Details().MeasurementID; ref != nil && ref.IsEqual(id) {
				detached, err := detachMeasurement(o)
				if err != nil {
					return err
				}
				t.orders[orderID] = detached
			}
		}
		return nil
	})
}

// checkSingleDefault allows one default set per owner.
func checkSingleDefault(t *tables, candidate *measurement.MeasurementSet) error {
	if !candidate.IsDefault() {
		return nil
	}
	for id, set := range t.measurements {
		if id == candidate.ID() || !set.IsDefault() || !set.OwnedBy(candidate.OwnerID()) {
			continue
		}
		return errs.NewValueIsInvalidErrorWithCause("isDefault", errors.New("owner already has a default measurement set"))
	}
	return nil
}
