package queries

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/guard"
)

var ErrMeasurementSetsQueryIsNotConstructed = errors.New(
	"MeasurementSetsQuery must be created via NewMeasurementSetsQuery constructor",
)

// MeasurementSetsQuery reads the caller's measurement sets. With a set id it
// targets one set, otherwise it lists them all.
type MeasurementSetsQuery struct { //nolint:recvcheck //using for validation
	actor user.Principal
	setID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewMeasurementSetsQuery(actor user.Principal, setID *kernel.UUID) (MeasurementSetsQuery, error) {
	if err := actor.Validate(); err != nil {
		return MeasurementSetsQuery{}, err
	}
	if setID != nil {
		if err := setID.Validate(); err != nil {
			return MeasurementSetsQuery{}, err
		}
	}
	return MeasurementSetsQuery{actor: actor, setID: setID, guard: guard.NewConstructorGuard()}, nil
}

func (q MeasurementSetsQuery) Validate() error {
	return q.guard.Validate(ErrMeasurementSetsQueryIsNotConstructed)
}

func (q MeasurementSetsQuery) Actor() user.Principal {
	return q.actor
}

func (q MeasurementSetsQuery) SetID() *kernel.UUID {
	return q.setID
}
