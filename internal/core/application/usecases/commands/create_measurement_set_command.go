package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/measurement"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/guard"
)

var ErrCreateMeasurementSetCommandIsNotConstructed = errors.New(
	"CreateMeasurementSetCommand must be created via NewCreateMeasurementSetCommand constructor",
)

// CreateMeasurementSetCommand stores a new set of body readings for the caller.
// Readings are given in details.Unit.
type CreateMeasurementSetCommand struct { //nolint:recvcheck //using for validation
	actor       user.Principal
	details     measurement.Details
	makeDefault bool

	guard guard.ConstructorGuard
}

func NewCreateMeasurementSetCommand(
	actor user.Principal,
	details measurement.Details,
	makeDefault bool,
) (CreateMeasurementSetCommand, error) {
	if err := actor.Validate(); err != nil {
		return CreateMeasurementSetCommand{}, err
	}

	return CreateMeasurementSetCommand{
		actor:       actor,
		details:     details,
		makeDefault: makeDefault,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMeasurementSetCommand) Validate() error {
	return c.guard.Validate(ErrCreateMeasurementSetCommandIsNotConstructed)
}

func (c CreateMeasurementSetCommand) Actor() user.Principal {
	return c.actor
}

func (c CreateMeasurementSetCommand) Details() measurement.Details {
	return c.details
}

func (c CreateMeasurementSetCommand) MakeDefault() bool {
	return c.makeDefault
}
