package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/guard"
)

var ErrMeasurementSetCommandIsNotConstructed = errors.New(
	"MeasurementSetCommand must be created via its constructor",
)

// MeasurementSetCommand targets one stored set on behalf of the caller. It is
// shared by DeleteMeasurementSetCommandHandler and
// SetDefaultMeasurementSetCommandHandler.
type MeasurementSetCommand struct { //nolint:recvcheck //using for validation
	actor user.Principal
	setID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMeasurementSetCommand(actor user.Principal, setID kernel.UUID) (MeasurementSetCommand, error) {
	if err := errors.Join(actor.Validate(), setID.Validate()); err != nil {
		return MeasurementSetCommand{}, err
	}

	return MeasurementSetCommand{
		actor: actor,
		setID: setID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c MeasurementSetCommand) Validate() error {
	return c.guard.Validate(ErrMeasurementSetCommandIsNotConstructed)
}

func (c MeasurementSetCommand) Actor() user.Principal {
	return c.actor
}

func (c MeasurementSetCommand) SetID() kernel.UUID {
	return c.setID
}
