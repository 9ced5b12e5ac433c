package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/measurement"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/guard"
)

var ErrUpdateMeasurementSetCommandIsNotConstructed = errors.New(
	"UpdateMeasurementSetCommand must be created via NewUpdateMeasurementSetCommand constructor",
)

// UpdateMeasurementSetCommand replaces the content of an existing set.
// IsDefault is nil when the default flag is left alone.
type UpdateMeasurementSetCommand struct { //nolint:recvcheck //using for validation
	actor     user.Principal
	setID     kernel.UUID
	details   measurement.Details
	isDefault *bool

	guard guard.ConstructorGuard
}

func NewUpdateMeasurementSetCommand(
	actor user.Principal,
	setID kernel.UUID,
	details measurement.Details,
	isDefault *bool,
) (UpdateMeasurementSetCommand, error) {
	if err := errors.Join(actor.Validate(), setID.Validate()); err != nil {
		return UpdateMeasurementSetCommand{}, err
	}

	return UpdateMeasurementSetCommand{
		actor:     actor,
		setID:     setID,
		details:   details,
		isDefault: isDefault,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateMeasurementSetCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMeasurementSetCommandIsNotConstructed)
}

func (c UpdateMeasurementSetCommand) Actor() user.Principal {
	return c.actor
}

func (c UpdateMeasurementSetCommand) SetID() kernel.UUID {
	return c.setID
}

func (c UpdateMeasurementSetCommand) Details() measurement.Details {
	return c.details
}

func (c UpdateMeasurementSetCommand) IsDefault() *bool {
	return c.isDefault
}
