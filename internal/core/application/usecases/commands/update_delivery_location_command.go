package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/guard"
)

var ErrUpdateDeliveryLocationCommandIsNotConstructed = errors.New(
	"UpdateDeliveryLocationCommand must be created via NewUpdateDeliveryLocationCommand constructor",
)

// UpdateDeliveryLocationCommand reports the rider's position.
type UpdateDeliveryLocationCommand struct { //nolint:recvcheck //using for validation
	actor      user.Principal
	deliveryID kernel.UUID
	location   kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryLocationCommand(
	actor user.Principal,
	deliveryID kernel.UUID,
	location kernel.GeoPoint,
) (UpdateDeliveryLocationCommand, error) {
	if err := errors.Join(actor.Validate(), deliveryID.Validate(), location.Validate()); err != nil {
		return UpdateDeliveryLocationCommand{}, err
	}

	return UpdateDeliveryLocationCommand{
		actor:      actor,
		deliveryID: deliveryID,
		location:   location,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDeliveryLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryLocationCommandIsNotConstructed)
}

func (c UpdateDeliveryLocationCommand) Actor() user.Principal {
	return c.actor
}

func (c UpdateDeliveryLocationCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c UpdateDeliveryLocationCommand) Location() kernel.GeoPoint {
	return c.location
}
