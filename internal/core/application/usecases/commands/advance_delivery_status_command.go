package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/delivery"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/guard"
)

var ErrAdvanceDeliveryStatusCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryStatusCommand must be created via NewAdvanceDeliveryStatusCommand constructor",
)

// AdvanceDeliveryStatusCommand is sent by the assigned rider. Location is optional.
type AdvanceDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	actor      user.Principal
	deliveryID kernel.UUID
	status     delivery.Status
	location   *kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewAdvanceDeliveryStatusCommand(
	actor user.Principal,
	deliveryID kernel.UUID,
	status delivery.Status,
	location *kernel.GeoPoint,
) (AdvanceDeliveryStatusCommand, error) {
	if err := errors.Join(actor.Validate(), deliveryID.Validate(), status.Validate()); err != nil {
		return AdvanceDeliveryStatusCommand{}, err
	}

	return AdvanceDeliveryStatusCommand{
		actor:      actor,
		deliveryID: deliveryID,
		status:     status,
		location:   location,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryStatusCommandIsNotConstructed)
}

func (c AdvanceDeliveryStatusCommand) Actor() user.Principal {
	return c.actor
}

func (c AdvanceDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c AdvanceDeliveryStatusCommand) Status() delivery.Status {
	return c.status
}

func (c AdvanceDeliveryStatusCommand) Location() *kernel.GeoPoint {
	return c.location
}
