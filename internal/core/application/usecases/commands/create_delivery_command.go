package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/delivery"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand schedules the hand-over of a finished order.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor     user.Principal
	orderID   kernel.UUID
	addresses delivery.Addresses
	fee       kernel.Money
	notes     string

	guard guard.ConstructorGuard
}

func NewCreateDeliveryCommand(
	actor user.Principal,
	orderID kernel.UUID,
	addresses delivery.Addresses,
	fee kernel.Money,
	notes string,
) (CreateDeliveryCommand, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate(), fee.Validate()); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return CreateDeliveryCommand{
		actor:     actor,
		orderID:   orderID,
		addresses: addresses,
		fee:       fee,
		notes:     notes,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) Actor() user.Principal {
	return c.actor
}

func (c CreateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateDeliveryCommand) Addresses() delivery.Addresses {
	return c.addresses
}

func (c CreateDeliveryCommand) Fee() kernel.Money {
	return c.fee
}

func (c CreateDeliveryCommand) Notes() string {
	return c.notes
}
