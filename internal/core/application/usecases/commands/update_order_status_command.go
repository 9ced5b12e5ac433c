package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order along the tailor-driven transitions.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor   user.Principal
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(
	actor user.Principal,
	orderID kernel.UUID,
	status order.Status,
) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		actor:   actor,
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) Actor() user.Principal {
	return c.actor
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}
