package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/errs"
	"tailorshop/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand is issued by an admin to (re)assign a rider to a delivery.
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	actor      user.Principal
	deliveryID kernel.UUID
	riderID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignRiderCommand(actor user.Principal, deliveryID kernel.UUID, riderID kernel.UUID) (AssignRiderCommand, error) {
	if err := errors.Join(actor.Validate(), deliveryID.Validate(), riderID.Validate()); err != nil {
		return AssignRiderCommand{}, err
	}
	if !actor.IsAdmin() {
		return AssignRiderCommand{}, errs.NewAccessDeniedError("assign rider", "admin role required")
	}

	return AssignRiderCommand{
		actor:      actor,
		deliveryID: deliveryID,
		riderID:    riderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

func (c AssignRiderCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c AssignRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}
