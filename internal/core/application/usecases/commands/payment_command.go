package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/guard"
)

var ErrPaymentCommandIsNotConstructed = errors.New(
	"PaymentCommand must be created via NewPaymentCommand constructor",
)

// PaymentCommand targets one payment on behalf of the caller. Release and
// refund share it.
type PaymentCommand struct { //nolint:recvcheck //using for validation
	actor     user.Principal
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewPaymentCommand(actor user.Principal, paymentID kernel.UUID) (PaymentCommand, error) {
	if err := errors.Join(actor.Validate(), paymentID.Validate()); err != nil {
		return PaymentCommand{}, err
	}

	return PaymentCommand{
		actor:     actor,
		paymentID: paymentID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PaymentCommand) Validate() error {
	return c.guard.Validate(ErrPaymentCommandIsNotConstructed)
}

func (c PaymentCommand) Actor() user.Principal {
	return c.actor
}

func (c PaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}
