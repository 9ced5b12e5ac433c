package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/payment"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/guard"
)

var ErrCreatePaymentIntentCommandIsNotConstructed = errors.New(
	"CreatePaymentIntentCommand must be created via NewCreatePaymentIntentCommand constructor",
)

// CreatePaymentIntentCommand asks for a client secret to pay for an order.
//
// OrderID and Amount are both optional: the order total wins whenever the
// order can be resolved, Amount is the fallback otherwise.
type CreatePaymentIntentCommand struct { //nolint:recvcheck //using for validation
	actor    user.Principal
	orderID  *kernel.UUID
	amount   *float64
	currency payment.Currency

	guard guard.ConstructorGuard
}

func NewCreatePaymentIntentCommand(
	actor user.Principal,
	orderID *kernel.UUID,
	amount *float64,
	currency string,
	defaultCurrency payment.Currency,
) (CreatePaymentIntentCommand, error) {
	if err := actor.Validate(); err != nil {
		return CreatePaymentIntentCommand{}, err
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return CreatePaymentIntentCommand{}, err
		}
	}

	c, err := payment.ParseCurrency(currency, defaultCurrency)
	if err != nil {
		return CreatePaymentIntentCommand{}, err
	}

	return CreatePaymentIntentCommand{
		actor:    actor,
		orderID:  orderID,
		amount:   amount,
		currency: c,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePaymentIntentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentIntentCommandIsNotConstructed)
}

func (c CreatePaymentIntentCommand) Actor() user.Principal {
	return c.actor
}

func (c CreatePaymentIntentCommand) OrderID() *kernel.UUID {
	return c.orderID
}

func (c CreatePaymentIntentCommand) Amount() *float64 {
	return c.amount
}

func (c CreatePaymentIntentCommand) Currency() payment.Currency {
	return c.currency
}
