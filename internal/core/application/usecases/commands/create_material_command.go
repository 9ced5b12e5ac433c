package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/material"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/guard"
)

var ErrCreateMaterialCommandIsNotConstructed = errors.New(
	"CreateMaterialCommand must be created via NewCreateMaterialCommand constructor",
)

// CreateMaterialCommand lists a fabric in the caller's shop.
type CreateMaterialCommand struct { //nolint:recvcheck //using for validation
	actor        user.Principal
	details      material.Details
	pricePerYard kernel.Money
	quantity     decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreateMaterialCommand(
	actor user.Principal,
	details material.Details,
	pricePerYard kernel.Money,
	quantity decimal.Decimal,
) (CreateMaterialCommand, error) {
	if err := errors.Join(actor.Validate(), pricePerYard.Validate()); err != nil {
		return CreateMaterialCommand{}, err
	}

	return CreateMaterialCommand{
		actor:        actor,
		details:      details,
		pricePerYard: pricePerYard,
		quantity:     quantity,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMaterialCommand) Validate() error {
	return c.guard.Validate(ErrCreateMaterialCommandIsNotConstructed)
}

func (c CreateMaterialCommand) Actor() user.Principal {
	return c.actor
}

func (c CreateMaterialCommand) Details() material.Details {
	return c.details
}

func (c CreateMaterialCommand) PricePerYard() kernel.Money {
	return c.pricePerYard
}

func (c CreateMaterialCommand) Quantity() decimal.Decimal {
	return c.quantity
}
