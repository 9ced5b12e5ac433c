package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/material"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/guard"
)

var ErrUpdateMaterialCommandIsNotConstructed = errors.New(
	"UpdateMaterialCommand must be created via NewUpdateMaterialCommand constructor",
)

// UpdateMaterialCommand replaces a material's description and price. Quantity
// and availability are only changed when given.
type UpdateMaterialCommand struct { //nolint:recvcheck //using for validation
	actor        user.Principal
	materialID   kernel.UUID
	details      material.Details
	pricePerYard kernel.Money
	quantity     *decimal.Decimal
	isAvailable  *bool

	guard guard.ConstructorGuard
}

func NewUpdateMaterialCommand(
	actor user.Principal,
	materialID kernel.UUID,
	details material.Details,
	pricePerYard kernel.Money,
	quantity *decimal.Decimal,
	isAvailable *bool,
) (UpdateMaterialCommand, error) {
	if err := errors.Join(actor.Validate(), materialID.Validate(), pricePerYard.Validate()); err != nil {
		return UpdateMaterialCommand{}, err
	}

	return UpdateMaterialCommand{
		actor:        actor,
		materialID:   materialID,
		details:      details,
		pricePerYard: pricePerYard,
		quantity:     quantity,
		isAvailable:  isAvailable,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateMaterialCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMaterialCommandIsNotConstructed)
}

func (c UpdateMaterialCommand) Actor() user.Principal {
	return c.actor
}

func (c UpdateMaterialCommand) MaterialID() kernel.UUID {
	return c.materialID
}

func (c UpdateMaterialCommand) Details() material.Details {
	return c.details
}

func (c UpdateMaterialCommand) PricePerYard() kernel.Money {
	return c.pricePerYard
}

// Quantity is nil when the stock count is left alone.
func (c UpdateMaterialCommand) Quantity() *decimal.Decimal {
	return c.quantity
}

// IsAvailable is nil when the catalogue visibility is left alone.
func (c UpdateMaterialCommand) IsAvailable() *bool {
	return c.isAvailable
}

var ErrDeleteMaterialCommandIsNotConstructed = errors.New(
	"DeleteMaterialCommand must be created via NewDeleteMaterialCommand constructor",
)

// DeleteMaterialCommand removes a material from its shop's catalogue.
type DeleteMaterialCommand struct { //nolint:recvcheck //using for validation
	actor      user.Principal
	materialID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteMaterialCommand(actor user.Principal, materialID kernel.UUID) (DeleteMaterialCommand, error) {
	if err := errors.Join(actor.Validate(), materialID.Validate()); err != nil {
		return DeleteMaterialCommand{}, err
	}
	return DeleteMaterialCommand{actor: actor, materialID: materialID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteMaterialCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMaterialCommandIsNotConstructed)
}

func (c DeleteMaterialCommand) Actor() user.Principal {
	return c.actor
}

func (c DeleteMaterialCommand) MaterialID() kernel.UUID {
	return c.materialID
}
