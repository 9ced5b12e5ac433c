package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/guard"
)

var ErrAdjustMaterialQuantityCommandIsNotConstructed = errors.New(
	"AdjustMaterialQuantityCommand must be created via NewAdjustMaterialQuantityCommand constructor",
)

// AdjustMaterialQuantityCommand adds delta yards (negative to remove) to a material's stock.
type AdjustMaterialQuantityCommand struct { //nolint:recvcheck //using for validation
	actor      user.Principal
	materialID kernel.UUID
	delta      decimal.Decimal

	guard guard.ConstructorGuard
}

func NewAdjustMaterialQuantityCommand(
	actor user.Principal,
	materialID kernel.UUID,
	delta decimal.Decimal,
) (AdjustMaterialQuantityCommand, error) {
	if err := errors.Join(actor.Validate(), materialID.Validate()); err != nil {
		return AdjustMaterialQuantityCommand{}, err
	}

	return AdjustMaterialQuantityCommand{
		actor:      actor,
		materialID: materialID,
		delta:      delta,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AdjustMaterialQuantityCommand) Validate() error {
	return c.guard.Validate(ErrAdjustMaterialQuantityCommandIsNotConstructed)
}

func (c AdjustMaterialQuantityCommand) Actor() user.Principal {
	return c.actor
}

func (c AdjustMaterialQuantityCommand) MaterialID() kernel.UUID {
	return c.materialID
}

func (c AdjustMaterialQuantityCommand) Delta() decimal.Decimal {
	return c.delta
}
