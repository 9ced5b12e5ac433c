package commands

import (
	"context"

	"tailorshop/internal/core/domain/model/material"
)

// AdjustMaterialQuantityCommandHandler changes stock on behalf of the shop
// owner. The resulting quantity may not go below zero.
type AdjustMaterialQuantityCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewAdjustMaterialQuantityCommandHandler(uowFactory CatalogUoWFactory) AdjustMaterialQuantityCommandHandler {
	return AdjustMaterialQuantityCommandHandler{uowFactory: uowFactory}
}

func (h AdjustMaterialQuantityCommandHandler) Handle(
	ctx context.Context,
	cmd AdjustMaterialQuantityCommand,
) (*material.Material, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	m, err := loadOwnedMaterial(ctx, uow, cmd.MaterialID(), cmd.Actor(), "adjust material quantity")
	if err != nil {
		return nil, err
	}

	if err = m.AdjustQuantity(cmd.Delta()); err != nil {
		return nil, err
	}

	if err = uow.MaterialRepository().Update(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return m, nil
}
