package commands

import (
	"context"
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/material"
	"tailorshop/internal/pkg/errs"
)

// CreateMaterialCommandHandler adds stock to the shop run by the caller.
// Callers without a shop are refused.
type CreateMaterialCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateMaterialCommandHandler(uowFactory CatalogUoWFactory) CreateMaterialCommandHandler {
	return CreateMaterialCommandHandler{uowFactory: uowFactory}
}

func (h CreateMaterialCommandHandler) Handle(ctx context.Context, cmd CreateMaterialCommand) (*material.Material, error) {
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

	shop, err := uow.TailorRepository().GetByUser(ctx, cmd.Actor().UserID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewAccessDeniedError("create material", "caller has no shop")
	}
	if err != nil {
		return nil, err
	}

	m, err := material.NewMaterial(kernel.NewUUID(), shop.ID(), cmd.Details(), cmd.PricePerYard(), cmd.Quantity())
	if err != nil {
		return nil, err
	}

	if err = uow.MaterialRepository().Add(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return m, nil
}
