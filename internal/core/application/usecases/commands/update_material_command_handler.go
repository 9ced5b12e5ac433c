package commands

import (
	"context"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/material"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/errs"
)

// UpdateMaterialCommandHandler edits a material on behalf of the shop owner.
type UpdateMaterialCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateMaterialCommandHandler(uowFactory CatalogUoWFactory) UpdateMaterialCommandHandler {
	return UpdateMaterialCommandHandler{uowFactory: uowFactory}
}

func (h UpdateMaterialCommandHandler) Handle(ctx context.Context, cmd UpdateMaterialCommand) (*material.Material, error) {
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

	m, err := loadOwnedMaterial(ctx, uow, cmd.MaterialID(), cmd.Actor(), "update material")
	if err != nil {
		return nil, err
	}

	if err = m.Update(cmd.Details(), cmd.PricePerYard()); err != nil {
		return nil, err
	}
	if q := cmd.Quantity(); q != nil {
		if err = m.SetQuantity(*q); err != nil {
			return nil, err
		}
	}
	if available := cmd.IsAvailable(); available != nil {
		m.SetAvailability(*available)
	}

	if err = uow.MaterialRepository().Update(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return m, nil
}

// DeleteMaterialCommandHandler removes a material. Orders keep their own copy
// of the material details, so past orders are unaffected.
type DeleteMaterialCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteMaterialCommandHandler(uowFactory CatalogUoWFactory) DeleteMaterialCommandHandler {
	return DeleteMaterialCommandHandler{uowFactory: uowFactory}
}

func (h DeleteMaterialCommandHandler) Handle(ctx context.Context, cmd DeleteMaterialCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	m, err := loadOwnedMaterial(ctx, uow, cmd.MaterialID(), cmd.Actor(), "delete material")
	if err != nil {
		return err
	}

	if err = uow.MaterialRepository().Delete(ctx, m.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// loadOwnedMaterial returns the material when actor runs the shop selling it.
func loadOwnedMaterial(
	ctx context.Context,
	uow CatalogUoW,
	id kernel.UUID,
	actor user.Principal,
	action string,
) (*material.Material, error) {
	m, err := uow.MaterialRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	shop, err := uow.TailorRepository().Get(ctx, m.TailorID())
	if err != nil {
		return nil, err
	}
	if !shop.OwnedBy(actor.UserID) {
		return nil, errs.NewAccessDeniedError(action, "not the shop owner")
	}
	return m, nil
}
