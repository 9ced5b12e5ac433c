package commands

import (
	"context"

	"tailorshop/internal/core/domain/model/tailor"
	"tailorshop/internal/pkg/errs"
)

// AddPortfolioItemCommandHandler lets a shop owner extend their portfolio.
type AddPortfolioItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewAddPortfolioItemCommandHandler(uowFactory CatalogUoWFactory) AddPortfolioItemCommandHandler {
	return AddPortfolioItemCommandHandler{uowFactory: uowFactory}
}

func (h AddPortfolioItemCommandHandler) Handle(ctx context.Context, cmd AddPortfolioItemCommand) (*tailor.Tailor, error) {
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

	repo := uow.TailorRepository()
	shop, err := repo.Get(ctx, cmd.TailorID())
	if err != nil {
		return nil, err
	}

	if !shop.OwnedBy(cmd.Actor().UserID) {
		return nil, errs.NewAccessDeniedError("add portfolio item", "not the shop owner")
	}

	if err = shop.AddPortfolioItem(cmd.ImageURL()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, shop); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return shop, nil
}
