package commands

import (
	"context"
	"errors"
	"fmt"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/tailor"
	"tailorshop/internal/pkg/errs"
)

// RegisterTailorCommandHandler creates the caller's shop, or updates its
// profile when the caller already has one.
type RegisterTailorCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewRegisterTailorCommandHandler(uowFactory CatalogUoWFactory) RegisterTailorCommandHandler {
	return RegisterTailorCommandHandler{uowFactory: uowFactory}
}

func (h RegisterTailorCommandHandler) Handle(ctx context.Context, cmd RegisterTailorCommand) (*tailor.Tailor, error) {
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

	actor := cmd.Actor()
	owner, err := uow.UserRepository().Get(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if !owner.HasRole(actor.Role) {
		return nil, errs.NewAccessDeniedError("register tailor",
			fmt.Sprintf("directory role is %s", owner.Role()))
	}

	repo := uow.TailorRepository()
	shop, err := repo.GetByUser(ctx, actor.UserID)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		shop, err = tailor.NewTailor(kernel.NewUUID(), actor.UserID, cmd.Profile(), cmd.Location())
		if err != nil {
			return nil, err
		}
		if err = repo.Add(ctx, shop); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if err = shop.UpdateProfile(cmd.Profile(), cmd.Location()); err != nil {
			return nil, err
		}
		if err = repo.Update(ctx, shop); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return shop, nil
}
