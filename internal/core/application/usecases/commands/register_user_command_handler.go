package commands

import (
	"context"
	"errors"

	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/errs"
)

// RegisterUserCommandHandler creates the directory entry for the caller, or
// renames it when the entry already exists.
type RegisterUserCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewRegisterUserCommandHandler(uowFactory CatalogUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{uowFactory: uowFactory}
}

func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
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

	repo := uow.UserRepository()
	actor := cmd.Actor()

	existing, err := repo.Get(ctx, actor.UserID)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		u, err := user.NewUser(actor.UserID, cmd.Name(), cmd.Email(), actor.Role)
		if err != nil {
			return nil, err
		}
		if err = repo.Add(ctx, u); err != nil {
			return nil, err
		}
		existing = u
	case err != nil:
		return nil, err
	default:
		if err = existing.Rename(cmd.Name(), cmd.Email()); err != nil {
			return nil, err
		}
		if err = repo.Update(ctx, existing); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
