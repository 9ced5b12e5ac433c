package commands

import (
	"cmp"
	"context"
	"strings"

	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/errs"
)

// UpdateUserCommandHandler lets users edit their own entry and admins edit any.
// The role is fixed by the identity provider and cannot be changed here.
type UpdateUserCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateUserCommandHandler(uowFactory CatalogUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{uowFactory: uowFactory}
}

func (h UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if !actor.IsAdmin() && !actor.Is(cmd.UserID()) {
		return nil, errs.NewAccessDeniedError("update user", "only the user or an admin")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	u, err := repo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	name := cmp.Or(strings.TrimSpace(cmd.Name()), u.Name())
	email := cmp.Or(strings.TrimSpace(cmd.Email()), u.Email())
	if err = u.Rename(name, email); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
