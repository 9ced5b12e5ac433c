package queries

import (
	"context"

	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
)

// GetUserQueryHandler refuses before the lookup, so a refusal says nothing
// about whether the entry exists.
type GetUserQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetUserQueryHandler(uowFactory ports.UnitOfWorkFactory) GetUserQueryHandler {
	return GetUserQueryHandler{uowFactory: uowFactory}
}

func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if !actor.IsAdmin() && !actor.Is(query.UserID()) {
		return nil, errs.NewAccessDeniedError("get user", "only the user or an admin")
	}
	return h.uowFactory.Create().UserRepository().Get(ctx, query.UserID())
}

// ListUsersQueryHandler returns the whole directory to admins.
type ListUsersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListUsersQueryHandler(uowFactory ports.UnitOfWorkFactory) ListUsersQueryHandler {
	return ListUsersQueryHandler{uowFactory: uowFactory}
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ActorQuery) ([]*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.Actor().IsAdmin() {
		return nil, errs.NewAccessDeniedError("list users", "admin only")
	}
	return h.uowFactory.Create().UserRepository().List(ctx)
}
