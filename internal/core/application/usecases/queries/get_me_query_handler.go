package queries

import (
	"context"

	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/core/ports"
)

type GetMeQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetMeQueryHandler(uowFactory ports.UnitOfWorkFactory) GetMeQueryHandler {
	return GetMeQueryHandler{uowFactory: uowFactory}
}

func (h GetMeQueryHandler) Handle(ctx context.Context, query GetMeQuery) (*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.uowFactory.Create().UserRepository().Get(ctx, query.Actor().UserID)
}
