package queries

import (
	"context"

	"tailorshop/internal/core/domain/model/tailor"
	"tailorshop/internal/core/ports"
)

type GetTailorQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetTailorQueryHandler(uowFactory ports.UnitOfWorkFactory) GetTailorQueryHandler {
	return GetTailorQueryHandler{uowFactory: uowFactory}
}

func (h GetTailorQueryHandler) Handle(ctx context.Context, query GetTailorQuery) (*tailor.Tailor, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.uowFactory.Create().TailorRepository().Get(ctx, query.TailorID())
}
