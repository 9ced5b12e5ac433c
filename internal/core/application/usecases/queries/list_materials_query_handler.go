package queries

import (
	"context"

	"tailorshop/internal/core/domain/model/material"
	"tailorshop/internal/core/ports"
)

type ListMaterialsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListMaterialsQueryHandler(uowFactory ports.UnitOfWorkFactory) ListMaterialsQueryHandler {
	return ListMaterialsQueryHandler{uowFactory: uowFactory}
}

func (h ListMaterialsQueryHandler) Handle(ctx context.Context, query ListMaterialsQuery) ([]*material.Material, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	repo := h.uowFactory.Create().MaterialRepository()
	if id := query.TailorID(); id != nil {
		return repo.ListByTailor(ctx, *id)
	}
	return repo.ListAvailable(ctx)
}
