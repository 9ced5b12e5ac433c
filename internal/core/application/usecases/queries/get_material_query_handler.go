package queries

import (
	"context"

	"tailorshop/internal/core/domain/model/material"
	"tailorshop/internal/core/ports"
)

type GetMaterialQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetMaterialQueryHandler(uowFactory ports.UnitOfWorkFactory) GetMaterialQueryHandler {
	return GetMaterialQueryHandler{uowFactory: uowFactory}
}

func (h GetMaterialQueryHandler) Handle(ctx context.Context, query GetMaterialQuery) (*material.Material, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.uowFactory.Create().MaterialRepository().Get(ctx, query.MaterialID())
}
