package queries

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/guard"
)

var ErrGetMaterialQueryIsNotConstructed = errors.New(
	"GetMaterialQuery must be created via NewGetMaterialQuery constructor",
)

// GetMaterialQuery is public, hidden materials included.
type GetMaterialQuery struct { //nolint:recvcheck //using for validation
	materialID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMaterialQuery(materialID kernel.UUID) (GetMaterialQuery, error) {
	if err := materialID.Validate(); err != nil {
		return GetMaterialQuery{}, err
	}
	return GetMaterialQuery{materialID: materialID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMaterialQuery) Validate() error {
	return q.guard.Validate(ErrGetMaterialQueryIsNotConstructed)
}

func (q GetMaterialQuery) MaterialID() kernel.UUID {
	return q.materialID
}
