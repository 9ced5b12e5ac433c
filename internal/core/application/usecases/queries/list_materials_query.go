package queries

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/guard"
)

var ErrListMaterialsQueryIsNotConstructed = errors.New(
	"ListMaterialsQuery must be created via NewListMaterialsQuery constructor",
)

// ListMaterialsQuery lists one shop's materials, or every available material
// when no shop is given.
type ListMaterialsQuery struct { //nolint:recvcheck //using for validation
	tailorID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewListMaterialsQuery(tailorID *kernel.UUID) (ListMaterialsQuery, error) {
	if tailorID != nil {
		if err := tailorID.Validate(); err != nil {
			return ListMaterialsQuery{}, err
		}
	}
	return ListMaterialsQuery{tailorID: tailorID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMaterialsQuery) Validate() error {
	return q.guard.Validate(ErrListMaterialsQueryIsNotConstructed)
}

func (q ListMaterialsQuery) TailorID() *kernel.UUID {
	return q.tailorID
}
