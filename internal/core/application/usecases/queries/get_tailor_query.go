package queries

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/guard"
)

var ErrGetTailorQueryIsNotConstructed = errors.New("GetTailorQuery must be created via NewGetTailorQuery constructor")

// GetTailorQuery is public: shop profiles are visible to everyone.
type GetTailorQuery struct { //nolint:recvcheck //using for validation
	tailorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTailorQuery(tailorID kernel.UUID) (GetTailorQuery, error) {
	if err := tailorID.Validate(); err != nil {
		return GetTailorQuery{}, err
	}
	return GetTailorQuery{tailorID: tailorID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTailorQuery) Validate() error {
	return q.guard.Validate(ErrGetTailorQueryIsNotConstructed)
}

func (q GetTailorQuery) TailorID() kernel.UUID {
	return q.tailorID
}
