package queries

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New("GetUserQuery must be created via NewGetUserQuery constructor")

// GetUserQuery reads one directory entry. Users may read their own; admins
// may read any.
type GetUserQuery struct { //nolint:recvcheck //using for validation
	actor  user.Principal
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetUserQuery(actor user.Principal, userID kernel.UUID) (GetUserQuery, error) {
	if err := errors.Join(actor.Validate(), userID.Validate()); err != nil {
		return GetUserQuery{}, err
	}
	return GetUserQuery{actor: actor, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) Actor() user.Principal {
	return q.actor
}

func (q GetUserQuery) UserID() kernel.UUID {
	return q.userID
}
