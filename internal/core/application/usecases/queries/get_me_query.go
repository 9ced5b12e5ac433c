package queries

import (
	"errors"

	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/guard"
)

var ErrGetMeQueryIsNotConstructed = errors.New("GetMeQuery must be created via NewGetMeQuery constructor")

// GetMeQuery returns the caller's directory entry.
type GetMeQuery struct { //nolint:recvcheck //using for validation
	actor user.Principal

	guard guard.ConstructorGuard
}

func NewGetMeQuery(actor user.Principal) (GetMeQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetMeQuery{}, err
	}
	return GetMeQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMeQuery) Validate() error {
	return q.guard.Validate(ErrGetMeQueryIsNotConstructed)
}

func (q GetMeQuery) Actor() user.Principal {
	return q.actor
}
