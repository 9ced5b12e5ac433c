package user

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
)

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID kernel.UUID
	Role   Role
}

// NewPrincipal validates both parts.
func NewPrincipal(userID kernel.UUID, role Role) (Principal, error) {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return Principal{}, err
	}
	return Principal{UserID: userID, Role: role}, nil
}

// Validate reports whether the principal came from NewPrincipal.
func (p Principal) Validate() error {
	return errors.Join(p.UserID.Validate(), p.Role.Validate())
}

func (p Principal) IsAdmin() bool {
	return p.Role == Admin
}

// Is reports whether the principal is the given user.
func (p Principal) Is(userID kernel.UUID) bool {
	return p.UserID.IsEqual(userID)
}
