package user

import (
	"fmt"
	"strings"

	"tailorshop/internal/pkg/errs"
)

// Role is the marketplace role of a user.
type Role string

const (
	Customer Role = "customer"
	Tailor   Role = "tailor"
	Rider    Role = "rider"
	Admin    Role = "admin"
)

// ParseRole accepts role names case-insensitively.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate rejects unknown roles.
func (r Role) Validate() error {
	switch r {
	case Customer, Tailor, Rider, Admin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}
