package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a directory entry. The id is the subject of the user's tokens.
type User struct {
	id    kernel.UUID
	name  string
	email string
	role  Role

	isConstructed bool
}

// NewUser validates the entry. Email is optional but must parse when given.
func NewUser(id kernel.UUID, name string, email string, role Role) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a persisted entry.
func RestoreUser(id kernel.UUID, name string, email string, role Role) (*User, error) {
	return NewUser(id, name, email, role)
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Role() Role {
	return u.role
}

// HasRole reports whether the user holds r.
func (u *User) HasRole(r Role) bool {
	return u.role == r
}

// Rename changes the display name and email.
func (u *User) Rename(name string, email string) error {
	next := *u
	if err := errors.Join(next.setName(name), next.setEmail(email)); err != nil {
		return err
	}
	*u = next
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q: %w", email, err))
		}
	}
	u.email = strings.ToLower(email)
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
