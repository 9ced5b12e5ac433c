package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand edits a directory entry. Blank fields keep their value.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	actor  user.Principal
	userID kernel.UUID
	name   string
	email  string

	guard guard.ConstructorGuard
}

func NewUpdateUserCommand(actor user.Principal, userID kernel.UUID, name string, email string) (UpdateUserCommand, error) {
	if err := errors.Join(actor.Validate(), userID.Validate()); err != nil {
		return UpdateUserCommand{}, err
	}

	return UpdateUserCommand{
		actor:  actor,
		userID: userID,
		name:   name,
		email:  email,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

func (c UpdateUserCommand) Actor() user.Principal {
	return c.actor
}

func (c UpdateUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c UpdateUserCommand) Name() string {
	return c.name
}

func (c UpdateUserCommand) Email() string {
	return c.email
}
