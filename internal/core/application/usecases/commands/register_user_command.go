package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand adds the caller to the user directory. Identity and role
// come from the caller's token; name and email from the request.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	actor user.Principal
	name  string
	email string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(actor user.Principal, name string, email string) (RegisterUserCommand, error) {
	if err := actor.Validate(); err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		actor: actor,
		name:  name,
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Actor() user.Principal {
	return c.actor
}

func (c RegisterUserCommand) Name() string {
	return c.name
}

func (c RegisterUserCommand) Email() string {
	return c.email
}
