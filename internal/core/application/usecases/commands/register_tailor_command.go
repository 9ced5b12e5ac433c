package commands

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/tailor"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/errs"
	"tailorshop/internal/pkg/guard"
)

var ErrRegisterTailorCommandIsNotConstructed = errors.New(
	"RegisterTailorCommand must be created via NewRegisterTailorCommand constructor",
)

// RegisterTailorCommand opens a shop for a user holding the tailor role.
//
// Example:
//
//	profile := tailor.DefaultProfile("Stitch & Co")
//	profile.Specialties = []string{"suits", "alterations"}
//	cmd, err := NewRegisterTailorCommand(actor, profile, &location)
type RegisterTailorCommand struct { //nolint:recvcheck //using for validation
	actor    user.Principal
	profile  tailor.Profile
	location *kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewRegisterTailorCommand(
	actor user.Principal,
	profile tailor.Profile,
	location *kernel.GeoPoint,
) (RegisterTailorCommand, error) {
	if err := actor.Validate(); err != nil {
		return RegisterTailorCommand{}, err
	}
	if actor.Role != user.Tailor {
		return RegisterTailorCommand{}, errs.NewAccessDeniedError("register tailor", "tailor role required")
	}

	return RegisterTailorCommand{
		actor:    actor,
		profile:  profile,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterTailorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterTailorCommandIsNotConstructed)
}

func (c RegisterTailorCommand) Actor() user.Principal {
	return c.actor
}

func (c RegisterTailorCommand) Profile() tailor.Profile {
	return c.profile
}

func (c RegisterTailorCommand) Location() *kernel.GeoPoint {
	return c.location
}
