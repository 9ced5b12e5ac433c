package commands

import (
	"errors"
	"time"

	"tailorshop/internal/pkg/errs"
	"tailorshop/internal/pkg/guard"
)

var ErrAutoReleaseEscrowCommandIsNotConstructed = errors.New(
	"AutoReleaseEscrowCommand must be created via NewAutoReleaseEscrowCommand constructor",
)

// AutoReleaseEscrowCommand releases escrow that has been held for at least holdPeriod.
type AutoReleaseEscrowCommand struct { //nolint:recvcheck //using for validation
	holdPeriod time.Duration

	guard guard.ConstructorGuard
}

func NewAutoReleaseEscrowCommand(holdPeriod time.Duration) (AutoReleaseEscrowCommand, error) {
	if holdPeriod <= 0 {
		return AutoReleaseEscrowCommand{}, errs.NewValueIsOutOfRangeError("holdPeriod", holdPeriod, "1ns", "unbounded")
	}

	return AutoReleaseEscrowCommand{
		holdPeriod: holdPeriod,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AutoReleaseEscrowCommand) Validate() error {
	return c.guard.Validate(ErrAutoReleaseEscrowCommandIsNotConstructed)
}

func (c AutoReleaseEscrowCommand) HoldPeriod() time.Duration {
	return c.holdPeriod
}
