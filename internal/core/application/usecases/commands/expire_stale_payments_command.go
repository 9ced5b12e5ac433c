package commands

import (
	"errors"
	"time"

	"tailorshop/internal/pkg/errs"
	"tailorshop/internal/pkg/guard"
)

var ErrExpireStalePaymentsCommandIsNotConstructed = errors.New(
	"ExpireStalePaymentsCommand must be created via NewExpireStalePaymentsCommand constructor",
)

// ExpireStalePaymentsCommand fails payments the gateway never confirmed within ttl.
type ExpireStalePaymentsCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

func NewExpireStalePaymentsCommand(ttl time.Duration) (ExpireStalePaymentsCommand, error) {
	if ttl <= 0 {
		return ExpireStalePaymentsCommand{}, errs.NewValueIsOutOfRangeError("ttl", ttl, "1ns", "unbounded")
	}

	return ExpireStalePaymentsCommand{
		ttl:   ttl,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ExpireStalePaymentsCommand) Validate() error {
	return c.guard.Validate(ErrExpireStalePaymentsCommandIsNotConstructed)
}

func (c ExpireStalePaymentsCommand) TTL() time.Duration {
	return c.ttl
}
