package payment

import (
	"fmt"

	"tailorshop/internal/pkg/errs"
)

// Status is the state of a payment.
type Status int

const (
	Unknown Status = iota
	Pending
	Processing
	HeldInEscrow
	Released
	Refunded
	Failed
)

var statusNames = map[Status]string{
	Unknown:      "unknown",
	Pending:      "pending",
	Processing:   "processing",
	HeldInEscrow: "held_in_escrow",
	Released:     "released",
	Refunded:     "refunded",
	Failed:       "failed",
}

var transitions = map[Status][]Status{
	Pending:      {Processing, Failed},
	Processing:   {HeldInEscrow, Refunded, Failed},
	HeldInEscrow: {Released, Refunded},
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// IsTerminal reports whether the payment is finished.
func (s Status) IsTerminal() bool {
	return s == Released || s == Refunded || s == Failed
}

// CanTransitionTo reports whether next is listed for s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseStatus maps a wire name to a Status.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if s != Unknown && n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a payment status", name))
}
