package delivery

import (
	"fmt"
	"strings"

	"tailorshop/internal/pkg/errs"
)

// Status is the state of a delivery.
type Status int

const (
	Unknown Status = iota
	Pending
	Assigned
	PickupInProgress
	PickedUp
	InTransit
	Delivered
	Failed
)

var statusNames = map[Status]string{
	Unknown:          "unknown",
	Pending:          "pending",
	Assigned:         "assigned",
	PickupInProgress: "pickup_in_progress",
	PickedUp:         "picked_up",
	InTransit:        "in_transit",
	Delivered:        "delivered",
	Failed:           "failed",
}

// transitions is the rider-driven part of the state machine. pending and
// assigned have no failed edge: a delivery that never left the shop is
// reassigned, not failed.
var transitions = map[Status][]Status{
	Assigned:         {PickupInProgress},
	PickupInProgress: {PickedUp, Failed},
	PickedUp:         {InTransit, Failed},
	InTransit:        {Delivered, Failed},
}

// Transitions returns a copy of the rider-driven transition table.
func Transitions() map[Status][]Status {
	out := make(map[Status][]Status, len(transitions))
	for from, tos := range transitions {
		out[from] = append([]Status(nil), tos...)
	}
	return out
}

// ParseStatus maps a wire name to a Status.
func ParseStatus(s string) (Status, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for st, name := range statusNames {
		if st != Unknown && name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a delivery status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// IsTerminal reports whether the delivery is finished.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// CanAdvanceTo reports whether a rider may move a delivery from s to next.
func (s Status) CanAdvanceTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CanAssign reports whether a rider can be (re)assigned from s.
func (s Status) CanAssign() bool {
	return s == Pending || s == Assigned
}
