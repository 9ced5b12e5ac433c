package order

import (
	"fmt"
	"strings"

	"tailorshop/internal/pkg/errs"
)

// Status is the fulfilment state of an order.
//
// Tailor-driven transitions:
//
//	pending ──> confirmed ──> in_progress ──> ready_for_delivery
//	   │            │              │
//	   └────────────┴──────────────┴──> cancelled
//
//	delivered ──> completed
//
// pending_delivery and delivered are entered as side effects of the delivery
// workflow, never through UpdateStatus.
type Status int

const (
	// Unknown is the zero value and is never valid.
	Unknown Status = iota
	Pending
	Confirmed
	InProgress
	ReadyForDelivery
	PendingDelivery
	Delivered
	Completed
	Cancelled
)

var statusNames = map[Status]string{
	Unknown:          "unknown",
	Pending:          "pending",
	Confirmed:        "confirmed",
	InProgress:       "in_progress",
	ReadyForDelivery: "ready_for_delivery",
	PendingDelivery:  "pending_delivery",
	Delivered:        "delivered",
	Completed:        "completed",
	Cancelled:        "cancelled",
}

// statusTransitions lists the moves a tailor or admin may request.
var statusTransitions = map[Status][]Status{
	Pending:    {Confirmed, Cancelled},
	Confirmed:  {InProgress, Cancelled},
	InProgress: {ReadyForDelivery, Cancelled},
	Delivered:  {Completed},
}

// ParseStatus maps a wire name to a Status.
func ParseStatus(s string) (Status, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for st, name := range statusNames {
		if st != Unknown && name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an order status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the wire name.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// IsTerminal reports whether no further transitions exist.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether to is listed for s in the transition table.
func (s Status) CanTransitionTo(to Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// PaymentStatus tracks the customer's money for an order.
type PaymentStatus int

const (
	UnknownPayment PaymentStatus = iota
	Unpaid
	InEscrow
	Paid
	Refunded
)

var paymentStatusNames = map[PaymentStatus]string{
	UnknownPayment: "unknown",
	Unpaid:         "unpaid",
	InEscrow:       "in_escrow",
	Paid:           "paid",
	Refunded:       "refunded",
}

func (p PaymentStatus) String() string {
	if name, ok := paymentStatusNames[p]; ok {
		return name
	}
	return paymentStatusNames[UnknownPayment]
}

func (p PaymentStatus) Validate() error {
	if _, ok := paymentStatusNames[p]; !ok || p == UnknownPayment {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// MaterialSource says who supplies the fabric.
type MaterialSource string

const (
	MaterialFromTailor   MaterialSource = "tailor"
	MaterialFromCustomer MaterialSource = "customer"
)

// ParseMaterialSource accepts "tailor" or "customer".
func ParseMaterialSource(s string) (MaterialSource, error) {
	switch src := MaterialSource(strings.ToLower(strings.TrimSpace(s))); src {
	case MaterialFromTailor, MaterialFromCustomer:
		return src, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("materialSource", fmt.Errorf("%q is not a material source", s))
	}
}
