package order

import (
	"errors"
	"strings"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Party identifies the tailor an order is addressed to: the shop profile and the
// user account that runs it. Authorization checks use the user account.
type Party struct {
	TailorID kernel.UUID
	UserID   kernel.UUID
}

// Details is the customer's description of the garment.
type Details struct {
	OrderType           string
	Description         string
	Instructions        string
	MaterialSource      MaterialSource
	MaterialDetails     map[string]any
	MeasurementID       *kernel.UUID
	EstimatedCompletion *time.Time
}

// State is the mutable lifecycle part of a persisted order.
type State struct {
	Status           Status
	PaymentStatus    PaymentStatus
	PaymentID        *kernel.UUID
	ActualCompletion *time.Time
}

// Order is a custom garment commissioned by a customer from a tailor. It is the
// aggregate root for the fulfilment and payment status of the commission.
//
// Order follows these invariants:
//   - Must have valid customer and tailor identities
//   - Order type and description are required
//   - Pricing total is the exact sum of its parts
//   - Fulfilment transitions requested by the tailor follow the status table
//   - Delivery and payment side effects never revive a terminal order
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	tailor     Party
	details    Details
	pricing    Pricing
	state      State
	createdAt  time.Time

	isConstructed bool
}

// NewOrder creates a pending, unpaid order.
//
// Example:
//
//	pricing, _ := order.NewPricing(tailoring, kernel.ZeroMoney(), delivery)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, order.Party{TailorID: shopID, UserID: ownerID},
//	    order.Details{OrderType: "suit", Description: "Two-piece navy suit", MaterialSource: order.MaterialFromTailor},
//	    pricing, time.Now())
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	tailor Party,
	details Details,
	pricing Pricing,
	now time.Time,
) (*Order, error) {
	o := &Order{
		state:         State{Status: Pending, PaymentStatus: Unpaid},
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID),
		o.setTailor(tailor),
		o.setDetails(details),
		o.setPricing(pricing),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order including its lifecycle state.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	tailor Party,
	details Details,
	pricing Pricing,
	state State,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, tailor, details, pricing, createdAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(state.Status.Validate(), state.PaymentStatus.Validate()); err != nil {
		return nil, err
	}
	if state.PaymentID != nil {
		if err = state.PaymentID.Validate(); err != nil {
			return nil, err
		}
	}
	o.state = state

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Tailor returns the shop and its owning user.
func (o *Order) Tailor() Party {
	return o.tailor
}

// Details returns a copy of the garment description.
func (o *Order) Details() Details {
	d := o.details
	d.MaterialDetails = cloneMap(o.details.MaterialDetails)
	return d
}

func (o *Order) Pricing() Pricing {
	return o.pricing
}

// Total is the amount the customer is charged.
func (o *Order) Total() kernel.Money {
	return o.pricing.Total()
}

func (o *Order) Status() Status {
	return o.state.Status
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.state.PaymentStatus
}

// PaymentID returns nil until a payment intent has been created.
func (o *Order) PaymentID() *kernel.UUID {
	return o.state.PaymentID
}

func (o *Order) ActualCompletion() *time.Time {
	return o.state.ActualCompletion
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsCustomer reports whether userID placed the order.
func (o *Order) IsCustomer(userID kernel.UUID) bool {
	return o.customerID.IsEqual(userID)
}

// IsTailor reports whether userID runs the shop the order is addressed to.
func (o *Order) IsTailor(userID kernel.UUID) bool {
	return o.tailor.UserID.IsEqual(userID)
}

// UpdateStatus applies a tailor-requested transition.
//
// Returns:
//   - nil on success
//   - TransitionIsNotAllowedError when to is not listed for the current status
func (o *Order) UpdateStatus(to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if !o.state.Status.CanTransitionTo(to) {
		return errs.NewTransitionIsNotAllowedError("order", o.state.Status, to)
	}
	o.state.Status = to
	return nil
}

// MarkPendingDelivery records that a delivery was created for the order.
func (o *Order) MarkPendingDelivery() error {
	if o.state.Status.IsTerminal() || o.state.Status == Delivered {
		return errs.NewTransitionIsNotAllowedError("order", o.state.Status, PendingDelivery)
	}
	o.state.Status = PendingDelivery
	return nil
}

// MarkDelivered records the delivery hand-over and stamps the completion time.
func (o *Order) MarkDelivered(now time.Time) error {
	if o.state.Status.IsTerminal() {
		return errs.NewTransitionIsNotAllowedError("order", o.state.Status, Delivered)
	}
	o.state.Status = Delivered
	o.state.ActualCompletion = &now
	return nil
}

// AttachPayment links the payment created for this order.
func (o *Order) AttachPayment(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	o.state.PaymentID = &paymentID
	return nil
}

// MarkPaymentInEscrow records that the customer's money is held by the platform.
func (o *Order) MarkPaymentInEscrow() error {
	if o.state.PaymentStatus != Unpaid && o.state.PaymentStatus != InEscrow {
		return errs.NewTransitionIsNotAllowedError("order payment", o.state.PaymentStatus, InEscrow)
	}
	o.state.PaymentStatus = InEscrow
	return nil
}

// MarkPaid records that escrow was released to the tailor.
func (o *Order) MarkPaid() error {
	if o.state.PaymentStatus != InEscrow {
		return errs.NewTransitionIsNotAllowedError("order payment", o.state.PaymentStatus, Paid)
	}
	o.state.PaymentStatus = Paid
	return nil
}

// CancelWithRefund cancels the order after its payment was refunded.
func (o *Order) CancelWithRefund() error {
	if o.state.PaymentStatus == Paid || o.state.PaymentStatus == Refunded {
		return errs.NewTransitionIsNotAllowedError("order payment", o.state.PaymentStatus, Refunded)
	}
	o.state.Status = Cancelled
	o.state.PaymentStatus = Refunded
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setTailor(p Party) error {
	if err := errors.Join(p.TailorID.Validate(), p.UserID.Validate()); err != nil {
		return err
	}
	o.tailor = p
	return nil
}

func (o *Order) setDetails(d Details) error {
	d.OrderType = strings.TrimSpace(d.OrderType)
	d.Description = strings.TrimSpace(d.Description)

	var problems []error
	if d.OrderType == "" {
		problems = append(problems, errs.NewValueIsRequiredError("orderType"))
	}
	if d.Description == "" {
		problems = append(problems, errs.NewValueIsRequiredError("description"))
	}
	if _, err := ParseMaterialSource(string(d.MaterialSource)); err != nil {
		problems = append(problems, err)
	}
	if d.MeasurementID != nil {
		if err := d.MeasurementID.Validate(); err != nil {
			problems = append(problems, err)
		}
	}
	if len(problems) > 0 {
		return errors.Join(problems...)
	}

	d.MaterialDetails = cloneMap(d.MaterialDetails)
	o.details = d
	return nil
}

func (o *Order) setPricing(p Pricing) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.pricing = p
	return nil
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
