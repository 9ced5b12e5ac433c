package payment

import (
	"errors"
	"strings"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment is a customer's payment for an order, held in escrow by the platform
// until released to the tailor or refunded.
//
// orderID is nil when the payment was taken while the order could not be
// resolved; such payments are still tracked through their gateway reference.
type Payment struct {
	id                kernel.UUID
	orderID           *kernel.UUID
	customerID        kernel.UUID
	amount            kernel.Money
	currency          Currency
	method            string
	gatewayReference  string
	status            Status
	heldAt            *time.Time
	escrowReleaseDate *time.Time
	transactionFee    kernel.Money
	receiptURL        string
	notes             string
	version           int
	createdAt         time.Time

	isConstructed bool
}

// NewPayment creates a pending card payment for a positive amount.
func NewPayment(
	id kernel.UUID,
	orderID *kernel.UUID,
	customerID kernel.UUID,
	amount kernel.Money,
	currency Currency,
	now time.Time,
) (*Payment, error) {
	p := &Payment{
		currency:       currency,
		method:         "card",
		status:         Pending,
		transactionFee: kernel.ZeroMoney(),
		createdAt:      now,
		isConstructed:  true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setCustomerID(customerID),
		p.setAmount(amount),
		p.setCurrency(currency),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Snapshot is the persisted lifecycle state of a payment.
type Snapshot struct {
	Method            string
	GatewayReference  string
	Status            Status
	HeldAt            *time.Time
	EscrowReleaseDate *time.Time
	TransactionFee    kernel.Money
	ReceiptURL        string
	Notes             string
	Version           int
}

// RestorePayment rebuilds a persisted payment.
func RestorePayment(
	id kernel.UUID,
	orderID *kernel.UUID,
	customerID kernel.UUID,
	amount kernel.Money,
	currency Currency,
	createdAt time.Time,
	s Snapshot,
) (*Payment, error) {
	p, err := NewPayment(id, orderID, customerID, amount, currency, createdAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(s.Status.Validate(), s.TransactionFee.Validate()); err != nil {
		return nil, err
	}
	// Only pending payments and ones that failed before reaching the gateway
	// lack a reference.
	if s.Status != Pending && s.Status != Failed && s.GatewayReference == "" {
		return nil, errs.NewValueIsRequiredError("gatewayReference")
	}
	if s.Method != "" {
		p.method = s.Method
	}

	p.gatewayReference = s.GatewayReference
	p.status = s.Status
	p.heldAt = s.HeldAt
	p.escrowReleaseDate = s.EscrowReleaseDate
	p.transactionFee = s.TransactionFee
	p.receiptURL = s.ReceiptURL
	p.notes = s.Notes
	p.version = s.Version

	return p, nil
}

func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID is nil for payments taken without a resolvable order.
func (p *Payment) OrderID() *kernel.UUID {
	return p.orderID
}

func (p *Payment) CustomerID() kernel.UUID {
	return p.customerID
}

func (p *Payment) Amount() kernel.Money {
	return p.amount
}

func (p *Payment) Currency() Currency {
	return p.currency
}

func (p *Payment) Method() string {
	return p.method
}

// GatewayReference is the payment intent id at the gateway.
func (p *Payment) GatewayReference() string {
	return p.gatewayReference
}

func (p *Payment) Status() Status {
	return p.status
}

func (p *Payment) HeldAt() *time.Time {
	return p.heldAt
}

func (p *Payment) EscrowReleaseDate() *time.Time {
	return p.escrowReleaseDate
}

func (p *Payment) TransactionFee() kernel.Money {
	return p.transactionFee
}

func (p *Payment) ReceiptURL() string {
	return p.receiptURL
}

func (p *Payment) Notes() string {
	return p.notes
}

func (p *Payment) Version() int {
	return p.version
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// StartProcessing records the gateway intent and moves pending -> processing.
func (p *Payment) StartProcessing(gatewayReference string) error {
	gatewayReference = strings.TrimSpace(gatewayReference)
	if gatewayReference == "" {
		return errs.NewValueIsRequiredError("gatewayReference")
	}
	if err := p.transition(Processing); err != nil {
		return err
	}
	p.gatewayReference = gatewayReference
	return nil
}

// HoldInEscrow records the gateway's confirmation that funds were captured.
// A repeated confirmation for a payment already held is a no-op.
func (p *Payment) HoldInEscrow(receiptURL string, now time.Time) error {
	if p.status == HeldInEscrow {
		return nil
	}
	if err := p.transition(HeldInEscrow); err != nil {
		return err
	}
	p.heldAt = &now
	if receiptURL != "" {
		p.receiptURL = receiptURL
	}
	return nil
}

// Release hands the escrowed funds to the tailor.
func (p *Payment) Release(now time.Time) error {
	if err := p.transition(Released); err != nil {
		return err
	}
	p.escrowReleaseDate = &now
	return nil
}

// Refund returns the money to the customer. Allowed from processing or held_in_escrow.
func (p *Payment) Refund() error {
	return p.transition(Refunded)
}

// Fail records a gateway failure for any non-terminal payment.
func (p *Payment) Fail(reason string) error {
	if err := p.transition(Failed); err != nil {
		return err
	}
	if reason != "" {
		p.notes = reason
	}
	return nil
}

// CanRefund reports whether Refund would succeed.
func (p *Payment) CanRefund() bool {
	return p.status.CanTransitionTo(Refunded)
}

// IsHeldLongerThan reports whether the payment has sat in escrow for at least d.
func (p *Payment) IsHeldLongerThan(d time.Duration, now time.Time) bool {
	return p.status == HeldInEscrow && p.heldAt != nil && now.Sub(*p.heldAt) >= d
}

// IsStale reports whether an unconfirmed payment is older than ttl.
func (p *Payment) IsStale(ttl time.Duration, now time.Time) bool {
	return (p.status == Pending || p.status == Processing) && now.Sub(p.createdAt) >= ttl
}

// IncrementVersion is called by repositories after a successful write.
func (p *Payment) IncrementVersion() {
	p.version++
}

func (p *Payment) transition(next Status) error {
	if !p.status.CanTransitionTo(next) {
		return errs.NewTransitionIsNotAllowedError("payment", p.status, next)
	}
	p.status = next
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	orderID := *id
	p.orderID = &orderID
	return nil
}

func (p *Payment) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.customerID = id
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return errs.NewValueIsOutOfRangeError("amount", amount.String(), "0.01", "unbounded")
	}
	p.amount = amount
	return nil
}

func (p *Payment) setCurrency(c Currency) error {
	parsed, err := ParseCurrency(string(c), DefaultCurrency)
	if err != nil {
		return err
	}
	p.currency = parsed
	return nil
}
