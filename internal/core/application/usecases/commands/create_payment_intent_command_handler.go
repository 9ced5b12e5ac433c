package commands

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/domain/model/payment"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
)

var (
	ErrAmountIsRequired = errs.NewValueIsRequiredErrorWithCause(
		"amount", errors.New("amount is required when order is unavailable"))
	ErrAmountIsInvalid = errs.NewValueIsInvalidErrorWithCause(
		"amount", errors.New("invalid amount provided"))
)

// PaymentIntentResult is handed back to the client to confirm the card payment.
type PaymentIntentResult struct {
	Payment      *payment.Payment
	ClientSecret string
}

// CreatePaymentIntentCommandHandler opens a payment at the gateway.
//
// When the order resolves, only its customer may pay and the charge is the
// order total. When there is no order id, or the order is missing or its
// store is unreachable, the caller's amount is charged instead and the
// payment is recorded without an order. The payment is stored in
// processing with the gateway's reference.
type CreatePaymentIntentCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    ports.PaymentGateway
	logger     *slog.Logger
}

func NewCreatePaymentIntentCommandHandler(
	uowFactory PaymentUoWFactory,
	gateway ports.PaymentGateway,
	logger *slog.Logger,
) CreatePaymentIntentCommandHandler {
	return CreatePaymentIntentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     logger.With("component", "CreatePaymentIntentCommandHandler"),
	}
}

func (h CreatePaymentIntentCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePaymentIntentCommand,
) (PaymentIntentResult, error) {
	if err := cmd.Validate(); err != nil {
		return PaymentIntentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PaymentIntentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor := cmd.Actor()
	o, err := h.resolveOrder(ctx, uow.OrderRepository(), cmd.OrderID())
	if err != nil {
		return PaymentIntentResult{}, err
	}

	var (
		amount  kernel.Money
		orderID *kernel.UUID
	)
	if o != nil {
		if !o.IsCustomer(actor.UserID) {
			return PaymentIntentResult{}, errs.NewAccessDeniedError("create payment intent", "not the order's customer")
		}
		if o.PaymentStatus() != order.Unpaid {
			return PaymentIntentResult{}, errs.NewTransitionIsNotAllowedError(
				"order payment", o.PaymentStatus(), order.InEscrow)
		}
		amount = o.Total()
		id := o.ID()
		orderID = &id
	} else {
		if amount, err = fallbackAmount(cmd.Amount()); err != nil {
			return PaymentIntentResult{}, err
		}
	}

	p, err := payment.NewPayment(kernel.NewUUID(), orderID, actor.UserID, amount, cmd.Currency(), time.Now().UTC())
	if err != nil {
		return PaymentIntentResult{}, err
	}

	metadata := map[string]string{
		"paymentId":  p.ID().String(),
		"customerId": actor.UserID.String(),
		"orderId":    "no-order",
		"tailorId":   "no-tailor",
	}
	if o != nil {
		metadata["orderId"] = o.ID().String()
		metadata["tailorId"] = o.Tailor().TailorID.String()
	}

	intent, err := h.gateway.CreateIntent(ctx, ports.IntentRequest{
		AmountMinor: amount.MinorUnits(),
		Currency:    p.Currency().Lower(),
		Metadata:    metadata,
	})
	if err != nil {
		return PaymentIntentResult{}, err
	}

	if err = p.StartProcessing(intent.Reference); err != nil {
		return PaymentIntentResult{}, err
	}

	if err = uow.PaymentRepository().Add(ctx, p); err != nil {
		return PaymentIntentResult{}, err
	}

	if o != nil {
		if err = o.AttachPayment(p.ID()); err != nil {
			return PaymentIntentResult{}, err
		}
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return PaymentIntentResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return PaymentIntentResult{}, err
	}

	return PaymentIntentResult{Payment: p, ClientSecret: intent.ClientSecret}, nil
}

// resolveOrder returns nil without error when the payment must fall back to
// the caller's amount.
func (h CreatePaymentIntentCommandHandler) resolveOrder(
	ctx context.Context,
	orders ports.OrderRepository,
	orderID *kernel.UUID,
) (*order.Order, error) {
	if orderID == nil {
		return nil, nil
	}

	o, err := orders.Get(ctx, *orderID)
	switch {
	case err == nil:
		return o, nil
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, errs.ErrUpstreamIsUnavailable):
		h.logger.WarnContext(ctx, "order unavailable, charging requested amount",
			"orderId", orderID.String(), "error", err)
		return nil, nil
	default:
		return nil, err
	}
}

func fallbackAmount(raw *float64) (kernel.Money, error) {
	if raw == nil {
		return kernel.Money{}, ErrAmountIsRequired
	}
	if math.IsNaN(*raw) || math.IsInf(*raw, 0) || *raw <= 0 {
		return kernel.Money{}, ErrAmountIsInvalid
	}

	amount, err := kernel.MoneyFromFloat(*raw)
	if err != nil || !amount.IsPositive() {
		return kernel.Money{}, ErrAmountIsInvalid
	}
	return amount, nil
}
