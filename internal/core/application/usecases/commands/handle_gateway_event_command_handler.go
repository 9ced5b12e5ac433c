package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tailorshop/internal/core/domain/model/payment"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
)

// GatewayEventResult tells the caller whether the event changed anything.
type GatewayEventResult struct {
	EventType ports.GatewayEventType
	Handled   bool
}

// HandleGatewayEventCommandHandler applies verified gateway notifications.
//
//   - payment_intent.succeeded puts the payment in escrow and marks the
//     order's payment in_escrow
//   - payment_intent.payment_failed fails a payment that has not reached escrow
//
// Other event types, unknown references and repeated deliveries are
// acknowledged without changes so the gateway stops retrying them.
type HandleGatewayEventCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    ports.PaymentGateway
	logger     *slog.Logger
}

func NewHandleGatewayEventCommandHandler(
	uowFactory PaymentUoWFactory,
	gateway ports.PaymentGateway,
	logger *slog.Logger,
) HandleGatewayEventCommandHandler {
	return HandleGatewayEventCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     logger.With("component", "HandleGatewayEventCommandHandler"),
	}
}

func (h HandleGatewayEventCommandHandler) Handle(
	ctx context.Context,
	cmd HandleGatewayEventCommand,
) (GatewayEventResult, error) {
	if err := cmd.Validate(); err != nil {
		return GatewayEventResult{}, err
	}

	event, err := h.gateway.ParseEvent(cmd.Payload(), cmd.Signature())
	if err != nil {
		return GatewayEventResult{}, err
	}
	result := GatewayEventResult{EventType: event.Type}

	if event.Type != ports.EventPaymentSucceeded && event.Type != ports.EventPaymentFailed {
		h.logger.InfoContext(ctx, "ignoring gateway event", "type", event.Type, "eventId", event.ID)
		return result, nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return GatewayEventResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	payments := uow.PaymentRepository()
	p, err := payments.GetByGatewayReference(ctx, event.Reference)
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.WarnContext(ctx, "gateway event for unknown payment", "reference", event.Reference)
		return result, nil
	}
	if err != nil {
		return GatewayEventResult{}, err
	}

	switch event.Type {
	case ports.EventPaymentSucceeded:
		result.Handled, err = h.hold(ctx, uow, p, event)
	case ports.EventPaymentFailed:
		result.Handled, err = h.fail(ctx, uow, p, event)
	}
	if err != nil {
		return GatewayEventResult{}, err
	}

	if !result.Handled {
		return result, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return GatewayEventResult{}, err
	}

	return result, nil
}

func (h HandleGatewayEventCommandHandler) hold(
	ctx context.Context,
	uow PaymentUoW,
	p *payment.Payment,
	event ports.GatewayEvent,
) (bool, error) {
	if p.Status() == payment.HeldInEscrow {
		return false, nil
	}
	if err := p.HoldInEscrow(event.ReceiptURL, time.Now().UTC()); err != nil {
		return false, err
	}
	if err := uow.PaymentRepository().Update(ctx, p); err != nil {
		return false, err
	}

	if p.OrderID() == nil {
		return true, nil
	}

	orders := uow.OrderRepository()
	o, err := orders.Get(ctx, *p.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.WarnContext(ctx, "payment held for a missing order", "paymentId", p.ID().String())
		return true, nil
	}
	if err != nil {
		return false, err
	}
	if err = o.MarkPaymentInEscrow(); err != nil {
		return false, err
	}
	if err = orders.Update(ctx, o); err != nil {
		return false, err
	}
	return true, nil
}

func (h HandleGatewayEventCommandHandler) fail(
	ctx context.Context,
	uow PaymentUoW,
	p *payment.Payment,
	event ports.GatewayEvent,
) (bool, error) {
	if !p.Status().CanTransitionTo(payment.Failed) {
		return false, nil
	}
	if err := p.Fail(event.FailureReason); err != nil {
		return false, err
	}
	if err := uow.PaymentRepository().Update(ctx, p); err != nil {
		return false, err
	}
	return true, nil
}
