package commands

import (
	"context"

	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/domain/model/payment"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
)

// RefundResult pairs the refunded payment with the gateway's receipt.
type RefundResult struct {
	Payment *payment.Payment
	Refund  ports.RefundReceipt
}

// RefundPaymentCommandHandler returns the customer's money. The order's
// tailor or an admin may refund; a payment without an order only by an admin.
//
// Both rows are locked and both transitions are written before the gateway is
// called, so a concurrent release or a stale version fails the command
// without moving money. A gateway failure rolls the writes back.
type RefundPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    ports.PaymentGateway
}

func NewRefundPaymentCommandHandler(uowFactory PaymentUoWFactory, gateway ports.PaymentGateway) RefundPaymentCommandHandler {
	return RefundPaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

func (h RefundPaymentCommandHandler) Handle(ctx context.Context, cmd PaymentCommand) (RefundResult, error) {
	if err := cmd.Validate(); err != nil {
		return RefundResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RefundResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, o, err := loadPaymentWithOrder(ctx, uow, cmd.PaymentID())
	if err != nil {
		return RefundResult{}, err
	}

	if !canActOnPayment(cmd.Actor(), o, (*order.Order).IsTailor) {
		return RefundResult{}, errs.NewAccessDeniedError("refund payment", "only the order's tailor or an admin")
	}

	if err = p.Refund(); err != nil {
		return RefundResult{}, err
	}
	if o != nil {
		if err = o.CancelWithRefund(); err != nil {
			return RefundResult{}, err
		}
	}

	if err = uow.PaymentRepository().Update(ctx, p); err != nil {
		return RefundResult{}, err
	}
	if o != nil {
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return RefundResult{}, err
		}
	}

	receipt, err := h.gateway.Refund(ctx, p.GatewayReference())
	if err != nil {
		return RefundResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RefundResult{}, err
	}

	return RefundResult{Payment: p, Refund: receipt}, nil
}
