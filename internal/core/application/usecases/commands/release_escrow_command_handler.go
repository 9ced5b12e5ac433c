package commands

import (
	"context"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/domain/model/payment"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/errs"
)

// ReleaseEscrowCommandHandler pays the tailor out of escrow. The order's
// customer or an admin may release; a payment recorded without an order can
// only be released by an admin.
type ReleaseEscrowCommandHandler struct {
	uowFactory PaymentUoWFactory
}

func NewReleaseEscrowCommandHandler(uowFactory PaymentUoWFactory) ReleaseEscrowCommandHandler {
	return ReleaseEscrowCommandHandler{uowFactory: uowFactory}
}

func (h ReleaseEscrowCommandHandler) Handle(ctx context.Context, cmd PaymentCommand) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, o, err := loadPaymentWithOrder(ctx, uow, cmd.PaymentID())
	if err != nil {
		return nil, err
	}

	if !canActOnPayment(cmd.Actor(), o, (*order.Order).IsCustomer) {
		return nil, errs.NewAccessDeniedError("release escrow", "only the order's customer or an admin")
	}

	if err = releaseEscrow(ctx, uow, p, o, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

func releaseEscrow(ctx context.Context, uow PaymentUoW, p *payment.Payment, o *order.Order, now time.Time) error {
	if err := p.Release(now); err != nil {
		return err
	}
	if err := uow.PaymentRepository().Update(ctx, p); err != nil {
		return err
	}

	if o == nil {
		return nil
	}
	if err := o.MarkPaid(); err != nil {
		return err
	}
	return uow.OrderRepository().Update(ctx, o)
}

// loadPaymentWithOrder returns a nil order for payments recorded without one.
func loadPaymentWithOrder(ctx context.Context, uow PaymentUoW, id kernel.UUID) (*payment.Payment, *order.Order, error) {
	p, err := uow.PaymentRepository().Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if p.OrderID() == nil {
		return p, nil, nil
	}

	o, err := uow.OrderRepository().Get(ctx, *p.OrderID())
	if err != nil {
		return nil, nil, err
	}
	return p, o, nil
}

// canActOnPayment lets admins through and otherwise requires an order for
// which isParty holds.
func canActOnPayment(actor user.Principal, o *order.Order, isParty func(*order.Order, kernel.UUID) bool) bool {
	if actor.IsAdmin() {
		return true
	}
	return o != nil && isParty(o, actor.UserID)
}
