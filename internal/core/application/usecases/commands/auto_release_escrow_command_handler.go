package commands

import (
	"context"
	"errors"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
)

// AutoReleaseEscrowCommandHandler releases held payments once their order was
// handed over (delivered or completed) and the hold period has passed.
// Payments without an order are left for an admin.
//
// Each payment is released in its own transaction so one conflict does not
// hold back the rest; the returned count covers successful releases and the
// error joins the failures.
type AutoReleaseEscrowCommandHandler struct {
	uowFactory PaymentUoWFactory
}

func NewAutoReleaseEscrowCommandHandler(uowFactory PaymentUoWFactory) AutoReleaseEscrowCommandHandler {
	return AutoReleaseEscrowCommandHandler{uowFactory: uowFactory}
}

func (h AutoReleaseEscrowCommandHandler) Handle(ctx context.Context, cmd AutoReleaseEscrowCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	held, err := h.uowFactory.Create().PaymentRepository().ListHeldSince(ctx, now.Add(-cmd.HoldPeriod()))
	if err != nil {
		return 0, err
	}

	var (
		released int
		failures []error
	)
	for _, p := range held {
		if p.OrderID() == nil {
			continue
		}

		ok, err := h.releaseOne(ctx, p.ID(), cmd.HoldPeriod(), now)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		if ok {
			released++
		}
	}

	return released, errors.Join(failures...)
}

func (h AutoReleaseEscrowCommandHandler) releaseOne(
	ctx context.Context,
	paymentID kernel.UUID,
	holdPeriod time.Duration,
	now time.Time,
) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, o, err := loadPaymentWithOrder(ctx, uow, paymentID)
	if err != nil {
		return false, err
	}
	if o == nil || !p.IsHeldLongerThan(holdPeriod, now) {
		return false, nil
	}
	if o.Status() != order.Delivered && o.Status() != order.Completed {
		return false, nil
	}

	if err = releaseEscrow(ctx, uow, p, o, now); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
