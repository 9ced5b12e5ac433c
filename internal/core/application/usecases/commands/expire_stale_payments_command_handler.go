package commands

import (
	"context"
	"time"
)

// ExpiredPaymentNote is recorded on payments failed by expiry.
const ExpiredPaymentNote = "payment intent expired"

// ExpireStalePaymentsCommandHandler fails every pending or processing payment
// older than the ttl in a single transaction.
type ExpireStalePaymentsCommandHandler struct {
	uowFactory PaymentUoWFactory
}

func NewExpireStalePaymentsCommandHandler(uowFactory PaymentUoWFactory) ExpireStalePaymentsCommandHandler {
	return ExpireStalePaymentsCommandHandler{uowFactory: uowFactory}
}

func (h ExpireStalePaymentsCommandHandler) Handle(ctx context.Context, cmd ExpireStalePaymentsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()
	payments := uow.PaymentRepository()
	stale, err := payments.ListUnconfirmedSince(ctx, now.Add(-cmd.TTL()))
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, p := range stale {
		if !p.IsStale(cmd.TTL(), now) {
			continue
		}
		if err = p.Fail(ExpiredPaymentNote); err != nil {
			return 0, err
		}
		if err = payments.Update(ctx, p); err != nil {
			return 0, err
		}
		expired++
	}

	if expired == 0 {
		return 0, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, nil
}
