package commands

import (
	"context"
	"errors"
	"time"

	"tailorshop/internal/core/domain/model/delivery"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"
)

// CreateDeliveryCommandHandler opens a pending delivery for an order and moves
// the order to pending_delivery in the same transaction. Only the order's
// tailor or an admin may do so, and an order gets at most one delivery.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{uowFactory: uowFactory}
}

func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (*delivery.Delivery, error) {
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

	orders := uow.OrderRepository()
	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if !actor.IsAdmin() && !o.IsTailor(actor.UserID) {
		return nil, errs.NewAccessDeniedError("create delivery", "only the order's tailor or an admin")
	}

	deliveries := uow.DeliveryRepository()
	_, err = deliveries.GetByOrder(ctx, o.ID())
	switch {
	case err == nil:
		return nil, errs.NewValueIsInvalidErrorWithCause("orderId", errors.New("order already has a delivery"))
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), cmd.Addresses(), cmd.Fee(), cmd.Notes(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = o.MarkPendingDelivery(); err != nil {
		return nil, err
	}

	if err = deliveries.Add(ctx, d); err != nil {
		return nil, err
	}

	if err = orders.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
