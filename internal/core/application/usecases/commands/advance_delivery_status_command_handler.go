package commands

import (
	"context"
	"time"

	"tailorshop/internal/core/domain/model/delivery"
	"tailorshop/internal/pkg/errs"
)

// AdvanceDeliveryStatusCommandHandler drives the delivery state machine.
//
// The move is checked against the transition table before anything changes.
// Reaching delivered also marks the order delivered; both writes share one
// transaction. The delivery write is version checked, so of two concurrent
// advances from the same state only one commits and the other gets a
// VersionIsInvalidError.
type AdvanceDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewAdvanceDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) AdvanceDeliveryStatusCommandHandler {
	return AdvanceDeliveryStatusCommandHandler{uowFactory: uowFactory}
}

func (h AdvanceDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceDeliveryStatusCommand,
) (*delivery.Delivery, error) {
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

	deliveries := uow.DeliveryRepository()
	d, err := deliveries.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if !d.IsAssignedTo(cmd.Actor().UserID) {
		return nil, errs.NewAccessDeniedError("advance delivery status", "only the assigned rider")
	}

	now := time.Now().UTC()
	if err = d.Advance(cmd.Status(), cmd.Location(), now); err != nil {
		return nil, err
	}

	if err = deliveries.Update(ctx, d); err != nil {
		return nil, err
	}

	if d.Status() == delivery.Delivered {
		orders := uow.OrderRepository()
		o, err := orders.Get(ctx, d.OrderID())
		if err != nil {
			return nil, err
		}
		if err = o.MarkDelivered(now); err != nil {
			return nil, err
		}
		if err = orders.Update(ctx, o); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
