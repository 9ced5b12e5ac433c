package commands

import (
	"context"

	"tailorshop/internal/core/domain/model/delivery"
	"tailorshop/internal/pkg/errs"
)

// UpdateDeliveryLocationCommandHandler overwrites the current location
// whatever the delivery's status.
type UpdateDeliveryLocationCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewUpdateDeliveryLocationCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryLocationCommandHandler {
	return UpdateDeliveryLocationCommandHandler{uowFactory: uowFactory}
}

func (h UpdateDeliveryLocationCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryLocationCommand,
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
		return nil, errs.NewAccessDeniedError("update delivery location", "only the assigned rider")
	}

	if err = d.UpdateLocation(cmd.Location()); err != nil {
		return nil, err
	}

	if err = deliveries.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
