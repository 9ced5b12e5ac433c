package commands

import (
	"context"
	"errors"

	"tailorshop/internal/core/domain/model/delivery"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/errs"
)

// ErrInvalidRider is returned when the target user is unknown or not a rider.
var ErrInvalidRider = errs.NewValueIsInvalidErrorWithCause("riderId", errors.New("invalid rider"))

// AssignRiderCommandHandler assigns a rider to a pending or already assigned delivery.
type AssignRiderCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewAssignRiderCommandHandler(uowFactory DeliveryUoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{uowFactory: uowFactory}
}

func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) (*delivery.Delivery, error) {
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

	rider, err := uow.UserRepository().Get(ctx, cmd.RiderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrInvalidRider
	}
	if err != nil {
		return nil, err
	}
	if !rider.HasRole(user.Rider) {
		return nil, ErrInvalidRider
	}

	deliveries := uow.DeliveryRepository()
	d, err := deliveries.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = d.AssignRider(rider.ID()); err != nil {
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
