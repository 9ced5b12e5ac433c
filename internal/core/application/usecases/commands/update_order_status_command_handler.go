package commands

import (
	"context"

	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler is used by the order's tailor or an admin.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
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

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if !actor.IsAdmin() && !o.IsTailor(actor.UserID) {
		return nil, errs.NewAccessDeniedError("update order status", "only the order's tailor or an admin")
	}

	if err = o.UpdateStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
