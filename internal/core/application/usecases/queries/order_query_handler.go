package queries

import (
	"context"

	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
)

// GetOrderQueryHandler lets the order's customer, its tailor or an admin read it.
type GetOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetOrderQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query OrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return loadVisibleOrder(ctx, h.uowFactory.Create().OrderRepository(), query, "get order")
}

// ListOrdersQueryHandler returns a customer's own orders, the orders addressed
// to a tailor, or every order for an admin. Riders see orders through their
// deliveries only.
type ListOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{uowFactory: uowFactory}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ActorQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	repo := h.uowFactory.Create().OrderRepository()
	actor := query.Actor()
	switch actor.Role {
	case user.Customer:
		return repo.ListByCustomer(ctx, actor.UserID)
	case user.Tailor:
		return repo.ListByTailorUser(ctx, actor.UserID)
	case user.Admin:
		return repo.ListAll(ctx)
	default:
		return nil, errs.NewAccessDeniedError("list orders", "riders have no order list")
	}
}

func loadVisibleOrder(ctx context.Context, repo ports.OrderRepository, query OrderQuery, action string) (*order.Order, error) {
	o, err := repo.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	actor := query.Actor()
	if !actor.IsAdmin() && !o.IsCustomer(actor.UserID) && !o.IsTailor(actor.UserID) {
		return nil, errs.NewAccessDeniedError(action, "not a party to the order")
	}
	return o, nil
}
