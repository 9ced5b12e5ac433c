package queries

import (
	"context"

	"tailorshop/internal/core/domain/model/payment"
	"tailorshop/internal/core/ports"
)

// GetPaymentByOrderQueryHandler returns the latest payment of an order to its
// customer, its tailor or an admin.
type GetPaymentByOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetPaymentByOrderQueryHandler(uowFactory ports.UnitOfWorkFactory) GetPaymentByOrderQueryHandler {
	return GetPaymentByOrderQueryHandler{uowFactory: uowFactory}
}

func (h GetPaymentByOrderQueryHandler) Handle(ctx context.Context, query OrderQuery) (*payment.Payment, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	o, err := loadVisibleOrder(ctx, uow.OrderRepository(), query, "get payment")
	if err != nil {
		return nil, err
	}
	return uow.PaymentRepository().GetByOrder(ctx, o.ID())
}
