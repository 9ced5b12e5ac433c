package commands

import (
	"context"
	"errors"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/pkg/errs"
)

// CreateOrderCommandHandler prices and places an order.
//
// When a material is chosen it must belong to the ordered shop; its yards
// are taken out of stock and priced at pricePerYard x yards. A measurement
// set, when referenced, must belong to the customer. The order starts
// pending and unpaid.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	req := cmd.Request()
	customerID := cmd.Actor().UserID

	shop, err := uow.TailorRepository().Get(ctx, req.TailorID)
	if err != nil {
		return nil, err
	}
	if !shop.IsAvailable() {
		return nil, errs.NewValueIsInvalidErrorWithCause("tailorId", errors.New("tailor is not accepting orders"))
	}

	if req.MeasurementID != nil {
		set, err := uow.MeasurementRepository().Get(ctx, *req.MeasurementID)
		if err != nil {
			return nil, err
		}
		if !set.OwnedBy(customerID) {
			return nil, errs.NewAccessDeniedError("create order", "measurement set belongs to another user")
		}
	}

	materialPrice := kernel.ZeroMoney()
	source := order.MaterialFromCustomer
	if req.MaterialID != nil {
		materials := uow.MaterialRepository()
		m, err := materials.Get(ctx, *req.MaterialID)
		if err != nil {
			return nil, err
		}
		if !m.BelongsTo(shop.ID()) {
			return nil, errs.NewValueIsInvalidErrorWithCause("materialId", errors.New("material belongs to another tailor"))
		}
		if materialPrice, err = m.Reserve(req.MaterialYards); err != nil {
			return nil, err
		}
		if err = materials.Update(ctx, m); err != nil {
			return nil, err
		}
		source = order.MaterialFromTailor
	}

	pricing, err := order.NewPricing(req.TailoringPrice, materialPrice, req.DeliveryPrice)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		customerID,
		order.Party{TailorID: shop.ID(), UserID: shop.UserID()},
		order.Details{
			OrderType:           req.OrderType,
			Description:         req.Description,
			Instructions:        req.Instructions,
			MaterialSource:      source,
			MaterialDetails:     req.MaterialDetails,
			MeasurementID:       req.MeasurementID,
			EstimatedCompletion: req.EstimatedCompletion,
		},
		pricing,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
