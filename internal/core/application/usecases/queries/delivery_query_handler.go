package queries

import (
	"context"
	"errors"
	"time"

	"tailorshop/internal/core/domain/model/delivery"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
)

// GetDeliveryByOrderQueryHandler lets the order's customer, its tailor, the
// assigned rider or an admin read the delivery of an order. Anyone else gets
// the same not-found error as for an order without a delivery.
type GetDeliveryByOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetDeliveryByOrderQueryHandler(uowFactory ports.UnitOfWorkFactory) GetDeliveryByOrderQueryHandler {
	return GetDeliveryByOrderQueryHandler{uowFactory: uowFactory}
}

func (h GetDeliveryByOrderQueryHandler) Handle(ctx context.Context, query OrderQuery) (*delivery.Delivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	notFound := errs.NewObjectNotFoundError("delivery", query.OrderID().String())

	uow := h.uowFactory.Create()
	d, err := uow.DeliveryRepository().GetByOrder(ctx, query.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, notFound
		}
		return nil, err
	}

	actor := query.Actor()
	if actor.IsAdmin() || d.IsAssignedTo(actor.UserID) {
		return d, nil
	}

	o, err := uow.OrderRepository().Get(ctx, d.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, notFound
		}
		return nil, err
	}
	if !o.IsCustomer(actor.UserID) && !o.IsTailor(actor.UserID) {
		return nil, notFound
	}
	return d, nil
}

// TrackingView is the public projection of a delivery. It carries no
// identifiers besides the tracking code.
type TrackingView struct {
	TrackingCode    delivery.TrackingCode
	Status          delivery.Status
	PickupDate      *time.Time
	DeliveryDate    *time.Time
	CurrentLocation *kernel.GeoPoint
	OrderStatus     order.Status
}

// GetDeliveryByTrackingCodeQueryHandler is public. Malformed and unknown
// codes both produce the same not-found error.
type GetDeliveryByTrackingCodeQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetDeliveryByTrackingCodeQueryHandler(uowFactory ports.UnitOfWorkFactory) GetDeliveryByTrackingCodeQueryHandler {
	return GetDeliveryByTrackingCodeQueryHandler{uowFactory: uowFactory}
}

func (h GetDeliveryByTrackingCodeQueryHandler) Handle(ctx context.Context, query TrackingQuery) (TrackingView, error) {
	if err := query.Validate(); err != nil {
		return TrackingView{}, err
	}

	notFound := errs.NewObjectNotFoundError("trackingCode", "delivery")

	code, err := delivery.ParseTrackingCode(query.Code())
	if err != nil {
		return TrackingView{}, notFound
	}

	uow := h.uowFactory.Create()
	d, err := uow.DeliveryRepository().GetByTrackingCode(ctx, code)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return TrackingView{}, notFound
		}
		return TrackingView{}, err
	}

	o, err := uow.OrderRepository().Get(ctx, d.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return TrackingView{}, notFound
		}
		return TrackingView{}, err
	}

	return TrackingView{
		TrackingCode:    d.TrackingCode(),
		Status:          d.Status(),
		PickupDate:      d.PickupDate(),
		DeliveryDate:    d.DeliveryDate(),
		CurrentLocation: d.CurrentLocation(),
		OrderStatus:     o.Status(),
	}, nil
}

// ListDeliveriesQueryHandler returns every delivery to an admin and the
// assigned ones to a rider.
type ListDeliveriesQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListDeliveriesQueryHandler(uowFactory ports.UnitOfWorkFactory) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{uowFactory: uowFactory}
}

func (h ListDeliveriesQueryHandler) Handle(ctx context.Context, query ActorQuery) ([]*delivery.Delivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	repo := h.uowFactory.Create().DeliveryRepository()
	actor := query.Actor()
	switch actor.Role {
	case user.Admin:
		return repo.List(ctx)
	case user.Rider:
		return repo.ListByRider(ctx, actor.UserID)
	default:
		return nil, errs.NewAccessDeniedError("list deliveries", "admin or rider role required")
	}
}
