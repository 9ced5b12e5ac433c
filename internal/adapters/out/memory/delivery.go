package memory

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"

	"tailorshop/internal/core/domain/model/delivery"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"
)

// maxTrackingCodeAttempts matches the PostgreSQL repository.
const maxTrackingCodeAttempts = 5

type DeliveryRepository struct {
	uow *UnitOfWork
}

// Add redraws the tracking code while it clashes with a stored one.
func (r *DeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.run(ctx, func(t *tables) error {
		if _, ok := t.deliveries[aggregate.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("deliveryId", errAlreadyExists)
		}
		if _, ok := t.orders[aggregate.OrderID()]; !ok {
			return errs.NewObjectNotFoundError("order", aggregate.OrderID().String())
		}
		for _, d := range t.deliveries {
			if d.OrderID().IsEqual(aggregate.OrderID()) {
				return errs.NewValueIsInvalidErrorWithCause("orderId", errors.New("order already has a delivery"))
			}
		}

		for attempt := 1; codeTaken(t, aggregate.TrackingCode()); attempt++ {
			if attempt == maxTrackingCodeAttempts {
				return errs.NewValueIsInvalidErrorWithCause("trackingCode", errors.New("no free tracking code"))
			}
			aggregate.RegenerateTrackingCode()
		}

		stored, err := cloneDelivery(aggregate, aggregate.Version())
		if err != nil {
			return err
		}
		t.deliveries[aggregate.ID()] = stored
		return nil
	})
}

func (r *DeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	stored, err := cloneDelivery(aggregate, aggregate.Version()+1)
	if err != nil {
		return err
	}

	err = r.uow.run(ctx, func(t *tables) error {
		current, ok := t.deliveries[aggregate.ID()]
		if !ok {
			return errs.NewObjectNotFoundError("delivery", aggregate.ID().String())
		}
		if current.Version() != aggregate.Version() {
			return errs.NewVersionIsInvalidErrorWithCause("delivery", errors.New("modified concurrently"))
		}
		t.deliveries[aggregate.ID()] = stored
		return nil
	})
	if err != nil {
		return err
	}

	aggregate.IncrementVersion()
	return nil
}

func (r *DeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, errs.NewObjectNotFoundError("delivery", id.String()), func(d *delivery.Delivery) bool {
		return d.ID().IsEqual(id)
	})
}

func (r *DeliveryRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, errs.NewObjectNotFoundError("delivery", orderID.String()), func(d *delivery.Delivery) bool {
		return d.OrderID().IsEqual(orderID)
	})
}

func (r *DeliveryRepository) GetByTrackingCode(ctx context.Context, code delivery.TrackingCode) (*delivery.Delivery, error) {
	return r.first(ctx, errs.NewObjectNotFoundError("trackingCode", "delivery"), func(d *delivery.Delivery) bool {
		return d.TrackingCode() == code
	})
}

func (r *DeliveryRepository) List(ctx context.Context) ([]*delivery.Delivery, error) {
	return r.list(ctx, func(*delivery.Delivery) bool { return true })
}

func (r *DeliveryRepository) ListByRider(ctx context.Context, riderID kernel.UUID) ([]*delivery.Delivery, error) {
	return r.list(ctx, func(d *delivery.Delivery) bool {
		return d.RiderID() != nil && d.RiderID().IsEqual(riderID)
	})
}

func (r *DeliveryRepository) first(
	ctx context.Context,
	notFound error,
	match func(*delivery.Delivery) bool,
) (*delivery.Delivery, error) {
	var found *delivery.Delivery
	err := r.uow.run(ctx, func(t *tables) error {
		for _, d := range t.deliveries {
			if match(d) {
				var err error
				found, err = cloneDelivery(d, d.Version())
				return err
			}
		}
		return notFound
	})
	return found, err
}

func (r *DeliveryRepository) list(ctx context.Context, keep func(*delivery.Delivery) bool) ([]*delivery.Delivery, error) {
	var found []*delivery.Delivery
	err := r.uow.run(ctx, func(t *tables) error {
		found = make([]*delivery.Delivery, 0)
		for _, d := range t.deliveries {
			if !keep(d) {
				continue
			}
			c, err := cloneDelivery(d, d.Version())
			if err != nil {
				return err
			}
			found = append(found, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(found, func(a, b *delivery.Delivery) int {
		return cmp.Or(
			b.CreatedAt().Compare(a.CreatedAt()),
			strings.Compare(a.ID().String(), b.ID().String()),
		)
	})
	return found, nil
}

func codeTaken(t *tables, code delivery.TrackingCode) bool {
	for _, d := range t.deliveries {
		if d.TrackingCode() == code {
			return true
		}
	}
	return false
}
