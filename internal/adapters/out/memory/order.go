package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/pkg/errs"
)

type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	stored, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	return r.uow.run(ctx, func(t *tables) error {
		if _, ok := t.orders[aggregate.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("orderId", errAlreadyExists)
		}
		if _, ok := t.tailors[aggregate.Tailor().TailorID]; !ok {
			return errs.NewObjectNotFoundError("tailor", aggregate.Tailor().TailorID.String())
		}
		t.orders[aggregate.ID()] = stored
		return nil
	})
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	stored, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	return r.uow.run(ctx, func(t *tables) error {
		if _, ok := t.orders[aggregate.ID()]; !ok {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		t.orders[aggregate.ID()] = stored
		return nil
	})
}

func (r *OrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *order.Order
	err := r.uow.run(ctx, func(t *tables) error {
		o, ok := t.orders[id]
		if !ok {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		var err error
		found, err = cloneOrder(o)
		return err
	})
	return found, err
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	return r.list(ctx, func(o *order.Order) bool { return o.IsCustomer(customerID) })
}

func (r *OrderRepository) ListByTailorUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error) {
	return r.list(ctx, func(o *order.Order) bool { return o.IsTailor(userID) })
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	return r.list(ctx, func(*order.Order) bool { return true })
}

func (r *OrderRepository) list(ctx context.Context, keep func(*order.Order) bool) ([]*order.Order, error) {
	var found []*order.Order
	err := r.uow.run(ctx, func(t *tables) error {
		found = make([]*order.Order, 0)
		for _, o := range t.orders {
			if !keep(o) {
				continue
			}
			c, err := cloneOrder(o)
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

	slices.SortFunc(found, func(a, b *order.Order) int {
		return cmp.Or(
			b.CreatedAt().Compare(a.CreatedAt()),
			strings.Compare(a.ID().String(), b.ID().String()),
		)
	})
	return found, nil
}

// detachMeasurement returns a copy of o without its measurement reference.
func detachMeasurement(o *order.Order) (*order.Order, error) {
	details := o.Details()
	details.MeasurementID = nil

	return order.RestoreOrder(
		o.ID(),
		o.CustomerID(),
		o.Tailor(),
		details,
		o.Pricing(),
		order.State{
			Status:           o.Status(),
			PaymentStatus:    o.PaymentStatus(),
			PaymentID:        copyPtr(o.PaymentID()),
			ActualCompletion: copyPtr(o.ActualCompletion()),
		},
		o.CreatedAt(),
	)
}
