package memory

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/payment"
	"tailorshop/internal/pkg/errs"
)

type PaymentRepository struct {
	uow *UnitOfWork
}

func (r *PaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	stored, err := clonePayment(aggregate, aggregate.Version())
	if err != nil {
		return err
	}

	return r.uow.run(ctx, func(t *tables) error {
		if _, ok := t.payments[aggregate.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("paymentId", errAlreadyExists)
		}
		if err := checkReference(t, stored); err != nil {
			return err
		}
		t.payments[aggregate.ID()] = stored
		return nil
	})
}

func (r *PaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	stored, err := clonePayment(aggregate, aggregate.Version()+1)
	if err != nil {
		return err
	}

	err = r.uow.run(ctx, func(t *tables) error {
		current, ok := t.payments[aggregate.ID()]
		if !ok {
			return errs.NewObjectNotFoundError("payment", aggregate.ID().String())
		}
		if current.Version() != aggregate.Version() {
			return errs.NewVersionIsInvalidErrorWithCause("payment", errors.New("modified concurrently"))
		}
		if err := checkReference(t, stored); err != nil {
			return err
		}
		t.payments[aggregate.ID()] = stored
		return nil
	})
	if err != nil {
		return err
	}

	aggregate.IncrementVersion()
	return nil
}

func (r *PaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	found, err := r.newest(ctx, func(p *payment.Payment) bool { return p.ID().IsEqual(id) })
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errs.NewObjectNotFoundError("payment", id.String())
	}
	return found, nil
}

func (r *PaymentRepository) GetByGatewayReference(ctx context.Context, reference string) (*payment.Payment, error) {
	found, err := r.newest(ctx, func(p *payment.Payment) bool {
		return reference != "" && p.GatewayReference() == reference
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errs.NewObjectNotFoundError("payment", reference)
	}
	return found, nil
}

func (r *PaymentRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	found, err := r.newest(ctx, func(p *payment.Payment) bool {
		return p.OrderID() != nil && p.OrderID().IsEqual(orderID)
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errs.NewObjectNotFoundError("payment", orderID.String())
	}
	return found, nil
}

// ListHeldSince returns oldest first, like the PostgreSQL repository.
func (r *PaymentRepository) ListHeldSince(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error) {
	return r.oldestFirst(r.list(ctx, func(p *payment.Payment) bool {
		return p.Status() == payment.HeldInEscrow && p.HeldAt() != nil && !p.HeldAt().After(cutoff)
	}))
}

func (r *PaymentRepository) ListUnconfirmedSince(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error) {
	return r.oldestFirst(r.list(ctx, func(p *payment.Payment) bool {
		unconfirmed := p.Status() == payment.Pending || p.Status() == payment.Processing
		return unconfirmed && !p.CreatedAt().After(cutoff)
	}))
}

func (r *PaymentRepository) oldestFirst(found []*payment.Payment, err error) ([]*payment.Payment, error) {
	if err != nil {
		return nil, err
	}
	slices.Reverse(found)
	return found, nil
}

// newest returns the most recently created match, or nil.
func (r *PaymentRepository) newest(ctx context.Context, match func(*payment.Payment) bool) (*payment.Payment, error) {
	all, err := r.list(ctx, match)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

// list returns matches newest first.
func (r *PaymentRepository) list(ctx context.Context, keep func(*payment.Payment) bool) ([]*payment.Payment, error) {
	var found []*payment.Payment
	err := r.uow.run(ctx, func(t *tables) error {
		found = make([]*payment.Payment, 0)
		for _, p := range t.payments {
			if !keep(p) {
				continue
			}
			c, err := clonePayment(p, p.Version())
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

	slices.SortFunc(found, func(a, b *payment.Payment) int {
		return cmp.Or(
			b.CreatedAt().Compare(a.CreatedAt()),
			strings.Compare(a.ID().String(), b.ID().String()),
		)
	})
	return found, nil
}

// checkReference keeps gateway references unique. Payments that have not
// reached the gateway carry none and never clash.
func checkReference(t *tables, candidate *payment.Payment) error {
	ref := candidate.GatewayReference()
	if ref == "" {
		return nil
	}
	for id, p := range t.payments {
		if id != candidate.ID() && p.GatewayReference() == ref {
			return errs.NewValueIsInvalidErrorWithCause("gatewayReference", errAlreadyExists)
		}
	}
	return nil
}
