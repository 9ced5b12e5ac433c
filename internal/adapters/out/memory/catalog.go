package memory

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/material"
	"tailorshop/internal/core/domain/model/tailor"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
)

var errAlreadyExists = errors.New("already exists")

type UserRepository struct {
	uow *UnitOfWork
}

func (r *UserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	stored, err := cloneUser(aggregate)
	if err != nil {
		return err
	}

	return r.uow.run(ctx, func(t *tables) error {
		if _, ok := t.users[aggregate.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("userId", errAlreadyExists)
		}
		t.users[aggregate.ID()] = stored
		return nil
	})
}

func (r *UserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	stored, err := cloneUser(aggregate)
	if err != nil {
		return err
	}

	return r.uow.run(ctx, func(t *tables) error {
		if _, ok := t.users[aggregate.ID()]; !ok {
			return errs.NewObjectNotFoundError("user", aggregate.ID().String())
		}
		t.users[aggregate.ID()] = stored
		return nil
	})
}

func (r *UserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *user.User
	err := r.uow.run(ctx, func(t *tables) error {
		u, ok := t.users[id]
		if !ok {
			return errs.NewObjectNotFoundError("user", id.String())
		}
		var err error
		found, err = cloneUser(u)
		return err
	})
	return found, err
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	var found []*user.User
	err := r.uow.run(ctx, func(t *tables) error {
		found = make([]*user.User, 0, len(t.users))
		for _, u := range t.users {
			c, err := cloneUser(u)
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

	slices.SortFunc(found, func(a, b *user.User) int {
		return cmp.Or(
			strings.Compare(a.Name(), b.Name()),
			strings.Compare(a.ID().String(), b.ID().String()),
		)
	})
	return found, nil
}

type TailorRepository struct {
	uow *UnitOfWork
}

func (r *TailorRepository) Add(ctx context.Context, aggregate *tailor.Tailor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	stored, err := cloneTailor(aggregate)
	if err != nil {
		return err
	}

	return r.uow.run(ctx, func(t *tables) error {
		if _, ok := t.tailors[aggregate.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("tailorId", errAlreadyExists)
		}
		for _, other := range t.tailors {
			if other.UserID().IsEqual(aggregate.UserID()) {
				return errs.NewValueIsInvalidErrorWithCause("userId", errors.New("user already runs a shop"))
			}
		}
		t.tailors[aggregate.ID()] = stored
		return nil
	})
}

func (r *TailorRepository) Update(ctx context.Context, aggregate *tailor.Tailor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	stored, err := cloneTailor(aggregate)
	if err != nil {
		return err
	}

	return r.uow.run(ctx, func(t *tables) error {
		if _, ok := t.tailors[aggregate.ID()]; !ok {
			return errs.NewObjectNotFoundError("tailor", aggregate.ID().String())
		}
		t.tailors[aggregate.ID()] = stored
		return nil
	})
}

func (r *TailorRepository) Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *tailor.Tailor
	err := r.uow.run(ctx, func(t *tables) error {
		shop, ok := t.tailors[id]
		if !ok {
			return errs.NewObjectNotFoundError("tailor", id.String())
		}
		var err error
		found, err = cloneTailor(shop)
		return err
	})
	return found, err
}

func (r *TailorRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*tailor.Tailor, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var found *tailor.Tailor
	err := r.uow.run(ctx, func(t *tables) error {
		for _, shop := range t.tailors {
			if shop.UserID().IsEqual(userID) {
				var err error
				found, err = cloneTailor(shop)
				return err
			}
		}
		return errs.NewObjectNotFoundError("tailor", userID.String())
	})
	return found, err
}

// Search orders by rating, then review count, both descending.
func (r *TailorRepository) Search(ctx context.Context, filter ports.TailorFilter) ([]*tailor.Tailor, error) {
	var found []*tailor.Tailor
	err := r.uow.run(ctx, func(t *tables) error {
		found = make([]*tailor.Tailor, 0, len(t.tailors))
		for _, shop := range t.tailors {
			if filter.OnlyAvailable && !shop.IsAvailable() {
				continue
			}
			if filter.MinRating > 0 && shop.Rating() < filter.MinRating {
				continue
			}
			if !shop.HasAnySpecialty(filter.Specialties) {
				continue
			}
			c, err := cloneTailor(shop)
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

	slices.SortFunc(found, func(a, b *tailor.Tailor) int {
		return cmp.Or(
			cmp.Compare(b.Rating(), a.Rating()),
			cmp.Compare(b.ReviewCount(), a.ReviewCount()),
			strings.Compare(a.ID().String(), b.ID().String()),
		)
	})
	return found, nil
}

type MaterialRepository struct {
	uow *UnitOfWork
}

func (r *MaterialRepository) Add(ctx context.Context, aggregate *material.Material) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	stored, err := cloneMaterial(aggregate)
	if err != nil {
		return err
	}

	return r.uow.run(ctx, func(t *tables) error {
		if _, ok := t.materials[aggregate.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("materialId", errAlreadyExists)
		}
		if _, ok := t.tailors[aggregate.TailorID()]; !ok {
			return errs.NewObjectNotFoundError("tailor", aggregate.TailorID().String())
		}
		t.materials[aggregate.ID()] = stored
		return nil
	})
}

func (r *MaterialRepository) Update(ctx context.Context, aggregate *material.Material) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	stored, err := cloneMaterial(aggregate)
	if err != nil {
		return err
	}

	return r.uow.run(ctx, func(t *tables) error {
		if _, ok := t.materials[aggregate.ID()]; !ok {
			return errs.NewObjectNotFoundError("material", aggregate.ID().String())
		}
		t.materials[aggregate.ID()] = stored
		return nil
	})
}

func (r *MaterialRepository) Get(ctx context.Context, id kernel.UUID) (*material.Material, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *material.Material
	err := r.uow.run(ctx, func(t *tables) error {
		m, ok := t.materials[id]
		if !ok {
			return errs.NewObjectNotFoundError("material", id.String())
		}
		var err error
		found, err = cloneMaterial(m)
		return err
	})
	return found, err
}

func (r *MaterialRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.uow.run(ctx, func(t *tables) error {
		if _, ok := t.materials[id]; !ok {
			return errs.NewObjectNotFoundError("material", id.String())
		}
		delete(t.materials, id)
		return nil
	})
}

func (r *MaterialRepository) ListByTailor(ctx context.Context, tailorID kernel.UUID) ([]*material.Material, error) {
	return r.list(ctx, func(m *material.Material) bool {
		return m.BelongsTo(tailorID)
	})
}

// ListAvailable skips hidden materials and those with no yards left.
func (r *MaterialRepository) ListAvailable(ctx context.Context) ([]*material.Material, error) {
	return r.list(ctx, func(m *material.Material) bool {
		return m.IsAvailable() && m.QuantityAvailable().IsPositive()
	})
}

func (r *MaterialRepository) list(ctx context.Context, keep func(*material.Material) bool) ([]*material.Material, error) {
	var found []*material.Material
	err := r.uow.run(ctx, func(t *tables) error {
		found = make([]*material.Material, 0)
		for _, m := range t.materials {
			if !keep(m) {
				continue
			}
			c, err := cloneMaterial(m)
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

	slices.SortFunc(found, func(a, b *material.Material) int {
		return cmp.Or(
			strings.Compare(a.Details().Name, b.Details().Name),
			strings.Compare(a.ID().String(), b.ID().String()),
		)
	})
	return found, nil
}
