package ports

import (
	"context"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/material"
	"tailorshop/internal/core/domain/model/tailor"
	"tailorshop/internal/core/domain/model/user"
)

// UserRepository is the user directory used for role checks.
type UserRepository interface {
	Add(ctx context.Context, aggregate *user.User) error
	Update(ctx context.Context, aggregate *user.User) error
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// List returns every entry ordered by name.
	List(ctx context.Context) ([]*user.User, error)
}

// TailorFilter is pushed down to storage. Zero values disable a filter.
type TailorFilter struct {
	// Specialties matches tailors sharing at least one entry, case-insensitively.
	Specialties   []string
	MinRating     float64
	OnlyAvailable bool
}

// TailorRepository defines the persistence contract for tailor shops.
type TailorRepository interface {
	Add(ctx context.Context, aggregate *tailor.Tailor) error
	Update(ctx context.Context, aggregate *tailor.Tailor) error
	Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error)

	// GetByUser returns the shop run by userID.
	GetByUser(ctx context.Context, userID kernel.UUID) (*tailor.Tailor, error)

	// Search returns shops matching filter, highest rated first.
	Search(ctx context.Context, filter TailorFilter) ([]*tailor.Tailor, error)
}

// MaterialRepository defines the persistence contract for fabric stock.
type MaterialRepository interface {
	Add(ctx context.Context, aggregate *material.Material) error
	Update(ctx context.Context, aggregate *material.Material) error
	Get(ctx context.Context, id kernel.UUID) (*material.Material, error)
	Delete(ctx context.Context, id kernel.UUID) error
	ListByTailor(ctx context.Context, tailorID kernel.UUID) ([]*material.Material, error)
	ListAvailable(ctx context.Context) ([]*material.Material, error)
}
