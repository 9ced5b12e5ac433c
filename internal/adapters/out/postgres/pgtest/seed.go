package pgtest

import (
	"context"
	"time"

	"tailorshop/internal/adapters/out/postgres/orderrepo"
	"tailorshop/internal/adapters/out/postgres/tailorrepo"
	"tailorshop/internal/adapters/out/postgres/userrepo"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/domain/model/tailor"
	"tailorshop/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// NopTracker satisfies the repositories' aggregate tracker and records nothing.
type NopTracker struct{}

func (NopTracker) TrackAggregate(kernel.UUID, any) {}

// SeedUser inserts a user with the given role.
func SeedUser(ctx context.Context, db *gorm.DB, role user.Role) (*user.User, error) {
	id := kernel.NewUUID()
	u, err := user.NewUser(id, "user "+id.String()[:8], id.String()[:8]+"@example.com", role)
	if err != nil {
		return nil, err
	}
	if err = userrepo.NewGormUserRepository(db, NopTracker{}).Add(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ShopOptions customizes SeedTailor.
type ShopOptions struct {
	Specialties []string
	Rating      float64
	ReviewCount int
	Unavailable bool
	Location    *kernel.GeoPoint
}

// SeedTailor inserts a tailor user and the shop it runs.
func SeedTailor(ctx context.Context, db *gorm.DB, opts ShopOptions) (*tailor.Tailor, error) {
	owner, err := SeedUser(ctx, db, user.Tailor)
	if err != nil {
		return nil, err
	}

	profile := tailor.DefaultProfile("Shop of " + owner.Name())
	profile.Specialties = opts.Specialties

	reviews := opts.ReviewCount
	if opts.Rating > 0 && reviews == 0 {
		reviews = 1
	}

	shop, err := tailor.RestoreTailor(
		kernel.NewUUID(),
		owner.ID(),
		profile,
		opts.Location,
		opts.Rating,
		reviews,
		!opts.Unavailable,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if err = tailorrepo.NewGormTailorRepository(db, NopTracker{}).Add(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// NewOrder builds a pending order for 200 + 0 + 15.
func NewOrder(customerID kernel.UUID, shop *tailor.Tailor, createdAt time.Time) (*order.Order, error) {
	tailoring, err := kernel.MoneyFromString("200.00")
	if err != nil {
		return nil, err
	}
	deliveryFee, err := kernel.MoneyFromString("15.00")
	if err != nil {
		return nil, err
	}
	pricing, err := order.NewPricing(tailoring, kernel.ZeroMoney(), deliveryFee)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(
		kernel.NewUUID(),
		customerID,
		order.Party{TailorID: shop.ID(), UserID: shop.UserID()},
		order.Details{
			OrderType:      "suit",
			Description:    "Two-piece navy suit",
			MaterialSource: order.MaterialFromCustomer,
		},
		pricing,
		createdAt,
	)
}

// SeedOrder inserts an order from a fresh customer to a fresh shop.
func SeedOrder(ctx context.Context, db *gorm.DB, createdAt time.Time) (*order.Order, error) {
	customer, err := SeedUser(ctx, db, user.Customer)
	if err != nil {
		return nil, err
	}

	shop, err := SeedTailor(ctx, db, ShopOptions{})
	if err != nil {
		return nil, err
	}

	o, err := NewOrder(customer.ID(), shop, createdAt)
	if err != nil {
		return nil, err
	}

	if err = orderrepo.NewGormOrderRepository(db, NopTracker{}).Add(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
