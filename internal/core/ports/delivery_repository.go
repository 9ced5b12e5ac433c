package ports

import (
	"context"

	"tailorshop/internal/core/domain/model/delivery"
	"tailorshop/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for deliveries.
type DeliveryRepository interface {
	// Add persists a new delivery. When the tracking code is already taken the
	// repository regenerates it on the aggregate and tries again a bounded
	// number of times.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update writes the delivery only if the stored version equals
	// aggregate.Version(), then bumps the version. A mismatch yields
	// VersionIsInvalidError.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)
	GetByTrackingCode(ctx context.Context, code delivery.TrackingCode) (*delivery.Delivery, error)

	// List returns all deliveries, newest first.
	List(ctx context.Context) ([]*delivery.Delivery, error)

	// ListByRider returns the rider's deliveries, newest first.
	ListByRider(ctx context.Context, riderID kernel.UUID) ([]*delivery.Delivery, error)
}
