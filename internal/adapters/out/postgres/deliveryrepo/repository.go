package deliveryrepo

import (
	"context"
	"errors"

	"tailorshop/internal/adapters/out/postgres/pgutil"
	"tailorshop/internal/core/domain/model/delivery"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// maxTrackingCodeAttempts bounds Add when freshly generated tracking codes
// keep colliding with stored ones.
const maxTrackingCodeAttempts = 5

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the delivery inside a nested transaction, which GORM runs as a
// savepoint when the unit of work already holds one. A tracking code collision
// rolls back to the savepoint, regenerates the code and tries again.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for attempt := 1; ; attempt++ {
		dto := fromDomain(aggregate)
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.Create(&dto).Error
		})

		switch {
		case err == nil:
			r.tracker.TrackAggregate(aggregate.ID(), aggregate)
			return nil
		case pgutil.IsUniqueViolation(err, orderConstraint):
			return errs.NewValueIsInvalidErrorWithCause("orderId", errors.New("order already has a delivery"))
		case pgutil.IsUniqueViolation(err, trackingCodeConstraint) && attempt < maxTrackingCodeAttempts:
			aggregate.RegenerateTrackingCode()
		default:
			return err
		}
	}
}

// Update writes the delivery only when the stored version still matches the
// one it was loaded with, then bumps the version on the aggregate.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id", "order_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.conflictOrMissing(ctx, aggregate.ID())
	}

	aggregate.IncrementVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeliveryRepository) conflictOrMissing(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("delivery", id.String())
	}
	return errs.NewVersionIsInvalidErrorWithCause("delivery", errors.New("modified concurrently"))
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, errs.NewObjectNotFoundError("delivery", id.String()), "id = ?", id.Bytes())
}

func (r *GormDeliveryRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, errs.NewObjectNotFoundError("delivery", orderID.String()), "order_id = ?", orderID.Bytes())
}

// GetByTrackingCode reports a miss without echoing the code back.
func (r *GormDeliveryRepository) GetByTrackingCode(
	ctx context.Context,
	code delivery.TrackingCode,
) (*delivery.Delivery, error) {
	return r.first(ctx, errs.NewObjectNotFoundError("trackingCode", "delivery"), "tracking_code = ?", code.String())
}

func (r *GormDeliveryRepository) List(ctx context.Context) ([]*delivery.Delivery, error) {
	return r.list(ctx, "TRUE")
}

func (r *GormDeliveryRepository) ListByRider(ctx context.Context, riderID kernel.UUID) ([]*delivery.Delivery, error) {
	if err := riderID.Validate(); err != nil {
		return nil, err
	}
	return r.list(ctx, "rider_id = ?", riderID.Bytes())
}

func (r *GormDeliveryRepository) first(
	ctx context.Context,
	notFound error,
	where string,
	args ...any,
) (*delivery.Delivery, error) {
	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).Where(where, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormDeliveryRepository) list(ctx context.Context, where string, args ...any) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).Where(where, args...).Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}
