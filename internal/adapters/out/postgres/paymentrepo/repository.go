package paymentrepo

import (
	"context"
	"errors"
	"time"

	"tailorshop/internal/adapters/out/postgres/pgutil"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/payment"
	"tailorshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements ports.PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update is guarded by the version column the same way deliveries are.
func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&PaymentDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id", "customer_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&PaymentDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("payment", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidErrorWithCause("payment", errors.New("modified concurrently"))
	}

	aggregate.IncrementVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get and GetByGatewayReference lock the row for the rest of the transaction.
func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := pgutil.ForUpdate(r.db.WithContext(ctx)).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, "payment", id.String())
	}

	return toDomain(dto)
}

func (r *GormPaymentRepository) GetByGatewayReference(ctx context.Context, reference string) (*payment.Payment, error) {
	if reference == "" {
		return nil, errs.NewValueIsRequiredError("gatewayReference")
	}

	var dto PaymentDTO
	err := pgutil.ForUpdate(r.db.WithContext(ctx)).First(&dto, "gateway_reference = ?", reference).Error
	if err != nil {
		return nil, pgutil.NotFound(err, "payment", reference)
	}

	return toDomain(dto)
}

// GetByOrder returns the newest payment; earlier ones may have failed or expired.
func (r *GormPaymentRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at DESC").
		Take(&dto).Error
	if err != nil {
		return nil, pgutil.NotFound(err, "payment", orderID.String())
	}

	return toDomain(dto)
}

func (r *GormPaymentRepository) ListHeldSince(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error) {
	return r.list(ctx, "status = ? AND held_at <= ?", int(payment.HeldInEscrow), cutoff)
}

func (r *GormPaymentRepository) ListUnconfirmedSince(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error) {
	return r.list(ctx, "status IN ? AND created_at <= ?",
		[]int{int(payment.Pending), int(payment.Processing)}, cutoff)
}

func (r *GormPaymentRepository) list(ctx context.Context, where string, args ...any) ([]*payment.Payment, error) {
	var dtos []PaymentDTO
	if err := r.db.WithContext(ctx).Where(where, args...).Order("created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	payments := make([]*payment.Payment, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, nil
}
