package measurementrepo

import (
	"context"

	"tailorshop/internal/adapters/out/postgres/pgutil"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/measurement"

	"gorm.io/gorm"
)

// GormMeasurementRepository implements ports.MeasurementRepository using GORM.
type GormMeasurementRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormMeasurementRepository(db *gorm.DB, tracker aggregateTracker) *GormMeasurementRepository {
	return &GormMeasurementRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormMeasurementRepository) Add(ctx context.Context, aggregate *measurement.MeasurementSet) error {
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

func (r *GormMeasurementRepository) Update(ctx context.Context, aggregate *measurement.MeasurementSet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MeasurementSetDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "owner_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pgutil.NotFound(gorm.ErrRecordNotFound, "measurementSet", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormMeasurementRepository) Get(ctx context.Context, id kernel.UUID) (*measurement.MeasurementSet, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MeasurementSetDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, "measurementSet", id.String())
	}

	return toDomain(dto)
}

func (r *GormMeasurementRepository) ListByOwner(
	ctx context.Context,
	ownerID kernel.UUID,
) ([]*measurement.MeasurementSet, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MeasurementSetDTO
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	sets := make([]*measurement.MeasurementSet, 0, len(dtos))
	for _, dto := range dtos {
		set, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}

	return sets, nil
}

// ClearDefaultFor must run before the new default is written; the partial
// unique index on (owner_id) WHERE is_default rejects two defaults at once.
func (r *GormMeasurementRepository) ClearDefaultFor(ctx context.Context, ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&MeasurementSetDTO{}).
		Where("owner_id = ? AND is_default", ownerID.Bytes()).
		Update("is_default", false).Error
}

func (r *GormMeasurementRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&MeasurementSetDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pgutil.NotFound(gorm.ErrRecordNotFound, "measurementSet", id.String())
	}

	return nil
}
