package materialrepo

import (
	"context"

	"tailorshop/internal/adapters/out/postgres/pgutil"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/material"

	"gorm.io/gorm"
)

// GormMaterialRepository implements ports.MaterialRepository using GORM.
type GormMaterialRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormMaterialRepository(db *gorm.DB, tracker aggregateTracker) *GormMaterialRepository {
	return &GormMaterialRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormMaterialRepository) Add(ctx context.Context, aggregate *material.Material) error {
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

func (r *GormMaterialRepository) Update(ctx context.Context, aggregate *material.Material) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MaterialDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "tailor_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pgutil.NotFound(gorm.ErrRecordNotFound, "material", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get locks the row for the rest of the transaction so that two orders cannot
// reserve the same yardage.
func (r *GormMaterialRepository) Get(ctx context.Context, id kernel.UUID) (*material.Material, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MaterialDTO
	if err := pgutil.ForUpdate(r.db.WithContext(ctx)).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, "material", id.String())
	}

	return toDomain(dto)
}

func (r *GormMaterialRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MaterialDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pgutil.NotFound(gorm.ErrRecordNotFound, "material", id.String())
	}
	return nil
}

func (r *GormMaterialRepository) ListByTailor(ctx context.Context, tailorID kernel.UUID) ([]*material.Material, error) {
	if err := tailorID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MaterialDTO
	err := r.db.WithContext(ctx).
		Where("tailor_id = ?", tailorID.Bytes()).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormMaterialRepository) ListAvailable(ctx context.Context) ([]*material.Material, error) {
	var dtos []MaterialDTO
	err := r.db.WithContext(ctx).
		Where("is_available AND quantity_available > 0").
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func toDomainList(dtos []MaterialDTO) ([]*material.Material, error) {
	materials := make([]*material.Material, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	return materials, nil
}
