package tailorrepo

import (
	"context"
	"strings"

	"tailorshop/internal/adapters/out/postgres/pgutil"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/tailor"
	"tailorshop/internal/core/ports"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormTailorRepository implements ports.TailorRepository using GORM.
type GormTailorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTailorRepository(db *gorm.DB, tracker aggregateTracker) *GormTailorRepository {
	return &GormTailorRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormTailorRepository) Add(ctx context.Context, aggregate *tailor.Tailor) error {
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

func (r *GormTailorRepository) Update(ctx context.Context, aggregate *tailor.Tailor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TailorDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pgutil.NotFound(gorm.ErrRecordNotFound, "tailor", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormTailorRepository) Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TailorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, "tailor", id.String())
	}

	return toDomain(dto)
}

func (r *GormTailorRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*tailor.Tailor, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto TailorDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, "tailor", userID.String())
	}

	return toDomain(dto)
}

// Search pushes the specialty, rating and availability filters into SQL.
// Distance is left to the caller because shops without a location must still
// match non-geographic searches.
func (r *GormTailorRepository) Search(ctx context.Context, filter ports.TailorFilter) ([]*tailor.Tailor, error) {
	query := r.db.WithContext(ctx).Model(&TailorDTO{})

	if filter.OnlyAvailable {
		query = query.Where("is_available")
	}
	if filter.MinRating > 0 {
		query = query.Where("rating >= ?", filter.MinRating)
	}
	if wanted := lowerAll(filter.Specialties); len(wanted) > 0 {
		query = query.Where(
			"EXISTS (SELECT 1 FROM unnest(specialties) AS s WHERE lower(s) = ANY(?))",
			pq.StringArray(wanted),
		)
	}

	var dtos []TailorDTO
	if err := query.Order("rating DESC").Order("review_count DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	tailors := make([]*tailor.Tailor, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tailors = append(tailors, t)
	}

	return tailors, nil
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}
