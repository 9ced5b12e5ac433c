// Package tailorrepo persists tailor shop profiles. Specialties and portfolio
// images are text[] columns; business hours are free-form JSONB.
package tailorrepo

import (
	"time"

	"tailorshop/internal/adapters/out/postgres/pgutil"
	"tailorshop/internal/core/domain/model/tailor"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// TailorDTO is one row of the tailors table.
type TailorDTO struct {
	ID                         uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID                     uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex"`
	ShopName                   string            `gorm:"type:varchar(255);not null"`
	Description                string            `gorm:"type:text"`
	Specialties                pq.StringArray    `gorm:"type:text[]"`
	ExperienceYears            int               `gorm:"type:int"`
	BusinessHours              datatypes.JSONMap `gorm:"type:jsonb"`
	AcceptsInPerson            bool
	AcceptsDigitalMeasurements bool
	ProvidesMaterials          bool
	Rating                     float64 `gorm:"index"`
	ReviewCount                int
	IsAvailable                bool
	Latitude                   *float64
	Longitude                  *float64
	Portfolio                  pq.StringArray `gorm:"type:text[]"`
	CreatedAt                  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt                  time.Time      `gorm:"autoUpdateTime"`
}

func (TailorDTO) TableName() string {
	return "tailors"
}

func fromDomain(t *tailor.Tailor) TailorDTO {
	profile := t.Profile()
	lat, lng := pgutil.NullableGeoPoint(t.Location())

	return TailorDTO{
		ID:                         t.ID().Bytes(),
		UserID:                     t.UserID().Bytes(),
		ShopName:                   profile.ShopName,
		Description:                profile.Description,
		Specialties:                textArray(profile.Specialties),
		ExperienceYears:            profile.ExperienceYears,
		BusinessHours:              datatypes.JSONMap(profile.BusinessHours),
		AcceptsInPerson:            profile.AcceptsInPerson,
		AcceptsDigitalMeasurements: profile.AcceptsDigitalMeasurements,
		ProvidesMaterials:          profile.ProvidesMaterials,
		Rating:                     t.Rating(),
		ReviewCount:                t.ReviewCount(),
		IsAvailable:                t.IsAvailable(),
		Latitude:                   lat,
		Longitude:                  lng,
		Portfolio:                  textArray(t.Portfolio()),
	}
}

func toDomain(dto TailorDTO) (*tailor.Tailor, error) {
	id, err := pgutil.RestoreUUID(dto.ID)
	if err != nil {
		return nil, err
	}

	userID, err := pgutil.RestoreUUID(dto.UserID)
	if err != nil {
		return nil, err
	}

	location, err := pgutil.RestoreGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	profile := tailor.Profile{
		ShopName:                   dto.ShopName,
		Description:                dto.Description,
		Specialties:                []string(dto.Specialties),
		ExperienceYears:            dto.ExperienceYears,
		BusinessHours:              map[string]any(dto.BusinessHours),
		AcceptsInPerson:            dto.AcceptsInPerson,
		AcceptsDigitalMeasurements: dto.AcceptsDigitalMeasurements,
		ProvidesMaterials:          dto.ProvidesMaterials,
	}

	return tailor.RestoreTailor(
		id,
		userID,
		profile,
		location,
		dto.Rating,
		dto.ReviewCount,
		dto.IsAvailable,
		[]string(dto.Portfolio),
	)
}

// textArray keeps NOT NULL text[] columns from receiving NULL.
func textArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}
