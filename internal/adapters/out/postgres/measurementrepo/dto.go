// Package measurementrepo persists measurement sets. Readings are stored in
// inches as one JSONB object keyed by field name; absent readings are omitted.
package measurementrepo

import (
	"time"

	"tailorshop/internal/adapters/out/postgres/pgutil"
	"tailorshop/internal/core/domain/model/measurement"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MeasurementSetDTO is one row of the measurement_sets table.
type MeasurementSetDTO struct {
	ID         uuid.UUID                              `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID                              `gorm:"type:uuid;not null;index"`
	Name       string                                 `gorm:"type:varchar(255);not null"`
	Readings   datatypes.JSONType[map[string]float64] `gorm:"type:jsonb;not null"`
	WeightLbs  *float64
	Additional datatypes.JSONMap `gorm:"type:jsonb"`
	Notes      string            `gorm:"type:text"`
	IsDefault  bool
	Source     string    `gorm:"type:varchar(16);not null"`
	MeasuredAt time.Time `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (MeasurementSetDTO) TableName() string {
	return "measurement_sets"
}

func fromDomain(set *measurement.MeasurementSet) MeasurementSetDTO {
	readings := make(map[string]float64)
	for field, value := range set.Readings() {
		if v, ok := value.Get(); ok {
			readings[string(field)] = v
		}
	}

	return MeasurementSetDTO{
		ID:         set.ID().Bytes(),
		OwnerID:    set.OwnerID().Bytes(),
		Name:       set.Name(),
		Readings:   datatypes.NewJSONType(readings),
		WeightLbs:  set.WeightLbs().Ptr(),
		Additional: datatypes.JSONMap(set.Additional()),
		Notes:      set.Notes(),
		IsDefault:  set.IsDefault(),
		Source:     string(set.Source()),
		MeasuredAt: set.MeasuredAt(),
		CreatedAt:  set.CreatedAt(),
	}
}

func toDomain(dto MeasurementSetDTO) (*measurement.MeasurementSet, error) {
	id, err := pgutil.RestoreUUID(dto.ID)
	if err != nil {
		return nil, err
	}

	ownerID, err := pgutil.RestoreUUID(dto.OwnerID)
	if err != nil {
		return nil, err
	}

	source, err := measurement.ParseSource(dto.Source)
	if err != nil {
		return nil, err
	}

	stored := dto.Readings.Data()
	readings := make(map[measurement.Field]measurement.Value, len(stored))
	for field, v := range stored {
		readings[measurement.Field(field)] = measurement.Of(v)
	}

	details := measurement.Details{
		Name:       dto.Name,
		Unit:       measurement.Inches,
		Readings:   readings,
		WeightLbs:  measurement.FromPtr(dto.WeightLbs),
		Additional: map[string]any(dto.Additional),
		Notes:      dto.Notes,
		Source:     source,
		MeasuredAt: dto.MeasuredAt,
	}

	return measurement.RestoreMeasurementSet(id, ownerID, details, dto.IsDefault, dto.CreatedAt)
}
