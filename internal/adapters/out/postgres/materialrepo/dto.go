// Package materialrepo persists fabric stock offered by tailors.
package materialrepo

import (
	"time"

	"tailorshop/internal/adapters/out/postgres/pgutil"
	"tailorshop/internal/core/domain/model/material"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaterialDTO is one row of the materials table. Money and yardage are
// numeric(12,2) so they round-trip without float drift.
type MaterialDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TailorID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name              string          `gorm:"type:varchar(255);not null"`
	Description       string          `gorm:"type:text"`
	Type              string          `gorm:"type:varchar(64)"`
	Color             string          `gorm:"type:varchar(64)"`
	Pattern           string          `gorm:"type:varchar(64)"`
	ImageURL          string          `gorm:"type:text"`
	PricePerYard      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	QuantityAvailable decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsAvailable       bool
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (MaterialDTO) TableName() string {
	return "materials"
}

func fromDomain(m *material.Material) MaterialDTO {
	d := m.Details()
	return MaterialDTO{
		ID:                m.ID().Bytes(),
		TailorID:          m.TailorID().Bytes(),
		Name:              d.Name,
		Description:       d.Description,
		Type:              d.Type,
		Color:             d.Color,
		Pattern:           d.Pattern,
		ImageURL:          d.ImageURL,
		PricePerYard:      m.PricePerYard().Decimal(),
		QuantityAvailable: m.QuantityAvailable(),
		IsAvailable:       m.IsAvailable(),
	}
}

func toDomain(dto MaterialDTO) (*material.Material, error) {
	id, err := pgutil.RestoreUUID(dto.ID)
	if err != nil {
		return nil, err
	}

	tailorID, err := pgutil.RestoreUUID(dto.TailorID)
	if err != nil {
		return nil, err
	}

	price, err := pgutil.RestoreMoney(dto.PricePerYard)
	if err != nil {
		return nil, err
	}

	details := material.Details{
		Name:        dto.Name,
		Description: dto.Description,
		Type:        dto.Type,
		Color:       dto.Color,
		Pattern:     dto.Pattern,
		ImageURL:    dto.ImageURL,
	}

	return material.RestoreMaterial(id, tailorID, details, price, dto.QuantityAvailable, dto.IsAvailable)
}
