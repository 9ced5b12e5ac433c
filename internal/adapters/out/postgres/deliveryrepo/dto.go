// Package deliveryrepo persists deliveries with optimistic versioning.
package deliveryrepo

import (
	"time"

	"tailorshop/internal/adapters/out/postgres/pgutil"
	"tailorshop/internal/core/domain/model/delivery"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Constraint names from the migrations, matched against unique violations.
const (
	trackingCodeConstraint = "uq_deliveries_tracking_code"
	orderConstraint        = "uq_deliveries_order_id"
)

// DeliveryDTO is one row of the deliveries table.
type DeliveryDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_deliveries_order_id"`
	Status          int        `gorm:"type:smallint;not null"`
	TrackingCode    string     `gorm:"type:char(8);not null;uniqueIndex:uq_deliveries_tracking_code"`
	RiderID         *uuid.UUID `gorm:"type:uuid;index"`
	PickupAddress   string     `gorm:"type:text;not null"`
	DeliveryAddress string     `gorm:"type:text;not null"`
	Latitude        *float64
	Longitude       *float64
	PickupDate      *time.Time
	DeliveryDate    *time.Time
	Fee             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Notes           string          `gorm:"type:text"`
	Version         int             `gorm:"not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	lat, lng := pgutil.NullableGeoPoint(d.CurrentLocation())
	addresses := d.Addresses()

	return DeliveryDTO{
		ID:              d.ID().Bytes(),
		OrderID:         d.OrderID().Bytes(),
		Status:          int(d.Status()),
		TrackingCode:    d.TrackingCode().String(),
		RiderID:         pgutil.NullableUUID(d.RiderID()),
		PickupAddress:   addresses.Pickup,
		DeliveryAddress: addresses.Delivery,
		Latitude:        lat,
		Longitude:       lng,
		PickupDate:      pgutil.Clone(d.PickupDate()),
		DeliveryDate:    pgutil.Clone(d.DeliveryDate()),
		Fee:             d.Fee().Decimal(),
		Notes:           d.Notes(),
		Version:         d.Version(),
		CreatedAt:       d.CreatedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := pgutil.RestoreUUID(dto.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := pgutil.RestoreUUID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	riderID, err := pgutil.RestoreNullableUUID(dto.RiderID)
	if err != nil {
		return nil, err
	}

	location, err := pgutil.RestoreGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	fee, err := pgutil.RestoreMoney(dto.Fee)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		delivery.Addresses{Pickup: dto.PickupAddress, Delivery: dto.DeliveryAddress},
		fee,
		dto.Notes,
		dto.CreatedAt,
		delivery.Snapshot{
			Status:          delivery.Status(dto.Status),
			TrackingCode:    delivery.TrackingCode(dto.TrackingCode),
			RiderID:         riderID,
			CurrentLocation: location,
			PickupDate:      dto.PickupDate,
			DeliveryDate:    dto.DeliveryDate,
			Version:         dto.Version,
		},
	)
}
