// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Prices are numeric columns, the customer's fabric notes are JSONB, and the
// tailor is stored as both the shop and the user account that runs it.
package orderrepo

import (
	"time"

	"tailorshop/internal/adapters/out/postgres/pgutil"
	"tailorshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID                  uuid.UUID         `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID         `gorm:"type:uuid;not null;index"`
	TailorID            uuid.UUID         `gorm:"type:uuid;not null"`
	TailorUserID        uuid.UUID         `gorm:"type:uuid;not null;index"`
	OrderType           string            `gorm:"type:varchar(64);not null"`
	Description         string            `gorm:"type:text;not null"`
	Instructions        string            `gorm:"type:text"`
	MaterialSource      string            `gorm:"type:varchar(16);not null"`
	MaterialDetails     datatypes.JSONMap `gorm:"type:jsonb"`
	MeasurementID       *uuid.UUID        `gorm:"type:uuid"`
	EstimatedCompletion *time.Time
	Pricing             PricingDTO `gorm:"embedded"`
	Status              int        `gorm:"type:smallint"`
	PaymentStatus       int        `gorm:"type:smallint"`
	PaymentID           *uuid.UUID `gorm:"type:uuid"`
	ActualCompletion    *time.Time
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// PricingDTO is the embedded price breakdown. TotalPrice is stored so reports
// can sum it without recomputing.
type PricingDTO struct {
	TailoringPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	MaterialPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalPrice     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	details := o.Details()
	pricing := o.Pricing()

	return OrderDTO{
		ID:                  o.ID().Bytes(),
		CustomerID:          o.CustomerID().Bytes(),
		TailorID:            o.Tailor().TailorID.Bytes(),
		TailorUserID:        o.Tailor().UserID.Bytes(),
		OrderType:           details.OrderType,
		Description:         details.Description,
		Instructions:        details.Instructions,
		MaterialSource:      string(details.MaterialSource),
		MaterialDetails:     datatypes.JSONMap(details.MaterialDetails),
		MeasurementID:       pgutil.NullableUUID(details.MeasurementID),
		EstimatedCompletion: pgutil.Clone(details.EstimatedCompletion),
		Pricing: PricingDTO{
			TailoringPrice: pricing.Tailoring().Decimal(),
			MaterialPrice:  pricing.Material().Decimal(),
			DeliveryPrice:  pricing.Delivery().Decimal(),
			TotalPrice:     pricing.Total().Decimal(),
		},
		Status:           int(o.Status()),
		PaymentStatus:    int(o.PaymentStatus()),
		PaymentID:        pgutil.NullableUUID(o.PaymentID()),
		ActualCompletion: pgutil.Clone(o.ActualCompletion()),
		CreatedAt:        o.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := pgutil.RestoreUUID(dto.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := pgutil.RestoreUUID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	tailorID, err := pgutil.RestoreUUID(dto.TailorID)
	if err != nil {
		return nil, err
	}

	tailorUserID, err := pgutil.RestoreUUID(dto.TailorUserID)
	if err != nil {
		return nil, err
	}

	measurementID, err := pgutil.RestoreNullableUUID(dto.MeasurementID)
	if err != nil {
		return nil, err
	}

	paymentID, err := pgutil.RestoreNullableUUID(dto.PaymentID)
	if err != nil {
		return nil, err
	}

	source, err := order.ParseMaterialSource(dto.MaterialSource)
	if err != nil {
		return nil, err
	}

	pricing, err := restorePricing(dto.Pricing)
	if err != nil {
		return nil, err
	}

	details := order.Details{
		OrderType:           dto.OrderType,
		Description:         dto.Description,
		Instructions:        dto.Instructions,
		MaterialSource:      source,
		MaterialDetails:     map[string]any(dto.MaterialDetails),
		MeasurementID:       measurementID,
		EstimatedCompletion: dto.EstimatedCompletion,
	}

	state := order.State{
		Status:           order.Status(dto.Status),
		PaymentStatus:    order.PaymentStatus(dto.PaymentStatus),
		PaymentID:        paymentID,
		ActualCompletion: dto.ActualCompletion,
	}

	return order.RestoreOrder(
		id,
		customerID,
		order.Party{TailorID: tailorID, UserID: tailorUserID},
		details,
		pricing,
		state,
		dto.CreatedAt,
	)
}

func restorePricing(dto PricingDTO) (order.Pricing, error) {
	tailoring, err := pgutil.RestoreMoney(dto.TailoringPrice)
	if err != nil {
		return order.Pricing{}, err
	}

	materialPrice, err := pgutil.RestoreMoney(dto.MaterialPrice)
	if err != nil {
		return order.Pricing{}, err
	}

	deliveryPrice, err := pgutil.RestoreMoney(dto.DeliveryPrice)
	if err != nil {
		return order.Pricing{}, err
	}

	return order.NewPricing(tailoring, materialPrice, deliveryPrice)
}
