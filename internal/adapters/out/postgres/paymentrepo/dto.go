// Package paymentrepo persists payments and their escrow state.
package paymentrepo

import (
	"time"

	"tailorshop/internal/adapters/out/postgres/pgutil"
	"tailorshop/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO is one row of the payments table. GatewayReference is NULL until
// the gateway issues one, so the unique constraint ignores pending rows.
type PaymentDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID           *uuid.UUID      `gorm:"type:uuid;index"`
	CustomerID        uuid.UUID       `gorm:"type:uuid;not null"`
	Amount            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency          string          `gorm:"type:char(3);not null"`
	Method            string          `gorm:"type:varchar(32);not null"`
	GatewayReference  *string         `gorm:"type:varchar(255);uniqueIndex:uq_payments_gateway_reference"`
	Status            int             `gorm:"type:smallint;not null"`
	HeldAt            *time.Time
	EscrowReleaseDate *time.Time
	TransactionFee    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ReceiptURL        string          `gorm:"type:text"`
	Notes             string          `gorm:"type:text"`
	Version           int             `gorm:"not null"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	var reference *string
	if ref := p.GatewayReference(); ref != "" {
		reference = &ref
	}

	return PaymentDTO{
		ID:                p.ID().Bytes(),
		OrderID:           pgutil.NullableUUID(p.OrderID()),
		CustomerID:        p.CustomerID().Bytes(),
		Amount:            p.Amount().Decimal(),
		Currency:          p.Currency().String(),
		Method:            p.Method(),
		GatewayReference:  reference,
		Status:            int(p.Status()),
		HeldAt:            pgutil.Clone(p.HeldAt()),
		EscrowReleaseDate: pgutil.Clone(p.EscrowReleaseDate()),
		TransactionFee:    p.TransactionFee().Decimal(),
		ReceiptURL:        p.ReceiptURL(),
		Notes:             p.Notes(),
		Version:           p.Version(),
		CreatedAt:         p.CreatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := pgutil.RestoreUUID(dto.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := pgutil.RestoreNullableUUID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	customerID, err := pgutil.RestoreUUID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	amount, err := pgutil.RestoreMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	fee, err := pgutil.RestoreMoney(dto.TransactionFee)
	if err != nil {
		return nil, err
	}

	var reference string
	if dto.GatewayReference != nil {
		reference = *dto.GatewayReference
	}

	return payment.RestorePayment(
		id,
		orderID,
		customerID,
		amount,
		payment.Currency(dto.Currency),
		dto.CreatedAt,
		payment.Snapshot{
			Method:            dto.Method,
			GatewayReference:  reference,
			Status:            payment.Status(dto.Status),
			HeldAt:            dto.HeldAt,
			EscrowReleaseDate: dto.EscrowReleaseDate,
			TransactionFee:    fee,
			ReceiptURL:        dto.ReceiptURL,
			Notes:             dto.Notes,
			Version:           dto.Version,
		},
	)
}
