package ports

import (
	"context"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payments.
type PaymentRepository interface {
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update is version checked like DeliveryRepository.Update.
	Update(ctx context.Context, aggregate *payment.Payment) error

	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)
	GetByGatewayReference(ctx context.Context, reference string) (*payment.Payment, error)

	// GetByOrder returns the most recent payment for the order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)

	// ListHeldSince returns payments in escrow whose hold started at or before cutoff.
	ListHeldSince(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error)

	// ListUnconfirmedSince returns pending or processing payments created at or before cutoff.
	ListUnconfirmedSince(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error)
}
