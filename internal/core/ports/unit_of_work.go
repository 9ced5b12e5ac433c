package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per use case invocation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one business transaction. Repositories obtained from it after
// Begin share the transaction; before Begin they run without one.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	UserRepository() UserRepository
	TailorRepository() TailorRepository
	MaterialRepository() MaterialRepository
	OrderRepository() OrderRepository
	DeliveryRepository() DeliveryRepository
	PaymentRepository() PaymentRepository
	MeasurementRepository() MeasurementRepository
}
