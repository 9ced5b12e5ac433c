// Package commands contains the use cases that change state. Every handler
// validates its command, opens a unit of work, loads the aggregates it needs,
// checks the actor's rights, applies domain methods and commits.
package commands

import (
	"context"

	"tailorshop/internal/core/ports"
)

// Unit of Work interfaces narrowed to the repositories each group of
// handlers touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	TailorRepoFactory interface {
		TailorRepository() ports.TailorRepository
	}

	MaterialRepoFactory interface {
		MaterialRepository() ports.MaterialRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	MeasurementRepoFactory interface {
		MeasurementRepository() ports.MeasurementRepository
	}

	// CatalogUoW serves user, tailor and material registration.
	CatalogUoW interface {
		TxManager
		UserRepoFactory
		TailorRepoFactory
		MaterialRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// MeasurementUoW serves measurement set maintenance.
	MeasurementUoW interface {
		TxManager
		MeasurementRepoFactory
	}

	MeasurementUoWFactory interface {
		Create() MeasurementUoW
	}

	// OrderUoW serves order placement, which reads the tailor, the material
	// and the customer's measurements.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		TailorRepoFactory
		MaterialRepoFactory
		MeasurementRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeliveryUoW serves the delivery state machine and its order side effects.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   d, err := uow.DeliveryRepository().Get(ctx, id)
	//   o, err := uow.OrderRepository().Get(ctx, d.OrderID())
	//   // ... advance d, mark o delivered
	//
	//   err = uow.Commit(ctx)
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		OrderRepoFactory
		UserRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// PaymentUoW serves the escrow lifecycle and its order side effects.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		OrderRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
