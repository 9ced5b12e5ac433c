// Package ports defines the contracts between the application core and its
// adapters: repositories bound to a unit of work and the payment gateway.
package ports

import (
	"context"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListByCustomer returns the customer's orders, newest first.
	ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// ListByTailorUser returns orders addressed to the shop run by userID, newest first.
	ListByTailorUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// ListAll returns every order, newest first.
	ListAll(ctx context.Context) ([]*order.Order, error)
}
