package queries

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/guard"
)

var ErrOrderQueryIsNotConstructed = errors.New("OrderQuery must be created via NewOrderQuery constructor")

// OrderQuery targets one order on behalf of the caller. GetOrder,
// GetDeliveryByOrder and GetPaymentByOrder share it.
type OrderQuery struct { //nolint:recvcheck //using for validation
	actor   user.Principal
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewOrderQuery(actor user.Principal, orderID kernel.UUID) (OrderQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return OrderQuery{}, err
	}
	return OrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q OrderQuery) Validate() error {
	return q.guard.Validate(ErrOrderQueryIsNotConstructed)
}

func (q OrderQuery) Actor() user.Principal {
	return q.actor
}

func (q OrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

var ErrActorQueryIsNotConstructed = errors.New("ActorQuery must be created via NewActorQuery constructor")

// ActorQuery lists what the caller may see. ListOrders, ListDeliveries and
// ListUsers share it.
type ActorQuery struct { //nolint:recvcheck //using for validation
	actor user.Principal

	guard guard.ConstructorGuard
}

func NewActorQuery(actor user.Principal) (ActorQuery, error) {
	if err := actor.Validate(); err != nil {
		return ActorQuery{}, err
	}
	return ActorQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ActorQuery) Validate() error {
	return q.guard.Validate(ErrActorQueryIsNotConstructed)
}

func (q ActorQuery) Actor() user.Principal {
	return q.actor
}
