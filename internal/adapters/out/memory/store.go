// Package memory is a storage backend that keeps every aggregate in process.
// It serves local runs and demos where no PostgreSQL is available and mirrors
// the PostgreSQL repositories: not-found and version-conflict errors are the
// same, and so are list orderings and uniqueness rules.
//
// A unit of work that has begun holds the whole store until it commits or
// rolls back, so writers are serialized. Rollback restores the snapshot taken
// at Begin. A unit of work that never begins runs each call under a short lock
// of its own.
package memory

import (
	"context"
	"errors"
	"maps"

	"tailorshop/internal/core/domain/model/delivery"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/material"
	"tailorshop/internal/core/domain/model/measurement"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/domain/model/payment"
	"tailorshop/internal/core/domain/model/tailor"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback when Begin was not called.
var ErrNoTransaction = errors.New("memory: no transaction in progress")

type tables struct {
	users        map[kernel.UUID]*user.User
	tailors      map[kernel.UUID]*tailor.Tailor
	materials    map[kernel.UUID]*material.Material
	measurements map[kernel.UUID]*measurement.MeasurementSet
	orders       map[kernel.UUID]*order.Order
	deliveries   map[kernel.UUID]*delivery.Delivery
	payments     map[kernel.UUID]*payment.Payment
}

func newTables() *tables {
	return &tables{
		users:        make(map[kernel.UUID]*user.User),
		tailors:      make(map[kernel.UUID]*tailor.Tailor),
		materials:    make(map[kernel.UUID]*material.Material),
		measurements: make(map[kernel.UUID]*measurement.MeasurementSet),
		orders:       make(map[kernel.UUID]*order.Order),
		deliveries:   make(map[kernel.UUID]*delivery.Delivery),
		payments:     make(map[kernel.UUID]*payment.Payment),
	}
}

// snapshot copies the maps. Stored aggregates are never mutated in place, so
// sharing them between the live tables and the snapshot is safe.
func (t *tables) snapshot() *tables {
	return &tables{
		users:        maps.Clone(t.users),
		tailors:      maps.Clone(t.tailors),
		materials:    maps.Clone(t.materials),
		measurements: maps.Clone(t.measurements),
		orders:       maps.Clone(t.orders),
		deliveries:   maps.Clone(t.deliveries),
		payments:     maps.Clone(t.payments),
	}
}

// Store is the shared state behind every unit of work of one process.
type Store struct {
	sem  chan struct{}
	data *tables
}

func NewStore() *Store {
	return &Store{
		sem:  make(chan struct{}, 1),
		data: newTables(),
	}
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.sem
}

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is one business transaction against the Store.
type UnitOfWork struct {
	store *Store

	// rollback is the state to restore; non-nil while a transaction is open.
	rollback *tables
}

// Begin waits for the store and takes a snapshot. Calling it twice keeps the
// first transaction.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.rollback != nil {
		return nil
	}
	if err := uow.store.acquire(ctx); err != nil {
		return err
	}
	uow.rollback = uow.store.data.snapshot()
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.rollback == nil {
		return ErrNoTransaction
	}
	uow.rollback = nil
	uow.store.release()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.rollback == nil {
		return ErrNoTransaction
	}
	uow.store.data = uow.rollback
	uow.rollback = nil
	uow.store.release()
	return nil
}

func (uow *UnitOfWork) UserRepository() ports.UserRepository {
	return &UserRepository{uow: uow}
}

func (uow *UnitOfWork) TailorRepository() ports.TailorRepository {
	return &TailorRepository{uow: uow}
}

func (uow *UnitOfWork) MaterialRepository() ports.MaterialRepository {
	return &MaterialRepository{uow: uow}
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return &DeliveryRepository{uow: uow}
}

func (uow *UnitOfWork) PaymentRepository() ports.PaymentRepository {
	return &PaymentRepository{uow: uow}
}

func (uow *UnitOfWork) MeasurementRepository() ports.MeasurementRepository {
	return &MeasurementRepository{uow: uow}
}

// run calls fn with the live tables. Inside a transaction the store is already
// held; outside one it is held for the duration of fn.
func (uow *UnitOfWork) run(ctx context.Context, fn func(t *tables) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uow.rollback != nil {
		return fn(uow.store.data)
	}

	if err := uow.store.acquire(ctx); err != nil {
		return err
	}
	defer uow.store.release()
	return fn(uow.store.data)
}
