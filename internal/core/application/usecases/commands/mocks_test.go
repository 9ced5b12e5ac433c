package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"tailorshop/internal/core/application/usecases/commands"
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

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*user.User)
	return users, args.Error(1)
}

type MockTailorRepository struct{ mock.Mock }

func (m *MockTailorRepository) Add(ctx context.Context, t *tailor.Tailor) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTailorRepository) Update(ctx context.Context, t *tailor.Tailor) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTailorRepository) Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*tailor.Tailor)
	return t, args.Error(1)
}

func (m *MockTailorRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*tailor.Tailor, error) {
	args := m.Called(ctx, userID)
	t, _ := args.Get(0).(*tailor.Tailor)
	return t, args.Error(1)
}

func (m *MockTailorRepository) Search(ctx context.Context, f ports.TailorFilter) ([]*tailor.Tailor, error) {
	args := m.Called(ctx, f)
	t, _ := args.Get(0).([]*tailor.Tailor)
	return t, args.Error(1)
}

type MockMaterialRepository struct{ mock.Mock }

func (m *MockMaterialRepository) Add(ctx context.Context, mat *material.Material) error {
	return m.Called(ctx, mat).Error(0)
}

func (m *MockMaterialRepository) Update(ctx context.Context, mat *material.Material) error {
	return m.Called(ctx, mat).Error(0)
}

func (m *MockMaterialRepository) Get(ctx context.Context, id kernel.UUID) (*material.Material, error) {
	args := m.Called(ctx, id)
	mat, _ := args.Get(0).(*material.Material)
	return mat, args.Error(1)
}

func (m *MockMaterialRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMaterialRepository) ListByTailor(ctx context.Context, tailorID kernel.UUID) ([]*material.Material, error) {
	args := m.Called(ctx, tailorID)
	mats, _ := args.Get(0).([]*material.Material)
	return mats, args.Error(1)
}

func (m *MockMaterialRepository) ListAvailable(ctx context.Context) ([]*material.Material, error) {
	args := m.Called(ctx)
	mats, _ := args.Get(0).([]*material.Material)
	return mats, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListByCustomer(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListByTailorUser(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) GetByOrder(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) GetByTrackingCode(
	ctx context.Context,
	code delivery.TrackingCode,
) (*delivery.Delivery, error) {
	args := m.Called(ctx, code)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) List(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).([]*delivery.Delivery)
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) ListByRider(ctx context.Context, id kernel.UUID) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).([]*delivery.Delivery)
	return d, args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}

func (m *MockPaymentRepository) GetByGatewayReference(ctx context.Context, ref string) (*payment.Payment, error) {
	args := m.Called(ctx, ref)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}

func (m *MockPaymentRepository) GetByOrder(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}

func (m *MockPaymentRepository) ListHeldSince(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error) {
	args := m.Called(ctx, cutoff)
	p, _ := args.Get(0).([]*payment.Payment)
	return p, args.Error(1)
}

func (m *MockPaymentRepository) ListUnconfirmedSince(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error) {
	args := m.Called(ctx, cutoff)
	p, _ := args.Get(0).([]*payment.Payment)
	return p, args.Error(1)
}

type MockMeasurementRepository struct{ mock.Mock }

func (m *MockMeasurementRepository) Add(ctx context.Context, s *measurement.MeasurementSet) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockMeasurementRepository) Update(ctx context.Context, s *measurement.MeasurementSet) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockMeasurementRepository) Get(ctx context.Context, id kernel.UUID) (*measurement.MeasurementSet, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*measurement.MeasurementSet)
	return s, args.Error(1)
}

func (m *MockMeasurementRepository) ListByOwner(
	ctx context.Context,
	ownerID kernel.UUID,
) ([]*measurement.MeasurementSet, error) {
	args := m.Called(ctx, ownerID)
	s, _ := args.Get(0).([]*measurement.MeasurementSet)
	return s, args.Error(1)
}

func (m *MockMeasurementRepository) ClearDefaultFor(ctx context.Context, ownerID kernel.UUID) error {
	return m.Called(ctx, ownerID).Error(0)
}

func (m *MockMeasurementRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreateIntent(ctx context.Context, req ports.IntentRequest) (ports.Intent, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.Intent), args.Error(1)
}

func (m *MockPaymentGateway) Refund(ctx context.Context, reference string) (ports.RefundReceipt, error) {
	args := m.Called(ctx, reference)
	return args.Get(0).(ports.RefundReceipt), args.Error(1)
}

func (m *MockPaymentGateway) ParseEvent(payload []byte, signature string) (ports.GatewayEvent, error) {
	args := m.Called(payload, signature)
	return args.Get(0).(ports.GatewayEvent), args.Error(1)
}

// MockUoW satisfies every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) TailorRepository() ports.TailorRepository {
	return m.Called().Get(0).(ports.TailorRepository)
}

func (m *MockUoW) MaterialRepository() ports.MaterialRepository {
	return m.Called().Get(0).(ports.MaterialRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	return m.Called().Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) MeasurementRepository() ports.MeasurementRepository {
	return m.Called().Get(0).(ports.MeasurementRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	return m.Called().Get(0).(commands.CatalogUoW)
}

type MockMeasurementUoWFactory struct{ mock.Mock }

func (m *MockMeasurementUoWFactory) Create() commands.MeasurementUoW {
	return m.Called().Get(0).(commands.MeasurementUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return m.Called().Get(0).(commands.DeliveryUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	return m.Called().Get(0).(commands.PaymentUoW)
}
