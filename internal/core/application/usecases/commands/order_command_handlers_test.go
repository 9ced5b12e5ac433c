package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/material"
	"tailorshop/internal/core/domain/model/measurement"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/pkg/errs"
)

func orderMocks() (
	*MockOrderUoWFactory,
	*MockUoW,
	*MockOrderRepository,
	*MockTailorRepository,
	*MockMaterialRepository,
	*MockMeasurementRepository,
) {
	factory := &MockOrderUoWFactory{}
	uow := &MockUoW{}
	orders := &MockOrderRepository{}
	tailors := &MockTailorRepository{}
	materials := &MockMaterialRepository{}
	measurements := &MockMeasurementRepository{}

	factory.On("Create").Return(uow).Once()
	uow.On("OrderRepository").Return(orders).Maybe()
	uow.On("TailorRepository").Return(tailors).Maybe()
	uow.On("MaterialRepository").Return(materials).Maybe()
	uow.On("MeasurementRepository").Return(measurements).Maybe()

	return factory, uow, orders, tailors, materials, measurements
}

func TestNewCreateOrderCommand(t *testing.T) {
	customer := principal(t, user.Customer)
	valid := commands.OrderRequest{
		TailorID:       kernel.NewUUID(),
		OrderType:      "suit",
		Description:    "Two-piece navy suit",
		TailoringPrice: money(t, "200.00"),
		DeliveryPrice:  kernel.ZeroMoney(),
	}

	tests := []struct {
		name    string
		actor   user.Principal
		mutate  func(r *commands.OrderRequest)
		wantErr error
	}{
		{name: "valid", actor: customer, mutate: func(*commands.OrderRequest) {}},
		{name: "tailor cannot order", actor: principal(t, user.Tailor), mutate: func(*commands.OrderRequest) {},
			wantErr: errs.ErrAccessDenied},
		{name: "missing order type", actor: customer, mutate: func(r *commands.OrderRequest) { r.OrderType = " " },
			wantErr: errs.ErrValueIsRequired},
		{name: "missing description", actor: customer, mutate: func(r *commands.OrderRequest) { r.Description = "" },
			wantErr: errs.ErrValueIsRequired},
		{name: "material without yards", actor: customer,
			mutate:  func(r *commands.OrderRequest) { r.MaterialID = ptr(kernel.NewUUID()) },
			wantErr: errs.ErrValueIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			cmd, err := commands.NewCreateOrderCommand(tt.actor, req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
				return
			}
			require.NoError(t, err)
			require.NoError(t, cmd.Validate())
		})
	}
}

func TestCreateOrderCommandHandler_Handle_PricesMaterial(t *testing.T) {
	ctx := t.Context()
	customer := principal(t, user.Customer)
	shop := newShop(t, kernel.NewUUID())
	fabric := newMaterial(t, shop.ID(), "25.50", 10)
	set, err := measurement.NewMeasurementSet(kernel.NewUUID(), customer.UserID, measurement.Details{
		Name:     "Everyday",
		Unit:     measurement.Inches,
		Readings: map[measurement.Field]measurement.Value{measurement.Waist: measurement.Of(32)},
	}, fixedNow)
	require.NoError(t, err)

	factory, uow, orders, tailors, materials, measurements := orderMocks()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		tailors.On("Get", ctx, shop.ID()).Return(shop, nil).Once(),
		measurements.On("Get", ctx, set.ID()).Return(set, nil).Once(),
		materials.On("Get", ctx, fabric.ID()).Return(fabric, nil).Once(),
		materials.On("Update", ctx, fabric).Return(nil).Once(),
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewCreateOrderCommand(customer, commands.OrderRequest{
		TailorID:       shop.ID(),
		MeasurementID:  ptr(set.ID()),
		MaterialID:     ptr(fabric.ID()),
		MaterialYards:  decimal.RequireFromString("3.5"),
		OrderType:      "suit",
		Description:    "Two-piece navy suit",
		TailoringPrice: money(t, "200.00"),
		DeliveryPrice:  money(t, "15.00"),
	})
	require.NoError(t, err)

	o, err := commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "89.25", o.Pricing().Material().String())
	assert.Equal(t, "304.25", o.Total().String())
	assert.Equal(t, order.Pending, o.Status())
	assert.Equal(t, order.Unpaid, o.PaymentStatus())
	assert.Equal(t, order.MaterialFromTailor, o.Details().MaterialSource)
	assert.Equal(t, shop.UserID(), o.Tailor().UserID)
	assert.True(t, fabric.QuantityAvailable().Equal(decimal.RequireFromString("6.5")))
	materials.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CustomerFabric(t *testing.T) {
	ctx := t.Context()
	customer := principal(t, user.Customer)
	shop := newShop(t, kernel.NewUUID())

	factory, uow, orders, tailors, materials, _ := orderMocks()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		tailors.On("Get", ctx, shop.ID()).Return(shop, nil).Once(),
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewCreateOrderCommand(customer, commands.OrderRequest{
		TailorID:       shop.ID(),
		OrderType:      "alteration",
		Description:    "Hem trousers",
		TailoringPrice: money(t, "30.00"),
		DeliveryPrice:  kernel.ZeroMoney(),
	})
	require.NoError(t, err)

	o, err := commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.MaterialFromCustomer, o.Details().MaterialSource)
	assert.Equal(t, "30.00", o.Total().String())
	materials.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_Rejections(t *testing.T) {
	customer := principal(t, user.Customer)

	t.Run("material from another shop", func(t *testing.T) {
		ctx := t.Context()
		shop := newShop(t, kernel.NewUUID())
		foreign := newMaterial(t, kernel.NewUUID(), "10.00", 5)

		factory, uow, orders, tailors, materials, _ := orderMocks()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			tailors.On("Get", ctx, shop.ID()).Return(shop, nil).Once(),
			materials.On("Get", ctx, foreign.ID()).Return(foreign, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewCreateOrderCommand(customer, commands.OrderRequest{
			TailorID:       shop.ID(),
			MaterialID:     ptr(foreign.ID()),
			MaterialYards:  decimal.NewFromInt(2),
			OrderType:      "shirt",
			Description:    "Oxford shirt",
			TailoringPrice: money(t, "60.00"),
			DeliveryPrice:  kernel.ZeroMoney(),
		})
		require.NoError(t, err)

		_, err = commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("not enough stock", func(t *testing.T) {
		ctx := t.Context()
		shop := newShop(t, kernel.NewUUID())
		fabric := newMaterial(t, shop.ID(), "10.00", 1)

		factory, uow, _, tailors, materials, _ := orderMocks()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			tailors.On("Get", ctx, shop.ID()).Return(shop, nil).Once(),
			materials.On("Get", ctx, fabric.ID()).Return(fabric, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewCreateOrderCommand(customer, commands.OrderRequest{
			TailorID:       shop.ID(),
			MaterialID:     ptr(fabric.ID()),
			MaterialYards:  decimal.NewFromInt(2),
			OrderType:      "shirt",
			Description:    "Oxford shirt",
			TailoringPrice: money(t, "60.00"),
			DeliveryPrice:  kernel.ZeroMoney(),
		})
		require.NoError(t, err)

		_, err = commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)
		require.ErrorIs(t, err, material.ErrInsufficientStock)
		materials.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("someone else's measurements", func(t *testing.T) {
		ctx := t.Context()
		shop := newShop(t, kernel.NewUUID())
		set, err := measurement.NewMeasurementSet(kernel.NewUUID(), kernel.NewUUID(), measurement.Details{
			Name:     "Not mine",
			Unit:     measurement.Inches,
			Readings: map[measurement.Field]measurement.Value{measurement.Neck: measurement.Of(15)},
		}, fixedNow)
		require.NoError(t, err)

		factory, uow, _, tailors, _, measurements := orderMocks()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			tailors.On("Get", ctx, shop.ID()).Return(shop, nil).Once(),
			measurements.On("Get", ctx, set.ID()).Return(set, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewCreateOrderCommand(customer, commands.OrderRequest{
			TailorID:       shop.ID(),
			MeasurementID:  ptr(set.ID()),
			OrderType:      "shirt",
			Description:    "Oxford shirt",
			TailoringPrice: money(t, "60.00"),
			DeliveryPrice:  kernel.ZeroMoney(),
		})
		require.NoError(t, err)

		_, err = commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("shop not accepting orders", func(t *testing.T) {
		ctx := t.Context()
		shop := newShop(t, kernel.NewUUID())
		shop.SetAvailability(false)

		factory, uow, _, tailors, _, _ := orderMocks()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			tailors.On("Get", ctx, shop.ID()).Return(shop, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewCreateOrderCommand(customer, commands.OrderRequest{
			TailorID:       shop.ID(),
			OrderType:      "shirt",
			Description:    "Oxford shirt",
			TailoringPrice: money(t, "60.00"),
			DeliveryPrice:  kernel.ZeroMoney(),
		})
		require.NoError(t, err)

		_, err = commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUpdateOrderStatusCommandHandler_Handle(t *testing.T) {
	tailorUser := principal(t, user.Tailor)

	tests := []struct {
		name    string
		actor   user.Principal
		from    order.Status
		to      order.Status
		wantErr error
	}{
		{name: "tailor confirms", actor: tailorUser, from: order.Pending, to: order.Confirmed},
		{name: "admin cancels", actor: principal(t, user.Admin), from: order.InProgress, to: order.Cancelled},
		{name: "customer cannot", actor: principal(t, user.Customer), from: order.Pending, to: order.Confirmed,
			wantErr: errs.ErrAccessDenied},
		{name: "skip ahead", actor: tailorUser, from: order.Pending, to: order.ReadyForDelivery,
			wantErr: errs.ErrTransitionIsNotAllowed},
		{name: "delivered is workflow only", actor: tailorUser, from: order.ReadyForDelivery, to: order.Delivered,
			wantErr: errs.ErrTransitionIsNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			o := newOrder(t, kernel.NewUUID(), tailorUser.UserID, order.State{Status: tt.from, PaymentStatus: order.Unpaid})

			factory, uow, orders, _, _, _ := orderMocks()
			uow.On("Begin", ctx).Return(nil).Once()
			orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			if tt.wantErr == nil {
				orders.On("Update", ctx, o).Return(nil).Once()
				uow.On("Commit", ctx).Return(nil).Once()
			}

			cmd, err := commands.NewUpdateOrderStatusCommand(tt.actor, o.ID(), tt.to)
			require.NoError(t, err)

			got, err := commands.NewUpdateOrderStatusCommandHandler(factory).Handle(ctx, cmd)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, o.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, got.Status())
			uow.AssertExpectations(t)
		})
	}
}
