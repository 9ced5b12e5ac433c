package cmd

import (
	"log/slog"

	httpin "tailorshop/internal/adapters/in/http"
	"tailorshop/internal/adapters/out/gateway"
	"tailorshop/internal/adapters/out/memory"
	"tailorshop/internal/adapters/out/postgres"
	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/application/usecases/queries"
	"tailorshop/internal/core/domain/model/payment"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	uowFactory ports.UnitOfWorkFactory
	gateway    ports.PaymentGateway
	logger     *slog.Logger
}

// NewCompositionRoot picks the storage backend and payment gateway named in
// configs. gormDB is only used by the postgres backend and may be nil
// otherwise.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	var uowFactory ports.UnitOfWorkFactory
	if configs.StorageBackend == StorageBackendMemory {
		uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore())
	} else {
		uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	}

	var gw ports.PaymentGateway
	if configs.PaymentProvider == PaymentProviderStripe {
		stripe, err := gateway.NewStripeGateway(gateway.StripeConfig{
			SecretKey:     configs.StripeSecretKey,
			WebhookSecret: configs.StripeWebhookSecret,
			APIURL:        configs.StripeAPIURL,
		}, logger)
		if err != nil {
			return nil, err
		}
		gw = stripe
	} else {
		gw = gateway.NewMockGateway(logger)
	}

	return &CompositionRoot{
		configs:    configs,
		uowFactory: uowFactory,
		gateway:    gw,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) measurementUoWFactory() commands.MeasurementUoWFactory {
	return FuncMeasurementUoWFactory(func() commands.MeasurementUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

// CreateHandlers wires every use case served over HTTP.
func (c *CompositionRoot) CreateHandlers() httpin.Handlers {
	return httpin.Handlers{
		RegisterUser:             commands.NewRegisterUserCommandHandler(c.catalogUoWFactory()),
		UpdateUser:               commands.NewUpdateUserCommandHandler(c.catalogUoWFactory()),
		RegisterTailor:           commands.NewRegisterTailorCommandHandler(c.catalogUoWFactory()),
		AddPortfolioItem:         commands.NewAddPortfolioItemCommandHandler(c.catalogUoWFactory()),
		CreateMaterial:           commands.NewCreateMaterialCommandHandler(c.catalogUoWFactory()),
		AdjustMaterialQuantity:   commands.NewAdjustMaterialQuantityCommandHandler(c.catalogUoWFactory()),
		UpdateMaterial:           commands.NewUpdateMaterialCommandHandler(c.catalogUoWFactory()),
		DeleteMaterial:           commands.NewDeleteMaterialCommandHandler(c.catalogUoWFactory()),
		CreateMeasurementSet:     commands.NewCreateMeasurementSetCommandHandler(c.measurementUoWFactory()),
		UpdateMeasurementSet:     commands.NewUpdateMeasurementSetCommandHandler(c.measurementUoWFactory()),
		DeleteMeasurementSet:     commands.NewDeleteMeasurementSetCommandHandler(c.measurementUoWFactory()),
		SetDefaultMeasurementSet: commands.NewSetDefaultMeasurementSetCommandHandler(c.measurementUoWFactory()),
		CreateOrder:              commands.NewCreateOrderCommandHandler(c.orderUoWFactory()),
		UpdateOrderStatus:        commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory()),
		CreateDelivery:           commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory()),
		AssignRider:              commands.NewAssignRiderCommandHandler(c.deliveryUoWFactory()),
		AdvanceDeliveryStatus:    commands.NewAdvanceDeliveryStatusCommandHandler(c.deliveryUoWFactory()),
		UpdateDeliveryLocation:   commands.NewUpdateDeliveryLocationCommandHandler(c.deliveryUoWFactory()),
		CreatePaymentIntent:      commands.NewCreatePaymentIntentCommandHandler(c.paymentUoWFactory(), c.gateway, c.logger),
		HandleGatewayEvent:       commands.NewHandleGatewayEventCommandHandler(c.paymentUoWFactory(), c.gateway, c.logger),
		ReleaseEscrow:            commands.NewReleaseEscrowCommandHandler(c.paymentUoWFactory()),
		RefundPayment:            commands.NewRefundPaymentCommandHandler(c.paymentUoWFactory(), c.gateway),

		GetMe:                     queries.NewGetMeQueryHandler(c.uowFactory),
		GetUser:                   queries.NewGetUserQueryHandler(c.uowFactory),
		ListUsers:                 queries.NewListUsersQueryHandler(c.uowFactory),
		GetTailor:                 queries.NewGetTailorQueryHandler(c.uowFactory),
		SearchTailors:             queries.NewSearchTailorsQueryHandler(c.uowFactory),
		ListMaterials:             queries.NewListMaterialsQueryHandler(c.uowFactory),
		GetMaterial:               queries.NewGetMaterialQueryHandler(c.uowFactory),
		GetMeasurementSet:         queries.NewGetMeasurementSetQueryHandler(c.uowFactory),
		ListMeasurementSets:       queries.NewListMeasurementSetsQueryHandler(c.uowFactory),
		ValidateMeasurements:      queries.NewValidateMeasurementsQueryHandler(),
		GetOrder:                  queries.NewGetOrderQueryHandler(c.uowFactory),
		ListOrders:                queries.NewListOrdersQueryHandler(c.uowFactory),
		GetDeliveryByOrder:        queries.NewGetDeliveryByOrderQueryHandler(c.uowFactory),
		GetDeliveryByTrackingCode: queries.NewGetDeliveryByTrackingCodeQueryHandler(c.uowFactory),
		ListDeliveries:            queries.NewListDeliveriesQueryHandler(c.uowFactory),
		GetPaymentByOrder:         queries.NewGetPaymentByOrderQueryHandler(c.uowFactory),
	}
}

func (c *CompositionRoot) CreateServer() (*httpin.Server, error) {
	currency, err := payment.ParseCurrency(c.configs.DefaultCurrency, payment.DefaultCurrency)
	if err != nil {
		return nil, err
	}
	return httpin.NewServer(c.CreateHandlers(), currency), nil
}

func (c *CompositionRoot) CreateAuthenticator() (*httpin.Authenticator, error) {
	return httpin.NewAuthenticator(c.configs.JWTSecret)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		commands.NewAutoReleaseEscrowCommandHandler(c.paymentUoWFactory()),
		commands.NewExpireStalePaymentsCommandHandler(c.paymentUoWFactory()),
		jobs.Schedules{
			EscrowRelease:    c.configs.EscrowReleaseSchedule,
			EscrowHoldPeriod: c.configs.EscrowHoldPeriod,
			PaymentExpiry:    c.configs.PaymentExpirySchedule,
			PaymentIntentTTL: c.configs.PaymentIntentTTL,
		},
		c.logger,
	)
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncMeasurementUoWFactory func() commands.MeasurementUoW

func (f FuncMeasurementUoWFactory) Create() commands.MeasurementUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
