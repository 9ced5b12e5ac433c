// Package http exposes the use cases over a JSON API on echo.
//
// Requests for documented operations are validated against the embedded
// OpenAPI document, authenticated routes expect an HS256 bearer token, and
// every error is rendered as {"code", "message"} by ErrorHandler.
package http

import (
	"log/slog"
	"net/http"

	"tailorshop/api"
	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/application/usecases/queries"
	"tailorshop/internal/core/domain/model/payment"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	RegisterUser             commands.RegisterUserCommandHandler
	UpdateUser               commands.UpdateUserCommandHandler
	RegisterTailor           commands.RegisterTailorCommandHandler
	AddPortfolioItem         commands.AddPortfolioItemCommandHandler
	CreateMaterial           commands.CreateMaterialCommandHandler
	AdjustMaterialQuantity   commands.AdjustMaterialQuantityCommandHandler
	UpdateMaterial           commands.UpdateMaterialCommandHandler
	DeleteMaterial           commands.DeleteMaterialCommandHandler
	CreateMeasurementSet     commands.CreateMeasurementSetCommandHandler
	UpdateMeasurementSet     commands.UpdateMeasurementSetCommandHandler
	DeleteMeasurementSet     commands.DeleteMeasurementSetCommandHandler
	SetDefaultMeasurementSet commands.SetDefaultMeasurementSetCommandHandler
	CreateOrder              commands.CreateOrderCommandHandler
	UpdateOrderStatus        commands.UpdateOrderStatusCommandHandler
	CreateDelivery           commands.CreateDeliveryCommandHandler
	AssignRider              commands.AssignRiderCommandHandler
	AdvanceDeliveryStatus    commands.AdvanceDeliveryStatusCommandHandler
	UpdateDeliveryLocation   commands.UpdateDeliveryLocationCommandHandler
	CreatePaymentIntent      commands.CreatePaymentIntentCommandHandler
	HandleGatewayEvent       commands.HandleGatewayEventCommandHandler
	ReleaseEscrow            commands.ReleaseEscrowCommandHandler
	RefundPayment            commands.RefundPaymentCommandHandler

	GetMe                     queries.GetMeQueryHandler
	GetUser                   queries.GetUserQueryHandler
	ListUsers                 queries.ListUsersQueryHandler
	GetTailor                 queries.GetTailorQueryHandler
	SearchTailors             queries.SearchTailorsQueryHandler
	ListMaterials             queries.ListMaterialsQueryHandler
	GetMaterial               queries.GetMaterialQueryHandler
	GetMeasurementSet         queries.GetMeasurementSetQueryHandler
	ListMeasurementSets       queries.ListMeasurementSetsQueryHandler
	ValidateMeasurements      queries.ValidateMeasurementsQueryHandler
	GetOrder                  queries.GetOrderQueryHandler
	ListOrders                queries.ListOrdersQueryHandler
	GetDeliveryByOrder        queries.GetDeliveryByOrderQueryHandler
	GetDeliveryByTrackingCode queries.GetDeliveryByTrackingCodeQueryHandler
	ListDeliveries            queries.ListDeliveriesQueryHandler
	GetPaymentByOrder         queries.GetPaymentByOrderQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h               Handlers
	defaultCurrency payment.Currency
}

func NewServer(h Handlers, defaultCurrency payment.Currency) *Server {
	if defaultCurrency == "" {
		defaultCurrency = payment.DefaultCurrency
	}
	return &Server{h: h, defaultCurrency: defaultCurrency}
}

// Options carries the infrastructure NewEcho wires around a Server.
type Options struct {
	Doc           *openapi3.T
	Authenticator *Authenticator
	AccessLog     zerolog.Logger
	Logger        *slog.Logger
}

// NewEcho builds the router: access log, request validation, the API routes,
// /health and swagger UI.
func NewEcho(s *Server, opts Options) (*echo.Echo, error) {
	validator, err := RequestValidator(opts.Doc)
	if err != nil {
		return nil, err
	}
	if err = api.RegisterSwagger(opts.Doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(opts.Logger)
	e.Use(AccessLog(opts.AccessLog), validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	s.Register(e.Group("/api"), opts.Authenticator.Middleware())
	return e, nil
}

// Register mounts every API route on g. Routes that need a caller take auth.
func (s *Server) Register(g *echo.Group, auth echo.MiddlewareFunc) {
	g.GET("/users/me", s.GetMe, auth)
	g.POST("/users/me", s.RegisterMe, auth)
	g.GET("/users", s.ListUsers, auth)
	g.GET("/users/:id", s.GetUser, auth)
	g.PUT("/users/:id", s.UpdateUser, auth)

	g.GET("/tailors", s.SearchTailors)
	g.POST("/tailors", s.RegisterTailor, auth)
	g.GET("/tailors/:id", s.GetTailor)
	g.POST("/tailors/:id/portfolio", s.AddPortfolioItem, auth)

	g.GET("/materials", s.ListMaterials)
	g.POST("/materials", s.CreateMaterial, auth)
	g.GET("/materials/tailor/:tailorId", s.ListTailorMaterials)
	g.GET("/materials/:id", s.GetMaterial)
	g.PUT("/materials/:id", s.UpdateMaterial, auth)
	g.DELETE("/materials/:id", s.DeleteMaterial, auth)
	g.PUT("/materials/:id/quantity", s.AdjustMaterialQuantity, auth)

	g.GET("/measurements", s.ListMeasurementSets, auth)
	g.POST("/measurements", s.CreateMeasurementSet, auth)
	g.POST("/measurements/validate", s.ValidateMeasurements)
	g.POST("/measurements/convert", s.ConvertMeasurement)
	g.POST("/measurements/suggestion", s.SuggestMeasurement)
	g.POST("/measurements/bmi", s.CalculateBMI)
	g.GET("/measurements/:id", s.GetMeasurementSet, auth)
	g.PUT("/measurements/:id", s.UpdateMeasurementSet, auth)
	g.DELETE("/measurements/:id", s.DeleteMeasurementSet, auth)
	g.PUT("/measurements/:id/default", s.SetDefaultMeasurementSet, auth)

	g.GET("/orders", s.ListOrders, auth)
	g.POST("/orders", s.CreateOrder, auth)
	g.GET("/orders/:id", s.GetOrder, auth)
	g.PUT("/orders/:id/status", s.UpdateOrderStatus, auth)

	g.GET("/deliveries", s.ListDeliveries, auth)
	g.POST("/deliveries", s.CreateDelivery, auth)
	g.PUT("/deliveries/:id/assign", s.AssignRider, auth)
	g.PUT("/deliveries/:id/status", s.AdvanceDeliveryStatus, auth)
	g.PUT("/deliveries/:id/location", s.UpdateDeliveryLocation, auth)
	g.GET("/deliveries/order/:orderId", s.GetDeliveryByOrder, auth)
	g.GET("/deliveries/track/:code", s.TrackDelivery)

	g.POST("/payments/intent", s.CreatePaymentIntent, auth)
	g.POST("/payments/webhook", s.HandlePaymentWebhook)
	g.GET("/payments/order/:orderId", s.GetPaymentByOrder, auth)
	g.PUT("/payments/:id/release", s.ReleaseEscrow, auth)
	g.PUT("/payments/:id/refund", s.RefundPayment, auth)
}
