package http

import (
	"net/http"
	"time"

	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/application/usecases/queries"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	TailorID            string          `json:"tailorId"`
	MeasurementID       *string         `json:"measurementId"`
	MaterialID          *string         `json:"materialId"`
	Quantity            decimal.Decimal `json:"quantity"`
	MaterialDetails     map[string]any  `json:"materialDetails"`
	OrderType           string          `json:"orderType"`
	Description         string          `json:"description"`
	Instructions        string          `json:"instructions"`
	TailoringPrice      decimal.Decimal `json:"tailoringPrice"`
	DeliveryPrice       decimal.Decimal `json:"deliveryPrice"`
	EstimatedCompletion *time.Time      `json:"estimatedCompletion"`
}

func (r CreateOrderRequest) toOrderRequest() (commands.OrderRequest, error) {
	tailorID, err := parseUUID("tailorId", r.TailorID)
	if err != nil {
		return commands.OrderRequest{}, err
	}
	measurementID, err := parseOptionalUUID("measurementId", r.MeasurementID)
	if err != nil {
		return commands.OrderRequest{}, err
	}
	materialID, err := parseOptionalUUID("materialId", r.MaterialID)
	if err != nil {
		return commands.OrderRequest{}, err
	}
	tailoring, err := kernel.NewMoney(r.TailoringPrice)
	if err != nil {
		return commands.OrderRequest{}, err
	}
	delivery, err := kernel.NewMoney(r.DeliveryPrice)
	if err != nil {
		return commands.OrderRequest{}, err
	}

	return commands.OrderRequest{
		TailorID:            tailorID,
		MeasurementID:       measurementID,
		MaterialID:          materialID,
		MaterialYards:       r.Quantity,
		MaterialDetails:     r.MaterialDetails,
		OrderType:           r.OrderType,
		Description:         r.Description,
		Instructions:        r.Instructions,
		TailoringPrice:      tailoring,
		DeliveryPrice:       delivery,
		EstimatedCompletion: r.EstimatedCompletion,
	}, nil
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req CreateOrderRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	request, err := req.toOrderRequest()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(actor, request)
	if err != nil {
		return err
	}
	o, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toOrder(o))
}

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	query, err := queries.NewActorQuery(actor)
	if err != nil {
		return err
	}
	os, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrders(os))
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	query, err := orderQuery(c, "id")
	if err != nil {
		return err
	}
	o, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrder(o))
}

type StatusRequest struct {
	Status   string    `json:"status"`
	Location *Location `json:"location"`
}

// UpdateOrderStatus handles PUT /api/orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req StatusRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actor, id, status)
	if err != nil {
		return err
	}
	o, err := s.h.UpdateOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrder(o))
}

// orderQuery reads the order id from the named path parameter.
func orderQuery(c echo.Context, param string) (queries.OrderQuery, error) {
	actor, err := principalFrom(c)
	if err != nil {
		return queries.OrderQuery{}, err
	}
	id, err := pathUUID(c, param)
	if err != nil {
		return queries.OrderQuery{}, err
	}
	return queries.NewOrderQuery(actor, id)
}
