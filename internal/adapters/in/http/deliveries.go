package http

import (
	"net/http"

	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/application/usecases/queries"
	"tailorshop/internal/core/domain/model/delivery"
	"tailorshop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type CreateDeliveryRequest struct {
	OrderID         string          `json:"orderId"`
	PickupAddress   string          `json:"pickupAddress"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Fee             decimal.Decimal `json:"fee"`
	Notes           string          `json:"notes"`
}

// CreateDelivery handles POST /api/deliveries.
func (s *Server) CreateDelivery(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req CreateDeliveryRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	orderID, err := parseUUID("orderId", req.OrderID)
	if err != nil {
		return err
	}
	fee, err := kernel.NewMoney(req.Fee)
	if err != nil {
		return err
	}

	addresses := delivery.Addresses{Pickup: req.PickupAddress, Delivery: req.DeliveryAddress}
	cmd, err := commands.NewCreateDeliveryCommand(actor, orderID, addresses, fee, req.Notes)
	if err != nil {
		return err
	}
	d, err := s.h.CreateDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toDelivery(d))
}

type AssignRiderRequest struct {
	RiderID string `json:"riderId"`
}

// AssignRider handles PUT /api/deliveries/:id/assign.
func (s *Server) AssignRider(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req AssignRiderRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	riderID, err := parseUUID("riderId", req.RiderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignRiderCommand(actor, id, riderID)
	if err != nil {
		return err
	}
	d, err := s.h.AssignRider.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDelivery(d))
}

// AdvanceDeliveryStatus handles PUT /api/deliveries/:id/status.
func (s *Server) AdvanceDeliveryStatus(c echo.Context) error {
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
	status, err := delivery.ParseStatus(req.Status)
	if err != nil {
		return err
	}
	location, err := req.Location.toGeoPoint()
	if err != nil {
		return err
	}

	cmd, err := commands.NewAdvanceDeliveryStatusCommand(actor, id, status, location)
	if err != nil {
		return err
	}
	d, err := s.h.AdvanceDeliveryStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDelivery(d))
}

// UpdateDeliveryLocation handles PUT /api/deliveries/:id/location.
func (s *Server) UpdateDeliveryLocation(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req Location
	if err = c.Bind(&req); err != nil {
		return err
	}
	location, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDeliveryLocationCommand(actor, id, location)
	if err != nil {
		return err
	}
	d, err := s.h.UpdateDeliveryLocation.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDelivery(d))
}

// GetDeliveryByOrder handles GET /api/deliveries/order/:orderId.
func (s *Server) GetDeliveryByOrder(c echo.Context) error {
	query, err := orderQuery(c, "orderId")
	if err != nil {
		return err
	}
	d, err := s.h.GetDeliveryByOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDelivery(d))
}

// TrackDelivery handles GET /api/deliveries/track/:code without authentication.
func (s *Server) TrackDelivery(c echo.Context) error {
	view, err := s.h.GetDeliveryByTrackingCode.Handle(c.Request().Context(), queries.NewTrackingQuery(c.Param("code")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTracking(view))
}

// ListDeliveries handles GET /api/deliveries.
func (s *Server) ListDeliveries(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	query, err := queries.NewActorQuery(actor)
	if err != nil {
		return err
	}
	ds, err := s.h.ListDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeliveries(ds))
}
