package http

import (
	"io"
	"net/http"

	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// SignatureHeader carries the gateway's webhook signature.
const SignatureHeader = "Stripe-Signature"

// maxWebhookBytes bounds the raw webhook body read into memory.
const maxWebhookBytes = 1 << 16

type PaymentIntentRequest struct {
	OrderID  *string  `json:"orderId"`
	Amount   *float64 `json:"amount"`
	Currency string   `json:"currency"`
}

type PaymentIntentResponse struct {
	ClientSecret string  `json:"clientSecret"`
	Payment      Payment `json:"payment"`
}

// CreatePaymentIntent handles POST /api/payments/intent.
func (s *Server) CreatePaymentIntent(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req PaymentIntentRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	orderID, err := parseOptionalUUID("orderId", req.OrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreatePaymentIntentCommand(actor, orderID, req.Amount, req.Currency, s.defaultCurrency)
	if err != nil {
		return err
	}
	res, err := s.h.CreatePaymentIntent.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, PaymentIntentResponse{
		ClientSecret: res.ClientSecret,
		Payment:      toPayment(res.Payment),
	})
}

type WebhookResponse struct {
	Received  bool   `json:"received"`
	EventType string `json:"eventType,omitempty"`
	Handled   bool   `json:"handled"`
}

// HandlePaymentWebhook handles POST /api/payments/webhook. The raw body is
// passed on untouched because the signature covers its exact bytes.
func (s *Server) HandlePaymentWebhook(c echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBytes))
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("payload", err)
	}

	cmd, err := commands.NewHandleGatewayEventCommand(payload, c.Request().Header.Get(SignatureHeader))
	if err != nil {
		return err
	}
	res, err := s.h.HandleGatewayEvent.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, WebhookResponse{
		Received:  true,
		EventType: string(res.EventType),
		Handled:   res.Handled,
	})
}

// GetPaymentByOrder handles GET /api/payments/order/:orderId.
func (s *Server) GetPaymentByOrder(c echo.Context) error {
	query, err := orderQuery(c, "orderId")
	if err != nil {
		return err
	}
	p, err := s.h.GetPaymentByOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPayment(p))
}

// ReleaseEscrow handles PUT /api/payments/:id/release.
func (s *Server) ReleaseEscrow(c echo.Context) error {
	cmd, err := paymentCommand(c)
	if err != nil {
		return err
	}
	p, err := s.h.ReleaseEscrow.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPayment(p))
}

type RefundReceipt struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

type RefundResponse struct {
	Payment Payment       `json:"payment"`
	Refund  RefundReceipt `json:"refund"`
}

// RefundPayment handles PUT /api/payments/:id/refund.
func (s *Server) RefundPayment(c echo.Context) error {
	cmd, err := paymentCommand(c)
	if err != nil {
		return err
	}
	res, err := s.h.RefundPayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, RefundResponse{
		Payment: toPayment(res.Payment),
		Refund:  RefundReceipt{Reference: res.Refund.Reference, Status: res.Refund.Status},
	})
}

func paymentCommand(c echo.Context) (commands.PaymentCommand, error) {
	actor, err := principalFrom(c)
	if err != nil {
		return commands.PaymentCommand{}, err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return commands.PaymentCommand{}, err
	}
	return commands.NewPaymentCommand(actor, id)
}
