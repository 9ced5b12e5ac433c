package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tailorshop/api"
	"tailorshop/cmd"
	httpin "tailorshop/internal/adapters/in/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const testSecret = "test-secret"

type actor struct {
	id    string
	token string
}

type ServerSuite struct {
	suite.Suite
	e *echo.Echo
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

// SetupTest gives every test a fresh in-memory store behind the real router.
func (s *ServerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	root, err := cmd.NewCompositionRoot(cmd.Config{
		StorageBackend:  cmd.StorageBackendMemory,
		PaymentProvider: cmd.PaymentProviderMock,
		JWTSecret:       testSecret,
		DefaultCurrency: "USD",
	}, nil, logger)
	s.Require().NoError(err)

	server, err := root.CreateServer()
	s.Require().NoError(err)
	auth, err := root.CreateAuthenticator()
	s.Require().NoError(err)
	doc, err := api.Load(context.Background())
	s.Require().NoError(err)

	s.e, err = httpin.NewEcho(server, httpin.Options{
		Doc:           doc,
		Authenticator: auth,
		AccessLog:     zerolog.Nop(),
		Logger:        logger,
	})
	s.Require().NoError(err)
}

func sign(subject string, role string, secret string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, httpin.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	raw, err := token.SignedString([]byte(secret))
	if err != nil {
		panic(err)
	}
	return raw
}

func (s *ServerSuite) do(method string, path string, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](s *ServerSuite, rec *httptest.ResponseRecorder) T {
	var out T
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

// newActor registers a directory user with the given role.
func (s *ServerSuite) newActor(role string) actor {
	id := uuid.NewString()
	a := actor{id: id, token: sign(id, role, testSecret)}

	rec := s.do(http.MethodPost, "/api/users/me", a.token, map[string]any{
		"name":  role + " " + id[:8],
		"email": id[:8] + "@example.com",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return a
}

// newTailor registers a shop in Manhattan and returns its owner and shop id.
func (s *ServerSuite) newTailor() (actor, string) {
	owner := s.newActor("tailor")
	rec := s.do(http.MethodPost, "/api/tailors", owner.token, map[string]any{
		"shopName":    "Stitch & Co",
		"specialties": []string{"suits", "alterations"},
		"location":    map[string]float64{"latitude": 40.7128, "longitude": -74.0060},
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return owner, decode[httpin.Tailor](s, rec).ID
}

func (s *ServerSuite) newOrder(customer actor, tailorID string) httpin.Order {
	rec := s.do(http.MethodPost, "/api/orders", customer.token, map[string]any{
		"tailorId":       tailorID,
		"orderType":      "suit",
		"description":    "Two-piece wool suit",
		"tailoringPrice": 100,
		"deliveryPrice":  10,
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return decode[httpin.Order](s, rec)
}

func (s *ServerSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())
}

func (s *ServerSuite) TestAuthentication() {
	rec := s.do(http.MethodGet, "/api/orders", "", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("No token, authorization denied", decode[httpin.Error](s, rec).Message)

	forged := sign(uuid.NewString(), "customer", "another-secret")
	rec = s.do(http.MethodGet, "/api/orders", forged, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("Token is not valid", decode[httpin.Error](s, rec).Message)

	unknownRole := sign(uuid.NewString(), "wizard", testSecret)
	rec = s.do(http.MethodGet, "/api/orders", unknownRole, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ServerSuite) TestRegisterAndGetMe() {
	customer := s.newActor("customer")

	rec := s.do(http.MethodGet, "/api/users/me", customer.token, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	me := decode[httpin.User](s, rec)
	s.Equal(customer.id, me.ID)
	s.Equal("customer", me.Role)
}

func (s *ServerSuite) TestGetMeBeforeRegistrationIsNotFound() {
	rec := s.do(http.MethodGet, "/api/users/me", sign(uuid.NewString(), "customer", testSecret), nil)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerSuite) TestRequestValidation() {
	customer := s.newActor("customer")

	rec := s.do(http.MethodPost, "/api/users/me", customer.token, map[string]any{"email": "no-name@example.com"})

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerSuite) TestTailorRegisterAndSearch() {
	_, tailorID := s.newTailor()

	rec := s.do(http.MethodGet, "/api/tailors?lat=40.73&lng=-73.99&radius=10&specialties=suits", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	matches := decode[[]httpin.Tailor](s, rec)
	s.Require().Len(matches, 1)
	s.Equal(tailorID, matches[0].ID)
	s.Require().NotNil(matches[0].DistanceMiles)
	s.Less(*matches[0].DistanceMiles, 10.0)

	rec = s.do(http.MethodGet, "/api/tailors?lat=51.5&lng=-0.12&radius=10", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Empty(decode[[]httpin.Tailor](s, rec))

	rec = s.do(http.MethodGet, "/api/tailors?lat=40.73", "", nil)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/tailors/"+tailorID, "", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerSuite) TestCustomerCannotRegisterTailor() {
	customer := s.newActor("customer")

	rec := s.do(http.MethodPost, "/api/tailors", customer.token, map[string]any{"shopName": "Not mine"})

	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *ServerSuite) TestCreateMeasurementSet() {
	customer := s.newActor("customer")

	rec := s.do(http.MethodPost, "/api/measurements", customer.token, map[string]any{
		"name":         "Everyday",
		"unit":         "cm",
		"measurements": map[string]any{"waist": 81.28, "hip": 101.6, "height": 172.72},
		"weight":       150,
		"isDefault":    true,
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[httpin.MeasurementSetWithReport](s, rec)
	s.Equal("inches", created.MeasurementSet.Unit)
	s.True(created.MeasurementSet.IsDefault)
	waist, ok := created.MeasurementSet.Measurements["waist"].Get()
	s.Require().True(ok)
	s.InDelta(32.0, waist, 0.01)
	_, ok = created.MeasurementSet.Measurements["neck"].Get()
	s.False(ok)
	s.NotEqual("invalid", created.Report.Overall)

	rec = s.do(http.MethodGet, "/api/measurements/"+created.MeasurementSet.ID, customer.token, nil)
	s.Equal(http.StatusOK, rec.Code)

	other := s.newActor("customer")
	rec = s.do(http.MethodGet, "/api/measurements/"+created.MeasurementSet.ID, other.token, nil)
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *ServerSuite) TestCreateMeasurementSetRejectsImplausibleReadings() {
	customer := s.newActor("customer")

	rec := s.do(http.MethodPost, "/api/measurements", customer.token, map[string]any{
		"name":         "Typo",
		"unit":         "inches",
		"measurements": map[string]any{"waist": 80},
	})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/measurements", customer.token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Empty(decode[[]httpin.MeasurementSet](s, rec))
}

func (s *ServerSuite) TestMeasurementTools() {
	rec := s.do(http.MethodPost, "/api/measurements/validate", "", map[string]any{
		"unit":         "inches",
		"measurements": map[string]any{"waist": 0, "hip": 40},
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal("invalid", decode[httpin.Report](s, rec).Overall)

	rec = s.do(http.MethodPost, "/api/measurements/convert", "", map[string]any{"value": 10, "from": "inches", "to": "cm"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	want := httpin.ConvertResponse{Value: 25.4, Unit: "cm", Formatted: "25.4"}
	got := decode[httpin.ConvertResponse](s, rec)
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 0.001)); diff != "" {
		s.Failf("convert mismatch", "(-want +got):\n%s", diff)
	}

	rec = s.do(http.MethodPost, "/api/measurements/bmi", "", map[string]any{"height": 68, "unit": "inches", "weight": 150})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	bmi := decode[httpin.BMIResponse](s, rec)
	s.InDelta(22.8, bmi.BMI, 0.001)
	s.Equal("Normal weight", bmi.Category)

	rec = s.do(http.MethodPost, "/api/measurements/bmi", "", map[string]any{"height": 68, "unit": "inches"})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("null", strings.TrimSpace(rec.Body.String()))
}

func (s *ServerSuite) TestOrderDeliveryAndTracking() {
	tailor, tailorID := s.newTailor()
	customer := s.newActor("customer")
	rider := s.newActor("rider")
	admin := actor{token: sign(uuid.NewString(), "admin", testSecret)}

	o := s.newOrder(customer, tailorID)
	s.Equal("pending", o.Status)
	s.True(o.Pricing.Total.Equal(decimal.NewFromInt(110)), o.Pricing.Total.String())

	rec := s.do(http.MethodPut, "/api/orders/"+o.ID+"/status", customer.token, map[string]any{"status": "confirmed"})
	s.Equal(http.StatusForbidden, rec.Code)

	for _, status := range []string{"confirmed", "in_progress", "ready_for_delivery"} {
		rec = s.do(http.MethodPut, "/api/orders/"+o.ID+"/status", tailor.token, map[string]any{"status": status})
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = s.do(http.MethodPost, "/api/deliveries", tailor.token, map[string]any{
		"orderId":         o.ID,
		"pickupAddress":   "12 Mercer St",
		"deliveryAddress": "400 W 59th St",
		"fee":             5,
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	d := decode[httpin.Delivery](s, rec)
	s.Equal("pending", d.Status)
	s.Regexp(`^[A-Z0-9]{8}$`, d.TrackingCode)

	rec = s.do(http.MethodPut, "/api/deliveries/"+d.ID+"/assign", tailor.token, map[string]any{"riderId": rider.id})
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPut, "/api/deliveries/"+d.ID+"/assign", admin.token, map[string]any{"riderId": rider.id})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal("assigned", decode[httpin.Delivery](s, rec).Status)

	rec = s.do(http.MethodPut, "/api/deliveries/"+d.ID+"/status", rider.token, map[string]any{"status": "delivered"})
	s.Equal(http.StatusConflict, rec.Code)

	for _, status := range []string{"pickup_in_progress", "picked_up", "in_transit"} {
		rec = s.do(http.MethodPut, "/api/deliveries/"+d.ID+"/status", rider.token, map[string]any{"status": status})
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = s.do(http.MethodPut, "/api/deliveries/"+d.ID+"/location", rider.token,
		map[string]float64{"latitude": 40.75, "longitude": -73.98})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPut, "/api/deliveries/"+d.ID+"/status", rider.token, map[string]any{"status": "delivered"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	delivered := decode[httpin.Delivery](s, rec)
	s.NotNil(delivered.PickupDate)
	s.NotNil(delivered.DeliveryDate)

	rec = s.do(http.MethodGet, "/api/deliveries/track/"+d.TrackingCode, "", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	tracking := decode[httpin.Tracking](s, rec)
	s.Equal("delivered", tracking.Status)
	s.Equal("delivered", tracking.OrderStatus)
	s.Require().NotNil(tracking.CurrentLocation)
	s.InDelta(40.75, tracking.CurrentLocation.Latitude, 1e-9)

	rec = s.do(http.MethodGet, "/api/deliveries/track/ZZZZZZZZ", "", nil)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/deliveries/order/"+o.ID, customer.token, nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/deliveries", rider.token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Len(decode[[]httpin.Delivery](s, rec), 1)
}

func (s *ServerSuite) TestPaymentEscrowLifecycle() {
	tailor, tailorID := s.newTailor()
	customer := s.newActor("customer")
	o := s.newOrder(customer, tailorID)

	rec := s.do(http.MethodPost, "/api/payments/intent", customer.token, map[string]any{"orderId": o.ID})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	intent := decode[httpin.PaymentIntentResponse](s, rec)
	s.True(strings.HasPrefix(intent.ClientSecret, "mock_client_secret_"), intent.ClientSecret)
	s.Equal("processing", intent.Payment.Status)
	s.True(intent.Payment.Amount.Equal(decimal.NewFromInt(110)))
	s.True(strings.HasPrefix(intent.Payment.GatewayReference, "mock_payment_"))

	event := map[string]any{
		"id":   "evt_1",
		"type": "payment_intent.succeeded",
		"data": map[string]any{"object": map[string]any{"id": intent.Payment.GatewayReference}},
	}
	rec = s.do(http.MethodPost, "/api/payments/webhook", "", event)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.True(decode[httpin.WebhookResponse](s, rec).Handled)

	rec = s.do(http.MethodPost, "/api/payments/webhook", "", event)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.False(decode[httpin.WebhookResponse](s, rec).Handled)

	rec = s.do(http.MethodGet, "/api/payments/order/"+o.ID, customer.token, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	held := decode[httpin.Payment](s, rec)
	s.Equal("held_in_escrow", held.Status)
	s.NotNil(held.HeldAt)

	rec = s.do(http.MethodGet, "/api/orders/"+o.ID, customer.token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("in_escrow", decode[httpin.Order](s, rec).PaymentStatus)

	rec = s.do(http.MethodPut, "/api/payments/"+held.ID+"/release", customer.token, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal("released", decode[httpin.Payment](s, rec).Status)

	rec = s.do(http.MethodPut, "/api/payments/"+held.ID+"/refund", tailor.token, nil)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ServerSuite) TestRefundHeldPayment() {
	tailor, tailorID := s.newTailor()
	customer := s.newActor("customer")
	o := s.newOrder(customer, tailorID)

	rec := s.do(http.MethodPost, "/api/payments/intent", customer.token, map[string]any{"orderId": o.ID})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	intent := decode[httpin.PaymentIntentResponse](s, rec)

	rec = s.do(http.MethodPut, "/api/payments/"+intent.Payment.ID+"/release", customer.token, nil)
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPost, "/api/payments/webhook", "", map[string]any{
		"type": "payment_intent.succeeded",
		"data": map[string]any{"object": map[string]any{"id": intent.Payment.GatewayReference}},
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPut, "/api/payments/"+intent.Payment.ID+"/refund", customer.token, nil)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPut, "/api/payments/"+intent.Payment.ID+"/refund", tailor.token, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	refund := decode[httpin.RefundResponse](s, rec)
	s.Equal("refunded", refund.Payment.Status)
	s.True(strings.HasPrefix(refund.Refund.Reference, "mock_refund_"))
}

func (s *ServerSuite) TestWebhookAcknowledgesOtherEvents() {
	rec := s.do(http.MethodPost, "/api/payments/webhook", "", map[string]any{"type": "charge.refunded"})

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	res := decode[httpin.WebhookResponse](s, rec)
	s.True(res.Received)
	s.False(res.Handled)
	s.Equal("charge.refunded", res.EventType)
}

func (s *ServerSuite) TestMaterialLifecycle() {
	owner, tailorID := s.newTailor()

	rec := s.do(http.MethodPost, "/api/materials", owner.token, map[string]any{
		"name":              "Irish linen",
		"type":              "linen",
		"pricePerYard":      18,
		"quantityAvailable": 40,
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[httpin.Material](s, rec)
	s.Equal(tailorID, created.TailorID)

	rec = s.do(http.MethodGet, "/api/materials/"+created.ID, "", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal("Irish linen", decode[httpin.Material](s, rec).Name)

	update := map[string]any{
		"name":              "Irish linen, washed",
		"type":              "linen",
		"pricePerYard":      "21.50",
		"quantityAvailable": 12,
		"isAvailable":       false,
	}
	other, _ := s.newTailor()
	rec = s.do(http.MethodPut, "/api/materials/"+created.ID, other.token, update)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPut, "/api/materials/"+created.ID, owner.token, update)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[httpin.Material](s, rec)
	s.Equal("Irish linen, washed", updated.Name)
	s.True(updated.PricePerYard.Equal(decimal.RequireFromString("21.50")))
	s.True(updated.QuantityAvailable.Equal(decimal.NewFromInt(12)))
	s.False(updated.IsAvailable)

	rec = s.do(http.MethodGet, "/api/materials", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Empty(decode[[]httpin.Material](s, rec))

	rec = s.do(http.MethodDelete, "/api/materials/"+created.ID, other.token, nil)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodDelete, "/api/materials/"+created.ID, owner.token, nil)
	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/materials/"+created.ID, "", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerSuite) TestUserDirectory() {
	customer := s.newActor("customer")
	admin := s.newActor("admin")

	rec := s.do(http.MethodGet, "/api/users", customer.token, nil)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodGet, "/api/users", admin.token, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Len(decode[[]httpin.User](s, rec), 2)

	rec = s.do(http.MethodGet, "/api/users/"+admin.id, customer.token, nil)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPut, "/api/users/"+customer.id, customer.token, map[string]any{"name": "Grace"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal("Grace", decode[httpin.User](s, rec).Name)

	rec = s.do(http.MethodGet, "/api/users/"+customer.id, admin.token, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal("Grace", decode[httpin.User](s, rec).Name)

	rec = s.do(http.MethodGet, "/api/users/me", customer.token, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal(customer.id, decode[httpin.User](s, rec).ID)
}

func (s *ServerSuite) TestUpdateMeasurementSetMovesDefault() {
	customer := s.newActor("customer")
	create := func(name string, isDefault bool) string {
		rec := s.do(http.MethodPost, "/api/measurements", customer.token, map[string]any{
			"name":         name,
			"unit":         "inches",
			"measurements": map[string]any{"waist": 32},
			"isDefault":    isDefault,
		})
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
		return decode[httpin.MeasurementSetWithReport](s, rec).MeasurementSet.ID
	}
	first := create("Summer", true)
	second := create("Winter", false)

	rec := s.do(http.MethodPut, "/api/measurements/"+second, customer.token, map[string]any{
		"name":         "Winter",
		"unit":         "inches",
		"measurements": map[string]any{"waist": 33},
		"isDefault":    true,
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.True(decode[httpin.MeasurementSetWithReport](s, rec).MeasurementSet.IsDefault)

	rec = s.do(http.MethodGet, "/api/measurements", customer.token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	defaults := map[string]bool{}
	for _, set := range decode[[]httpin.MeasurementSet](s, rec) {
		defaults[set.ID] = set.IsDefault
	}
	s.Equal(map[string]bool{first: false, second: true}, defaults)
}
