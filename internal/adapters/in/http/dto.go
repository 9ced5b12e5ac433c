package http

import (
	"time"

	"tailorshop/internal/core/application/usecases/queries"
	"tailorshop/internal/core/domain/model/delivery"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/material"
	"tailorshop/internal/core/domain/model/measurement"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/domain/model/payment"
	"tailorshop/internal/core/domain/model/tailor"
	"tailorshop/internal/core/domain/model/user"
	"tailorshop/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (l *Location) toGeoPoint() (*kernel.GeoPoint, error) {
	if l == nil {
		return nil, nil
	}
	p, err := kernel.NewGeoPoint(l.Latitude, l.Longitude)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func toLocation(p *kernel.GeoPoint) *Location {
	if p == nil {
		return nil
	}
	return &Location{Latitude: p.Latitude(), Longitude: p.Longitude()}
}

func uuidPtr(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toUser(u *user.User) User {
	return User{
		ID:    u.ID().String(),
		Name:  u.Name(),
		Email: u.Email(),
		Role:  u.Role().String(),
	}
}

type Tailor struct {
	ID                         string         `json:"id"`
	UserID                     string         `json:"userId"`
	ShopName                   string         `json:"shopName"`
	Description                string         `json:"description"`
	Specialties                []string       `json:"specialties"`
	ExperienceYears            int            `json:"experienceYears"`
	Rating                     float64        `json:"rating"`
	ReviewCount                int            `json:"reviewCount"`
	IsAvailable                bool           `json:"isAvailable"`
	Location                   *Location      `json:"location,omitempty"`
	BusinessHours              map[string]any `json:"businessHours,omitempty"`
	Portfolio                  []string       `json:"portfolio"`
	AcceptsInPerson            bool           `json:"acceptsInPerson"`
	AcceptsDigitalMeasurements bool           `json:"acceptsDigitalMeasurements"`
	ProvidesMaterials          bool           `json:"providesMaterials"`
	DistanceMiles              *float64       `json:"distanceMiles,omitempty"`
}

func toTailor(t *tailor.Tailor) Tailor {
	p := t.Profile()
	specialties := p.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	portfolio := t.Portfolio()
	if portfolio == nil {
		portfolio = []string{}
	}
	return Tailor{
		ID:                         t.ID().String(),
		UserID:                     t.UserID().String(),
		ShopName:                   p.ShopName,
		Description:                p.Description,
		Specialties:                specialties,
		ExperienceYears:            p.ExperienceYears,
		Rating:                     t.Rating(),
		ReviewCount:                t.ReviewCount(),
		IsAvailable:                t.IsAvailable(),
		Location:                   toLocation(t.Location()),
		BusinessHours:              p.BusinessHours,
		Portfolio:                  portfolio,
		AcceptsInPerson:            p.AcceptsInPerson,
		AcceptsDigitalMeasurements: p.AcceptsDigitalMeasurements,
		ProvidesMaterials:          p.ProvidesMaterials,
	}
}

func toTailorMatches(matches []services.TailorMatch) []Tailor {
	out := make([]Tailor, 0, len(matches))
	for _, m := range matches {
		t := toTailor(m.Tailor)
		t.DistanceMiles = m.DistanceMiles
		out = append(out, t)
	}
	return out
}

type Material struct {
	ID                string          `json:"id"`
	TailorID          string          `json:"tailorId"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Type              string          `json:"type"`
	Color             string          `json:"color"`
	Pattern           string          `json:"pattern"`
	ImageURL          string          `json:"imageUrl"`
	PricePerYard      decimal.Decimal `json:"pricePerYard"`
	QuantityAvailable decimal.Decimal `json:"quantityAvailable"`
	IsAvailable       bool            `json:"isAvailable"`
}

func toMaterial(m *material.Material) Material {
	d := m.Details()
	return Material{
		ID:                m.ID().String(),
		TailorID:          m.TailorID().String(),
		Name:              d.Name,
		Description:       d.Description,
		Type:              d.Type,
		Color:             d.Color,
		Pattern:           d.Pattern,
		ImageURL:          d.ImageURL,
		PricePerYard:      m.PricePerYard().Decimal(),
		QuantityAvailable: m.QuantityAvailable(),
		IsAvailable:       m.IsAvailable(),
	}
}

func toMaterials(ms []*material.Material) []Material {
	out := make([]Material, 0, len(ms))
	for _, m := range ms {
		out = append(out, toMaterial(m))
	}
	return out
}

// MeasurementSet is rendered in inches, the storage unit.
type MeasurementSet struct {
	ID           string                       `json:"id"`
	OwnerID      string                       `json:"ownerId"`
	Name         string                       `json:"name"`
	Unit         string                       `json:"unit"`
	Measurements map[string]measurement.Value `json:"measurements"`
	Weight       measurement.Value            `json:"weight"`
	Additional   map[string]any               `json:"additional"`
	Notes        string                       `json:"notes"`
	IsDefault    bool                         `json:"isDefault"`
	Source       string                       `json:"source"`
	MeasuredAt   time.Time                    `json:"measuredAt"`
	CreatedAt    time.Time                    `json:"createdAt"`
}

func toMeasurementSet(s *measurement.MeasurementSet) MeasurementSet {
	readings := make(map[string]measurement.Value, len(measurement.BodyFields()))
	for _, f := range measurement.BodyFields() {
		readings[string(f)] = s.Reading(f)
	}
	return MeasurementSet{
		ID:           s.ID().String(),
		OwnerID:      s.OwnerID().String(),
		Name:         s.Name(),
		Unit:         measurement.Inches.String(),
		Measurements: readings,
		Weight:       s.WeightLbs(),
		Additional:   s.Additional(),
		Notes:        s.Notes(),
		IsDefault:    s.IsDefault(),
		Source:       string(s.Source()),
		MeasuredAt:   s.MeasuredAt(),
		CreatedAt:    s.CreatedAt(),
	}
}

func toMeasurementSets(sets []*measurement.MeasurementSet) []MeasurementSet {
	out := make([]MeasurementSet, 0, len(sets))
	for _, s := range sets {
		out = append(out, toMeasurementSet(s))
	}
	return out
}

type Issue struct {
	Field    string `json:"field"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

type Suggestion struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type FieldDetail struct {
	Value          float64 `json:"value"`
	IsValid        bool    `json:"isValid"`
	Message        string  `json:"message,omitempty"`
	InRange        bool    `json:"inRange"`
	InTypicalRange bool    `json:"inTypicalRange"`
}

type Report struct {
	Overall     string                 `json:"overall"`
	Issues      []Issue                `json:"issues"`
	Warnings    []Issue                `json:"warnings"`
	Suggestions []Suggestion           `json:"suggestions"`
	Score       int                    `json:"score"`
	Details     map[string]FieldDetail `json:"details"`
}

func toIssues(in []services.Issue) []Issue {
	out := make([]Issue, 0, len(in))
	for _, i := range in {
		out = append(out, Issue{Field: i.Field, Message: i.Message, Severity: string(i.Severity)})
	}
	return out
}

func toReport(r services.Report) Report {
	suggestions := make([]Suggestion, 0, len(r.Suggestions))
	for _, s := range r.Suggestions {
		suggestions = append(suggestions, Suggestion{Type: s.Type, Message: s.Message})
	}
	details := make(map[string]FieldDetail, len(r.Details))
	for f, d := range r.Details {
		details[string(f)] = FieldDetail(d)
	}
	return Report{
		Overall:     string(r.Overall),
		Issues:      toIssues(r.Issues),
		Warnings:    toIssues(r.Warnings),
		Suggestions: suggestions,
		Score:       r.Score,
		Details:     details,
	}
}

type MeasurementSetWithReport struct {
	MeasurementSet MeasurementSet `json:"measurementSet"`
	Report         Report         `json:"report"`
}

type Pricing struct {
	Tailoring decimal.Decimal `json:"tailoring"`
	Material  decimal.Decimal `json:"material"`
	Delivery  decimal.Decimal `json:"delivery"`
	Total     decimal.Decimal `json:"total"`
}

type Order struct {
	ID                  string         `json:"id"`
	CustomerID          string         `json:"customerId"`
	TailorID            string         `json:"tailorId"`
	MeasurementID       *string        `json:"measurementId"`
	OrderType           string         `json:"orderType"`
	Description         string         `json:"description"`
	Instructions        string         `json:"instructions"`
	MaterialSource      string         `json:"materialSource"`
	MaterialDetails     map[string]any `json:"materialDetails,omitempty"`
	Pricing             Pricing        `json:"pricing"`
	Status              string         `json:"status"`
	PaymentStatus       string         `json:"paymentStatus"`
	PaymentID           *string        `json:"paymentId"`
	EstimatedCompletion *time.Time     `json:"estimatedCompletion"`
	ActualCompletion    *time.Time     `json:"actualCompletion"`
	CreatedAt           time.Time      `json:"createdAt"`
}

func toOrder(o *order.Order) Order {
	d := o.Details()
	p := o.Pricing()
	return Order{
		ID:              o.ID().String(),
		CustomerID:      o.CustomerID().String(),
		TailorID:        o.Tailor().TailorID.String(),
		MeasurementID:   uuidPtr(d.MeasurementID),
		OrderType:       d.OrderType,
		Description:     d.Description,
		Instructions:    d.Instructions,
		MaterialSource:  string(d.MaterialSource),
		MaterialDetails: d.MaterialDetails,
		Pricing: Pricing{
			Tailoring: p.Tailoring().Decimal(),
			Material:  p.Material().Decimal(),
			Delivery:  p.Delivery().Decimal(),
			Total:     p.Total().Decimal(),
		},
		Status:              o.Status().String(),
		PaymentStatus:       o.PaymentStatus().String(),
		PaymentID:           uuidPtr(o.PaymentID()),
		EstimatedCompletion: d.EstimatedCompletion,
		ActualCompletion:    o.ActualCompletion(),
		CreatedAt:           o.CreatedAt(),
	}
}

func toOrders(os []*order.Order) []Order {
	out := make([]Order, 0, len(os))
	for _, o := range os {
		out = append(out, toOrder(o))
	}
	return out
}

type Delivery struct {
	ID              string          `json:"id"`
	OrderID         string          `json:"orderId"`
	Status          string          `json:"status"`
	TrackingCode    string          `json:"trackingCode"`
	RiderID         *string         `json:"riderId"`
	PickupAddress   string          `json:"pickupAddress"`
	DeliveryAddress string          `json:"deliveryAddress"`
	CurrentLocation *Location       `json:"currentLocation,omitempty"`
	PickupDate      *time.Time      `json:"pickupDate"`
	DeliveryDate    *time.Time      `json:"deliveryDate"`
	Fee             decimal.Decimal `json:"fee"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func toDelivery(d *delivery.Delivery) Delivery {
	a := d.Addresses()
	return Delivery{
		ID:              d.ID().String(),
		OrderID:         d.OrderID().String(),
		Status:          d.Status().String(),
		TrackingCode:    d.TrackingCode().String(),
		RiderID:         uuidPtr(d.RiderID()),
		PickupAddress:   a.Pickup,
		DeliveryAddress: a.Delivery,
		CurrentLocation: toLocation(d.CurrentLocation()),
		PickupDate:      d.PickupDate(),
		DeliveryDate:    d.DeliveryDate(),
		Fee:             d.Fee().Decimal(),
		Notes:           d.Notes(),
		CreatedAt:       d.CreatedAt(),
	}
}

func toDeliveries(ds []*delivery.Delivery) []Delivery {
	out := make([]Delivery, 0, len(ds))
	for _, d := range ds {
		out = append(out, toDelivery(d))
	}
	return out
}

type Tracking struct {
	TrackingCode    string     `json:"trackingCode"`
	Status          string     `json:"status"`
	OrderStatus     string     `json:"orderStatus"`
	CurrentLocation *Location  `json:"currentLocation,omitempty"`
	PickupDate      *time.Time `json:"pickupDate"`
	DeliveryDate    *time.Time `json:"deliveryDate"`
}

func toTracking(v queries.TrackingView) Tracking {
	return Tracking{
		TrackingCode:    v.TrackingCode.String(),
		Status:          v.Status.String(),
		OrderStatus:     v.OrderStatus.String(),
		CurrentLocation: toLocation(v.CurrentLocation),
		PickupDate:      v.PickupDate,
		DeliveryDate:    v.DeliveryDate,
	}
}

type Payment struct {
	ID                string          `json:"id"`
	OrderID           *string         `json:"orderId"`
	CustomerID        string          `json:"customerId"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	PaymentMethod     string          `json:"paymentMethod"`
	GatewayReference  string          `json:"gatewayReference,omitempty"`
	Status            string          `json:"status"`
	HeldAt            *time.Time      `json:"heldAt"`
	EscrowReleaseDate *time.Time      `json:"escrowReleaseDate"`
	TransactionFee    decimal.Decimal `json:"transactionFee"`
	ReceiptURL        string          `json:"receiptUrl,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

func toPayment(p *payment.Payment) Payment {
	return Payment{
		ID:                p.ID().String(),
		OrderID:           uuidPtr(p.OrderID()),
		CustomerID:        p.CustomerID().String(),
		Amount:            p.Amount().Decimal(),
		Currency:          p.Currency().String(),
		PaymentMethod:     p.Method(),
		GatewayReference:  p.GatewayReference(),
		Status:            p.Status().String(),
		HeldAt:            p.HeldAt(),
		EscrowReleaseDate: p.EscrowReleaseDate(),
		TransactionFee:    p.TransactionFee().Decimal(),
		ReceiptURL:        p.ReceiptURL(),
		Notes:             p.Notes(),
		CreatedAt:         p.CreatedAt(),
	}
}
