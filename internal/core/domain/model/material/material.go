// Package material holds the fabric catalogue a tailor sells by the yard.
package material

import (
	"errors"
	"fmt"
	"strings"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrMaterialIsNotConstructed = errors.New("Material must be created via NewMaterial constructor")

// ErrInsufficientStock is returned when an order asks for more yards than are left.
var ErrInsufficientStock = fmt.Errorf("%w: insufficient material stock", errs.ErrValueIsInvalid)

// Details is the descriptive part of a Material.
type Details struct {
	Name        string
	Description string
	Type        string
	Color       string
	Pattern     string
	ImageURL    string
}

// Material is a fabric offered by one tailor. Quantity is measured in yards and
// never goes negative.
type Material struct {
	id                kernel.UUID
	tailorID          kernel.UUID
	details           Details
	pricePerYard      kernel.Money
	quantityAvailable decimal.Decimal
	isAvailable       bool

	isConstructed bool
}

// NewMaterial creates an available material.
func NewMaterial(
	id kernel.UUID,
	tailorID kernel.UUID,
	details Details,
	pricePerYard kernel.Money,
	quantity decimal.Decimal,
) (*Material, error) {
	m := &Material{
		isAvailable:   true,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setTailorID(tailorID),
		m.setDetails(details),
		m.setPrice(pricePerYard),
		m.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMaterial rebuilds a persisted material.
func RestoreMaterial(
	id kernel.UUID,
	tailorID kernel.UUID,
	details Details,
	pricePerYard kernel.Money,
	quantity decimal.Decimal,
	isAvailable bool,
) (*Material, error) {
	m, err := NewMaterial(id, tailorID, details, pricePerYard, quantity)
	if err != nil {
		return nil, err
	}
	m.isAvailable = isAvailable
	return m, nil
}

func (m *Material) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMaterialIsNotConstructed
	}
	return nil
}

func (m *Material) ID() kernel.UUID {
	return m.id
}

func (m *Material) TailorID() kernel.UUID {
	return m.tailorID
}

func (m *Material) Details() Details {
	return m.details
}

func (m *Material) PricePerYard() kernel.Money {
	return m.pricePerYard
}

// QuantityAvailable is in yards.
func (m *Material) QuantityAvailable() decimal.Decimal {
	return m.quantityAvailable
}

func (m *Material) IsAvailable() bool {
	return m.isAvailable
}

// BelongsTo reports whether the material is sold by tailorID.
func (m *Material) BelongsTo(tailorID kernel.UUID) bool {
	return m.tailorID.IsEqual(tailorID)
}

// SetAvailability hides or shows the material in the catalogue.
func (m *Material) SetAvailability(available bool) {
	m.isAvailable = available
}

// Update replaces the description and price.
func (m *Material) Update(details Details, pricePerYard kernel.Money) error {
	next := *m
	if err := errors.Join(next.setDetails(details), next.setPrice(pricePerYard)); err != nil {
		return err
	}
	*m = next
	return nil
}

// SetQuantity replaces the stock count. It may not be negative.
func (m *Material) SetQuantity(quantity decimal.Decimal) error {
	return m.setQuantity(quantity)
}

// AdjustQuantity adds delta yards (negative to remove). The result must stay >= 0.
func (m *Material) AdjustQuantity(delta decimal.Decimal) error {
	next := m.quantityAvailable.Add(delta)
	if next.IsNegative() {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"quantityAvailable", next.String(), 0, "unbounded",
			fmt.Errorf("cannot remove %s yards, %s available", delta.Neg(), m.quantityAvailable))
	}
	m.quantityAvailable = next
	return nil
}

// Reserve prices quantity yards and takes them out of stock.
func (m *Material) Reserve(quantity decimal.Decimal) (kernel.Money, error) {
	if !quantity.IsPositive() {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%s is not greater than 0", quantity))
	}
	if !m.isAvailable {
		return kernel.Money{}, fmt.Errorf("%w: material %s is not available", ErrInsufficientStock, m.id)
	}
	if quantity.GreaterThan(m.quantityAvailable) {
		return kernel.Money{}, fmt.Errorf("%w: requested %s yards, %s available",
			ErrInsufficientStock, quantity, m.quantityAvailable)
	}

	price, err := m.pricePerYard.MulQuantity(quantity)
	if err != nil {
		return kernel.Money{}, err
	}
	m.quantityAvailable = m.quantityAvailable.Sub(quantity)
	return price, nil
}

func (m *Material) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Material) setTailorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.tailorID = id
	return nil
}

func (m *Material) setDetails(d Details) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Type = strings.TrimSpace(d.Type)
	if err := errors.Join(required("name", d.Name), required("type", d.Type)); err != nil {
		return err
	}
	m.details = d
	return nil
}

func (m *Material) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.pricePerYard = price
	return nil
}

func (m *Material) setQuantity(q decimal.Decimal) error {
	if q.IsNegative() {
		return errs.NewValueIsOutOfRangeError("quantityAvailable", q.String(), 0, "unbounded")
	}
	m.quantityAvailable = q
	return nil
}

func required(name string, v string) error {
	if v == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
