package order

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"
)

// Pricing is the price breakdown of an order. Total is always the exact sum of
// the three parts.
type Pricing struct {
	tailoring kernel.Money
	material  kernel.Money
	delivery  kernel.Money
}

// NewPricing requires a positive tailoring price. Material and delivery may be zero.
func NewPricing(tailoring kernel.Money, material kernel.Money, delivery kernel.Money) (Pricing, error) {
	if err := errors.Join(tailoring.Validate(), material.Validate(), delivery.Validate()); err != nil {
		return Pricing{}, err
	}
	if !tailoring.IsPositive() {
		return Pricing{}, errs.NewValueIsOutOfRangeError("tailoringPrice", tailoring.String(), "0.01", "unbounded")
	}
	return Pricing{tailoring: tailoring, material: material, delivery: delivery}, nil
}

func (p Pricing) Tailoring() kernel.Money {
	return p.tailoring
}

func (p Pricing) Material() kernel.Money {
	return p.material
}

func (p Pricing) Delivery() kernel.Money {
	return p.delivery
}

// Total returns tailoring + material + delivery.
func (p Pricing) Total() kernel.Money {
	return p.tailoring.Add(p.material).Add(p.delivery)
}

// Validate reports whether the pricing came from NewPricing.
func (p Pricing) Validate() error {
	return errors.Join(p.tailoring.Validate(), p.material.Validate(), p.delivery.Validate())
}
