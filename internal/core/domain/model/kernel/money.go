package kernel

import (
	"fmt"

	"tailorshop/internal/pkg/errs"
	"tailorshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when a Money value was not built through a constructor.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or ZeroMoney")

// Money is a non-negative decimal amount in the order's currency. Prices,
// delivery fees, payment amounts and transaction fees all use it so that
// "tailoring + material + delivery = total" holds exactly.
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// ZeroMoney returns a constructed zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// NewMoney rejects negative amounts and rounds to cents.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"amount", amount.String(), 0, "unbounded", fmt.Errorf("money cannot be negative"))
	}

	return Money{amount: amount.Round(2), guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal string such as "129.99".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// MoneyFromFloat converts a finite float, as decoded from JSON request bodies.
func MoneyFromFloat(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

// Validate returns ErrMoneyIsNotConstructed for zero values.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Decimal exposes the amount for persistence and arithmetic at the edges.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// MulQuantity multiplies a unit price by a non-negative quantity (yards of fabric).
func (m Money) MulQuantity(quantity decimal.Decimal) (Money, error) {
	return NewMoney(m.amount.Mul(quantity))
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Equal compares amounts numerically (1.5 equals 1.50).
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// MinorUnits returns the amount in cents, as charged by the payment gateway.
func (m Money) MinorUnits() int64 {
	return m.amount.Shift(2).Round(0).IntPart()
}

// String renders the amount with two decimals.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
