package measurement

import (
	"fmt"
	"math"
	"strings"

	"tailorshop/internal/pkg/errs"
)

// Unit is a length unit accepted from clients.
type Unit int

const (
	// UnknownUnit is the zero value and is never accepted.
	UnknownUnit Unit = iota
	Inches
	Centimeters
	Feet
	Meters
)

// inchesPerUnit holds the multiplier from one unit into the inch base.
var inchesPerUnit = map[Unit]float64{
	Inches:      1,
	Centimeters: 0.393701,
	Feet:        12,
	Meters:      39.3701,
}

var unitNames = map[Unit]string{
	Inches:      "inches",
	Centimeters: "cm",
	Feet:        "feet",
	Meters:      "meters",
}

var unitSymbols = map[Unit]string{
	Inches:      "in",
	Centimeters: "cm",
	Feet:        "ft",
	Meters:      "m",
}

var unitAliases = map[string]Unit{
	"inches":      Inches,
	"inch":        Inches,
	"in":          Inches,
	"cm":          Centimeters,
	"centimeters": Centimeters,
	"centimetres": Centimeters,
	"feet":        Feet,
	"foot":        Feet,
	"ft":          Feet,
	"meters":      Meters,
	"metres":      Meters,
	"m":           Meters,
}

// ParseUnit accepts the wire names ("inches", "cm", "feet", "meters") and their
// common aliases, case-insensitively. An empty string means Inches.
func ParseUnit(s string) (Unit, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Inches, nil
	}
	if u, ok := unitAliases[s]; ok {
		return u, nil
	}
	return UnknownUnit, errs.NewValueIsInvalidErrorWithCause("unit", fmt.Errorf("%q is not a supported unit", s))
}

// String returns the wire name of the unit.
func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return "unknown"
}

// Symbol returns the short display suffix ("in", "cm", "ft", "m").
func (u Unit) Symbol() string {
	return unitSymbols[u]
}

// Validate rejects UnknownUnit and out-of-range values.
func (u Unit) Validate() error {
	if _, ok := inchesPerUnit[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("unit", fmt.Errorf("%d is not a valid unit", u))
	}
	return nil
}

// decimals is the display precision: metric units to one decimal, imperial to two.
func (u Unit) decimals() int {
	if u == Centimeters || u == Meters {
		return 1
	}
	return 2
}

// ConvertUnit converts value between length units through the inch base.
//
// Contract:
//   - from == to returns value unchanged, without arithmetic
//   - 0, NaN and ±Inf return 0
//   - unknown units return 0
//
// Example:
//
//	ConvertUnit(10, Inches, Centimeters) // 25.4
//	ConvertUnit(180, Centimeters, Feet)  // ~5.906
func ConvertUnit(value float64, from Unit, to Unit) float64 {
	if value == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	if from == to {
		return value
	}

	fromFactor, okFrom := inchesPerUnit[from]
	toFactor, okTo := inchesPerUnit[to]
	if !okFrom || !okTo {
		return 0
	}

	return value * fromFactor / toFactor
}

// FormatMeasurement renders a reading with the unit's display precision:
// one decimal for centimeters and meters, two for inches and feet.
// Absent values render as the empty string.
func FormatMeasurement(value Value, unit Unit) string {
	v, ok := value.Get()
	if !ok {
		return ""
	}
	return formatFloat(v, unit)
}

func formatFloat(v float64, unit Unit) string {
	return fmt.Sprintf("%.*f", unit.decimals(), v)
}
