package measurement

import (
	"fmt"
	"math"
)

// MessageNotPositive is returned for present readings that are zero or negative.
const MessageNotPositive = "Measurement must be positive"

// Result is the outcome of validating a single reading.
type Result struct {
	IsValid bool
	Message string
}

// ValidateMeasurement checks one reading given in unit against the plausible
// range of field.
//
// Rules, in order:
//   - absent values are valid (fields are optional)
//   - present values <= 0 are invalid with MessageNotPositive
//   - fields without a plausible range are valid
//   - values outside the range (compared in inches) are invalid; the message
//     gives the range in inches and in the caller's unit
//
// Example:
//
//	r := ValidateMeasurement(Of(40), Waist, Centimeters)
//	// r.IsValid == false
//	// r.Message == `waist should be between 20" and 60" (50.8cm - 152.4cm)`
func ValidateMeasurement(value Value, field Field, unit Unit) Result {
	v, ok := value.Get()
	if !ok {
		return Result{IsValid: true}
	}
	if v <= 0 {
		return Result{IsValid: false, Message: MessageNotPositive}
	}

	r, ok := PlausibleRange(field)
	if !ok {
		return Result{IsValid: true}
	}

	inches := ConvertUnit(v, unit, Inches)
	if r.Contains(inches) {
		return Result{IsValid: true}
	}

	return Result{
		IsValid: false,
		Message: fmt.Sprintf(`%s should be between %s" and %s" (%s%s - %s%s)`,
			field,
			trimFloat(r.Min), trimFloat(r.Max),
			formatFloat(ConvertUnit(r.Min, Inches, unit), unit), unit.Symbol(),
			formatFloat(ConvertUnit(r.Max, Inches, unit), unit), unit.Symbol(),
		),
	}
}

// Size is a ready-to-wear size used for suggestions.
type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

// sizeChart holds reference readings in inches.
var sizeChart = map[Size]map[Field]float64{
	SizeXS:  {Bust: 32, Waist: 24, Hip: 34},
	SizeS:   {Bust: 34, Waist: 26, Hip: 36},
	SizeM:   {Bust: 36, Waist: 28, Hip: 38},
	SizeL:   {Bust: 38, Waist: 30, Hip: 40},
	SizeXL:  {Bust: 40, Waist: 32, Hip: 42},
	SizeXXL: {Bust: 42, Waist: 34, Hip: 44},
}

// Suggestion returns the size-chart reading for field converted to unit.
// The second result is false when the chart has no entry.
func Suggestion(field Field, size Size, unit Unit) (float64, bool) {
	bySize, ok := sizeChart[size]
	if !ok {
		return 0, false
	}
	inches, ok := bySize[field]
	if !ok {
		return 0, false
	}
	return ConvertUnit(inches, Inches, unit), true
}

// BMI categories.
const (
	CategoryUnderweight = "Underweight"
	CategoryNormal      = "Normal weight"
	CategoryOverweight  = "Overweight"
	CategoryObese       = "Obese"
)

const kilogramsPerPound = 0.453592

// BMI is the rounded outcome of CalculateBMI.
type BMI struct {
	Value          float64
	Category       string
	HeightInMeters float64
	WeightInKg     float64
}

// CalculateBMI computes body mass index from a height in heightUnit and a weight
// in pounds. It returns false when either reading is absent or not positive.
//
// Rounding: bmi to 1 decimal, meters to 2, kilograms to 1.
//
// Example:
//
//	bmi, _ := CalculateBMI(Of(68), Inches, Of(150))
//	// bmi.Value == 22.8, bmi.Category == "Normal weight"
func CalculateBMI(height Value, heightUnit Unit, weightLbs Value) (BMI, bool) {
	h, okH := height.Get()
	w, okW := weightLbs.Get()
	if !okH || !okW || h <= 0 || w <= 0 {
		return BMI{}, false
	}

	meters := ConvertUnit(h, heightUnit, Meters)
	if meters <= 0 {
		return BMI{}, false
	}
	kg := w * kilogramsPerPound
	bmi := kg / (meters * meters)

	return BMI{
		Value:          round(bmi, 1),
		Category:       bmiCategory(bmi),
		HeightInMeters: round(meters, 2),
		WeightInKg:     round(kg, 1),
	}, true
}

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// trimFloat prints range bounds the way they are written in the tables (20, 12.5).
func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
