// Package measurement is the measurement engine of the marketplace together
// with the MeasurementSet aggregate it feeds.
//
// The engine is a set of pure functions:
//   - ConvertUnit / Value.Convert: inches, centimeters, feet and meters through an inch base
//   - FormatMeasurement: display precision per unit
//   - ValidateMeasurement: per-field plausibility check with a display-unit message
//   - Suggestion: size-chart lookup for bust, waist and hip
//   - CalculateBMI: body mass index with category
//
// The engine never fails on malformed numbers. Non-numeric or missing input is
// carried as an absent Value and treated as "no opinion". Absent and an explicit
// zero are different: an explicit zero is rejected as non-positive.
//
// MeasurementSet stores every reading canonically in inches (weight in pounds)
// and carries the per-owner default flag.
package measurement
