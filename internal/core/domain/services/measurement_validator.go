package services

import (
	"fmt"
	"math"

	"tailorshop/internal/core/domain/model/measurement"
)

// Overall is the verdict of a validation report.
type Overall string

const (
	OverallValid   Overall = "valid"
	OverallWarning Overall = "warning"
	OverallInvalid Overall = "invalid"
)

// Severity tags a report entry.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// CrossValidationField names entries that concern a pair of fields.
const CrossValidationField = "cross-validation"

// Cross-field messages.
const (
	MessageWaistOverHip      = "Waist measurement is larger than hip measurement, which is unusual"
	MessageBustUnderWaist    = "Bust measurement is smaller than waist measurement, please verify"
	MessageInseamOverOutseam = "Inseam is longer than outseam, which is not possible"
	MessageThighUnderCalf    = "Thigh measurement is smaller than calf measurement, please verify"
)

// Issue is a single error or warning in a report.
type Issue struct {
	Field    string
	Message  string
	Severity Severity
}

// Suggestion is advice that does not affect the verdict.
type Suggestion struct {
	Type    string
	Message string
}

// FieldDetail describes one present reading.
type FieldDetail struct {
	Value          float64
	IsValid        bool
	Message        string
	InRange        bool
	InTypicalRange bool
}

// Report is the outcome of MeasurementValidator.Report.
type Report struct {
	Overall     Overall
	Issues      []Issue
	Warnings    []Issue
	Suggestions []Suggestion
	Score       int
	Details     map[measurement.Field]FieldDetail
}

// HasErrors reports whether the set must be rejected.
func (r Report) HasErrors() bool {
	return r.Overall == OverallInvalid
}

type crossCheck struct {
	a, b     measurement.Field
	fails    func(a, b float64) bool
	message  string
	severity Severity
}

var crossChecks = []crossCheck{
	{measurement.Waist, measurement.Hip, func(w, h float64) bool { return w > h }, MessageWaistOverHip, SeverityWarning},
	{measurement.Bust, measurement.Waist, func(b, w float64) bool { return b < w }, MessageBustUnderWaist, SeverityWarning},
	{measurement.Inseam, measurement.Outseam, func(i, o float64) bool { return i > o }, MessageInseamOverOutseam, SeverityError},
	{measurement.Thigh, measurement.Calf, func(t, c float64) bool { return t < c }, MessageThighUnderCalf, SeverityWarning},
}

// MeasurementValidator produces whole-set reports on top of the per-field engine.
type MeasurementValidator struct{}

func NewMeasurementValidator() MeasurementValidator {
	return MeasurementValidator{}
}

// Report validates readings given in inches. displayUnit only affects the
// wording of typical-range warnings.
//
// Every present field is checked against its plausible range (an error when
// outside) and against its typical range (a warning when outside, only for
// fields that passed). The common range is reported per field as InRange. Cross-field checks then run on present non-zero
// readings. The score is the share of present fields that passed, rounded to
// a whole percent.
func (v MeasurementValidator) Report(
	readings map[measurement.Field]measurement.Value,
	weightLbs measurement.Value,
	displayUnit measurement.Unit,
) Report {
	report := Report{
		Overall: OverallValid,
		Details: make(map[measurement.Field]FieldDetail),
	}

	var validCount, totalCount int

	for _, field := range measurement.BodyFields() {
		value, ok := readings[field].Get()
		if !ok {
			continue
		}
		totalCount++

		result := measurement.ValidateMeasurement(measurement.Of(value), field, measurement.Inches)
		detail := FieldDetail{Value: value, IsValid: result.IsValid, Message: result.Message}
		if common, ok := measurement.CommonRange(field); ok {
			detail.InRange = common.Contains(value)
		}
		if typical, ok := measurement.TypicalRange(field); ok {
			detail.InTypicalRange = typical.Contains(value)
		}
		report.Details[field] = detail

		if result.IsValid {
			validCount++
		} else {
			report.Issues = append(report.Issues, Issue{
				Field:    string(field),
				Message:  result.Message,
				Severity: SeverityError,
			})
			continue
		}

		if !detail.InTypicalRange {
			report.Warnings = append(report.Warnings, Issue{
				Field: string(field),
				Message: fmt.Sprintf("%s measurement (%s %s) is outside typical range",
					field,
					measurement.FormatMeasurement(measurement.Of(value).Convert(measurement.Inches, displayUnit), displayUnit),
					displayUnit.Symbol()),
				Severity: SeverityWarning,
			})
		}
	}

	for _, c := range crossChecks {
		a, okA := nonZero(readings[c.a])
		b, okB := nonZero(readings[c.b])
		if !okA || !okB || !c.fails(a, b) {
			continue
		}

		issue := Issue{Field: CrossValidationField, Message: c.message, Severity: c.severity}
		if c.severity == SeverityError {
			report.Issues = append(report.Issues, issue)
		} else {
			report.Warnings = append(report.Warnings, issue)
		}
	}

	if totalCount > 0 {
		report.Score = int(math.Round(float64(validCount) / float64(totalCount) * 100))
	}

	switch {
	case len(report.Issues) > 0:
		report.Overall = OverallInvalid
	case len(report.Warnings) > 0:
		report.Overall = OverallWarning
	}

	height, okH := nonZero(readings[measurement.Height])
	weight, okW := nonZero(weightLbs)
	if okH && okW {
		bmi := weight * 703 / (height * height)
		if bmi < 18.5 || bmi > 30 {
			report.Suggestions = append(report.Suggestions, Suggestion{
				Type:    "health",
				Message: fmt.Sprintf("BMI of %.1f suggests consulting with a healthcare provider for optimal measurements", bmi),
			})
		}
	}

	return report
}

// ReportSet is Report over a stored set.
func (v MeasurementValidator) ReportSet(set *measurement.MeasurementSet, displayUnit measurement.Unit) Report {
	return v.Report(set.Readings(), set.WeightLbs(), displayUnit)
}

func nonZero(v measurement.Value) (float64, bool) {
	f, ok := v.Get()
	if !ok || f == 0 {
		return 0, false
	}
	return f, true
}
