package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailorshop/internal/core/domain/model/measurement"
	"tailorshop/internal/core/domain/services"
)

func readings(kv map[measurement.Field]float64) map[measurement.Field]measurement.Value {
	out := make(map[measurement.Field]measurement.Value, len(kv))
	for f, v := range kv {
		out[f] = measurement.Of(v)
	}
	return out
}

func TestMeasurementValidator_Report(t *testing.T) {
	v := services.NewMeasurementValidator()

	t.Run("empty set is valid with zero score", func(t *testing.T) {
		r := v.Report(nil, measurement.Absent(), measurement.Inches)

		assert.Equal(t, services.OverallValid, r.Overall)
		assert.Equal(t, 0, r.Score)
		assert.Empty(t, r.Details)
	})

	t.Run("typical readings are valid", func(t *testing.T) {
		r := v.Report(readings(map[measurement.Field]float64{
			measurement.Neck:  15,
			measurement.Bust:  36,
			measurement.Waist: 30,
			measurement.Hip:   38,
		}), measurement.Absent(), measurement.Inches)

		assert.Equal(t, services.OverallValid, r.Overall)
		assert.Equal(t, 100, r.Score)
		assert.Empty(t, r.Issues)
		assert.Empty(t, r.Warnings)
		assert.True(t, r.Details[measurement.Waist].InTypicalRange)
		assert.True(t, r.Details[measurement.Waist].InRange)
	})

	t.Run("waist larger than hip warns", func(t *testing.T) {
		r := v.Report(readings(map[measurement.Field]float64{
			measurement.Waist: 35,
			measurement.Hip:   34,
		}), measurement.Absent(), measurement.Inches)

		assert.Equal(t, services.OverallWarning, r.Overall)
		require.Len(t, r.Warnings, 1)
		assert.Equal(t, services.Issue{
			Field:    services.CrossValidationField,
			Message:  services.MessageWaistOverHip,
			Severity: services.SeverityWarning,
		}, r.Warnings[0])
	})

	t.Run("inseam longer than outseam is an error", func(t *testing.T) {
		r := v.Report(readings(map[measurement.Field]float64{
			measurement.Inseam:  35,
			measurement.Outseam: 33,
		}), measurement.Absent(), measurement.Inches)

		assert.Equal(t, services.OverallInvalid, r.Overall)
		assert.True(t, r.HasErrors())
		assert.Equal(t, 100, r.Score)
		require.Len(t, r.Issues, 1)
		assert.Equal(t, services.MessageInseamOverOutseam, r.Issues[0].Message)
		assert.Len(t, r.Warnings, 2, "both readings are outside their typical ranges")
	})

	t.Run("implausible field lowers the score without a typical warning", func(t *testing.T) {
		r := v.Report(readings(map[measurement.Field]float64{
			measurement.Neck:  30,
			measurement.Waist: 30,
		}), measurement.Absent(), measurement.Inches)

		assert.Equal(t, services.OverallInvalid, r.Overall)
		assert.Equal(t, 50, r.Score)
		require.Len(t, r.Issues, 1)
		assert.Equal(t, `neck should be between 10" and 25" (10.00in - 25.00in)`, r.Issues[0].Message)
		assert.Empty(t, r.Warnings)
		assert.False(t, r.Details[measurement.Neck].IsValid)
	})

	t.Run("typical range warning uses the display unit", func(t *testing.T) {
		r := v.Report(readings(map[measurement.Field]float64{
			measurement.Neck: 18,
		}), measurement.Absent(), measurement.Centimeters)

		require.Len(t, r.Warnings, 1)
		assert.Equal(t, "neck measurement (45.7 cm) is outside typical range", r.Warnings[0].Message)
		assert.Equal(t, "neck", r.Warnings[0].Field)
	})

	t.Run("present zero is an error and skips cross checks", func(t *testing.T) {
		r := v.Report(readings(map[measurement.Field]float64{
			measurement.Waist: 0,
			measurement.Hip:   38,
		}), measurement.Absent(), measurement.Inches)

		assert.Equal(t, services.OverallInvalid, r.Overall)
		require.Len(t, r.Issues, 1)
		assert.Equal(t, measurement.MessageNotPositive, r.Issues[0].Message)
		assert.Equal(t, 50, r.Score)
	})

	t.Run("low bmi adds a suggestion only", func(t *testing.T) {
		r := v.Report(readings(map[measurement.Field]float64{
			measurement.Height: 68,
		}), measurement.Of(100), measurement.Inches)

		assert.Equal(t, services.OverallValid, r.Overall)
		require.Len(t, r.Suggestions, 1)
		assert.Equal(t, "health", r.Suggestions[0].Type)
		assert.Equal(t,
			"BMI of 15.2 suggests consulting with a healthcare provider for optimal measurements",
			r.Suggestions[0].Message)
	})

	t.Run("normal bmi adds nothing", func(t *testing.T) {
		r := v.Report(readings(map[measurement.Field]float64{
			measurement.Height: 68,
		}), measurement.Of(150), measurement.Inches)

		assert.Empty(t, r.Suggestions)
	})
}
