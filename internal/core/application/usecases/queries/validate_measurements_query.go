package queries

import (
	"errors"

	"tailorshop/internal/core/domain/model/measurement"
	"tailorshop/internal/pkg/guard"
)

var ErrValidateMeasurementsQueryIsNotConstructed = errors.New(
	"ValidateMeasurementsQuery must be created via NewValidateMeasurementsQuery constructor",
)

// ValidateMeasurementsQuery checks readings without storing them. Readings are
// given in unit; unknown field names are ignored.
type ValidateMeasurementsQuery struct { //nolint:recvcheck //using for validation
	readings  map[measurement.Field]measurement.Value
	weightLbs measurement.Value
	unit      measurement.Unit

	guard guard.ConstructorGuard
}

func NewValidateMeasurementsQuery(
	readings map[measurement.Field]measurement.Value,
	weightLbs measurement.Value,
	unit measurement.Unit,
) (ValidateMeasurementsQuery, error) {
	if err := unit.Validate(); err != nil {
		return ValidateMeasurementsQuery{}, err
	}

	inches := make(map[measurement.Field]measurement.Value, len(readings))
	for f, v := range readings {
		if f.IsBodyField() {
			inches[f] = v.Convert(unit, measurement.Inches)
		}
	}

	return ValidateMeasurementsQuery{
		readings:  inches,
		weightLbs: weightLbs,
		unit:      unit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ValidateMeasurementsQuery) Validate() error {
	return q.guard.Validate(ErrValidateMeasurementsQueryIsNotConstructed)
}
