package queries

import (
	"tailorshop/internal/core/domain/services"
)

// ValidateMeasurementsQueryHandler is stateless and touches no storage.
type ValidateMeasurementsQueryHandler struct {
	validator services.MeasurementValidator
}

func NewValidateMeasurementsQueryHandler() ValidateMeasurementsQueryHandler {
	return ValidateMeasurementsQueryHandler{validator: services.NewMeasurementValidator()}
}

func (h ValidateMeasurementsQueryHandler) Handle(query ValidateMeasurementsQuery) (services.Report, error) {
	if err := query.Validate(); err != nil {
		return services.Report{}, err
	}
	return h.validator.Report(query.readings, query.weightLbs, query.unit), nil
}
