package http

import (
	"net/http"
	"time"

	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/application/usecases/queries"
	"tailorshop/internal/core/domain/model/measurement"

	"github.com/labstack/echo/v4"
)

// MeasurementSetRequest is the body of create and update. Readings are in Unit.
type MeasurementSetRequest struct {
	Name         string                       `json:"name"`
	Unit         string                       `json:"unit"`
	Measurements map[string]measurement.Value `json:"measurements"`
	Weight       measurement.Value            `json:"weight"`
	Additional   map[string]any               `json:"additional"`
	Notes        string                       `json:"notes"`
	Source       string                       `json:"source"`
	MeasuredAt   *time.Time                   `json:"measuredAt"`
	IsDefault    *bool                        `json:"isDefault"`
}

func (r MeasurementSetRequest) details() (measurement.Details, error) {
	unit, err := measurement.ParseUnit(r.Unit)
	if err != nil {
		return measurement.Details{}, err
	}
	source, err := measurement.ParseSource(r.Source)
	if err != nil {
		return measurement.Details{}, err
	}

	readings := make(map[measurement.Field]measurement.Value, len(r.Measurements))
	for name, v := range r.Measurements {
		readings[measurement.Field(name)] = v
	}

	d := measurement.Details{
		Name:       r.Name,
		Unit:       unit,
		Readings:   readings,
		WeightLbs:  r.Weight,
		Additional: r.Additional,
		Notes:      r.Notes,
		Source:     source,
	}
	if r.MeasuredAt != nil {
		d.MeasuredAt = *r.MeasuredAt
	}
	return d, nil
}

// ListMeasurementSets handles GET /api/measurements.
func (s *Server) ListMeasurementSets(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	query, err := queries.NewMeasurementSetsQuery(actor, nil)
	if err != nil {
		return err
	}
	sets, err := s.h.ListMeasurementSets.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMeasurementSets(sets))
}

// GetMeasurementSet handles GET /api/measurements/:id.
func (s *Server) GetMeasurementSet(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewMeasurementSetsQuery(actor, &id)
	if err != nil {
		return err
	}
	set, err := s.h.GetMeasurementSet.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMeasurementSet(set))
}

// CreateMeasurementSet handles POST /api/measurements.
func (s *Server) CreateMeasurementSet(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req MeasurementSetRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	details, err := req.details()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateMeasurementSetCommand(actor, details, deref(req.IsDefault))
	if err != nil {
		return err
	}
	res, err := s.h.CreateMeasurementSet.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, MeasurementSetWithReport{
		MeasurementSet: toMeasurementSet(res.Set),
		Report:         toReport(res.Report),
	})
}

// UpdateMeasurementSet handles PUT /api/measurements/:id. An absent
// isDefault keeps the current flag.
func (s *Server) UpdateMeasurementSet(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req MeasurementSetRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	details, err := req.details()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateMeasurementSetCommand(actor, id, details, req.IsDefault)
	if err != nil {
		return err
	}
	res, err := s.h.UpdateMeasurementSet.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MeasurementSetWithReport{
		MeasurementSet: toMeasurementSet(res.Set),
		Report:         toReport(res.Report),
	})
}

// DeleteMeasurementSet handles DELETE /api/measurements/:id.
func (s *Server) DeleteMeasurementSet(c echo.Context) error {
	cmd, err := s.measurementSetCommand(c)
	if err != nil {
		return err
	}
	if err = s.h.DeleteMeasurementSet.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SetDefaultMeasurementSet handles PUT /api/measurements/:id/default.
func (s *Server) SetDefaultMeasurementSet(c echo.Context) error {
	cmd, err := s.measurementSetCommand(c)
	if err != nil {
		return err
	}
	set, err := s.h.SetDefaultMeasurementSet.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMeasurementSet(set))
}

func (s *Server) measurementSetCommand(c echo.Context) (commands.MeasurementSetCommand, error) {
	actor, err := principalFrom(c)
	if err != nil {
		return commands.MeasurementSetCommand{}, err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return commands.MeasurementSetCommand{}, err
	}
	return commands.NewMeasurementSetCommand(actor, id)
}

type ValidateMeasurementsRequest struct {
	Unit         string                       `json:"unit"`
	Measurements map[string]measurement.Value `json:"measurements"`
	Weight       measurement.Value            `json:"weight"`
}

// ValidateMeasurements handles POST /api/measurements/validate. Nothing is stored.
func (s *Server) ValidateMeasurements(c echo.Context) error {
	var req ValidateMeasurementsRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	unit, err := measurement.ParseUnit(req.Unit)
	if err != nil {
		return err
	}

	readings := make(map[measurement.Field]measurement.Value, len(req.Measurements))
	for name, v := range req.Measurements {
		readings[measurement.Field(name)] = v
	}
	query, err := queries.NewValidateMeasurementsQuery(readings, req.Weight, unit)
	if err != nil {
		return err
	}
	report, err := s.h.ValidateMeasurements.Handle(query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReport(report))
}

type ConvertRequest struct {
	Value float64 `json:"value"`
	From  string  `json:"from"`
	To    string  `json:"to"`
}

type ConvertResponse struct {
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Formatted string  `json:"formatted"`
}

// ConvertMeasurement handles POST /api/measurements/convert.
func (s *Server) ConvertMeasurement(c echo.Context) error {
	var req ConvertRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	from, err := measurement.ParseUnit(req.From)
	if err != nil {
		return err
	}
	to, err := measurement.ParseUnit(req.To)
	if err != nil {
		return err
	}

	v := measurement.ConvertUnit(req.Value, from, to)
	return c.JSON(http.StatusOK, ConvertResponse{
		Value:     v,
		Unit:      to.String(),
		Formatted: measurement.FormatMeasurement(measurement.Of(v), to),
	})
}

type SuggestionRequest struct {
	Field string `json:"field"`
	Size  string `json:"size"`
	Unit  string `json:"unit"`
}

type SuggestionResponse struct {
	Field string   `json:"field"`
	Size  string   `json:"size"`
	Unit  string   `json:"unit"`
	Value *float64 `json:"value"`
}

// SuggestMeasurement handles POST /api/measurements/suggestion. Fields missing
// from the size chart answer with a null value.
func (s *Server) SuggestMeasurement(c echo.Context) error {
	var req SuggestionRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	unit, err := measurement.ParseUnit(req.Unit)
	if err != nil {
		return err
	}

	res := SuggestionResponse{Field: req.Field, Size: req.Size, Unit: unit.String()}
	if v, ok := measurement.Suggestion(measurement.Field(req.Field), measurement.Size(req.Size), unit); ok {
		res.Value = &v
	}
	return c.JSON(http.StatusOK, res)
}

type BMIRequest struct {
	Height measurement.Value `json:"height"`
	Unit   string            `json:"unit"`
	Weight measurement.Value `json:"weight"`
}

type BMIResponse struct {
	BMI            float64 `json:"bmi"`
	Category       string  `json:"category"`
	HeightInMeters float64 `json:"heightInMeters"`
	WeightInKg     float64 `json:"weightInKg"`
}

// CalculateBMI handles POST /api/measurements/bmi. The body is null when
// height or weight is missing or not positive.
func (s *Server) CalculateBMI(c echo.Context) error {
	var req BMIRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	unit, err := measurement.ParseUnit(req.Unit)
	if err != nil {
		return err
	}

	bmi, ok := measurement.CalculateBMI(req.Height, unit, req.Weight)
	if !ok {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, BMIResponse{
		BMI:            bmi.Value,
		Category:       bmi.Category,
		HeightInMeters: bmi.HeightInMeters,
		WeightInKg:     bmi.WeightInKg,
	})
}
