package measurement

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"
)

// ErrMeasurementSetIsNotConstructed is returned when a MeasurementSet was not
// created through NewMeasurementSet or RestoreMeasurementSet.
var ErrMeasurementSetIsNotConstructed = errors.New(
	"MeasurementSet must be created via NewMeasurementSet constructor",
)

// Source records who took the measurements.
type Source string

const (
	SourceSelf         Source = "self"
	SourceProfessional Source = "professional"
)

// ParseSource maps "" to SourceSelf.
func ParseSource(s string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case "", SourceSelf:
		return SourceSelf, nil
	case SourceProfessional:
		return SourceProfessional, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("source", fmt.Errorf("%q is not a measurement source", s))
	}
}

// Details is the client-editable content of a MeasurementSet. Readings are
// expressed in Unit and are converted to inches on the way in.
type Details struct {
	Name       string
	Unit       Unit
	Readings   map[Field]Value
	WeightLbs  Value
	Additional map[string]any
	Notes      string
	Source     Source
	MeasuredAt time.Time
}

// MeasurementSet is a named set of body readings owned by one user.
//
// Invariants:
//   - readings are stored in inches and pass ValidateMeasurement
//   - weight, when present, is positive
//   - at most one set per owner is the default; the swap is done by the
//     repository inside one transaction, the aggregate only carries the flag
type MeasurementSet struct {
	id         kernel.UUID
	ownerID    kernel.UUID
	name       string
	readings   map[Field]Value
	weightLbs  Value
	additional map[string]any
	notes      string
	isDefault  bool
	source     Source
	measuredAt time.Time
	createdAt  time.Time

	isConstructed bool
}

// NewMeasurementSet validates every reading in d.Unit and stores it in inches.
// A zero MeasuredAt defaults to now.
func NewMeasurementSet(id kernel.UUID, ownerID kernel.UUID, d Details, now time.Time) (*MeasurementSet, error) {
	set := &MeasurementSet{
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		set.setID(id),
		set.setOwner(ownerID),
		set.apply(d, now),
	); err != nil {
		return nil, err
	}

	return set, nil
}

// RestoreMeasurementSet rebuilds a persisted set. Readings are already in inches.
func RestoreMeasurementSet(
	id kernel.UUID,
	ownerID kernel.UUID,
	d Details,
	isDefault bool,
	createdAt time.Time,
) (*MeasurementSet, error) {
	d.Unit = Inches
	set := &MeasurementSet{
		isDefault:     isDefault,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		set.setID(id),
		set.setOwner(ownerID),
		set.apply(d, createdAt),
	); err != nil {
		return nil, err
	}

	return set, nil
}

// Validate ensures the set was built through a constructor.
func (m *MeasurementSet) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMeasurementSetIsNotConstructed
	}
	return nil
}

// ID returns the set's identifier.
func (m *MeasurementSet) ID() kernel.UUID {
	return m.id
}

// OwnerID returns the owning user.
func (m *MeasurementSet) OwnerID() kernel.UUID {
	return m.ownerID
}

func (m *MeasurementSet) Name() string {
	return m.name
}

// WeightLbs returns the weight in pounds.
func (m *MeasurementSet) WeightLbs() Value {
	return m.weightLbs
}

func (m *MeasurementSet) Notes() string {
	return m.notes
}

func (m *MeasurementSet) IsDefault() bool {
	return m.isDefault
}

func (m *MeasurementSet) Source() Source {
	return m.source
}

func (m *MeasurementSet) MeasuredAt() time.Time {
	return m.measuredAt
}

func (m *MeasurementSet) CreatedAt() time.Time {
	return m.createdAt
}

// Reading returns the stored reading for f in inches.
func (m *MeasurementSet) Reading(f Field) Value {
	return m.readings[f]
}

// Readings returns a copy of every body reading in inches, absent ones included.
func (m *MeasurementSet) Readings() map[Field]Value {
	out := make(map[Field]Value, len(BodyFields()))
	for _, f := range BodyFields() {
		out[f] = m.readings[f]
	}
	return out
}

// Additional returns a copy of the free-form measurements.
func (m *MeasurementSet) Additional() map[string]any {
	out := make(map[string]any, len(m.additional))
	for k, v := range m.additional {
		out[k] = v
	}
	return out
}

// OwnedBy reports whether userID owns the set.
func (m *MeasurementSet) OwnedBy(userID kernel.UUID) bool {
	return m.ownerID.IsEqual(userID)
}

// Update replaces the editable content. The default flag is left alone.
func (m *MeasurementSet) Update(d Details, now time.Time) error {
	next := *m
	if err := next.apply(d, now); err != nil {
		return err
	}
	*m = next
	return nil
}

// MarkDefault sets the default flag.
func (m *MeasurementSet) MarkDefault() {
	m.isDefault = true
}

// ClearDefault drops the default flag.
func (m *MeasurementSet) ClearDefault() {
	m.isDefault = false
}

func (m *MeasurementSet) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MeasurementSet) setOwner(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	m.ownerID = ownerID
	return nil
}

// apply validates d as a whole and only then mutates m.
func (m *MeasurementSet) apply(d Details, now time.Time) error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	if err := d.Unit.Validate(); err != nil {
		return err
	}

	source := d.Source
	if source == "" {
		source = SourceSelf
	}
	if _, err := ParseSource(string(source)); err != nil {
		return err
	}

	readings := make(map[Field]Value, len(d.Readings))
	var problems []error
	for f, v := range d.Readings {
		if !f.IsBodyField() {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				string(f), fmt.Errorf("%q is not a body measurement", f)))
			continue
		}
		if r := ValidateMeasurement(v, f, d.Unit); !r.IsValid {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(string(f), errors.New(r.Message)))
			continue
		}
		if v.IsPresent() {
			readings[f] = v.Convert(d.Unit, Inches)
		}
	}

	if w, ok := d.WeightLbs.Get(); ok && w <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("weight", errors.New(MessageNotPositive)))
	}

	if len(problems) > 0 {
		return errors.Join(problems...)
	}

	measuredAt := d.MeasuredAt
	if measuredAt.IsZero() {
		measuredAt = now
	}

	additional := make(map[string]any, len(d.Additional))
	for k, v := range d.Additional {
		additional[k] = v
	}

	m.name = name
	m.readings = readings
	m.weightLbs = d.WeightLbs
	m.additional = additional
	m.notes = d.Notes
	m.source = source
	m.measuredAt = measuredAt
	return nil
}
