package measurement

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Value is an optional reading. The zero value is absent.
//
// Absent covers everything a partially filled form can send for a field it does
// not know yet: a missing key, null, "", or text that is not a number.
// A present zero is a real reading and is rejected by ValidateMeasurement.
type Value struct {
	v       float64
	present bool
}

// Absent returns a Value with no reading.
func Absent() Value {
	return Value{}
}

// Of returns a present Value. NaN and infinities are treated as absent.
func Of(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{}
	}
	return Value{v: v, present: true}
}

// FromPtr maps nil to absent.
func FromPtr(v *float64) Value {
	if v == nil {
		return Value{}
	}
	return Of(*v)
}

// ParseValue reads form input leniently: blank or non-numeric text is absent.
func ParseValue(raw string) Value {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Value{}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Value{}
	}
	return Of(f)
}

// Get returns the reading and whether it is present.
func (v Value) Get() (float64, bool) {
	return v.v, v.present
}

// IsPresent reports whether a reading exists.
func (v Value) IsPresent() bool {
	return v.present
}

// Ptr returns nil for absent values, for persistence and JSON responses.
func (v Value) Ptr() *float64 {
	if !v.present {
		return nil
	}
	f := v.v
	return &f
}

// Convert converts a present reading between units and keeps absent values absent.
// A present zero stays a present zero.
func (v Value) Convert(from Unit, to Unit) Value {
	if !v.present {
		return v
	}
	if v.v == 0 {
		return v
	}
	return Of(ConvertUnit(v.v, from, to))
}

// MarshalJSON writes null for absent values.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.present {
		return []byte("null"), nil
	}
	return json.Marshal(v.v)
}

// UnmarshalJSON accepts numbers, numeric strings, "", and null.
// Anything else decodes to absent rather than failing the whole request body.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*v = Of(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = ParseValue(s)
		return nil
	}

	*v = Value{}
	return nil
}
