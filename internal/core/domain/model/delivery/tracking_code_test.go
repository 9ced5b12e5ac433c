package delivery_test

import (
	"regexp"
	"testing"

	"tailorshop/internal/core/domain/model/delivery"
	"tailorshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingCode(t *testing.T) {
	format := regexp.MustCompile(`^[A-Z0-9]{8}$`)

	for range 100 {
		code := delivery.NewTrackingCode()
		assert.Regexp(t, format, code.String())
	}
}

func TestParseTrackingCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{input: "AB12CD34", expected: "AB12CD34"},
		{input: " ab12cd34 ", expected: "AB12CD34"},
		{input: "AB12CD3", wantErr: true},
		{input: "AB12CD345", wantErr: true},
		{input: "AB12-D34", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			code, err := delivery.ParseTrackingCode(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, code.String())
		})
	}
}
