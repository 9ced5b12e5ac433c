package delivery

import (
	"fmt"
	"regexp"
	"strings"

	"tailorshop/internal/pkg/errs"

	"github.com/google/uuid"
)

// TrackingCodeLength is the number of characters in a tracking code.
const TrackingCodeLength = 8

var trackingCodePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

// TrackingCode is the public handle customers use to follow a delivery.
type TrackingCode string

// NewTrackingCode derives a code from a fresh random UUID: its first eight
// characters, upper-cased. Collisions are possible and are handled by the
// repository's unique index.
func NewTrackingCode() TrackingCode {
	return TrackingCode(strings.ToUpper(uuid.NewString()[:TrackingCodeLength]))
}

// ParseTrackingCode accepts codes in any case and normalizes them.
func ParseTrackingCode(s string) (TrackingCode, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if !trackingCodePattern.MatchString(code) {
		return "", errs.NewValueIsInvalidErrorWithCause("trackingCode",
			fmt.Errorf("expected %d letters or digits", TrackingCodeLength))
	}
	return TrackingCode(code), nil
}

func (c TrackingCode) String() string {
	return string(c)
}
