package payment

import (
	"fmt"
	"regexp"
	"strings"

	"tailorshop/internal/pkg/errs"
)

// DefaultCurrency is used when a client does not name one.
const DefaultCurrency Currency = "USD"

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Currency is an upper-case ISO 4217 code.
type Currency string

// ParseCurrency upper-cases s. An empty string yields fallback.
func ParseCurrency(s string, fallback Currency) (Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if code == "" {
		code = string(fallback)
	}
	if !currencyPattern.MatchString(code) {
		return "", errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q is not a three-letter code", s))
	}
	return Currency(code), nil
}

func (c Currency) String() string {
	return string(c)
}

// Lower is the form payment gateways expect.
func (c Currency) Lower() string {
	return strings.ToLower(string(c))
}
