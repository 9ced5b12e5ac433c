package queries

import (
	"errors"
	"strings"

	"tailorshop/internal/pkg/guard"
)

var ErrTrackingQueryIsNotConstructed = errors.New("TrackingQuery must be created via NewTrackingQuery constructor")

// TrackingQuery carries the raw code typed by the customer. It is parsed by
// the handler so malformed codes look exactly like unknown ones.
type TrackingQuery struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

func NewTrackingQuery(code string) TrackingQuery {
	return TrackingQuery{
		code:  strings.ToUpper(strings.TrimSpace(code)),
		guard: guard.NewConstructorGuard(),
	}
}

func (q TrackingQuery) Validate() error {
	return q.guard.Validate(ErrTrackingQueryIsNotConstructed)
}

func (q TrackingQuery) Code() string {
	return q.code
}
