package queries

import (
	"errors"
	"math"
	"strings"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/services"
	"tailorshop/internal/pkg/errs"
	"tailorshop/internal/pkg/guard"
)

var ErrSearchTailorsQueryIsNotConstructed = errors.New(
	"SearchTailorsQuery must be created via NewSearchTailorsQuery constructor",
)

// SearchTailorsQuery finds available shops.
//
// Example:
//
//	origin, _ := kernel.NewGeoPoint(40.7128, -74.0060)
//	query, err := NewSearchTailorsQuery(&origin, 5, []string{"suits"}, 4.0, "rating")
type SearchTailorsQuery struct { //nolint:recvcheck //using for validation
	criteria    services.SearchCriteria
	specialties []string
	minRating   float64

	guard guard.ConstructorGuard
}

func NewSearchTailorsQuery(
	origin *kernel.GeoPoint,
	radiusMiles float64,
	specialties []string,
	minRating float64,
	sortBy string,
) (SearchTailorsQuery, error) {
	sort, err := services.ParseSortBy(strings.ToLower(strings.TrimSpace(sortBy)))
	if err != nil {
		return SearchTailorsQuery{}, err
	}
	if origin != nil {
		if err = origin.Validate(); err != nil {
			return SearchTailorsQuery{}, err
		}
	}
	if math.IsNaN(radiusMiles) || radiusMiles < 0 {
		return SearchTailorsQuery{}, errs.NewValueIsOutOfRangeError("radius", radiusMiles, 0, "unbounded")
	}
	if math.IsNaN(minRating) || minRating < 0 || minRating > 5 {
		return SearchTailorsQuery{}, errs.NewValueIsOutOfRangeError("minRating", minRating, 0, 5)
	}

	cleaned := make([]string, 0, len(specialties))
	for _, s := range specialties {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}

	return SearchTailorsQuery{
		criteria: services.SearchCriteria{
			Origin:      origin,
			RadiusMiles: radiusMiles,
			SortBy:      sort,
		},
		specialties: cleaned,
		minRating:   minRating,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q SearchTailorsQuery) Validate() error {
	return q.guard.Validate(ErrSearchTailorsQueryIsNotConstructed)
}

func (q SearchTailorsQuery) Criteria() services.SearchCriteria {
	return q.criteria
}

func (q SearchTailorsQuery) Specialties() []string {
	return q.specialties
}

func (q SearchTailorsQuery) MinRating() float64 {
	return q.minRating
}
