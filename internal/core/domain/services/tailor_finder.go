package services

import (
	"cmp"
	"slices"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/tailor"
	"tailorshop/internal/pkg/errs"
)

// DefaultSearchRadiusMiles applies when a search has an origin but no radius.
const DefaultSearchRadiusMiles = 10.0

// SortBy orders search results.
type SortBy string

const (
	SortByDistance SortBy = "distance"
	SortByRating   SortBy = "rating"
)

// ParseSortBy maps "" to SortByDistance.
func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(s) {
	case "", SortByDistance:
		return SortByDistance, nil
	case SortByRating:
		return SortByRating, nil
	}
	return "", errs.NewValueIsInvalidError("sortBy")
}

// SearchCriteria narrows the candidate list returned by the repository.
type SearchCriteria struct {
	Origin      *kernel.GeoPoint
	RadiusMiles float64
	SortBy      SortBy
}

// TailorMatch is a candidate with its distance from the origin, when there is one.
type TailorMatch struct {
	Tailor        *tailor.Tailor
	DistanceMiles *float64
}

// TailorFinder ranks tailors around an origin.
//
// With an origin, tailors without a location are dropped, the radius filter
// applies and results are ordered by ascending distance unless SortByRating
// is asked for. Without an origin, the input order is kept unless
// SortByRating is asked for. Ties keep the input order.
type TailorFinder struct{}

func NewTailorFinder() TailorFinder {
	return TailorFinder{}
}

func (f TailorFinder) Find(candidates []*tailor.Tailor, c SearchCriteria) ([]TailorMatch, error) {
	radius := c.RadiusMiles
	if radius <= 0 {
		radius = DefaultSearchRadiusMiles
	}

	matches := make([]TailorMatch, 0, len(candidates))
	for _, t := range candidates {
		if err := t.Validate(); err != nil {
			return nil, err
		}

		if c.Origin == nil {
			matches = append(matches, TailorMatch{Tailor: t})
			continue
		}

		loc := t.Location()
		if loc == nil {
			continue
		}

		d, err := c.Origin.DistanceMiles(*loc)
		if err != nil {
			return nil, err
		}
		if d > radius {
			continue
		}
		matches = append(matches, TailorMatch{Tailor: t, DistanceMiles: &d})
	}

	switch {
	case c.SortBy == SortByRating:
		slices.SortStableFunc(matches, func(a, b TailorMatch) int {
			return cmp.Compare(b.Tailor.Rating(), a.Tailor.Rating())
		})
	case c.Origin != nil:
		slices.SortStableFunc(matches, func(a, b TailorMatch) int {
			return cmp.Compare(*a.DistanceMiles, *b.DistanceMiles)
		})
	}

	return matches, nil
}
