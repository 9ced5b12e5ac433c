package kernel

import (
	"errors"
	"fmt"
	"math"

	"tailorshop/internal/pkg/errs"
	"tailorshop/internal/pkg/guard"
)

const (
	// LatitudeMin and LatitudeMax bound valid latitudes in degrees.
	LatitudeMin = -90.0
	LatitudeMax = 90.0
	// LongitudeMin and LongitudeMax bound valid longitudes in degrees.
	LongitudeMin = -180.0
	LongitudeMax = 180.0

	// EarthRadiusMiles is the mean Earth radius used by the Haversine formula.
	EarthRadiusMiles = 3958.8
)

// ErrGeoPointIsNotConstructed is returned when a GeoPoint was not built through NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable WGS84 coordinate. It is used for tailor shop
// locations, search origins and a rider's current position.
//
// The zero value is invalid (0,0 is a real place in the Gulf of Guinea, so a
// constructed flag is what tells "set" apart from "missing").
//
// Example:
//
//	shop, err := kernel.NewGeoPoint(40.7128, -74.0060)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(shop) // GeoPoint(40.712800,-74.006000)
type GeoPoint struct { //nolint:recvcheck //pointer receivers only on construction setters
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint validates both coordinates and returns the point.
//
// Parameters:
//   - latitude: degrees in [LatitudeMin..LatitudeMax]
//   - longitude: degrees in [LongitudeMin..LongitudeMax]
//
// Returns:
//   - GeoPoint: a valid point
//   - error: ValueIsOutOfRangeError for every coordinate out of bounds (joined),
//     ValueIsInvalidError for NaN or infinite input
func NewGeoPoint(latitude float64, longitude float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLatitude(latitude), p.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate returns ErrGeoPointIsNotConstructed for zero values.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.latitude, p.longitude)
}

// IsEqual compares coordinates. Both points must be constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

// DistanceMiles returns the great-circle distance to other in miles.
//
// The result is symmetric (a.DistanceMiles(b) == b.DistanceMiles(a)) and zero
// for identical coordinates.
//
// Example:
//
//	nyc, _ := kernel.NewGeoPoint(40.7128, -74.0060)
//	la, _ := kernel.NewGeoPoint(34.0522, -118.2437)
//	miles, _ := nyc.DistanceMiles(la) // ~2445.6
func (p GeoPoint) DistanceMiles(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return HaversineMiles(p.latitude, p.longitude, other.latitude, other.longitude), nil
}

// HaversineMiles is the Haversine great-circle distance between two coordinates
// given in degrees, using EarthRadiusMiles.
func HaversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*sinLon*sinLon
	// Rounding can push a just past 1 for antipodal points.
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Asin(math.Sqrt(a))

	return EarthRadiusMiles * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func (p *GeoPoint) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) {
		return errs.NewValueIsInvalidErrorWithCause("latitude", fmt.Errorf("%v is not a finite number", latitude))
	}
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	p.latitude = latitude
	return nil
}

func (p *GeoPoint) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return errs.NewValueIsInvalidErrorWithCause("longitude", fmt.Errorf("%v is not a finite number", longitude))
	}
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	p.longitude = longitude
	return nil
}
