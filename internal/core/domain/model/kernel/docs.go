// Package kernel provides the shared value objects of the tailoring marketplace.
//
// The package includes:
//   - UUID: identifier for every aggregate
//   - GeoPoint: validated latitude/longitude with Haversine distance in miles
//   - Money: non-negative decimal amounts backed by shopspring/decimal
//
// All three are immutable, have an invalid zero value, and are only obtained
// through their constructors.
package kernel
