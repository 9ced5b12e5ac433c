// Package services holds domain logic that reads more than one aggregate or
// more than one field of an aggregate at once.
//
// The package includes:
//   - MeasurementValidator: scores a full measurement set and cross-checks its fields
//   - TailorFinder: filters and orders tailors around an origin point
package services
