// Package pgutil holds the column conversions and error mapping shared by the
// GORM repositories.
package pgutil

import (
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NullableUUID maps an optional identifier to a nullable uuid column.
func NullableUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

// RestoreUUID converts a uuid column back to the domain identifier.
func RestoreUUID(raw uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(raw[:])
}

// RestoreNullableUUID maps NULL to nil.
func RestoreNullableUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := RestoreUUID(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// NullableGeoPoint splits an optional point into two nullable columns.
func NullableGeoPoint(p *kernel.GeoPoint) (*float64, *float64) {
	if p == nil {
		return nil, nil
	}
	lat, lng := p.Latitude(), p.Longitude()
	return &lat, &lng
}

// RestoreGeoPoint returns nil unless both columns are set.
func RestoreGeoPoint(lat *float64, lng *float64) (*kernel.GeoPoint, error) {
	if lat == nil || lng == nil {
		return nil, nil
	}
	p, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// RestoreMoney rebuilds Money from a numeric column.
func RestoreMoney(amount decimal.Decimal) (kernel.Money, error) {
	return kernel.NewMoney(amount)
}

// IsUniqueViolation reports whether err is a unique_violation on constraint.
// An empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != pgerrcode.UniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// NotFound turns gorm.ErrRecordNotFound into ObjectNotFoundError and passes
// every other error through.
func NotFound(err error, paramName string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(paramName, id)
	}
	return err
}

// Clone copies the pointed-to value so that DTOs never alias aggregate state.
func Clone[T any](t *T) *T {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// ForUpdate adds FOR UPDATE when db runs inside a transaction. Outside one the
// lock would be released immediately, so the clause is skipped.
func ForUpdate(db *gorm.DB) *gorm.DB {
	if _, ok := db.Statement.ConnPool.(gorm.TxCommitter); !ok {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}
