// Package dberr translates PostgreSQL failures into the domain error
// taxonomy shared by every repository.
package dberr

import (
	"errors"

	"fleetflow/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes that mean another transaction got there first.
const (
	uniqueViolation      = "23505"
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

// IsConflict reports whether err is a uniqueness, serialization or deadlock
// failure raised by PostgreSQL.
func IsConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case uniqueViolation, serializationFailure, deadlockDetected:
		return true
	default:
		return false
	}
}

// Translate wraps conflict failures into *errs.ResourceConflictError and
// returns every other error unchanged.
func Translate(entity string, id any, err error) error {
	if err == nil {
		return nil
	}
	if IsConflict(err) {
		return errs.NewResourceConflictErrorWithCause(entity, id, err)
	}
	return err
}

// NotFound maps gorm.ErrRecordNotFound to *errs.ObjectNotFoundError.
func NotFound(entity string, id any, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(entity, id)
	}
	return err
}
