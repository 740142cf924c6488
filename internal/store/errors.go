// Error sentinels shared by the student and course stores. Handlers map
// these to HTTP statuses; everything else is treated as an internal error.
package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no record matches the requested id.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when an insert or update violates a unique
// index (student email, course name).
var ErrConflict = errors.New("conflict")

// ErrUnavailable is returned by every operation on a detached store,
// i.e. when the service started without a usable DATABASE_URL.
var ErrUnavailable = errors.New("storage unavailable")

// translate folds driver-level errors into the store's sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err) {
		return ErrConflict
	}
	return err
}

// isDuplicate covers drivers without GORM error translation: postgres
// reports SQLSTATE 23505, sqlite a UNIQUE constraint failure.
func isDuplicate(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
