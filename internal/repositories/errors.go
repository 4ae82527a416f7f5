package repositories

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// IsUniqueViolation reports whether err is a unique-constraint violation.
// The duplicate-review and duplicate-favorite invariants are enforced by the
// database, so the losing writer of a concurrent insert race lands here
// rather than slipping past a prior existence check.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

// IsNotFound reports whether err is gorm's missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
