package postgres

import (
	"strings"

	domainerrors "github.com/Renan-rss/instagram-clone/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Fall back to PostgreSQL-specific unique constraint violation patterns for
	// drivers that don't translate to gorm.ErrDuplicatedKey.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

// mapUniqueViolation resolves which unique column was hit so a constraint-level
// race surfaces as the same duplicate-field error the pre-insert checks produce.
func mapUniqueViolation(err error) error {
	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "email"):
		return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists")
	case strings.Contains(errMsg, "username"):
		return domainerrors.ErrUsernameAlreadyExists.WrapMessage("username already exists")
	default:
		return domainerrors.ErrConflict.WrapMessage("unique constraint violated")
	}
}
