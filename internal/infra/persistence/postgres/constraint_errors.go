package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerrors "bizdesk/internal/domain/errors"
	"bizdesk/internal/errors"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// translateError wraps any backend error into the single persistence error type.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	return domainerrors.NewPersistenceError(op, classify(err), err)
}

func classify(err error) domainerrors.PersistenceKind {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.PersistenceUniqueViolation
	case isForeignKeyConstraintViolation(err):
		return domainerrors.PersistenceForeignKeyViolation
	case isNotNullConstraintViolation(err):
		return domainerrors.PersistenceNotNullViolation
	case isCheckConstraintViolation(err):
		return domainerrors.PersistenceCheckViolation
	default:
		return domainerrors.PersistenceBackendFailure
	}
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasSQLState(err, pgUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return hasSQLState(err, pgForeignKeyViolation)
}

func isNotNullConstraintViolation(err error) bool {
	return hasSQLState(err, pgNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	// Check for GORM's check constraint violation error
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return hasSQLState(err, pgCheckViolation)
}

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == code
}
