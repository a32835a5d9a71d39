package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
)

// MapError converts pgx/pgconn errors to domain errors.
// A foreign key violation means the referenced row is missing.
// context.DeadlineExceeded and context.Canceled pass through unchanged.
func MapError(err error, entity string, id uuid.UUID) error {
	return mapError(err, entity, id, domain.ErrNotFound)
}

// MapDeleteError is MapError for DELETE statements, where a foreign key
// violation means the row is still referenced.
func MapDeleteError(err error, entity string, id uuid.UUID) error {
	return mapError(err, entity, id, domain.ErrConflict)
}

func mapError(err error, entity string, id uuid.UUID, onForeignKey error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s %s: %w", entity, id, onForeignKey)
		case codeCheckViolation, codeNotNullViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
