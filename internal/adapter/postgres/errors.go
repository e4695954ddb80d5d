package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taneeshamadhu18/video-call-assignment/internal/domain"
)

// MapError converts pgx, pgconn and scany errors to domain errors.
// Context errors are wrapped but keep their identity.
func MapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %d: %w", entity, id, err)
	}

	// pgxscan.NotFound also covers pgx.ErrNoRows.
	if pgxscan.NotFound(err) {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %d: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
		case "23514", "22P02": // check_violation, invalid_text_representation
			return fmt.Errorf("%s %d: %w", entity, id, domain.ErrValidation)
		case "40001": // serialization_failure
			return fmt.Errorf("%s %d: %w", entity, id, domain.ErrConflict)
		}
	}

	return fmt.Errorf("%s %d: %w", entity, id, err)
}
