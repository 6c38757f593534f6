package repository

import (
	"errors"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Yashwanthgowda1/backend-server/internal/apperror"
)

// mapDatabaseError translates storage failures into the typed taxonomy.
// Application errors pass through untouched.
func mapDatabaseError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return apperror.Wrap(apperror.CodeUnavailable, "database connection refused", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperror.Wrap(apperror.CodeInternal, "duplicate key violates uniqueness constraint", err)
		case "23503":
			return apperror.Wrap(apperror.CodeValidation, "invalid foreign key reference", err)
		}
	}

	return apperror.Wrap(apperror.CodeInternal, err.Error(), err)
}
