package shared

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a uniqueness or append-only violation.
	ErrConflict = errors.New("conflict")
	// ErrInvalidTransition indicates a lifecycle status change that skips or
	// reverses a state.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Postgres error codes repositories map onto ErrConflict.
const (
	PgUniqueViolation     = "23505"
	PgForeignKeyViolation = "23503"
)

// PgErrorCode extracts the Postgres error code from a pgx/v5 error chain,
// or "" when the error is not a server error.
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// UserSafeMessage maps internal errors to text suitable for API clients.
func UserSafeMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "The requested record was not found."
	case errors.Is(err, ErrConflict):
		return "A conflicting record already exists."
	case errors.Is(err, ErrInvalidTransition):
		return "That status change is not allowed."
	default:
		return "Something went wrong. Please try again."
	}
}
