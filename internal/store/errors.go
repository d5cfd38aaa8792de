package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned by point lookups that match no row.
	ErrNotFound = errors.New("store: record not found")
	// ErrDuplicateEmail is returned by AddUser when the email is taken.
	ErrDuplicateEmail = errors.New("store: email already registered")
	// ErrUnknownReference is returned when an insert points at a user or
	// property that does not exist.
	ErrUnknownReference = errors.New("store: referenced record does not exist")
)

// QueryError reports a failed database operation that is not one of the
// sentinel conditions above.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Postgres SQLSTATE codes, for sessions opened without TranslateError.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func classify(op string, err error, duplicate error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey) && duplicate != nil:
		return fmt.Errorf("%s: %w", op, duplicate)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: %w", op, ErrUnknownReference)
	case errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && duplicate != nil:
		return fmt.Errorf("%s: %w", op, duplicate)
	case errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation:
		return fmt.Errorf("%s: %w", op, ErrUnknownReference)
	}
	return &QueryError{Op: op, Err: err}
}
