package apperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies an application error so the HTTP layer can pick a status
// code without inspecting messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindForeignKey
	KindConflict
	KindState
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindForeignKey:
		return "foreign_key"
	case KindConflict:
		return "conflict"
	case KindState:
		return "state"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func ForeignKey(format string, args ...interface{}) *Error {
	return &Error{Kind: KindForeignKey, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func State(format string, args ...interface{}) *Error {
	return &Error{Kind: KindState, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or KindUnknown for errors outside the
// taxonomy.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// Postgres error codes worth translating at the repository boundary.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// FromPG translates low-level pgx errors into the application taxonomy.
// The entity name is used in the resulting message; unrecognized errors are
// returned unchanged.
func FromPG(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &Error{Kind: KindNotFound, Message: entity + " not found", cause: err}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return &Error{Kind: KindForeignKey, Message: entity + " references a missing record", cause: err}
		case pgUniqueViolation:
			return &Error{Kind: KindConflict, Message: entity + " already exists", cause: err}
		}
	}
	return err
}
