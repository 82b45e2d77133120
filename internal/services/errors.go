package services

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ServiceError carries an HTTP status for failures outside the domain taxonomy,
// mostly authentication and authorisation.
type ServiceError struct {
	Status  int
	Message string
}

func (e ServiceError) Error() string {
	return e.Message
}

func ErrBadRequest(msg string) error {
	return ServiceError{Status: http.StatusBadRequest, Message: msg}
}

func ErrForbidden(msg string) error {
	return ServiceError{Status: http.StatusForbidden, Message: msg}
}

func ErrUnauthorized(msg string) error {
	return ServiceError{Status: http.StatusUnauthorized, Message: msg}
}

// NotFoundError reports that a referenced or targeted entity does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// ConstraintError reports a uniqueness or referential conflict with stored data.
type ConstraintError struct {
	Constraint string
	Message    string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("constraint %s violated: %s", e.Constraint, e.Message)
	}
	return "constraint violated: " + e.Message
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// asConstraintError converts driver constraint failures from either backend into
// *ConstraintError and wraps everything else with msg.
func asConstraintError(err error, msg string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) == 5 && pgErr.Code[:2] == "23" {
		return &ConstraintError{Constraint: pgErr.ConstraintName, Message: pgErr.Message, Err: err}
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) && liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return &ConstraintError{Message: liteErr.Error(), Err: err}
	}
	return WrapError(err, msg)
}
