package services

import (
	"errors"
	"fmt"
)

// The write paths in this package never swallow failures: every
// operation returns one of the error kinds below so the HTTP layer can
// distinguish not-found, bad input, and storage trouble.

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// ValidationError reports input the caller can fix.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// PersistenceError wraps a failed database or storage operation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistenceErr(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}
