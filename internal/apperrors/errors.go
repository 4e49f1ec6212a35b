// Package apperrors provides operation-scoped error wrapping and the
// application's sentinel error types.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates invalid input was provided
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal indicates an internal error occurred
	ErrInternal = errors.New("internal error")
)

// AppError represents an application-specific error with additional context.
// Natural-language irregularities in model output are never AppErrors; the
// enforcement pipeline absorbs those. AppError is reserved for genuine
// contract violations and I/O failures.
type AppError struct {
	Op      string // Operation that failed
	Err     error  // Underlying error
	Message string // User-friendly message
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(op string, err error, message string) *AppError {
	return &AppError{
		Op:      op,
		Err:     err,
		Message: message,
	}
}

// Wrap wraps an error with an operation name.
func Wrap(op string, err error) *AppError {
	return &AppError{
		Op:  op,
		Err: err,
	}
}

// Wrapf wraps an error with formatted context.
func Wrapf(op string, err error, format string, args ...any) *AppError {
	return &AppError{
		Op:      op,
		Err:     err,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsNotFound checks if an error is ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInput checks if an error is ErrInvalidInput.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInternal checks if an error is ErrInternal.
func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}
