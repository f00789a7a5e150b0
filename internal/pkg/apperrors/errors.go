package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrNotFound          = errors.New("resource not found")
	ErrDuplicateIdentity = errors.New("email or username already registered")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("authentication required")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrSelfDeletion     = errors.New("cannot delete your own account")

	// Validation errors
	ErrValidation = errors.New("validation failed")

	// Storage errors
	ErrStorage = errors.New("storage failure")
)

// Typed not-found errors. Both wrap ErrNotFound so status mapping only
// needs the base sentinel.
var (
	ErrUserNotFound   = fmt.Errorf("user not found: %w", ErrNotFound)
	ErrSurveyNotFound = fmt.Errorf("survey not found: %w", ErrNotFound)
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a CustomError wrapping ErrValidation with a field message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidation,
		Message: message,
	}
}

// NewStorageError creates a CustomError wrapping ErrStorage around the underlying error
func NewStorageError(err error, message string) error {
	return &CustomError{
		Err:     errors.Join(ErrStorage, err),
		Message: message,
	}
}
