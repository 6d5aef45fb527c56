package domain

import "errors"

var (
	// ErrNotFound is returned when no record matches the requested id.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError describes a rejected request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
