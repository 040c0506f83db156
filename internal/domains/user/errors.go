package user

import (
	"errors"
	"fmt"
	"net/http"
)

// UserError is the base error for the user domain
type UserError struct {
	Code    string
	Message string
	Err     error
}

// Error implements error interface
func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewInvalidCredentials is deliberately vague: it does not reveal whether the
// email exists or the password was wrong.
func NewInvalidCredentials() *UserError {
	return &UserError{
		Code:    "INVALID_CREDENTIALS",
		Message: "Invalid email or password",
	}
}

// NewValidationError wraps a failed login payload validation
func NewValidationError(err error) *UserError {
	return &UserError{
		Code:    "VALIDATION_ERROR",
		Message: "Invalid login payload",
		Err:     err,
	}
}

// NewNotFound creates a "user not found" error
func NewNotFound() *UserError {
	return &UserError{
		Code:    "USER_NOT_FOUND",
		Message: "User not found",
	}
}

// NewStoreError wraps a store-level failure
func NewStoreError(err error) *UserError {
	return &UserError{
		Code:    "USER_STORE_ERROR",
		Message: "User store operation failed",
		Err:     err,
	}
}

// GetErrorResponse maps a domain error to (HTTP status, message, code)
func GetErrorResponse(err error) (int, string, string) {
	var userErr *UserError
	if !errors.As(err, &userErr) {
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_SERVER_ERROR"
	}

	switch userErr.Code {
	case "VALIDATION_ERROR":
		return http.StatusBadRequest, userErr.Message, userErr.Code
	case "INVALID_CREDENTIALS":
		return http.StatusUnauthorized, userErr.Message, userErr.Code
	case "USER_NOT_FOUND":
		return http.StatusNotFound, userErr.Message, userErr.Code
	default:
		return http.StatusInternalServerError, userErr.Message, userErr.Code
	}
}
