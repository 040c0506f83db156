package calendar

import (
	"errors"
	"fmt"
	"net/http"
)

// CalendarError is the base error for the calendar domain
type CalendarError struct {
	Code    string
	Message string
	Err     error
}

// Error implements error interface
func (e *CalendarError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *CalendarError) Unwrap() error {
	return e.Err
}

// NewEncodingError reports a record that lacks a required field at encode
// time. The whole generation aborts: a half-written calendar would corrupt
// client subscriptions.
func NewEncodingError(recordID string) *CalendarError {
	return &CalendarError{
		Code:    "ENCODING_ERROR",
		Message: fmt.Sprintf("Record '%s' is missing a required field, feed generation aborted", recordID),
	}
}

// NewPublishError wraps a storage write or URL resolution failure.
// The previously published feed is left untouched.
func NewPublishError(err error) *CalendarError {
	return &CalendarError{
		Code:    "PUBLISH_ERROR",
		Message: "Failed to publish calendar feed",
		Err:     err,
	}
}

// NewGenerateError wraps a store read failure during generation
func NewGenerateError(err error) *CalendarError {
	return &CalendarError{
		Code:    "GENERATE_ERROR",
		Message: "Failed to load recommendations for feed generation",
		Err:     err,
	}
}

// GetErrorResponse maps a domain error to (HTTP status, message, code)
func GetErrorResponse(err error) (int, string, string) {
	var calErr *CalendarError
	if !errors.As(err, &calErr) {
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_SERVER_ERROR"
	}

	switch calErr.Code {
	case "PUBLISH_ERROR":
		return http.StatusBadGateway, calErr.Message, calErr.Code
	default:
		return http.StatusInternalServerError, calErr.Message, calErr.Code
	}
}
