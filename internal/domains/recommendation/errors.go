package recommendation

import (
	"errors"
	"fmt"
	"net/http"
)

// RecommendationError is the base error for the recommendation domain
type RecommendationError struct {
	Code    string // unique error code (e.g. "RECOMMENDATION_NOT_FOUND")
	Message string // human-readable message
	Err     error  // underlying error
}

// Error implements error interface
func (e *RecommendationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *RecommendationError) Unwrap() error {
	return e.Err
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

// NewValidationError wraps a failed submission validation.
// Surfaced to the administrator before persistence is attempted.
func NewValidationError(err error) *RecommendationError {
	return &RecommendationError{
		Code:    "VALIDATION_ERROR",
		Message: "Recommendation is missing required fields",
		Err:     err,
	}
}

// NewNotFound creates a "recommendation not found" error
func NewNotFound(id string) *RecommendationError {
	return &RecommendationError{
		Code:    "RECOMMENDATION_NOT_FOUND",
		Message: fmt.Sprintf("Recommendation '%s' not found", id),
	}
}

// NewInvalidID creates an "invalid recommendation ID" error
func NewInvalidID(id string) *RecommendationError {
	return &RecommendationError{
		Code:    "INVALID_RECOMMENDATION_ID",
		Message: fmt.Sprintf("Invalid recommendation ID: '%s'", id),
	}
}

// NewCreateError wraps a store-level insert failure
func NewCreateError(err error) *RecommendationError {
	return &RecommendationError{
		Code:    "CREATE_RECOMMENDATION_ERROR",
		Message: "Failed to create recommendation",
		Err:     err,
	}
}

// NewListError wraps a store-level list failure
func NewListError(err error) *RecommendationError {
	return &RecommendationError{
		Code:    "LIST_RECOMMENDATION_ERROR",
		Message: "Failed to list recommendations",
		Err:     err,
	}
}

// NewDeleteError wraps a store-level delete failure
func NewDeleteError(err error) *RecommendationError {
	return &RecommendationError{
		Code:    "DELETE_RECOMMENDATION_ERROR",
		Message: "Failed to delete recommendation",
		Err:     err,
	}
}

// GetErrorResponse maps a domain error to (HTTP status, message, code)
func GetErrorResponse(err error) (int, string, string) {
	var recErr *RecommendationError
	if !errors.As(err, &recErr) {
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_SERVER_ERROR"
	}

	switch recErr.Code {
	case "VALIDATION_ERROR", "INVALID_RECOMMENDATION_ID":
		return http.StatusBadRequest, recErr.Message, recErr.Code
	case "RECOMMENDATION_NOT_FOUND":
		return http.StatusNotFound, recErr.Message, recErr.Code
	default:
		return http.StatusInternalServerError, recErr.Message, recErr.Code
	}
}
