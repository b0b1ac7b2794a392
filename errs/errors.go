package errs

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when a non-admin attempts a moderation action.
	ErrForbidden = errors.New("admin privileges required")
	// ErrValidation is returned when input fails field validation.
	ErrValidation = errors.New("validation failed")
	// ErrDanglingReference is returned when a referenced category or user
	// does not exist in its owning collection.
	ErrDanglingReference = errors.New("referenced entity does not exist")
	// ErrSlugTaken is returned when a slug already exists in the collection.
	ErrSlugTaken = errors.New("slug already in use")
	// ErrInvalidTransition is returned for a lifecycle transition that is
	// not reachable from the entity's current state.
	ErrInvalidTransition = errors.New("invalid lifecycle transition")
	// ErrTooManyResults is returned when a query would materialize more
	// documents than the configured scan bound.
	ErrTooManyResults = errors.New("result set exceeds scan bound")
	// ErrRateLimited is returned when a client exceeds its request window.
	ErrRateLimited = errors.New("too many requests")
)

// ErrorResponse is the standardized JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError pairs a domain error with a status code and stable code string.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapToHTTP maps domain errors to HTTP errors. Wrapped errors are matched
// with errors.Is, so services may annotate with fmt.Errorf("...: %w", err).
func MapToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, ErrNotFound.Error(), "NOT_FOUND")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error(), "FORBIDDEN")
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_FAILED")
	case errors.Is(err, ErrDanglingReference):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DANGLING_REFERENCE")
	case errors.Is(err, ErrSlugTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "SLUG_TAKEN")
	case errors.Is(err, ErrInvalidTransition):
		return NewHTTPError(http.StatusConflict, err.Error(), "INVALID_TRANSITION")
	case errors.Is(err, ErrTooManyResults):
		return NewHTTPError(http.StatusInternalServerError, ErrTooManyResults.Error(), "RESULT_SET_TOO_LARGE")
	case errors.Is(err, ErrRateLimited):
		return NewHTTPError(http.StatusTooManyRequests, ErrRateLimited.Error(), "RATE_LIMITED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
