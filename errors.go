package geminiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for common failure modes.
// These can be checked with errors.Is().
var (
	// ErrMalformedResponse indicates the service returned a body in an
	// unrecognized shape. The decoder never swallows this silently.
	ErrMalformedResponse = errors.New("geminiclient: malformed response")

	// ErrInvalidAPIKey indicates the API key is missing, malformed, or unauthorized.
	ErrInvalidAPIKey = errors.New("geminiclient: invalid API key")

	// ErrInvalidModel indicates the requested model does not exist or is not accessible.
	ErrInvalidModel = errors.New("geminiclient: invalid or unknown model")

	// ErrRateLimited indicates the service's rate limit has been exceeded.
	ErrRateLimited = errors.New("geminiclient: rate limit exceeded")

	// ErrInvalidRequest indicates the request parameters are invalid.
	ErrInvalidRequest = errors.New("geminiclient: invalid request")

	// ErrServiceUnavailable indicates the service is down or unreachable.
	ErrServiceUnavailable = errors.New("geminiclient: service unavailable")
)

// MalformedResponseError reports a response body that matched none of the
// recognized shapes. It is raised at decode time and propagated to the
// caller; only the caller knows whether retrying or failing is appropriate.
type MalformedResponseError struct {
	Reason string // Human-readable explanation of what did not match
	Err    error  // Wrapped sentinel (always ErrMalformedResponse)
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// newMalformedError builds a MalformedResponseError wrapping the sentinel.
func newMalformedError(reason string) *MalformedResponseError {
	return &MalformedResponseError{Reason: reason, Err: ErrMalformedResponse}
}

// APIError is the structured error record delivered inside an ErrorResponse.
// It represents a successfully transported but semantically failed request.
type APIError struct {
	// Code is the numeric error code (mirrors the HTTP status)
	Code int `json:"code"`

	// Message is the human-readable error message from the service
	Message string `json:"message"`

	// Status is the canonical status classification (e.g., "INVALID_ARGUMENT")
	Status string `json:"status,omitempty"`
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("gemini API error %d (%s): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("gemini API error %d: %s", e.Code, e.Message)
}

// Unwrap maps the error code onto the sentinel taxonomy so callers can use
// errors.Is without inspecting codes directly.
func (e *APIError) Unwrap() error {
	switch e.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrInvalidAPIKey
	case http.StatusNotFound:
		return ErrInvalidModel
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusBadRequest:
		return ErrInvalidRequest
	default:
		if e.Code >= 500 {
			return ErrServiceUnavailable
		}
		return nil
	}
}

// Retryable returns true if the failure is potentially transient.
func (e *APIError) Retryable() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

// IsRetryable checks if an error is potentially retryable.
// Returns true for rate limits and service unavailability.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}

	if errors.Is(err, ErrRateLimited) {
		return true
	}

	if errors.Is(err, ErrServiceUnavailable) {
		return true
	}

	return false
}

// IsInvalidRequest checks if an error indicates invalid request parameters.
// These errors are not retryable and require request changes.
func IsInvalidRequest(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrInvalidRequest) {
		return true
	}

	if errors.Is(err, ErrInvalidModel) {
		return true
	}

	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthError checks if an error is related to authentication.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrInvalidAPIKey) {
		return true
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		// HTTP 401/403 indicate auth issues
		return apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden
	}

	return false
}

// ValidationError represents an error in request parameter validation,
// raised client-side before any network call.
type ValidationError struct {
	Field  string // The parameter field that failed validation
	Value  any    // The invalid value
	Reason string // Human-readable explanation
	Err    error  // Wrapped error (usually ErrInvalidRequest)
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation failed for '%s' (value: %v): %s (%v)", e.Field, e.Value, e.Reason, e.Err)
	}
	return fmt.Sprintf("validation failed for '%s' (value: %v): %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
