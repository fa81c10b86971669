package albert

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ServerError is one entry of the structured error list the API returns in
// non-2xx response bodies.
type ServerError struct {
	Code    string `json:"code,omitempty"    yaml:"code,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	Field   string `json:"field,omitempty"   yaml:"field,omitempty"`
}

// ErrorBody is the error envelope shape used by the Albert API.
type ErrorBody struct {
	URL    string        `json:"url,omitempty"    yaml:"url,omitempty"`
	Errors []ServerError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// APIError represents any non-2xx response from the Albert API. It always
// retains the original HTTP status; the path and server error list are kept
// when the response body was parseable.
type APIError struct {
	StatusCode int           `json:"statusCode"       yaml:"statusCode"`
	Reason     string        `json:"reason"           yaml:"reason"`
	Path       string        `json:"path,omitempty"   yaml:"path,omitempty"`
	Errors     []ServerError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("API request failed with status code %d: %s", e.StatusCode, e.Reason)
	if e.Path != "" {
		msg = fmt.Sprintf("%s (path: %s)", msg, e.Path)
	}

	if len(e.Errors) > 0 {
		msg = fmt.Sprintf("%s: %v", msg, e.Errors)
	}

	return msg
}

// NewAPIError builds an APIError for the given status, deriving the reason
// from the standard status text and attaching the parsed error body if any.
func NewAPIError(statusCode int, path string, body *ErrorBody) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Reason:     http.StatusText(statusCode),
		Path:       path,
	}

	if body != nil {
		apiErr.Errors = body.Errors
		if body.URL != "" {
			apiErr.Path = body.URL
		}
	}

	return apiErr
}

// ParseErrorBody parses the structured error envelope from a response body.
func ParseErrorBody(data []byte) (*ErrorBody, error) {
	var body ErrorBody

	err := json.Unmarshal(data, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal error body: %w", err)
	}

	return &body, nil
}

// statusOf extracts the HTTP status from an error chain, or 0.
func statusOf(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

// IsBadRequest checks if the error is a 400 Bad Request error.
func IsBadRequest(err error) bool {
	return statusOf(err) == http.StatusBadRequest
}

// IsUnauthorized checks if the error is a 401 Unauthorized error.
func IsUnauthorized(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a 403 Forbidden error.
func IsForbidden(err error) bool {
	return statusOf(err) == http.StatusForbidden
}

// IsNotFound checks if the error is a 404 Not Found error.
func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsInternalServerError checks if the error is a 500 Internal Server Error.
func IsInternalServerError(err error) bool {
	return statusOf(err) == http.StatusInternalServerError
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired        = errors.New("config is required")
	ErrBaseURLRequired       = errors.New("base URL is required")
	ErrCredentialsRequired   = errors.New("either an access token or client credentials must be provided")
	ErrFormulasNotSupported  = errors.New("registration of formulas is not supported")
	ErrEntityIDRequired      = errors.New("entity id is required")
	ErrEntityNameRequired    = errors.New("entity name is required")
	ErrTokenRequestFailed    = errors.New("token request failed")
	ErrPaginationModeUnknown = errors.New("unknown pagination mode")
)
