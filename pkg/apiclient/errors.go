package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingBaseURL indicates the client was constructed without a base URL
	ErrMissingBaseURL = errors.New("apiclient: base URL is required")

	// ErrInvalidBaseURL indicates the base URL is not an absolute URL
	ErrInvalidBaseURL = errors.New("apiclient: invalid base URL")
)

// APIError is a non-2xx backend response with its detail message decoded
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("apiclient: backend returned %d: %s", e.StatusCode, e.Detail)
}

// IsAuth reports whether the response was an authorization rejection
func (e *APIError) IsAuth() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsAuthError reports whether err is a backend authorization rejection
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsAuth()
}

// IsNotFound reports whether err is a backend 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// decodeError extracts the backend's error detail. The backend wraps errors
// as {"detail": "..."}; validation rejections arrive with a structured list
// in the same field, which is preserved verbatim.
func decodeError(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Detail) > 0 {
		var detail string
		if json.Unmarshal(payload.Detail, &detail) == nil {
			apiErr.Detail = detail
		} else {
			apiErr.Detail = string(payload.Detail)
		}
	}

	if apiErr.Detail == "" {
		apiErr.Detail = http.StatusText(status)
	}
	return apiErr
}
