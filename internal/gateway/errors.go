package gateway

import (
	"errors"
	"net/http"
)

var (
	ErrEmptyResponse    = errors.New("empty response from cms")
	ErrResponseTooLarge = errors.New("cms response exceeds size limit")
)

// APIError is a failed backend call. Message is always fit to show to the user:
// the backend's own message when it sent one, otherwise the per-call fallback.
type APIError struct {
	Status  int
	Name    string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether the backend rejected the bearer token itself,
// as it does for an expired or revoked JWT. A 403 is not an auth failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// Message extracts the user-facing message, or fallback for foreign errors.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
