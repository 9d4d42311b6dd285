package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for any response with a non-2xx status.
type APIError struct {
	StatusCode int
	// Message is the backend's "message" field when the error body carried
	// one, otherwise a generic status-based text.
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// newAPIError builds an APIError, falling back to a status-based message.
func newAPIError(status int, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("Request failed: %d %s", status, http.StatusText(status))
	}
	return &APIError{StatusCode: status, Message: message}
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
