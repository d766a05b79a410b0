package domo

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error from the Domo API.
type APIError struct {
	Status       int     `json:"status"                 yaml:"status"`
	StatusReason *string `json:"statusReason,omitempty" yaml:"statusReason,omitempty"`
	Message      string  `json:"message"                yaml:"message"`
	Path         *string `json:"path,omitempty"         yaml:"path,omitempty"`
	Toe          *string `json:"toe,omitempty"          yaml:"toe,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s (status: %d", e.Message, e.Status)

	if e.StatusReason != nil && *e.StatusReason != "" {
		msg += ", reason: " + *e.StatusReason
	}

	if e.Path != nil && *e.Path != "" {
		msg += ", path: " + *e.Path
	}

	if e.Toe != nil && *e.Toe != "" {
		msg += ", toe: " + *e.Toe
	}

	return msg + ")"
}

// ResponseDecodeError is returned when a non-2xx response carries a body that
// is not a decodable APIError.
type ResponseDecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *ResponseDecodeError) Error() string {
	return fmt.Sprintf("decoding error response (status %d): %v", e.StatusCode, e.Err)
}

// Unwrap returns the decode failure.
func (e *ResponseDecodeError) Unwrap() error {
	return e.Err
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrHostRequired        = errors.New("API host is required")
	ErrCredentialsRequired = errors.New("client id and client secret are required")
	ErrInvalidCollectionID = errors.New("invalid collection id")
	ErrNoDefaultTemplate   = errors.New("account type has no default template")
)

// StatusCode returns the HTTP status carried by err, or 0 if err is neither an
// APIError nor a ResponseDecodeError.
func StatusCode(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}

	decodeErr := &ResponseDecodeError{}
	if errors.As(err, &decodeErr) {
		return decodeErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}
