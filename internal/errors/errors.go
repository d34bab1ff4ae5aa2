// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeAuth indicates an authentication or authorization failure
	TypeAuth Type = "AUTH_ERROR"

	// TypeNetwork indicates a network error reaching the API
	TypeNetwork Type = "NETWORK_ERROR"

	// TypeAPI indicates an unexpected API response
	TypeAPI Type = "API_ERROR"

	// TypeRateLimit indicates the API rate-limited the request
	TypeRateLimit Type = "RATE_LIMIT"

	// TypeNotFound indicates a resource not found error
	TypeNotFound Type = "NOT_FOUND"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Auth creates an authentication error
func Auth(message string) *Error {
	return New(TypeAuth, message)
}

// Network creates a network error
func Network(message string, cause error) *Error {
	return Wrap(TypeNetwork, message, cause)
}

// RateLimited creates a rate-limit error
func RateLimited(message string) *Error {
	return New(TypeRateLimit, message)
}

// NotFound creates a not found error
func NotFound(resourceType, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", resourceType, identifier)
}

// Config creates a configuration error
func Config(message string) *Error {
	return New(TypeConfig, message)
}

// Input creates an input validation error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}

// FromHTTPStatus classifies a Neon API status code into a typed error.
func FromHTTPStatus(status int, endpoint string) *Error {
	switch status {
	case 401:
		return Auth("authentication failed, check your NEON_API_KEY")
	case 403:
		return Auth("access denied, check your permissions")
	case 404:
		return NotFound("endpoint", endpoint)
	case 429:
		return RateLimited("rate limited, wait and try again")
	default:
		return Newf(TypeAPI, "request to %s failed with status %d", endpoint, status)
	}
}
