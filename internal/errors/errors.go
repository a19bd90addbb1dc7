// Package errors provides custom error types for the nexchat client.
package errors

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrEmptyMessage      = errors.New("message is empty")
	ErrStreamFailed      = errors.New("stream failed")
	ErrInvalidResponse   = errors.New("invalid response format")
	ErrTranslationFailed = errors.New("translation failed")
	ErrSpeechUnavailable = errors.New("no speech synthesizer available")
	ErrNoBackend         = errors.New("backend URL not configured")
	ErrClientClosed      = errors.New("client is closed")
)

// APIError represents an API request failure
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error at %s: %s", e.Endpoint, e.Message)
}

// Is allows comparison with other APIErrors
func (e *APIError) Is(target error) bool {
	_, ok := target.(*APIError)
	return ok
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// NewAPIErrorWithBody creates a new APIError carrying the response body
func NewAPIErrorWithBody(statusCode int, endpoint, message, body string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
		Body:       body,
	}
}

// NetworkError represents a transport-level failure reaching an endpoint
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("network error reaching %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is allows comparison with sentinel errors
func (e *NetworkError) Is(target error) bool {
	if target == ErrStreamFailed {
		return true
	}
	_, ok := target.(*NetworkError)
	return ok
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(endpoint string, err error) *NetworkError {
	return &NetworkError{Endpoint: endpoint, Err: err}
}

// TimeoutError represents a request timeout
type TimeoutError struct {
	Message string
}

func (e *TimeoutError) Error() string {
	if e.Message == "" {
		return "request timed out"
	}
	return fmt.Sprintf("request timed out: %s", e.Message)
}

// Is allows comparison with other TimeoutErrors
func (e *TimeoutError) Is(target error) bool {
	_, ok := target.(*TimeoutError)
	return ok
}

// NewTimeoutError creates a new TimeoutError
func NewTimeoutError(message string) *TimeoutError {
	return &TimeoutError{Message: message}
}

// TranslateError represents a translation provider failure
type TranslateError struct {
	Message  string
	Endpoint string
}

func (e *TranslateError) Error() string {
	if e.Message == "" {
		return "translation failed"
	}
	return fmt.Sprintf("translation failed: %s", e.Message)
}

// Is allows comparison with sentinel errors
func (e *TranslateError) Is(target error) bool {
	if target == ErrTranslationFailed {
		return true
	}
	_, ok := target.(*TranslateError)
	return ok
}

// NewTranslateError creates a new TranslateError
func NewTranslateError(endpoint, message string) *TranslateError {
	return &TranslateError{Endpoint: endpoint, Message: message}
}

// ParseError represents a response parsing error
type ParseError struct {
	Message string
	Path    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// NewParseError creates a new ParseError
func NewParseError(message, path string) *ParseError {
	return &ParseError{Message: message, Path: path}
}

// Is allows comparison with sentinel errors
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// IsNetworkError reports whether err is a transport-level failure
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsTimeoutError reports whether err is a timeout, including context deadlines
func IsTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var toErr *TimeoutError
	return errors.As(err, &toErr)
}

// IsTranslateError reports whether err came from the translation provider
func IsTranslateError(err error) bool {
	var trErr *TranslateError
	return errors.As(err, &trErr)
}

// IsSpeechUnavailable reports whether err means no synthesizer was found
func IsSpeechUnavailable(err error) bool {
	return errors.Is(err, ErrSpeechUnavailable)
}

// GetHTTPStatus extracts the HTTP status code from an APIError chain.
// Returns 0 if err carries no status.
func GetHTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// GetEndpoint extracts the endpoint from a structured error chain.
// Returns "" if err carries no endpoint.
func GetEndpoint(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Endpoint
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.Endpoint
	}
	var trErr *TranslateError
	if errors.As(err, &trErr) {
		return trErr.Endpoint
	}
	return ""
}

// GetResponseBody extracts the captured response body from an APIError chain.
// Returns "" if err carries no body.
func GetResponseBody(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Body
	}
	return ""
}
