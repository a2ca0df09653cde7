// Package apierrors provides shared error types for the Magic Eden client.
package apierrors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingBaseURL is returned when the client has no base URL.
	ErrMissingBaseURL = errors.New("base URL is required")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrForbidden is returned when the API key may not access a resource.
	ErrForbidden = errors.New("access forbidden")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when the API throttled the request.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInsufficientQuota is returned when the account quota is used up.
	// The API reports it with the same status code as throttling.
	ErrInsufficientQuota = errors.New("insufficient quota")

	// ErrServerError is returned for 5xx responses.
	ErrServerError = errors.New("server error")

	// ErrRetryBudgetExhausted is returned when retrying would exceed the
	// maximum elapsed time of the backoff policy.
	ErrRetryBudgetExhausted = errors.New("retry budget exhausted")

	// ErrInvalidArgument is returned when request parameters fail local validation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDeserialization is returned when a response body does not match its schema.
	ErrDeserialization = errors.New("failed to deserialize api response")

	// ErrTransport is returned when the request never produced a response.
	ErrTransport = errors.New("transport error")
)

// KindInsufficientQuota is the envelope type that marks a 429 as permanent.
const KindInsufficientQuota = "insufficient_quota"

// APIError is the structured error returned by the Magic Eden API:
//
//	{"error": {"message": "...", "type": "...", "param": ..., "code": ...}}
type APIError struct {
	StatusCode int
	Message    string
	Kind       string
	Param      any
	Code       any
	RequestID  string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "API error %d", e.StatusCode)
	if e.Kind != "" {
		fmt.Fprintf(&b, " (%s)", e.Kind)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.RequestID != "" {
		fmt.Fprintf(&b, " (request_id: %s)", e.RequestID)
	}
	return b.String()
}

// MagicEdenError implements the MagicEdenError interface.
func (e *APIError) MagicEdenError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch {
	case e.StatusCode == 401:
		return target == ErrUnauthorized
	case e.StatusCode == 403:
		return target == ErrForbidden
	case e.StatusCode == 404:
		return target == ErrNotFound
	case e.StatusCode == 429:
		if e.Kind == KindInsufficientQuota {
			return target == ErrInsufficientQuota
		}
		return target == ErrRateLimited
	case e.StatusCode >= 500:
		return target == ErrServerError
	}
	return false
}

// TransportError represents a failure before any response was received:
// connection, TLS, timeout or request construction.
type TransportError struct {
	Method  string
	URL     string
	Attempt int
	Err     error
}

func (e *TransportError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("transport error: %s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// MagicEdenError implements the MagicEdenError interface.
func (e *TransportError) MagicEdenError() {}

// DeserializationError indicates a response body that could not be decoded.
// Body holds the original bytes.
type DeserializationError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("failed to deserialize api response (status %d): %v", e.StatusCode, e.Err)
}

// Unwrap returns the underlying error.
func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DeserializationError) Is(target error) bool {
	return target == ErrDeserialization
}

// MagicEdenError implements the MagicEdenError interface.
func (e *DeserializationError) MagicEdenError() {}

// RetryBudgetExhaustedError wraps the last transient failure seen before the
// retry budget ran out.
type RetryBudgetExhaustedError struct {
	Attempts int
	Elapsed  time.Duration
	Err      error
}

func (e *RetryBudgetExhaustedError) Error() string {
	return fmt.Sprintf("retry budget exhausted after %d attempts (%v): %v", e.Attempts, e.Elapsed.Round(time.Millisecond), e.Err)
}

// Unwrap returns the last transient error.
func (e *RetryBudgetExhaustedError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *RetryBudgetExhaustedError) Is(target error) bool {
	return target == ErrRetryBudgetExhausted
}

// MagicEdenError implements the MagicEdenError interface.
func (e *RetryBudgetExhaustedError) MagicEdenError() {}

// InvalidArgumentError reports a request parameter rejected before any
// network attempt.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid args: %s", e.Reason)
	}
	return fmt.Sprintf("invalid args: %s: %s", e.Field, e.Reason)
}

// Is implements errors.Is for sentinel error matching.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// MagicEdenError implements the MagicEdenError interface.
func (e *InvalidArgumentError) MagicEdenError() {}
