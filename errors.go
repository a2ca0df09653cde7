package magiceden

import "github.com/magiceden-go/client-go/internal/apierrors"

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrMissingBaseURL is returned when the base URL is empty.
	ErrMissingBaseURL = apierrors.ErrMissingBaseURL

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrForbidden is returned for 403 responses.
	ErrForbidden = apierrors.ErrForbidden

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = apierrors.ErrNotFound

	// ErrRateLimited is returned for throttled requests once retrying stops.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrInsufficientQuota is returned when the account has no quota left.
	// These responses are never retried.
	ErrInsufficientQuota = apierrors.ErrInsufficientQuota

	// ErrServerError is returned for 5xx responses.
	ErrServerError = apierrors.ErrServerError

	// ErrRetryBudgetExhausted is returned when the backoff policy's maximum
	// elapsed time would be exceeded by another retry.
	ErrRetryBudgetExhausted = apierrors.ErrRetryBudgetExhausted

	// ErrInvalidArgument is returned when parameters fail local validation.
	ErrInvalidArgument = apierrors.ErrInvalidArgument

	// ErrDeserialization is returned when a response body cannot be decoded.
	ErrDeserialization = apierrors.ErrDeserialization

	// ErrTransport is returned when no response was received.
	ErrTransport = apierrors.ErrTransport
)

// MagicEdenError is implemented by all typed errors of this package.
type MagicEdenError interface {
	error
	MagicEdenError() // marker method
}

// APIError is an error response of the Magic Eden API.
type APIError = apierrors.APIError

// TransportError is a failure to complete an HTTP round trip.
type TransportError = apierrors.TransportError

// DeserializationError carries a response body that could not be decoded.
type DeserializationError = apierrors.DeserializationError

// RetryBudgetExhaustedError wraps the last rate-limit error once the retry
// budget is spent.
type RetryBudgetExhaustedError = apierrors.RetryBudgetExhaustedError

// InvalidArgumentError reports a parameter rejected before sending.
type InvalidArgumentError = apierrors.InvalidArgumentError
