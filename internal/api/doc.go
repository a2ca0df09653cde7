// Package api provides the HTTP plumbing for the Magic Eden API: building
// request descriptors, sending them, classifying responses, and retrying
// rate-limited calls with exponential backoff.
//
// # Client Creation
//
// The package provides two ways to create a client:
//
//   - [NewClient]: Struct-based configuration for explicit, type-safe setup.
//   - [New]: Functional options pattern on top of the default base URL.
//
// An API key is required. It is sent as a bearer token on every request and
// is never logged.
//
// # Request Lifecycle
//
// Every call goes through [Client.Execute]. Each attempt builds a new
// [Descriptor] (with its own X-Request-ID), sends it once through the
// [Transport], and hands the response to the [Classifier]:
//
//   - 2xx: the body is decoded into the result value.
//   - 429 whose error type is not "insufficient_quota": transient, retried.
//   - anything else: permanent, returned as an *apierrors.APIError.
//
// Transport failures and undecodable bodies are permanent.
//
// # Retry Behavior
//
// Waits follow [BackoffPolicy]: InitialInterval, multiplied by Multiplier
// after each retry, capped at MaxInterval, without jitter. A retry is not
// started if it would push the total elapsed time past MaxElapsedTime; the
// call then fails with *apierrors.RetryBudgetExhaustedError wrapping the
// last rate-limit error.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Every call owns its backoff
// state.
package api
