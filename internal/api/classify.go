package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/magiceden-go/client-go/internal/apierrors"
)

// Outcome is the result class of one attempt.
type Outcome int

const (
	// OutcomeSuccess ends the call with a decoded value.
	OutcomeSuccess Outcome = iota
	// OutcomePermanent ends the call with an error.
	OutcomePermanent
	// OutcomeTransient asks for another attempt after backoff.
	OutcomeTransient
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomePermanent:
		return "permanent"
	case OutcomeTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// Decision is the classification of one attempt. Err is nil exactly when
// Outcome is OutcomeSuccess.
type Decision struct {
	Outcome Outcome
	Err     error
}

func success() Decision { return Decision{Outcome: OutcomeSuccess} }

func permanent(err error) Decision { return Decision{Outcome: OutcomePermanent, Err: err} }

func transient(err error) Decision { return Decision{Outcome: OutcomeTransient, Err: err} }

// wrappedError is the error body shape of the API.
type wrappedError struct {
	Error *errorBody `json:"error"`
}

type errorBody struct {
	Message *string `json:"message"`
	Type    *string `json:"type"`
	Param   any     `json:"param"`
	Code    any     `json:"code"`
}

var errMissingEnvelope = errors.New(`missing "error.message" in error response`)

// Classifier turns a raw response into a Decision.
type Classifier struct {
	Logger zerolog.Logger
}

// Classify decodes a 2xx payload into result (skipped when result is nil)
// and maps every other status to an APIError. Only a 429 whose type is not
// insufficient_quota is transient.
func (c Classifier) Classify(resp *RawResponse, result any) Decision {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if result == nil {
			return success()
		}
		if err := json.Unmarshal(resp.Body, result); err != nil {
			return permanent(c.deserializationError(resp, err))
		}
		return success()
	}

	var wrapped wrappedError
	if err := json.Unmarshal(resp.Body, &wrapped); err != nil {
		return permanent(c.deserializationError(resp, err))
	}
	if wrapped.Error == nil || wrapped.Error.Message == nil {
		return permanent(c.deserializationError(resp, errMissingEnvelope))
	}

	apiErr := &apierrors.APIError{
		StatusCode: resp.StatusCode,
		Message:    *wrapped.Error.Message,
		Param:      wrapped.Error.Param,
		Code:       wrapped.Error.Code,
		RequestID:  resp.RequestID,
	}
	if wrapped.Error.Type != nil {
		apiErr.Kind = *wrapped.Error.Type
	}

	if resp.StatusCode == http.StatusTooManyRequests && apiErr.Kind != apierrors.KindInsufficientQuota {
		c.Logger.Warn().
			Str("api_message", apiErr.Message).
			Str("request_id", apiErr.RequestID).
			Msg("rate limited")
		return transient(apiErr)
	}
	return permanent(apiErr)
}

func (c Classifier) deserializationError(resp *RawResponse, err error) error {
	c.Logger.Error().
		Err(err).
		Int("status", resp.StatusCode).
		Str("request_id", resp.RequestID).
		Bytes("body", resp.Body).
		Msg("failed deserialization of api response")
	return &apierrors.DeserializationError{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
		Err:        err,
	}
}
