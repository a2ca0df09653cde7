package magiceden

import (
	"errors"
	"testing"
	"time"
)

func TestErrors_ImplementMagicEdenError(t *testing.T) {
	errs := []error{
		&APIError{StatusCode: 400, Message: "bad"},
		&TransportError{Err: errors.New("dial")},
		&DeserializationError{Err: errors.New("eof")},
		&RetryBudgetExhaustedError{Attempts: 3, Elapsed: time.Second, Err: &APIError{StatusCode: 429}},
		&InvalidArgumentError{Field: "limit", Reason: "too big"},
	}

	for _, err := range errs {
		var mErr MagicEdenError
		if !errors.As(err, &mErr) {
			t.Errorf("%T does not implement MagicEdenError", err)
		}
	}
}

func TestAPIError_Sentinels(t *testing.T) {
	tests := []struct {
		err    *APIError
		target error
	}{
		{&APIError{StatusCode: 401}, ErrUnauthorized},
		{&APIError{StatusCode: 403}, ErrForbidden},
		{&APIError{StatusCode: 404}, ErrNotFound},
		{&APIError{StatusCode: 429}, ErrRateLimited},
		{&APIError{StatusCode: 429, Kind: "insufficient_quota"}, ErrInsufficientQuota},
		{&APIError{StatusCode: 502}, ErrServerError},
	}

	for _, tt := range tests {
		if !errors.Is(tt.err, tt.target) {
			t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.target)
		}
	}

	if errors.Is(&APIError{StatusCode: 429, Kind: "insufficient_quota"}, ErrRateLimited) {
		t.Error("insufficient quota must not match ErrRateLimited")
	}
}

func TestRetryBudgetExhaustedError_Unwrap(t *testing.T) {
	last := &APIError{StatusCode: 429, Message: "slow down"}
	err := &RetryBudgetExhaustedError{Attempts: 4, Elapsed: 2 * time.Second, Err: last}

	if !errors.Is(err, ErrRetryBudgetExhausted) {
		t.Error("should match ErrRetryBudgetExhausted")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr != last {
		t.Error("should unwrap to the last API error")
	}
}
