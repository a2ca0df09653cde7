package api

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/magiceden-go/client-go/internal/apierrors"
)

// BackoffPolicy configures the retry schedule for transient failures.
// Intervals grow as InitialInterval * Multiplier^attempt, capped at
// MaxInterval. A retry is skipped when the elapsed time plus the next
// interval would exceed MaxElapsedTime; zero means no limit.
type BackoffPolicy struct {
	InitialInterval time.Duration
	Multiplier      float64
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultBackoffPolicy returns the default retry policy.
func DefaultBackoffPolicy() BackoffPolicy {
	return BackoffPolicy{
		InitialInterval: backoff.DefaultInitialInterval,
		Multiplier:      backoff.DefaultMultiplier,
		MaxInterval:     backoff.DefaultMaxInterval,
		MaxElapsedTime:  15 * time.Minute,
	}
}

// Validate reports whether the policy yields non-decreasing intervals.
func (p BackoffPolicy) Validate() error {
	switch {
	case p.InitialInterval <= 0:
		return &apierrors.InvalidArgumentError{Field: "backoff.initialInterval", Reason: "must be positive"}
	case p.Multiplier < 1:
		return &apierrors.InvalidArgumentError{Field: "backoff.multiplier", Reason: "must be at least 1"}
	case p.MaxInterval < p.InitialInterval:
		return &apierrors.InvalidArgumentError{Field: "backoff.maxInterval", Reason: "must not be below the initial interval"}
	case p.MaxElapsedTime < 0:
		return &apierrors.InvalidArgumentError{Field: "backoff.maxElapsedTime", Reason: "must not be negative"}
	}
	return nil
}

// intervals returns a fresh interval generator. Each call gets its own, so
// concurrent executions never share backoff state.
func (p BackoffPolicy) intervals() *backoff.ExponentialBackOff {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     p.InitialInterval,
		RandomizationFactor: 0,
		Multiplier:          p.Multiplier,
		MaxInterval:         p.MaxInterval,
	}
	b.Reset()
	return b
}

// Delay returns the wait before the retry that follows attempt (0-based).
func (p BackoffPolicy) Delay(attempt int) time.Duration {
	b := p.intervals()
	d := b.NextBackOff()
	for i := 0; i < attempt; i++ {
		d = b.NextBackOff()
	}
	return d
}

type retryState int

const (
	stateAttempting retryState = iota
	stateWaitingBackoff
	stateDone
)

// Execute runs build → send → classify until the classifier reports success
// or a permanent failure, or the retry budget runs out. On success the
// response is decoded into result. The returned error is always the latest
// failure observed.
func (c *Client) Execute(ctx context.Context, build RequestFunc, result any) error {
	ctx, span := c.tracer.Start(ctx, "magiceden.request", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	start := time.Now()
	intervals := c.backoff.intervals()

	var (
		state   = stateAttempting
		attempt int
		wait    time.Duration
		err     error
	)

	for state != stateDone {
		switch state {
		case stateAttempting:
			if ctxErr := ctx.Err(); ctxErr != nil {
				err = ctxErr
				state = stateDone
				break
			}

			d, buildErr := build()
			if buildErr != nil {
				err = buildErr
				state = stateDone
				break
			}
			if attempt == 0 {
				span.SetName(fmt.Sprintf("magiceden %s %s", d.Method(), d.Path()))
				span.SetAttributes(
					attribute.String("http.request.method", d.Method()),
					attribute.String("url.path", d.Path()),
				)
			}

			decision := c.attempt(ctx, d, attempt, result)
			switch decision.Outcome {
			case OutcomeSuccess:
				err = nil
				state = stateDone
			case OutcomePermanent:
				err = decision.Err
				state = stateDone
			case OutcomeTransient:
				wait = intervals.NextBackOff()
				elapsed := time.Since(start)
				if c.backoff.MaxElapsedTime > 0 && elapsed+wait > c.backoff.MaxElapsedTime {
					c.logger.Warn().
						Int("attempts", attempt+1).
						Dur("elapsed", elapsed).
						Str("path", d.Path()).
						Msg("retry budget exhausted")
					err = &apierrors.RetryBudgetExhaustedError{
						Attempts: attempt + 1,
						Elapsed:  elapsed,
						Err:      decision.Err,
					}
					state = stateDone
					break
				}
				err = decision.Err
				state = stateWaitingBackoff
			}

		case stateWaitingBackoff:
			c.logger.Debug().
				Int("attempt", attempt+1).
				Dur("wait", wait).
				Msg("retrying request")
			span.AddEvent("retry", trace.WithAttributes(
				attribute.Int("attempt", attempt+1),
				attribute.Int64("wait_ms", wait.Milliseconds()),
			))
			if sleepErr := sleep(ctx, wait); sleepErr != nil {
				err = sleepErr
				state = stateDone
				break
			}
			attempt++
			state = stateAttempting
		}
	}

	span.SetAttributes(attribute.Int("magiceden.attempts", attempt+1))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// attempt performs one send and classification. Exactly one outcome is
// produced per call.
func (c *Client) attempt(ctx context.Context, d *Descriptor, attempt int, result any) Decision {
	resp, err := c.send(ctx, d, attempt+1)
	if err != nil {
		return permanent(err)
	}
	return c.classifier.Classify(resp, result)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
