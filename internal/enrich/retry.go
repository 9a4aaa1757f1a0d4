// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package enrich

import (
	"context"
	"fmt"
	"time"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/config"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/metrics"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/tmdb"
)

// Backoff selects how the wait between attempts grows.
type Backoff string

const (
	// BackoffFixed waits Delay between every attempt.
	BackoffFixed Backoff = "fixed"

	// BackoffExponential doubles the wait after each attempt, capped at MaxDelay.
	BackoffExponential Backoff = "exponential"
)

// RetryPolicy bounds retries of one catalog call.
type RetryPolicy struct {
	// MaxAttempts is the total number of tries, including the first.
	MaxAttempts int

	// Delay is the wait before the second attempt.
	Delay time.Duration

	Backoff Backoff

	// MaxDelay caps exponential growth. Zero means uncapped.
	MaxDelay time.Duration

	// Retryable decides which errors are retried. Nil retries only
	// catalog connectivity failures.
	Retryable func(error) bool
}

// DefaultRetryPolicy makes 3 attempts one second apart.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Delay:       time.Second,
		Backoff:     BackoffFixed,
	}
}

// PolicyFromConfig builds a policy from enrichment settings.
func PolicyFromConfig(cfg *config.EnrichConfig) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: cfg.MaxAttempts,
		Delay:       cfg.RetryDelay,
		Backoff:     Backoff(cfg.Backoff),
		MaxDelay:    cfg.MaxDelay,
	}
}

// Validate rejects policies that could never make an attempt.
func (p RetryPolicy) Validate() error {
	if p.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be at least 1, got %d", p.MaxAttempts)
	}
	if p.Delay < 0 {
		return fmt.Errorf("delay must not be negative")
	}
	switch p.Backoff {
	case BackoffFixed, BackoffExponential, "":
	default:
		return fmt.Errorf("unknown backoff %q", p.Backoff)
	}
	return nil
}

// DelayFor returns the wait after the given failed attempt (1-based).
func (p RetryPolicy) DelayFor(attempt int) time.Duration {
	if p.Backoff != BackoffExponential || attempt <= 1 {
		return p.Delay
	}
	d := p.Delay
	for i := 1; i < attempt; i++ {
		d *= 2
		if p.MaxDelay > 0 && d >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	return d
}

func (p RetryPolicy) retryable(err error) bool {
	if p.Retryable != nil {
		return p.Retryable(err)
	}
	return tmdb.IsConnectivity(err)
}

// Do runs fn until it succeeds, fails with a non-retryable error, or
// MaxAttempts is reached. It returns the number of attempts made and the
// last error. Waits between attempts end early when ctx is done.
func (p RetryPolicy) Do(ctx context.Context, fn func(ctx context.Context) error) (int, error) {
	var err error
	attempts := max(p.MaxAttempts, 1)

	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return attempt - 1, ctx.Err()
		}

		err = fn(ctx)
		if err == nil {
			return attempt, nil
		}
		if !p.retryable(err) || attempt == attempts {
			return attempt, err
		}

		metrics.RecordEnrichRetry()
		timer := time.NewTimer(p.DelayFor(attempt))
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return attempt, ctx.Err()
		}
	}

	return attempts, err
}
