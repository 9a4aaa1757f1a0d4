// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package enrich

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/config"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/tmdb"
)

func TestDefaultRetryPolicy(t *testing.T) {
	p := DefaultRetryPolicy()
	if p.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", p.MaxAttempts)
	}
	if p.Delay != time.Second {
		t.Errorf("Delay = %v, want 1s", p.Delay)
	}
	if p.Backoff != BackoffFixed {
		t.Errorf("Backoff = %q, want %q", p.Backoff, BackoffFixed)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestPolicyFromConfig(t *testing.T) {
	cfg := &config.EnrichConfig{
		Workers:     4,
		MaxAttempts: 5,
		RetryDelay:  250 * time.Millisecond,
		Backoff:     "exponential",
		MaxDelay:    2 * time.Second,
	}
	p := PolicyFromConfig(cfg)
	if p.MaxAttempts != 5 || p.Delay != 250*time.Millisecond || p.Backoff != BackoffExponential || p.MaxDelay != 2*time.Second {
		t.Errorf("PolicyFromConfig() = %+v", p)
	}
}

func TestRetryPolicyValidate(t *testing.T) {
	tests := []struct {
		name    string
		policy  RetryPolicy
		wantErr bool
	}{
		{"default", DefaultRetryPolicy(), false},
		{"single attempt", RetryPolicy{MaxAttempts: 1}, false},
		{"empty backoff", RetryPolicy{MaxAttempts: 2, Delay: time.Millisecond}, false},
		{"zero attempts", RetryPolicy{MaxAttempts: 0}, true},
		{"negative delay", RetryPolicy{MaxAttempts: 1, Delay: -time.Second}, true},
		{"unknown backoff", RetryPolicy{MaxAttempts: 1, Backoff: "linear"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRetryPolicyDelayFor(t *testing.T) {
	fixed := RetryPolicy{MaxAttempts: 3, Delay: time.Second, Backoff: BackoffFixed}
	exp := RetryPolicy{MaxAttempts: 6, Delay: time.Second, Backoff: BackoffExponential, MaxDelay: 5 * time.Second}
	uncapped := RetryPolicy{MaxAttempts: 6, Delay: time.Second, Backoff: BackoffExponential}

	tests := []struct {
		name    string
		policy  RetryPolicy
		attempt int
		want    time.Duration
	}{
		{"fixed first", fixed, 1, time.Second},
		{"fixed second", fixed, 2, time.Second},
		{"fixed tenth", fixed, 10, time.Second},
		{"exponential first", exp, 1, time.Second},
		{"exponential second", exp, 2, 2 * time.Second},
		{"exponential third", exp, 3, 4 * time.Second},
		{"exponential capped", exp, 4, 5 * time.Second},
		{"exponential uncapped", uncapped, 4, 8 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.DelayFor(tt.attempt); got != tt.want {
				t.Errorf("DelayFor(%d) = %v, want %v", tt.attempt, got, tt.want)
			}
		})
	}
}

func TestRetryPolicyDo(t *testing.T) {
	connErr := fmt.Errorf("%w: induced", tmdb.ErrConnectivity)
	permErr := errors.New("bad request")
	policy := RetryPolicy{MaxAttempts: 3, Delay: time.Millisecond, Backoff: BackoffFixed}

	tests := []struct {
		name         string
		errs         []error // returned in order; nil after the slice ends
		wantAttempts int
		wantErr      error
	}{
		{"success first try", nil, 1, nil},
		{"success after one connectivity failure", []error{connErr}, 2, nil},
		{"success on last attempt", []error{connErr, connErr}, 3, nil},
		{"connectivity exhausts attempts", []error{connErr, connErr, connErr, connErr}, 3, tmdb.ErrConnectivity},
		{"permanent error not retried", []error{permErr}, 1, permErr},
		{"not found not retried", []error{tmdb.ErrNotFound}, 1, tmdb.ErrNotFound},
		{"permanent after connectivity", []error{connErr, permErr}, 2, permErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			attempts, err := policy.Do(context.Background(), func(context.Context) error {
				defer func() { calls++ }()
				if calls < len(tt.errs) {
					return tt.errs[calls]
				}
				return nil
			})

			if attempts != tt.wantAttempts {
				t.Errorf("Do() attempts = %d, want %d", attempts, tt.wantAttempts)
			}
			if calls != tt.wantAttempts {
				t.Errorf("fn called %d times, want %d", calls, tt.wantAttempts)
			}
			if tt.wantErr == nil && err != nil {
				t.Errorf("Do() error = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Do() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRetryPolicyDoWaitsBetweenAttempts(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 3, Delay: 20 * time.Millisecond, Backoff: BackoffFixed}

	start := time.Now()
	attempts, err := policy.Do(context.Background(), func(context.Context) error {
		return tmdb.ErrConnectivity
	})
	elapsed := time.Since(start)

	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
	if !errors.Is(err, tmdb.ErrConnectivity) {
		t.Errorf("error = %v, want ErrConnectivity", err)
	}
	// Two waits between three attempts.
	if elapsed < 40*time.Millisecond {
		t.Errorf("elapsed = %v, want at least 40ms", elapsed)
	}
}

func TestRetryPolicyDoCustomRetryable(t *testing.T) {
	errFlaky := errors.New("flaky")
	policy := RetryPolicy{
		MaxAttempts: 4,
		Delay:       time.Millisecond,
		Retryable:   func(err error) bool { return errors.Is(err, errFlaky) },
	}

	calls := 0
	attempts, err := policy.Do(context.Background(), func(context.Context) error {
		calls++
		return errFlaky
	})
	if attempts != 4 || calls != 4 {
		t.Errorf("attempts = %d, calls = %d, want 4 and 4", attempts, calls)
	}
	if !errors.Is(err, errFlaky) {
		t.Errorf("error = %v, want errFlaky", err)
	}
}

func TestRetryPolicyDoCanceled(t *testing.T) {
	t.Run("before first attempt", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		attempts, err := DefaultRetryPolicy().Do(ctx, func(context.Context) error {
			t.Error("fn should not be called")
			return nil
		})
		if attempts != 0 {
			t.Errorf("attempts = %d, want 0", attempts)
		}
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})

	t.Run("during wait", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		policy := RetryPolicy{MaxAttempts: 3, Delay: time.Hour, Backoff: BackoffFixed}

		done := make(chan struct{})
		var attempts int
		var err error
		go func() {
			defer close(done)
			attempts, err = policy.Do(ctx, func(context.Context) error {
				return tmdb.ErrConnectivity
			})
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("Do() did not return after cancel")
		}
		if attempts != 1 {
			t.Errorf("attempts = %d, want 1", attempts)
		}
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}
