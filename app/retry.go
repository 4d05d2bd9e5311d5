package app

import (
	"fmt"
	"time"
)

// RetryPolicy is an explicit retry contract for a named operation: bounded
// attempts with exponential backoff. It is mechanical and reusable across
// any stage.
type RetryPolicy struct {
	// MaxAttempts is the total attempt budget, including the first call.
	MaxAttempts int
	// BaseDelay is slept before the second attempt.
	BaseDelay time.Duration
	// BackoffFactor multiplies the delay after each retry.
	BackoffFactor float64
	// Retryable classifies errors; a nil classifier treats every error as
	// retryable. Non-retryable errors propagate immediately without
	// consuming an attempt from the budget.
	Retryable func(error) bool
	// OnRetry, when set, is invoked with the attempt number and error
	// before each sleep-and-retry.
	OnRetry func(attempt int, err error)

	// sleep is replaceable in tests; nil means time.Sleep.
	sleep func(time.Duration)
}

// DefaultRetryPolicy mirrors the pipeline's default budget: three attempts,
// 200ms before the second, doubling after.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:   3,
		BaseDelay:     200 * time.Millisecond,
		BackoffFactor: 2.0,
	}
}

// WithSleep returns a copy of the policy using the given sleep function.
func (p RetryPolicy) WithSleep(sleep func(time.Duration)) RetryPolicy {
	p.sleep = sleep
	return p
}

// RetryExhaustedError reports that an operation failed on every attempt. It
// wraps the last underlying failure and names the operation.
type RetryExhaustedError struct {
	Op       string
	Attempts int
	Err      error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("operation %s failed after %d attempts: %v", e.Op, e.Attempts, e.Err)
}

func (e *RetryExhaustedError) Unwrap() error {
	return e.Err
}

// Retry executes op under the policy and returns its result, or a
// *RetryExhaustedError once the attempt budget is spent.
func Retry[T any](p RetryPolicy, name string, op func() (T, error)) (T, error) {
	var zero T
	sleep := p.sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	delay := p.BaseDelay
	attempt := 0
	var lastErr error
	for attempt < p.MaxAttempts {
		result, err := op()
		if err == nil {
			return result, nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return zero, err
		}
		lastErr = err
		attempt++
		if attempt >= p.MaxAttempts {
			break
		}
		if p.OnRetry != nil {
			p.OnRetry(attempt, err)
		}
		sleep(delay)
		delay = time.Duration(float64(delay) * p.BackoffFactor)
	}
	return zero, &RetryExhaustedError{Op: name, Attempts: p.MaxAttempts, Err: lastErr}
}
