package app

import (
	"errors"
	"testing"
	"time"
)

func testPolicy(maxAttempts int) RetryPolicy {
	return RetryPolicy{
		MaxAttempts:   maxAttempts,
		BaseDelay:     time.Millisecond,
		BackoffFactor: 2.0,
	}.WithSleep(func(time.Duration) {})
}

func TestRetry_SucceedsAfterTransientFailures(t *testing.T) {
	failures := 2
	calls := 0
	retries := []int{}

	policy := testPolicy(3)
	policy.OnRetry = func(attempt int, err error) {
		retries = append(retries, attempt)
	}

	got, err := Retry(policy, "flaky", func() (string, error) {
		calls++
		if calls <= failures {
			return "", errors.New("transient")
		}
		return "done", nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got != "done" {
		t.Errorf("expected result %q, got %q", "done", got)
	}
	if calls != failures+1 {
		t.Errorf("expected %d calls, got %d", failures+1, calls)
	}
	if len(retries) != failures {
		t.Errorf("expected %d retry callbacks, got %d (%v)", failures, len(retries), retries)
	}
}

func TestRetry_ExhaustsBudget(t *testing.T) {
	calls := 0
	rootCause := errors.New("always broken")

	_, err := Retry(testPolicy(3), "doomed", func() (int, error) {
		calls++
		return 0, rootCause
	})
	if calls != 3 {
		t.Errorf("expected exactly 3 calls, got %d", calls)
	}

	var exhausted *RetryExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected RetryExhaustedError, got %v", err)
	}
	if exhausted.Op != "doomed" {
		t.Errorf("error must name the operation, got %q", exhausted.Op)
	}
	if exhausted.Attempts != 3 {
		t.Errorf("expected 3 attempts recorded, got %d", exhausted.Attempts)
	}
	if !errors.Is(err, rootCause) {
		t.Error("exhaustion error must wrap the root cause")
	}
}

func TestRetry_NonRetryablePropagatesImmediately(t *testing.T) {
	fatal := errors.New("bad input")
	calls := 0

	policy := testPolicy(3)
	policy.Retryable = func(err error) bool { return !errors.Is(err, fatal) }

	_, err := Retry(policy, "guarded", func() (int, error) {
		calls++
		return 0, fatal
	})
	if calls != 1 {
		t.Errorf("non-retryable error must not be retried, got %d calls", calls)
	}
	if !errors.Is(err, fatal) {
		t.Errorf("expected the original error, got %v", err)
	}
	var exhausted *RetryExhaustedError
	if errors.As(err, &exhausted) {
		t.Error("non-retryable error must not be wrapped as exhaustion")
	}
}

func TestRetry_BackoffGrows(t *testing.T) {
	delays := []time.Duration{}
	policy := RetryPolicy{
		MaxAttempts:   4,
		BaseDelay:     100 * time.Millisecond,
		BackoffFactor: 2.0,
	}.WithSleep(func(d time.Duration) { delays = append(delays, d) })

	_, _ = Retry(policy, "slow", func() (int, error) {
		return 0, errors.New("nope")
	})

	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond}
	if len(delays) != len(want) {
		t.Fatalf("expected %d sleeps, got %d", len(want), len(delays))
	}
	for i, d := range want {
		if delays[i] != d {
			t.Errorf("sleep %d: expected %v, got %v", i, d, delays[i])
		}
	}
}
