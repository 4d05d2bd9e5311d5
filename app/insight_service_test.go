package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"adlens/domain/dataset"
	"adlens/domain/insight"
	"adlens/internal/logging"
)

type stubGenerator struct {
	calls      int
	failUntil  int // fail the first failUntil calls
	hypotheses []insight.Hypothesis
}

func (s *stubGenerator) Generate(ctx context.Context, userQuery string, summary *dataset.Summary) ([]insight.Hypothesis, error) {
	s.calls++
	if s.calls <= s.failUntil {
		return nil, errors.New("model unavailable")
	}
	return s.hypotheses, nil
}

func servicePolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, BackoffFactor: 2.0}
}

func TestInsightService_PrimarySucceeds(t *testing.T) {
	primary := &stubGenerator{hypotheses: []insight.Hypothesis{{ID: "h1"}}}
	fallback := &stubGenerator{hypotheses: []insight.Hypothesis{{ID: "h-generic"}}}
	svc := NewInsightService(primary, fallback, servicePolicy(), logging.NewNop())

	got, err := svc.Generate(context.Background(), "q", &dataset.Summary{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "h1" {
		t.Errorf("expected the primary output, got %+v", got)
	}
	if fallback.calls != 0 {
		t.Errorf("fallback must not run when the primary succeeds, ran %d times", fallback.calls)
	}
}

func TestInsightService_RecoversWithinBudget(t *testing.T) {
	primary := &stubGenerator{failUntil: 2, hypotheses: []insight.Hypothesis{{ID: "h1"}}}
	fallback := &stubGenerator{hypotheses: []insight.Hypothesis{{ID: "h-generic"}}}
	svc := NewInsightService(primary, fallback, servicePolicy(), logging.NewNop())

	got, err := svc.Generate(context.Background(), "q", &dataset.Summary{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if primary.calls != 3 {
		t.Errorf("expected 3 primary attempts, got %d", primary.calls)
	}
	if got[0].ID != "h1" {
		t.Errorf("expected the primary output after retries, got %+v", got)
	}
	if fallback.calls != 0 {
		t.Errorf("fallback must not run on recovery, ran %d times", fallback.calls)
	}
}

func TestInsightService_FallsBackAfterExhaustion(t *testing.T) {
	primary := &stubGenerator{failUntil: 100}
	fallback := &stubGenerator{hypotheses: []insight.Hypothesis{{ID: "h-generic"}}}
	svc := NewInsightService(primary, fallback, servicePolicy(), logging.NewNop())

	got, err := svc.Generate(context.Background(), "q", &dataset.Summary{})
	if err != nil {
		t.Fatalf("fallback must absorb primary failure, got %v", err)
	}
	if primary.calls != 3 {
		t.Errorf("expected exactly 3 primary attempts, got %d", primary.calls)
	}
	if fallback.calls != 1 {
		t.Errorf("expected exactly 1 fallback call, got %d", fallback.calls)
	}
	if len(got) != 1 || got[0].ID != "h-generic" {
		t.Errorf("expected the fallback output, got %+v", got)
	}
}

func TestInsightService_FallbackFailureIsFatal(t *testing.T) {
	primary := &stubGenerator{failUntil: 100}
	fallback := &stubGenerator{failUntil: 100}
	svc := NewInsightService(primary, fallback, servicePolicy(), logging.NewNop())

	if _, err := svc.Generate(context.Background(), "q", &dataset.Summary{}); err == nil {
		t.Fatal("expected an error when both generators fail")
	}
}
