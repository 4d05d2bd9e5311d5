package app

import (
	"context"

	"adlens/domain/dataset"
	"adlens/domain/insight"
	"adlens/internal/logging"
	"adlens/ports"

	"go.uber.org/zap"
)

// EvaluatorService runs hypothesis evaluation under the retry contract with
// the same fallback shape as InsightService.
type EvaluatorService struct {
	primary  ports.EvaluatorPort
	fallback ports.EvaluatorPort
	retry    RetryPolicy
	log      *logging.Logger
}

// NewEvaluatorService creates the service.
func NewEvaluatorService(primary, fallback ports.EvaluatorPort, retry RetryPolicy, log *logging.Logger) *EvaluatorService {
	return &EvaluatorService{primary: primary, fallback: fallback, retry: retry, log: log}
}

// Evaluate scores every hypothesis against the table, 1:1 with the input.
func (s *EvaluatorService) Evaluate(ctx context.Context, table *dataset.Table, hypotheses []insight.Hypothesis) ([]insight.EvaluatedHypothesis, error) {
	policy := s.retry
	policy.OnRetry = func(attempt int, err error) {
		s.log.Retrying("EvaluatorAgent", "evaluate", "retry",
			zap.Int("attempt", attempt), zap.String("error", err.Error()))
	}

	evaluated, err := Retry(policy, "evaluate_hypotheses", func() ([]insight.EvaluatedHypothesis, error) {
		return s.primary.Evaluate(ctx, table, hypotheses)
	})
	if err != nil {
		s.log.ErrorEvent("EvaluatorAgent", "evaluate", "fallback_after_error",
			zap.String("error", err.Error()))
		evaluated, err = s.fallback.Evaluate(ctx, table, hypotheses)
		if err != nil {
			return nil, err
		}
	}

	s.log.Event("EvaluatorAgent", "evaluate", "evaluated_hypotheses",
		zap.Int("count", len(evaluated)))
	return evaluated, nil
}
