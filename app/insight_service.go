package app

import (
	"context"

	"adlens/domain/dataset"
	"adlens/domain/insight"
	"adlens/internal/logging"
	"adlens/ports"

	"go.uber.org/zap"
)

// InsightService runs hypothesis generation under the retry contract. When
// the primary generator fails permanently, it falls back to the
// deterministic rule-based generator so the pipeline keeps moving.
type InsightService struct {
	primary  ports.GeneratorPort
	fallback ports.GeneratorPort
	retry    RetryPolicy
	log      *logging.Logger
}

// NewInsightService creates the service. Primary and fallback may be the
// same adapter; the fallback must be deterministic.
func NewInsightService(primary, fallback ports.GeneratorPort, retry RetryPolicy, log *logging.Logger) *InsightService {
	return &InsightService{primary: primary, fallback: fallback, retry: retry, log: log}
}

// Generate proposes hypotheses for the run. Failures of the primary
// generator are absorbed: after the retry budget is spent the fallback
// output is used and the failure is visible only in the log stream.
func (s *InsightService) Generate(ctx context.Context, userQuery string, summary *dataset.Summary) ([]insight.Hypothesis, error) {
	policy := s.retry
	policy.OnRetry = func(attempt int, err error) {
		s.log.Retrying("InsightAgent", "generate", "retry",
			zap.Int("attempt", attempt), zap.String("error", err.Error()))
	}

	hypotheses, err := Retry(policy, "generate_hypotheses", func() ([]insight.Hypothesis, error) {
		return s.primary.Generate(ctx, userQuery, summary)
	})
	if err != nil {
		s.log.ErrorEvent("InsightAgent", "generate", "fallback_after_error",
			zap.String("error", err.Error()))
		hypotheses, err = s.fallback.Generate(ctx, userQuery, summary)
		if err != nil {
			return nil, err
		}
	}

	s.log.Event("InsightAgent", "generate", "generated_hypotheses",
		zap.Int("count", len(hypotheses)))
	return hypotheses, nil
}
