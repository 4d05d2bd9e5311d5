package ports

import (
	"context"

	"adlens/domain/dataset"
	"adlens/domain/insight"
)

// EvaluatorPort scores hypotheses against the raw table. Implementations
// must return exactly one EvaluatedHypothesis per input Hypothesis, in the
// same ID order.
type EvaluatorPort interface {
	Evaluate(ctx context.Context, table *dataset.Table, hypotheses []insight.Hypothesis) ([]insight.EvaluatedHypothesis, error)
}
