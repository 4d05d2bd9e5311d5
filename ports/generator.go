package ports

import (
	"context"

	"adlens/domain/dataset"
	"adlens/domain/insight"
)

// GeneratorPort proposes hypothesis candidates from summarized trend data.
// The user query is carried for traceability; the heuristic implementation
// does not consume it, but an LLM-backed one would.
type GeneratorPort interface {
	Generate(ctx context.Context, userQuery string, summary *dataset.Summary) ([]insight.Hypothesis, error)
}
