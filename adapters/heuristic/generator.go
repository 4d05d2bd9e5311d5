package heuristic

import (
	"context"

	"adlens/domain/dataset"
	"adlens/domain/insight"
)

// Generator derives hypotheses from trend direction with simple
// deterministic rules. It serves both as the default generator and as the
// fallback when a non-deterministic generator fails permanently.
type Generator struct{}

// NewGenerator creates a heuristic hypothesis generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate proposes hypotheses from the per-date ROAS means. With fewer than
// two distinct dates there is no trend to read, so a single generic
// low-confidence hypothesis is emitted. The result is never empty.
func (g *Generator) Generate(ctx context.Context, userQuery string, summary *dataset.Summary) ([]insight.Hypothesis, error) {
	roasByDate := summary.ROASByDate

	if len(roasByDate) >= 2 {
		dates := summary.SortedDates()
		first, last := dates[0], dates[len(dates)-1]
		roasChange := roasByDate[last] - roasByDate[first]

		if roasChange < 0 {
			return []insight.Hypothesis{{
				ID:              "h1",
				Statement:       "ROAS decreased over time, possibly due to creative fatigue or audience saturation.",
				Mechanism:       "Later dates show lower average ROAS than earlier dates, while spend stays similar.",
				ExpectedSignals: "Declining ROAS and CTR for the same creative_message or audience_type.",
				Confidence:      insight.ConfidenceMedium,
			}}, nil
		}
		return []insight.Hypothesis{{
			ID:              "h1",
			Statement:       "ROAS improved over time, possibly due to better audience targeting or creatives.",
			Mechanism:       "Later dates show higher average ROAS than earlier dates.",
			ExpectedSignals: "Increasing ROAS and CTR for key campaigns/adsets.",
			Confidence:      insight.ConfidenceMedium,
		}}, nil
	}

	return []insight.Hypothesis{{
		ID:              "h-generic",
		Statement:       "ROAS variation seems stable; small fluctuations may be noise.",
		Mechanism:       "No strong monotonic trend visible in ROAS by date.",
		ExpectedSignals: "ROAS by date roughly flat.",
		Confidence:      insight.ConfidenceLow,
	}}, nil
}
