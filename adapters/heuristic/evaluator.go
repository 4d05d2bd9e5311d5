package heuristic

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"adlens/domain/dataset"
	"adlens/domain/insight"

	"github.com/montanaflynn/stats"
)

// Evaluator scores hypotheses against the raw table using trend-direction
// rules. The trend is recomputed here from the table's own date column,
// independently of the upstream summary.
type Evaluator struct{}

// NewEvaluator creates a heuristic hypothesis evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns exactly one EvaluatedHypothesis per input hypothesis, in
// input order. Evaluation never drops or adds entries.
func (e *Evaluator) Evaluate(ctx context.Context, table *dataset.Table, hypotheses []insight.Hypothesis) ([]insight.EvaluatedHypothesis, error) {
	results := make([]insight.EvaluatedHypothesis, 0, len(hypotheses))

	if !table.HasColumn("date") || !table.HasColumn("roas") {
		for _, h := range hypotheses {
			results = append(results, insight.EvaluatedHypothesis{
				ID:               h.ID,
				Statement:        h.Statement,
				ValidationResult: insight.ResultInconclusive,
				ConfidenceScore:  0.3,
				Evidence:         "Required columns for trend analysis are missing.",
			})
		}
		return results, nil
	}

	firstMean, lastMean, roasChange := roasTrend(table)

	for _, h := range hypotheses {
		statement := strings.ToLower(h.Statement)

		var result insight.ValidationResult
		var score float64
		var evidence string

		switch {
		case strings.Contains(statement, "decreased"):
			if roasChange < 0 {
				result = insight.ResultSupported
				score = 0.8
				evidence = fmt.Sprintf("Average ROAS decreased from %.2f to %.2f.", firstMean, lastMean)
			} else {
				result = insight.ResultRejected
				score = 0.4
				evidence = "ROAS did not show a clear downward trend over time."
			}
		case strings.Contains(statement, "improved"):
			if roasChange > 0 {
				result = insight.ResultSupported
				score = 0.8
				evidence = fmt.Sprintf("Average ROAS increased from %.2f to %.2f.", firstMean, lastMean)
			} else {
				result = insight.ResultRejected
				score = 0.4
				evidence = "ROAS did not show a clear upward trend over time."
			}
		default:
			result = insight.ResultInconclusive
			score = 0.5
			evidence = "Hypothesis is generic; data neither strongly supports nor rejects it."
		}

		results = append(results, insight.EvaluatedHypothesis{
			ID:               h.ID,
			Statement:        h.Statement,
			ValidationResult: result,
			ConfidenceScore:  score,
			Evidence:         evidence,
		})
	}

	return results, nil
}

// roasTrend computes the mean ROAS for the first and last date (dates sorted
// ascending as opaque strings) and the change between them. With fewer than
// two dates the change is zero.
func roasTrend(table *dataset.Table) (firstMean, lastMean, change float64) {
	grouped := make(map[string][]float64)
	for _, row := range table.Rows {
		date, ok := row.Value("date")
		if !ok {
			continue
		}
		if roas, ok := row.Float("roas"); ok {
			grouped[date] = append(grouped[date], roas)
		}
	}
	if len(grouped) == 0 {
		return 0, 0, 0
	}

	dates := make([]string, 0, len(grouped))
	for d := range grouped {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	firstMean, _ = stats.Mean(grouped[dates[0]])
	lastMean, _ = stats.Mean(grouped[dates[len(dates)-1]])
	if len(dates) >= 2 {
		change = lastMean - firstMean
	}
	return firstMean, lastMean, change
}
