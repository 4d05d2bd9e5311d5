package report

import (
	"fmt"
	"strings"

	"adlens/domain/creative"
	"adlens/domain/dataset"
	"adlens/domain/insight"
	"adlens/internal/metrics"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/montanaflynn/stats"
)

// BuildMarkdown renders the human-readable run report: query, dataset
// overview, per-hypothesis evaluation, creative detail, and stage timings.
func BuildMarkdown(userQuery string, summary *dataset.Summary, evaluated []insight.EvaluatedHypothesis, creatives []creative.Recommendation, timings metrics.Timings, runID string) string {
	var b strings.Builder
	table := summary.Table

	b.WriteString("# Facebook ROAS Analysis\n")
	b.WriteString("## User query\n\n")
	fmt.Fprintf(&b, "> %s\n", userQuery)

	b.WriteString("## Data overview\n")
	fmt.Fprintf(&b, "- Rows: **%d**\n", table.Len())
	if table.HasColumn("campaign_name") {
		fmt.Fprintf(&b, "- Campaigns: **%d**\n", distinctCount(table, "campaign_name"))
	}
	if table.HasColumn("date") {
		first, last, ok := dateRange(table)
		if ok {
			fmt.Fprintf(&b, "- Date range: **%s** -> **%s**\n", first, last)
		}
	}
	if table.HasColumn("roas") {
		if mean, min, max, ok := roasSpread(table); ok {
			fmt.Fprintf(&b, "- ROAS: mean=%.2f, min=%.2f, max=%.2f\n", mean, min, max)
		}
	}
	if summary.TrendSlope != 0 {
		fmt.Fprintf(&b, "- ROAS trend slope: %.4f per day\n", summary.TrendSlope)
	}

	b.WriteString("\n## Hypotheses & evaluation\n")
	for _, h := range evaluated {
		fmt.Fprintf(&b, "### %s: %s\n", h.ID, h.Statement)
		fmt.Fprintf(&b, "- Result: **%s**\n", h.ValidationResult)
		fmt.Fprintf(&b, "- Confidence: **%.2f**\n", h.ConfidenceScore)
		fmt.Fprintf(&b, "- Evidence: %s\n\n", h.Evidence)
	}

	b.WriteString("## Creative recommendations (for low CTR / low ROAS)\n")
	if len(creatives) == 0 {
		b.WriteString("No underperforming ads met the low CTR / low ROAS thresholds.\n")
	}
	for _, c := range creatives {
		fmt.Fprintf(&b, "### %s / %s\n", c.CampaignName, c.AdsetName)
		fmt.Fprintf(&b, "- Old message: %s\n", c.OldMessage)
		fmt.Fprintf(&b, "- New headline: %s\n", c.NewHeadline)
		fmt.Fprintf(&b, "- New primary text: %s\n", c.NewPrimaryText)
		fmt.Fprintf(&b, "- New CTA: **%s**\n", c.NewCTA)
		fmt.Fprintf(&b, "- Rationale: %s\n\n", c.Rationale)
	}

	b.WriteString("## Runtime metrics (ms)\n")
	for _, k := range timings.Keys() {
		fmt.Fprintf(&b, "- %s: %.1f\n", k, timings[k])
	}

	fmt.Fprintf(&b, "\n---\nRun ID: %s\n", runID)

	return b.String()
}

// RenderHTML converts the markdown report into a standalone HTML document.
func RenderHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage})
	return markdown.ToHTML([]byte(md), p, renderer)
}

func distinctCount(table *dataset.Table, column string) int {
	seen := map[string]struct{}{}
	for _, row := range table.Rows {
		if v, ok := row.Value(column); ok {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}

// dateRange returns the lexicographic min and max of the date column.
func dateRange(table *dataset.Table) (first, last string, ok bool) {
	for _, row := range table.Rows {
		v, present := row.Value("date")
		if !present || v == "" {
			continue
		}
		if !ok {
			first, last, ok = v, v, true
			continue
		}
		if v < first {
			first = v
		}
		if v > last {
			last = v
		}
	}
	return first, last, ok
}

func roasSpread(table *dataset.Table) (mean, min, max float64, ok bool) {
	values := []float64{}
	for _, row := range table.Rows {
		if v, parsed := row.Float("roas"); parsed {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return 0, 0, 0, false
	}
	mean, _ = stats.Mean(values)
	min, _ = stats.Min(values)
	max, _ = stats.Max(values)
	return mean, min, max, true
}
