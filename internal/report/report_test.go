package report

import (
	"strings"
	"testing"

	"adlens/domain/creative"
	"adlens/domain/dataset"
	"adlens/domain/insight"
	"adlens/internal/metrics"
	"adlens/internal/testkit"
)

func sampleSummary() *dataset.Summary {
	table := testkit.FullTable(
		map[string]string{"campaign_name": "A", "date": "2024-01-01", "roas": "4.0"},
		map[string]string{"campaign_name": "B", "date": "2024-01-10", "roas": "2.0"},
	)
	return &dataset.Summary{
		ROASByDate: map[string]float64{"2024-01-01": 4.0, "2024-01-10": 2.0},
		CTRByDate:  map[string]float64{},
		TrendSlope: -0.22,
		Table:      table,
	}
}

func TestBuildMarkdown_Sections(t *testing.T) {
	evaluated := []insight.EvaluatedHypothesis{{
		ID:               "h1",
		Statement:        "ROAS decreased over time.",
		ValidationResult: insight.ResultSupported,
		ConfidenceScore:  0.8,
		Evidence:         "Average ROAS decreased from 4.00 to 2.00.",
	}}
	creatives := []creative.Recommendation{{
		CampaignName:   "B",
		AdsetName:      "Adset-1",
		OldMessage:     "Our new collection is here.",
		NewHeadline:    "B: Limited time offer",
		NewPrimaryText: "Our new collection is here. Now with special pricing for lookalike.",
		NewCTA:         "Shop now",
		Rationale:      "Underperforms on ROAS.",
	}}
	timings := metrics.Timings{"data_agent_ms": 12.5, "insight_agent_ms": 0.4}

	md := BuildMarkdown("Analyze ROAS drop", sampleSummary(), evaluated, creatives, timings, "run-123")

	for _, want := range []string{
		"# Facebook ROAS Analysis",
		"## User query",
		"> Analyze ROAS drop",
		"- Rows: **2**",
		"- Campaigns: **2**",
		"- Date range: **2024-01-01** -> **2024-01-10**",
		"ROAS: mean=3.00, min=2.00, max=4.00",
		"ROAS trend slope: -0.2200 per day",
		"### h1: ROAS decreased over time.",
		"- Result: **supported**",
		"- Confidence: **0.80**",
		"## Creative recommendations (for low CTR / low ROAS)",
		"### B / Adset-1",
		"- New CTA: **Shop now**",
		"## Runtime metrics (ms)",
		"- data_agent_ms: 12.5",
		"Run ID: run-123",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestBuildMarkdown_NoCreativesFallback(t *testing.T) {
	md := BuildMarkdown("q", sampleSummary(), nil, nil, metrics.Timings{}, "run-1")

	if !strings.Contains(md, "No underperforming ads met the low CTR / low ROAS thresholds.") {
		t.Error("report must state when no ads qualified for rewrites")
	}
}

func TestRenderHTML(t *testing.T) {
	md := BuildMarkdown("q", sampleSummary(), nil, nil, metrics.Timings{}, "run-1")

	html := string(RenderHTML(md))
	if !strings.Contains(html, "<html") {
		t.Error("expected a complete HTML page")
	}
	if !strings.Contains(html, "Facebook ROAS Analysis") {
		t.Error("expected the report title in the HTML output")
	}
}
