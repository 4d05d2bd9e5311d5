package heuristic

import (
	"context"
	"strings"
	"testing"

	"adlens/internal/testkit"
)

func TestRecommend_ThresholdIsLogicalOr(t *testing.T) {
	table := testkit.FullTable(
		map[string]string{"campaign_name": "LowCTR", "ctr": "0.001", "roas": "5.0"},
		map[string]string{"campaign_name": "LowROAS", "ctr": "0.05", "roas": "0.5"},
		map[string]string{"campaign_name": "Healthy", "ctr": "0.05", "roas": "5.0"},
		map[string]string{"campaign_name": "BothLow", "ctr": "0.001", "roas": "0.5"},
	)

	recs, err := NewRecommender().Recommend(context.Background(), table, 0.01, 1.0)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}
	// Row order preserved.
	if recs[0].CampaignName != "LowCTR" || recs[1].CampaignName != "LowROAS" || recs[2].CampaignName != "BothLow" {
		t.Errorf("unexpected order: %q, %q, %q", recs[0].CampaignName, recs[1].CampaignName, recs[2].CampaignName)
	}
}

func TestRecommend_HealthyRowNeverQualifies(t *testing.T) {
	table := testkit.FullTable(
		map[string]string{"ctr": "0.02", "roas": "2.0"},
	)

	recs, err := NewRecommender().Recommend(context.Background(), table, 0.01, 1.0)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("row above both thresholds must not qualify, got %d recs", len(recs))
	}
}

func TestRecommend_CopySynthesis(t *testing.T) {
	table := testkit.FullTable(map[string]string{
		"campaign_name":    "Summer Sale",
		"adset_name":       "US-Broad",
		"creative_message": "Beat the heat.",
		"audience_type":    "retargeting",
		"ctr":              "0.001",
		"roas":             "0.5",
	})

	recs, err := NewRecommender().Recommend(context.Background(), table, 0.01, 1.0)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected exactly 1 recommendation, got %d", len(recs))
	}

	r := recs[0]
	if r.NewHeadline != "Summer Sale: Limited time offer" {
		t.Errorf("unexpected headline: %q", r.NewHeadline)
	}
	if !strings.Contains(r.NewHeadline, "Limited time offer") {
		t.Errorf("headline must carry an urgency phrase, got %q", r.NewHeadline)
	}
	if r.NewPrimaryText != "Beat the heat. Now with special pricing for retargeting." {
		t.Errorf("unexpected primary text: %q", r.NewPrimaryText)
	}
	if r.NewCTA != "Shop now" {
		t.Errorf("unexpected CTA: %q", r.NewCTA)
	}
	if r.OldMessage != "Beat the heat." {
		t.Errorf("unexpected old message: %q", r.OldMessage)
	}
}

func TestRecommend_DefaultsForBlankFields(t *testing.T) {
	table := testkit.FullTable(map[string]string{
		"campaign_name":    "",
		"adset_name":       "",
		"creative_message": "   ",
		"audience_type":    "",
		"ctr":              "0.001",
		"roas":             "0.5",
	})

	recs, err := NewRecommender().Recommend(context.Background(), table, 0.01, 1.0)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	r := recs[0]
	if r.CampaignName != "Unknown Campaign" {
		t.Errorf("expected default campaign, got %q", r.CampaignName)
	}
	if r.AdsetName != "Unknown Adset" {
		t.Errorf("expected default adset, got %q", r.AdsetName)
	}
	if r.OldMessage != "Our new collection is here." {
		t.Errorf("expected default message, got %q", r.OldMessage)
	}
	if !strings.Contains(r.NewPrimaryText, "your audience") {
		t.Errorf("expected default audience in primary text, got %q", r.NewPrimaryText)
	}
}
