package heuristic

import (
	"context"
	"fmt"

	"adlens/domain/creative"
	"adlens/domain/dataset"
)

const (
	defaultMessage  = "Our new collection is here."
	defaultCampaign = "Unknown Campaign"
	defaultAdset    = "Unknown Adset"
	defaultAudience = "your audience"
)

// Recommender rewrites ad copy for rows that underperform on CTR or ROAS.
type Recommender struct{}

// NewRecommender creates a heuristic creative recommender.
func NewRecommender() *Recommender {
	return &Recommender{}
}

// Recommend returns one recommendation per row where ctr < lowCTR or
// roas < lowROAS, in the table's row order. Rows whose metrics fail to parse
// do not qualify on that criterion.
func (r *Recommender) Recommend(ctx context.Context, table *dataset.Table, lowCTR, lowROAS float64) ([]creative.Recommendation, error) {
	recs := []creative.Recommendation{}
	for _, row := range table.Rows {
		ctr, ctrOK := row.Float("ctr")
		roas, roasOK := row.Float("roas")
		if (ctrOK && ctr < lowCTR) || (roasOK && roas < lowROAS) {
			recs = append(recs, r.recommendForRow(row))
		}
	}
	return recs, nil
}

func (r *Recommender) recommendForRow(row dataset.Row) creative.Recommendation {
	baseMessage := row.StringOr("creative_message", defaultMessage)
	campaignName := row.StringOr("campaign_name", defaultCampaign)
	adsetName := row.StringOr("adset_name", defaultAdset)
	audience := row.StringOr("audience_type", defaultAudience)

	return creative.Recommendation{
		CampaignName:   campaignName,
		AdsetName:      adsetName,
		OldMessage:     baseMessage,
		NewHeadline:    fmt.Sprintf("%s: Limited time offer", campaignName),
		NewPrimaryText: fmt.Sprintf("%s Now with special pricing for %s.", baseMessage, audience),
		NewCTA:         "Shop now",
		Rationale: "Existing message appears to underperform on CTR/ROAS. " +
			"Headline emphasises urgency, body text adds value, CTA is explicit.",
	}
}
