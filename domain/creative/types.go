package creative

// Recommendation is replacement ad copy for one underperforming row.
type Recommendation struct {
	CampaignName   string `json:"campaign_name"`
	AdsetName      string `json:"adset_name"`
	OldMessage     string `json:"old_message"`
	NewHeadline    string `json:"new_headline"`
	NewPrimaryText string `json:"new_primary_text"`
	NewCTA         string `json:"new_cta"`
	Rationale      string `json:"rationale"`
}
