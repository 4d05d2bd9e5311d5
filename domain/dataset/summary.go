package dataset

// CampaignROAS pairs a campaign with its mean ROAS. Slices of CampaignROAS
// preserve ranking order, which plain maps cannot.
type CampaignROAS struct {
	Name     string  `json:"name"`
	MeanROAS float64 `json:"mean_roas"`
}

// Summary holds the derived aggregates the downstream stages consume. It is
// produced once per run and read-only afterwards.
type Summary struct {
	// Per-date arithmetic means, keyed by the raw date value from the
	// source. Dates are opaque grouping keys; no parsing is done. Both maps
	// are empty when the configured date column is absent.
	ROASByDate map[string]float64 `json:"roas_by_date"`
	CTRByDate  map[string]float64 `json:"ctr_by_date"`

	// Top/bottom campaigns by mean ROAS, at most three each, ordered
	// descending and ascending respectively.
	TopCampaigns    []CampaignROAS `json:"top_roas_campaigns"`
	BottomCampaigns []CampaignROAS `json:"bottom_roas_campaigns"`

	// TrendSlope is the least-squares slope of mean ROAS across the sorted
	// date axis; zero when fewer than two dates are present.
	TrendSlope float64 `json:"roas_trend_slope"`

	// Table is the full dataset, retained verbatim for downstream stages.
	Table *Table `json:"-"`

	// Schema is the validation result computed at load time.
	Schema SchemaValidationResult `json:"schema_result"`
}

// SortedDates returns the date keys of ROASByDate in ascending order.
func (s *Summary) SortedDates() []string {
	return sortedKeys(s.ROASByDate)
}
