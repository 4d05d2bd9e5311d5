package app

import (
	"sort"

	"adlens/domain/core"
	"adlens/domain/dataset"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Summarizer derives per-date and per-campaign aggregates from the raw
// table.
type Summarizer struct {
	dateColumn string
}

// NewSummarizer creates a summarizer grouping by the given date column.
func NewSummarizer(dateColumn string) *Summarizer {
	return &Summarizer{dateColumn: dateColumn}
}

// requiredColumns must be present before any aggregate is computed; their
// absence is a precondition violation and fails fast with a typed error.
var requiredColumns = []string{"roas", "ctr", "campaign_name"}

// Summarize computes the DataSummary. The date column is optional: without
// it the per-date maps stay empty. The full table is retained verbatim.
func (s *Summarizer) Summarize(table *dataset.Table, schema dataset.SchemaValidationResult) (*dataset.Summary, error) {
	missing := []string{}
	for _, c := range requiredColumns {
		if !table.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, core.NewMissingColumnError(missing...)
	}

	summary := &dataset.Summary{
		ROASByDate: map[string]float64{},
		CTRByDate:  map[string]float64{},
		Table:      table,
		Schema:     schema,
	}

	if table.HasColumn(s.dateColumn) {
		summary.ROASByDate = groupedMeans(table, s.dateColumn, "roas")
		summary.CTRByDate = groupedMeans(table, s.dateColumn, "ctr")
		summary.TrendSlope = trendSlope(summary.ROASByDate)
	}

	top, bottom := rankCampaigns(table)
	summary.TopCampaigns = top
	summary.BottomCampaigns = bottom

	return summary, nil
}

// groupedMeans computes the arithmetic mean of valueColumn per distinct
// keyColumn value. Unparsable cells are skipped, matching how a dataframe
// mean ignores missing values.
func groupedMeans(table *dataset.Table, keyColumn, valueColumn string) map[string]float64 {
	grouped := make(map[string][]float64)
	for _, row := range table.Rows {
		key, ok := row.Value(keyColumn)
		if !ok {
			continue
		}
		if v, ok := row.Float(valueColumn); ok {
			grouped[key] = append(grouped[key], v)
		}
	}

	means := make(map[string]float64, len(grouped))
	for key, values := range grouped {
		if m, err := stats.Mean(values); err == nil {
			means[key] = m
		}
	}
	return means
}

// rankCampaigns returns the top-3 and bottom-3 campaigns by mean ROAS. Ties
// keep first-seen input order through the stable sort.
func rankCampaigns(table *dataset.Table) (top, bottom []dataset.CampaignROAS) {
	grouped := make(map[string][]float64)
	order := []string{}
	for _, row := range table.Rows {
		name, ok := row.Value("campaign_name")
		if !ok {
			continue
		}
		if _, seen := grouped[name]; !seen {
			order = append(order, name)
		}
		if v, ok := row.Float("roas"); ok {
			grouped[name] = append(grouped[name], v)
		} else if _, seen := grouped[name]; !seen {
			grouped[name] = nil
		}
	}

	ranked := make([]dataset.CampaignROAS, 0, len(order))
	for _, name := range order {
		m, err := stats.Mean(grouped[name])
		if err != nil {
			continue
		}
		ranked = append(ranked, dataset.CampaignROAS{Name: name, MeanROAS: m})
	}

	desc := make([]dataset.CampaignROAS, len(ranked))
	copy(desc, ranked)
	sort.SliceStable(desc, func(i, j int) bool { return desc[i].MeanROAS > desc[j].MeanROAS })

	asc := make([]dataset.CampaignROAS, len(ranked))
	copy(asc, ranked)
	sort.SliceStable(asc, func(i, j int) bool { return asc[i].MeanROAS < asc[j].MeanROAS })

	return headCampaigns(desc, 3), headCampaigns(asc, 3)
}

func headCampaigns(ranked []dataset.CampaignROAS, n int) []dataset.CampaignROAS {
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// trendSlope fits a least-squares line through the per-date mean ROAS over
// the sorted date axis. Zero when fewer than two dates are present.
func trendSlope(roasByDate map[string]float64) float64 {
	if len(roasByDate) < 2 {
		return 0
	}
	dates := make([]string, 0, len(roasByDate))
	for d := range roasByDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	xs := make([]float64, len(dates))
	ys := make([]float64, len(dates))
	for i, d := range dates {
		xs[i] = float64(i)
		ys[i] = roasByDate[d]
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	return slope
}
