package dataset

import "sort"

// ExpectedColumns is the canonical column set for a campaign performance
// export. Extra columns are tolerated; missing ones fail validation.
var ExpectedColumns = []string{
	"campaign_name",
	"adset_name",
	"date",
	"spend",
	"impressions",
	"clicks",
	"ctr",
	"purchases",
	"revenue",
	"roas",
	"creative_type",
	"creative_message",
	"audience_type",
	"platform",
	"country",
}

// SchemaValidationResult is the outcome of checking a table's column set
// against ExpectedColumns.
type SchemaValidationResult struct {
	OK      bool     `json:"ok"`
	Missing []string `json:"missing"`
	Extra   []string `json:"extra"`
}

// ValidateSchema compares the table's columns to the expected set. The check
// is order-independent; missing and extra are returned lexicographically
// sorted so results are deterministic. Extra columns never fail validation.
func ValidateSchema(t *Table) SchemaValidationResult {
	actual := t.ColumnSet()
	expected := make(map[string]struct{}, len(ExpectedColumns))
	for _, c := range ExpectedColumns {
		expected[c] = struct{}{}
	}

	missing := []string{}
	for _, c := range ExpectedColumns {
		if _, ok := actual[c]; !ok {
			missing = append(missing, c)
		}
	}
	extra := []string{}
	for c := range actual {
		if _, ok := expected[c]; !ok {
			extra = append(extra, c)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)

	return SchemaValidationResult{
		OK:      len(missing) == 0,
		Missing: missing,
		Extra:   extra,
	}
}
