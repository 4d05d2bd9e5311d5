// Package testkit provides shared fixtures for pipeline tests.
package testkit

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"adlens/domain/dataset"
	"adlens/internal/config"
)

// NewTable builds a Table from a header and rows of cells. Rows shorter
// than the header leave trailing columns absent.
func NewTable(columns []string, rows ...[]string) *dataset.Table {
	t := &dataset.Table{Columns: columns}
	for _, raw := range rows {
		row := make(dataset.Row, len(columns))
		for i, cell := range raw {
			if i < len(columns) {
				row[columns[i]] = cell
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// FullRow returns a schema-complete row with sensible defaults, overridden
// by the given column/value pairs.
func FullRow(overrides map[string]string) dataset.Row {
	row := dataset.Row{
		"campaign_name":    "Campaign-A",
		"adset_name":       "Adset-1",
		"date":             "2024-01-01",
		"spend":            "100.00",
		"impressions":      "10000",
		"clicks":           "120",
		"ctr":              "0.012",
		"purchases":        "5",
		"revenue":          "300.00",
		"roas":             "3.0",
		"creative_type":    "image",
		"creative_message": "Our new collection is here.",
		"audience_type":    "lookalike",
		"platform":         "facebook",
		"country":          "US",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

// FullTable builds a schema-complete table, one row per overrides map.
func FullTable(rowOverrides ...map[string]string) *dataset.Table {
	columns := make([]string, len(dataset.ExpectedColumns))
	copy(columns, dataset.ExpectedColumns)
	t := &dataset.Table{Columns: columns}
	for _, o := range rowOverrides {
		t.Rows = append(t.Rows, FullRow(o))
	}
	return t
}

// WriteCSV writes a table to dir/name and returns the path.
func WriteCSV(t *testing.T, dir, name string, table *dataset.Table) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write(table.Columns); err != nil {
		t.Fatalf("failed to write header: %v", err)
	}
	for _, row := range table.Rows {
		record := make([]string, len(table.Columns))
		for i, col := range table.Columns {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			t.Fatalf("failed to write row: %v", err)
		}
	}
	return path
}

// SampleConfig returns a config whose inputs and outputs all live under dir.
func SampleConfig(dir, dataPath string) *config.Config {
	return &config.Config{
		Paths: config.PathsConfig{
			InsightsJSON:  filepath.Join(dir, "out", "insights.json"),
			CreativesJSON: filepath.Join(dir, "out", "creatives.json"),
			ReportMD:      filepath.Join(dir, "out", "report.md"),
			LogFile:       filepath.Join(dir, "out", "run.log"),
		},
		Data:       config.DataConfig{Path: dataPath, DateColumn: "date"},
		Thresholds: config.ThresholdsConfig{LowCTR: 0.01, LowROAS: 1.0},
		Retry: config.RetryConfig{
			MaxAttempts:   3,
			BaseDelay:     config.Duration(time.Millisecond),
			BackoffFactor: 2.0,
		},
	}
}
