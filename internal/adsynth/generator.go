package adsynth

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"

	"adlens/domain/dataset"

	"github.com/xuri/excelize/v2"
)

// Config controls synthetic campaign dataset generation.
type Config struct {
	Days      int
	Campaigns int
	Seed      int64
	StartDate time.Time

	// ROASDailyDrift shifts mean ROAS per day; negative values produce the
	// declining-trend scenario the analysis pipeline is built around.
	ROASDailyDrift float64
}

// DefaultConfig generates two weeks of four campaigns with a mild ROAS
// decline.
func DefaultConfig() Config {
	return Config{
		Days:           14,
		Campaigns:      4,
		Seed:           42,
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ROASDailyDrift: -0.08,
	}
}

var (
	creativeTypes = []string{"image", "video", "carousel"}
	audiences     = []string{"lookalike", "interest", "broad", "retargeting"}
	platforms     = []string{"facebook", "instagram"}
	countries     = []string{"US", "UK", "DE", "IN"}
	messages      = []string{
		"Our new collection is here.",
		"Fresh styles for the season.",
		"Upgrade your everyday essentials.",
		"",
	}
)

// Generate builds a deterministic synthetic dataset carrying the full
// expected column set, one row per campaign per day.
func Generate(cfg Config) (*dataset.Table, error) {
	if cfg.Days <= 0 {
		return nil, fmt.Errorf("days must be > 0")
	}
	if cfg.Campaigns <= 0 {
		return nil, fmt.Errorf("campaigns must be > 0")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	rows := make([]dataset.Row, 0, cfg.Days*cfg.Campaigns)
	for day := 0; day < cfg.Days; day++ {
		date := cfg.StartDate.AddDate(0, 0, day).Format("2006-01-02")
		for c := 0; c < cfg.Campaigns; c++ {
			campaign := fmt.Sprintf("Campaign-%c", 'A'+c)
			adset := fmt.Sprintf("%s-adset-%d", campaign, c%2+1)

			spend := 200 + rng.Float64()*800
			impressions := 10000 + rng.Intn(90000)
			ctr := clamp(0.005+rng.NormFloat64()*0.004, 0.0005, 0.06)
			clicks := int(float64(impressions) * ctr)
			purchases := int(float64(clicks) * clamp(0.02+rng.NormFloat64()*0.01, 0.001, 0.2))

			baseROAS := 3.0 + rng.NormFloat64()*0.5 + float64(c)*0.3
			roas := math.Max(0.1, baseROAS+cfg.ROASDailyDrift*float64(day))
			revenue := spend * roas

			rows = append(rows, dataset.Row{
				"campaign_name":    campaign,
				"adset_name":       adset,
				"date":             date,
				"spend":            formatFloat(spend, 2),
				"impressions":      strconv.Itoa(impressions),
				"clicks":           strconv.Itoa(clicks),
				"ctr":              formatFloat(ctr, 4),
				"purchases":        strconv.Itoa(purchases),
				"revenue":          formatFloat(revenue, 2),
				"roas":             formatFloat(roas, 2),
				"creative_type":    creativeTypes[rng.Intn(len(creativeTypes))],
				"creative_message": messages[rng.Intn(len(messages))],
				"audience_type":    audiences[rng.Intn(len(audiences))],
				"platform":         platforms[rng.Intn(len(platforms))],
				"country":          countries[rng.Intn(len(countries))],
			})
		}
	}

	columns := make([]string, len(dataset.ExpectedColumns))
	copy(columns, dataset.ExpectedColumns)

	return &dataset.Table{Columns: columns, Rows: rows}, nil
}

// WriteCSV writes the table as a CSV file with a header row.
func WriteCSV(path string, table *dataset.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(table.Columns); err != nil {
		return err
	}
	for _, row := range table.Rows {
		record := make([]string, len(table.Columns))
		for i, col := range table.Columns {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteXLSX writes the table to Sheet1 of an Excel workbook.
func WriteXLSX(path string, table *dataset.Table) error {
	f := excelize.NewFile()
	sheet := "Sheet1"

	for i, col := range table.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}
	for r, row := range table.Rows {
		for c, col := range table.Columns {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, row[col]); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, x))
}

func formatFloat(x float64, decimals int) string {
	p := math.Pow10(decimals)
	return strconv.FormatFloat(math.Round(x*p)/p, 'f', decimals, 64)
}
