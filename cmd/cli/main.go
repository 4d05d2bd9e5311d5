package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"adlens/adapters/heuristic"
	"adlens/adapters/tabular"
	"adlens/app"
	"adlens/domain/core"
	"adlens/internal/adsynth"
	"adlens/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultQuery = "Analyze ROAS drop"

func main() {
	// Optional .env overlay; absence is fine.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "adlens",
		Short: "Campaign performance analysis pipeline",
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newSynthCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var configPath string
	var withHTML bool

	cmd := &cobra.Command{
		Use:   "analyze [query]",
		Short: "Run the full analysis pipeline over the configured dataset",
		Long: `Load the campaign dataset, validate its schema, derive trend summaries,
generate and evaluate hypotheses, and emit creative recommendations plus a
run report.

Example: adlens analyze "Why did ROAS drop last week?" --config config/config.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userQuery := defaultQuery
			if len(args) > 0 {
				userQuery = args[0]
			}
			return runAnalyze(cmd, configPath, userQuery, withHTML)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "config/config.yaml", "Path to the YAML configuration file")
	cmd.Flags().BoolVar(&withHTML, "html", false, "Also render the report as HTML")

	return cmd
}

func runAnalyze(cmd *cobra.Command, configPath, userQuery string, withHTML bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if withHTML && cfg.Paths.ReportHTML == "" {
		cfg.Paths.ReportHTML = strings.TrimSuffix(cfg.Paths.ReportMD, ".md") + ".html"
	}

	generator := heuristic.NewGenerator()
	evaluator := heuristic.NewEvaluator()

	pipeline := app.NewPipeline(app.PipelineParams{
		Config:            cfg,
		Reader:            tabular.NewReader(cfg.Data.Path),
		Generator:         generator,
		GeneratorFallback: generator,
		Evaluator:         evaluator,
		EvaluatorFallback: evaluator,
		Recommender:       heuristic.NewRecommender(),
	})

	if err := pipeline.Run(cmd.Context(), userQuery); err != nil {
		if core.IsSchemaValidationError(err) {
			fmt.Fprintln(os.Stderr, "Schema validation failed. See logs for details.")
			os.Exit(1)
		}
		return err
	}
	return nil
}

func newSynthCmd() *cobra.Command {
	var out string
	var days, campaigns int
	var seed int64
	var drift float64

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Generate a synthetic campaign dataset (CSV or XLSX by extension)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := adsynth.DefaultConfig()
			cfg.Days = days
			cfg.Campaigns = campaigns
			cfg.Seed = seed
			cfg.ROASDailyDrift = drift

			table, err := adsynth.Generate(cfg)
			if err != nil {
				return err
			}

			if dir := filepath.Dir(out); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}

			if strings.HasSuffix(strings.ToLower(out), ".xlsx") {
				err = adsynth.WriteXLSX(out, table)
			} else {
				err = adsynth.WriteCSV(out, table)
			}
			if err != nil {
				return err
			}

			fmt.Printf("Wrote %d rows to %s\n", table.Len(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "data/sample.csv", "Output file path")
	cmd.Flags().IntVar(&days, "days", 14, "Number of days to generate")
	cmd.Flags().IntVar(&campaigns, "campaigns", 4, "Number of campaigns")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for deterministic output")
	cmd.Flags().Float64Var(&drift, "drift", -0.08, "Daily ROAS drift (negative = decline)")

	return cmd
}
