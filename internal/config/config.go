package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"adlens/domain/core"

	"gopkg.in/yaml.v3"
)

// Config is the complete pipeline configuration, loaded from a YAML file.
type Config struct {
	Paths      PathsConfig      `yaml:"paths"`
	Data       DataConfig       `yaml:"data"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	Retry      RetryConfig      `yaml:"retry"`
}

// PathsConfig holds the output artifact destinations.
type PathsConfig struct {
	InsightsJSON  string `yaml:"insights_json"`
	CreativesJSON string `yaml:"creatives_json"`
	ReportMD      string `yaml:"report_md"`
	ReportHTML    string `yaml:"report_html"`
	LogFile       string `yaml:"log_file"`
}

// DataConfig holds dataset input settings.
type DataConfig struct {
	Path       string `yaml:"path"`
	DateColumn string `yaml:"date_column"`
}

// ThresholdsConfig holds the underperformance cutoffs for creative rewrites.
type ThresholdsConfig struct {
	LowCTR  float64 `yaml:"low_ctr"`
	LowROAS float64 `yaml:"low_roas"`
}

// RetryConfig holds the retry budget for the generation and evaluation
// stages.
type RetryConfig struct {
	MaxAttempts   int      `yaml:"max_attempts"`
	BaseDelay     Duration `yaml:"base_delay"`
	BackoffFactor float64  `yaml:"backoff_factor"`
}

// Duration is a time.Duration that unmarshals from YAML strings like
// "200ms" or "1.5s".
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Load reads and validates the configuration file, filling defaults for
// omitted fields.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Paths.InsightsJSON == "" {
		c.Paths.InsightsJSON = "out/insights.json"
	}
	if c.Paths.CreativesJSON == "" {
		c.Paths.CreativesJSON = "out/creatives.json"
	}
	if c.Paths.ReportMD == "" {
		c.Paths.ReportMD = "out/report.md"
	}
	if c.Paths.LogFile == "" {
		c.Paths.LogFile = "out/run.log"
	}
	if c.Data.DateColumn == "" {
		c.Data.DateColumn = "date"
	}
	if c.Thresholds.LowCTR == 0 {
		c.Thresholds.LowCTR = 0.01
	}
	if c.Thresholds.LowROAS == 0 {
		c.Thresholds.LowROAS = 1.0
	}
	if c.Retry.MaxAttempts == 0 {
		c.Retry.MaxAttempts = 3
	}
	if c.Retry.BaseDelay == 0 {
		c.Retry.BaseDelay = Duration(200 * time.Millisecond)
	}
	if c.Retry.BackoffFactor == 0 {
		c.Retry.BackoffFactor = 2.0
	}
}

// Validate checks the required fields.
func (c *Config) Validate() error {
	if c.Data.Path == "" {
		return core.NewConfigError("data.path", "dataset path is required")
	}
	if c.Retry.MaxAttempts < 1 {
		return core.NewConfigError("retry.max_attempts", "must be at least 1")
	}
	if c.Retry.BackoffFactor < 1 {
		return core.NewConfigError("retry.backoff_factor", "must be at least 1")
	}
	return nil
}

// EnsureDirs creates the parent directories of every output path.
func (c *Config) EnsureDirs() error {
	paths := []string{
		c.Paths.InsightsJSON,
		c.Paths.CreativesJSON,
		c.Paths.ReportMD,
		c.Paths.LogFile,
	}
	if c.Paths.ReportHTML != "" {
		paths = append(paths, c.Paths.ReportHTML)
	}
	for _, p := range paths {
		if dir := filepath.Dir(p); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create directory for %s: %w", p, err)
			}
		}
	}
	return nil
}
