package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"adlens/domain/core"
	"adlens/domain/creative"
	"adlens/domain/dataset"
	"adlens/domain/insight"
	"adlens/internal/config"
	"adlens/internal/logging"
	"adlens/internal/metrics"
	"adlens/internal/report"
	"adlens/ports"

	"go.uber.org/zap"
)

// PipelineParams wires the orchestrator's collaborators. Fallbacks must be
// deterministic implementations; Logger may be left nil to have the pipeline
// open the configured log sink on first run.
type PipelineParams struct {
	Config            *config.Config
	Logger            *logging.Logger
	Reader            ports.ReaderPort
	Generator         ports.GeneratorPort
	GeneratorFallback ports.GeneratorPort
	Evaluator         ports.EvaluatorPort
	EvaluatorFallback ports.EvaluatorPort
	Recommender       ports.RecommenderPort
}

// Pipeline is the orchestrator: it owns config, logging, timing, and
// artifact emission, and runs the stages strictly sequentially in the order
// declared by the Plan.
type Pipeline struct {
	cfg     *config.Config
	log     *logging.Logger
	reader  ports.ReaderPort
	planner *Planner

	params PipelineParams

	summarizer *Summarizer
	insight    *InsightService
	evaluator  *EvaluatorService
	creative   *CreativeService

	// logReady guards one-time log and service setup.
	logReady bool
}

// NewPipeline creates the orchestrator.
func NewPipeline(params PipelineParams) *Pipeline {
	return &Pipeline{
		cfg:     params.Config,
		log:     params.Logger,
		reader:  params.Reader,
		planner: NewPlanner(),
		params:  params,
	}
}

// initLogging opens the log sink and builds the stage services exactly once.
func (p *Pipeline) initLogging() error {
	if p.logReady {
		return nil
	}
	if err := p.cfg.EnsureDirs(); err != nil {
		return err
	}
	if p.log == nil {
		log, err := logging.New(p.cfg.Paths.LogFile)
		if err != nil {
			return err
		}
		p.log = log
	}
	p.initServices()
	return nil
}

func (p *Pipeline) initServices() {
	retry := RetryPolicy{
		MaxAttempts:   p.cfg.Retry.MaxAttempts,
		BaseDelay:     p.cfg.Retry.BaseDelay.Std(),
		BackoffFactor: p.cfg.Retry.BackoffFactor,
	}
	p.summarizer = NewSummarizer(p.cfg.Data.DateColumn)
	p.insight = NewInsightService(p.params.Generator, p.params.GeneratorFallback, retry, p.log)
	p.evaluator = NewEvaluatorService(p.params.Evaluator, p.params.EvaluatorFallback, retry, p.log)
	p.creative = NewCreativeService(p.params.Recommender, p.cfg.Thresholds.LowCTR, p.cfg.Thresholds.LowROAS, p.log)
	p.logReady = true
}

// insightRecord is a Hypothesis merged with its matching evaluation for the
// insights artifact.
type insightRecord struct {
	insight.Hypothesis
	Evaluated *insight.EvaluatedHypothesis `json:"evaluated"`
}

// Run executes the full pipeline for one query: load and validate the
// dataset, then dispatch the planned stages, then write the artifacts. The
// only fatal user-visible failure is the schema abort.
func (p *Pipeline) Run(ctx context.Context, userQuery string) error {
	if err := p.initLogging(); err != nil {
		return err
	}
	defer p.log.Sync()

	runID := core.NewRunID().String()
	p.log.Event("Orchestrator", "start", "pipeline_start",
		zap.String("user_query", userQuery), zap.String("run_id", runID))

	timings := metrics.Timings{}

	stopPlanner := timings.Track("planner_ms")
	executionPlan := p.planner.BuildPlan(userQuery)
	stopPlanner()
	p.log.Event("PlannerAgent", "plan", "plan_built", zap.Any("plan", executionPlan))

	var (
		summary    *dataset.Summary
		hypotheses []insight.Hypothesis
		evaluated  []insight.EvaluatedHypothesis
		creatives  []creative.Recommendation
	)

	for _, step := range executionPlan.Steps {
		var err error
		switch step.ID {
		case StepData:
			stop := timings.Track("data_agent_ms")
			summary, err = p.runDataStage()
			stop()
		case StepInsight:
			stop := timings.Track("insight_agent_ms")
			hypotheses, err = p.insight.Generate(ctx, userQuery, summary)
			stop()
		case StepEvaluator:
			stop := timings.Track("evaluator_agent_ms")
			evaluated, err = p.evaluator.Evaluate(ctx, summary.Table, hypotheses)
			stop()
		case StepCreative:
			stop := timings.Track("creative_agent_ms")
			creatives, err = p.creative.Generate(ctx, summary.Table)
			stop()
		default:
			err = fmt.Errorf("%w: %s", core.ErrUnknownPlanStep, step.ID)
		}
		if err != nil {
			return err
		}
	}

	if err := p.writeArtifacts(userQuery, runID, summary, hypotheses, evaluated, creatives, timings); err != nil {
		return err
	}

	p.log.Event("Orchestrator", "end", "pipeline_finished",
		zap.String("run_id", runID), zap.Any("metrics", map[string]float64(timings)))
	return nil
}

// runDataStage loads the table, gates on schema validation, and summarizes.
func (p *Pipeline) runDataStage() (*dataset.Summary, error) {
	table, err := p.reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	schemaResult := dataset.ValidateSchema(table)
	if !schemaResult.OK {
		p.log.ErrorEvent("DataAgent", "schema", "schema_validation_failed",
			zap.Strings("missing_columns", schemaResult.Missing),
			zap.Strings("extra_columns", schemaResult.Extra))
		return nil, fmt.Errorf("%w: missing columns %v", core.ErrSchemaValidation, schemaResult.Missing)
	}

	summary, err := p.summarizer.Summarize(table, schemaResult)
	if err != nil {
		return nil, err
	}

	p.log.Event("DataAgent", "summarize", "summarized_data",
		zap.Int("rows", table.Len()),
		zap.String("dataset_fingerprint", tableFingerprint(table).String()))
	return summary, nil
}

// tableFingerprint hashes the canonical JSON encoding of the table. Map keys
// marshal in sorted order, so the encoding is deterministic.
func tableFingerprint(table *dataset.Table) core.Fingerprint {
	data, err := json.Marshal(table)
	if err != nil {
		return ""
	}
	return core.NewFingerprint(data)
}

func (p *Pipeline) writeArtifacts(userQuery, runID string, summary *dataset.Summary, hypotheses []insight.Hypothesis, evaluated []insight.EvaluatedHypothesis, creatives []creative.Recommendation, timings metrics.Timings) error {
	byID := make(map[string]*insight.EvaluatedHypothesis, len(evaluated))
	for i := range evaluated {
		byID[evaluated[i].ID] = &evaluated[i]
	}
	insights := make([]insightRecord, len(hypotheses))
	for i, h := range hypotheses {
		insights[i] = insightRecord{Hypothesis: h, Evaluated: byID[h.ID]}
	}

	if err := writeJSON(p.cfg.Paths.InsightsJSON, insights); err != nil {
		return err
	}
	if err := writeJSON(p.cfg.Paths.CreativesJSON, creatives); err != nil {
		return err
	}

	md := report.BuildMarkdown(userQuery, summary, evaluated, creatives, timings, runID)
	if err := os.WriteFile(p.cfg.Paths.ReportMD, []byte(md), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if p.cfg.Paths.ReportHTML != "" {
		if err := os.WriteFile(p.cfg.Paths.ReportHTML, report.RenderHTML(md), 0o644); err != nil {
			return fmt.Errorf("failed to write HTML report: %w", err)
		}
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
