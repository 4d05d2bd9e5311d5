package app

import (
	"fmt"

	"adlens/domain/plan"
)

// Plan step identifiers. The orchestrator dispatches on these, so the
// declared chain is the executed chain.
const (
	StepData      = "step-data"
	StepInsight   = "step-insight"
	StepEvaluator = "step-evaluator"
	StepCreative  = "step-creative"
)

// Planner produces the static four-stage execution plan. It is stateless
// and cannot fail.
type Planner struct{}

// NewPlanner creates a planner.
func NewPlanner() *Planner {
	return &Planner{}
}

// BuildPlan returns the fixed data -> insight -> evaluator -> creative
// chain with a goal string embedding the user query.
func (p *Planner) BuildPlan(userQuery string) plan.Plan {
	steps := []plan.Step{
		{ID: StepData, Agent: "DataAgent", Action: "summarize_data", DependsOn: []string{}},
		{ID: StepInsight, Agent: "InsightAgent", Action: "generate_hypotheses", DependsOn: []string{StepData}},
		{ID: StepEvaluator, Agent: "EvaluatorAgent", Action: "evaluate_hypotheses", DependsOn: []string{StepInsight}},
		{ID: StepCreative, Agent: "CreativeAgent", Action: "generate_creatives", DependsOn: []string{StepEvaluator}},
	}
	return plan.Plan{
		OverallGoal: fmt.Sprintf("Diagnose ROAS changes and recommend creatives for query: %s", userQuery),
		Steps:       steps,
	}
}
