package plan

// Step is one node of the declared execution plan.
type Step struct {
	ID        string   `json:"id"`
	Agent     string   `json:"agent"`
	Action    string   `json:"action"`
	DependsOn []string `json:"depends_on"`
}

// Plan is a declarative description of the pipeline: a DAG that is currently
// a single linear chain. The orchestrator dispatches execution from it, so
// the declared order and the actual order cannot drift apart.
type Plan struct {
	OverallGoal string `json:"overall_goal"`
	Steps       []Step `json:"steps"`
}

// StepIDs returns the step identifiers in declared order.
func (p Plan) StepIDs() []string {
	ids := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		ids[i] = s.ID
	}
	return ids
}
