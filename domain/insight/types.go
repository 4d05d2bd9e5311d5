package insight

// Confidence expresses how strongly a hypothesis is held before evaluation.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Hypothesis is a candidate explanation for an observed performance trend.
// Identity is the ID, stable for the duration of a run.
type Hypothesis struct {
	ID              string     `json:"id"`
	Statement       string     `json:"statement"`
	Mechanism       string     `json:"mechanism"`
	ExpectedSignals string     `json:"expected_signals"`
	Confidence      Confidence `json:"confidence"`
}

// ValidationResult is the evaluator's verdict on a hypothesis.
type ValidationResult string

const (
	ResultSupported    ValidationResult = "supported"
	ResultInconclusive ValidationResult = "inconclusive"
	ResultRejected     ValidationResult = "rejected"
)

// EvaluatedHypothesis is the 1:1 evaluation outcome for a Hypothesis; the ID
// always matches the input hypothesis.
type EvaluatedHypothesis struct {
	ID               string           `json:"id"`
	Statement        string           `json:"statement"`
	ValidationResult ValidationResult `json:"validation_result"`
	ConfidenceScore  float64          `json:"confidence_score"`
	Evidence         string           `json:"evidence"`
}
