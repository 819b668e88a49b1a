package model

// SampleResult holds one evaluated benchmark row: the question asked, the
// reference answer from the dataset, what the model predicted and how
// confident it was.
type SampleResult struct {
	ID         string  `json:"id,omitempty"`   // Dataset question ID
	Question   string  `json:"question"`
	Reference  string  `json:"reference"`      // First reference answer from the dataset
	Predicted  string  `json:"predicted"`
	Confidence float64 `json:"confidence"`     // Percent in [0,100]
}

// EvalReport aggregates a benchmark evaluation run.
type EvalReport struct {
	Samples    []SampleResult `json:"samples"`
	ExactMatch float64        `json:"exact_match"` // 0-100
	F1         float64        `json:"f1"`          // 0-100
	Provider   string         `json:"provider,omitempty"`
	Model      string         `json:"model,omitempty"`
}
