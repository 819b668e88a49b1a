package model

// Document represents a single text document flowing through the
// summarization pipeline. Stages fill it in additively: the loader sets
// Name and Text, the preprocessor sets Cleaned, the summarizers set the
// two summaries, the scorer sets Scores and the analyzer sets Stats.
type Document struct {
	Name        string   `json:"name"`                  // Source name (file path, URL or demo label)
	Text        string   `json:"text"`                  // Raw text as loaded
	Cleaned     string   `json:"cleaned,omitempty"`     // Preprocessed text
	Extractive  string   `json:"extractive,omitempty"`  // Extractive summary (never empty for non-empty input)
	Abstractive string   `json:"abstractive,omitempty"` // Abstractive summary from the inference provider
	Scores      ScoreSet `json:"scores,omitempty"`      // ROUGE scores (original vs extractive)
	Stats       *Stats   `json:"stats,omitempty"`       // Derived statistics
}

// ScoreSet maps a metric name (e.g., "rouge1") to an F-measure in [0,1].
// Immutable once computed.
type ScoreSet map[string]float64

// Stats contains descriptive statistics derived from a document and its
// extractive summary.
type Stats struct {
	OriginalWords   int     `json:"original_words"`
	SummaryWords    int     `json:"summary_words"`
	Compression     float64 `json:"compression_pct"`   // (1 - summary/original) * 100; negative if summary is longer
	OriginalMinutes float64 `json:"original_minutes"`  // Reading time at 200 wpm
	SummaryMinutes  float64 `json:"summary_minutes"`
}
