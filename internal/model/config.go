package model

import "time"

// Config holds the complete textdigest configuration
type Config struct {
	HTTP      HTTPConfig      `yaml:"http" json:"http"`
	Cache     CacheConfig     `yaml:"cache" json:"cache"`
	Inference InferenceConfig `yaml:"inference" json:"inference"`
	Summary   SummaryConfig   `yaml:"summary" json:"summary"`
	Dataset   DatasetConfig   `yaml:"dataset" json:"dataset"`
	RateLimit RateLimitConfig `yaml:"rate_limit" json:"rate_limit"`
	Output    OutputConfig    `yaml:"output" json:"output"`
}

// HTTPConfig controls outbound HTTP behavior (document fetching, dataset
// download)
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls" json:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy" json:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" json:"https_proxy"`
}

// CacheConfig controls the layered response/dataset cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// InferenceConfig selects and configures the remote model provider
type InferenceConfig struct {
	Provider     string `yaml:"provider" json:"provider"`           // "hf", "openai", "ollama"
	SummaryModel string `yaml:"summary_model" json:"summary_model"` // Seq2seq summarization model
	QAModel      string `yaml:"qa_model" json:"qa_model"`           // Extractive QA model
	APIKey       string `yaml:"-" json:"-"`                         // Never persisted
	BaseURL      string `yaml:"base_url" json:"base_url"`
	Timeout      int    `yaml:"timeout" json:"timeout"` // seconds
	MinLength    int    `yaml:"min_length" json:"min_length"`
	MaxLength    int    `yaml:"max_length" json:"max_length"`
}

// SummaryConfig controls the extractive summarizer
type SummaryConfig struct {
	Ratio         float64 `yaml:"ratio" json:"ratio"`                   // Fraction of sentences to keep
	FallbackChars int     `yaml:"fallback_chars" json:"fallback_chars"` // Truncation length when ranking is not possible
	MinSentences  int     `yaml:"min_sentences" json:"min_sentences"`   // Below this the ranker refuses
}

// DatasetConfig locates the QA benchmark dataset
type DatasetConfig struct {
	URL     string `yaml:"url" json:"url"`
	Samples int    `yaml:"samples" json:"samples"` // Rows to evaluate
}

// RateLimitConfig throttles remote calls per host
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	Burst             int     `yaml:"burst" json:"burst"`
}

// OutputConfig controls where results land
type OutputConfig struct {
	Verbose  bool   `yaml:"verbose" json:"verbose"`
	Workbook string `yaml:"workbook" json:"workbook"` // Path of the xlsx file
	ChartDir string `yaml:"chart_dir" json:"chart_dir"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "textdigest/0.1 (+https://github.com/ovasilenko/textdigest)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".textdigest-cache",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Inference: InferenceConfig{
			Provider:     "hf",
			SummaryModel: "sshleifer/distilbart-cnn-12-6",
			QAModel:      "distilbert-base-cased-distilled-squad",
			Timeout:      60,
			MinLength:    30,
			MaxLength:    130,
		},
		Summary: SummaryConfig{
			Ratio:         0.3,
			FallbackChars: 500,
			MinSentences:  3,
		},
		Dataset: DatasetConfig{
			URL:     "https://rajpurkar.github.io/SQuAD-explorer/dataset/dev-v1.1.json",
			Samples: 5,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Output: OutputConfig{
			Workbook: "summaries.xlsx",
			ChartDir: ".",
		},
	}
}
