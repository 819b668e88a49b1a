package inference

import (
	"context"

	"github.com/ovasilenko/textdigest/internal/model"
)

// Provider defines the interface for remote pre-trained model backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates an abstractive summary of the text, bounded to
	// the configured minimum and maximum output length
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// Answer extracts an answer span for the question from the context
	Answer(ctx context.Context, req AnswerRequest) (*AnswerResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for abstractive summarization
type SummarizeRequest struct {
	// Text is the (cleaned) document text to summarize
	Text string

	// Model overrides the configured summarization model
	Model string

	// MinLength / MaxLength bound the generated summary in tokens
	MinLength int
	MaxLength int
}

// SummarizeResponse contains the generated summary
type SummarizeResponse struct {
	Summary string
	Model   string
}

// AnswerRequest contains the input for extractive question answering
type AnswerRequest struct {
	Question string
	Context  string

	// Model overrides the configured QA model
	Model string
}

// AnswerResponse contains the predicted answer span
type AnswerResponse struct {
	// Answer is the extracted span text
	Answer string

	// Score is the model's confidence in [0,1]. Chat-based providers that
	// expose no span probability report 1.
	Score float64

	// Start/End are character offsets into the context when the backend
	// reports them
	Start int
	End   int

	Model string
}

// Config holds inference provider configuration
type Config struct {
	// Provider name: "hf", "openai", "ollama", ""
	Provider string

	// SummaryModel and QAModel are provider-specific model names
	SummaryModel string
	QAModel      string

	// APIKey for HuggingFace/OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama, HF-compatible gateways)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MinLength / MaxLength defaults for summarization
	MinLength int
	MaxLength int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:     "hf",
		SummaryModel: "sshleifer/distilbart-cnn-12-6",
		QAModel:      "distilbert-base-cased-distilled-squad",
		Timeout:      60,
		MinLength:    30,
		MaxLength:    130,
	}
}

// ConfigFromModel converts model.InferenceConfig to inference.Config
func ConfigFromModel(mc model.InferenceConfig) Config {
	return Config{
		Provider:     mc.Provider,
		SummaryModel: mc.SummaryModel,
		QAModel:      mc.QAModel,
		APIKey:       mc.APIKey,
		BaseURL:      mc.BaseURL,
		Timeout:      mc.Timeout,
		MinLength:    mc.MinLength,
		MaxLength:    mc.MaxLength,
	}
}
