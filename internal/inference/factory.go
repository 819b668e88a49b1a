package inference

import (
	"fmt"
	"os"
	"strings"
)

// NewProvider creates a new inference provider based on configuration
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "hf", "huggingface":
		return NewHFProvider(config)

	case "openai":
		return NewOpenAIProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		// No provider configured - return nil (remote inference disabled)
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown inference provider: %s (supported: hf, openai, ollama)", config.Provider)
	}
}

// Endpoint returns the base URL the configured provider will call, for
// rate limiting ahead of the request.
func Endpoint(config Config) string {
	if config.BaseURL != "" {
		return config.BaseURL
	}
	switch strings.ToLower(config.Provider) {
	case "openai":
		return "https://api.openai.com"
	case "ollama":
		return "http://localhost:11434"
	default:
		return defaultHFBaseURL
	}
}

// ResolveAPIKey fills Config.APIKey and BaseURL from the conventional
// environment variables for the configured provider. Returns an error when
// a key is required and missing.
func ResolveAPIKey(config *Config) error {
	switch strings.ToLower(config.Provider) {
	case "hf", "huggingface":
		if config.APIKey == "" {
			config.APIKey = os.Getenv("HF_API_TOKEN")
		}
		if config.APIKey == "" {
			return fmt.Errorf("HF_API_TOKEN environment variable not set")
		}
	case "openai":
		if config.APIKey == "" {
			config.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if config.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if config.BaseURL == "" {
			config.BaseURL = os.Getenv("OLLAMA_BASE_URL")
		}
	}
	return nil
}
