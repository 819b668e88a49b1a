package inference

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements the Provider interface with OpenAI chat
// models. Summaries are generated by prompt; QA answers are extracted by
// prompting the model to quote a verbatim span. The chat API exposes no
// span probability, so Answer reports a score of 1.
type OpenAIProvider struct {
	client *openai.Client
	config Config
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(config Config) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is properly configured
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.client.ListModels(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "OpenAI API check failed: %v\n", err)
		return false
	}
	return true
}

// Summarize generates an abstractive summary using the Chat Completions API
func (p *OpenAIProvider) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	model := req.Model
	if model == "" {
		model = p.config.SummaryModel
	}
	if model == "" {
		model = openai.GPT4oMini
	}

	minLen, maxLen := req.MinLength, req.MaxLength
	if minLen == 0 {
		minLen = p.config.MinLength
	}
	if maxLen == 0 {
		maxLen = p.config.MaxLength
	}

	prompt := fmt.Sprintf(
		"Summarize the following text in roughly %d to %d words. Respond with the summary only.\n\n%s",
		minLen, maxLen, req.Text)

	content, err := p.chat(ctx, model,
		"You are a summarization engine. You produce concise abstractive summaries and nothing else.",
		prompt, maxLen*2)
	if err != nil {
		return nil, err
	}

	return &SummarizeResponse{
		Summary: content,
		Model:   model,
	}, nil
}

// Answer extracts an answer span using the Chat Completions API
func (p *OpenAIProvider) Answer(ctx context.Context, req AnswerRequest) (*AnswerResponse, error) {
	model := req.Model
	if model == "" {
		model = p.config.QAModel
	}
	if model == "" {
		model = openai.GPT4oMini
	}

	prompt := fmt.Sprintf(
		"Answer the question using ONLY a short verbatim quote from the context. Respond with the quote alone, no punctuation around it.\n\nContext:\n%s\n\nQuestion: %s",
		req.Context, req.Question)

	content, err := p.chat(ctx, model,
		"You are an extractive question answering engine. You answer with the shortest exact span from the context.",
		prompt, 100)
	if err != nil {
		return nil, err
	}

	answer := strings.Trim(content, "\"'")
	start := strings.Index(req.Context, answer)
	end := -1
	if start >= 0 {
		end = start + len(answer)
	}

	return &AnswerResponse{
		Answer: answer,
		Score:  1, // Chat API exposes no span probability
		Start:  start,
		End:    end,
		Model:  model,
	}, nil
}

// chat runs a single system+user exchange and returns the trimmed reply
func (p *OpenAIProvider) chat(ctx context.Context, model, system, user string, maxTokens int) (string, error) {
	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.3, // Lower temperature for more focused, factual output
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
