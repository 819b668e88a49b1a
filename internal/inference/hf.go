package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ovasilenko/textdigest/internal/util"
)

const defaultHFBaseURL = "https://api-inference.huggingface.co"

// HFProvider implements the Provider interface against the HuggingFace
// Inference API. This is the reference backend: its question-answering
// endpoint returns a true span probability.
type HFProvider struct {
	baseURL    string
	httpClient *http.Client
	config     Config
}

// HuggingFace Inference API structures

type hfSummaryRequest struct {
	Inputs     string          `json:"inputs"`
	Parameters hfSummaryParams `json:"parameters"`
	Options    hfOptions       `json:"options"`
}

type hfSummaryParams struct {
	MinLength int `json:"min_length,omitempty"`
	MaxLength int `json:"max_length,omitempty"`
}

type hfSummaryResponse struct {
	SummaryText string `json:"summary_text"`
}

type hfQARequest struct {
	Inputs  hfQAInputs `json:"inputs"`
	Options hfOptions  `json:"options"`
}

type hfQAInputs struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

type hfQAResponse struct {
	Score  float64 `json:"score"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Answer string  `json:"answer"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfError struct {
	Error string `json:"error"`
}

// NewHFProvider creates a new HuggingFace Inference API provider
func NewHFProvider(config Config) (*HFProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("HuggingFace API token is required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultHFBaseURL
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second // First call may wait for model load
	}

	return &HFProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(config.HTTPProxy, config.HTTPSProxy, config.NoProxy),
			},
		},
		config: config,
	}, nil
}

// Name returns the provider name
func (p *HFProvider) Name() string {
	return "hf"
}

// IsAvailable checks if the provider is properly configured
func (p *HFProvider) IsAvailable(ctx context.Context) bool {
	// A HEAD against the model endpoint verifies both token and model
	url := fmt.Sprintf("%s/models/%s", p.baseURL, p.config.QAModel)
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode == http.StatusOK
}

// Summarize generates an abstractive summary via a seq2seq summarization
// model
func (p *HFProvider) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	model := req.Model
	if model == "" {
		model = p.config.SummaryModel
	}
	if model == "" {
		return nil, fmt.Errorf("summarization model must be specified")
	}

	minLen, maxLen := req.MinLength, req.MaxLength
	if minLen == 0 {
		minLen = p.config.MinLength
	}
	if maxLen == 0 {
		maxLen = p.config.MaxLength
	}

	apiReq := hfSummaryRequest{
		Inputs: req.Text,
		Parameters: hfSummaryParams{
			MinLength: minLen,
			MaxLength: maxLen,
		},
		Options: hfOptions{WaitForModel: true},
	}

	body, err := p.post(ctx, model, apiReq)
	if err != nil {
		return nil, fmt.Errorf("huggingface summarization: %w", err)
	}

	// The summarization endpoint returns a one-element array
	var results []hfSummaryResponse
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(results) == 0 || strings.TrimSpace(results[0].SummaryText) == "" {
		return nil, fmt.Errorf("no summary returned by %s", model)
	}

	return &SummarizeResponse{
		Summary: strings.TrimSpace(results[0].SummaryText),
		Model:   model,
	}, nil
}

// Answer extracts an answer span via an extractive QA model
func (p *HFProvider) Answer(ctx context.Context, req AnswerRequest) (*AnswerResponse, error) {
	model := req.Model
	if model == "" {
		model = p.config.QAModel
	}
	if model == "" {
		return nil, fmt.Errorf("question-answering model must be specified")
	}

	apiReq := hfQARequest{
		Inputs: hfQAInputs{
			Question: req.Question,
			Context:  req.Context,
		},
		Options: hfOptions{WaitForModel: true},
	}

	body, err := p.post(ctx, model, apiReq)
	if err != nil {
		return nil, fmt.Errorf("huggingface question answering: %w", err)
	}

	var result hfQAResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if result.Answer == "" {
		return nil, fmt.Errorf("no answer returned by %s", model)
	}

	return &AnswerResponse{
		Answer: result.Answer,
		Score:  result.Score,
		Start:  result.Start,
		End:    result.End,
		Model:  model,
	}, nil
}

// post sends a JSON request to the model endpoint and returns the raw body
func (p *HFProvider) post(ctx context.Context, model string, payload interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", p.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.config.APIKey)

	httpResp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		var apiErr hfError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("API error (%d): %s", httpResp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("API error (%d): %s", httpResp.StatusCode, string(respBody))
	}

	return respBody, nil
}
