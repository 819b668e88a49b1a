package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ovasilenko/textdigest/internal/dataset"
	"github.com/ovasilenko/textdigest/internal/inference"
	"github.com/ovasilenko/textdigest/internal/model"
)

// fakeProvider counts calls and returns canned responses
type fakeProvider struct {
	summarizeCalls int
	answerCalls    int
	answerScore    float64
	answerErr      error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) IsAvailable(ctx context.Context) bool { return true }

func (f *fakeProvider) Summarize(ctx context.Context, req inference.SummarizeRequest) (*inference.SummarizeResponse, error) {
	f.summarizeCalls++
	return &inference.SummarizeResponse{Summary: "a generated summary", Model: req.Model}, nil
}

func (f *fakeProvider) Answer(ctx context.Context, req inference.AnswerRequest) (*inference.AnswerResponse, error) {
	f.answerCalls++
	if f.answerErr != nil {
		return nil, f.answerErr
	}
	return &inference.AnswerResponse{Answer: "Denver Broncos", Score: f.answerScore}, nil
}

func fastConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.RateLimit.RequestsPerSecond = 1000
	cfg.RateLimit.Burst = 1000
	return cfg
}

func TestSummarizer_Run(t *testing.T) {
	provider := &fakeProvider{}
	s := NewSummarizer(fastConfig(), provider)

	docs, err := s.Run(context.Background(), dataset.DemoDocuments())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if provider.summarizeCalls != len(docs) {
		t.Errorf("Expected %d summarize calls, got %d", len(docs), provider.summarizeCalls)
	}

	for _, doc := range docs {
		if doc.Cleaned == "" {
			t.Errorf("%s: missing cleaned text", doc.Name)
		}
		if doc.Extractive == "" {
			t.Errorf("%s: missing extractive summary", doc.Name)
		}
		if doc.Abstractive != "a generated summary" {
			t.Errorf("%s: missing abstractive summary", doc.Name)
		}
		if doc.Stats == nil {
			t.Errorf("%s: missing stats", doc.Name)
			continue
		}
		for metric, v := range doc.Scores {
			if v < 0 || v > 1 {
				t.Errorf("%s: %s score %f out of [0,1]", doc.Name, metric, v)
			}
		}
	}
}

func TestSummarizer_Run_NoProvider(t *testing.T) {
	s := NewSummarizer(fastConfig(), nil)

	docs, err := s.Run(context.Background(), dataset.DemoDocuments())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, doc := range docs {
		if doc.Abstractive != "" {
			t.Errorf("%s: expected empty abstractive summary without a provider", doc.Name)
		}
		if doc.Extractive == "" {
			t.Errorf("%s: extractive summary must not depend on a provider", doc.Name)
		}
	}
}

func TestSummarizer_Run_ShortDocumentFallsBack(t *testing.T) {
	s := NewSummarizer(fastConfig(), nil)

	docs, err := s.Run(context.Background(), []model.Document{
		{Name: "short", Text: "AI has revolutionized various industries."},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if docs[0].Extractive != "ai has revolutionized various industries." {
		t.Errorf("Expected truncation fallback to keep the cleaned short text, got %q", docs[0].Extractive)
	}
}

func TestSummarizer_Run_SummarizesCleanedText(t *testing.T) {
	s := NewSummarizer(fastConfig(), nil)

	docs, err := s.Run(context.Background(), []model.Document{
		{
			Name: "mixed",
			Text: "Alpha, beta, gamma appear here. Beta and gamma repeat again today. Gamma closes the set now.",
		},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := docs[0].Extractive
	if strings.Contains(got, ",") {
		t.Errorf("Extractive summary kept punctuation the preprocessor strips: %q", got)
	}
	if got != strings.ToLower(got) {
		t.Errorf("Extractive summary kept uppercase the preprocessor strips: %q", got)
	}
}

func TestEvaluator_Evaluate(t *testing.T) {
	provider := &fakeProvider{answerScore: 0.973}
	e := NewEvaluator(fastConfig(), provider)

	samples := []dataset.Sample{
		{ID: "q1", Question: "Who won?", Context: "The Denver Broncos won.", Answer: "Denver Broncos"},
		{ID: "q2", Question: "Which team won?", Context: "The Denver Broncos won.", Answer: "Carolina Panthers"},
	}

	rep, err := e.Evaluate(context.Background(), samples)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if provider.answerCalls != 2 {
		t.Errorf("Expected 2 answer calls, got %d", provider.answerCalls)
	}
	if rep.ExactMatch != 50 {
		t.Errorf("Expected EM 50, got %f", rep.ExactMatch)
	}
	for _, s := range rep.Samples {
		if s.Confidence < 0 || s.Confidence > 100 {
			t.Errorf("Confidence %f out of [0,100]", s.Confidence)
		}
	}
}

func TestEvaluator_Evaluate_ClampsConfidence(t *testing.T) {
	for _, raw := range []float64{1.7, -0.5} {
		provider := &fakeProvider{answerScore: raw}
		e := NewEvaluator(fastConfig(), provider)

		rep, err := e.Evaluate(context.Background(), []dataset.Sample{
			{ID: "q1", Question: "q", Context: "c", Answer: "a"},
		})
		if err != nil {
			t.Fatalf("Evaluate failed: %v", err)
		}
		got := rep.Samples[0].Confidence
		if got < 0 || got > 100 {
			t.Errorf("Score %f: confidence %f out of [0,100]", raw, got)
		}
	}
}

func TestEvaluator_Evaluate_FailsFast(t *testing.T) {
	provider := &fakeProvider{answerErr: errors.New("model loading")}
	e := NewEvaluator(fastConfig(), provider)

	_, err := e.Evaluate(context.Background(), []dataset.Sample{
		{ID: "q1", Question: "q", Context: "c", Answer: "a"},
	})
	if err == nil {
		t.Fatal("Expected evaluation to fail when the model call fails")
	}
}

func TestEvaluator_Evaluate_EmptySamples(t *testing.T) {
	e := NewEvaluator(fastConfig(), &fakeProvider{})
	if _, err := e.Evaluate(context.Background(), nil); err == nil {
		t.Fatal("Expected error for empty sample set")
	}
}

func TestRunInteractive_ExitWithoutModelCall(t *testing.T) {
	for _, input := range []string{"exit\n", "EXIT\n", "  Exit  \n"} {
		provider := &fakeProvider{answerScore: 1}
		e := NewEvaluator(fastConfig(), provider)

		var out strings.Builder
		err := e.RunInteractive(context.Background(), strings.NewReader(input), &out, "some context")
		if err != nil {
			t.Fatalf("RunInteractive(%q) failed: %v", input, err)
		}
		if provider.answerCalls != 0 {
			t.Errorf("Input %q: expected no model calls, got %d", input, provider.answerCalls)
		}
	}
}

func TestRunInteractive_SkipsBlankLines(t *testing.T) {
	provider := &fakeProvider{answerScore: 0.9}
	e := NewEvaluator(fastConfig(), provider)

	input := "\n   \nWho won?\nexit\n"
	var out strings.Builder
	if err := e.RunInteractive(context.Background(), strings.NewReader(input), &out, "The Denver Broncos won."); err != nil {
		t.Fatalf("RunInteractive failed: %v", err)
	}

	if provider.answerCalls != 1 {
		t.Errorf("Expected 1 model call, got %d", provider.answerCalls)
	}
	if !strings.Contains(out.String(), "Denver Broncos") {
		t.Errorf("Expected answer in output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "90.0%") {
		t.Errorf("Expected confidence in output:\n%s", out.String())
	}
}

func TestRunInteractive_EOFEndsSession(t *testing.T) {
	provider := &fakeProvider{}
	e := NewEvaluator(fastConfig(), provider)

	var out strings.Builder
	if err := e.RunInteractive(context.Background(), strings.NewReader(""), &out, "ctx"); err != nil {
		t.Fatalf("RunInteractive failed on EOF: %v", err)
	}
	if provider.answerCalls != 0 {
		t.Errorf("Expected no model calls on EOF, got %d", provider.answerCalls)
	}
}
