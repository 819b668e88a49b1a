package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ovasilenko/textdigest/internal/dataset"
	"github.com/ovasilenko/textdigest/internal/inference"
	"github.com/ovasilenko/textdigest/internal/model"
	"github.com/ovasilenko/textdigest/internal/score"
	"github.com/ovasilenko/textdigest/internal/worker"
)

// Evaluator runs the question-answering benchmark: each sample is sent to
// the remote QA model and the predictions are scored with Exact Match and
// token F1.
type Evaluator struct {
	provider inference.Provider
	limiter  *worker.Limiter
	endpoint string
	qaModel  string
}

// NewEvaluator creates the QA pipeline. provider must not be nil.
func NewEvaluator(cfg *model.Config, provider inference.Provider) *Evaluator {
	return &Evaluator{
		provider: provider,
		limiter:  worker.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
		endpoint: inference.Endpoint(inference.ConfigFromModel(cfg.Inference)),
		qaModel:  cfg.Inference.QAModel,
	}
}

// Evaluate answers every sample and returns the scored report. A failed
// model call aborts the evaluation so partial runs never report skewed
// metrics.
func (e *Evaluator) Evaluate(ctx context.Context, samples []dataset.Sample) (*model.EvalReport, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("no samples to evaluate")
	}

	results := make([]model.SampleResult, 0, len(samples))
	for _, sample := range samples {
		if err := e.limiter.Wait(ctx, e.endpoint); err != nil {
			return nil, err
		}

		resp, err := e.provider.Answer(ctx, inference.AnswerRequest{
			Question: sample.Question,
			Context:  sample.Context,
			Model:    e.qaModel,
		})
		if err != nil {
			return nil, fmt.Errorf("answer sample %s: %w", sample.ID, err)
		}

		results = append(results, model.SampleResult{
			ID:         sample.ID,
			Question:   sample.Question,
			Reference:  sample.Answer,
			Predicted:  resp.Answer,
			Confidence: confidencePercent(resp.Score),
		})
	}

	em, f1 := score.Aggregate(results)
	return &model.EvalReport{
		Samples:    results,
		ExactMatch: em,
		F1:         f1,
		Provider:   e.provider.Name(),
		Model:      e.qaModel,
	}, nil
}

// RunInteractive reads questions from in, answers each against
// contextText and writes the results to out. A blank line is ignored;
// "exit" in any case ends the session before any model call is made for
// that line.
func (e *Evaluator) RunInteractive(ctx context.Context, in io.Reader, out io.Writer, contextText string) error {
	fmt.Fprintln(out, "Ask questions about the loaded context. Type 'exit' to quit.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "question> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if strings.EqualFold(question, "exit") {
			fmt.Fprintln(out, "Bye.")
			return nil
		}

		if err := e.limiter.Wait(ctx, e.endpoint); err != nil {
			return err
		}
		resp, err := e.provider.Answer(ctx, inference.AnswerRequest{
			Question: question,
			Context:  contextText,
			Model:    e.qaModel,
		})
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}

		fmt.Fprintf(out, "%s (confidence %.1f%%)\n", resp.Answer, confidencePercent(resp.Score))
	}
}

// confidencePercent converts a model score in [0,1] to a percentage,
// clamped so backends that report out-of-range scores stay within [0,100]
func confidencePercent(s float64) float64 {
	c := s * 100
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}
