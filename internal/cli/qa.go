package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ovasilenko/textdigest/internal/dataset"
	"github.com/ovasilenko/textdigest/internal/model"
	"github.com/ovasilenko/textdigest/internal/pipeline"
	"github.com/ovasilenko/textdigest/internal/report"
)

var (
	samplesN        int
	datasetURL      string
	qaModel         string
	confidenceChart string
	qaTimeout       time.Duration
)

// qaCmd represents the qa command
var qaCmd = &cobra.Command{
	Use:   "qa",
	Short: "Benchmark a question-answering model on a SQuAD-format dataset",
	Long: `QA downloads a SQuAD v1.1-format dataset, sends each question with
its context paragraph to the remote QA model and scores the predicted
answers against the references:
- Exact Match after answer normalization
- Token-level F1
- Per-sample confidence chart

The raw dataset is cached on disk between runs.

Example:
  textdigest qa
  textdigest qa --samples 25 --chart confidence.html
  textdigest qa --provider openai --qa-model gpt-4o-mini`,
	Args: cobra.NoArgs,
	RunE: runQA,
}

func init() {
	rootCmd.AddCommand(qaCmd)

	qaCmd.Flags().IntVar(&samplesN, "samples", 5, "number of dataset samples to evaluate")
	qaCmd.Flags().StringVar(&datasetURL, "dataset", "https://rajpurkar.github.io/SQuAD-explorer/dataset/dev-v1.1.json", "dataset URL (SQuAD v1.1 format)")
	qaCmd.Flags().StringVar(&confidenceChart, "chart", "confidence.html", "confidence chart path (empty to skip)")
	qaCmd.Flags().DurationVar(&qaTimeout, "timeout", 10*time.Minute, "overall evaluation timeout")

	// Inference flags (provider/no-cache are shared with summarize)
	qaCmd.Flags().StringVar(&providerName, "provider", "hf", "inference provider (hf, openai, ollama)")
	qaCmd.Flags().StringVar(&qaModel, "qa-model", "distilbert-base-cased-distilled-squad", "question-answering model name")
	qaCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh downloads and model calls)")
}

func runQA(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), qaTimeout)
	defer cancel()

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.Inference.Provider = providerName
	cfg.Inference.QAModel = qaModel
	cfg.Dataset.URL = datasetURL
	cfg.Dataset.Samples = samplesN
	cfg.Output.Verbose = verbose

	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}
	if provider == nil {
		return fmt.Errorf("qa requires an inference provider (use --provider)")
	}

	// Load the dataset
	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Loading dataset: %s\n", datasetURL)
	}
	fetcher := dataset.NewFetcher(cfg.HTTP, cfg.RateLimit)
	loader := dataset.NewSquadLoader(fetcher, newDatasetCache(cfg))
	samples, err := loader.Load(ctx, datasetURL, samplesN)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Loaded %d sample(s)\n", len(samples))
		fmt.Fprintf(os.Stderr, "⚙️  Evaluating with %s/%s...\n", provider.Name(), qaModel)
	}

	// Evaluate
	evaluator := pipeline.NewEvaluator(cfg, provider)
	rep, err := evaluator.Evaluate(ctx, samples)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	// Render outputs
	report.RenderEvalReport(os.Stdout, rep)

	if confidenceChart != "" {
		if err := report.RenderConfidenceChart(rep.Samples, confidenceChart); err != nil {
			return fmt.Errorf("render chart: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote chart: %s\n", confidenceChart)
		}
	}

	return nil
}
