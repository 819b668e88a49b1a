package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ovasilenko/textdigest/internal/analyze"
	"github.com/ovasilenko/textdigest/internal/inference"
	"github.com/ovasilenko/textdigest/internal/model"
	"github.com/ovasilenko/textdigest/internal/report"
	"github.com/ovasilenko/textdigest/internal/score"
	"github.com/ovasilenko/textdigest/internal/summarize"
	"github.com/ovasilenko/textdigest/internal/text"
	"github.com/ovasilenko/textdigest/internal/worker"
)

// Summarizer orchestrates the document summarization run: cleaning,
// extractive and abstractive summaries, ROUGE scoring and statistics.
type Summarizer struct {
	extractive *summarize.Extractive
	rouge      *score.Rouge
	provider   inference.Provider // Optional remote backend (nil skips abstractive)
	limiter    *worker.Limiter
	endpoint   string
	config     *model.Config
}

// NewSummarizer creates the summarization pipeline. provider may be nil,
// in which case the abstractive column is left empty.
func NewSummarizer(cfg *model.Config, provider inference.Provider) *Summarizer {
	return &Summarizer{
		extractive: summarize.NewExtractive(cfg.Summary.Ratio, cfg.Summary.MinSentences),
		rouge:      score.NewRouge(),
		provider:   provider,
		limiter:    worker.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
		endpoint:   inference.Endpoint(inference.ConfigFromModel(cfg.Inference)),
		config:     cfg,
	}
}

// Run processes every document in place and returns the completed table.
// A remote inference failure aborts the run; local steps never do for
// non-empty documents.
func (s *Summarizer) Run(ctx context.Context, docs []model.Document) ([]model.Document, error) {
	for i := range docs {
		doc := &docs[i]

		// 1. Preprocess
		doc.Cleaned = text.Clean(doc.Text)

		// 2. Extractive summary over the cleaned text (truncation fallback
		// for short inputs)
		doc.Extractive = s.extractive.WithFallback(doc.Cleaned, s.config.Summary.FallbackChars)

		// 3. Abstractive summary via the remote model
		if s.provider != nil {
			if err := s.limiter.Wait(ctx, s.endpoint); err != nil {
				return nil, err
			}
			resp, err := s.provider.Summarize(ctx, inference.SummarizeRequest{
				Text:      doc.Cleaned,
				Model:     s.config.Inference.SummaryModel,
				MinLength: s.config.Inference.MinLength,
				MaxLength: s.config.Inference.MaxLength,
			})
			if err != nil {
				return nil, fmt.Errorf("abstractive summary for %s: %w", doc.Name, err)
			}
			doc.Abstractive = resp.Summary
		}

		// 4. ROUGE between the original text and the extractive summary
		doc.Scores = s.rouge.Score(doc.Text, doc.Extractive)

		// 5. Compression and reading-time statistics
		stats, err := analyze.Stats(doc.Text, doc.Extractive)
		if err != nil {
			return nil, fmt.Errorf("stats for %s: %w", doc.Name, err)
		}
		doc.Stats = stats

		if s.config.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ %s: %d -> %d words\n", doc.Name, stats.OriginalWords, stats.SummaryWords)
		}
	}

	return docs, nil
}

// Render writes the result table to stdout, the workbook to xlsxPath and
// the charts into chartDir. Empty paths skip the corresponding output.
func (s *Summarizer) Render(docs []model.Document, xlsxPath, chartDir string) error {
	report.RenderTable(os.Stdout, docs)
	fmt.Println()
	report.RenderStats(os.Stdout, docs)

	if xlsxPath != "" {
		if err := report.WriteWorkbook(docs, xlsxPath); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		if s.config.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote workbook: %s\n", xlsxPath)
		}
	}

	if chartDir != "" {
		if err := report.RenderSummaryCharts(docs, chartDir); err != nil {
			return fmt.Errorf("render charts: %w", err)
		}
		if s.config.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote charts: %s\n", filepath.Join(chartDir, "word_frequency.html"))
			fmt.Fprintf(os.Stderr, "✓ Wrote charts: %s\n", filepath.Join(chartDir, "compression.html"))
		}
	}

	return nil
}
