package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ovasilenko/textdigest/internal/dataset"
	"github.com/ovasilenko/textdigest/internal/inference"
	"github.com/ovasilenko/textdigest/internal/model"
	"github.com/ovasilenko/textdigest/internal/pipeline"
)

var (
	ratio           float64
	xlsxOut         string
	chartDir        string
	providerName    string
	summaryModel    string
	minLength       int
	maxLength       int
	skipAbstractive bool
	demoDocs        bool
	noCache         bool
	timeout         time.Duration
	userAgent       string
	maxBytes        int64
	insecureTLS     bool
	httpProxy       string
	httpsProxy      string
)

// summarizeCmd represents the summarize command
var summarizeCmd = &cobra.Command{
	Use:   "summarize [source...]",
	Short: "Summarize documents and score the results",
	Long: `Summarize processes one or more documents to:
- Normalize the text (lowercase, strip special characters)
- Produce an extractive summary by frequency-ranking sentences
- Produce an abstractive summary via a remote pre-trained model
- Score summaries with ROUGE-1, ROUGE-2 and ROUGE-L
- Report compression ratios and reading times

Sources may be files, directories of .txt files, or http(s) URLs.
With no sources the built-in demo documents are used.

Example:
  textdigest summarize
  textdigest summarize notes.txt ./articles https://example.com/post
  textdigest summarize notes.txt --ratio 0.2 --xlsx out.xlsx --skip-abstractive`,
	Args: cobra.ArbitraryArgs,
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	// Summary flags
	summarizeCmd.Flags().Float64Var(&ratio, "ratio", 0.3, "fraction of sentences to keep in the extractive summary")
	summarizeCmd.Flags().BoolVar(&skipAbstractive, "skip-abstractive", false, "skip the remote abstractive summary")
	summarizeCmd.Flags().BoolVar(&demoDocs, "demo", false, "use the built-in demo documents")

	// Output flags
	summarizeCmd.Flags().StringVar(&xlsxOut, "xlsx", "summaries.xlsx", "output spreadsheet path (empty to skip)")
	summarizeCmd.Flags().StringVar(&chartDir, "chart-dir", ".", "directory for HTML charts (empty to skip)")

	// Inference flags
	summarizeCmd.Flags().StringVar(&providerName, "provider", "hf", "inference provider (hf, openai, ollama)")
	summarizeCmd.Flags().StringVar(&summaryModel, "summary-model", "sshleifer/distilbart-cnn-12-6", "summarization model name")
	summarizeCmd.Flags().IntVar(&minLength, "min-length", 30, "minimum abstractive summary length in tokens")
	summarizeCmd.Flags().IntVar(&maxLength, "max-length", 130, "maximum abstractive summary length in tokens")
	summarizeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh model calls)")

	// HTTP flags
	summarizeCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall run timeout")
	summarizeCmd.Flags().StringVar(&userAgent, "ua", "textdigest/0.1 (+https://github.com/ovasilenko/textdigest)", "HTTP User-Agent")
	summarizeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read per URL")
	summarizeCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
	summarizeCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	summarizeCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.Cache.Enabled = !noCache
	cfg.Summary.Ratio = ratio
	cfg.Inference.Provider = providerName
	cfg.Inference.SummaryModel = summaryModel
	cfg.Inference.MinLength = minLength
	cfg.Inference.MaxLength = maxLength
	cfg.Output.Verbose = verbose
	cfg.Output.Workbook = xlsxOut
	cfg.Output.ChartDir = chartDir

	// Load documents
	var docs []model.Document
	if demoDocs || len(args) == 0 {
		if verbose && len(args) == 0 && !demoDocs {
			fmt.Fprintln(os.Stderr, "No sources given, using demo documents")
		}
		docs = dataset.DemoDocuments()
	} else {
		fetcher := dataset.NewFetcher(cfg.HTTP, cfg.RateLimit)
		loaded, err := dataset.NewLoader(fetcher).Load(ctx, args)
		if err != nil {
			return fmt.Errorf("load documents: %w", err)
		}
		docs = loaded
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Loaded %d document(s)\n", len(docs))
	}

	// Build the remote provider unless disabled
	var provider inference.Provider
	if !skipAbstractive {
		p, err := newProvider(cfg)
		if err != nil {
			return err
		}
		provider = p
	} else if verbose {
		fmt.Fprintln(os.Stderr, "Skipping abstractive summaries")
	}

	// Run the pipeline
	p := pipeline.NewSummarizer(cfg, provider)
	docs, err := p.Run(ctx, docs)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	// Render outputs
	if err := p.Render(docs, xlsxOut, chartDir); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}
