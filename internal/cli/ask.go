package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ovasilenko/textdigest/internal/model"
	"github.com/ovasilenko/textdigest/internal/pipeline"
)

var (
	contextFile string
	contextText string
)

// defaultAskContext is used when no context is supplied, so the command
// works out of the box.
const defaultAskContext = "The Apollo program was the United States human spaceflight program " +
	"that landed the first humans on the Moon. Apollo 11 touched down in July 1969, " +
	"carrying commander Neil Armstrong, lunar module pilot Buzz Aldrin and command " +
	"module pilot Michael Collins. Armstrong became the first person to walk on the " +
	"lunar surface. Six missions landed in total before the program ended in 1972."

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask questions interactively against a context paragraph",
	Long: `Ask opens an interactive session: each question you type is answered
by the remote QA model against the loaded context paragraph, with the
model's confidence. Type 'exit' to quit.

Example:
  textdigest ask
  textdigest ask --context-file article.txt
  textdigest ask --context "The Denver Broncos won Super Bowl 50."`,
	Args: cobra.NoArgs,
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVar(&contextFile, "context-file", "", "file holding the context paragraph")
	askCmd.Flags().StringVar(&contextText, "context", "", "context paragraph (overrides --context-file)")

	// Inference flags (shared variables with qa)
	askCmd.Flags().StringVar(&providerName, "provider", "hf", "inference provider (hf, openai, ollama)")
	askCmd.Flags().StringVar(&qaModel, "qa-model", "distilbert-base-cased-distilled-squad", "question-answering model name")
	askCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the response cache")
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.Inference.Provider = providerName
	cfg.Inference.QAModel = qaModel
	cfg.Output.Verbose = verbose

	paragraph, err := resolveAskContext()
	if err != nil {
		return err
	}

	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}
	if provider == nil {
		return fmt.Errorf("ask requires an inference provider (use --provider)")
	}

	evaluator := pipeline.NewEvaluator(cfg, provider)
	return evaluator.RunInteractive(context.Background(), os.Stdin, os.Stdout, paragraph)
}

func resolveAskContext() (string, error) {
	if contextText != "" {
		return contextText, nil
	}
	if contextFile != "" {
		data, err := os.ReadFile(contextFile)
		if err != nil {
			return "", fmt.Errorf("read context file: %w", err)
		}
		paragraph := strings.TrimSpace(string(data))
		if paragraph == "" {
			return "", fmt.Errorf("context file %s is empty", contextFile)
		}
		return paragraph, nil
	}
	return defaultAskContext, nil
}
