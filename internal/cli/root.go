package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ovasilenko/textdigest/internal/cache"
	"github.com/ovasilenko/textdigest/internal/inference"
	"github.com/ovasilenko/textdigest/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "textdigest",
	Short: "Textdigest - document summarization and QA benchmarking",
	Long: `Textdigest condenses documents and measures how well it did.

The summarize command cleans input documents, produces extractive and
abstractive summaries, scores them with ROUGE and reports compression
and reading-time statistics as a table, a spreadsheet and HTML charts.

The qa command benchmarks a remote question-answering model against a
SQuAD-format dataset and reports Exact Match and F1; ask opens an
interactive session against the same model.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for Textdigest.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("textdigest v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.textdigest/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.textdigest")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match TEXTDIGEST_*
	viper.SetEnvPrefix("TEXTDIGEST")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// newProvider builds the configured inference provider, resolving the API
// key from the environment and wrapping it with the response cache.
func newProvider(cfg *model.Config) (inference.Provider, error) {
	ic := inference.ConfigFromModel(cfg.Inference)
	if err := inference.ResolveAPIKey(&ic); err != nil {
		return nil, err
	}

	provider, err := inference.NewProvider(ic)
	if err != nil || provider == nil {
		return provider, err
	}

	if cfg.Cache.Enabled {
		layered := cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		return inference.NewCachedProvider(provider, layered, cfg.Cache.DiskTTL), nil
	}
	return provider, nil
}

// newDatasetCache returns the cache for raw dataset downloads
func newDatasetCache(cfg *model.Config) cache.Cache {
	if !cfg.Cache.Enabled {
		return cache.Noop{}
	}
	return cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
}
