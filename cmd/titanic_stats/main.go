// Package main provides the entry point for the titanic_stats CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/titanic-survival/internal/config"
	"github.com/jonathan/titanic-survival/internal/observability"
)

var (
	configPath string
	verbose    bool
	logLevel   string

	// cfg is the config file merged with the persistent flags; sub-commands layer their own flags on top
	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "titanic_stats",
	Short: "Survival statistics for the Titanic passenger manifest",
	Long: `Reads the Titanic passenger manifest (train.csv) and prints the overall survival rate,
survival by sex and survival by passenger class as contingency tables with narrative text.

Run without a sub-command to print the report. Configuration can be loaded from a JSON or
YAML file using --config. Command-line arguments override config file values.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runReport,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a .json, .yaml or .yml config file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print the dataset profile and debug logs")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (default warn)")

	addReportFlags(rootCmd)
}

// setup loads the config file, applies the persistent flags and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	var loaded config.Config
	if configPath != "" {
		c, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := c.Validate(); err != nil {
			return err
		}
		loaded = *c
	}

	if cmd.Flags().Changed("verbose") {
		loaded.Verbose = verbose
	}
	if cmd.Flags().Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	cfg = loaded

	l, err := observability.NewLogger(cfg.Verbose, cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = l

	if configPath != "" {
		logger.Debug("Loaded config", zap.String("path", configPath))
	}
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
