// Package main implements the lead_validator CLI for rule-based lead validation.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/lead-validator/internal/config"
	"github.com/jonathan/lead-validator/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "lead_validator",
	Short: "Validate sales leads against their requisition rules",
	Long: `lead_validator reads lead rows from CSV or XLSX files, parses each row's requisition
string, and assigns a VALID, INVALID or RECHECK verdict chosen by the row's sub_status.

Configuration can be loaded from a JSON or YAML file using --config or the
LEAD_VALIDATOR_CONFIG environment variable. Command-line flags override config file values.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
}

var (
	rootConfigPath string
	rootVerbose    bool
	rootLogFormat  string

	// appConfig is the merged file, flag and default configuration.
	appConfig config.Config
	logger    = zap.NewNop()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to config file (.json, .yaml); defaults to $"+config.EnvConfigPath)
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.PersistentFlags().StringVar(&rootLogFormat, "log-format", "", "Log format: console or json")
}

// setup loads the config file, applies global flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if path := config.ResolvePath(rootConfigPath); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = rootVerbose
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = rootLogFormat
	}

	appConfig = cfg.MergeWithDefaults(config.Defaults())

	l, err := logging.New(appConfig.LogFormat, appConfig.Verbose)
	if err != nil {
		return err
	}
	logger = l
	if path := config.ResolvePath(rootConfigPath); path != "" {
		logger.Debug("loaded config", zap.String("path", path))
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
