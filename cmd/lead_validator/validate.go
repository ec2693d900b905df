package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/lead-validator/internal/config"
	"github.com/jonathan/lead-validator/internal/observability"
	"github.com/jonathan/lead-validator/internal/pipeline"
	"github.com/jonathan/lead-validator/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every lead in a CSV or XLSX file",
	Long: `Reads leads from --in, validates each row with the rule selected by its sub_status,
and writes the rows with result and comment columns to --out (XLSX sheet "Result" or CSV).`,
	RunE: runValidate,
}

var (
	validateInput     string
	validateOutput    string
	validateReport    string
	validateWorkers   int
	validateBatchSize int
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to leads file, .csv or .xlsx (required unless set in config)")
	validateCmd.Flags().StringVarP(&validateOutput, "out", "o", "", "Path to results file, .xlsx or .csv (default output.xlsx)")
	validateCmd.Flags().StringVarP(&validateReport, "report", "r", "", "Path to JSON run report (optional)")
	validateCmd.Flags().IntVarP(&validateWorkers, "workers", "w", 0, "Concurrent rule evaluations (default number of CPUs)")
	validateCmd.Flags().IntVar(&validateBatchSize, "batch-size", 0, "Rows read per batch (default 256)")

	rootCmd.AddCommand(validateCmd)
}

// applyValidateFlags overrides cfg with the validate flags the user set explicitly.
func applyValidateFlags(cmd *cobra.Command, cfg config.Config) config.Config {
	if cmd.Flags().Changed("in") {
		cfg.Input = validateInput
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = validateOutput
	}
	if cmd.Flags().Changed("report") {
		cfg.Report = validateReport
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = validateWorkers
	}
	if cmd.Flags().Changed("batch-size") {
		cfg.BatchSize = validateBatchSize
	}
	return cfg
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg := applyValidateFlags(cmd, appConfig)
	if cfg.Input == "" {
		return fmt.Errorf("--in must be provided (or set 'input' in the config file)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := validation.DefaultOptions()
	opts.Logger = logger
	if cfg.Title != nil {
		opts.Title = *cfg.Title
	}

	report, err := pipeline.Run(ctx, pipeline.RunOptions{
		Input:      cfg.Input,
		Output:     cfg.Output,
		ReportPath: cfg.Report,
		Workers:    cfg.Workers,
		BatchSize:  cfg.BatchSize,
		Dispatcher: validation.NewDispatcher(opts),
		Logger:     logger,
		OnProgress: func(e pipeline.ProgressEvent) {
			logger.Debug(e.Message, zap.String("step", e.Step), zap.Int("rows", e.Rows))
		},
	})
	if err != nil {
		return fmt.Errorf("validation run failed: %w", err)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintRunReport(report)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", cfg.Output)
	if cfg.Report != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Report: %s\n", cfg.Report)
	}
	return nil
}
