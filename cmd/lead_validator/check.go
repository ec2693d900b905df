package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/lead-validator/internal/ingestion"
	"github.com/jonathan/lead-validator/internal/observability"
	"github.com/jonathan/lead-validator/internal/schemas"
	"github.com/jonathan/lead-validator/internal/types"
	"github.com/jonathan/lead-validator/internal/validation"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a single lead given as JSON",
	Long: `Validates one lead read from a JSON object keyed by column names (for example
"first_name", "Sub Status", "req") and prints the verdict as JSON. Use --lead - to read stdin.`,
	RunE: runCheck,
}

var checkLeadPath string

func init() {
	checkCmd.Flags().StringVarP(&checkLeadPath, "lead", "l", "", "Path to lead JSON file, or - for stdin (required)")

	if err := checkCmd.MarkFlagRequired("lead"); err != nil {
		panic(fmt.Sprintf("failed to mark lead flag as required: %v", err))
	}

	rootCmd.AddCommand(checkCmd)
}

// decodeLead reads a JSON object and maps its keys through header
// normalization. Numbers keep their JSON text; other values are formatted with fmt.
func decodeLead(r io.Reader) (types.Lead, error) {
	var raw map[string]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return types.Lead{}, fmt.Errorf("failed to decode lead JSON: %w", err)
	}

	record := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			record[ingestion.NormalizeHeader(k)] = ""
		case string:
			record[ingestion.NormalizeHeader(k)] = val
		default:
			record[ingestion.NormalizeHeader(k)] = fmt.Sprint(val)
		}
	}
	return types.LeadFromRecord(record), nil
}

func runCheck(cmd *cobra.Command, _ []string) error {
	var in io.Reader = cmd.InOrStdin()
	if checkLeadPath != "-" {
		f, err := os.Open(checkLeadPath)
		if err != nil {
			return fmt.Errorf("failed to open lead file: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	lead, err := decodeLead(in)
	if err != nil {
		return err
	}

	opts := validation.DefaultOptions()
	opts.Logger = logger
	if appConfig.Title != nil {
		opts.Title = *appConfig.Title
	}
	verdict := validation.NewDispatcher(opts).Validate(lead)

	jsonBytes, err := json.MarshalIndent(verdict, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := checkSchema(schemas.VerdictSchema, jsonBytes); err != nil {
		return err
	}

	if appConfig.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintVerdict(lead, verdict)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
	return nil
}
