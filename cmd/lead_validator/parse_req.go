package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/lead-validator/internal/observability"
	"github.com/jonathan/lead-validator/internal/parsing"
	"github.com/jonathan/lead-validator/internal/schemas"
)

var parseReqCmd = &cobra.Command{
	Use:   "parse-req",
	Short: "Parse a requisition string into structured JSON",
	Long: `Parses a requisition string ("key: value | ... | comments: <html>") into its meta
fields and sectioned comments, printed as JSON that validates against the
parsed_requisition schema.`,
	RunE: runParseReq,
}

var (
	parseReqText   string
	parseReqInput  string
	parseReqOutput string
)

func init() {
	parseReqCmd.Flags().StringVar(&parseReqText, "req", "", "Requisition text (mutually exclusive with --in)")
	parseReqCmd.Flags().StringVarP(&parseReqInput, "in", "i", "", "Path to a file holding the requisition text (mutually exclusive with --req)")
	parseReqCmd.Flags().StringVarP(&parseReqOutput, "out", "o", "", "Path to output JSON file (default stdout)")

	parseReqCmd.MarkFlagsMutuallyExclusive("req", "in")
	parseReqCmd.MarkFlagsOneRequired("req", "in")

	rootCmd.AddCommand(parseReqCmd)
}

func runParseReq(cmd *cobra.Command, _ []string) error {
	req := parseReqText
	if parseReqInput != "" {
		content, err := os.ReadFile(parseReqInput)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		req = string(content)
	}

	parsed := parsing.ParseRequisition(req)

	jsonBytes, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := checkSchema(schemas.ParsedRequisitionSchema, jsonBytes); err != nil {
		return err
	}

	if appConfig.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintParsedRequisition(parsed)
	}

	if parseReqOutput == "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(parseReqOutput, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully parsed requisition\n")
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", parseReqOutput)
	return nil
}
