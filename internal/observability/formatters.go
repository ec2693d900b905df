// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/lead-validator/internal/types"
)

const (
	boxWidth       = 60
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	return &Printer{out: out}
}

// printBox prints content inside a box with a title
func (p *Printer) printBox(title string, content []string) {
	border := strings.Repeat("─", boxWidth-2)
	_, _ = fmt.Fprintf(p.out, "┌%s┐\n", border)
	_, _ = fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	_, _ = fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range content {
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		_, _ = fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}
	_, _ = fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRunReport prints totals and the per sub-status breakdown of a run.
func (p *Printer) PrintRunReport(report *types.RunReport) {
	if report == nil {
		return
	}

	content := []string{
		fmt.Sprintf("Run:    %s", report.RunID),
		fmt.Sprintf("Input:  %s", report.Input),
		fmt.Sprintf("Output: %s", report.Output),
		fmt.Sprintf("Rows:   %d", report.Rows),
		"",
		formatCounts(report.Results),
	}
	if !report.FinishedAt.IsZero() && !report.StartedAt.IsZero() {
		content = append(content, fmt.Sprintf("Elapsed: %s", report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond)))
	}

	if len(report.BySubStatus) > 0 {
		content = append(content, "", "By sub_status:")
		keys := make([]string, 0, len(report.BySubStatus))
		for k := range report.BySubStatus {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			label := k
			if label == "" {
				label = "(blank)"
			}
			content = append(content, fmt.Sprintf("  %s", label))
			content = append(content, fmt.Sprintf("    %s", formatCounts(report.BySubStatus[k])))
		}
	}

	p.printBox("VALIDATION RUN", content)
}

// PrintParsedRequisition prints meta fields and a preview of each comment section.
func (p *Printer) PrintParsedRequisition(req *types.ParsedRequisition) {
	if req == nil {
		return
	}

	var content []string
	content = append(content, fmt.Sprintf("Meta fields: %d", len(req.Meta)))
	for _, k := range sortedKeys(req.Meta) {
		content = append(content, fmt.Sprintf("  %s: %s", k, req.Meta[k]))
	}

	sections := make([]string, 0, len(req.Comments))
	for s := range req.Comments {
		sections = append(sections, s)
	}
	sort.Strings(sections)
	for _, section := range sections {
		dict := req.Comments[section]
		content = append(content, "", fmt.Sprintf("[%s]", section))
		for _, key := range sortedKeys(dict) {
			values := dict[key]
			shown := values
			if len(shown) > maxItemsToShow {
				shown = shown[:maxItemsToShow]
			}
			line := fmt.Sprintf("  %s: %s", key, strings.Join(shown, ", "))
			if len(values) > maxItemsToShow {
				line += fmt.Sprintf(" (+%d more)", len(values)-maxItemsToShow)
			}
			content = append(content, line)
		}
	}

	p.printBox("PARSED REQUISITION", content)
}

// PrintVerdict prints the verdict for a single lead.
func (p *Printer) PrintVerdict(lead types.Lead, v types.Verdict) {
	content := []string{
		fmt.Sprintf("Email:      %s", lead.Email),
		fmt.Sprintf("Sub-status: %s", lead.SubStatus),
		fmt.Sprintf("Result:     %s", v.Result),
	}
	if v.Comment != "" {
		content = append(content, fmt.Sprintf("Comment:    %s", v.Comment))
	}
	p.printBox("LEAD VERDICT", content)
}

func formatCounts(counts map[types.Result]int) string {
	return fmt.Sprintf("VALID %d | INVALID %d | RECHECK %d",
		counts[types.ResultValid], counts[types.ResultInvalid], counts[types.ResultRecheck])
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
