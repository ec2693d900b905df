package ingestion

import (
	"regexp"
	"strings"

	"github.com/jonathan/lead-validator/internal/types"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeHeader maps a column header to its field name: "First Name" -> "first_name".
func NormalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(h)), "_")
}

// NormalizeHeaders normalizes every header in a row.
func NormalizeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = NormalizeHeader(h)
	}
	return out
}

// leadFromCells pairs cells with headers. Extra cells are ignored and missing
// cells read as empty.
func leadFromCells(headers, cells []string) types.Lead {
	rec := make(map[string]string, len(headers))
	for i, h := range headers {
		if h == "" {
			continue
		}
		if i < len(cells) {
			rec[h] = cells[i]
		} else {
			rec[h] = ""
		}
	}
	return types.LeadFromRecord(rec)
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
