package parsing

import (
	"regexp"
	"strings"
)

var (
	nonAlnumRun   = regexp.MustCompile(`[^a-z0-9]+`)
	nonTextChars  = regexp.MustCompile(`[^a-z0-9+\s/.\-]+`)
	numberedStart = regexp.MustCompile(`^\s*\d+\)\s*`)
)

// multiValuedKeys are comment keys whose values are comma-separated lists.
var multiValuedKeys = map[string]bool{
	"keywords": true,
	"job_area": true,
	"comment":  true,
}

// NormalizeKey converts a structural key (meta key, section name, comment key)
// to snake_case: "Job Levels" -> "job_levels", "R&D" -> "r_and_d".
func NormalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "&", " and ")
	s = nonAlnumRun.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// NormalizeText prepares free text for token comparison. Characters outside
// [a-z0-9+/.-] and whitespace become spaces; whitespace runs collapse to one space.
func NormalizeText(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "&", " and ")
	s = nonTextChars.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// Tokenize splits normalized text into tokens.
func Tokenize(s string) []string {
	t := NormalizeText(s)
	if t == "" {
		return nil
	}
	parts := strings.Split(t, " ")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// SplitCSVLike splits on commas, trims every piece and drops empties.
func SplitCSVLike(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsMultiValuedKey reports whether values under a normalized key are split as lists.
func IsMultiValuedKey(key string) bool {
	return multiValuedKeys[key] || strings.Contains(key, "industr")
}

// FoldSpace lowercases s and collapses every whitespace run to a single space.
func FoldSpace(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// StripNumberedPrefix removes a leading list marker such as "1) ".
func StripNumberedPrefix(s string) string {
	if !numberedStart.MatchString(s) {
		return s
	}
	return strings.TrimSpace(numberedStart.ReplaceAllString(s, ""))
}

// Uniq removes duplicates, keeping the first occurrence of each value.
func Uniq(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
