package validation

import (
	"strings"

	"github.com/jonathan/lead-validator/internal/parsing"
)

// coverageResult describes how much of a required token set a title contains.
type coverageResult struct {
	Ratio   float64
	Matched []string
	Missing []string
}

// coverage computes |required ∩ present| / |required|. An empty requirement is fully covered.
func coverage(required []string, present map[string]bool) coverageResult {
	if len(required) == 0 {
		return coverageResult{Ratio: 1}
	}

	var res coverageResult
	for _, tok := range required {
		if present[tok] {
			res.Matched = append(res.Matched, tok)
		} else {
			res.Missing = append(res.Missing, tok)
		}
	}
	res.Ratio = float64(len(res.Matched)) / float64(len(required))
	return res
}

// tokensFromList tokenizes every value and returns the unique tokens in order.
func tokensFromList(values []string) []string {
	var tokens []string
	for _, v := range values {
		tokens = append(tokens, parsing.Tokenize(v)...)
	}
	return parsing.Uniq(tokens)
}

func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

// topMissing joins at most limit missing tokens for a verdict comment.
func topMissing(missing []string, limit int) string {
	if limit > 0 && len(missing) > limit {
		missing = missing[:limit]
	}
	return strings.Join(missing, ", ")
}
