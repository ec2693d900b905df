package validation

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/lead-validator/internal/parsing"
	"github.com/jonathan/lead-validator/internal/types"
)

// Requisition comment keys that carry title requirements.
const (
	keyJobLevels = "job_levels"
	keyKeywords  = "keywords"
)

var validate = validator.New()

// TitleThresholds configures how closely a lead title must match the requisition.
type TitleThresholds struct {
	MinTotalCoverage   float64 `json:"min_total_coverage" yaml:"min_total_coverage" validate:"gte=0,lte=1"`
	MinLevelCoverage   float64 `json:"min_level_coverage" yaml:"min_level_coverage" validate:"gte=0,lte=1"`
	MinKeywordCoverage float64 `json:"min_keyword_coverage" yaml:"min_keyword_coverage" validate:"gte=0,lte=1"`
	RequireTitle       bool    `json:"require_title" yaml:"require_title"`
	MaxMissingListed   int     `json:"max_missing_listed" yaml:"max_missing_listed" validate:"gte=1"`
}

// DefaultTitleThresholds returns the thresholds used when nothing is configured.
//
//   - MinTotalCoverage: share of all required tokens that must appear in the title
//   - MinLevelCoverage: share of job level tokens that must appear
//   - MinKeywordCoverage: share of keyword tokens that must appear
//   - RequireTitle: an empty title is INVALID
func DefaultTitleThresholds() TitleThresholds {
	return TitleThresholds{
		MinTotalCoverage:   0.75,
		MinLevelCoverage:   1.0,
		MinKeywordCoverage: 0.3,
		RequireTitle:       true,
		MaxMissingListed:   6,
	}
}

// Validate checks that every ratio lies in [0, 1].
func (t TitleThresholds) Validate() error {
	if err := validate.Struct(t); err != nil {
		return &ThresholdError{Message: "out of range", Cause: err}
	}
	return nil
}

// TitleCoverage checks lead titles against the job levels and keywords listed
// in the requisition's titles section.
// Thresholds are validated once, when the rule is built.
type TitleCoverage struct {
	thresholds TitleThresholds
	err        error
}

// NewTitleCoverage returns a title rule with the given thresholds.
func NewTitleCoverage(th TitleThresholds) *TitleCoverage {
	return &TitleCoverage{thresholds: th, err: th.Validate()}
}

// Err returns the threshold validation error, if any.
func (r *TitleCoverage) Err() error {
	return r.err
}

// Check validates a single lead. It fails only when the thresholds are invalid.
func (r *TitleCoverage) Check(lead types.Lead) (types.Verdict, error) {
	if r.err != nil {
		return types.Verdict{}, r.err
	}
	cfg := r.thresholds

	title := parsing.NormalizeText(lead.Title)
	if cfg.RequireTitle && title == "" {
		return types.Invalid("Missing title"), nil
	}

	parsed := parsing.ParseRequisition(lead.Req)
	levelTokens := tokensFromList(parsed.Values(types.SectionTitles, keyJobLevels))
	keywordTokens := tokensFromList(parsed.Values(types.SectionTitles, keyKeywords))

	allTokens := make([]string, 0, len(levelTokens)+len(keywordTokens))
	allTokens = append(allTokens, levelTokens...)
	allTokens = parsing.Uniq(append(allTokens, keywordTokens...))

	if len(allTokens) == 0 {
		return types.Valid(), nil
	}

	present := tokenSet(parsing.Tokenize(title))
	level := coverage(levelTokens, present)
	keywords := coverage(keywordTokens, present)
	total := coverage(allTokens, present)

	if len(levelTokens) > 0 && level.Ratio < cfg.MinLevelCoverage {
		return types.Invalid(fmt.Sprintf("Title missing level terms: %s",
			topMissing(level.Missing, cfg.MaxMissingListed))), nil
	}

	if len(keywordTokens) > 0 && keywords.Ratio < cfg.MinKeywordCoverage {
		return types.Invalid(fmt.Sprintf("Title missing keyword terms: %s",
			topMissing(keywords.Missing, cfg.MaxMissingListed))), nil
	}

	if total.Ratio < cfg.MinTotalCoverage {
		return types.Invalid(fmt.Sprintf("Title similarity too low (%d%%). Missing: %s",
			int(math.Round(total.Ratio*100)), topMissing(total.Missing, cfg.MaxMissingListed))), nil
	}

	return types.Valid(), nil
}

// ValidateTitlePLSummary applies the title rule with default thresholds.
func ValidateTitlePLSummary(lead types.Lead) (types.Verdict, error) {
	return NewTitleCoverage(DefaultTitleThresholds()).Check(lead)
}
