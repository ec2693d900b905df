package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/lead-validator/internal/types"
)

const titleReq = "Level: Manager | comments: " +
	"<p>Titles:</p>" +
	"<p>Job Levels: Senior, Manager</p>" +
	"<p>Keywords: product</p>"

func TestTitleCoverage_Passes(t *testing.T) {
	got, err := ValidateTitlePLSummary(types.Lead{Title: "Senior Product Manager", Req: titleReq})
	require.NoError(t, err)
	assert.Equal(t, types.Valid(), got)
}

func TestTitleCoverage_MissingLevelToken(t *testing.T) {
	got, err := ValidateTitlePLSummary(types.Lead{Title: "Product Manager", Req: titleReq})
	require.NoError(t, err)
	assert.Equal(t, types.Invalid("Title missing level terms: senior"), got)
}

func TestTitleCoverage_MissingTitle(t *testing.T) {
	got, err := ValidateTitlePLSummary(types.Lead{Title: " ?! ", Req: titleReq})
	require.NoError(t, err)
	assert.Equal(t, types.Invalid("Missing title"), got)
}

func TestTitleCoverage_NoTitleRequirements(t *testing.T) {
	got, err := ValidateTitlePLSummary(types.Lead{Title: "Anything", Req: "Level: Manager | comments: <p>Geo: US</p>"})
	require.NoError(t, err)
	assert.Equal(t, types.Valid(), got)
}

func TestTitleCoverage_KeywordGate(t *testing.T) {
	req := "x: y | comments: <p>Titles:</p><p>Keywords: sales, revenue, growth, marketing</p>"

	got, err := ValidateTitlePLSummary(types.Lead{Title: "Account Executive", Req: req})
	require.NoError(t, err)
	assert.Equal(t, types.Invalid("Title missing keyword terms: sales, revenue, growth, marketing"), got)
}

func TestTitleCoverage_TotalGate(t *testing.T) {
	req := "x: y | comments: <p>Titles:</p><p>Keywords: sales, revenue, growth, marketing</p>"

	// 2 of 4 keywords clears the 30% keyword gate but not the 75% total gate.
	got, err := ValidateTitlePLSummary(types.Lead{Title: "Sales and Growth Lead", Req: req})
	require.NoError(t, err)
	assert.Equal(t, types.Invalid("Title similarity too low (50%). Missing: revenue, marketing"), got)
}

func TestTitleCoverage_MissingListIsCapped(t *testing.T) {
	req := "x: y | comments: <p>Titles:</p><p>Job Levels: a1 a2 a3 a4 a5 a6 a7 a8</p>"

	got, err := ValidateTitlePLSummary(types.Lead{Title: "Engineer", Req: req})
	require.NoError(t, err)
	assert.Equal(t, types.Invalid("Title missing level terms: a1, a2, a3, a4, a5, a6"), got)
}

func TestTitleCoverage_WhitespaceVariants(t *testing.T) {
	canonical, err := ValidateTitlePLSummary(types.Lead{Title: "Product Manager", Req: titleReq})
	require.NoError(t, err)

	got, err := ValidateTitlePLSummary(types.Lead{Title: "  PRODUCT    manager ", Req: titleReq})
	require.NoError(t, err)
	assert.Equal(t, canonical, got)
}

func TestTitleCoverage_TitleOptional(t *testing.T) {
	th := DefaultTitleThresholds()
	th.RequireTitle = false

	got, err := NewTitleCoverage(th).Check(types.Lead{Title: "", Req: titleReq})
	require.NoError(t, err)
	assert.Equal(t, types.Invalid("Title missing level terms: senior, manager"), got)
}

func TestTitleCoverage_InvalidThresholds(t *testing.T) {
	th := DefaultTitleThresholds()
	th.MinTotalCoverage = 1.5

	_, err := NewTitleCoverage(th).Check(types.Lead{Title: "Manager", Req: titleReq})
	require.Error(t, err)
	var thErr *ThresholdError
	assert.True(t, errors.As(err, &thErr))
}

func TestTitleCoverage_ThresholdsValidatedAtConstruction(t *testing.T) {
	assert.NoError(t, NewTitleCoverage(DefaultTitleThresholds()).Err())

	th := DefaultTitleThresholds()
	th.MaxMissingListed = 0
	rule := NewTitleCoverage(th)
	require.Error(t, rule.Err())

	for _, title := range []string{"Manager", "Director"} {
		_, err := rule.Check(types.Lead{Title: title, Req: titleReq})
		assert.Same(t, rule.Err(), err)
	}
}

func TestCoverage(t *testing.T) {
	present := tokenSet([]string{"senior", "product", "manager"})

	res := coverage([]string{"senior", "manager"}, present)
	assert.Equal(t, 1.0, res.Ratio)
	assert.Empty(t, res.Missing)

	res = coverage([]string{"senior", "director"}, present)
	assert.Equal(t, 0.5, res.Ratio)
	assert.Equal(t, []string{"director"}, res.Missing)
	assert.Equal(t, []string{"senior"}, res.Matched)

	res = coverage(nil, present)
	assert.Equal(t, 1.0, res.Ratio)
}

func TestTokensFromList(t *testing.T) {
	got := tokensFromList([]string{"Senior Manager", "Manager, Director"})
	assert.Equal(t, []string{"senior", "manager", "director"}, got)
}
