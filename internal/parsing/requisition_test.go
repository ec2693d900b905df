package parsing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/lead-validator/internal/types"
)

func TestParseRequisition_MetaOnly(t *testing.T) {
	parsed := ParseRequisition("Level: Director | Company Size: 500+ | Geo: US & Canada only")

	want := map[string]string{
		"level":        "Director",
		"company_size": "500+",
		"geo":          "US & Canada only",
	}
	if diff := cmp.Diff(want, parsed.Meta); diff != "" {
		t.Errorf("meta mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, parsed.Comments)
}

func TestParseRequisition_MetaSkipsSegmentsWithoutColon(t *testing.T) {
	parsed := ParseRequisition("junk | Industry: Software | | : orphan")

	assert.Equal(t, map[string]string{"industry": "Software"}, parsed.Meta)
}

func TestParseRequisition_MetaLastKeyWins(t *testing.T) {
	parsed := ParseRequisition("Geo: US | geo: EMEA")

	assert.Equal(t, "EMEA", parsed.Meta["geo"])
}

func TestParseRequisition_MetaValueKeepsLaterColons(t *testing.T) {
	parsed := ParseRequisition("Geo: Region: North America")

	assert.Equal(t, "Region: North America", parsed.Meta["geo"])
}

func TestParseRequisition_PlainTextComments(t *testing.T) {
	parsed := ParseRequisition("level: X| comments: Keywords: a, b, c, a")

	assert.Equal(t, "X", parsed.Meta["level"])
	assert.Equal(t, []string{"a", "b", "c"}, parsed.Values(types.SectionRoot, "keywords"))
}

func TestParseRequisition_MarkerIsCaseInsensitive(t *testing.T) {
	parsed := ParseRequisition("level: X |  COMMENTS  : <p>Note: hello</p>")

	assert.Equal(t, "X", parsed.Meta["level"])
	assert.Equal(t, []string{"hello"}, parsed.Values(types.SectionRoot, "note"))
}

func TestParseRequisition_EmptyComments(t *testing.T) {
	parsed := ParseRequisition("level: X | comments:   ")

	assert.Equal(t, "X", parsed.Meta["level"])
	assert.Empty(t, parsed.Comments)
}

func TestParseRequisition_Sections(t *testing.T) {
	req := "Level: Manager | Geo: US | comments: " +
		"<p>Campaign notes go here</p>" +
		"<p>1) Titles:</p>" +
		"<p>Job Levels: Senior Manager</p>" +
		"<p>Keywords: product, growth, product</p>" +
		"<p>&nbsp;</p>" +
		"<p>2) Industry:</p>" +
		"<p>Industry: Software, Fintech</p>" +
		"<p>Excluded: agencies</p>" +
		"<p>Custom Industries: Biotech, Medtech</p>" +
		"<p>Pharma only</p>"

	parsed := ParseRequisition(req)

	want := map[string]types.SectionDict{
		types.SectionRoot: {
			types.LinesKey: {"Campaign notes go here"},
		},
		types.SectionTitles: {
			"job_levels": {"Senior Manager"},
			"keywords":   {"product", "growth"},
		},
		types.SectionIndustry: {
			"industry": {"Software", "Fintech"},
			"excluded": {"agencies"},
		},
		types.SectionCustomIndustries: {
			"custom_industries": {"Biotech", "Medtech"},
			types.LinesKey:      {"Pharma only"},
		},
	}
	if diff := cmp.Diff(want, parsed.Comments); diff != "" {
		t.Errorf("comments mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyComments_PendingKeyTakesNextLine(t *testing.T) {
	comments := ClassifyComments([]string{
		"Titles:",
		"Job Levels:",
		"Director, VP",
		"Keywords:",
		"sales, revenue",
	})

	assert.Equal(t, []string{"Director, VP"}, comments[types.SectionTitles]["job_levels"])
	assert.Equal(t, []string{"sales", "revenue"}, comments[types.SectionTitles]["keywords"])
}

func TestClassifyComments_BlankLineDropsPendingKey(t *testing.T) {
	comments := ClassifyComments([]string{
		"Job Levels:",
		"",
		"Director",
	})

	root := comments[types.SectionRoot]
	require.NotNil(t, root)
	_, hasLevels := root["job_levels"]
	assert.False(t, hasLevels)
	assert.Equal(t, []string{"Director"}, root[types.LinesKey])
}

func TestClassifyComments_PendingKeyAtEndIsDiscarded(t *testing.T) {
	comments := ClassifyComments([]string{"Keywords:"})

	assert.Empty(t, comments[types.SectionRoot])
}

func TestClassifyComments_PendingValueIsTakenVerbatim(t *testing.T) {
	comments := ClassifyComments([]string{
		"Note:",
		"Titles:",
	})

	assert.Equal(t, []string{"Titles:"}, comments[types.SectionRoot]["note"])
	_, switched := comments[types.SectionTitles]
	assert.False(t, switched)
}

func TestClassifyComments_SectionIsSticky(t *testing.T) {
	comments := ClassifyComments([]string{
		"Titles:",
		"",
		"Keywords: ops",
		"free text",
	})

	assert.Equal(t, []string{"ops"}, comments[types.SectionTitles]["keywords"])
	assert.Equal(t, []string{"free text"}, comments[types.SectionTitles][types.LinesKey])
	_, hasRoot := comments[types.SectionRoot]
	assert.False(t, hasRoot)
}

func TestClassifyComments_IndustryWithValueIsNotAHeader(t *testing.T) {
	comments := ClassifyComments([]string{"Industry: Retail, Retail, Logistics"})

	assert.Equal(t, []string{"Retail", "Logistics"}, comments[types.SectionRoot]["industry"])
	_, switched := comments[types.SectionIndustry]
	assert.False(t, switched)
}

func TestClassifyComments_EmptyCustomIndustriesSwitchesWithoutPending(t *testing.T) {
	comments := ClassifyComments([]string{
		"Custom Industries:",
		"Robotics",
	})

	assert.Equal(t, []string{"Robotics"}, comments[types.SectionCustomIndustries][types.LinesKey])
}

func TestClassifyComments_EmptyKeyBecomesLine(t *testing.T) {
	comments := ClassifyComments([]string{": stray value"})

	assert.Equal(t, []string{": stray value"}, comments[types.SectionRoot][types.LinesKey])
}

func TestClassifyComments_EveryLineAccountedFor(t *testing.T) {
	nodes := []string{
		"Intro line",
		"Titles:",
		"Job Levels: Senior",
		"Keywords:",
		"data",
		"Some narrative",
	}
	comments := ClassifyComments(nodes)

	total := 0
	for _, dict := range comments {
		for _, values := range dict {
			total += len(values)
		}
	}
	// "Titles:" and "Keywords:" are structural; the rest each land once.
	assert.Equal(t, 4, total)
}

func TestCommentNodes_FoldsNonBreakingSpaces(t *testing.T) {
	nodes := CommentNodes("<div>Job&nbsp;Levels: Senior&nbsp;</div><p>&nbsp;</p>")

	assert.Equal(t, []string{"Job Levels: Senior", ""}, nodes)
}

func TestCommentNodes_PlainTextFallsBackToLines(t *testing.T) {
	nodes := CommentNodes("Keywords: a\n\nGeo: US")

	assert.Equal(t, []string{"Keywords: a", "", "Geo: US"}, nodes)
}
