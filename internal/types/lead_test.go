package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadFromRecord_MissingColumns(t *testing.T) {
	lead := LeadFromRecord(map[string]string{
		ColumnFirstName: "Ann",
		ColumnSubStatus: "N1: NWC",
		"unrelated":     "ignored",
	})

	assert.Equal(t, Lead{FirstName: "Ann", SubStatus: "N1: NWC"}, lead)
}

func TestLead_ValuesFollowColumnOrder(t *testing.T) {
	rec := make(map[string]string, len(LeadColumns))
	for _, c := range LeadColumns {
		rec[c] = "v:" + c
	}

	values := LeadFromRecord(rec).Values()
	require.Len(t, values, len(LeadColumns))
	for i, c := range LeadColumns {
		assert.Equal(t, "v:"+c, values[i])
	}
}

func TestOutputColumns(t *testing.T) {
	cols := OutputColumns()
	require.Len(t, cols, len(LeadColumns)+2)
	assert.Equal(t, ColumnResult, cols[len(cols)-2])
	assert.Equal(t, ColumnComment, cols[len(cols)-1])

	// The returned slice must not alias LeadColumns.
	cols[0] = "changed"
	assert.Equal(t, ColumnFirstName, LeadColumns[0])
}
