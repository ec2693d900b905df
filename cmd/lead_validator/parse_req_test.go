package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/lead-validator/internal/types"
)

func TestParseReqCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing --req and --in",
			args:        []string{"parse-req"},
			errorString: "at least one of the flags",
		},
		{
			name:        "Both --req and --in",
			args:        []string{"parse-req", "--req", "geo: US", "--in", "req.txt"},
			errorString: "if any flags in the group",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := exec.Command(binaryPath, tt.args...).CombinedOutput()
			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestParseReqCommand_Stdout(t *testing.T) {
	binaryPath := getBinaryPath(t)

	req := "Geo: USA | Employees: 500+ | comments: <p>Titles:</p><p>CTO, VP IT</p>"
	output, err := exec.Command(binaryPath, "parse-req", "--req", req).Output()
	require.NoError(t, err)

	var parsed types.ParsedRequisition
	require.NoError(t, json.Unmarshal(output, &parsed))
	assert.Equal(t, "USA", parsed.Meta["geo"])
	assert.Equal(t, "500+", parsed.Meta["employees"])
	assert.Equal(t, []string{"CTO, VP IT"}, parsed.Values(types.SectionTitles, types.LinesKey))
}

func TestParseReqCommand_File(t *testing.T) {
	binaryPath := getBinaryPath(t)

	in := writeTestFile(t, "req.txt", "Industry: Software | comments: <p>Keywords: cloud, saas</p>")
	out := filepath.Join(t.TempDir(), "parsed.json")

	output, err := exec.Command(binaryPath, "parse-req", "--in", in, "--out", out).CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Successfully parsed requisition")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var parsed types.ParsedRequisition
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, []string{"cloud", "saas"}, parsed.Values(types.SectionRoot, "keywords"))
}
