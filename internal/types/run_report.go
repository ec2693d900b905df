package types

import (
	"time"

	"github.com/google/uuid"
)

// RunReport summarizes a single validation pass over an input file.
type RunReport struct {
	RunID       uuid.UUID                 `json:"run_id"`
	Input       string                    `json:"input"`
	Output      string                    `json:"output"`
	Rows        int                       `json:"rows"`
	Results     map[Result]int            `json:"results"`
	BySubStatus map[string]map[Result]int `json:"by_sub_status"`
	StartedAt   time.Time                 `json:"started_at"`
	FinishedAt  time.Time                 `json:"finished_at"`
}

// NewRunReport returns an empty report for the given run.
func NewRunReport(runID uuid.UUID, input, output string) *RunReport {
	return &RunReport{
		RunID:  runID,
		Input:  input,
		Output: output,
		Results: map[Result]int{
			ResultValid:   0,
			ResultInvalid: 0,
			ResultRecheck: 0,
		},
		BySubStatus: map[string]map[Result]int{},
	}
}

// Record tallies one verdict. Unknown sub-statuses are grouped under their raw value.
func (r *RunReport) Record(subStatus string, v Verdict) {
	r.Rows++
	r.Results[v.Result]++
	group, ok := r.BySubStatus[subStatus]
	if !ok {
		group = map[Result]int{}
		r.BySubStatus[subStatus] = group
	}
	group[v.Result]++
}
