package types

// Result is the outcome of validating a single lead.
type Result string

const (
	ResultValid   Result = "VALID"
	ResultInvalid Result = "INVALID"
	ResultRecheck Result = "RECHECK"
)

// Known reports whether r is one of the three defined results.
func (r Result) Known() bool {
	switch r {
	case ResultValid, ResultInvalid, ResultRecheck:
		return true
	}
	return false
}

// Verdict is the outcome of a rule handler, with an explanatory comment
// whenever the result is not VALID.
type Verdict struct {
	Result  Result `json:"result"`
	Comment string `json:"comment,omitempty"`
}

// Valid returns a VALID verdict.
func Valid() Verdict {
	return Verdict{Result: ResultValid}
}

// Invalid returns an INVALID verdict with the given comment.
func Invalid(comment string) Verdict {
	return Verdict{Result: ResultInvalid, Comment: comment}
}

// Recheck returns a RECHECK verdict with the given comment.
func Recheck(comment string) Verdict {
	return Verdict{Result: ResultRecheck, Comment: comment}
}

// IsZero reports whether the verdict carries no result at all.
func (v Verdict) IsZero() bool {
	return v.Result == ""
}
