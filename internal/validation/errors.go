// Package validation applies lead validation rules and selects them by sub-status.
package validation

import "fmt"

// PanicError reports a rule handler that panicked instead of returning.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("handler panicked: %v", e.Value)
}

// ThresholdError represents an invalid title coverage configuration
type ThresholdError struct {
	Message string
	Cause   error
}

func (e *ThresholdError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid title thresholds: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid title thresholds: %s", e.Message)
}

func (e *ThresholdError) Unwrap() error {
	return e.Cause
}
