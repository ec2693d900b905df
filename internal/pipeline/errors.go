package pipeline

import "fmt"

// LockError is returned when another run holds the output lock.
type LockError struct {
	Path  string
	Cause error
}

func (e *LockError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to lock %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("output is locked by another run: %s", e.Path)
}

func (e *LockError) Unwrap() error {
	return e.Cause
}

// ReportError represents a failure producing the run report file.
type ReportError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ReportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("report error in %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("report error in %s: %s", e.Path, e.Message)
}

func (e *ReportError) Unwrap() error {
	return e.Cause
}
