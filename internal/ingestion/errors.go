// Package ingestion reads lead rows from tabular files and writes verdict rows back out.
package ingestion

import "fmt"

// UnsupportedFormatError represents a file extension with no reader or writer
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file extension %q: %s", e.Ext, e.Path)
}

// ReadError represents an error reading input rows
type ReadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("read error in %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("read error in %s: %s", e.Path, e.Message)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

// WriteError represents an error writing output rows
type WriteError struct {
	Path    string
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("write error in %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("write error in %s: %s", e.Path, e.Message)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
