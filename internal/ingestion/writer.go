package ingestion

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/lead-validator/internal/types"
)

// RowWriter streams leads with their verdicts to an output file.
type RowWriter interface {
	Write(lead types.Lead, v types.Verdict) error
	Close() error
}

// Create returns a RowWriter chosen by the file extension (.xlsx or .csv).
func Create(path string) (RowWriter, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx":
		return CreateXLSX(path)
	case ".csv":
		return CreateCSV(path)
	default:
		return nil, &UnsupportedFormatError{Path: path, Ext: ext}
	}
}

// outputRow returns the lead values followed by result and comment.
func outputRow(lead types.Lead, v types.Verdict) []string {
	return append(lead.Values(), string(v.Result), v.Comment)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &WriteError{Path: path, Message: "failed to create output directory", Cause: err}
	}
	return nil
}

// CSVWriter streams verdict rows as CSV.
type CSVWriter struct {
	path   string
	file   *os.File
	writer *csv.Writer
}

// CreateCSV creates the output file and writes the header row.
func CreateCSV(path string) (*CSVWriter, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, &WriteError{Path: path, Message: "failed to create file", Cause: err}
	}

	w := &CSVWriter{path: path, file: f, writer: csv.NewWriter(f)}
	if err := w.writer.Write(types.OutputColumns()); err != nil {
		_ = f.Close()
		return nil, &WriteError{Path: path, Message: "failed to write header", Cause: err}
	}
	return w, nil
}

// Write appends one lead with its verdict.
func (w *CSVWriter) Write(lead types.Lead, v types.Verdict) error {
	if err := w.writer.Write(outputRow(lead, v)); err != nil {
		return &WriteError{Path: w.path, Message: "failed to write row", Cause: err}
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (w *CSVWriter) Close() error {
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		_ = w.file.Close()
		return &WriteError{Path: w.path, Message: "failed to flush rows", Cause: err}
	}
	if err := w.file.Close(); err != nil {
		return &WriteError{Path: w.path, Message: "failed to close file", Cause: err}
	}
	return nil
}
