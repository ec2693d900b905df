package ingestion

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/jonathan/lead-validator/internal/types"
)

// CSVReader streams leads from a CSV file whose first record is the header.
type CSVReader struct {
	path    string
	file    *os.File
	reader  *csv.Reader
	headers []string
}

// OpenCSV opens a CSV file and reads its header row.
func OpenCSV(path string) (*CSVReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Message: "failed to open file", Cause: err}
	}

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	cr := &CSVReader{path: path, file: f, reader: r}

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return cr, nil
	}
	if err != nil {
		_ = f.Close()
		return nil, &ReadError{Path: path, Message: "failed to read header", Cause: err}
	}
	cr.headers = NormalizeHeaders(header)
	return cr, nil
}

// Headers returns the normalized header row.
func (c *CSVReader) Headers() []string {
	return c.headers
}

// Next returns the next lead, or io.EOF.
func (c *CSVReader) Next() (types.Lead, error) {
	if c.headers == nil {
		return types.Lead{}, io.EOF
	}
	record, err := c.reader.Read()
	if errors.Is(err, io.EOF) {
		return types.Lead{}, io.EOF
	}
	if err != nil {
		return types.Lead{}, &ReadError{Path: c.path, Message: "failed to read record", Cause: err}
	}

	cells := make([]string, len(record))
	for i, v := range record {
		cells[i] = strings.TrimSpace(v)
	}
	return leadFromCells(c.headers, cells), nil
}

// Close closes the underlying file.
func (c *CSVReader) Close() error {
	return c.file.Close()
}
