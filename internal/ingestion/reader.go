package ingestion

import (
	"path/filepath"
	"strings"

	"github.com/jonathan/lead-validator/internal/types"
)

// RowReader streams leads from an input file. Next returns io.EOF after the last row.
type RowReader interface {
	Next() (types.Lead, error)
	Close() error
}

// Open returns a RowReader chosen by the file extension (.csv or .xlsx).
func Open(path string) (RowReader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return OpenCSV(path)
	case ".xlsx":
		return OpenXLSX(path)
	default:
		return nil, &UnsupportedFormatError{Path: path, Ext: ext}
	}
}
