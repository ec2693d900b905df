package ingestion

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/lead-validator/internal/types"
)

// resultSheet is the worksheet name used for verdict output.
const resultSheet = "Result"

// XLSXReader streams leads from the first worksheet of a workbook.
type XLSXReader struct {
	path    string
	file    *excelize.File
	rows    *excelize.Rows
	headers []string
}

// OpenXLSX opens a workbook and reads the header row of its first worksheet.
func OpenXLSX(path string) (*XLSXReader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Message: "failed to open workbook", Cause: err}
	}

	xr := &XLSXReader{path: path, file: f}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return xr, nil
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		_ = f.Close()
		return nil, &ReadError{Path: path, Message: "failed to read worksheet " + sheets[0], Cause: err}
	}
	xr.rows = rows

	for rows.Next() {
		cells, err := rows.Columns()
		if err != nil {
			_ = xr.Close()
			return nil, &ReadError{Path: path, Message: "failed to read header", Cause: err}
		}
		if isBlankRow(cells) {
			continue
		}
		xr.headers = NormalizeHeaders(cells)
		break
	}
	return xr, nil
}

// Headers returns the normalized header row.
func (x *XLSXReader) Headers() []string {
	return x.headers
}

// Next returns the next non-blank row as a lead, or io.EOF.
func (x *XLSXReader) Next() (types.Lead, error) {
	if x.rows == nil || x.headers == nil {
		return types.Lead{}, io.EOF
	}
	for x.rows.Next() {
		cells, err := x.rows.Columns()
		if err != nil {
			return types.Lead{}, &ReadError{Path: x.path, Message: "failed to read row", Cause: err}
		}
		if isBlankRow(cells) {
			continue
		}
		return leadFromCells(x.headers, cells), nil
	}
	if err := x.rows.Error(); err != nil {
		return types.Lead{}, &ReadError{Path: x.path, Message: "failed to iterate rows", Cause: err}
	}
	return types.Lead{}, io.EOF
}

// Close releases the row iterator and the workbook.
func (x *XLSXReader) Close() error {
	if x.rows != nil {
		if err := x.rows.Close(); err != nil {
			_ = x.file.Close()
			return err
		}
	}
	return x.file.Close()
}

// XLSXWriter streams verdict rows into a new workbook.
type XLSXWriter struct {
	path   string
	file   *excelize.File
	stream *excelize.StreamWriter
	row    int
}

// CreateXLSX starts a workbook with a single "Result" sheet and writes the header row.
func CreateXLSX(path string) (*XLSXWriter, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), resultSheet); err != nil {
		_ = f.Close()
		return nil, &WriteError{Path: path, Message: "failed to name result sheet", Cause: err}
	}
	sw, err := f.NewStreamWriter(resultSheet)
	if err != nil {
		_ = f.Close()
		return nil, &WriteError{Path: path, Message: "failed to create stream writer", Cause: err}
	}

	w := &XLSXWriter{path: path, file: f, stream: sw}
	if err := w.writeCells(types.OutputColumns()); err != nil {
		_ = f.Close()
		return nil, err
	}
	return w, nil
}

// Write appends one lead with its verdict.
func (w *XLSXWriter) Write(lead types.Lead, v types.Verdict) error {
	return w.writeCells(outputRow(lead, v))
}

func (w *XLSXWriter) writeCells(cells []string) error {
	w.row++
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return &WriteError{Path: w.path, Message: "invalid cell coordinates", Cause: err}
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := w.stream.SetRow(cell, values); err != nil {
		return &WriteError{Path: w.path, Message: "failed to write row", Cause: err}
	}
	return nil
}

// Close flushes the stream and saves the workbook.
func (w *XLSXWriter) Close() error {
	defer func() { _ = w.file.Close() }()
	if err := w.stream.Flush(); err != nil {
		return &WriteError{Path: w.path, Message: "failed to flush rows", Cause: err}
	}
	if err := w.file.SaveAs(w.path); err != nil {
		return &WriteError{Path: w.path, Message: "failed to save workbook", Cause: err}
	}
	return nil
}
