package pipeline

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"go-insights-dashboard/internal/model"
)

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\uFEFF"

// ------------------- File Loading -------------------

// Load parses an uploaded file into a Table based on its extension. CSV input
// is parsed as UTF-8 first; if that fails for any reason the bytes are
// re-parsed through a Latin-1 decoder, which accepts every byte value and can
// therefore only fail on CSV structure. Spreadsheets are read from the first
// sheet of the workbook.
func Load(r io.Reader, fileName string) (*model.Table, error) {
	ext := strings.ToLower(filepath.Ext(fileName))

	switch ext {
	case ".csv":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, &ParseError{FileName: fileName, Err: err}
		}
		return loadCSV(data, fileName)
	case ".xlsx", ".xls":
		return loadWorkbook(r, fileName)
	default:
		return nil, fmt.Errorf("%w: %q (want .csv, .xlsx or .xls)", ErrUnsupportedFormat, ext)
	}
}

// loadCSV attempts a UTF-8 parse and falls back to Latin-1 on any error.
func loadCSV(data []byte, fileName string) (*model.Table, error) {
	if utf8.Valid(data) {
		if t, err := parseCSV(bytes.NewReader(data)); err == nil {
			return t, nil
		}
	}

	// Rewind to the start of the stream and retry with Latin-1.
	dec := charmap.ISO8859_1.NewDecoder()
	t, err := parseCSV(transform.NewReader(bytes.NewReader(data), dec))
	if err != nil {
		return nil, &ParseError{FileName: fileName, Err: err}
	}
	return t, nil
}

// parseCSV reads header + rows from r. An input without a single usable line
// yields a zero-column, zero-row table, which is valid. Records shorter than
// the header are padded with empty cells; records longer than the header are
// an error.
func parseCSV(r io.Reader) (*model.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return model.NewTable(nil), nil
	}
	if err != nil {
		return nil, err
	}

	for i, h := range headers {
		h = strings.TrimPrefix(h, utf8BOM)
		headers[i] = strings.TrimSpace(h)
	}

	table := model.NewTable(headers)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) > len(headers) {
			return nil, fmt.Errorf("record %d has %d fields, header has %d",
				table.RowCount()+1, len(record), len(headers))
		}
		row := make([]any, len(headers))
		for i := range headers {
			if i < len(record) {
				row[i] = record[i]
			} else {
				row[i] = ""
			}
		}
		table.AppendRow(row)
	}
	return table, nil
}
