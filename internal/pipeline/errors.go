package pipeline

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for uploads whose extension is not one of
// csv, xlsx or xls.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ParseError reports malformed file content. For CSV input it is only raised
// after both the UTF-8 and the Latin-1 parse attempts have failed.
type ParseError struct {
	FileName string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %q: %v", e.FileName, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports a cell that does not match the declared column type.
type SchemaError struct {
	Column string
	Row    int
	Value  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("column %q row %d: value %q is not numeric", e.Column, e.Row, e.Value)
}

// MissingColumnError reports an aggregate requested on a column the table
// does not carry.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found in data", e.Column)
}
