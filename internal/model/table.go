package model

// ColumnType declares how cells under a column are interpreted.
type ColumnType string

const (
	ColumnString ColumnType = "string"
	ColumnNumber ColumnType = "number"
)

// ColumnDef is one entry of the fixed output schema.
type ColumnDef struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// Schema is an ordered allow-list of columns with declared types. Only columns
// present in both the uploaded file and the schema survive projection; order
// follows the schema, not the source.
type Schema []ColumnDef

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, def := range s {
		names[i] = def.Name
	}
	return names
}

// TypeOf returns the declared type of a column, if the schema knows it.
func (s Schema) TypeOf(name string) (ColumnType, bool) {
	for _, def := range s {
		if def.Name == name {
			return def.Type, true
		}
	}
	return "", false
}

// Table is an in-memory tabular structure: ordered named columns with a
// uniform row count. Cells are string, float64 (numeric columns after load
// validation) or nil (missing). Row order is insertion order from the source
// file and is preserved through projection and filtering.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// NewTable creates an empty table with the given column names.
func NewTable(columns []string) *Table {
	return &Table{Columns: columns, Rows: make([][]any, 0)}
}

// ColumnIndex returns the position of a column, or -1 when absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) != -1
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// AppendRow adds one row. Callers are responsible for matching column width.
func (t *Table) AppendRow(row []any) {
	t.Rows = append(t.Rows, row)
}
