package pipeline

import (
	"go-insights-dashboard/internal/model"
)

// Project restricts a table to the columns the schema allows, ordered per the
// schema rather than the source file. Columns the source lacks are skipped; a
// source sharing no columns with the schema projects to a valid zero-column
// table rather than an error.
func Project(t *model.Table, schema model.Schema) *model.Table {
	var keep []int
	var columns []string
	for _, def := range schema {
		if idx := t.ColumnIndex(def.Name); idx != -1 {
			keep = append(keep, idx)
			columns = append(columns, def.Name)
		}
	}

	out := model.NewTable(columns)
	for _, row := range t.Rows {
		projected := make([]any, len(keep))
		for i, idx := range keep {
			projected[i] = row[idx]
		}
		out.AppendRow(projected)
	}
	return out
}
