package pipeline

import (
	"sort"

	"go-insights-dashboard/internal/model"
	"go-insights-dashboard/pkg/utils"
)

// ------------------- Filtering -------------------

// ApplyFilters returns the subset of rows where, for every column with a
// non-empty allowed-value set, the row's value is a member of that set.
// The input table is never mutated; row order is preserved (stable filter).
// Columns the table does not carry are silently ignored, and an empty spec
// returns every row.
func ApplyFilters(t *model.Table, spec model.FilterSpec) *model.Table {
	type constraint struct {
		colIdx  int
		allowed map[string]struct{}
	}

	var constraints []constraint
	for col, values := range spec {
		if len(values) == 0 {
			continue
		}
		idx := t.ColumnIndex(col)
		if idx == -1 {
			continue
		}
		allowed := make(map[string]struct{}, len(values))
		for _, v := range values {
			allowed[v] = struct{}{}
		}
		constraints = append(constraints, constraint{colIdx: idx, allowed: allowed})
	}

	out := model.NewTable(t.Columns)
	for _, row := range t.Rows {
		match := true
		for _, c := range constraints {
			if _, ok := c.allowed[utils.CellText(row[c.colIdx])]; !ok {
				match = false
				break
			}
		}
		if match {
			out.AppendRow(row)
		}
	}
	return out
}

// FilterOptions returns, for each requested column present in the table, the
// sorted distinct non-empty values. These feed the multiselect widgets.
func FilterOptions(t *model.Table, columns []string) map[string][]string {
	options := make(map[string][]string, len(columns))
	for _, col := range columns {
		idx := t.ColumnIndex(col)
		if idx == -1 {
			continue
		}
		seen := make(map[string]struct{})
		for _, row := range t.Rows {
			v := utils.CellText(row[idx])
			if v == "" {
				continue
			}
			seen[v] = struct{}{}
		}
		values := make([]string, 0, len(seen))
		for v := range seen {
			values = append(values, v)
		}
		sort.Strings(values)
		options[col] = values
	}
	return options
}
