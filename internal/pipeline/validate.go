package pipeline

import (
	"go-insights-dashboard/internal/model"
	"go-insights-dashboard/pkg/utils"
)

// ValidateSchema coerces cells under declared numeric columns to float64,
// in place. Empty cells become nil (missing). A non-empty cell that does not
// parse as a number is a SchemaError naming the column and the 1-based data
// row, instead of the silent coercion a loosely-typed frame would do.
func ValidateSchema(t *model.Table, schema model.Schema) error {
	for colIdx, name := range t.Columns {
		colType, known := schema.TypeOf(name)
		if !known || colType != model.ColumnNumber {
			continue
		}
		for rowIdx, row := range t.Rows {
			cell, ok := row[colIdx].(string)
			if !ok {
				continue // already coerced or nil
			}
			if cell == "" {
				row[colIdx] = nil
				continue
			}
			num, err := utils.ParseNumber(cell)
			if err != nil {
				return &SchemaError{Column: name, Row: rowIdx + 1, Value: cell}
			}
			row[colIdx] = num
		}
	}
	return nil
}
