package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"go-insights-dashboard/internal/model"
	"go-insights-dashboard/pkg/utils"
)

// ------------------- Export -------------------

// WriteCSV writes the table as UTF-8 comma-separated text: one header row
// with the retained column names, then one row per record.
func WriteCSV(w io.Writer, t *model.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i := range t.Columns {
			record[i] = utils.CellText(row[i])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the table as a single-sheet workbook. Numeric cells stay
// numeric so spreadsheet tools treat them as numbers.
func WriteXLSX(w io.Writer, t *model.Table) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]any, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write sheet header: %w", err)
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		out := make([]any, len(row))
		copy(out, row)
		if err := f.SetSheetRow(sheet, cell, &out); err != nil {
			return fmt.Errorf("write sheet row %d: %w", i+1, err)
		}
	}
	return f.Write(w)
}
