package pipeline

import (
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"go-insights-dashboard/internal/model"
)

// loadWorkbook reads the first sheet of an Excel workbook into a Table. Rows
// shorter than the header are padded with empty cells so downstream stages can
// rely on uniform width.
func loadWorkbook(r io.Reader, fileName string) (*model.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ParseError{FileName: fileName, Err: err}
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &ParseError{FileName: fileName, Err: err}
	}
	if len(rows) == 0 {
		return model.NewTable(nil), nil
	}

	headers := rows[0]
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	table := model.NewTable(headers)
	for _, rec := range rows[1:] {
		row := make([]any, len(headers))
		for i := range headers {
			if i < len(rec) {
				row[i] = rec[i]
			} else {
				row[i] = ""
			}
		}
		table.AppendRow(row)
	}
	return table, nil
}
