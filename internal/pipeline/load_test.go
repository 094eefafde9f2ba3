package pipeline

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"go-insights-dashboard/internal/model"
)

func TestLoadCSVUTF8(t *testing.T) {
	input := "Account,Stage\nAcme,Closed Won\nGlobex,Open\n"

	tbl, err := Load(strings.NewReader(input), "data.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"Account", "Stage"}, tbl.Columns)
	require.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, "Acme", tbl.Rows[0][0])
	assert.Equal(t, "Open", tbl.Rows[1][1])
}

func TestLoadCSVStripsBOM(t *testing.T) {
	input := "\uFEFFAccount,Stage\nAcme,Open\n"

	tbl, err := Load(strings.NewReader(input), "data.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"Account", "Stage"}, tbl.Columns)
}

func TestLoadCSVLatin1Fallback(t *testing.T) {
	// 0xE9 is é in Latin-1 and invalid as a standalone UTF-8 byte.
	input := []byte("Account,Stage\nCaf\xe9,Open\n")

	tbl, err := Load(bytes.NewReader(input), "data.csv")
	require.NoError(t, err)
	require.Equal(t, 1, tbl.RowCount())
	assert.Equal(t, "Café", tbl.Rows[0][0])
}

func TestLoadCSVStructuralErrorAfterBothAttempts(t *testing.T) {
	// A record wider than the header fails regardless of encoding.
	input := "Account,Stage\nAcme,Open,extra\n"

	_, err := Load(strings.NewReader(input), "data.csv")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "data.csv", parseErr.FileName)
}

func TestLoadCSVPadsShortRecords(t *testing.T) {
	input := "Account,Stage,Market\nAcme,Open\nGlobex,Closed Won,AMER\n"

	tbl, err := Load(strings.NewReader(input), "data.csv")
	require.NoError(t, err)
	require.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, []any{"Acme", "Open", ""}, tbl.Rows[0])
	assert.Equal(t, []any{"Globex", "Closed Won", "AMER"}, tbl.Rows[1])
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load(strings.NewReader("x"), "data.parquet")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadEmptyCSV(t *testing.T) {
	tbl, err := Load(strings.NewReader(""), "data.csv")
	require.NoError(t, err)
	assert.Empty(t, tbl.Columns)
	assert.Equal(t, 0, tbl.RowCount())
}

func TestLoadWorkbookFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Account", "Total Current Revenue (converted)"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Acme", 1000000}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"Globex", 250000}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	tbl, err := Load(bytes.NewReader(buf.Bytes()), "data.xlsx")
	require.NoError(t, err)
	assert.Equal(t, []string{"Account", "Total Current Revenue (converted)"}, tbl.Columns)
	require.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, "Acme", tbl.Rows[0][0])
}

func TestLoadWorkbookPadsShortRows(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Account", "Stage", "Market"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Acme"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	tbl, err := Load(bytes.NewReader(buf.Bytes()), "data.xlsx")
	require.NoError(t, err)
	require.Equal(t, 1, tbl.RowCount())
	assert.Len(t, tbl.Rows[0], 3)
	assert.Equal(t, "", tbl.Rows[0][2])
}

func TestLoadWorkbookGarbageBytes(t *testing.T) {
	_, err := Load(strings.NewReader("this is not a zip archive"), "data.xlsx")
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestLoadAndProjectValidatesNumericColumns(t *testing.T) {
	input := "Account,Total Current Revenue (converted)\nAcme,not-a-number\n"

	_, err := LoadAndProject([]byte(input), "data.csv")
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, model.RevenueColumn, schemaErr.Column)
	assert.Equal(t, 1, schemaErr.Row)
}

func TestLoadAndProjectKeepsSchemaOrder(t *testing.T) {
	input := "Stage,Account,Unknown Column\nOpen,Acme,x\n"

	tbl, err := LoadAndProject([]byte(input), "data.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"Account", "Stage"}, tbl.Columns)
	assert.Equal(t, "Acme", tbl.Rows[0][0])
}
