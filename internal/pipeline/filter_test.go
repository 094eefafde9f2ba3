package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-insights-dashboard/internal/model"
)

func sampleTable() *model.Table {
	t := model.NewTable([]string{"Account", "Market", "Stage"})
	t.AppendRow([]any{"Acme", "EMEA", "Open"})
	t.AppendRow([]any{"Globex", "AMER", "Closed Won"})
	t.AppendRow([]any{"Acme", "AMER", "Closed Won"})
	t.AppendRow([]any{"Initech", "APAC", "Open"})
	return t
}

func TestApplyFiltersEmptySpecReturnsAllRows(t *testing.T) {
	tbl := sampleTable()

	out := ApplyFilters(tbl, model.FilterSpec{})
	assert.Equal(t, tbl.Rows, out.Rows)

	// Empty value lists behave the same as absent keys.
	out = ApplyFilters(tbl, model.FilterSpec{"Account": {}})
	assert.Equal(t, tbl.Rows, out.Rows)
}

func TestApplyFiltersConjunction(t *testing.T) {
	tbl := sampleTable()

	out := ApplyFilters(tbl, model.FilterSpec{
		"Account": {"Acme", "Globex"},
		"Stage":   {"Closed Won"},
	})
	require.Equal(t, 2, out.RowCount())
	assert.Equal(t, "Globex", out.Rows[0][0])
	assert.Equal(t, "Acme", out.Rows[1][0])
}

func TestApplyFiltersPreservesRowOrder(t *testing.T) {
	tbl := sampleTable()

	out := ApplyFilters(tbl, model.FilterSpec{"Account": {"Acme", "Initech"}})
	require.Equal(t, 3, out.RowCount())
	assert.Equal(t, "EMEA", out.Rows[0][1])
	assert.Equal(t, "AMER", out.Rows[1][1])
	assert.Equal(t, "APAC", out.Rows[2][1])
}

func TestApplyFiltersIdempotent(t *testing.T) {
	tbl := sampleTable()
	spec := model.FilterSpec{"Stage": {"Open"}}

	once := ApplyFilters(tbl, spec)
	twice := ApplyFilters(once, spec)
	assert.Equal(t, once.Rows, twice.Rows)
}

func TestApplyFiltersIgnoresUnknownColumn(t *testing.T) {
	tbl := sampleTable()

	out := ApplyFilters(tbl, model.FilterSpec{"Fiscal Period": {"Q1"}})
	assert.Equal(t, tbl.RowCount(), out.RowCount())
}

func TestApplyFiltersCanEmptyTheTable(t *testing.T) {
	tbl := sampleTable()

	out := ApplyFilters(tbl, model.FilterSpec{"Account": {"Hooli"}})
	assert.Equal(t, 0, out.RowCount())
	assert.Equal(t, tbl.Columns, out.Columns)
}

func TestApplyFiltersDoesNotMutateInput(t *testing.T) {
	tbl := sampleTable()
	before := tbl.RowCount()

	ApplyFilters(tbl, model.FilterSpec{"Account": {"Acme"}})
	assert.Equal(t, before, tbl.RowCount())
}

func TestFilterOptionsSortedDistinct(t *testing.T) {
	tbl := model.NewTable([]string{"Account", "Market"})
	tbl.AppendRow([]any{"Globex", "EMEA"})
	tbl.AppendRow([]any{"Acme", ""})
	tbl.AppendRow([]any{"Globex", "AMER"})
	tbl.AppendRow([]any{"", "AMER"})

	options := FilterOptions(tbl, []string{"Account", "Market", "Stage"})
	assert.Equal(t, []string{"Acme", "Globex"}, options["Account"])
	assert.Equal(t, []string{"AMER", "EMEA"}, options["Market"])

	// Columns the table does not carry get no entry at all.
	_, ok := options["Stage"]
	assert.False(t, ok)
}
