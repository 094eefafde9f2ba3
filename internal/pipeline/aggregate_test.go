package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-insights-dashboard/internal/model"
)

func revenueTable() *model.Table {
	t := model.NewTable([]string{"Account", "Total Current Revenue (converted)", "Opportunity ID"})
	t.AppendRow([]any{"A", float64(1_000_000), "opp-1"})
	t.AppendRow([]any{"B", float64(3_000_000), "opp-2"})
	t.AppendRow([]any{"A", float64(500_000), "opp-3"})
	return t
}

func TestTopGroupsRanksByRevenueSum(t *testing.T) {
	summary, err := TopGroups(revenueTable(), "Account", "Total Current Revenue (converted)", "Opportunity ID", 2)
	require.NoError(t, err)

	require.Len(t, summary.Groups, 2)
	assert.Equal(t, "B", summary.Groups[0].GroupValue)
	assert.Equal(t, float64(3_000_000), summary.Groups[0].RevenueSum)
	assert.Equal(t, 1, summary.Groups[0].DistinctCount)

	assert.Equal(t, "A", summary.Groups[1].GroupValue)
	assert.Equal(t, float64(1_500_000), summary.Groups[1].RevenueSum)
	assert.Equal(t, 2, summary.Groups[1].DistinctCount)
}

func TestTopGroupsTruncatesToN(t *testing.T) {
	summary, err := TopGroups(revenueTable(), "Account", "Total Current Revenue (converted)", "Opportunity ID", 1)
	require.NoError(t, err)
	require.Len(t, summary.Groups, 1)
	assert.Equal(t, "B", summary.Groups[0].GroupValue)
}

func TestTopGroupsNLargerThanGroupCount(t *testing.T) {
	summary, err := TopGroups(revenueTable(), "Account", "Total Current Revenue (converted)", "Opportunity ID", 50)
	require.NoError(t, err)
	assert.Len(t, summary.Groups, 2)
}

func TestTopGroupsTiesKeepFirstSeenOrder(t *testing.T) {
	tbl := model.NewTable([]string{"Account", "Total Current Revenue (converted)", "Opportunity ID"})
	tbl.AppendRow([]any{"Zeta", float64(100), "a"})
	tbl.AppendRow([]any{"Alpha", float64(100), "b"})

	summary, err := TopGroups(tbl, "Account", "Total Current Revenue (converted)", "Opportunity ID", 2)
	require.NoError(t, err)
	assert.Equal(t, "Zeta", summary.Groups[0].GroupValue)
	assert.Equal(t, "Alpha", summary.Groups[1].GroupValue)
}

func TestTopGroupsSkipsEmptyGroupKeys(t *testing.T) {
	tbl := model.NewTable([]string{"Account", "Total Current Revenue (converted)", "Opportunity ID"})
	tbl.AppendRow([]any{"", float64(9_000_000), "a"})
	tbl.AppendRow([]any{nil, float64(9_000_000), "b"})
	tbl.AppendRow([]any{"Acme", float64(100), "c"})

	summary, err := TopGroups(tbl, "Account", "Total Current Revenue (converted)", "Opportunity ID", 10)
	require.NoError(t, err)
	require.Len(t, summary.Groups, 1)
	assert.Equal(t, "Acme", summary.Groups[0].GroupValue)
}

func TestTopGroupsIgnoresNonNumericRevenue(t *testing.T) {
	tbl := model.NewTable([]string{"Account", "Total Current Revenue (converted)", "Opportunity ID"})
	tbl.AppendRow([]any{"Acme", float64(100), "a"})
	tbl.AppendRow([]any{"Acme", nil, "b"})

	summary, err := TopGroups(tbl, "Account", "Total Current Revenue (converted)", "Opportunity ID", 1)
	require.NoError(t, err)
	assert.Equal(t, float64(100), summary.Groups[0].RevenueSum)
	assert.Equal(t, 2, summary.Groups[0].DistinctCount)
}

func TestTopGroupsMissingRequiredColumns(t *testing.T) {
	tbl := model.NewTable([]string{"Stage"})

	_, err := TopGroups(tbl, "Account", "Total Current Revenue (converted)", "Opportunity ID", 5)
	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Account", missing.Column)

	tbl = model.NewTable([]string{"Account"})
	_, err = TopGroups(tbl, "Account", "Total Current Revenue (converted)", "Opportunity ID", 5)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Total Current Revenue (converted)", missing.Column)
}

func TestTopGroupsIdentifierFallsBackToRowCount(t *testing.T) {
	tbl := model.NewTable([]string{"Account", "Total Current Revenue (converted)"})
	tbl.AppendRow([]any{"Acme", float64(1)})
	tbl.AppendRow([]any{"Acme", float64(2)})

	summary, err := TopGroups(tbl, "Account", "Total Current Revenue (converted)", "Opportunity ID", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Groups[0].DistinctCount)
}

func TestSummarize(t *testing.T) {
	metrics, err := Summarize(revenueTable(), "Total Current Revenue (converted)", "Opportunity ID")
	require.NoError(t, err)
	assert.Equal(t, float64(4_500_000), metrics.TotalRevenue)
	assert.Equal(t, 3, metrics.OpportunityCount)
	assert.Equal(t, 3, metrics.RowCount)
}

func TestSummarizeDuplicateIdentifiers(t *testing.T) {
	tbl := model.NewTable([]string{"Total Current Revenue (converted)", "Opportunity ID"})
	tbl.AppendRow([]any{float64(10), "opp-1"})
	tbl.AppendRow([]any{float64(20), "opp-1"})

	metrics, err := Summarize(tbl, "Total Current Revenue (converted)", "Opportunity ID")
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.OpportunityCount)
}

func TestSummarizeMissingIdentifierColumn(t *testing.T) {
	tbl := model.NewTable([]string{"Total Current Revenue (converted)"})
	tbl.AppendRow([]any{float64(10)})
	tbl.AppendRow([]any{float64(20)})

	metrics, err := Summarize(tbl, "Total Current Revenue (converted)", "Opportunity ID")
	require.NoError(t, err)
	assert.Equal(t, 2, metrics.OpportunityCount)
	assert.Equal(t, float64(30), metrics.TotalRevenue)
}

func TestSummarizeMissingRevenueColumn(t *testing.T) {
	tbl := model.NewTable([]string{"Account"})

	_, err := Summarize(tbl, "Total Current Revenue (converted)", "Opportunity ID")
	var missing *MissingColumnError
	assert.ErrorAs(t, err, &missing)
}

func TestDistinctCount(t *testing.T) {
	tbl := model.NewTable([]string{"Account"})
	tbl.AppendRow([]any{"Acme"})
	tbl.AppendRow([]any{"Acme"})
	tbl.AppendRow([]any{"Globex"})
	tbl.AppendRow([]any{""})

	assert.Equal(t, 2, DistinctCount(tbl, "Account"))
	assert.Equal(t, 0, DistinctCount(tbl, "Market"))
}

func TestClampTopN(t *testing.T) {
	assert.Equal(t, 1, ClampTopN(0, 100))
	assert.Equal(t, 1, ClampTopN(-3, 100))
	assert.Equal(t, 10, ClampTopN(10, 100))
	assert.Equal(t, 100, ClampTopN(500, 100))
	// The upper bound never drops below 5, even with fewer groups.
	assert.Equal(t, 5, ClampTopN(500, 2))
	assert.Equal(t, 4, ClampTopN(4, 2))
}
