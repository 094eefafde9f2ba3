package pipeline

import (
	"sort"

	"go-insights-dashboard/internal/model"
	"go-insights-dashboard/pkg/utils"
)

// ------------------- Aggregation -------------------

// group accumulates per-group state while scanning rows.
type group struct {
	value     string
	sum       float64
	ids       map[string]struct{}
	rowCount  int
	firstSeen int
}

// TopGroups groups rows by groupCol, sums revenueCol and counts distinct
// idCol values per group, sorts descending by summed revenue and truncates to
// the first n groups. Ties keep first-seen order, so the ranking is
// deterministic for a given input. The distinct-count values ride on the same
// ordered slice as the sums and are never re-sorted or re-truncated.
//
// A missing groupCol or revenueCol is a MissingColumnError. A missing idCol is
// not: the distinct count silently falls back to the per-group row count.
func TopGroups(t *model.Table, groupCol, revenueCol, idCol string, n int) (*model.GroupSummary, error) {
	groupIdx := t.ColumnIndex(groupCol)
	if groupIdx == -1 {
		return nil, &MissingColumnError{Column: groupCol}
	}
	revenueIdx := t.ColumnIndex(revenueCol)
	if revenueIdx == -1 {
		return nil, &MissingColumnError{Column: revenueCol}
	}
	idIdx := t.ColumnIndex(idCol) // -1 is allowed: counts fall back to row counts

	groups := make(map[string]*group)
	order := make([]*group, 0)

	for _, row := range t.Rows {
		key := utils.CellText(row[groupIdx])
		if key == "" {
			continue // rows without a group value stay out of the ranking
		}
		g, ok := groups[key]
		if !ok {
			g = &group{value: key, ids: make(map[string]struct{}), firstSeen: len(order)}
			groups[key] = g
			order = append(order, g)
		}
		if num, ok := utils.ToFloat(row[revenueIdx]); ok {
			g.sum += num
		}
		if idIdx != -1 {
			if id := utils.CellText(row[idIdx]); id != "" {
				g.ids[id] = struct{}{}
			}
		}
		g.rowCount++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].sum > order[j].sum
	})

	if n < 1 {
		n = 1
	}
	if n > len(order) {
		n = len(order)
	}

	summary := &model.GroupSummary{GroupBy: groupCol, Groups: make([]model.GroupResult, 0, n)}
	for _, g := range order[:n] {
		count := len(g.ids)
		if idIdx == -1 {
			count = g.rowCount
		}
		summary.Groups = append(summary.Groups, model.GroupResult{
			GroupValue:    g.value,
			RevenueSum:    g.sum,
			DistinctCount: count,
			RecordCount:   g.rowCount,
		})
	}
	return summary, nil
}

// Summarize computes the KPI tile values over the filtered table: the total
// revenue sum and the number of distinct identifiers. When the identifier
// column is absent the count falls back to the total row count.
func Summarize(t *model.Table, revenueCol, idCol string) (model.SummaryMetrics, error) {
	revenueIdx := t.ColumnIndex(revenueCol)
	if revenueIdx == -1 {
		return model.SummaryMetrics{}, &MissingColumnError{Column: revenueCol}
	}

	metrics := model.SummaryMetrics{RowCount: t.RowCount()}
	for _, row := range t.Rows {
		if num, ok := utils.ToFloat(row[revenueIdx]); ok {
			metrics.TotalRevenue += num
		}
	}

	idIdx := t.ColumnIndex(idCol)
	if idIdx == -1 {
		metrics.OpportunityCount = t.RowCount()
		return metrics, nil
	}
	ids := make(map[string]struct{})
	for _, row := range t.Rows {
		if id := utils.CellText(row[idIdx]); id != "" {
			ids[id] = struct{}{}
		}
	}
	metrics.OpportunityCount = len(ids)
	return metrics, nil
}

// DistinctCount returns the number of distinct non-empty values in a column,
// or 0 when the column is absent. Used to bound the top-N control.
func DistinctCount(t *model.Table, col string) int {
	idx := t.ColumnIndex(col)
	if idx == -1 {
		return 0
	}
	seen := make(map[string]struct{})
	for _, row := range t.Rows {
		if v := utils.CellText(row[idx]); v != "" {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}

// ClampTopN bounds the requested top-N to [1, max(5, distinct group count)].
func ClampTopN(n, distinct int) int {
	upper := distinct
	if upper < 5 {
		upper = 5
	}
	if n < 1 {
		return 1
	}
	if n > upper {
		return upper
	}
	return n
}
