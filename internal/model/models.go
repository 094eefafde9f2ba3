package model

import "time"

// FilterSpec maps a column name to the set of values its rows must match.
// An empty (or missing) value list means the column is unconstrained; multiple
// constrained columns combine with logical AND. Columns the table does not
// carry are silently ignored.
type FilterSpec map[string][]string

// IsActive reports whether the spec constrains at least one column.
func (f FilterSpec) IsActive() bool {
	for _, values := range f {
		if len(values) > 0 {
			return true
		}
	}
	return false
}

// GroupResult is one ranked group: summed revenue plus the number of distinct
// identifiers seen in the group. RecordCount is the raw row count and doubles
// as the distinct-count fallback when the identifier column is absent.
type GroupResult struct {
	GroupValue    string  `json:"group_value"`
	RevenueSum    float64 `json:"revenue_sum"`
	DistinctCount int     `json:"distinct_count"`
	RecordCount   int     `json:"record_count"`
}

// GroupSummary is the ranked, truncated per-group aggregate: groups sorted
// descending by RevenueSum, length <= the requested top-N. The revenue and
// count chart series are both derived from this single ordered slice, so they
// share the same keys in the same order by construction.
type GroupSummary struct {
	GroupBy string        `json:"group_by"`
	Groups  []GroupResult `json:"groups"`
}

// SummaryMetrics backs the KPI tiles.
type SummaryMetrics struct {
	TotalRevenue     float64 `json:"total_revenue"`
	OpportunityCount int     `json:"opportunity_count"`
	RowCount         int     `json:"row_count"`
}

// Session lifecycle states. Each halting state maps to a distinct
// human-readable message at the API edge.
const (
	StatusAwaitingUpload  = "awaiting_upload"
	StatusAwaitingFilters = "awaiting_filters"
	StatusReady           = "ready"
	StatusEmptyResult     = "empty_result"
)

// UploadInfo describes the file currently backing a session.
type UploadInfo struct {
	FileName   string    `json:"file_name"`
	RowCount   int       `json:"row_count"`
	Columns    []string  `json:"columns"`
	UploadedAt time.Time `json:"uploaded_at"`
}
