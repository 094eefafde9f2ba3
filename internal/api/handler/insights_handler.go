package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go-insights-dashboard/internal/model"
	"go-insights-dashboard/internal/pipeline"
	"go-insights-dashboard/internal/store"
	"go-insights-dashboard/pkg/utils"
)

// GetFilterOptions returns the distinct values per filter column
// @Summary Get filter options
// @Tags insights
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "Per-column distinct values"
// @Failure 409 {object} map[string]interface{} "No file uploaded yet"
// @Router /sessions/{id}/options [get]
func GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireData(w, r, "/options")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id":     sess.ID,
		"filter_columns": model.FilterColumns,
		"options":        pipeline.FilterOptions(sess.Table, model.FilterColumns),
	})
}

// ApplyFilters sets the session's FilterSpec and reports the match count
// @Summary Apply filters
// @Description Body is a map of column name to allowed values. Empty lists mean unconstrained; constrained columns combine with AND.
// @Tags insights
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param filters body model.FilterSpec true "Filter selections"
// @Success 200 {object} map[string]interface{} "Filters applied"
// @Failure 409 {object} map[string]interface{} "No file uploaded yet"
// @Router /sessions/{id}/filters [post]
func ApplyFilters(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireData(w, r, "/filters")
	if !ok {
		return
	}

	var spec model.FilterSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if spec == nil {
		spec = model.FilterSpec{}
	}

	sess = sessions.SetFilters(sess.ID, spec)
	filtered := pipeline.ApplyFilters(sess.Table, spec)

	status := model.StatusReady
	message := fmt.Sprintf("%d of %d rows match the current filters.", filtered.RowCount(), sess.Table.RowCount())
	if filtered.RowCount() == 0 {
		status = model.StatusEmptyResult
		message = msgEmptyResult
	}

	store.SaveFilterState(sess.ID, spec, filtered.RowCount(), status)
	store.LogActivity(sess.ID, "filter", "info",
		fmt.Sprintf("Filters applied: %d of %d rows match", filtered.RowCount(), sess.Table.RowCount()))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id":     sess.ID,
		"status":         status,
		"message":        message,
		"filtered_count": filtered.RowCount(),
		"row_count":      sess.Table.RowCount(),
	})
}

// GetData returns a preview of the filtered rows
// @Summary Get filtered data
// @Tags insights
// @Produce json
// @Param id path string true "Session ID"
// @Param limit query int false "Max rows" default(100)
// @Success 200 {object} map[string]interface{} "Filtered rows"
// @Failure 409 {object} map[string]interface{} "Upload or filters missing"
// @Router /sessions/{id}/data [get]
func GetData(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireFiltered(w, r, "/data")
	if !ok {
		return
	}

	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := parsePositiveInt(v); err == nil {
			limit = parsed
		}
	}

	filtered := pipeline.ApplyFilters(sess.Table, sess.Spec)
	if filtered.RowCount() == 0 {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"session_id": sess.ID,
			"status":     model.StatusEmptyResult,
			"message":    msgEmptyResult,
		})
		return
	}

	rows := make([][]string, 0, limit)
	for i, row := range filtered.Rows {
		if i == limit {
			break
		}
		rendered := make([]string, len(row))
		for j, cell := range row {
			rendered[j] = utils.CellText(cell)
		}
		rows = append(rows, rendered)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id":     sess.ID,
		"status":         model.StatusReady,
		"columns":        filtered.Columns,
		"rows":           rows,
		"count":          len(rows),
		"filtered_count": filtered.RowCount(),
		"limit":          limit,
	})
}

// GetSummary returns the KPI tile values over the filtered rows
// @Summary Get summary metrics
// @Description Total revenue (reported in millions) and distinct opportunity count.
// @Tags insights
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "Summary metrics"
// @Failure 409 {object} map[string]interface{} "Upload or filters missing"
// @Failure 422 {object} map[string]interface{} "Revenue column missing"
// @Router /sessions/{id}/summary [get]
func GetSummary(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireFiltered(w, r, "/summary")
	if !ok {
		return
	}

	filtered := pipeline.ApplyFilters(sess.Table, sess.Spec)
	if filtered.RowCount() == 0 {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"session_id": sess.ID,
			"status":     model.StatusEmptyResult,
			"message":    msgEmptyResult,
		})
		return
	}

	metrics, err := pipeline.Summarize(filtered, model.RevenueColumn, model.IdentifierColumn)
	if err != nil {
		writeAggregateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id":             sess.ID,
		"status":                 model.StatusReady,
		"total_revenue_millions": metrics.TotalRevenue / 1_000_000,
		"opportunity_count":      metrics.OpportunityCount,
		"row_count":              metrics.RowCount,
	})
}

// GetCharts returns the two ranked bar-chart series
// @Summary Get chart series
// @Description Revenue-in-millions and distinct-opportunity-count per account, both ordered by descending revenue and truncated to top_n.
// @Tags insights
// @Produce json
// @Param id path string true "Session ID"
// @Param top_n query int false "Number of ranked groups" default(10)
// @Success 200 {object} map[string]interface{} "Chart series"
// @Failure 409 {object} map[string]interface{} "Upload or filters missing"
// @Failure 422 {object} map[string]interface{} "Grouping or revenue column missing"
// @Router /sessions/{id}/charts [get]
func GetCharts(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireFiltered(w, r, "/charts")
	if !ok {
		return
	}

	filtered := pipeline.ApplyFilters(sess.Table, sess.Spec)
	if filtered.RowCount() == 0 {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"session_id": sess.ID,
			"status":     model.StatusEmptyResult,
			"message":    msgEmptyResult,
		})
		return
	}

	distinct := pipeline.DistinctCount(filtered, model.GroupColumn)
	topN := defaultTopN
	if distinct < topN {
		topN = distinct
	}
	if v := r.URL.Query().Get("top_n"); v != "" {
		if parsed, err := parsePositiveInt(v); err == nil {
			topN = parsed
		}
	}
	topN = pipeline.ClampTopN(topN, distinct)

	summary, err := pipeline.TopGroups(filtered, model.GroupColumn, model.RevenueColumn, model.IdentifierColumn, topN)
	if err != nil {
		writeAggregateError(w, err)
		return
	}

	// Both series are cut from the same ordered slice, so they share keys and
	// order by construction. Revenue is converted to millions at this edge.
	accounts := make([]string, len(summary.Groups))
	revenue := make([]float64, len(summary.Groups))
	counts := make([]int, len(summary.Groups))
	for i, g := range summary.Groups {
		accounts[i] = g.GroupValue
		revenue[i] = g.RevenueSum / 1_000_000
		counts[i] = g.DistinctCount
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id": sess.ID,
		"status":     model.StatusReady,
		"group_by":   summary.GroupBy,
		"top_n":      topN,
		"accounts":   accounts,
		"revenue_series": map[string]interface{}{
			"title":  "Revenue by Account ($M)",
			"values": revenue,
		},
		"count_series": map[string]interface{}{
			"title":  "Opportunity Count (Sorted by Revenue)",
			"values": counts,
		},
	})
}

func writeAggregateError(w http.ResponseWriter, err error) {
	var missing *pipeline.MissingColumnError
	if errors.As(err, &missing) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":   "missing_column",
			"message": missing.Error(),
			"column":  missing.Column,
		})
		return
	}
	http.Error(w, "Failed to aggregate data", http.StatusInternalServerError)
}
