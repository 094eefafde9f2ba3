package pipeline

import (
	"bytes"
	"fmt"

	"go-insights-dashboard/internal/model"
)

// Result bundles the output of one full pipeline pass: the filtered table,
// the KPI metrics over it, and the ranked top-N groups. Groups is nil when
// filtering left no rows (the empty-result state, which is not an error).
type Result struct {
	Filtered *model.Table         `json:"-"`
	Summary  model.SummaryMetrics `json:"summary"`
	Groups   *model.GroupSummary  `json:"groups,omitempty"`
}

// Empty reports whether filtering matched no rows.
func (r *Result) Empty() bool { return r.Filtered.RowCount() == 0 }

// ------------------- Pipeline Runner -------------------

// Run executes the transform chain on an already-projected table: filter per
// spec, then summarize and rank the top-N groups. Each call is one discrete
// request/response pass; nothing is cached and the input table is not
// mutated. topN is clamped to [1, max(5, distinct account count)].
func Run(t *model.Table, spec model.FilterSpec, topN int) (*Result, error) {
	filtered := ApplyFilters(t, spec)
	result := &Result{Filtered: filtered}

	if filtered.RowCount() == 0 {
		fmt.Printf("📭 Pipeline: no rows left after filtering (%d in)\n", t.RowCount())
		return result, nil
	}

	summary, err := Summarize(filtered, model.RevenueColumn, model.IdentifierColumn)
	if err != nil {
		return nil, err
	}
	result.Summary = summary

	topN = ClampTopN(topN, DistinctCount(filtered, model.GroupColumn))
	groups, err := TopGroups(filtered, model.GroupColumn, model.RevenueColumn, model.IdentifierColumn, topN)
	if err != nil {
		return nil, err
	}
	result.Groups = groups

	fmt.Printf("📊 Pipeline: %d rows in, %d rows out, top %d of %d groups\n",
		t.RowCount(), filtered.RowCount(), len(groups.Groups), DistinctCount(filtered, model.GroupColumn))
	return result, nil
}

// LoadAndProject runs the ingest half of the pipeline: parse the upload,
// coerce numeric columns, and project down to the fixed output schema.
func LoadAndProject(data []byte, fileName string) (*model.Table, error) {
	t, err := Load(bytes.NewReader(data), fileName)
	if err != nil {
		return nil, err
	}
	if err := ValidateSchema(t, model.OutputSchema); err != nil {
		return nil, err
	}
	return Project(t, model.OutputSchema), nil
}
