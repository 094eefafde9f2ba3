package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go-insights-dashboard/internal/model"
	"go-insights-dashboard/internal/pipeline"
	"go-insights-dashboard/internal/store"
)

// UploadFile ingests a CSV or Excel file into a session
// @Summary Upload data
// @Description Parse the uploaded file, coerce numeric columns and project it down to the fixed output schema. Replaces any previous upload and resets filter state.
// @Tags sessions
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Session ID"
// @Param file formData file true "CSV, XLSX or XLS file"
// @Success 200 {object} map[string]interface{} "Upload accepted"
// @Failure 400 {object} map[string]interface{} "Unsupported file format"
// @Failure 422 {object} map[string]interface{} "Malformed file content"
// @Router /sessions/{id}/upload [post]
func UploadFile(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r, "/upload")
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid multipart payload", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Form field 'file' is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read upload", http.StatusBadRequest)
		return
	}

	fmt.Printf("📥 Upload for session %s: %s (%d bytes)\n", sess.ID, header.Filename, len(data))

	table, err := pipeline.LoadAndProject(data, header.Filename)
	if err != nil {
		store.LogActivity(sess.ID, "upload", "error", err.Error())
		writeLoadError(w, err)
		return
	}

	sessions.SetTable(sess.ID, table, header.Filename)
	store.SaveUpload(sess.ID, header.Filename, table.RowCount())
	store.LogActivity(sess.ID, "upload", "info",
		fmt.Sprintf("Loaded %s: %d rows, %d columns retained", header.Filename, table.RowCount(), len(table.Columns)))

	missing := missingColumns(table)
	if len(missing) > 0 {
		store.LogActivity(sess.ID, "upload", "warning",
			fmt.Sprintf("Missing schema columns: %s", strings.Join(missing, ", ")))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id":      sess.ID,
		"status":          model.StatusAwaitingFilters,
		"message":         msgAwaitingFilters,
		"file_name":       header.Filename,
		"row_count":       table.RowCount(),
		"columns":         table.Columns,
		"missing_columns": missing,
		"filter_options":  pipeline.FilterOptions(table, model.FilterColumns),
	})
}

// missingColumns lists the schema columns the uploaded file does not carry.
// Clients surface these so a truncated export is explainable.
func missingColumns(t *model.Table) []string {
	var missing []string
	for _, name := range model.OutputSchema.Names() {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// writeLoadError maps loader failures to the right status code with a
// human-readable message.
func writeLoadError(w http.ResponseWriter, err error) {
	var parseErr *pipeline.ParseError
	var schemaErr *pipeline.SchemaError

	switch {
	case errors.Is(err, pipeline.ErrUnsupportedFormat):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "unsupported_format",
			"message": err.Error(),
		})
	case errors.As(err, &parseErr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":   "parse_error",
			"message": parseErr.Error(),
		})
	case errors.As(err, &schemaErr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":   "schema_error",
			"message": schemaErr.Error(),
			"column":  schemaErr.Column,
			"row":     schemaErr.Row,
		})
	default:
		http.Error(w, "Failed to process upload", http.StatusInternalServerError)
	}
}
