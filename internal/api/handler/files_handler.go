package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go-insights-dashboard/internal/model"
	"go-insights-dashboard/internal/pipeline"
	"go-insights-dashboard/internal/store"
)

// ExportData writes the filtered rows to a downloadable artifact
// @Summary Export filtered data
// @Description Write the filtered rows as filtered_data.csv (UTF-8, header row first) or filtered_data.xlsx and record the artifact.
// @Tags files
// @Produce json
// @Param id path string true "Session ID"
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {object} map[string]interface{} "Export written"
// @Failure 409 {object} map[string]interface{} "Upload or filters missing"
// @Router /sessions/{id}/export [post]
func ExportData(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireFiltered(w, r, "/export")
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

	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		http.Error(w, "Unsupported export format, want csv or xlsx", http.StatusBadRequest)
		return
	}

	fileName := "filtered_data." + format
	filePath, err := outputs.GetOutputFilePath(sess.ID, fileName)
	if err != nil {
		http.Error(w, "Failed to prepare output directory", http.StatusInternalServerError)
		return
	}

	f, err := os.Create(filePath)
	if err != nil {
		http.Error(w, "Failed to create export file", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	switch format {
	case "csv":
		err = pipeline.WriteCSV(f, filtered)
	case "xlsx":
		err = pipeline.WriteXLSX(f, filtered)
	}
	if err != nil {
		http.Error(w, "Failed to write export file", http.StatusInternalServerError)
		return
	}

	size, _ := outputs.GetFileSize(filePath)
	store.SaveOutputFile(sess.ID, fileName, filePath, format, size, filtered.RowCount())
	store.LogActivity(sess.ID, "export", "info",
		fmt.Sprintf("Exported %d rows to %s", filtered.RowCount(), fileName))

	fmt.Printf("💾 Export for session %s: %d rows -> %s\n", sess.ID, filtered.RowCount(), filePath)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id":   sess.ID,
		"file_name":    fileName,
		"file_type":    format,
		"file_size":    size,
		"record_count": filtered.RowCount(),
		"download_url": outputs.GetDownloadURL(sess.ID, fileName),
	})
}

// GetSessionFiles lists exported artifacts for a session
// @Summary List session files
// @Tags files
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "Files"
// @Router /sessions/{id}/files [get]
func GetSessionFiles(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r, "/files")
	if !ok {
		return
	}

	files, err := store.GetOutputFiles(sess.ID)
	if err != nil {
		http.Error(w, "Failed to retrieve files", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id": sess.ID,
		"files":      files,
		"count":      len(files),
	})
}

// DownloadFile serves an exported artifact
// @Summary Download file
// @Tags files
// @Produce application/octet-stream
// @Param sessionID path string true "Session ID"
// @Param filename path string true "File name"
// @Success 200 {file} file "File download"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /download/{sessionID}/{filename} [get]
func DownloadFile(w http.ResponseWriter, r *http.Request) {
	// URL format: /api/v1/download/{sessionID}/{filename}
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 5 {
		http.Error(w, "Invalid URL format", http.StatusBadRequest)
		return
	}
	sessionID := parts[3]
	fileName := filepath.Base(parts[4])

	filePath := filepath.Join(outputs.BaseOutputDir, sessionID, fileName)
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Type", outputs.ContentType(fileName))
	http.ServeFile(w, r, filePath)
}
