package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"go-insights-dashboard/internal/model"
	"go-insights-dashboard/internal/store"
)

// CreateSession creates a new dashboard session
// @Summary Create a new session
// @Description Create a dashboard session; upload a file into it next
// @Tags sessions
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Session created"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /sessions [post]
func CreateSession(w http.ResponseWriter, r *http.Request) {
	sessionID := uuid.New().String()

	if err := store.CreateSession(sessionID); err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}
	sessions.Create(sessionID)

	fmt.Printf("🆕 Session created: %s\n", sessionID)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id": sessionID,
		"status":     model.StatusAwaitingUpload,
		"message":    msgAwaitingUpload,
		"createdAt":  time.Now().UTC(),
	})
}

// ListSessions retrieves all sessions
// @Summary List sessions
// @Tags sessions
// @Produce json
// @Success 200 {array} map[string]interface{} "List of sessions"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /sessions [get]
func ListSessions(w http.ResponseWriter, r *http.Request) {
	list, err := store.ListSessions()
	if err != nil {
		http.Error(w, "Failed to fetch sessions", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// GetSession retrieves one session's metadata and filter state
// @Summary Get session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "Session details"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /sessions/{id} [get]
func GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromPath(r.URL.Path, "")
	if sessionID == "" {
		http.Error(w, "Session ID is required", http.StatusBadRequest)
		return
	}

	info, err := store.GetSession(sessionID)
	if err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// DeleteSession deletes a session, its in-memory table and its artifacts
// @Summary Delete session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "Session deleted"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /sessions/{id} [delete]
func DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromPath(r.URL.Path, "")
	if sessionID == "" {
		http.Error(w, "Session ID is required", http.StatusBadRequest)
		return
	}
	if _, err := store.GetSession(sessionID); err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	files, err := store.GetOutputFiles(sessionID)
	if err != nil {
		store.LogActivity(sessionID, "delete", "warning", "Failed to list files for deletion")
	}
	for _, file := range files {
		if filePath, ok := file["file_path"].(string); ok {
			if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
				store.LogActivity(sessionID, "delete", "warning", fmt.Sprintf("Failed to delete file %s", filePath))
			}
		}
	}
	sessionDir := filepath.Join(outputs.BaseOutputDir, sessionID)
	os.RemoveAll(sessionDir)

	if err := store.DeleteSession(sessionID); err != nil {
		http.Error(w, "Failed to delete session", http.StatusInternalServerError)
		return
	}
	sessions.Delete(sessionID)

	fmt.Printf("🗑️ Session deleted: %s\n", sessionID)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":       "Session and all artifacts deleted successfully",
		"session_id":    sessionID,
		"files_deleted": len(files),
	})
}

// GetSessionActivity returns the most recent pipeline events for a session
// @Summary Get session activity
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param limit query int false "Max entries" default(100)
// @Success 200 {object} map[string]interface{} "Activity entries"
// @Router /sessions/{id}/activity [get]
func GetSessionActivity(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r, "/activity")
	if !ok {
		return
	}

	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := parsePositiveInt(v); err == nil {
			limit = parsed
		}
	}

	entries, err := store.GetActivityLog(sess.ID, limit)
	if err != nil {
		http.Error(w, "Failed to retrieve activity", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id": sess.ID,
		"activity":   entries,
		"count":      len(entries),
		"limit":      limit,
	})
}
