package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go-insights-dashboard/internal/model"
	"go-insights-dashboard/internal/session"
	"go-insights-dashboard/pkg/utils"
)

var (
	sessions       *session.Registry
	outputs        *utils.OutputManager
	maxUploadBytes int64 = 32 << 20
	defaultTopN          = 10
)

// Setup wires the handler package to its collaborators and limits. Must be
// called once before any route is served.
func Setup(reg *session.Registry, om *utils.OutputManager, uploadLimit int64, topN int) {
	sessions = reg
	outputs = om
	if uploadLimit > 0 {
		maxUploadBytes = uploadLimit
	}
	if topN > 0 {
		defaultTopN = topN
	}
}

// Human-readable status messages, one per halting condition.
const (
	msgAwaitingUpload  = "Please upload a file to continue."
	msgAwaitingFilters = "Modify filters and apply them to continue."
	msgEmptyResult     = "No data after applying filters."
)

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("value must be positive, got %d", n)
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// sessionIDFromPath extracts the session ID from a path shaped like
// /api/v1/sessions/{id}[/suffix].
func sessionIDFromPath(path, suffix string) string {
	const prefix = "/api/v1/sessions/"
	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		return ""
	}
	return strings.Trim(path[len(prefix):len(path)-len(suffix)], "/")
}

// requireSession resolves the session addressed by the request, writing the
// error response itself when the path is malformed or the session is unknown.
func requireSession(w http.ResponseWriter, r *http.Request, suffix string) (*session.Session, bool) {
	id := sessionIDFromPath(r.URL.Path, suffix)
	if id == "" {
		http.Error(w, "Session ID is required", http.StatusBadRequest)
		return nil, false
	}
	sess := sessions.Get(id)
	if sess == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return sess, true
}

// requireData additionally checks that a file has been uploaded.
func requireData(w http.ResponseWriter, r *http.Request, suffix string) (*session.Session, bool) {
	sess, ok := requireSession(w, r, suffix)
	if !ok {
		return nil, false
	}
	if !sess.HasData() {
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"session_id": sess.ID,
			"status":     model.StatusAwaitingUpload,
			"message":    msgAwaitingUpload,
		})
		return nil, false
	}
	return sess, true
}

// requireFiltered additionally checks that filters have been applied at least
// once, so handlers never serve results the user has not asked for.
func requireFiltered(w http.ResponseWriter, r *http.Request, suffix string) (*session.Session, bool) {
	sess, ok := requireData(w, r, suffix)
	if !ok {
		return nil, false
	}
	if !sess.FiltersApplied {
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"session_id": sess.ID,
			"status":     model.StatusAwaitingFilters,
			"message":    msgAwaitingFilters,
		})
		return nil, false
	}
	return sess, true
}
