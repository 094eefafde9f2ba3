package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"go-insights-dashboard/internal/model"
)

var db *sql.DB

// InitDB opens the SQLite database and creates the schema. Tables hold only
// session metadata and artifacts; uploaded data itself stays in process
// memory for the life of a session.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	sessionTable := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		status TEXT,
		file_name TEXT,
		row_count INTEGER,
		filtered_count INTEGER,
		filter_spec TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	activityTable := `
	CREATE TABLE IF NOT EXISTS session_activity (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT,
		stage TEXT,
		level TEXT,
		message TEXT,
		created_at DATETIME
	);
	`
	filesTable := `
	CREATE TABLE IF NOT EXISTS output_files (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT,
		file_name TEXT,
		file_path TEXT,
		file_type TEXT,
		file_size INTEGER,
		record_count INTEGER,
		created_at DATETIME
	);
	`

	for _, stmt := range []string{sessionTable, activityTable, filesTable} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying database handle.
func Close() error {
	if db == nil {
		return nil
	}
	return db.Close()
}

// CreateSession stores a new dashboard session in its initial state.
func CreateSession(sessionID string) error {
	now := time.Now().UTC()
	_, err := db.Exec(
		`INSERT INTO sessions (id, status, file_name, row_count, filtered_count, filter_spec, created_at, updated_at)
		 VALUES (?, ?, '', 0, 0, '{}', ?, ?)`,
		sessionID, model.StatusAwaitingUpload, now, now)
	return err
}

// ListSessions returns all sessions, newest first.
func ListSessions() ([]map[string]interface{}, error) {
	rows, err := db.Query(
		`SELECT id, status, file_name, row_count, filtered_count, created_at, updated_at
		 FROM sessions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []map[string]interface{}
	for rows.Next() {
		var id, status, fileName string
		var rowCount, filteredCount int
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&id, &status, &fileName, &rowCount, &filteredCount, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, map[string]interface{}{
			"id":             id,
			"status":         status,
			"file_name":      fileName,
			"row_count":      rowCount,
			"filtered_count": filteredCount,
			"createdAt":      createdAt,
			"updatedAt":      updatedAt,
		})
	}
	return sessions, rows.Err()
}

// GetSession fetches one session's metadata and filter state.
func GetSession(sessionID string) (map[string]interface{}, error) {
	var status, fileName, specJSON string
	var rowCount, filteredCount int
	var createdAt, updatedAt time.Time

	err := db.QueryRow(
		`SELECT status, file_name, row_count, filtered_count, filter_spec, created_at, updated_at
		 FROM sessions WHERE id = ?`, sessionID).
		Scan(&status, &fileName, &rowCount, &filteredCount, &specJSON, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	var spec model.FilterSpec
	if err := json.Unmarshal([]byte(specJSON), &spec); err != nil {
		return nil, fmt.Errorf("corrupt filter spec for session %s: %w", sessionID, err)
	}

	return map[string]interface{}{
		"id":             sessionID,
		"status":         status,
		"file_name":      fileName,
		"row_count":      rowCount,
		"filtered_count": filteredCount,
		"filters":        spec,
		"createdAt":      createdAt,
		"updatedAt":      updatedAt,
	}, nil
}

// SaveUpload records the file now backing a session and resets filter state,
// so no stale results from a previous upload survive.
func SaveUpload(sessionID, fileName string, rowCount int) error {
	_, err := db.Exec(
		`UPDATE sessions
		 SET status = ?, file_name = ?, row_count = ?, filtered_count = 0, filter_spec = '{}', updated_at = ?
		 WHERE id = ?`,
		model.StatusAwaitingFilters, fileName, rowCount, time.Now().UTC(), sessionID)
	return err
}

// SaveFilterState persists the applied FilterSpec and the resulting row count.
func SaveFilterState(sessionID string, spec model.FilterSpec, filteredCount int, status string) error {
	specJSON, err := json.Marshal(spec)
	if err != nil {
		return err
	}
	_, err = db.Exec(
		`UPDATE sessions SET status = ?, filter_spec = ?, filtered_count = ?, updated_at = ? WHERE id = ?`,
		status, string(specJSON), filteredCount, time.Now().UTC(), sessionID)
	return err
}

// DeleteSession removes a session and its related records.
func DeleteSession(sessionID string) error {
	if _, err := db.Exec(`DELETE FROM session_activity WHERE session_id = ?`, sessionID); err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM output_files WHERE session_id = ?`, sessionID); err != nil {
		return err
	}
	_, err := db.Exec(`DELETE FROM sessions WHERE id = ?`, sessionID)
	return err
}

// LogActivity records one pipeline event for a session.
func LogActivity(sessionID, stage, level, message string) error {
	_, err := db.Exec(
		`INSERT INTO session_activity (session_id, stage, level, message, created_at) VALUES (?, ?, ?, ?, ?)`,
		sessionID, stage, level, message, time.Now().UTC())
	return err
}

// GetActivityLog returns the most recent activity entries for a session.
func GetActivityLog(sessionID string, limit int) ([]map[string]interface{}, error) {
	rows, err := db.Query(
		`SELECT stage, level, message, created_at FROM session_activity
		 WHERE session_id = ? ORDER BY id DESC LIMIT ?`, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []map[string]interface{}
	for rows.Next() {
		var stage, level, message string
		var createdAt time.Time
		if err := rows.Scan(&stage, &level, &message, &createdAt); err != nil {
			return nil, err
		}
		entries = append(entries, map[string]interface{}{
			"stage":      stage,
			"level":      level,
			"message":    message,
			"created_at": createdAt,
		})
	}
	return entries, rows.Err()
}

// SaveOutputFile records an exported artifact.
func SaveOutputFile(sessionID, fileName, filePath, fileType string, fileSize int64, recordCount int) error {
	_, err := db.Exec(
		`INSERT INTO output_files (session_id, file_name, file_path, file_type, file_size, record_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sessionID, fileName, filePath, fileType, fileSize, recordCount, time.Now().UTC())
	return err
}

// GetOutputFiles returns all exported artifacts for a session.
func GetOutputFiles(sessionID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(
		`SELECT id, file_name, file_path, file_type, file_size, record_count, created_at
		 FROM output_files WHERE session_id = ? ORDER BY created_at DESC`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []map[string]interface{}
	for rows.Next() {
		var id, fileSize int64
		var recordCount int
		var fileName, filePath, fileType string
		var createdAt time.Time
		if err := rows.Scan(&id, &fileName, &filePath, &fileType, &fileSize, &recordCount, &createdAt); err != nil {
			return nil, err
		}
		files = append(files, map[string]interface{}{
			"id":           id,
			"file_name":    fileName,
			"file_path":    filePath,
			"file_type":    fileType,
			"file_size":    fileSize,
			"record_count": recordCount,
			"created_at":   createdAt,
		})
	}
	return files, rows.Err()
}
