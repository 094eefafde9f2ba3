package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputManager organizes exported artifacts on disk, one directory per
// session.
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager rooted at baseOutputDir.
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{BaseOutputDir: baseOutputDir}
}

// CreateSessionOutputDir creates the per-session directory for exports.
func (om *OutputManager) CreateSessionOutputDir(sessionID string) (string, error) {
	dir := filepath.Join(om.BaseOutputDir, sessionID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create session output directory: %w", err)
	}
	return dir, nil
}

// GetOutputFilePath generates a full path for an export file. Path separators
// in fileName are stripped.
func (om *OutputManager) GetOutputFilePath(sessionID, fileName string) (string, error) {
	dir, err := om.CreateSessionOutputDir(sessionID)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.Base(fileName)), nil
}

// GetDownloadURL generates the download URL for an export file.
func (om *OutputManager) GetDownloadURL(sessionID, fileName string) string {
	return fmt.Sprintf("/api/v1/download/%s/%s", sessionID, filepath.Base(fileName))
}

// ContentType maps an export file name to its MIME type.
func (om *OutputManager) ContentType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return "text/csv; charset=utf-8"
	case ".xlsx", ".xls":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// GetFileSize returns the size of a file in bytes.
func (om *OutputManager) GetFileSize(filePath string) (int64, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
