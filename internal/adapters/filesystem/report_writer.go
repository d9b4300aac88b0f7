// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/launchlist/internal/ports/secondary"
)

// ReportWriter implements secondary.ReportWriter on the local filesystem.
type ReportWriter struct{}

// NewReportWriter creates a new filesystem report writer.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// Write stores content as dir/filename. The content goes to a temp file in
// dir first and is renamed into place, so a failed write leaves nothing behind.
func (w *ReportWriter) Write(ctx context.Context, dir, filename string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if filename == "" || filepath.Base(filename) != filename {
		return "", fmt.Errorf("invalid report filename %q", filename)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filename+".*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close report: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to set report permissions: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to move report into place: %w", err)
	}

	return path, nil
}

// Ensure ReportWriter implements the interface
var _ secondary.ReportWriter = (*ReportWriter)(nil)
