package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/launchlist/internal/models"
	"github.com/example/launchlist/internal/ports/primary"
	"github.com/example/launchlist/internal/ports/secondary"
	"github.com/example/launchlist/internal/report"
)

// ReportServiceImpl implements the ReportService interface.
type ReportServiceImpl struct {
	checklist primary.ChecklistService
	catalog   *models.Catalog
	writer    secondary.ReportWriter
	launcher  secondary.PrintLauncher
	logger    *slog.Logger
	now       func() time.Time
}

// NewReportService creates a new ReportService with injected dependencies.
func NewReportService(
	checklist primary.ChecklistService,
	catalog *models.Catalog,
	writer secondary.ReportWriter,
	launcher secondary.PrintLauncher,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		checklist: checklist,
		catalog:   catalog,
		writer:    writer,
		launcher:  launcher,
		logger:    slog.Default().With("component", "report", "catalog", catalog.Slug),
		now:       time.Now,
	}
}

// build snapshots the checklist once so every rendering sees the same state.
func (s *ReportServiceImpl) build() report.Report {
	snap := s.checklist.Snapshot()
	return report.Build(s.catalog, snap.Done(), s.now())
}

// ExportMarkdown writes the portable report into dir.
func (s *ReportServiceImpl) ExportMarkdown(ctx context.Context, dir string) (*primary.ExportResponse, error) {
	r := s.build()
	return s.write(ctx, dir, r, "md", []byte(report.Markdown(r)))
}

// ExportYAML writes the machine-readable report into dir.
func (s *ReportServiceImpl) ExportYAML(ctx context.Context, dir string) (*primary.ExportResponse, error) {
	r := s.build()
	data, err := report.YAML(r)
	if err != nil {
		return nil, fmt.Errorf("failed to render YAML report: %w", err)
	}
	return s.write(ctx, dir, r, "yaml", data)
}

func (s *ReportServiceImpl) write(ctx context.Context, dir string, r report.Report, ext string, content []byte) (*primary.ExportResponse, error) {
	filename := report.Filename(s.catalog.Slug, r.GeneratedAt, ext)
	path, err := s.writer.Write(ctx, dir, filename, content)
	if err != nil {
		return nil, fmt.Errorf("failed to export report: %w", err)
	}

	s.logger.Info("report exported", "path", path)
	return &primary.ExportResponse{
		Path:           path,
		Filename:       filename,
		CompletedCount: r.Completed,
		TotalTasks:     r.Total,
		Percent:        r.RoundedPercent,
	}, nil
}

// ExportPrintable renders the print document and hands it to the launcher.
// Failures abort the export silently: they are logged and Opened is false.
func (s *ReportServiceImpl) ExportPrintable(ctx context.Context) (*primary.PrintResponse, error) {
	r := s.build()

	html, err := report.Printable(r)
	if err != nil {
		s.logger.Warn("failed to render print document", "error", err)
		return &primary.PrintResponse{}, nil
	}

	name := report.Filename(s.catalog.Slug, r.GeneratedAt, "html")
	if err := s.launcher.Open(ctx, name, []byte(html)); err != nil {
		s.logger.Warn("print export aborted", "error", err)
		return &primary.PrintResponse{}, nil
	}

	return &primary.PrintResponse{Opened: true}, nil
}

// RenderMarkdown returns the portable report as text.
func (s *ReportServiceImpl) RenderMarkdown(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return report.Markdown(s.build()), nil
}

// Ensure ReportServiceImpl implements the interface
var _ primary.ReportService = (*ReportServiceImpl)(nil)
