package primary

import "context"

// ReportService defines the primary port for exporting checklist reports.
type ReportService interface {
	// ExportMarkdown writes the portable report into dir and returns its path.
	ExportMarkdown(ctx context.Context, dir string) (*ExportResponse, error)

	// ExportYAML writes the machine-readable report into dir and returns its path.
	ExportYAML(ctx context.Context, dir string) (*ExportResponse, error)

	// ExportPrintable opens the print document. Opened is false when no
	// rendering surface could be opened; that case is not an error.
	ExportPrintable(ctx context.Context) (*PrintResponse, error)

	// RenderMarkdown returns the portable report without writing it anywhere.
	RenderMarkdown(ctx context.Context) (string, error)
}

// ExportResponse describes a written report file.
type ExportResponse struct {
	Path           string
	Filename       string
	CompletedCount int
	TotalTasks     int
	Percent        int
}

// PrintResponse describes a print export.
type PrintResponse struct {
	Opened bool
}
