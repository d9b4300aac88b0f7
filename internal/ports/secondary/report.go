package secondary

import "context"

// ReportWriter defines the secondary port for saving portable report files.
type ReportWriter interface {
	// Write stores content as filename inside dir and returns the final path.
	// A failed write leaves no partial file behind.
	Write(ctx context.Context, dir, filename string, content []byte) (string, error)
}

// PrintLauncher defines the secondary port for handing a print document to a rendering surface.
type PrintLauncher interface {
	// Open renders the HTML document and asks it to print.
	Open(ctx context.Context, name string, html []byte) error
}
