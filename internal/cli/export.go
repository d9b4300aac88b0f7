package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/launchlist/internal/wire"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	var (
		format string
		dir    string
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Save the checklist report as a file",
		Long: `Save the current checklist state as a portable report.

The file is named <catalog>-checklist-<YYYY-MM-DD>.<ext> and written to
--dir, the configured report_dir, or the working directory.

Examples:
  launchlist export                     # Markdown into the working directory
  launchlist export -c local-seo --format yaml --dir ~/reports
  launchlist export --stdout | less`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := resolveCatalog(cmd)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)
			service := wire.ReportService(ctx, catalog)

			if stdout {
				md, err := service.RenderMarkdown(ctx)
				if err != nil {
					return err
				}
				fmt.Print(md)
				return nil
			}

			if dir == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get working directory: %w", err)
				}
				dir = wire.Config().ResolveReportDir(cwd)
			}

			switch format {
			case "md", "markdown":
				resp, err := service.ExportMarkdown(ctx, dir)
				if err != nil {
					return err
				}
				fmt.Printf("✓ Exported %s (%d of %d tasks, %d%%)\n", resp.Path, resp.CompletedCount, resp.TotalTasks, resp.Percent)
			case "yaml", "yml":
				resp, err := service.ExportYAML(ctx, dir)
				if err != nil {
					return err
				}
				fmt.Printf("✓ Exported %s (%d of %d tasks, %d%%)\n", resp.Path, resp.CompletedCount, resp.TotalTasks, resp.Percent)
			default:
				return fmt.Errorf("unknown format %q (use md or yaml)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "md", "report format: md or yaml")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory to write the report to")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "print the Markdown report instead of writing a file")
	return cmd
}

// PrintCmd returns the print command
func PrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Open a print-ready report",
		Long: `Render the checklist as a print-ready page and open it with the
system viewer. The page starts printing once it has loaded. If no viewer
can be opened, nothing is shown; run with --verbose to see why.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := resolveCatalog(cmd)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)

			resp, err := wire.ReportService(ctx, catalog).ExportPrintable(ctx)
			if err != nil {
				return err
			}
			if resp.Opened {
				fmt.Println("✓ Print document opened")
			}
			return nil
		},
	}
}
