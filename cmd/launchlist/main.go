package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/example/launchlist/internal/cli"
	"github.com/example/launchlist/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "launchlist",
		Short:   "launchlist - launch checklists with saved progress",
		Version: version.String(),
		Long: `launchlist tracks fixed launch checklists (go-live, local SEO), keeps
your progress between sessions, and exports it as a Markdown, YAML, or
print-ready report.`,
		SilenceUsage:      true,
		PersistentPreRunE: cli.Bootstrap,
		PersistentPostRun: cli.Teardown,
	}
	cli.AddGlobalFlags(rootCmd)

	// Checklist commands
	rootCmd.AddCommand(cli.CatalogsCmd())
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.ToggleCmd())
	rootCmd.AddCommand(cli.ResetCmd())
	rootCmd.AddCommand(cli.PromptCmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	// Reports
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.PrintCmd())

	// Setup and diagnostics
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.VersionCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
