package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/launchlist/internal/adapters/filesystem"
	"github.com/example/launchlist/internal/catalogs"
	"github.com/example/launchlist/internal/config"
	"github.com/example/launchlist/internal/db"
	"github.com/example/launchlist/internal/models"
	"github.com/example/launchlist/internal/ports/secondary"
	"github.com/example/launchlist/internal/wire"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the launchlist environment",
		Long: `Health check for launchlist.

Validates:
- Configuration file
- Database schema version
- Stored checklist state of every catalog
- Report directory is writable
- A document viewer is available for 'launchlist print'

Examples:
  launchlist doctor              # Run full health check
  launchlist doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			cwd, _ := os.Getwd()

			results := []CheckResult{
				checkConfig(cwd),
				checkDatabase(),
			}
			// State checks need a working database
			if results[1].Status != "✗" {
				results = append(results, checkStoredState(ctx, wire.StateStore(), catalogs.All()))
			}
			results = append(results, checkReportDir(wire.Config().ResolveReportDir(cwd)))
			results = append(results, checkOpener())

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// checkConfig reports which config file is in effect
func checkConfig(cwd string) CheckResult {
	_, path, err := config.Resolve(cwd)
	if err != nil {
		return CheckResult{Name: "Config", Status: "✗", Details: "  " + err.Error()}
	}
	if path == "" {
		return CheckResult{Name: "Config", Status: "⚠", Details: "  No config found, using defaults. Run 'launchlist init'."}
	}
	return CheckResult{Name: "Config", Status: "✓"}
}

// checkDatabase opens the database and compares its schema version
func checkDatabase() CheckResult {
	conn, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: "  " + err.Error()}
	}

	v, err := db.CurrentVersion(conn)
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: "  " + err.Error()}
	}
	if v != db.LatestVersion() {
		return CheckResult{
			Name:    "Database",
			Status:  "✗",
			Details: fmt.Sprintf("  Schema version %d, expected %d", v, db.LatestVersion()),
		}
	}
	return CheckResult{Name: "Database", Status: "✓"}
}

// checkStoredState verifies that each catalog's stored record is a JSON id list.
// Ids outside the catalog are reported but tolerated.
func checkStoredState(ctx context.Context, store secondary.StateStore, all []*models.Catalog) CheckResult {
	if store == nil {
		return CheckResult{Name: "Stored state", Status: "✗", Details: "database unavailable"}
	}

	var problems, warnings []string

	for _, c := range all {
		raw, found, err := store.Get(ctx, c.StorageKey)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", c.Slug, err))
			continue
		}
		if !found {
			continue
		}

		var ids []string
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			problems = append(problems, fmt.Sprintf("%s: stored state is not a JSON list and will be ignored", c.Slug))
			continue
		}

		unknown := 0
		for _, id := range ids {
			if !c.Has(id) {
				unknown++
			}
		}
		if unknown > 0 {
			warnings = append(warnings, fmt.Sprintf("%s: %d stored id(s) are not in the catalog", c.Slug, unknown))
		}
	}

	switch {
	case len(problems) > 0:
		return CheckResult{Name: "Stored state", Status: "✗", Details: "  " + strings.Join(append(problems, warnings...), "\n  ")}
	case len(warnings) > 0:
		return CheckResult{Name: "Stored state", Status: "⚠", Details: "  " + strings.Join(warnings, "\n  ")}
	}
	return CheckResult{Name: "Stored state", Status: "✓"}
}

// checkReportDir verifies that reports can be written to dir
func checkReportDir(dir string) CheckResult {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return CheckResult{Name: "Report dir", Status: "✗", Details: "  " + err.Error()}
	}
	check, err := os.CreateTemp(dir, ".launchlist-check-*")
	if err != nil {
		return CheckResult{Name: "Report dir", Status: "✗", Details: fmt.Sprintf("  %s is not writable: %v", dir, err)}
	}
	check.Close()
	os.Remove(check.Name())
	return CheckResult{Name: "Report dir", Status: "✓"}
}

// checkOpener looks for the platform document viewer used by print
func checkOpener() CheckResult {
	if _, err := filesystem.OpenerAvailable(); err != nil {
		return CheckResult{
			Name:    "Print viewer",
			Status:  "⚠",
			Details: "  " + err.Error() + "\n  'launchlist print' will do nothing; use 'launchlist export' instead.",
		}
	}
	return CheckResult{Name: "Print viewer", Status: "✓"}
}
