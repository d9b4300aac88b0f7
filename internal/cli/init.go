package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/launchlist/internal/catalogs"
	"github.com/example/launchlist/internal/config"
	"github.com/example/launchlist/internal/core/checklist"
	"github.com/example/launchlist/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var (
		global   bool
		force    bool
		catalog  string
		unknown  string
		reportTo string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a launchlist config and database",
		Long: `Write .launchlist/config.json (in the working directory, or in the
home directory with --global) and initialize the state database.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if global {
				dir, err = os.UserHomeDir()
			}
			if err != nil {
				return fmt.Errorf("failed to resolve config directory: %w", err)
			}

			path := filepath.Join(dir, config.DirName, "config.json")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}

			if _, err := catalogs.Lookup(catalog); err != nil {
				return err
			}
			if _, err := checklist.ParsePolicy(unknown); err != nil {
				return err
			}

			cfg := config.Default()
			cfg.DefaultCatalog = catalog
			cfg.UnknownIDs = unknown
			cfg.ReportDir = reportTo
			if err := config.SaveConfig(dir, cfg); err != nil {
				return err
			}
			fmt.Printf("✓ Config written to %s\n", path)

			if _, err := db.GetDB(); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			dbPath, _ := db.GetDBPath()
			fmt.Printf("✓ Database ready at %s\n", dbPath)

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  launchlist list")
			fmt.Println("  launchlist toggle <task-id>")
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "write the config to the home directory")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")
	cmd.Flags().StringVar(&catalog, "default-catalog", "go-live", "checklist used when --catalog is omitted")
	cmd.Flags().StringVar(&unknown, "unknown-ids", string(checklist.PolicyReject), "toggle policy for ids outside the catalog: reject or allow")
	cmd.Flags().StringVar(&reportTo, "report-dir", "", "default directory for exported reports")
	return cmd
}
