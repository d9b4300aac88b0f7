package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/launchlist/internal/catalogs"
	"github.com/example/launchlist/internal/config"
	"github.com/example/launchlist/internal/core/checklist"
	"github.com/example/launchlist/internal/ctxutil"
	"github.com/example/launchlist/internal/models"
	"github.com/example/launchlist/internal/wire"
)

// AddGlobalFlags registers the flags shared by every command.
func AddGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringP("catalog", "c", "", "checklist to operate on (see 'launchlist catalogs')")
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

// Bootstrap resolves configuration and installs the logger.
// It is the root command's PersistentPreRunE.
func Bootstrap(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, path, err := config.Resolve(cwd)
	if err != nil {
		return err
	}
	if _, err := checklist.ParsePolicy(cfg.UnknownIDs); err != nil {
		return fmt.Errorf("invalid configuration %s: %w", path, err)
	}

	level := cfg.SlogLevel()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	wire.Configure(cfg)
	return nil
}

// Teardown releases wired resources. It is the root command's PersistentPostRun.
func Teardown(cmd *cobra.Command, args []string) {
	wire.Shutdown()
}

// resolveCatalog returns the catalog named by --catalog, falling back to the configured default.
func resolveCatalog(cmd *cobra.Command) (*models.Catalog, error) {
	slug, _ := cmd.Flags().GetString("catalog")
	if slug == "" {
		slug = wire.Config().DefaultCatalog
	}
	return catalogs.Lookup(slug)
}

// commandContext attaches the local actor to the command's context.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return ctxutil.WithActorID(ctx, ctxutil.ActorFromEnv())
}
