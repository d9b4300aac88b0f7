package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/launchlist/internal/wire"
)

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	var (
		limit int
		clearHistory bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent toggles and resets",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := resolveCatalog(cmd)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)

			if clearHistory {
				return wire.LogAdapter().Clear(ctx, catalog.StorageKey)
			}
			return wire.LogAdapter().List(ctx, catalog.StorageKey, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of entries")
	cmd.Flags().BoolVar(&clearHistory, "clear", false, "delete the history of the checklist")
	return cmd
}
