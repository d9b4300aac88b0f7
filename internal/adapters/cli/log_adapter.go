package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/launchlist/internal/ports/primary"
)

// LogAdapter renders the audit history.
type LogAdapter struct {
	service primary.LogService
	out     io.Writer
}

// NewLogAdapter creates a new LogAdapter.
func NewLogAdapter(service primary.LogService, out io.Writer) *LogAdapter {
	return &LogAdapter{service: service, out: out}
}

// List prints the most recent audit entries of a storage key.
func (a *LogAdapter) List(ctx context.Context, storageKey string, limit int) error {
	entries, err := a.service.ListLogs(ctx, primary.LogFilters{StorageKey: storageKey, Limit: limit})
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No history found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-22s %-10s %-28s %s\n", "TIME", "ACTION", "TASK", "ACTOR")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────")
	for _, e := range entries {
		task := e.TaskID
		if task == "" {
			task = "-"
		}
		actor := e.ActorID
		if actor == "" {
			actor = "-"
		}
		fmt.Fprintf(a.out, "%-22s %-10s %-28s %s\n", e.CreatedAt, e.Action, task, actor)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Clear deletes the audit entries of a storage key.
func (a *LogAdapter) Clear(ctx context.Context, storageKey string) error {
	n, err := a.service.ClearLogs(ctx, storageKey)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Removed %d history entries\n", n)
	return nil
}
