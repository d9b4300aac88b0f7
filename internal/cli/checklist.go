package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	cliadapter "github.com/example/launchlist/internal/adapters/cli"
	"github.com/example/launchlist/internal/app"
	"github.com/example/launchlist/internal/catalogs"
	"github.com/example/launchlist/internal/events"
	"github.com/example/launchlist/internal/wire"
)

// CatalogsCmd returns the catalogs command
func CatalogsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalogs",
		Short: "List available checklists",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			fmt.Printf("\n%-12s %-8s %-9s %s\n", "SLUG", "TASKS", "PROGRESS", "NAME")
			fmt.Println("────────────────────────────────────────────────────────────────")
			for _, c := range catalogs.All() {
				engine := wire.ChecklistEngine(ctx, c)
				fmt.Printf("%-12s %-8d %-9s %s\n", c.Slug, c.Len(), fmt.Sprintf("%d%%", engine.RoundedProgress()), c.Name)
			}
			fmt.Println()
			return nil
		},
	}
}

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show checklist progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := resolveCatalog(cmd)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)
			return wire.ChecklistAdapter(ctx, catalog).Status(ctx)
		},
	}
}

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	var opts cliadapter.ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List checklist tasks",
		Long: `List the tasks of a checklist grouped by category, in catalog order.

Examples:
  launchlist list                       # every task of the default checklist
  launchlist list -c local-seo --pending
  launchlist list --category seo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := resolveCatalog(cmd)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)
			return wire.ChecklistAdapter(ctx, catalog).List(ctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", "", "only show one category")
	cmd.Flags().BoolVar(&opts.PendingOnly, "pending", false, "hide completed tasks")
	return cmd
}

// ToggleCmd returns the toggle command
func ToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [task-id...]",
		Short: "Mark tasks done, or reopen them if already done",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := resolveCatalog(cmd)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)

			bus := wire.EventBus()
			notifications := bus.Subscribe(events.TopicChecklist, 0)
			defer bus.Unsubscribe(events.TopicChecklist, notifications)

			adapter := wire.ChecklistAdapter(ctx, catalog)
			err = toggleTasks(ctx, adapter, notifications, args, os.Stdout)
			if errors.Is(err, app.ErrUnknownTask) {
				return fmt.Errorf("%w (run 'launchlist list -c %s' to see valid task ids)", err, catalog.Slug)
			}
			return err
		},
	}
}

type toggler interface {
	Toggle(ctx context.Context, taskID string) error
}

// toggleTasks toggles ids in order, draining notifications after each one so
// a long argument list cannot overflow the subscription.
func toggleTasks(ctx context.Context, t toggler, notifications <-chan events.Event, ids []string, out io.Writer) error {
	for _, id := range ids {
		if err := t.Toggle(ctx, id); err != nil {
			return err
		}
		celebrate(notifications, out)
	}
	return nil
}

// celebrate prints a banner for each completion notification already delivered.
func celebrate(ch <-chan events.Event, out io.Writer) {
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if done, isDone := ev.(events.ChecklistCompletedEvent); isDone {
				banner := color.New(color.FgGreen, color.Bold)
				fmt.Fprintln(out)
				banner.Fprintf(out, "🎉 All %d tasks complete. %s is ready to launch!\n", done.Total, done.Catalog)
				fmt.Fprintln(out)
			}
		default:
			return
		}
	}
}

// ResetCmd returns the reset command
func ResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all progress of a checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := resolveCatalog(cmd)
			if err != nil {
				return err
			}

			if !yes && !confirmPrompt(fmt.Sprintf("Reset all progress for %s?", catalog.Name)) {
				fmt.Println("Aborted")
				return nil
			}

			ctx := commandContext(cmd)
			return wire.ChecklistAdapter(ctx, catalog).Reset(ctx)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	return cmd
}

// PromptCmd returns the prompt command
func PromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt [task-id]",
		Short: "Print the assistant prompt for a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := resolveCatalog(cmd)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)
			return wire.ChecklistAdapter(ctx, catalog).Prompt(ctx, args[0])
		},
	}
}

func confirmPrompt(msg string) bool {
	fmt.Printf("%s [y/N]: ", msg)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
