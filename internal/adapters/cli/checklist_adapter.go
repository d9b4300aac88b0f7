// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/launchlist/internal/core/checklist"
	"github.com/example/launchlist/internal/models"
	"github.com/example/launchlist/internal/ports/primary"
)

const barWidth = 30

// ChecklistAdapter is a thin adapter that translates CLI operations to ChecklistService calls.
// It depends only on the ChecklistService interface, enabling easy testing with mocks.
type ChecklistAdapter struct {
	service primary.ChecklistService
	catalog *models.Catalog
	out     io.Writer
}

// NewChecklistAdapter creates a new ChecklistAdapter for one catalog.
func NewChecklistAdapter(service primary.ChecklistService, catalog *models.Catalog, out io.Writer) *ChecklistAdapter {
	return &ChecklistAdapter{
		service: service,
		catalog: catalog,
		out:     out,
	}
}

// Status prints overall progress and per-category tallies.
func (a *ChecklistAdapter) Status(ctx context.Context) error {
	snap := a.service.Snapshot()

	fmt.Fprintf(a.out, "\n%s\n", color.New(color.Bold).Sprint(a.catalog.Name))
	if a.catalog.Subtitle != "" {
		fmt.Fprintln(a.out, a.catalog.Subtitle)
	}
	fmt.Fprintln(a.out)

	percent := checklist.RoundPercent(snap.Progress)
	fmt.Fprintf(a.out, "%s %d of %d tasks completed (%d%%)\n",
		progressBar(snap.Progress), snap.CompletedCount, snap.TotalTasks, percent)
	fmt.Fprintln(a.out)

	fmt.Fprintf(a.out, "%-32s %s\n", "CATEGORY", "DONE")
	fmt.Fprintln(a.out, "────────────────────────────────────────────")
	for _, tally := range checklist.Tally(a.catalog, snap.Done()) {
		count := fmt.Sprintf("%d/%d", tally.Done, tally.Total)
		if tally.Done == tally.Total && tally.Total > 0 {
			count = color.New(color.FgGreen).Sprint(count)
		}
		fmt.Fprintf(a.out, "%-32s %s\n", tally.Label, count)
	}
	fmt.Fprintln(a.out)

	if snap.IsComplete {
		fmt.Fprintln(a.out, color.New(color.FgGreen).Sprint("✓ All tasks complete"))
	}
	if a.service.Degraded() {
		fmt.Fprintln(a.out, color.New(color.FgYellow).Sprint("⚠ Progress could not be saved; changes are kept in memory only"))
	}

	return nil
}

// ListOptions filters the task listing.
type ListOptions struct {
	Category    string // category tag; empty lists all
	PendingOnly bool
}

// List prints tasks grouped by category in catalog order.
func (a *ChecklistAdapter) List(ctx context.Context, opts ListOptions) error {
	if opts.Category != "" && a.catalog.Label(models.Category(opts.Category)) == "" {
		return fmt.Errorf("unknown category %q", opts.Category)
	}

	printed := 0
	for _, c := range a.catalog.Categories() {
		if opts.Category != "" && string(c.Category) != opts.Category {
			continue
		}

		var lines []string
		done := 0
		tasks := a.catalog.TasksIn(c.Category)
		for _, t := range tasks {
			isDone := a.service.IsDone(t.ID)
			if isDone {
				done++
			}
			if opts.PendingOnly && isDone {
				continue
			}
			lines = append(lines, formatTask(t, isDone))
		}

		if len(lines) == 0 {
			continue
		}

		fmt.Fprintf(a.out, "\n%s (%d/%d)\n", color.New(color.Bold).Sprint(c.Label), done, len(tasks))
		for _, line := range lines {
			fmt.Fprintln(a.out, line)
		}
		printed += len(lines)
	}

	if printed == 0 {
		fmt.Fprintln(a.out, "No tasks to show")
		return nil
	}
	fmt.Fprintln(a.out)
	return nil
}

func formatTask(t models.Task, done bool) string {
	if done {
		return fmt.Sprintf("  %s %-28s %s", color.New(color.FgGreen).Sprint("[x]"), t.ID, t.Title)
	}
	return fmt.Sprintf("  [ ] %-28s %s", t.ID, t.Title)
}

// Toggle flips one task and reports its new state.
func (a *ChecklistAdapter) Toggle(ctx context.Context, taskID string) error {
	done, err := a.service.Toggle(ctx, taskID)
	if err != nil {
		return err
	}

	title := taskID
	if t, ok := a.catalog.Task(taskID); ok {
		title = t.Title
	}

	if done {
		fmt.Fprintf(a.out, "✓ Completed %s: %s\n", taskID, title)
	} else {
		fmt.Fprintf(a.out, "✓ Reopened %s: %s\n", taskID, title)
	}
	fmt.Fprintf(a.out, "  %d of %d tasks completed (%d%%)\n",
		a.service.CompletedCount(), a.service.TotalTasks(), a.service.RoundedProgress())
	return nil
}

// Reset clears every completed task.
func (a *ChecklistAdapter) Reset(ctx context.Context) error {
	if err := a.service.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ %s reset: 0 of %d tasks completed\n", a.catalog.Name, a.service.TotalTasks())
	return nil
}

// Prompt prints the assistant prompt of one task.
func (a *ChecklistAdapter) Prompt(ctx context.Context, taskID string) error {
	t, ok := a.catalog.Task(taskID)
	if !ok {
		return fmt.Errorf("task %s is not part of checklist %s", taskID, a.catalog.Slug)
	}
	if t.Prompt == "" {
		return fmt.Errorf("task %s has no prompt", taskID)
	}

	fmt.Fprintf(a.out, "%s\n\n%s\n", color.New(color.Bold).Sprint(t.Title), t.Prompt)
	return nil
}

func progressBar(percent float64) string {
	filled := int(percent / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	return "[" + color.New(color.FgGreen).Sprint(strings.Repeat("█", filled)) + strings.Repeat("░", barWidth-filled) + "]"
}
