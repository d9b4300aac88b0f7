package primary

import "context"

// ChecklistService defines the primary port for one catalog's completion state.
type ChecklistService interface {
	// Toggle flips a task between pending and done and returns the new done state.
	Toggle(ctx context.Context, taskID string) (bool, error)

	// Reset clears every completed task.
	Reset(ctx context.Context) error

	// CompletedTasks returns the completed ids in the order they were completed,
	// including ids that are not part of the catalog.
	CompletedTasks() []string

	// IsDone reports whether a task is completed.
	IsDone(taskID string) bool

	// CompletedCount counts completed tasks that belong to the catalog.
	CompletedCount() int

	// TotalTasks returns the catalog size.
	TotalTasks() int

	// Progress returns the exact completion percentage (0-100).
	Progress() float64

	// RoundedProgress returns Progress rounded half-up.
	RoundedProgress() int

	// IsComplete reports whether every catalog task is done.
	IsComplete() bool

	// Snapshot returns a consistent copy of the current state.
	Snapshot() ChecklistSnapshot

	// Degraded reports whether persistence failed and state is memory-only.
	Degraded() bool
}

// ChecklistSnapshot is a point-in-time copy of checklist state.
type ChecklistSnapshot struct {
	CatalogSlug    string
	StorageKey     string
	Completed      []string
	CompletedCount int
	TotalTasks     int
	Progress       float64
	IsComplete     bool
}

// Done returns the snapshot's completed ids as a set.
func (s ChecklistSnapshot) Done() map[string]bool {
	done := make(map[string]bool, len(s.Completed))
	for _, id := range s.Completed {
		done[id] = true
	}
	return done
}
