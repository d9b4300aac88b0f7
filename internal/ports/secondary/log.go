package secondary

import "context"

// LogWriter defines the interface for writing checklist audit entries.
// Implementations extract the actor from context.
type LogWriter interface {
	// LogToggle logs a task changing state. done is the state after the toggle.
	LogToggle(ctx context.Context, storageKey, taskID string, done bool) error

	// LogReset logs a checklist reset.
	LogReset(ctx context.Context, storageKey string) error
}
