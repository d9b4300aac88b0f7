package sqlite

import (
	"context"

	"github.com/example/launchlist/internal/ctxutil"
	"github.com/example/launchlist/internal/ports/secondary"
)

// LogWriterAdapter implements secondary.LogWriter using EventLogRepository.
type LogWriterAdapter struct {
	repo secondary.EventLogRepository
}

// NewLogWriterAdapter creates a new LogWriterAdapter.
func NewLogWriterAdapter(repo secondary.EventLogRepository) *LogWriterAdapter {
	return &LogWriterAdapter{repo: repo}
}

// LogToggle records a task being completed or reopened.
func (w *LogWriterAdapter) LogToggle(ctx context.Context, storageKey, taskID string, done bool) error {
	action := secondary.EventActionReopen
	if done {
		action = secondary.EventActionComplete
	}
	return w.write(ctx, storageKey, taskID, action)
}

// LogReset records a checklist reset.
func (w *LogWriterAdapter) LogReset(ctx context.Context, storageKey string) error {
	return w.write(ctx, storageKey, "", secondary.EventActionReset)
}

func (w *LogWriterAdapter) write(ctx context.Context, storageKey, taskID, action string) error {
	return w.repo.Create(ctx, &secondary.EventRecord{
		StorageKey: storageKey,
		TaskID:     taskID,
		Action:     action,
		ActorID:    ctxutil.ActorFromContext(ctx),
	})
}

// Ensure LogWriterAdapter implements the interface
var _ secondary.LogWriter = (*LogWriterAdapter)(nil)
