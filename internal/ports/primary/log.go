package primary

import "context"

// LogService defines the primary port for the checklist audit history.
type LogService interface {
	// ListLogs retrieves audit entries matching the given filters, newest first.
	ListLogs(ctx context.Context, filters LogFilters) ([]*LogEntry, error)

	// ClearLogs deletes the audit entries of a storage key and returns how many were removed.
	ClearLogs(ctx context.Context, storageKey string) (int, error)
}

// LogEntry represents an audit entry at the port boundary.
type LogEntry struct {
	ID         string
	StorageKey string
	TaskID     string // empty for resets
	Action     string // 'complete', 'reopen', 'reset'
	ActorID    string
	CreatedAt  string
}

// LogFilters contains filter options for querying the history.
type LogFilters struct {
	StorageKey string
	Limit      int
}
