package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/launchlist/internal/ports/primary"
	"github.com/example/launchlist/internal/ports/secondary"
)

// ErrHistoryUnavailable is returned when no event log could be opened.
var ErrHistoryUnavailable = errors.New("history unavailable: database could not be opened")

// LogServiceImpl implements the LogService interface.
type LogServiceImpl struct {
	logRepo secondary.EventLogRepository
}

// NewLogService creates a new LogService with injected dependencies.
// A nil logRepo yields a service that reports ErrHistoryUnavailable.
func NewLogService(logRepo secondary.EventLogRepository) *LogServiceImpl {
	return &LogServiceImpl{
		logRepo: logRepo,
	}
}

// ListLogs retrieves audit entries matching the given filters.
func (s *LogServiceImpl) ListLogs(ctx context.Context, filters primary.LogFilters) ([]*primary.LogEntry, error) {
	if s.logRepo == nil {
		return nil, ErrHistoryUnavailable
	}
	records, err := s.logRepo.List(ctx, secondary.EventFilters{
		StorageKey: filters.StorageKey,
		Limit:      filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	entries := make([]*primary.LogEntry, len(records))
	for i, r := range records {
		entries[i] = s.recordToLogEntry(r)
	}
	return entries, nil
}

// ClearLogs deletes the audit entries of a storage key.
func (s *LogServiceImpl) ClearLogs(ctx context.Context, storageKey string) (int, error) {
	if storageKey == "" {
		return 0, fmt.Errorf("storage key is required")
	}
	if s.logRepo == nil {
		return 0, ErrHistoryUnavailable
	}
	n, err := s.logRepo.DeleteByKey(ctx, storageKey)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	return n, nil
}

// Helper methods

func (s *LogServiceImpl) recordToLogEntry(r *secondary.EventRecord) *primary.LogEntry {
	return &primary.LogEntry{
		ID:         r.ID,
		StorageKey: r.StorageKey,
		TaskID:     r.TaskID,
		Action:     r.Action,
		ActorID:    r.ActorID,
		CreatedAt:  r.CreatedAt,
	}
}

// Ensure LogServiceImpl implements the interface
var _ primary.LogService = (*LogServiceImpl)(nil)
