package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/example/launchlist/internal/core/checklist"
	"github.com/example/launchlist/internal/events"
	"github.com/example/launchlist/internal/models"
	"github.com/example/launchlist/internal/ports/primary"
	"github.com/example/launchlist/internal/ports/secondary"
)

var (
	// ErrUnknownTask is returned by Toggle when the id is rejected by the unknown-id policy.
	ErrUnknownTask = errors.New("unknown task")
	// ErrEngineClosed is returned by mutations after Close.
	ErrEngineClosed = errors.New("checklist engine closed")
)

// ChecklistEngine owns the completion set of one catalog.
// It implements primary.ChecklistService.
type ChecklistEngine struct {
	catalog    *models.Catalog
	storageKey string
	store      secondary.StateStore
	audit      secondary.LogWriter
	bus        *events.EventBus
	policy     checklist.UnknownIDPolicy
	logger     *slog.Logger
	now        func() time.Time

	mu       sync.Mutex
	order    []string
	done     map[string]bool
	degraded bool
	closed   bool
}

// NewChecklistEngine loads persisted state for storageKey and returns an engine.
// It never fails: unreadable or corrupt state is logged and treated as empty.
// store, audit and bus may be nil.
func NewChecklistEngine(
	ctx context.Context,
	catalog *models.Catalog,
	storageKey string,
	store secondary.StateStore,
	audit secondary.LogWriter,
	bus *events.EventBus,
	policy checklist.UnknownIDPolicy,
) *ChecklistEngine {
	if storageKey == "" {
		storageKey = catalog.StorageKey
	}
	if policy == "" {
		policy = checklist.PolicyReject
	}

	e := &ChecklistEngine{
		catalog:    catalog,
		storageKey: storageKey,
		store:      store,
		audit:      audit,
		bus:        bus,
		policy:     policy,
		logger:     slog.Default().With("component", "checklist", "key", storageKey),
		now:        time.Now,
		done:       make(map[string]bool),
	}

	for _, id := range e.load(ctx) {
		if !e.done[id] {
			e.done[id] = true
			e.order = append(e.order, id)
		}
	}

	return e
}

// load reads the persisted id list. Any failure yields nil.
func (e *ChecklistEngine) load(ctx context.Context) []string {
	if e.store == nil {
		return nil
	}

	raw, found, err := e.store.Get(ctx, e.storageKey)
	if err != nil {
		e.logger.Warn("failed to load checklist state", "error", err)
		return nil
	}
	if !found {
		return nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		e.logger.Warn("discarding corrupt checklist state", "error", err)
		return nil
	}

	if unknown := e.countUnknown(ids); unknown > 0 {
		e.logger.Debug("stored state contains ids outside the catalog", "count", unknown)
	}
	return ids
}

func (e *ChecklistEngine) countUnknown(ids []string) int {
	n := 0
	for _, id := range ids {
		if !e.catalog.Has(id) {
			n++
		}
	}
	return n
}

// Toggle flips a task between pending and done and returns the new done state.
func (e *ChecklistEngine) Toggle(ctx context.Context, taskID string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return false, ErrEngineClosed
	}

	guard := checklist.CanToggle(checklist.ToggleContext{
		TaskID:    taskID,
		CatalogID: e.catalog.Slug,
		InCatalog: e.catalog.Has(taskID),
		Policy:    e.policy,
	})
	if !guard.Allowed {
		return false, fmt.Errorf("%w: %s", ErrUnknownTask, guard.Reason)
	}

	wasComplete := e.isCompleteLocked()

	done := !e.done[taskID]
	if done {
		e.done[taskID] = true
		e.order = append(e.order, taskID)
	} else {
		delete(e.done, taskID)
		if i := slices.Index(e.order, taskID); i >= 0 {
			e.order = slices.Delete(e.order, i, i+1)
		}
	}

	e.persistLocked(ctx)

	if e.audit != nil {
		if err := e.audit.LogToggle(ctx, e.storageKey, taskID, done); err != nil {
			e.logger.Warn("failed to write audit entry", "task", taskID, "error", err)
		}
	}

	completed := e.completedCountLocked()
	e.publish(events.TaskToggledEvent{
		Key:       e.storageKey,
		TaskID:    taskID,
		Done:      done,
		Completed: completed,
		Total:     e.catalog.Len(),
		Timestamp: e.now(),
	})

	if checklist.BecameComplete(wasComplete, e.isCompleteLocked()) {
		e.logger.Info("checklist complete", "total", e.catalog.Len())
		e.publish(events.ChecklistCompletedEvent{
			Key:       e.storageKey,
			Catalog:   e.catalog.Slug,
			Total:     e.catalog.Len(),
			Timestamp: e.now(),
		})
	}

	return done, nil
}

// Reset clears the completion set and persists the empty state.
func (e *ChecklistEngine) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}

	e.order = nil
	e.done = make(map[string]bool)
	e.persistLocked(ctx)

	if e.audit != nil {
		if err := e.audit.LogReset(ctx, e.storageKey); err != nil {
			e.logger.Warn("failed to write audit entry", "error", err)
		}
	}

	e.publish(events.ChecklistResetEvent{Key: e.storageKey, Timestamp: e.now()})
	return nil
}

// persistLocked writes the id list. A failed write switches the engine to
// memory-only operation for the rest of its life.
func (e *ChecklistEngine) persistLocked(ctx context.Context) {
	if e.store == nil || e.degraded {
		return
	}

	ids := e.order
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		e.logger.Error("failed to encode checklist state", "error", err)
		e.degraded = true
		return
	}

	if err := e.store.Put(ctx, e.storageKey, string(data)); err != nil {
		e.logger.Error("failed to save checklist state, continuing in memory", "error", err)
		e.degraded = true
	}
}

func (e *ChecklistEngine) publish(ev events.Event) {
	if e.bus == nil {
		return
	}
	e.bus.Publish(events.TopicChecklist, ev)
}

// CompletedTasks returns completed ids in completion order.
func (e *ChecklistEngine) CompletedTasks() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.order)
}

// IsDone reports whether a task is completed.
func (e *ChecklistEngine) IsDone(taskID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.done[taskID]
}

// CompletedCount counts completed tasks that belong to the catalog.
func (e *ChecklistEngine) CompletedCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.completedCountLocked()
}

// TotalTasks returns the catalog size.
func (e *ChecklistEngine) TotalTasks() int {
	return e.catalog.Len()
}

// Progress returns the exact completion percentage.
func (e *ChecklistEngine) Progress() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return checklist.Percent(e.completedCountLocked(), e.catalog.Len())
}

// RoundedProgress returns Progress rounded half-up.
func (e *ChecklistEngine) RoundedProgress() int {
	return checklist.RoundPercent(e.Progress())
}

// IsComplete reports whether every catalog task is done.
func (e *ChecklistEngine) IsComplete() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isCompleteLocked()
}

// Snapshot returns a consistent copy of the current state.
func (e *ChecklistEngine) Snapshot() primary.ChecklistSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	completed := e.completedCountLocked()
	return primary.ChecklistSnapshot{
		CatalogSlug:    e.catalog.Slug,
		StorageKey:     e.storageKey,
		Completed:      slices.Clone(e.order),
		CompletedCount: completed,
		TotalTasks:     e.catalog.Len(),
		Progress:       checklist.Percent(completed, e.catalog.Len()),
		IsComplete:     checklist.IsComplete(completed, e.catalog.Len()),
	}
}

// Degraded reports whether persistence failed and state is memory-only.
func (e *ChecklistEngine) Degraded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.degraded
}

// MarkDegraded switches the engine to memory-only operation.
// Used when the backing store could not be opened at all.
func (e *ChecklistEngine) MarkDegraded() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.degraded = true
}

// Catalog returns the engine's catalog.
func (e *ChecklistEngine) Catalog() *models.Catalog {
	return e.catalog
}

// Close detaches the engine. Later mutations return ErrEngineClosed.
func (e *ChecklistEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
}

func (e *ChecklistEngine) completedCountLocked() int {
	return checklist.CompletedCount(e.catalog, e.done)
}

func (e *ChecklistEngine) isCompleteLocked() bool {
	return checklist.IsComplete(e.completedCountLocked(), e.catalog.Len())
}

// Ensure ChecklistEngine implements the interface
var _ primary.ChecklistService = (*ChecklistEngine)(nil)
