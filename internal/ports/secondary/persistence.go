// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// StateStore defines the secondary port for durable key-value storage.
// Values are opaque strings; the checklist engine stores a JSON array of task ids.
type StateStore interface {
	// Get returns the value stored under key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Put stores value under key, replacing any previous value (last write wins).
	Put(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists stored keys in ascending order.
	Keys(ctx context.Context) ([]string, error)
}

// EventLogRepository defines the secondary port for checklist audit events.
type EventLogRepository interface {
	// Create persists a new event.
	Create(ctx context.Context, event *EventRecord) error

	// List retrieves events for a storage key, newest first.
	List(ctx context.Context, filters EventFilters) ([]*EventRecord, error)

	// DeleteByKey removes all events of a storage key and returns how many were removed.
	DeleteByKey(ctx context.Context, storageKey string) (int, error)
}

// EventRecord represents an audit event as stored in persistence.
type EventRecord struct {
	ID         string
	StorageKey string
	TaskID     string // empty for reset events
	Action     string // "complete", "reopen", "reset"
	ActorID    string
	CreatedAt  string
}

// EventFilters contains filter options for querying events.
type EventFilters struct {
	StorageKey string
	Limit      int
}

// Event action constants
const (
	EventActionComplete = "complete"
	EventActionReopen   = "reopen"
	EventActionReset    = "reset"
)
