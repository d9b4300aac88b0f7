package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/launchlist/internal/ports/secondary"
)

// EventLogRepository implements secondary.EventLogRepository with SQLite.
type EventLogRepository struct {
	db *sql.DB
}

// NewEventLogRepository creates a new SQLite checklist event repository.
func NewEventLogRepository(db *sql.DB) *EventLogRepository {
	return &EventLogRepository{db: db}
}

// Create persists a new event. An empty ID is filled with a random UUID.
func (r *EventLogRepository) Create(ctx context.Context, event *secondary.EventRecord) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	var taskID, actorID sql.NullString
	if event.TaskID != "" {
		taskID = sql.NullString{String: event.TaskID, Valid: true}
	}
	if event.ActorID != "" {
		actorID = sql.NullString{String: event.ActorID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO checklist_events (id, storage_key, task_id, action, actor_id, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		event.ID,
		event.StorageKey,
		taskID,
		event.Action,
		actorID,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create checklist event: %w", err)
	}

	return nil
}

// List retrieves events matching the filters, newest first.
func (r *EventLogRepository) List(ctx context.Context, filters secondary.EventFilters) ([]*secondary.EventRecord, error) {
	query := `SELECT id, storage_key, task_id, action, actor_id, created_at FROM checklist_events WHERE 1=1`
	args := []any{}

	if filters.StorageKey != "" {
		query += " AND storage_key = ?"
		args = append(args, filters.StorageKey)
	}

	query += " ORDER BY created_at DESC, rowid DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist events: %w", err)
	}
	defer rows.Close()

	var events []*secondary.EventRecord
	for rows.Next() {
		var (
			taskID    sql.NullString
			actorID   sql.NullString
			createdAt time.Time
		)
		record := &secondary.EventRecord{}
		if err := rows.Scan(&record.ID, &record.StorageKey, &taskID, &record.Action, &actorID, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan checklist event: %w", err)
		}
		record.TaskID = taskID.String
		record.ActorID = actorID.String
		record.CreatedAt = createdAt.Format(time.RFC3339)
		events = append(events, record)
	}

	return events, rows.Err()
}

// DeleteByKey removes all events of a storage key.
func (r *EventLogRepository) DeleteByKey(ctx context.Context, storageKey string) (int, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM checklist_events WHERE storage_key = ?", storageKey)
	if err != nil {
		return 0, fmt.Errorf("failed to delete checklist events: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted events: %w", err)
	}
	return int(n), nil
}

// Ensure EventLogRepository implements the interface
var _ secondary.EventLogRepository = (*EventLogRepository)(nil)
