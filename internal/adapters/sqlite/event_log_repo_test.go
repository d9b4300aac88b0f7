package sqlite_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/example/launchlist/internal/adapters/sqlite"
	"github.com/example/launchlist/internal/ctxutil"
	"github.com/example/launchlist/internal/ports/secondary"
)

func TestEventLogRepository_Create(t *testing.T) {
	repo := sqlite.NewEventLogRepository(setupTestDB(t))
	ctx := context.Background()

	t.Run("assigns a uuid when id is empty", func(t *testing.T) {
		record := &secondary.EventRecord{
			StorageKey: "go-live-checklist-state",
			TaskID:     "seo-sitemap",
			Action:     secondary.EventActionComplete,
			ActorID:    "alice",
		}
		if err := repo.Create(ctx, record); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if _, err := uuid.Parse(record.ID); err != nil {
			t.Errorf("expected uuid id, got %q", record.ID)
		}
	})

	t.Run("stores reset without task id", func(t *testing.T) {
		record := &secondary.EventRecord{
			StorageKey: "go-live-checklist-state",
			Action:     secondary.EventActionReset,
		}
		if err := repo.Create(ctx, record); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	})

	t.Run("rejects unknown action", func(t *testing.T) {
		record := &secondary.EventRecord{StorageKey: "k", Action: "archive"}
		if err := repo.Create(ctx, record); err == nil {
			t.Error("expected CHECK constraint failure")
		}
	})
}

func TestEventLogRepository_List(t *testing.T) {
	repo := sqlite.NewEventLogRepository(setupTestDB(t))
	ctx := context.Background()

	seed := []secondary.EventRecord{
		{StorageKey: "a", TaskID: "t1", Action: secondary.EventActionComplete},
		{StorageKey: "a", TaskID: "t1", Action: secondary.EventActionReopen},
		{StorageKey: "b", TaskID: "t9", Action: secondary.EventActionComplete},
		{StorageKey: "a", Action: secondary.EventActionReset},
	}
	for i := range seed {
		if err := repo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("seed %d failed: %v", i, err)
		}
	}

	t.Run("filters by key newest first", func(t *testing.T) {
		events, err := repo.List(ctx, secondary.EventFilters{StorageKey: "a"})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(events) != 3 {
			t.Fatalf("expected 3 events, got %d", len(events))
		}
		if events[0].Action != secondary.EventActionReset {
			t.Errorf("expected newest event first, got %s", events[0].Action)
		}
		if events[2].Action != secondary.EventActionComplete || events[2].TaskID != "t1" {
			t.Errorf("unexpected oldest event %+v", events[2])
		}
		if events[0].CreatedAt == "" {
			t.Error("expected CreatedAt to be set")
		}
	})

	t.Run("applies limit", func(t *testing.T) {
		events, err := repo.List(ctx, secondary.EventFilters{Limit: 2})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(events) != 2 {
			t.Errorf("expected 2 events, got %d", len(events))
		}
	})

	t.Run("deletes by key", func(t *testing.T) {
		n, err := repo.DeleteByKey(ctx, "a")
		if err != nil {
			t.Fatalf("DeleteByKey failed: %v", err)
		}
		if n != 3 {
			t.Errorf("expected 3 deleted, got %d", n)
		}
		remaining, _ := repo.List(ctx, secondary.EventFilters{})
		if len(remaining) != 1 || remaining[0].StorageKey != "b" {
			t.Errorf("unexpected remaining events: %v", remaining)
		}
	})
}

func TestLogWriterAdapter(t *testing.T) {
	repo := sqlite.NewEventLogRepository(setupTestDB(t))
	writer := sqlite.NewLogWriterAdapter(repo)
	ctx := ctxutil.WithActorID(context.Background(), "bob")

	if err := writer.LogToggle(ctx, "k", "t1", true); err != nil {
		t.Fatalf("LogToggle failed: %v", err)
	}
	if err := writer.LogToggle(ctx, "k", "t1", false); err != nil {
		t.Fatalf("LogToggle failed: %v", err)
	}
	if err := writer.LogReset(context.Background(), "k"); err != nil {
		t.Fatalf("LogReset failed: %v", err)
	}

	events, err := repo.List(ctx, secondary.EventFilters{StorageKey: "k"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []struct{ action, task, actor string }{
		{secondary.EventActionReset, "", ""},
		{secondary.EventActionReopen, "t1", "bob"},
		{secondary.EventActionComplete, "t1", "bob"},
	}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(events))
	}
	for i, w := range want {
		got := events[i]
		if got.Action != w.action || got.TaskID != w.task || got.ActorID != w.actor {
			t.Errorf("event %d = %s/%s/%s, want %s/%s/%s", i, got.Action, got.TaskID, got.ActorID, w.action, w.task, w.actor)
		}
	}
}
