package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/launchlist/internal/adapters/sqlite"
)

func TestStateStore_GetMissing(t *testing.T) {
	store := sqlite.NewStateStore(setupTestDB(t))

	value, found, err := store.Get(context.Background(), "go-live-checklist-state")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found || value != "" {
		t.Errorf("expected missing key, got found=%v value=%q", found, value)
	}
}

func TestStateStore_PutOverwrites(t *testing.T) {
	store := sqlite.NewStateStore(setupTestDB(t))
	ctx := context.Background()

	if err := store.Put(ctx, "k", `["a"]`); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Put(ctx, "k", `["a","b"]`); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}

	value, found, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found || value != `["a","b"]` {
		t.Errorf("expected last write to win, got %q", value)
	}
}

func TestStateStore_KeysAndDelete(t *testing.T) {
	store := sqlite.NewStateStore(setupTestDB(t))
	ctx := context.Background()

	for _, k := range []string{"local-seo-checklist-state", "go-live-checklist-state"} {
		if err := store.Put(ctx, k, "[]"); err != nil {
			t.Fatalf("Put %s failed: %v", k, err)
		}
	}

	keys, err := store.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "go-live-checklist-state" {
		t.Errorf("expected sorted keys, got %v", keys)
	}

	if err := store.Delete(ctx, "go-live-checklist-state"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete(ctx, "never-stored"); err != nil {
		t.Errorf("deleting an absent key should succeed, got %v", err)
	}

	if _, found, _ := store.Get(ctx, "go-live-checklist-state"); found {
		t.Error("expected key to be gone after Delete")
	}
}

func TestStateStore_KeysAreIndependent(t *testing.T) {
	store := sqlite.NewStateStore(setupTestDB(t))
	ctx := context.Background()

	_ = store.Put(ctx, "a", `["x"]`)
	_ = store.Put(ctx, "b", `["y"]`)

	a, _, _ := store.Get(ctx, "a")
	b, _, _ := store.Get(ctx, "b")
	if a != `["x"]` || b != `["y"]` {
		t.Errorf("keys interfered: a=%q b=%q", a, b)
	}
}
