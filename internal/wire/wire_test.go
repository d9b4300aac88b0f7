package wire

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/example/launchlist/internal/app"
	"github.com/example/launchlist/internal/catalogs"
	"github.com/example/launchlist/internal/config"
	"github.com/example/launchlist/internal/db"
	"github.com/example/launchlist/internal/ports/primary"
)

// resetServices returns the package singletons to their zero state.
func resetServices(t *testing.T) {
	t.Helper()
	Shutdown()
	database, dbErr = nil, nil
	stateStore, eventRepo, logWriter, logService, bus = nil, nil, nil, nil, nil
	once = sync.Once{}
	enginesMu.Lock()
	engines = map[string]*app.ChecklistEngine{}
	enginesMu.Unlock()
}

func TestChecklistEngine_UnopenableDatabaseRunsInMemory(t *testing.T) {
	resetServices(t)
	t.Cleanup(func() {
		resetServices(t)
		db.SetPath("")
	})

	cfg := config.Default()
	cfg.DBPath = t.TempDir() // a directory cannot be opened as a database
	Configure(cfg)

	ctx := context.Background()
	engine := ChecklistEngine(ctx, catalogs.GoLive)

	if DatabaseError() == nil {
		t.Fatal("expected a database error")
	}
	if StateStore() != nil {
		t.Error("expected no state store without a database")
	}
	if !engine.Degraded() {
		t.Error("expected engine to report memory-only operation")
	}

	id := catalogs.GoLive.Tasks()[0].ID
	done, err := engine.Toggle(ctx, id)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !done || engine.CompletedCount() != 1 {
		t.Errorf("expected %s done in memory, got done=%v count=%d", id, done, engine.CompletedCount())
	}

	if _, err := LogService().ListLogs(ctx, primary.LogFilters{StorageKey: catalogs.GoLive.StorageKey}); !errors.Is(err, app.ErrHistoryUnavailable) {
		t.Errorf("expected ErrHistoryUnavailable, got %v", err)
	}
}

func TestChecklistEngine_InvalidPolicyFallsBackToReject(t *testing.T) {
	resetServices(t)
	t.Cleanup(func() {
		resetServices(t)
		db.SetPath("")
	})

	cfg := config.Default()
	cfg.DBPath = filepath.Join(t.TempDir(), "launchlist.db")
	cfg.UnknownIDs = "sometimes"
	Configure(cfg)

	ctx := context.Background()
	engine := ChecklistEngine(ctx, catalogs.GoLive)
	if engine.Degraded() {
		t.Error("expected a working database")
	}
	if _, err := engine.Toggle(ctx, "no-such-task"); !errors.Is(err, app.ErrUnknownTask) {
		t.Errorf("expected ErrUnknownTask, got %v", err)
	}
}
