// Package wire provides dependency injection for the launchlist application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"sync"

	cliadapter "github.com/example/launchlist/internal/adapters/cli"
	"github.com/example/launchlist/internal/adapters/filesystem"
	"github.com/example/launchlist/internal/adapters/sqlite"
	"github.com/example/launchlist/internal/app"
	"github.com/example/launchlist/internal/config"
	"github.com/example/launchlist/internal/core/checklist"
	"github.com/example/launchlist/internal/db"
	"github.com/example/launchlist/internal/events"
	"github.com/example/launchlist/internal/models"
	"github.com/example/launchlist/internal/ports/primary"
	"github.com/example/launchlist/internal/ports/secondary"
)

var (
	cfg        = config.Default()
	database   *sql.DB
	dbErr      error
	stateStore secondary.StateStore
	eventRepo  secondary.EventLogRepository
	logWriter  secondary.LogWriter
	logService primary.LogService
	bus        *events.EventBus
	once       sync.Once

	enginesMu sync.Mutex
	engines   = map[string]*app.ChecklistEngine{}
)

// Configure sets the configuration used by initServices.
// It must be called before any service is requested.
func Configure(c *config.Config) {
	cfg = c
	if c.DBPath != "" {
		db.SetPath(c.DBPath)
	}
}

// Config returns the active configuration.
func Config() *config.Config {
	return cfg
}

// initServices initializes all shared dependencies.
// This is called once via sync.Once. A database that cannot be opened leaves
// the persistence adapters nil and engines run in memory.
func initServices() {
	bus = events.NewEventBus()

	database, dbErr = db.GetDB()
	if dbErr != nil {
		slog.Error("database unavailable, progress will not be saved", "error", dbErr)
		logService = app.NewLogService(nil)
		return
	}

	// Secondary adapters with injected DB
	stateStore = sqlite.NewStateStore(database)
	repo := sqlite.NewEventLogRepository(database)
	eventRepo = repo
	logWriter = sqlite.NewLogWriterAdapter(repo)

	logService = app.NewLogService(eventRepo)
}

// DatabaseError returns the error that kept the database from opening, if any.
func DatabaseError() error {
	once.Do(initServices)
	return dbErr
}

// StateStore returns the singleton key-value store.
func StateStore() secondary.StateStore {
	once.Do(initServices)
	return stateStore
}

// EventBus returns the singleton event bus.
func EventBus() *events.EventBus {
	once.Do(initServices)
	return bus
}

// ChecklistEngine returns the engine of a catalog, loading its state on first use.
func ChecklistEngine(ctx context.Context, catalog *models.Catalog) *app.ChecklistEngine {
	once.Do(initServices)

	enginesMu.Lock()
	defer enginesMu.Unlock()

	if e, ok := engines[catalog.Slug]; ok {
		return e
	}

	policy, err := checklist.ParsePolicy(cfg.UnknownIDs)
	if err != nil {
		slog.Warn("ignoring invalid unknown_ids setting", "error", err, "using", checklist.PolicyReject)
		policy = checklist.PolicyReject
	}

	e := app.NewChecklistEngine(ctx, catalog, catalog.StorageKey, stateStore, logWriter, bus, policy)
	if dbErr != nil {
		e.MarkDegraded()
	}
	engines[catalog.Slug] = e
	return e
}

// ReportService returns a report service bound to a catalog's engine.
func ReportService(ctx context.Context, catalog *models.Catalog) primary.ReportService {
	engine := ChecklistEngine(ctx, catalog)
	return app.NewReportService(engine, catalog, filesystem.NewReportWriter(), filesystem.NewPrintLauncher())
}

// LogService returns the singleton LogService instance.
func LogService() primary.LogService {
	once.Do(initServices)
	return logService
}

// ChecklistAdapter returns a new ChecklistAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func ChecklistAdapter(ctx context.Context, catalog *models.Catalog) *cliadapter.ChecklistAdapter {
	return ChecklistAdapterWithOutput(ctx, catalog, os.Stdout)
}

// ChecklistAdapterWithOutput returns a new ChecklistAdapter writing to the given output.
func ChecklistAdapterWithOutput(ctx context.Context, catalog *models.Catalog, out io.Writer) *cliadapter.ChecklistAdapter {
	return cliadapter.NewChecklistAdapter(ChecklistEngine(ctx, catalog), catalog, out)
}

// LogAdapter returns a new LogAdapter writing to stdout.
func LogAdapter() *cliadapter.LogAdapter {
	return cliadapter.NewLogAdapter(LogService(), os.Stdout)
}

// Shutdown closes engines, the event bus and the database.
func Shutdown() {
	enginesMu.Lock()
	for _, e := range engines {
		e.Close()
	}
	enginesMu.Unlock()

	if bus != nil {
		bus.Close()
	}
	if err := db.Close(); err != nil {
		slog.Warn("failed to close database", "error", err)
	}
}
