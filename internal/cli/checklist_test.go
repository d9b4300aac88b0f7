package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	cliadapter "github.com/example/launchlist/internal/adapters/cli"
	"github.com/example/launchlist/internal/app"
	"github.com/example/launchlist/internal/catalogs"
	"github.com/example/launchlist/internal/events"
)

func init() {
	color.NoColor = true
}

func TestCelebrate_DrainsWithoutBlocking(t *testing.T) {
	bus := events.NewEventBus()
	defer bus.Close()

	ch := bus.Subscribe(events.TopicChecklist, 4)
	bus.Publish(events.TopicChecklist, events.TaskToggledEvent{Key: "k", TaskID: "t1", Done: true})
	bus.Publish(events.TopicChecklist, events.ChecklistCompletedEvent{Key: "k", Catalog: "abc", Total: 1, Timestamp: time.Now()})

	var out bytes.Buffer
	done := make(chan struct{})
	go func() {
		celebrate(ch, &out)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("celebrate blocked on an idle channel")
	}

	select {
	case ev := <-ch:
		t.Errorf("expected channel to be drained, got %v", ev.EventType())
	default:
	}
	if !strings.Contains(out.String(), "All 1 tasks complete. abc is ready to launch!") {
		t.Errorf("expected completion banner, got %q", out.String())
	}
}

func TestToggleTasks_LongArgumentListKeepsCompletion(t *testing.T) {
	ctx := context.Background()
	bus := events.NewEventBus()
	defer bus.Close()

	catalog := catalogs.GoLive
	engine := app.NewChecklistEngine(ctx, catalog, "", nil, nil, bus, "")
	adapter := cliadapter.NewChecklistAdapter(engine, catalog, io.Discard)

	// Enough toggles to overflow one subscription buffer before the checklist completes.
	first := catalog.TaskIDs()[0]
	var ids []string
	for i := 0; i < 2*events.DefaultBuffer; i++ {
		ids = append(ids, first)
	}
	ids = append(ids, catalog.TaskIDs()...)

	notifications := bus.Subscribe(events.TopicChecklist, 0)
	defer bus.Unsubscribe(events.TopicChecklist, notifications)

	var out bytes.Buffer
	if err := toggleTasks(ctx, adapter, notifications, ids, &out); err != nil {
		t.Fatalf("toggleTasks failed: %v", err)
	}

	if !engine.IsComplete() {
		t.Fatal("expected checklist to be complete")
	}
	if n := strings.Count(out.String(), "is ready to launch!"); n != 1 {
		t.Errorf("expected exactly one completion banner, got %d in %q", n, out.String())
	}
}

func TestToggleTasks_StopsOnError(t *testing.T) {
	ctx := context.Background()
	catalog := catalogs.GoLive
	engine := app.NewChecklistEngine(ctx, catalog, "", nil, nil, nil, "")
	adapter := cliadapter.NewChecklistAdapter(engine, catalog, io.Discard)

	ids := []string{catalog.TaskIDs()[0], "no-such-task", catalog.TaskIDs()[1]}
	if err := toggleTasks(ctx, adapter, nil, ids, io.Discard); err == nil {
		t.Fatal("expected an error for an unknown id")
	}
	if engine.CompletedCount() != 1 {
		t.Errorf("expected toggling to stop at the unknown id, got %d completed", engine.CompletedCount())
	}
}
