package ctxutil

import (
	"context"
	"testing"
)

func TestActorRoundTrip(t *testing.T) {
	ctx := WithActorID(context.Background(), "alice")
	if got := ActorFromContext(ctx); got != "alice" {
		t.Errorf("expected alice, got %q", got)
	}
	if got := ActorFromContext(context.Background()); got != "" {
		t.Errorf("expected empty actor, got %q", got)
	}
}

func TestActorFromEnv(t *testing.T) {
	t.Setenv("LAUNCHLIST_ACTOR", "")
	t.Setenv("USER", "bob")
	if got := ActorFromEnv(); got != "bob" {
		t.Errorf("expected USER fallback, got %q", got)
	}

	t.Setenv("LAUNCHLIST_ACTOR", "ci")
	if got := ActorFromEnv(); got != "ci" {
		t.Errorf("expected LAUNCHLIST_ACTOR to win, got %q", got)
	}
}
