package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/example/launchlist/internal/config"
)

func TestBootstrap_RejectsInvalidUnknownIDPolicy(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.UnknownIDs = "sometimes"
	if err := config.SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	t.Chdir(dir)

	cmd := &cobra.Command{Use: "test"}
	AddGlobalFlags(cmd)

	err := Bootstrap(cmd, nil)
	if err == nil {
		t.Fatal("expected an error for an invalid unknown_ids value")
	}
	if !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("unexpected error: %v", err)
	}
}
