package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DirName is the per-directory and per-user configuration directory.
const DirName = ".launchlist"

// Config represents the launchlist configuration
type Config struct {
	DBPath         string `json:"db_path,omitempty"`         // defaults to ~/.launchlist/launchlist.db
	ReportDir      string `json:"report_dir,omitempty"`      // defaults to the working directory
	DefaultCatalog string `json:"default_catalog,omitempty"` // catalog slug used when none is given
	UnknownIDs     string `json:"unknown_ids,omitempty"`     // "reject" or "allow"
	LogLevel       string `json:"log_level,omitempty"`       // debug, info, warn, error
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		DefaultCatalog: "go-live",
		UnknownIDs:     "reject",
		LogLevel:       "warn",
	}
}

// LoadConfig reads .launchlist/config.json from the specified directory.
// Missing fields keep their defaults.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, DirName, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Resolve loads the configuration for cwd.
// Resolution order: cwd, then home directory, then defaults.
func Resolve(cwd string) (*Config, string, error) {
	dirs := []string{cwd}
	if home, err := os.UserHomeDir(); err == nil && home != cwd {
		dirs = append(dirs, home)
	}

	for _, dir := range dirs {
		cfg, err := LoadConfig(dir)
		if err == nil {
			return cfg, filepath.Join(dir, DirName, "config.json"), nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, "", err
		}
	}

	return Default(), "", nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, DirName)
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", DirName, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(cfgDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// SlogLevel maps LogLevel to a slog level. Unknown values map to warn.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// ResolveReportDir returns the directory report files are written to.
func (c *Config) ResolveReportDir(cwd string) string {
	if c.ReportDir == "" {
		return cwd
	}
	if strings.HasPrefix(c.ReportDir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, c.ReportDir[2:])
		}
	}
	return c.ReportDir
}
