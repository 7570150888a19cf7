package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"eventdeck/internal/platform/config"
)

func TestNewRequiresVault(t *testing.T) {
	t.Parallel()
	if _, err := config.New(""); err == nil {
		t.Fatalf("empty vault path should fail")
	}
	cfg, err := config.New("/tmp/vault")
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.DBPath != filepath.Join("/tmp/vault", ".eventdeck", "eventdeck.db") {
		t.Fatalf("unexpected db path %s", cfg.DBPath)
	}
	if cfg.MatchStore != config.MatchStoreSQLite || !cfg.Location.Enabled {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadAppliesEnvironmentOverrides(t *testing.T) {
	vault := t.TempDir()
	t.Setenv("EVENTDECK_MATCH_STORE", "memory")
	t.Setenv("EVENTDECK_FEEDS", "https://a.example/rss,https://b.example/atom")
	t.Setenv("EVENTDECK_LOCATION_ENABLED", "false")
	t.Setenv("EVENTDECK_LOCATION_TIMEOUT", "750ms")

	cfg, err := config.Load(vault)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.MatchStore != config.MatchStoreMemory {
		t.Fatalf("expected memory store, got %s", cfg.MatchStore)
	}
	if len(cfg.Feeds) != 2 || cfg.Feeds[1] != "https://b.example/atom" {
		t.Fatalf("unexpected feeds %v", cfg.Feeds)
	}
	if cfg.Location.Enabled {
		t.Fatalf("location should be disabled")
	}
	if cfg.Location.Timeout != 750*time.Millisecond {
		t.Fatalf("unexpected timeout %s", cfg.Location.Timeout)
	}
	if cfg.VaultPath != vault {
		t.Fatalf("vault path must be kept, got %s", cfg.VaultPath)
	}
}

func TestLoadReadsDotEnvFromVault(t *testing.T) {
	vault := t.TempDir()
	if err := os.WriteFile(filepath.Join(vault, ".env"), []byte("EVENTDECK_LOG_LEVEL=debug\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("EVENTDECK_LOG_LEVEL") })

	cfg, err := config.Load(vault)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level from .env, got %s", cfg.LogLevel)
	}
}

func TestLoadRejectsUnknownMatchStore(t *testing.T) {
	t.Setenv("EVENTDECK_MATCH_STORE", "redis")
	if _, err := config.Load(t.TempDir()); err == nil {
		t.Fatalf("unknown match store should fail")
	}
}
