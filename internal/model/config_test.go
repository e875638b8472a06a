package model

import (
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Storage.Backend != BackendSQLite {
		t.Fatalf("expected sqlite backend, got %q", cfg.Storage.Backend)
	}
	if cfg.Storage.Key != DefaultStorageKey {
		t.Fatalf("expected default key, got %q", cfg.Storage.Key)
	}
	if cfg.Notifications.FeedCap != 50 || cfg.Notifications.DedupWindowMS != 3000 {
		t.Fatalf("unexpected notification defaults: %+v", cfg.Notifications)
	}
}

func TestSaveThenLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultAppConfig()
	cfg.Storage.Backend = BackendRedis
	cfg.Storage.RedisAddr = "10.0.0.1:6380"
	cfg.Notifications.FeedCap = 10

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if got.Storage.Backend != BackendRedis || got.Storage.RedisAddr != "10.0.0.1:6380" {
		t.Fatalf("unexpected storage config: %+v", got.Storage)
	}
	if got.Notifications.FeedCap != 10 {
		t.Fatalf("unexpected feed cap: %d", got.Notifications.FeedCap)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("KANBAN_STORAGE_KEY", "board_from_env")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Storage.Key != "board_from_env" {
		t.Fatalf("expected env override, got %q", cfg.Storage.Key)
	}
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.Storage.Backend = "s3"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
