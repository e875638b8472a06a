package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// StorageConfig selects and configures the durable board record.
type StorageConfig struct {
	// Backend is "sqlite" or "redis".
	Backend string `mapstructure:"backend" yaml:"backend"`

	// Path is the SQLite database file.
	Path string `mapstructure:"path" yaml:"path"`

	// RedisAddr is the host:port of the Redis server.
	RedisAddr string `mapstructure:"redis_addr" yaml:"redis_addr"`

	// Key is the fixed record key the column collection is stored under.
	Key string `mapstructure:"key" yaml:"key"`
}

// NotificationConfig tunes the notification feed.
type NotificationConfig struct {
	DedupWindowMS int `mapstructure:"dedup_window_ms" yaml:"dedup_window_ms"`
	FeedCap       int `mapstructure:"feed_cap" yaml:"feed_cap"`
}

// LogConfig controls logrus output.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Storage       StorageConfig      `mapstructure:"storage" yaml:"storage"`
	Notifications NotificationConfig `mapstructure:"notifications" yaml:"notifications"`
	Log           LogConfig          `mapstructure:"log" yaml:"log"`
	Display       DisplayConfig      `mapstructure:"display" yaml:"display"`
}

// DefaultStorageKey is the record key used when none is configured.
const DefaultStorageKey = "kanban_columns_v1"

// configDir returns ~/.config/kanban, or the working directory when the
// home directory cannot be resolved.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "kanban")
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/kanban/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// DefaultAppConfig returns a sensible default configuration.
func DefaultAppConfig() *AppConfig {
	dir := configDir()
	return &AppConfig{
		Storage: StorageConfig{
			Backend:   BackendSQLite,
			Path:      filepath.Join(dir, "board.db"),
			RedisAddr: "127.0.0.1:6379",
			Key:       DefaultStorageKey,
		},
		Notifications: NotificationConfig{
			DedupWindowMS: 3000,
			FeedCap:       50,
		},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(dir, "kanban.log"),
		},
		Display: DisplayConfig{
			Theme: "default",
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// Environment variables prefixed with KANBAN_ override file values. If the
// file does not exist, defaults (plus environment overrides) are returned.
func LoadConfig(path string) (*AppConfig, error) {
	def := DefaultAppConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("kanban")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("storage.backend", def.Storage.Backend)
	v.SetDefault("storage.path", def.Storage.Path)
	v.SetDefault("storage.redis_addr", def.Storage.RedisAddr)
	v.SetDefault("storage.key", def.Storage.Key)
	v.SetDefault("notifications.dedup_window_ms", def.Notifications.DedupWindowMS)
	v.SetDefault("notifications.feed_cap", def.Notifications.FeedCap)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("display.theme", def.Display.Theme)

	if err := v.ReadInConfig(); err != nil {
		_, isPathErr := err.(*os.PathError)
		_, isNotFound := err.(viper.ConfigFileNotFoundError)
		if !isPathErr && !isNotFound {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail later at startup.
func (c *AppConfig) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path must not be empty for the sqlite backend")
		}
	case BackendRedis:
		if c.Storage.RedisAddr == "" {
			return fmt.Errorf("storage.redis_addr must not be empty for the redis backend")
		}
	default:
		return fmt.Errorf("unknown storage.backend %q", c.Storage.Backend)
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		return fmt.Errorf("storage.key must not be empty")
	}
	if c.Notifications.DedupWindowMS < 0 {
		return fmt.Errorf("notifications.dedup_window_ms must not be negative")
	}
	if c.Notifications.FeedCap <= 0 {
		return fmt.Errorf("notifications.feed_cap must be greater than 0")
	}
	return nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("storage", map[string]any{
		"backend":    cfg.Storage.Backend,
		"path":       cfg.Storage.Path,
		"redis_addr": cfg.Storage.RedisAddr,
		"key":        cfg.Storage.Key,
	})
	v.Set("notifications", map[string]any{
		"dedup_window_ms": cfg.Notifications.DedupWindowMS,
		"feed_cap":        cfg.Notifications.FeedCap,
	})
	v.Set("log", map[string]any{
		"level": cfg.Log.Level,
		"file":  cfg.Log.File,
	})
	v.Set("display", map[string]any{
		"theme": cfg.Display.Theme,
	})

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
