// Package config loads and validates the renderlab configuration and owns
// the global zerolog logger.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// configDirName is the per-user configuration directory under $HOME.
const configDirName = ".renderlab"

// configFileName is the configuration file name inside the config directory.
const configFileName = "config.yaml"

// Default list geometry.
const (
	// DefaultItemHeight is the per-item height in pixels.
	DefaultItemHeight = 60

	// DefaultBuffer is the overscan row count.
	DefaultBuffer = 2

	// DefaultItemCount is the demo dataset size.
	DefaultItemCount = 10000

	// DefaultCacheCapacity is the rendered-row cache size.
	DefaultCacheCapacity = 256
)

// Validation errors.
var (
	ErrInvalidItemHeight = errors.New("list.item_height must be >= 1")
	ErrInvalidBuffer     = errors.New("list.buffer must be >= 0")
	ErrInvalidItemCount  = errors.New("list.items must be >= 0")
	ErrInvalidCacheCap   = errors.New("demo.cache_capacity must be >= 1")
)

// Config is the root configuration document.
type Config struct {
	List    ListConfig    `yaml:"list"`
	Demo    DemoConfig    `yaml:"demo"`
	Logging LoggingConfig `yaml:"logging"`
}

// ListConfig configures the windowed renderer's geometry.
type ListConfig struct {
	// ItemHeight is the fixed per-item height in pixels.
	ItemHeight int `yaml:"item_height"`

	// Buffer is the overscan row count rendered past the visible range.
	Buffer int `yaml:"buffer"`

	// Items is the generated dataset size.
	Items int `yaml:"items"`
}

// DemoConfig configures demo-only behavior.
type DemoConfig struct {
	// CacheCapacity bounds the rendered-row LRU cache.
	CacheCapacity int `yaml:"cache_capacity"`

	// LazyLoad enables deferred description hydration.
	LazyLoad bool `yaml:"lazy_load"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	Level string `yaml:"level"`

	// File is an optional log file path; empty logs to stderr only.
	File string `yaml:"file"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		List: ListConfig{
			ItemHeight: DefaultItemHeight,
			Buffer:     DefaultBuffer,
			Items:      DefaultItemCount,
		},
		Demo: DemoConfig{
			CacheCapacity: DefaultCacheCapacity,
			LazyLoad:      true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks the configuration bounds.
func (c *Config) Validate() error {
	if c.List.ItemHeight < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidItemHeight, c.List.ItemHeight)
	}
	if c.List.Buffer < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBuffer, c.List.Buffer)
	}
	if c.List.Items < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidItemCount, c.List.Items)
	}
	if c.Demo.CacheCapacity < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCacheCap, c.Demo.CacheCapacity)
	}
	return nil
}

// Load reads and validates a config file. A missing file is not an error:
// defaults are returned so a fresh install works without `config init`.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from our own config dir or an explicit flag
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML, creating the parent directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultPath returns the per-user config file path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Global config instance guarded for concurrent access from signal timers.
var (
	globalConfig   = New()       //nolint:gochecknoglobals // Single config shared across commands
	globalConfigMu sync.RWMutex  //nolint:gochecknoglobals // Protects globalConfig
)

// GetGlobalConfig returns the process-wide config.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobalConfig replaces the process-wide config.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}
