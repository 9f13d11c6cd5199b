package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvickers/renderlab/internal/config"
)

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, config.DefaultItemHeight, cfg.List.ItemHeight)
	assert.Equal(t, config.DefaultBuffer, cfg.List.Buffer)
	assert.Equal(t, config.DefaultItemCount, cfg.List.Items)
	assert.Equal(t, config.DefaultCacheCapacity, cfg.Demo.CacheCapacity)
	assert.True(t, cfg.Demo.LazyLoad)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{"zero item height", func(c *config.Config) { c.List.ItemHeight = 0 }, config.ErrInvalidItemHeight},
		{"negative buffer", func(c *config.Config) { c.List.Buffer = -1 }, config.ErrInvalidBuffer},
		{"negative items", func(c *config.Config) { c.List.Items = -1 }, config.ErrInvalidItemCount},
		{"zero cache capacity", func(c *config.Config) { c.Demo.CacheCapacity = 0 }, config.ErrInvalidCacheCap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.New(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.New()
	cfg.List.ItemHeight = 40
	cfg.List.Buffer = 5
	cfg.Logging.Level = "debug"
	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, loaded.List.ItemHeight)
	assert.Equal(t, 5, loaded.List.Buffer)
	assert.Equal(t, "debug", loaded.Logging.Level)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("list:\n  buffer: 7\n"), 0600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.List.Buffer)
	assert.Equal(t, config.DefaultItemHeight, cfg.List.ItemHeight, "unset keys keep defaults")
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("list:\n  item_height: 0\n"), 0600))

	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrInvalidItemHeight)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("list: ["), 0600))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestGlobalConfig(t *testing.T) {
	original := config.GetGlobalConfig()
	defer config.SetGlobalConfig(original)

	cfg := config.New()
	cfg.List.Items = 42
	config.SetGlobalConfig(cfg)

	assert.Equal(t, 42, config.GetGlobalConfig().List.Items)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, config.InitLogger("debug", false))
	assert.Equal(t, "debug", config.GetLogger().GetLevel().String())

	// Unknown levels fall back to info rather than failing.
	require.NoError(t, config.InitLogger("bogus", false))
	assert.Equal(t, "info", config.GetLogger().GetLevel().String())
}

func TestInitLogger_FileOutput(t *testing.T) {
	original := config.GetGlobalConfig()
	defer config.SetGlobalConfig(original)
	defer config.CloseLogFile()

	logPath := filepath.Join(t.TempDir(), "renderlab.log")
	cfg := config.New()
	cfg.Logging.File = logPath
	config.SetGlobalConfig(cfg)

	require.NoError(t, config.InitLogger("info", true))
	logger := config.GetLogger()
	logger.Info().Msg("hello")
	config.CloseLogFile()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
