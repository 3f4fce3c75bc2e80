package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, AlgorithmRecursive, cfg.Algorithm)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("MERGESORT_ALGORITHM", "")
	t.Setenv("MERGESORT_LOG_LEVEL", "")
	t.Setenv("MERGESORT_PARALLEL_THRESHOLD", "")

	path := filepath.Join(t.TempDir(), "nested", "mergesort.yaml")

	cfg := DefaultConfig()
	cfg.Algorithm = AlgorithmParallel
	cfg.Parallel.Threshold = 512
	cfg.SelfCheck.Algorithms = []string{AlgorithmBottomUp}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("MERGESORT_ALGORITHM", "")
	t.Setenv("MERGESORT_LOG_LEVEL", "")
	t.Setenv("MERGESORT_PARALLEL_THRESHOLD", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_MaxDepth(t *testing.T) {
	t.Setenv("MERGESORT_ALGORITHM", "")
	t.Setenv("MERGESORT_LOG_LEVEL", "")
	t.Setenv("MERGESORT_PARALLEL_THRESHOLD", "")
	dir := t.TempDir()

	path := filepath.Join(dir, "zero.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parallel:\n  max_depth: 0\n"), 0644))
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Parallel.MaxDepth)
	assert.Equal(t, 0, *cfg.Parallel.MaxDepth)

	path = filepath.Join(dir, "unset.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parallel:\n  threshold: 64\n"), 0644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Parallel.MaxDepth)
	assert.Equal(t, 64, cfg.Parallel.Threshold)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: [unterminated"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("MERGESORT_ALGORITHM", AlgorithmBottomUp)
	t.Setenv("MERGESORT_LOG_LEVEL", "debug")
	t.Setenv("MERGESORT_PARALLEL_THRESHOLD", "128")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmBottomUp, cfg.Algorithm)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 128, cfg.Parallel.Threshold)

	t.Setenv("MERGESORT_PARALLEL_THRESHOLD", "many")
	_, err = Load("")
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"default", func(c *Config) {}, true},
		{"parallel", func(c *Config) { c.Algorithm = AlgorithmParallel }, true},
		{"unknown algorithm", func(c *Config) { c.Algorithm = "quick" }, false},
		{"unknown selfcheck algorithm", func(c *Config) { c.SelfCheck.Algorithms = []string{"heap"} }, false},
		{"negative threshold", func(c *Config) { c.Parallel.Threshold = -1 }, false},
		{"zero depth", func(c *Config) { c.Parallel.MaxDepth = new(int) }, true},
		{"negative depth", func(c *Config) { d := -1; c.Parallel.MaxDepth = &d }, false},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, false},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLoggingConfig_Logger(t *testing.T) {
	logger, err := LoggingConfig{Level: "warn", Format: "json"}.Logger(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = LoggingConfig{Level: "warn", Format: "console"}.Logger(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = LoggingConfig{Level: "loud", Format: "json"}.Logger(false)
	assert.Error(t, err)
}
