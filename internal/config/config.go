package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Sorting algorithms selectable from the configuration.
const (
	AlgorithmRecursive = "recursive"
	AlgorithmBottomUp  = "bottomup"
	AlgorithmParallel  = "parallel"
)

// Algorithms returns the names of the supported sorting algorithms.
func Algorithms() []string {
	return []string{AlgorithmRecursive, AlgorithmBottomUp, AlgorithmParallel}
}

// Config holds the mergesort command configuration.
type Config struct {
	// Algorithm used by the sort command.
	Algorithm string `yaml:"algorithm"`

	Parallel  ParallelConfig  `yaml:"parallel"`
	SelfCheck SelfCheckConfig `yaml:"selfcheck"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ParallelConfig configures the parallel algorithm. A zero Threshold and a
// nil MaxDepth select the library defaults. A MaxDepth of 0 disables
// concurrency.
type ParallelConfig struct {
	Threshold int  `yaml:"threshold"`
	MaxDepth  *int `yaml:"max_depth,omitempty"`
}

// SelfCheckConfig configures the check command.
type SelfCheckConfig struct {
	// Algorithms to verify. Empty means all of them.
	Algorithms []string `yaml:"algorithms"`
	// Cases is an optional YAML file holding additional cases.
	Cases string `yaml:"cases"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Algorithm: AlgorithmRecursive,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// default configuration. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "failed to read config")
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrap(err, "failed to parse config")
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config")
	}

	return nil
}

// Validate reports the first invalid setting found in the configuration.
func (c *Config) Validate() error {
	if !isAlgorithm(c.Algorithm) {
		return errors.Errorf("unknown algorithm %q", c.Algorithm)
	}
	for _, name := range c.SelfCheck.Algorithms {
		if !isAlgorithm(name) {
			return errors.Errorf("unknown selfcheck algorithm %q", name)
		}
	}
	if c.Parallel.Threshold < 0 {
		return errors.Errorf("invalid parallel threshold %d", c.Parallel.Threshold)
	}
	if d := c.Parallel.MaxDepth; d != nil && *d < 0 {
		return errors.Errorf("invalid parallel max depth %d", *d)
	}
	return c.Logging.validate()
}

// applyEnvOverrides overrides settings with MERGESORT_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("MERGESORT_ALGORITHM"); v != "" {
		c.Algorithm = v
	}
	if v := os.Getenv("MERGESORT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MERGESORT_PARALLEL_THRESHOLD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "invalid MERGESORT_PARALLEL_THRESHOLD")
		}
		c.Parallel.Threshold = n
	}
	return nil
}

func isAlgorithm(name string) bool {
	for _, v := range Algorithms() {
		if v == name {
			return true
		}
	}
	return false
}
