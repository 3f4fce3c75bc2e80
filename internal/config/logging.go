package config

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

func (c LoggingConfig) validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return errors.Wrapf(err, "invalid log level %q", c.Level)
	}
	if c.Format != "json" && c.Format != "console" {
		return errors.Errorf("invalid log format %q", c.Format)
	}
	return nil
}

// Logger builds a zap logger writing to stderr. If verbose is true the
// level is forced to debug.
func (c LoggingConfig) Logger(verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", c.Level)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	if c.Format == "console" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	return logger, nil
}
