// Package logging configures the shared zap logger for nexchat.
//
// The TUI owns the terminal, so diagnostics go to a log file under the
// config directory rather than stdout/stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultFileName is the log file name under <config dir>/logs.
const DefaultFileName = "nexchat.log"

// New builds a production logger writing to logFile.
// The parent directory is created if needed.
func New(logFile string, verbose bool) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logFile), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{logFile}
	cfg.ErrorOutputPaths = []string{logFile}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}

// NewFromConfigDir builds the default file logger under dir/logs.
// Returns a no-op logger when the log file cannot be set up, so callers
// never have to nil-check.
func NewFromConfigDir(dir string, verbose bool) *zap.Logger {
	logger, err := New(filepath.Join(dir, "logs", DefaultFileName), verbose)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
