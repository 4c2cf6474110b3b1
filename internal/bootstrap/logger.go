package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/osse101/BrandishEconomy_Go/internal/config"
	"github.com/osse101/BrandishEconomy_Go/internal/logger"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SetupLogger initializes slog from the configuration.
// With LogDir set, output also goes to a timestamped session file and older sessions are pruned.
// The returned closer releases the log file; it is never nil.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	var closer io.Closer = nopCloser{}

	if cfg.LogDir == "" {
		logger.InitLogger(cfg.LoggerConfig())
	} else {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("failed to create logs directory: %w", err)
		}

		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		logFile, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger.InitLoggerWithWriter(cfg.LoggerConfig(), io.MultiWriter(os.Stdout, logFile))
		closer = logFile
	}

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat, "log_dir", cfg.LogDir)
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"auth_enabled", cfg.APIKey != "")

	return closer, nil
}

// cleanupLogs removes the oldest log files so that at most keep remain.
// Session names sort chronologically.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= keep {
		return
	}

	slices.Sort(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn("Failed to delete old log file", "file", name, "error", err)
		}
	}
}
