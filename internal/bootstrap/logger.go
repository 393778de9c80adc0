package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aldenjg/cornharvest/internal/config"
	"github.com/aldenjg/cornharvest/internal/logger"
)

// SetupLogger initializes slog from the config. With LogDir set the output is
// also mirrored into a timestamped file, and older files beyond the retention
// count are removed. The returned file is nil when no LogDir is configured;
// otherwise the caller must close it.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		isDevEnvironment(cfg.Environment),
	)

	var (
		out     io.Writer = os.Stdout
		logFile *os.File
	)

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
		}
		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(os.Stdout, f)
	}

	logger.InitLoggerWithWriter(loggerConfig, out)

	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)
	if logFile != nil {
		slog.Info(LogMsgLogFileOpened, "path", logFile.Name())
	}
	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"farm_size", cfg.FarmSize,
		"session_cache_size", cfg.SessionCacheSize,
		"session_ttl", cfg.SessionTTL,
		"drought_blocks_watering", cfg.DroughtBlocksWatering,
		"robbery_takes_money", cfg.RobberyTakesMoney,
		"auth_enabled", cfg.APIKey != "")

	return logFile, nil
}

func isDevEnvironment(env string) bool {
	return env == "dev" || env == "development"
}

// cleanupLogs keeps the newest keep log files in dir and removes the rest.
// Timestamped names sort chronologically.
func cleanupLogs(dir string, keep int) {
	entries, err := os.ReadDir(dir)
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

	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
