package bootstrap

import "time"

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0o755

	// LogFilePermission is the permission for session log files
	LogFilePermission = 0o644
)

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// ShutdownTimeout bounds graceful shutdown
const ShutdownTimeout = 10 * time.Second

// Log messages
const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStarting             = "Starting BrandishEconomy"
	LogMsgConfigLoaded         = "Configuration loaded"
	LogMsgMigrationsApplied    = "Database migrations applied"
	LogMsgCatalogSynced        = "Item catalog synced"
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
	LogMsgServerStopped        = "Server stopped"
)
