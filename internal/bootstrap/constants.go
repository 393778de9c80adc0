package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "farm_%s.log"

	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgStartingService     = "Starting corn harvest service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgLogFileOpened       = "Mirroring logs to file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	LogMsgJournalSubscribed          = "Session journal subscribed"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedSubscribeJournal     = "failed to subscribe session journal"
)

// =============================================================================
// Background Jobs
// =============================================================================

const (
	// BackgroundWorkers is the worker pool size for housekeeping jobs
	BackgroundWorkers = 1

	// BackgroundQueueSize bounds queued housekeeping jobs
	BackgroundQueueSize = 8

	JobNameJournalCleanup = "journal_cleanup"

	LogMsgBackgroundJobsStarted = "Background jobs started"
)

// =============================================================================
// Night Tables
// =============================================================================

const (
	LogMsgNightTablesLoaded  = "Night tables loaded"
	LogMsgNightTablesDefault = "Using built-in night tables"
	ErrMsgFailedLoadTables   = "failed to load night tables"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgServiceShutdownFailed      = " service shutdown failed"
	LogMsgStoppingBackgroundJobs     = "Stopping background jobs..."

	ServiceNameGame = "game"
)
