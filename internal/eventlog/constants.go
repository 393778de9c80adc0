package eventlog

import "time"

// Journal sizing
const (
	// MaxEntriesPerSession bounds one session's journal; the oldest entries go first
	MaxEntriesPerSession = 500

	DefaultJournalLimit = 100

	// DefaultRetention is how long entries survive the cleanup job
	DefaultRetention = 24 * time.Hour
)

// Log messages - service events
const (
	LogMsgEventMissingSession = "Event has no session id, skipping journal"
	LogMsgFailedToLogEvent    = "Failed to append event to journal"
	LogMsgEventLogged         = "Event appended to journal"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting journal cleanup job"
	LogMsgCleanupJobFailed    = "Journal cleanup failed"
	LogMsgCleanupJobCompleted = "Journal cleanup completed"
)

// Log field keys
const (
	LogFieldType         = "type"
	LogFieldSessionID    = "session_id"
	LogFieldError        = "error"
	LogFieldRetention    = "retention"
	LogFieldDuration     = "duration"
	LogFieldDeletedCount = "deleted_count"
)
