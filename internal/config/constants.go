package config

import "time"

const (
	// Configuration file paths
	ConfigPathNightTables = "configs/night/tables.json"
)

// Environment variable names
const (
	EnvSchemaVersion         = "ENV_SCHEMA_VERSION"
	EnvPort                  = "PORT"
	EnvLogLevel              = "LOG_LEVEL"
	EnvLogFormat             = "LOG_FORMAT"
	EnvEnvironment           = "ENVIRONMENT"
	EnvServiceName           = "SERVICE_NAME"
	EnvVersion               = "VERSION"
	EnvSessionCacheSize      = "SESSION_CACHE_SIZE"
	EnvSessionTTL            = "SESSION_TTL"
	EnvNightTablesPath       = "NIGHT_TABLES_PATH"
	EnvFarmSize              = "FARM_SIZE"
	EnvDroughtBlocksWatering = "DROUGHT_BLOCKS_WATERING"
	EnvRobberyTakesMoney     = "ROBBERY_TAKES_MONEY"
	EnvRandomSeed            = "RANDOM_SEED"
	EnvEventMaxRetries       = "EVENT_MAX_RETRIES"
	EnvEventRetryDelay       = "EVENT_RETRY_DELAY"
	EnvEventDeadLetterPath   = "EVENT_DEADLETTER_PATH"
	EnvShutdownTimeout       = "SHUTDOWN_TIMEOUT"
	EnvAPIKey                = "API_KEY"
	EnvTrustedProxies        = "TRUSTED_PROXIES"
	EnvRateLimit             = "RATE_LIMIT"
	EnvRateWindow            = "RATE_WINDOW"
	EnvLogDir                = "LOG_DIR"
	EnvJournalRetention      = "JOURNAL_RETENTION"
	EnvJournalCleanup        = "JOURNAL_CLEANUP_INTERVAL"
)

// Defaults
const (
	DefaultPort                = 8080
	DefaultLogLevel            = "info"
	DefaultLogFormat           = "text"
	DefaultEnvironment         = "dev"
	DefaultServiceName         = "cornharvest"
	DefaultVersion             = "dev"
	DefaultSessionCacheSize    = 1000
	DefaultSessionTTL          = 24 * time.Hour
	DefaultFarmSize            = 16
	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
	DefaultShutdownTimeout     = 10 * time.Second
	DefaultRateLimit           = 1000
	DefaultRateWindow          = 5 * time.Minute
	DefaultJournalRetention    = 24 * time.Hour
	DefaultJournalCleanup      = 10 * time.Minute
)
