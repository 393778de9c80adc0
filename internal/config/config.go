package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	// Session store
	SessionCacheSize int           `validate:"min=1"`
	SessionTTL       time.Duration `validate:"min=1m"`

	// Game rules
	NightTablesPath       string // empty uses the built-in odds
	FarmSize              int    `validate:"min=1,max=100"`
	DroughtBlocksWatering bool
	RobberyTakesMoney     bool
	RandomSeed            int64 // 0 seeds every session from the clock

	// Event publishing
	EventMaxRetries     int           `validate:"min=0,max=20"`
	EventRetryDelay     time.Duration `validate:"min=1ms"`
	EventDeadLetterPath string        `validate:"required"`

	// HTTP surface
	APIKey         string // empty leaves the farm API open
	TrustedProxies []string
	RateLimit      int           `validate:"min=1"`
	RateWindow     time.Duration `validate:"min=1s"`

	// Session journal
	JournalRetention       time.Duration `validate:"min=1m"`
	JournalCleanupInterval time.Duration `validate:"min=1s"`

	// LogDir mirrors logs into rotating session files when set
	LogDir string

	ShutdownTimeout time.Duration `validate:"min=1s"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),

		SessionCacheSize: getEnvAsInt(EnvSessionCacheSize, DefaultSessionCacheSize),
		SessionTTL:       getEnvAsDuration(EnvSessionTTL, DefaultSessionTTL),

		NightTablesPath:       getEnv(EnvNightTablesPath, ""),
		FarmSize:              getEnvAsInt(EnvFarmSize, DefaultFarmSize),
		DroughtBlocksWatering: getEnvAsBool(EnvDroughtBlocksWatering, false),
		RobberyTakesMoney:     getEnvAsBool(EnvRobberyTakesMoney, false),

		EventMaxRetries:     getEnvAsInt(EnvEventMaxRetries, DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration(EnvEventRetryDelay, DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv(EnvEventDeadLetterPath, DefaultEventDeadLetterPath),

		APIKey:         getEnv(EnvAPIKey, ""),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),
		RateLimit:      getEnvAsInt(EnvRateLimit, DefaultRateLimit),
		RateWindow:     getEnvAsDuration(EnvRateWindow, DefaultRateWindow),

		JournalRetention:       getEnvAsDuration(EnvJournalRetention, DefaultJournalRetention),
		JournalCleanupInterval: getEnvAsDuration(EnvJournalCleanup, DefaultJournalCleanup),

		LogDir: getEnv(EnvLogDir, ""),

		ShutdownTimeout: getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if raw := getEnv(EnvRandomSeed, ""); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RANDOM_SEED value: %w", err)
		}
		cfg.RandomSeed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field ranges
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
