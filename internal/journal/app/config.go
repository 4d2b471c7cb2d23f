package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer   string // Optional: issuer claim for tokens (default: arcana-journal)
	BaseURL  string // Optional: public base URL used in notification links (default: http://localhost:8080)
	TokenTTL time.Duration

	DatabaseFile string // Optional: path to SQLite database file (default: ./journal.db)

	RetentionDays         int           // Days a soft-deleted account is kept (default: 30)
	NotifyWindowDays      int           // Days before the purge the first reminder goes out (default: 7)
	FinalNotifyWindowDays int           // Days before the purge the last reminder goes out (default: 1)
	SweepInterval         time.Duration // How often the retention sweep runs (default: 24h)
	SweepEnabled          bool          // Optional: disable the sweeper entirely (default: true)
	DispatchTimeout       time.Duration // Per-notification delivery budget (default: 10s)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:   getEnvOrDefault("JOURNAL_ISSUER", "arcana-journal"),
		BaseURL:  getEnvOrDefault("JOURNAL_BASE_URL", "http://localhost:8080"),
		TokenTTL: getEnvDurationOrDefault("JOURNAL_TOKEN_TTL", time.Hour),

		DatabaseFile: getEnvOrDefault("JOURNAL_DATABASE_FILE", "journal.db"),

		RetentionDays:         getEnvIntOrDefault("JOURNAL_RETENTION_DAYS", 30),
		NotifyWindowDays:      getEnvIntOrDefault("JOURNAL_NOTIFY_WINDOW_DAYS", 7),
		FinalNotifyWindowDays: getEnvIntOrDefault("JOURNAL_FINAL_NOTIFY_WINDOW_DAYS", 1),
		SweepInterval:         getEnvDurationOrDefault("JOURNAL_SWEEP_INTERVAL", 24*time.Hour),
		SweepEnabled:          getEnvBoolOrDefault("JOURNAL_SWEEP_ENABLED", true),
		DispatchTimeout:       getEnvDurationOrDefault("JOURNAL_DISPATCH_TIMEOUT", 10*time.Second),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
