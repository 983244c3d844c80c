package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile string // Optional: path to SQLite database file (default: ./hub.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)
	UploadsDir   string // Optional: directory for uploaded audio files (default: ./uploads)

	BaseURL string // Public origin used in reset and share links (default: http://localhost:8080)

	SessionTTL time.Duration // Session lifetime (default: 30 days)
	ResetTTL   time.Duration // Password reset link lifetime (default: 1 hour)
	ShareTTL   time.Duration // Share link lifetime (default: 30 days)

	SMTPAddr     string // Optional: SMTP relay host:port; empty means log-only mail in dev
	SMTPFrom     string // From address for outgoing mail
	SMTPUsername string // Optional SMTP AUTH username
	SMTPPassword string // Optional SMTP AUTH password

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile: getEnvOrDefault("HUB_DATABASE_FILE", "hub.db"),
		PepperFile:   getEnvOrDefault("HUB_PEPPER_FILE", "pepper"),
		UploadsDir:   getEnvOrDefault("HUB_UPLOADS_DIR", "uploads"),
		BaseURL:      getEnvOrDefault("HUB_BASE_URL", "http://localhost:8080"),

		SessionTTL: getEnvDurationOrDefault("HUB_SESSION_TTL", 30*24*time.Hour),
		ResetTTL:   getEnvDurationOrDefault("HUB_RESET_TTL", time.Hour),
		ShareTTL:   getEnvDurationOrDefault("HUB_SHARE_TTL", 30*24*time.Hour),

		SMTPAddr:     os.Getenv("HUB_SMTP_ADDR"),
		SMTPFrom:     getEnvOrDefault("HUB_SMTP_FROM", "no-reply@localhost"),
		SMTPUsername: os.Getenv("HUB_SMTP_USERNAME"),
		SMTPPassword: os.Getenv("HUB_SMTP_PASSWORD"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
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

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
