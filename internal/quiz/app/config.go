package app

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile         string        // Optional: path to SQLite database file (default: ./quiz.db)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)

	ClientOrigin string // Origin of the browser client, used for CORS and OAuth redirects

	// Session token secrets. Required, must differ: a token signed under one
	// family must never verify under the other.
	AccessSecret  string
	RefreshSecret string

	// Google federation. Optional; the /auth/google routes require all three.
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

func LoadConfig() Config {
	return Config{
		DatabaseFile:         getEnvOrDefault("DATABASE_FILE", "quiz.db"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		ClientOrigin:         getEnvOrDefault("CLIENT_ORIGIN", "http://localhost:3000"),
		AccessSecret:         os.Getenv("JWT_ACCESS_SECRET"),
		RefreshSecret:        os.Getenv("JWT_REFRESH_SECRET"),
		GoogleClientID:       os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:   os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:    os.Getenv("GOOGLE_REDIRECT_URL"),
	}
}

// Validate rejects configurations the service must not start with. Secret
// values never appear in the returned errors or anywhere in the logs.
func (c Config) Validate() error {
	if c.AccessSecret == "" {
		return errors.New("JWT_ACCESS_SECRET is required")
	}
	if c.RefreshSecret == "" {
		return errors.New("JWT_REFRESH_SECRET is required")
	}
	if c.AccessSecret == c.RefreshSecret {
		return errors.New("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ")
	}
	return nil
}

// GoogleEnabled reports whether the federation routes can be served.
func (c Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != "" && c.GoogleRedirectURL != ""
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

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
