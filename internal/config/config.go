// Package config builds the immutable process configuration from
// environment variables. It is loaded once at startup and passed
// explicitly to components; nothing reads the environment at call time.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Server identity, reported during the MCP handshake.
const (
	ServerName    = "find-bgm-server"
	ServerVersion = "0.1.0"
)

// Config holds every knob the server reads from the environment.
type Config struct {
	LogLevel           string
	CredentialsFile    string
	MaxDurationSeconds int
	SearchLimit        int
	MaxSearchTerms     int
	MaxResults         int
	MaxRecommendations int
	CachePath          string
	CacheTTL           time.Duration
}

// Load reads configuration from the environment, with a .env file as
// an optional source for local development. Missing variables fall
// back to defaults; malformed numeric values are an error.
func Load() (Config, error) {
	// Absent .env is the normal case in production.
	_ = godotenv.Load()

	cfg := Config{
		LogLevel:        getEnv("BGM_LOG_LEVEL", "info"),
		CredentialsFile: getEnv("BGM_CREDENTIALS_FILE", "credentials.json"),
		CachePath:       os.Getenv("BGM_CACHE_PATH"),
	}

	var err error
	if cfg.MaxDurationSeconds, err = getEnvInt("BGM_MAX_DURATION", 300); err != nil {
		return Config{}, err
	}
	if cfg.SearchLimit, err = getEnvInt("BGM_SEARCH_LIMIT", 10); err != nil {
		return Config{}, err
	}
	if cfg.MaxSearchTerms, err = getEnvInt("BGM_MAX_SEARCH_TERMS", 5); err != nil {
		return Config{}, err
	}
	if cfg.MaxResults, err = getEnvInt("BGM_MAX_RESULTS", 20); err != nil {
		return Config{}, err
	}
	if cfg.MaxRecommendations, err = getEnvInt("BGM_MAX_RECOMMENDATIONS", 5); err != nil {
		return Config{}, err
	}

	ttlMinutes, err := getEnvInt("BGM_CACHE_TTL_MINUTES", 60)
	if err != nil {
		return Config{}, err
	}
	cfg.CacheTTL = time.Duration(ttlMinutes) * time.Minute

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("config: %s must be positive, got %d", key, parsed)
	}
	return parsed, nil
}
