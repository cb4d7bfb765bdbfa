package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"photospro/internal/notify"
)

// Config holds all configuration for the application.
type Config struct {
	DBPath    string
	APIPort   string
	LogLevel  slog.Level
	LogFormat string

	// StoreValidate turns on rating and duration checks on every save.
	StoreValidate bool

	NotifyHour       int
	NotifyMinute     int
	NotifyPermission notify.PermissionStatus
	// NotifyGrant is the answer to a permission request while the status is
	// still notDetermined.
	NotifyGrant bool
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or a parent, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		DBPath:    getEnv("DB_PATH", "./data/photospro.db"),
		APIPort:   getEnv("API_PORT", "9000"),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	port, err := strconv.Atoi(cfg.APIPort)
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("API_PORT must be a port number, got %q", cfg.APIPort)
	}

	if cfg.StoreValidate, err = getBool("STORE_VALIDATE", false); err != nil {
		return nil, err
	}
	if cfg.NotifyGrant, err = getBool("NOTIFY_GRANT", true); err != nil {
		return nil, err
	}
	if cfg.NotifyHour, err = getInt("NOTIFY_HOUR", 10, 0, 23); err != nil {
		return nil, err
	}
	if cfg.NotifyMinute, err = getInt("NOTIFY_MINUTE", 0, 0, 59); err != nil {
		return nil, err
	}
	if cfg.NotifyPermission, err = notify.ParsePermission(getEnv("NOTIFY_PERMISSION", string(notify.PermissionNotDetermined))); err != nil {
		return nil, fmt.Errorf("NOTIFY_PERMISSION: %w", err)
	}

	// Create the data directory if it doesn't exist
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// loadDotEnv loads the nearest .env file, searching the working directory
// and up to four parents. Missing files are ignored.
func loadDotEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ { // Limit search depth
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return // Reached filesystem root
		}
		dir = parent
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return v, nil
}

func getInt(key string, defaultValue, lo, hi int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("%s must be between %d and %d, got %d", key, lo, hi, v)
	}
	return v, nil
}
