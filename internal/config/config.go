package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"textlens/internal/session"
)

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort   string
	LogLevel  slog.Level
	LogFormat string
	// DataDir is the directory relative catalog paths resolve against.
	DataDir     string
	CatalogPath string
	DBPath      string
	// SearchPageSize is the page size new sessions start with.
	SearchPageSize int
	SessionTTL     time.Duration
	Catalog        *Catalog
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or a parent directory, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		APIPort:     getEnv("API_PORT", "9000"),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", LogFormatText)),
		DataDir:     getEnv("DATA_DIR", "."),
		CatalogPath: getEnv("CATALOG_PATH", ""),
		DBPath:      getEnv("DB_PATH", ":memory:"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}
	if cfg.LogFormat != LogFormatText && cfg.LogFormat != LogFormatJSON {
		return nil, fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", LogFormatText, LogFormatJSON, cfg.LogFormat)
	}

	pageSize, err := strconv.Atoi(getEnv("SEARCH_PAGE_SIZE", "100"))
	if err != nil {
		return nil, fmt.Errorf("SEARCH_PAGE_SIZE must be a valid integer: %w", err)
	}
	if !session.ValidPageSize(pageSize) {
		return nil, fmt.Errorf("SEARCH_PAGE_SIZE must be one of %v, got %d", session.PageSizes, pageSize)
	}
	cfg.SearchPageSize = pageSize

	ttl, err := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("SESSION_TTL_MINUTES must be a valid integer: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("SESSION_TTL_MINUTES must be greater than 0")
	}
	cfg.SessionTTL = time.Duration(ttl) * time.Minute

	catalog, err := LoadCatalog(cfg.CatalogPath, cfg.DataDir)
	if err != nil {
		return nil, err
	}
	cfg.Catalog = catalog

	if cfg.DBPath != ":memory:" && !strings.HasPrefix(cfg.DBPath, "file:") {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	return cfg, nil
}

// loadDotEnv loads .env from the working directory, then from the nearest
// parent directory that has one (up to five levels).
func loadDotEnv() {
	_ = godotenv.Load()

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

// NewLogger builds the process logger for cfg.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	var handler slog.Handler
	if c.LogFormat == LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
