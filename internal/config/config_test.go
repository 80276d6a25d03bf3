package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"textlens/internal/session"
)

var envVars = []string{
	"API_PORT", "LOG_LEVEL", "LOG_FORMAT", "DATA_DIR", "CATALOG_PATH",
	"DB_PATH", "SEARCH_PAGE_SIZE", "SESSION_TTL_MINUTES",
}

// clearEnv unsets every variable Load reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setupEnv    func(*testing.T)
		wantErr     bool
		checkConfig func(*testing.T, *Config)
	}{
		{
			name:     "defaults",
			setupEnv: func(t *testing.T) {},
			checkConfig: func(t *testing.T, cfg *Config) {
				if cfg.APIPort != "9000" {
					t.Errorf("APIPort = %q, want 9000", cfg.APIPort)
				}
				if cfg.LogLevel != slog.LevelInfo {
					t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
				}
				if cfg.LogFormat != LogFormatText {
					t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
				}
				if cfg.DBPath != ":memory:" {
					t.Errorf("DBPath = %q, want :memory:", cfg.DBPath)
				}
				if cfg.SearchPageSize != 100 {
					t.Errorf("SearchPageSize = %d, want 100", cfg.SearchPageSize)
				}
				if cfg.SessionTTL != time.Hour {
					t.Errorf("SessionTTL = %v, want 1h", cfg.SessionTTL)
				}
				if cfg.Catalog == nil || len(cfg.Catalog.Markers) != 4 {
					t.Errorf("Catalog not defaulted: %+v", cfg.Catalog)
				}
			},
		},
		{
			name: "custom values",
			setupEnv: func(t *testing.T) {
				t.Setenv("API_PORT", "8081")
				t.Setenv("LOG_LEVEL", "debug")
				t.Setenv("LOG_FORMAT", "JSON")
				t.Setenv("DATA_DIR", t.TempDir())
				t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "nested", "textlens.db"))
				t.Setenv("SEARCH_PAGE_SIZE", "25")
				t.Setenv("SESSION_TTL_MINUTES", "5")
			},
			checkConfig: func(t *testing.T, cfg *Config) {
				if cfg.APIPort != "8081" {
					t.Errorf("APIPort = %q, want 8081", cfg.APIPort)
				}
				if cfg.LogLevel != slog.LevelDebug {
					t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
				}
				if cfg.LogFormat != LogFormatJSON {
					t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
				}
				if cfg.SearchPageSize != 25 {
					t.Errorf("SearchPageSize = %d, want 25", cfg.SearchPageSize)
				}
				if cfg.SessionTTL != 5*time.Minute {
					t.Errorf("SessionTTL = %v, want 5m", cfg.SessionTTL)
				}
				if _, err := os.Stat(filepath.Dir(cfg.DBPath)); err != nil {
					t.Errorf("database directory not created: %v", err)
				}
			},
		},
		{
			name: "invalid log level",
			setupEnv: func(t *testing.T) {
				t.Setenv("LOG_LEVEL", "loud")
			},
			wantErr: true,
		},
		{
			name: "invalid log format",
			setupEnv: func(t *testing.T) {
				t.Setenv("LOG_FORMAT", "xml")
			},
			wantErr: true,
		},
		{
			name: "page size not allowed",
			setupEnv: func(t *testing.T) {
				t.Setenv("SEARCH_PAGE_SIZE", "30")
			},
			wantErr: true,
		},
		{
			name: "page size not a number",
			setupEnv: func(t *testing.T) {
				t.Setenv("SEARCH_PAGE_SIZE", "lots")
			},
			wantErr: true,
		},
		{
			name: "non-positive ttl",
			setupEnv: func(t *testing.T) {
				t.Setenv("SESSION_TTL_MINUTES", "0")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			tt.setupEnv(t)

			cfg, err := Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.checkConfig != nil {
				tt.checkConfig(t, cfg)
			}
		})
	}
}

func TestLoad_SessionPageSizes(t *testing.T) {
	for _, size := range session.PageSizes {
		t.Run(strconv.Itoa(size), func(t *testing.T) {
			clearEnv(t)
			t.Setenv("SEARCH_PAGE_SIZE", strconv.Itoa(size))

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.SearchPageSize != size {
				t.Errorf("SearchPageSize = %d, want %d", cfg.SearchPageSize, size)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEXTLENS_TEST_KEY", "value")

	if got := getEnv("TEXTLENS_TEST_KEY", "default"); got != "value" {
		t.Errorf("getEnv() = %q, want value", got)
	}
	if got := getEnv("TEXTLENS_TEST_MISSING", "default"); got != "default" {
		t.Errorf("getEnv() = %q, want default", got)
	}
}
