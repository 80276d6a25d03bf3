package main

import (
	_ "embed"
	"log"
	"log/slog"
	nethttp "net/http"

	"textlens/internal/bootstrap"
	"textlens/internal/config"
	"textlens/internal/http"
	"textlens/internal/session"
)

//go:embed index.html
var indexHTML string

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	app, err := bootstrap.New(cfg.Catalog, cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize dashboard: %v", err)
	}
	defer func() {
		_ = app.Close()
	}()
	slog.Info("Dashboard initialized",
		"db", cfg.DBPath,
		"occurrences", cfg.Catalog.Occurrences,
		"text", cfg.Catalog.Text,
	)

	sessions, err := session.NewStore(cfg.SessionTTL, cfg.SearchPageSize)
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}

	deps := &http.Deps{
		Dashboard: app.Dashboard,
		Sessions:  sessions,
		IndexHTML: indexHTML,
	}
	router := http.NewRouter(deps)

	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
