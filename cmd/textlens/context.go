package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"textlens/internal/bootstrap"
	"textlens/internal/config"
	"textlens/internal/service"
)

type commandContext struct {
	dataDirFlag *string
	catalogFlag *string

	appOnce sync.Once
	app     *bootstrap.App
	appErr  error
}

func newCommandContext(dataDirFlag, catalogFlag *string) *commandContext {
	return &commandContext{
		dataDirFlag: dataDirFlag,
		catalogFlag: catalogFlag,
	}
}

// dashboard loads configuration once, letting the flags override the
// environment, and builds the dashboard. Logs go to stderr so tables stay
// clean on stdout.
func (c *commandContext) dashboard(stderr io.Writer) (service.DashboardService, error) {
	c.appOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			c.appErr = err
			return
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

		cat := cfg.Catalog
		dataDir := flagValue(c.dataDirFlag, cfg.DataDir)
		catalogPath := flagValue(c.catalogFlag, cfg.CatalogPath)
		if dataDir != cfg.DataDir || catalogPath != cfg.CatalogPath {
			cat, err = config.LoadCatalog(catalogPath, dataDir)
			if err != nil {
				c.appErr = err
				return
			}
		}

		c.app, c.appErr = bootstrap.New(cat, cfg.DBPath)
	})
	if c.appErr != nil {
		return nil, c.appErr
	}
	return c.app.Dashboard, nil
}

func (c *commandContext) close() error {
	if c.app == nil {
		return nil
	}
	return c.app.Close()
}

func flagValue(flag *string, fallback string) string {
	if flag == nil {
		return fallback
	}
	if v := strings.TrimSpace(*flag); v != "" {
		return v
	}
	return fallback
}
