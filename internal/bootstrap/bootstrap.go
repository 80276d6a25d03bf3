// Package bootstrap wires the dashboard service to its data files. The API
// server and the command-line tool share it.
package bootstrap

import (
	"database/sql"
	"fmt"

	"textlens/internal/config"
	"textlens/internal/filecache"
	"textlens/internal/service"
	"textlens/internal/storage"
	"textlens/internal/themes"
)

// App is a dashboard service and the resources behind it.
type App struct {
	Dashboard service.DashboardService
	Cache     *filecache.Cache
	db        *sql.DB
}

// New opens the database at dbPath, migrates it and builds the dashboard for
// the files in cat.
func New(cat *config.Catalog, dbPath string) (*App, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}

	db, err := storage.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := storage.Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	cache := filecache.New()
	repo := storage.NewOccurrenceRepo(db)
	loader := themes.NewLoader(cat.Sources(), cache)

	dashboard := service.NewDashboardService(repo, loader, cache, service.Options{
		OccurrencesPath: cat.Occurrences,
		TextPath:        cat.Text,
		TargetsPath:     cat.TargetWords,
		Markers:         cat.Markers,
		Sections:        cat.ChartSections(),
	})

	return &App{
		Dashboard: dashboard,
		Cache:     cache,
		db:        db,
	}, nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.db.Close()
}
