package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"textlens/internal/handlers"
	"textlens/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Dashboard service.DashboardService
	Sessions  handlers.SessionStore
	IndexHTML string // Embedded dashboard page
	// AboutMarkdown overrides the built-in about page when set.
	AboutMarkdown []byte
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	healthHandler := handlers.NewHealthHandler(deps.Dashboard)
	wordsHandler := handlers.NewWordsHandler(deps.Dashboard)
	searchHandler := handlers.NewSearchHandler(deps.Dashboard, deps.Sessions)
	themeHandler := handlers.NewThemeHandler(deps.Dashboard)
	aboutHandler := handlers.NewAboutHandler(deps.AboutMarkdown)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Get("/stats", wordsHandler.Stats)

		r.Route("/words", func(r chi.Router) {
			r.Get("/top", wordsHandler.Top)
			r.Get("/buckets", wordsHandler.Buckets)
			r.Get("/lines", wordsHandler.Lines)
			r.Get("/dots", wordsHandler.Dots)
		})

		r.Method(http.MethodGet, "/search", searchHandler)

		r.Get("/distribution/{theme}", themeHandler.Distribution)
		r.Get("/overlap/{theme}", themeHandler.Overlap)
		r.Get("/timeline", themeHandler.Timeline)
		r.Get("/comparison", themeHandler.Comparison)
	})

	r.Method(http.MethodGet, "/about", aboutHandler)

	// Serve the dashboard page at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(deps.IndexHTML))
	})

	return r
}
