package handlers

import (
	"net/http"
	"time"

	"textlens/internal/contextutil"
	"textlens/internal/service"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	dashboard service.DashboardService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(dashboard service.DashboardService) *HealthHandler {
	return &HealthHandler{dashboard: dashboard}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy", "degraded", or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results, one per data file
	Checks map[string]string `json:"checks"`

	// List of issues (only present if status is degraded or unhealthy)
	Issues []string `json:"issues,omitempty"`

	CacheEntries int     `json:"cache_entries"`
	CacheHitRate float64 `json:"cache_hit_rate"`
}

// ServeHTTP handles HTTP requests for health checks.
//
// Returns 200 OK when every required data file is readable (optional files
// may be missing, which reports "degraded"), and 503 Service Unavailable
// otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	health := h.dashboard.Health(ctx)

	httpStatus := http.StatusOK
	if health.Status == "unhealthy" {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, ctx, httpStatus, HealthResponse{
		Status:       health.Status,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Checks:       health.Checks,
		Issues:       health.Issues,
		CacheEntries: health.CacheEntries,
		CacheHitRate: health.CacheHitRate,
	})
}
