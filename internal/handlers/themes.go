package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"textlens/internal/service"
)

// ThemeHandler serves the per-theme views and the cross-theme comparisons.
type ThemeHandler struct {
	dashboard service.DashboardService
}

// NewThemeHandler creates a new ThemeHandler.
func NewThemeHandler(dashboard service.DashboardService) *ThemeHandler {
	return &ThemeHandler{dashboard: dashboard}
}

// Distribution serves GET /api/distribution/{theme}.
func (h *ThemeHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	result, err := h.dashboard.Distribution(ctx, chi.URLParam(r, "theme"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compute distribution")
		return
	}
	writeJSON(w, ctx, http.StatusOK, result)
}

// Overlap serves GET /api/overlap/{theme}.
func (h *ThemeHandler) Overlap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	result, err := h.dashboard.Overlap(ctx, chi.URLParam(r, "theme"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compute overlap")
		return
	}
	writeJSON(w, ctx, http.StatusOK, result)
}

// Timeline serves GET /api/timeline.
func (h *ThemeHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	result, err := h.dashboard.Timeline(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to build timeline")
		return
	}
	writeJSON(w, ctx, http.StatusOK, result)
}

// Comparison serves GET /api/comparison.
func (h *ThemeHandler) Comparison(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	result, err := h.dashboard.Comparison(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compare word lists")
		return
	}
	writeJSON(w, ctx, http.StatusOK, result)
}
