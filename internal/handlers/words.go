package handlers

import (
	"net/http"

	"textlens/internal/service"
	"textlens/internal/storage"
)

// defaultTopWords is the bar-chart size when n is not given.
const defaultTopWords = 20

// WordsHandler serves the word-frequency statistics and chart data.
type WordsHandler struct {
	dashboard service.DashboardService
}

// NewWordsHandler creates a new WordsHandler.
func NewWordsHandler(dashboard service.DashboardService) *WordsHandler {
	return &WordsHandler{dashboard: dashboard}
}

// TopWordsResponse is the most frequent words, most frequent first.
type TopWordsResponse struct {
	Words []storage.WordFrequency `json:"words"`
}

// BucketsResponse counts words per frequency range.
type BucketsResponse struct {
	Buckets []storage.FrequencyBucket `json:"buckets"`
}

// LinesResponse is the average frequency per block of lines.
type LinesResponse struct {
	Groups []storage.LineGroup `json:"groups"`
}

// Stats serves GET /api/stats.
func (h *WordsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	summary, err := h.dashboard.Summary(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compute statistics")
		return
	}
	writeJSON(w, ctx, http.StatusOK, summary)
}

// Top serves GET /api/words/top?n=.
func (h *WordsHandler) Top(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	n, err := queryInt(r, "n", defaultTopWords)
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid request")
		return
	}
	words, err := h.dashboard.TopWords(ctx, n)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load top words")
		return
	}
	writeJSON(w, ctx, http.StatusOK, TopWordsResponse{Words: words})
}

// Buckets serves GET /api/words/buckets.
func (h *WordsHandler) Buckets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	buckets, err := h.dashboard.FrequencyBuckets(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load frequency distribution")
		return
	}
	writeJSON(w, ctx, http.StatusOK, BucketsResponse{Buckets: buckets})
}

// Lines serves GET /api/words/lines.
func (h *WordsHandler) Lines(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	groups, err := h.dashboard.LineGroups(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load line groups")
		return
	}
	writeJSON(w, ctx, http.StatusOK, LinesResponse{Groups: groups})
}

// Dots serves GET /api/words/dots.
func (h *WordsHandler) Dots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	words, err := h.dashboard.FrequencyDots(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load word frequencies")
		return
	}
	writeJSON(w, ctx, http.StatusOK, TopWordsResponse{Words: words})
}
