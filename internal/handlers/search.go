package handlers

import (
	"errors"
	"net/http"
	"strings"

	"textlens/internal/contextutil"
	"textlens/internal/service"
	"textlens/internal/session"
)

// SessionCookie names the cookie carrying the search session id.
const SessionCookie = "textlens_session"

// SessionStore keeps per-visitor search state.
type SessionStore interface {
	Get(id string) session.State
	Save(st session.State) session.State
}

// SearchHandler serves paged word search.
type SearchHandler struct {
	dashboard service.DashboardService
	sessions  SessionStore
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(dashboard service.DashboardService, sessions SessionStore) *SearchHandler {
	return &SearchHandler{dashboard: dashboard, sessions: sessions}
}

// ServeHTTP handles GET /api/search?q=&page=&page_size=&targets=&category=.
//
// The session remembers the last term, page and page size, so a request
// without q repeats the previous search and a request without page stays on
// the current page. A new term always starts on page 1.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var id string
	if c, err := r.Cookie(SessionCookie); err == nil {
		id = c.Value
	}
	state := h.sessions.Get(id)

	query := r.URL.Query()
	term := state.LastSearch
	if query.Has("q") {
		term = query.Get("q")
	}

	size, err := queryInt(r, "page_size", state.PageSize)
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid request")
		return
	}
	if state, err = state.WithPageSize(size); err != nil {
		if errors.Is(err, session.ErrInvalidPageSize) {
			handleServiceError(w, ctx, &service.ValidationError{Field: "page_size", Message: err.Error()}, "Invalid request")
			return
		}
		handleServiceError(w, ctx, err, "Invalid request")
		return
	}
	page, err := queryInt(r, "page", state.Page)
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid request")
		return
	}
	state = state.WithPage(page)

	result, err := h.dashboard.Search(ctx, service.SearchRequest{
		State:       state,
		Term:        term,
		TargetsOnly: strings.EqualFold(query.Get("targets"), "true"),
		Category:    strings.TrimSpace(query.Get("category")),
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to search words")
		return
	}

	saved := h.sessions.Save(result.State)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    saved.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	logger.DebugContext(ctx, "search served", "session", saved.ID, "total", result.Total)

	writeJSON(w, ctx, http.StatusOK, result)
}
