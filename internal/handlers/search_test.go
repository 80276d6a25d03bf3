package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"textlens/internal/occurrence"
	"textlens/internal/service"
	"textlens/internal/service/mocks"
	"textlens/internal/session"
)

// fakeSearch mimics the service: it records the term on the session and
// reports three matches.
func fakeSearch(_ context.Context, req service.SearchRequest) (service.SearchResult, error) {
	st := req.State.WithSearch(req.Term)
	return service.SearchResult{
		State:      st,
		Term:       st.LastSearch,
		Rows:       []occurrence.Row{{Word: "Gawan", Frequency: 3, LineNumber: 12}},
		Total:      3,
		Page:       st.Page,
		PageSize:   st.PageSize,
		TotalPages: st.TotalPages(3),
	}, nil
}

func newSessionStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.NewStore(time.Hour, 10)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return store
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	return nil
}

func TestSearchHandler_NewSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDashboard := mocks.NewMockDashboardService(ctrl)
	mockDashboard.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(fakeSearch)

	store := newSessionStore(t)
	handler := NewSearchHandler(mockDashboard, store)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=gawan", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	cookie := sessionCookie(w)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("session cookie not set")
	}
	if !cookie.HttpOnly {
		t.Error("session cookie should be HttpOnly")
	}
	if store.Len() != 1 {
		t.Errorf("store.Len() = %d, want 1", store.Len())
	}
	if got := store.Get(cookie.Value).LastSearch; got != "gawan" {
		t.Errorf("saved LastSearch = %q, want gawan", got)
	}

	var resp service.SearchResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Term != "gawan" || resp.Total != 3 || resp.Page != 1 || resp.PageSize != 10 {
		t.Errorf("response = %+v", resp)
	}
}

func TestSearchHandler_RemembersTermAcrossRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDashboard := mocks.NewMockDashboardService(ctrl)

	var requests []service.SearchRequest
	mockDashboard.EXPECT().Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req service.SearchRequest) (service.SearchResult, error) {
			requests = append(requests, req)
			return fakeSearch(ctx, req)
		}).Times(2)

	store := newSessionStore(t)
	handler := NewSearchHandler(mockDashboard, store)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?q=luf&page_size=25", nil))
	cookie := sessionCookie(w)
	if cookie == nil {
		t.Fatal("session cookie not set")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/search?page=2", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if len(requests) != 2 {
		t.Fatalf("Search called %d times, want 2", len(requests))
	}
	second := requests[1]
	if second.Term != "luf" {
		t.Errorf("second Term = %q, want luf", second.Term)
	}
	if second.State.Page != 2 || second.State.PageSize != 25 {
		t.Errorf("second State = %+v, want page 2 size 25", second.State)
	}
	if second.State.ID != cookie.Value {
		t.Errorf("second State.ID = %q, want %q", second.State.ID, cookie.Value)
	}
}

func TestSearchHandler_Filters(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDashboard := mocks.NewMockDashboardService(ctrl)
	mockDashboard.EXPECT().Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req service.SearchRequest) (service.SearchResult, error) {
			if !req.TargetsOnly {
				t.Error("TargetsOnly = false, want true")
			}
			if req.Category != "Religious" {
				t.Errorf("Category = %q, want Religious", req.Category)
			}
			return fakeSearch(ctx, req)
		})

	handler := NewSearchHandler(mockDashboard, newSessionStore(t))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?targets=TRUE&category=+Religious+", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestSearchHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		mockSetup  func(*mocks.MockDashboardService)
		wantStatus int
	}{
		{
			name:       "page size not allowed",
			query:      "?q=gawan&page_size=30",
			mockSetup:  func(m *mocks.MockDashboardService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "page not a number",
			query:      "?q=gawan&page=two",
			mockSetup:  func(m *mocks.MockDashboardService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "term too long",
			query: "?q=gawan",
			mockSetup: func(m *mocks.MockDashboardService) {
				m.EXPECT().Search(gomock.Any(), gomock.Any()).
					Return(service.SearchResult{}, &service.ValidationError{Field: "q", Message: "too long"})
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "table unavailable",
			query: "?q=gawan",
			mockSetup: func(m *mocks.MockDashboardService) {
				m.EXPECT().Search(gomock.Any(), gomock.Any()).Return(service.SearchResult{}, service.ErrUnavailable)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDashboard := mocks.NewMockDashboardService(ctrl)
			tt.mockSetup(mockDashboard)

			store := newSessionStore(t)
			handler := NewSearchHandler(mockDashboard, store)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search"+tt.query, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if store.Len() != 0 {
				t.Errorf("failed search saved a session")
			}
		})
	}
}
