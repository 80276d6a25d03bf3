package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"textlens/internal/service"
	"textlens/internal/service/mocks"
	"textlens/internal/session"
	"textlens/internal/storage"
)

func newTestRouter(t *testing.T, setup func(*mocks.MockDashboardService)) http.Handler {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockDashboard := mocks.NewMockDashboardService(ctrl)
	if setup != nil {
		setup(mockDashboard)
	}
	sessions, err := session.NewStore(time.Hour, 10)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return NewRouter(&Deps{
		Dashboard: mockDashboard,
		Sessions:  sessions,
		IndexHTML: "<html><body>Test HTML</body></html>",
	})
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t, func(m *mocks.MockDashboardService) {
		m.EXPECT().Health(gomock.Any()).Return(service.HealthStatus{Status: "healthy"}).AnyTimes()
		m.EXPECT().Summary(gomock.Any()).Return(storage.Summary{}, nil).AnyTimes()
		m.EXPECT().TopWords(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		m.EXPECT().FrequencyBuckets(gomock.Any()).Return(nil, nil).AnyTimes()
		m.EXPECT().LineGroups(gomock.Any()).Return(nil, nil).AnyTimes()
		m.EXPECT().FrequencyDots(gomock.Any()).Return(nil, nil).AnyTimes()
		m.EXPECT().Search(gomock.Any(), gomock.Any()).Return(service.SearchResult{}, nil).AnyTimes()
		m.EXPECT().Distribution(gomock.Any(), "emotion").Return(service.DistributionResult{}, nil).AnyTimes()
		m.EXPECT().Overlap(gomock.Any(), "religious").Return(service.OverlapResult{}, nil).AnyTimes()
		m.EXPECT().Timeline(gomock.Any()).Return(service.TimelineResult{}, nil).AnyTimes()
		m.EXPECT().Comparison(gomock.Any()).Return(service.ComparisonResult{}, nil).AnyTimes()
	})

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "dashboard page", method: http.MethodGet, path: "/", wantStatus: http.StatusOK},
		{name: "about page", method: http.MethodGet, path: "/about", wantStatus: http.StatusOK},
		{name: "health", method: http.MethodGet, path: "/api/health", wantStatus: http.StatusOK},
		{name: "stats", method: http.MethodGet, path: "/api/stats", wantStatus: http.StatusOK},
		{name: "top words", method: http.MethodGet, path: "/api/words/top?n=10", wantStatus: http.StatusOK},
		{name: "buckets", method: http.MethodGet, path: "/api/words/buckets", wantStatus: http.StatusOK},
		{name: "lines", method: http.MethodGet, path: "/api/words/lines", wantStatus: http.StatusOK},
		{name: "dots", method: http.MethodGet, path: "/api/words/dots", wantStatus: http.StatusOK},
		{name: "search", method: http.MethodGet, path: "/api/search?q=gawan", wantStatus: http.StatusOK},
		{name: "distribution", method: http.MethodGet, path: "/api/distribution/emotion", wantStatus: http.StatusOK},
		{name: "overlap", method: http.MethodGet, path: "/api/overlap/religious", wantStatus: http.StatusOK},
		{name: "timeline", method: http.MethodGet, path: "/api/timeline", wantStatus: http.StatusOK},
		{name: "comparison", method: http.MethodGet, path: "/api/comparison", wantStatus: http.StatusOK},
		{name: "POST stats not allowed", method: http.MethodPost, path: "/api/stats", wantStatus: http.StatusMethodNotAllowed},
		{name: "unknown route", method: http.MethodGet, path: "/api/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_RootServesHTML(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Router GET / status = %v, want %v", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Test HTML") {
		t.Errorf("Router GET / body = %v", w.Body.String())
	}
	if w.Header().Get("Content-Type") != "text/html; charset=utf-8" {
		t.Errorf("Router GET / Content-Type = %v, want text/html; charset=utf-8", w.Header().Get("Content-Type"))
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	router := newTestRouter(t, func(m *mocks.MockDashboardService) {
		m.EXPECT().Timeline(gomock.Any()).Return(service.TimelineResult{}, nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/timeline", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Router should apply CORS middleware")
	}
}
