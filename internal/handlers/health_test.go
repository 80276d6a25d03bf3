package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"textlens/internal/service"
	"textlens/internal/service/mocks"
)

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		health     *service.HealthStatus
		wantStatus int
	}{
		{
			name:   "healthy",
			method: http.MethodGet,
			health: &service.HealthStatus{
				Status: "healthy",
				Checks: map[string]string{"occurrences": "ok", "text": "ok", "targets": "ok"},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "degraded still serves",
			method: http.MethodGet,
			health: &service.HealthStatus{
				Status: "degraded",
				Checks: map[string]string{"occurrences": "ok", "text": "ok", "targets": "missing"},
				Issues: []string{"targets: missing"},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "unhealthy",
			method: http.MethodGet,
			health: &service.HealthStatus{
				Status: "unhealthy",
				Checks: map[string]string{"occurrences": "missing"},
				Issues: []string{"occurrences: missing"},
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "method not allowed",
			method:     http.MethodPost,
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDashboard := mocks.NewMockDashboardService(ctrl)
			if tt.health != nil {
				mockDashboard.EXPECT().Health(gomock.Any()).Return(*tt.health)
			}

			handler := NewHealthHandler(mockDashboard)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(tt.method, "/api/health", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.health == nil {
				return
			}
			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Status != tt.health.Status {
				t.Errorf("Status = %q, want %q", resp.Status, tt.health.Status)
			}
			if resp.Timestamp == "" {
				t.Error("Timestamp is empty")
			}
			if len(resp.Issues) != len(tt.health.Issues) {
				t.Errorf("Issues = %v, want %v", resp.Issues, tt.health.Issues)
			}
		})
	}
}
