package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"textlens/internal/chart"
	"textlens/internal/service"
	"textlens/internal/service/mocks"
	"textlens/internal/themes"
)

func withTheme(r *http.Request, theme string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("theme", theme)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestThemeHandler_Distribution(t *testing.T) {
	tests := []struct {
		name       string
		theme      string
		mockSetup  func(*mocks.MockDashboardService)
		wantStatus int
	}{
		{
			name:  "emotion",
			theme: "emotion",
			mockSetup: func(m *mocks.MockDashboardService) {
				m.EXPECT().Distribution(gomock.Any(), "emotion").Return(service.DistributionResult{
					Theme:       "emotion",
					Title:       "Emotion",
					TotalTokens: 11,
					Lanes:       []chart.Lane{{Label: "ChatGPT", Y: 1, Positions: []float64{0.1}}},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "unknown theme",
			theme: "weather",
			mockSetup: func(m *mocks.MockDashboardService) {
				m.EXPECT().Distribution(gomock.Any(), "weather").
					Return(service.DistributionResult{}, fmt.Errorf("%w: unknown theme %q", service.ErrInvalidInput, "weather"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "text empty",
			theme: "religious",
			mockSetup: func(m *mocks.MockDashboardService) {
				m.EXPECT().Distribution(gomock.Any(), "religious").Return(service.DistributionResult{}, service.ErrEmptyCorpus)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDashboard := mocks.NewMockDashboardService(ctrl)
			tt.mockSetup(mockDashboard)

			handler := NewThemeHandler(mockDashboard)
			req := withTheme(httptest.NewRequest(http.MethodGet, "/api/distribution/"+tt.theme, nil), tt.theme)
			w := httptest.NewRecorder()
			handler.Distribution(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var resp service.DistributionResult
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.TotalTokens != 11 || len(resp.Lanes) != 1 || resp.Target != nil {
				t.Errorf("response = %+v", resp)
			}
		})
	}
}

func TestThemeHandler_Overlap(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDashboard := mocks.NewMockDashboardService(ctrl)
	mockDashboard.EXPECT().Overlap(gomock.Any(), "religious").
		Return(service.OverlapResult{}, fmt.Errorf("%w: overlap needs at least two word lists", service.ErrUnavailable))

	handler := NewThemeHandler(mockDashboard)
	w := httptest.NewRecorder()
	handler.Overlap(w, withTheme(httptest.NewRequest(http.MethodGet, "/api/overlap/religious", nil), "religious"))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}

func TestThemeHandler_TimelineAndComparison(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDashboard := mocks.NewMockDashboardService(ctrl)
	mockDashboard.EXPECT().Timeline(gomock.Any()).Return(service.TimelineResult{
		Timeline: chart.Timeline{Dividers: []int{491, 1126, 1998}},
	}, nil)
	mockDashboard.EXPECT().Comparison(gomock.Any()).Return(service.ComparisonResult{
		Sources: []string{"ChatGPT Emotion"},
		Rows:    []themes.Attribution{{Word: "luf", Sources: []string{"ChatGPT Emotion"}}},
	}, nil)

	handler := NewThemeHandler(mockDashboard)

	w := httptest.NewRecorder()
	handler.Timeline(w, httptest.NewRequest(http.MethodGet, "/api/timeline", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Timeline() status = %d", w.Code)
	}
	var timeline service.TimelineResult
	if err := json.NewDecoder(w.Body).Decode(&timeline); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(timeline.Dividers) != 3 {
		t.Errorf("Dividers = %v, want 3 entries", timeline.Dividers)
	}

	w = httptest.NewRecorder()
	handler.Comparison(w, httptest.NewRequest(http.MethodGet, "/api/comparison", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Comparison() status = %d", w.Code)
	}
	var comparison service.ComparisonResult
	if err := json.NewDecoder(w.Body).Decode(&comparison); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(comparison.Rows) != 1 || comparison.Rows[0].Word != "luf" {
		t.Errorf("Rows = %+v", comparison.Rows)
	}
}
