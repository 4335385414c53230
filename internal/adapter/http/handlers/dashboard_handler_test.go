package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gestao_producao/internal/adapter/http/handlers/mocks"
	"gestao_producao/internal/domain/production"
	"gestao_producao/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_GetDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewDashboardHandler(mocks.NewMockIDashboardUseCase(ctrl), mocks.NewMockIReportUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/dashboard", h.GetDashboard)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?limit=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-positive limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dash := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(dash, mocks.NewMockIReportUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/dashboard", h.GetDashboard)

		dash.EXPECT().GetDashboard(gomock.Any(), 0).Return(usecase.Dashboard{}, production.ErrInvalidInput)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?limit=0", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("default limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dash := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(dash, mocks.NewMockIReportUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/dashboard", h.GetDashboard)

		dash.EXPECT().GetDashboard(gomock.Any(), defaultRankingLimit).Return(usecase.Dashboard{
			GeneratedAt:   time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
			UrgencyCounts: map[production.UrgencyBucket]int{production.UrgencyToday: 1},
			Orders:        []usecase.OrderSummary{sampleSummary()},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_ExportSchedule(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("export error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reports := mocks.NewMockIReportUseCase(ctrl)
		h := NewDashboardHandler(mocks.NewMockIDashboardUseCase(ctrl), reports)

		r := gin.New()
		r.GET("/v1/reports/schedule.xlsx", h.ExportSchedule)

		reports.EXPECT().ExportSchedule(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/schedule.xlsx", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reports := mocks.NewMockIReportUseCase(ctrl)
		h := NewDashboardHandler(mocks.NewMockIDashboardUseCase(ctrl), reports)

		r := gin.New()
		r.GET("/v1/reports/schedule.xlsx", h.ExportSchedule)

		reports.EXPECT().ExportSchedule(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w io.Writer) error {
				_, err := w.Write([]byte("PK"))
				return err
			},
		)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/schedule.xlsx", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
			t.Fatalf("unexpected content type %q", ct)
		}
		if w.Body.String() != "PK" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/ping", Ping)

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}
