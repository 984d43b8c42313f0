package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stef4k/sleep-dashboard/internal/domain"
)

func TestChartHandler_GetHeatmap(t *testing.T) {
	t.Run("defaults to minutes asleep", func(t *testing.T) {
		handler := NewChartHandler(&MockChartService{
			heatmapFunc: func(ctx context.Context, metric string, year int) (*domain.HeatmapSeries, error) {
				if metric != "minutes_asleep" {
					t.Errorf("metric = %q, want minutes_asleep", metric)
				}
				if year != 0 {
					t.Errorf("year = %d, want 0 (latest in data)", year)
				}
				return &domain.HeatmapSeries{Metric: metric}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/charts/heatmap", nil)
		rec := httptest.NewRecorder()

		handler.GetHeatmap(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("GetHeatmap() status = %d, body: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("unknown metric", func(t *testing.T) {
		handler := NewChartHandler(&MockChartService{
			heatmapFunc: func(ctx context.Context, metric string, year int) (*domain.HeatmapSeries, error) {
				return nil, domain.ErrUnknownMetric
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/charts/heatmap?metric=shoe_size", nil)
		rec := httptest.NewRecorder()

		handler.GetHeatmap(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("GetHeatmap() status = %d, want 400", rec.Code)
		}
	})
}

func TestChartHandler_GetRhythm(t *testing.T) {
	handler := NewChartHandler(&MockChartService{
		rhythmFunc: func(ctx context.Context, asOf string, windowDays int) (*domain.RhythmSeries, error) {
			if asOf != "2025-06-15" || windowDays != 14 {
				t.Errorf("asOf = %q, windowDays = %d", asOf, windowDays)
			}
			return &domain.RhythmSeries{}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/charts/rhythm?as_of=2025-06-15&window_days=14", nil)
	rec := httptest.NewRecorder()

	handler.GetRhythm(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GetRhythm() status = %d, body: %s", rec.Code, rec.Body.String())
	}
}

func TestChartHandler_GetRhythm_WindowTooLarge(t *testing.T) {
	handler := NewChartHandler(&MockChartService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/charts/rhythm?window_days=5000", nil)
	rec := httptest.NewRecorder()

	handler.GetRhythm(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("GetRhythm() status = %d, want 400", rec.Code)
	}
}

func TestChartHandler_GetScatter(t *testing.T) {
	handler := NewChartHandler(&MockChartService{
		scatterFunc: func(ctx context.Context, metricX, metricY, asOf string, windowDays int) (*domain.ScatterSeries, error) {
			if metricX != "start_hour" || metricY != "overall_score" {
				t.Errorf("defaults not applied: x=%q y=%q", metricX, metricY)
			}
			return &domain.ScatterSeries{MetricX: metricX, MetricY: metricY}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/charts/scatter", nil)
	rec := httptest.NewRecorder()

	handler.GetScatter(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GetScatter() status = %d, body: %s", rec.Code, rec.Body.String())
	}
}

func TestChartHandler_GetFunnel(t *testing.T) {
	handler := NewChartHandler(&MockChartService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/charts/funnel", nil)
	rec := httptest.NewRecorder()

	handler.GetFunnel(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GetFunnel() status = %d", rec.Code)
	}
}

func TestChartHandler_GetParallel(t *testing.T) {
	t.Run("explicit metrics", func(t *testing.T) {
		handler := NewChartHandler(&MockChartService{
			parallelFunc: func(ctx context.Context, metrics []string, asOf string, windowDays int) (*domain.ParallelSeries, error) {
				if len(metrics) != 2 || metrics[0] != "duration_min" || metrics[1] != "efficiency" {
					t.Errorf("metrics = %v", metrics)
				}
				return &domain.ParallelSeries{Metrics: metrics}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/charts/parallel?metrics=duration_min,efficiency", nil)
		rec := httptest.NewRecorder()

		handler.GetParallel(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("GetParallel() status = %d, body: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("default metric set", func(t *testing.T) {
		handler := NewChartHandler(&MockChartService{
			parallelFunc: func(ctx context.Context, metrics []string, asOf string, windowDays int) (*domain.ParallelSeries, error) {
				if len(metrics) < 2 {
					t.Errorf("default metrics = %v, want at least two", metrics)
				}
				return &domain.ParallelSeries{Metrics: metrics}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/charts/parallel", nil)
		rec := httptest.NewRecorder()

		handler.GetParallel(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("GetParallel() status = %d, body: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("single metric rejected", func(t *testing.T) {
		handler := NewChartHandler(&MockChartService{
			parallelFunc: func(ctx context.Context, metrics []string, asOf string, windowDays int) (*domain.ParallelSeries, error) {
				return nil, domain.ErrInvalidInput
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/charts/parallel?metrics=duration_min", nil)
		rec := httptest.NewRecorder()

		handler.GetParallel(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("GetParallel() status = %d, want 400", rec.Code)
		}
	})
}
