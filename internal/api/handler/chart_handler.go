package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stef4k/sleep-dashboard/internal/domain"
	"github.com/stef4k/sleep-dashboard/internal/service"
	"github.com/stef4k/sleep-dashboard/pkg/problem"
)

// Default metric selections for chart endpoints that take none.
var defaultParallelMetrics = []string{"duration_min", "efficiency", "deep_pct", "rem_pct", "overall_score"}

type ChartHandler struct {
	service service.ChartService
}

func NewChartHandler(service service.ChartService) *ChartHandler {
	return &ChartHandler{service: service}
}

// GetHeatmap handles GET /v1/charts/heatmap
// @Summary Calendar heatmap series
// @Description One value per calendar day of a year, keyed by ISO week and weekday. Days with both a night and a nap take the night's value.
// @Tags charts
// @Produce json
// @Param metric query string false "Metric to plot" default(minutes_asleep)
// @Param year query integer false "Calendar year (default: latest year in the data)" example(2025)
// @Success 200 {object} domain.HeatmapSeries "Daily values"
// @Failure 400 {object} problem.Problem "Unknown metric"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /charts/heatmap [get]
func (h *ChartHandler) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	metric := queryParam(r, "metric", "minutes_asleep")
	year := parseIntParam(r, "year", 0)

	result, err := h.service.Heatmap(r.Context(), metric, year)
	if err != nil {
		writeChartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetRhythm handles GET /v1/charts/rhythm
// @Summary Sleep rhythm series
// @Description Bedtime and wake hour per session over the trailing window, for the rhythm timeline panel.
// @Tags charts
// @Produce json
// @Param as_of query string false "Reference date (YYYY-MM-DD, default: latest session date)" example(2025-06-30)
// @Param window_days query integer false "Trailing window length in days (1-730)" default(30)
// @Success 200 {object} domain.RhythmSeries "Per-session bed and wake hours"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /charts/rhythm [get]
func (h *ChartHandler) GetRhythm(w http.ResponseWriter, r *http.Request) {
	windowDays, ok := chartWindowDays(w, r)
	if !ok {
		return
	}

	result, err := h.service.Rhythm(r.Context(), r.URL.Query().Get("as_of"), windowDays)
	if err != nil {
		writeChartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetScatter handles GET /v1/charts/scatter
// @Summary Metric scatter series
// @Description Paired values of two metrics over the trailing window. Sessions missing either metric are dropped.
// @Tags charts
// @Produce json
// @Param x query string false "Metric on the x axis" default(start_hour)
// @Param y query string false "Metric on the y axis" default(overall_score)
// @Param as_of query string false "Reference date (YYYY-MM-DD, default: latest session date)" example(2025-06-30)
// @Param window_days query integer false "Trailing window length in days (1-730)" default(30)
// @Success 200 {object} domain.ScatterSeries "Paired observations"
// @Failure 400 {object} problem.Problem "Unknown metric or invalid parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /charts/scatter [get]
func (h *ChartHandler) GetScatter(w http.ResponseWriter, r *http.Request) {
	windowDays, ok := chartWindowDays(w, r)
	if !ok {
		return
	}

	metricX := queryParam(r, "x", "start_hour")
	metricY := queryParam(r, "y", "overall_score")

	result, err := h.service.Scatter(r.Context(), metricX, metricY, r.URL.Query().Get("as_of"), windowDays)
	if err != nil {
		writeChartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetFunnel handles GET /v1/charts/funnel
// @Summary Sleep stage funnel
// @Description Mean minutes in bed, asleep, and per sleep stage over the window's nights.
// @Tags charts
// @Produce json
// @Param as_of query string false "Reference date (YYYY-MM-DD, default: latest session date)" example(2025-06-30)
// @Param window_days query integer false "Trailing window length in days (1-730)" default(30)
// @Success 200 {object} domain.FunnelSeries "Stage funnel"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /charts/funnel [get]
func (h *ChartHandler) GetFunnel(w http.ResponseWriter, r *http.Request) {
	windowDays, ok := chartWindowDays(w, r)
	if !ok {
		return
	}

	result, err := h.service.Funnel(r.Context(), r.URL.Query().Get("as_of"), windowDays)
	if err != nil {
		writeChartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetParallel handles GET /v1/charts/parallel
// @Summary Parallel coordinates series
// @Description One row per session in the window carrying every requested metric.
// @Tags charts
// @Produce json
// @Param metrics query string false "Comma-separated metric names (at least two)" example(duration_min,efficiency,overall_score)
// @Param as_of query string false "Reference date (YYYY-MM-DD, default: latest session date)" example(2025-06-30)
// @Param window_days query integer false "Trailing window length in days (1-730)" default(30)
// @Success 200 {object} domain.ParallelSeries "Per-session metric rows"
// @Failure 400 {object} problem.Problem "Unknown metric or too few metrics"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /charts/parallel [get]
func (h *ChartHandler) GetParallel(w http.ResponseWriter, r *http.Request) {
	windowDays, ok := chartWindowDays(w, r)
	if !ok {
		return
	}

	metrics := splitMetricsParam(r.URL.Query().Get("metrics"))
	if metrics == nil {
		metrics = defaultParallelMetrics
	}

	result, err := h.service.Parallel(r.Context(), metrics, r.URL.Query().Get("as_of"), windowDays)
	if err != nil {
		writeChartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// chartWindowDays validates the optional window_days parameter; zero keeps
// the engine default.
func chartWindowDays(w http.ResponseWriter, r *http.Request) (int, bool) {
	windowDays := parseIntParam(r, "window_days", 0)
	if windowDays < 0 || windowDays > 730 {
		problem.BadRequest("window_days must be between 1 and 730").Write(w)
		return 0, false
	}
	return windowDays, true
}

func writeChartError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrUnknownMetric) {
		problem.BadRequest(err.Error()).Write(w)
		return
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		problem.BadRequest(err.Error()).Write(w)
		return
	}
	problem.InternalError("Failed to build chart series").Write(w)
}
