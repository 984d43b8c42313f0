package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/stef4k/sleep-dashboard/internal/analytics"
	"github.com/stef4k/sleep-dashboard/internal/api/validation"
	"github.com/stef4k/sleep-dashboard/internal/domain"
	"github.com/stef4k/sleep-dashboard/internal/service"
	"github.com/stef4k/sleep-dashboard/pkg/problem"
)

type CorrelationHandler struct {
	service service.CorrelationService
}

func NewCorrelationHandler(service service.CorrelationService) *CorrelationHandler {
	return &CorrelationHandler{service: service}
}

// GetCorrelation handles GET /v1/correlations
// @Summary Correlate two metrics
// @Description Pearson correlation between two metrics. Sessions missing either value are excluded pairwise; at least 3 pairs are required.
// @Tags correlations
// @Produce json
// @Param x query string true "First metric name" example(duration_min)
// @Param y query string true "Second metric name" example(overall_score)
// @Param kind query string false "Session kind filter" Enums(all, night, nap) default(night)
// @Param day query string false "Day-of-week filter" Enums(all, weekday, weekend) default(all)
// @Success 200 {object} domain.CorrelationResult "Correlation coefficient with pair count"
// @Failure 422 {object} problem.Problem "Unknown metric, too few pairs, or constant metric"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /correlations [get]
func (h *CorrelationHandler) GetCorrelation(w http.ResponseWriter, r *http.Request) {
	req := domain.CorrelationRequest{
		MetricX: r.URL.Query().Get("x"),
		MetricY: r.URL.Query().Get("y"),
		Kind:    queryParam(r, "kind", analytics.KindNight),
		Day:     r.URL.Query().Get("day"),
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	result, err := h.service.Correlate(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientData) {
			problem.New(http.StatusUnprocessableEntity, "insufficient-data", "Insufficient Data",
				"At least 3 paired observations are required").Write(w)
			return
		}
		if errors.Is(err, domain.ErrZeroVariance) {
			problem.New(http.StatusUnprocessableEntity, "zero-variance", "Zero Variance",
				"A metric with no variation cannot be correlated").Write(w)
			return
		}
		problem.InternalError("Failed to compute correlation").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetMatrix handles GET /v1/correlations/matrix
// @Summary Correlation matrix
// @Description Pairwise Pearson coefficients for a set of metrics. Cells that cannot be computed are null instead of failing the grid.
// @Tags correlations
// @Produce json
// @Param metrics query string false "Comma-separated metric names (default: all metrics)" example(duration_min,overall_score,efficiency)
// @Param kind query string false "Session kind filter" Enums(all, night, nap) default(night)
// @Param day query string false "Day-of-week filter" Enums(all, weekday, weekend) default(all)
// @Success 200 {object} domain.CorrelationMatrix "Labelled coefficient grid"
// @Failure 400 {object} problem.Problem "Unknown metric or too few metrics"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /correlations/matrix [get]
func (h *CorrelationHandler) GetMatrix(w http.ResponseWriter, r *http.Request) {
	metrics := splitMetricsParam(r.URL.Query().Get("metrics"))
	if metrics == nil {
		metrics = analytics.MetricNames()
	}

	result, err := h.service.Matrix(r.Context(), metrics, queryParam(r, "kind", analytics.KindNight), r.URL.Query().Get("day"))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownMetric) {
			problem.BadRequest(err.Error()).Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("metrics must name at least two metrics").Write(w)
			return
		}
		problem.InternalError("Failed to compute correlation matrix").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// ListMetrics handles GET /v1/correlations/metrics
// @Summary List correlation metrics
// @Description The metrics available for correlation and chart queries, with display labels.
// @Tags correlations
// @Produce json
// @Success 200 {array} domain.MetricInfo "Metric catalog"
// @Router /correlations/metrics [get]
func (h *CorrelationHandler) ListMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.service.Metrics())
}

// splitMetricsParam splits a comma-separated metric list, dropping empty
// entries. Returns nil when the parameter is absent.
func splitMetricsParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	metrics := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			metrics = append(metrics, name)
		}
	}
	if len(metrics) == 0 {
		return nil
	}
	return metrics
}
