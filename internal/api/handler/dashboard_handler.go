package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/stef4k/sleep-dashboard/internal/analytics"
	"github.com/stef4k/sleep-dashboard/internal/api/validation"
	"github.com/stef4k/sleep-dashboard/internal/domain"
	"github.com/stef4k/sleep-dashboard/internal/service"
	"github.com/stef4k/sleep-dashboard/pkg/problem"
)

type DashboardHandler struct {
	summaryService        service.SummaryService
	recommendationService service.RecommendationService
	chronotypeService     service.ChronotypeService
	quoteService          service.QuoteService
}

func NewDashboardHandler(
	summaryService service.SummaryService,
	recommendationService service.RecommendationService,
	chronotypeService service.ChronotypeService,
	quoteService service.QuoteService,
) *DashboardHandler {
	return &DashboardHandler{
		summaryService:        summaryService,
		recommendationService: recommendationService,
		chronotypeService:     chronotypeService,
		quoteService:          quoteService,
	}
}

// GetSummary handles GET /v1/dashboard/summary
// @Summary Sleep summary
// @Description Aggregate sleep statistics over the trailing window ending on as_of. Windows with no sessions report null metric blocks, not zeros.
// @Tags dashboard
// @Produce json
// @Param as_of query string false "Reference date (YYYY-MM-DD, default: latest session date)" example(2025-06-30)
// @Param window_days query integer false "Trailing window length in days (1-730)" default(30)
// @Param kind query string false "Session kind filter" Enums(all, night, nap) default(night)
// @Param day query string false "Day-of-week filter" Enums(all, weekday, weekend) default(all)
// @Success 200 {object} domain.SummaryStats "Window aggregates"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	req := domain.SummaryRequest{
		AsOf:       r.URL.Query().Get("as_of"),
		WindowDays: parseIntParam(r, "window_days", 0),
		Kind:       queryParam(r, "kind", analytics.KindNight),
		Day:        r.URL.Query().Get("day"),
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	result, err := h.summaryService.Summarize(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("as_of must be formatted as YYYY-MM-DD").Write(w)
			return
		}
		problem.InternalError("Failed to compute summary").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetCompare handles GET /v1/dashboard/compare
// @Summary Weekday vs weekend comparison
// @Description Split the trailing window into weekday and weekend sessions and summarize both sides. The two partitions are exact: every session lands in exactly one.
// @Tags dashboard
// @Produce json
// @Param as_of query string false "Reference date (YYYY-MM-DD, default: latest session date)" example(2025-06-30)
// @Param window_days query integer false "Trailing window length in days (1-730)" default(30)
// @Param kind query string false "Session kind filter" Enums(all, night, nap) default(night)
// @Success 200 {object} domain.CompareStats "Weekday and weekend aggregates"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /dashboard/compare [get]
func (h *DashboardHandler) GetCompare(w http.ResponseWriter, r *http.Request) {
	req := domain.SummaryRequest{
		AsOf:       r.URL.Query().Get("as_of"),
		WindowDays: parseIntParam(r, "window_days", 0),
		Kind:       queryParam(r, "kind", analytics.KindNight),
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	result, err := h.summaryService.Compare(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("as_of must be formatted as YYYY-MM-DD").Write(w)
			return
		}
		problem.InternalError("Failed to compute comparison").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetRecommendation handles GET /v1/dashboard/recommendation
// @Summary Bedtime recommendation
// @Description Evaluate the recent sleep debt and schedule drift against the nightly target. Deterministic: the same dataset and as_of date always produce the same action.
// @Tags dashboard
// @Produce json
// @Param as_of query string false "Reference date (YYYY-MM-DD, default: latest session date)" example(2025-06-30)
// @Success 200 {object} domain.Recommendation "Recommended action with its inputs"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /dashboard/recommendation [get]
func (h *DashboardHandler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	result, err := h.recommendationService.Recommend(r.Context(), r.URL.Query().Get("as_of"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("as_of must be formatted as YYYY-MM-DD").Write(w)
			return
		}
		problem.InternalError("Failed to compute recommendation").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetChronotype handles GET /v1/dashboard/chronotype
// @Summary Chronotype classification
// @Description Classify the sleeper as early bird, intermediate, or night owl from the median mid-sleep time of recent nights.
// @Tags dashboard
// @Produce json
// @Param as_of query string false "Reference date (YYYY-MM-DD, default: latest session date)" example(2025-06-30)
// @Param window_days query integer false "Analysis window in days (1-730)" default(90)
// @Param min_nights query integer false "Fewest nights required for a classification (1-100)" default(7)
// @Success 200 {object} domain.ChronotypeResult "Chronotype analysis"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /dashboard/chronotype [get]
func (h *DashboardHandler) GetChronotype(w http.ResponseWriter, r *http.Request) {
	windowDays := parseIntParam(r, "window_days", analytics.DefaultChronotypeWindowDays)
	minNights := parseIntParam(r, "min_nights", analytics.DefaultChronotypeMinNights)

	if windowDays < 1 || windowDays > 730 {
		problem.BadRequest("window_days must be between 1 and 730").Write(w)
		return
	}
	if minNights < 1 || minNights > 100 {
		problem.BadRequest("min_nights must be between 1 and 100").Write(w)
		return
	}

	result, err := h.chronotypeService.Compute(r.Context(), r.URL.Query().Get("as_of"), windowDays, minNights)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("as_of must be formatted as YYYY-MM-DD").Write(w)
			return
		}
		problem.InternalError("Failed to compute chronotype").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetQuote handles GET /v1/dashboard/quote
// @Summary Quote of the day
// @Description A philosophy quote pinned to the given date. The same date always returns the same quote for a given cache.
// @Tags dashboard
// @Produce json
// @Param date query string false "Date to pin the quote to (YYYY-MM-DD, default: today UTC)" example(2025-06-30)
// @Success 200 {object} domain.QuoteResponse "Quote of the day"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "No quotes cached"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /dashboard/quote [get]
func (h *DashboardHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	result, err := h.quoteService.QuoteOfDay(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("date must be formatted as YYYY-MM-DD").Write(w)
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No quotes are cached").Write(w)
			return
		}
		problem.InternalError("Failed to fetch quote").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// queryParam reads a query parameter with a default value.
func queryParam(r *http.Request, name, defaultValue string) string {
	if val := r.URL.Query().Get(name); val != "" {
		return val
	}
	return defaultValue
}
