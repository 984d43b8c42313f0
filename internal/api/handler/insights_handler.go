package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/stef4k/sleep-dashboard/internal/api/validation"
	"github.com/stef4k/sleep-dashboard/internal/domain"
	"github.com/stef4k/sleep-dashboard/internal/langfuse"
	"github.com/stef4k/sleep-dashboard/internal/llm"
	"github.com/stef4k/sleep-dashboard/internal/service"
	"github.com/stef4k/sleep-dashboard/pkg/problem"
)

type InsightsHandler struct {
	insightsService service.InsightsService
	langfuseClient  langfuse.Client
}

func NewInsightsHandler(insightsService service.InsightsService, langfuseClient langfuse.Client) *InsightsHandler {
	return &InsightsHandler{
		insightsService: insightsService,
		langfuseClient:  langfuseClient,
	}
}

// GetInsights handles GET /v1/dashboard/insights
// @Summary LLM-powered sleep insights
// @Description Generate a narrative reading of the recent sleep data: long and short window aggregates, weekday/weekend contrast, chronotype, and the strongest correlations, interpreted by an LLM.
// @Tags insights
// @Produce json
// @Param as_of query string false "Reference date (YYYY-MM-DD, default: latest session date)" example(2025-06-30)
// @Success 200 {object} domain.InsightsResponse "Insights with LLM analysis"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service not configured"
// @Router /dashboard/insights [get]
func (h *InsightsHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	result, err := h.insightsService.Generate(r.Context(), r.URL.Query().Get("as_of"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("as_of must be formatted as YYYY-MM-DD").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.New(http.StatusServiceUnavailable, "service-unavailable", "Service Unavailable",
				"OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error",
				"Failed to generate insights from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate insights").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// PostFeedback handles POST /v1/dashboard/insights/feedback
// @Summary Submit feedback on insights
// @Description Record a user rating and optional comment for a previous insights response, linked by its trace ID.
// @Tags insights
// @Accept json
// @Produce json
// @Param body body domain.FeedbackRequest true "Feedback request"
// @Success 204 "Feedback recorded"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Invalid field values"
// @Router /dashboard/insights/feedback [post]
func (h *InsightsHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	var req domain.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	// Feedback is accepted even when the score cannot be delivered.
	err := h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})
	if err != nil {
		log.Printf("[insights] langfuse score failed: %v", err)
	}

	w.WriteHeader(http.StatusNoContent)
}
