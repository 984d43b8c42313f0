package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stef4k/sleep-dashboard/internal/domain"
	"github.com/stef4k/sleep-dashboard/internal/service"
	"github.com/stef4k/sleep-dashboard/pkg/problem"
)

type SessionHandler struct {
	service service.SessionService
}

func NewSessionHandler(service service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// List handles GET /v1/sessions
// @Summary List sleep sessions
// @Description Fetch the loaded dataset page by page, newest first. Filter by date range and session kind.
// @Tags sessions
// @Produce json
// @Param from query string false "Earliest start date (YYYY-MM-DD or RFC3339)" example(2025-05-01)
// @Param to query string false "Latest start date (YYYY-MM-DD or RFC3339)" example(2025-06-30)
// @Param kind query string false "Session kind filter" Enums(all, night, nap) default(all)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SessionListResponse "Sessions with pagination"
// @Failure 400 {object} problem.Problem "Invalid cursor"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sessions [get]
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := parseSessionFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid cursor").Write(w)
			return
		}
		problem.InternalError("Failed to list sessions").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetByID handles GET /v1/sessions/{sessionId}
// @Summary Get one sleep session
// @Description Fetch a single session with its derived display fields.
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session UUID" format(uuid)
// @Success 200 {object} domain.SessionResponse "Session"
// @Failure 400 {object} problem.Problem "Invalid session ID"
// @Failure 404 {object} problem.Problem "Session not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sessions/{sessionId} [get]
func (h *SessionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionId"))
	if err != nil {
		problem.BadRequest("Invalid session ID format").Write(w)
		return
	}

	response, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Session not found").Write(w)
			return
		}
		problem.InternalError("Failed to fetch session").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseSessionFilter(r *http.Request) (domain.SessionFilter, []problem.FieldError) {
	var filter domain.SessionFilter
	var fieldErrors []problem.FieldError

	// Parse 'from' parameter
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := parseDateOrTime(fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a YYYY-MM-DD date or RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	// Parse 'to' parameter
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := parseDateOrTime(toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a YYYY-MM-DD date or RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	// Parse 'kind' parameter
	switch kind := r.URL.Query().Get("kind"); kind {
	case "", "all":
	case "night":
		filter.Kind = domain.SessionKindNight
	case "nap":
		filter.Kind = domain.SessionKindNap
	default:
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   "kind",
			Message: "must be one of: all, night, nap",
		})
	}

	// Parse 'limit' parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	// Parse 'cursor' parameter
	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}

// parseDateOrTime accepts a civil date or a full RFC3339 timestamp.
func parseDateOrTime(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
