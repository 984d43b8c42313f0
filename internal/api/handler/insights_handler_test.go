package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stef4k/sleep-dashboard/internal/domain"
	"github.com/stef4k/sleep-dashboard/internal/llm"
)

func TestGetInsights_Success(t *testing.T) {
	handler := NewInsightsHandler(&MockInsightsService{}, &mockLangfuseClient{enabled: true})

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/insights", nil)
	rec := httptest.NewRecorder()

	handler.GetInsights(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GetInsights() status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp domain.InsightsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Insights.Summary == "" {
		t.Error("expected a non-empty insights summary")
	}
	if resp.TraceID == "" {
		t.Error("expected a trace_id for feedback linking")
	}
}

func TestGetInsights_ErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantStatusCode int
	}{
		{"LLM not configured", llm.ErrOpenAIUnavailable, http.StatusServiceUnavailable},
		{"LLM request failed", llm.ErrOpenAIRequest, http.StatusBadGateway},
		{"LLM response unparseable", llm.ErrOpenAIResponse, http.StatusBadGateway},
		{"bad as_of date", domain.ErrInvalidInput, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewInsightsHandler(&MockInsightsService{
				generateFunc: func(ctx context.Context, asOf string) (*domain.InsightsResponse, error) {
					return nil, tt.err
				},
			}, &mockLangfuseClient{})

			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/insights", nil)
			rec := httptest.NewRecorder()

			handler.GetInsights(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetInsights() status = %d, want %d", rec.Code, tt.wantStatusCode)
			}
		})
	}
}

func TestPostFeedback_Success(t *testing.T) {
	mockLangfuse := &mockLangfuseClient{enabled: true}
	handler := NewInsightsHandler(&MockInsightsService{}, mockLangfuse)

	body := `{"trace_id": "trace-123", "score": 4, "comment": "Helpful!"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/dashboard/insights/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.PostFeedback(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("PostFeedback() status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if mockLangfuse.scoreCalls != 1 {
		t.Fatalf("CreateScore calls = %d, want 1", mockLangfuse.scoreCalls)
	}
	if mockLangfuse.lastScore.TraceID != "trace-123" {
		t.Errorf("TraceID = %q, want trace-123", mockLangfuse.lastScore.TraceID)
	}
	if mockLangfuse.lastScore.Name != "user_rating" {
		t.Errorf("Name = %q, want user_rating", mockLangfuse.lastScore.Name)
	}
	if mockLangfuse.lastScore.Value != 4 {
		t.Errorf("Value = %v, want 4", mockLangfuse.lastScore.Value)
	}
}

func TestPostFeedback_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing trace_id", `{"score": 4}`},
		{"score too low", `{"trace_id": "abc", "score": 0}`},
		{"score too high", `{"trace_id": "abc", "score": 6}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLangfuse := &mockLangfuseClient{enabled: true}
			handler := NewInsightsHandler(&MockInsightsService{}, mockLangfuse)

			req := httptest.NewRequest(http.MethodPost, "/v1/dashboard/insights/feedback", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.PostFeedback(rec, req)

			if rec.Code != http.StatusUnprocessableEntity {
				t.Errorf("PostFeedback() status = %d, want 422", rec.Code)
			}
			if mockLangfuse.scoreCalls != 0 {
				t.Errorf("CreateScore calls = %d, want 0", mockLangfuse.scoreCalls)
			}
		})
	}
}

func TestPostFeedback_InvalidJSON(t *testing.T) {
	handler := NewInsightsHandler(&MockInsightsService{}, &mockLangfuseClient{})

	req := httptest.NewRequest(http.MethodPost, "/v1/dashboard/insights/feedback", strings.NewReader(`{invalid}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.PostFeedback(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("PostFeedback() status = %d, want 400", rec.Code)
	}
}

func TestPostFeedback_DeliveryFailureStillAccepted(t *testing.T) {
	mockLangfuse := &mockLangfuseClient{enabled: true, scoreErr: context.DeadlineExceeded}
	handler := NewInsightsHandler(&MockInsightsService{}, mockLangfuse)

	body := `{"trace_id": "trace-123", "score": 2}`
	req := httptest.NewRequest(http.MethodPost, "/v1/dashboard/insights/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.PostFeedback(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("PostFeedback() status = %d, want 204", rec.Code)
	}
}
