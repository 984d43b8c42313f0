package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stef4k/sleep-dashboard/internal/domain"
	"github.com/stef4k/sleep-dashboard/internal/repository"
)

func insightsFixture(t *testing.T) []domain.SleepSession {
	t.Helper()
	// Varied nights across April-June 2025 so correlations have spread.
	sessions := make([]domain.SleepSession, 0, 60)
	for i := 0; i < 60; i++ {
		day := testDay(t, "2025-04-15").AddDate(0, 0, i).Format("2006-01-02")
		sessions = append(sessions, nightOn(t, day, 22.5+float64(i%4)*0.5, 390+(i%7)*15))
	}
	return sessions
}

func TestInsightsService_Generate(t *testing.T) {
	canned := &domain.LLMInsights{
		Summary:      "Sleep held steady.",
		Observations: []string{"Durations are stable."},
		Guidance:     []string{"Keep the current bedtime."},
	}
	mockLLM := &MockInsightsLLM{insights: canned}
	mockLangfuse := &MockLangfuseClient{enabled: true, traceID: "lf-trace-1"}

	svc := NewInsightsService(
		repository.NewMemorySessionRepository(insightsFixture(t)),
		mockLLM,
		mockLangfuse,
		0,
	)

	result, err := svc.Generate(context.Background(), "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if result.Insights.Summary != canned.Summary {
		t.Errorf("expected LLM summary to pass through, got %q", result.Insights.Summary)
	}
	if result.Context.History.Window.Days != InsightsHistoryDays {
		t.Errorf("expected %d-day history window, got %d", InsightsHistoryDays, result.Context.History.Window.Days)
	}
	if result.Context.Recent.Window.Days != InsightsRecentDays {
		t.Errorf("expected %d-day recent window, got %d", InsightsRecentDays, result.Context.Recent.Window.Days)
	}
	if result.Context.Recommendation.Action == "" {
		t.Error("expected a recommendation in the context")
	}
	if len(result.Context.Correlations) == 0 {
		t.Error("expected correlations in the context")
	}

	// The LLM saw the same context that is echoed in the response.
	if mockLLM.lastContext == nil {
		t.Fatal("expected the LLM to receive a context")
	}
	if mockLLM.lastContext.History.SessionCount != result.Context.History.SessionCount {
		t.Error("context sent to LLM differs from the response context")
	}

	// Without an ambient OTEL trace the service falls back to an explicit
	// Langfuse trace for feedback linking.
	if result.TraceID != "lf-trace-1" {
		t.Errorf("expected trace ID lf-trace-1, got %q", result.TraceID)
	}
	if len(mockLangfuse.traces) != 1 {
		t.Fatalf("expected 1 trace, got %d", len(mockLangfuse.traces))
	}
	if mockLangfuse.traces[0].Name != "dashboard-insights" {
		t.Errorf("expected trace name dashboard-insights, got %s", mockLangfuse.traces[0].Name)
	}
}

func TestInsightsService_LLMErrorPropagates(t *testing.T) {
	wantErr := errors.New("model overloaded")
	svc := NewInsightsService(
		repository.NewMemorySessionRepository(insightsFixture(t)),
		&MockInsightsLLM{err: wantErr},
		&MockLangfuseClient{},
		0,
	)

	_, err := svc.Generate(context.Background(), "")
	if !errors.Is(err, wantErr) {
		t.Errorf("expected LLM error to propagate, got %v", err)
	}
}

func TestInsightsService_TracingDisabled(t *testing.T) {
	mockLangfuse := &MockLangfuseClient{enabled: false}
	svc := NewInsightsService(
		repository.NewMemorySessionRepository(insightsFixture(t)),
		&MockInsightsLLM{insights: &domain.LLMInsights{Summary: "ok"}},
		mockLangfuse,
		0,
	)

	result, err := svc.Generate(context.Background(), "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.TraceID != "" {
		t.Errorf("expected empty trace ID, got %q", result.TraceID)
	}
	if len(mockLangfuse.traces) != 0 {
		t.Errorf("expected no traces for disabled client, got %d", len(mockLangfuse.traces))
	}
}
