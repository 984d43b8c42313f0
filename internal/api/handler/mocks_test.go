package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stef4k/sleep-dashboard/internal/domain"
	"github.com/stef4k/sleep-dashboard/internal/langfuse"
)

// MockSessionService is a mock implementation of SessionService
type MockSessionService struct {
	listFunc func(ctx context.Context, filter domain.SessionFilter) (*domain.SessionListResponse, error)
	getFunc  func(ctx context.Context, id uuid.UUID) (*domain.SessionResponse, error)
}

func (m *MockSessionService) List(ctx context.Context, filter domain.SessionFilter) (*domain.SessionListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.SessionListResponse{
		Data:       []domain.SessionResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockSessionService) Get(ctx context.Context, id uuid.UUID) (*domain.SessionResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return &domain.SessionResponse{
		ID:      id,
		Date:    "2025-06-14",
		Kind:    domain.SessionKindNight,
		StartAt: time.Date(2025, 6, 13, 23, 30, 0, 0, time.UTC),
		EndAt:   time.Date(2025, 6, 14, 7, 15, 0, 0, time.UTC),
	}, nil
}

// MockSummaryService is a mock implementation of SummaryService
type MockSummaryService struct {
	summarizeFunc func(ctx context.Context, req domain.SummaryRequest) (*domain.SummaryStats, error)
	compareFunc   func(ctx context.Context, req domain.SummaryRequest) (*domain.CompareStats, error)
}

func (m *MockSummaryService) Summarize(ctx context.Context, req domain.SummaryRequest) (*domain.SummaryStats, error) {
	if m.summarizeFunc != nil {
		return m.summarizeFunc(ctx, req)
	}
	return &domain.SummaryStats{
		Window:       domain.WindowRange{AsOf: "2025-06-30", Days: 30},
		SessionCount: 30,
		NightCount:   30,
	}, nil
}

func (m *MockSummaryService) Compare(ctx context.Context, req domain.SummaryRequest) (*domain.CompareStats, error) {
	if m.compareFunc != nil {
		return m.compareFunc(ctx, req)
	}
	return &domain.CompareStats{
		Window: domain.WindowRange{AsOf: "2025-06-30", Days: 30},
	}, nil
}

// MockRecommendationService is a mock implementation of RecommendationService
type MockRecommendationService struct {
	recommendFunc func(ctx context.Context, asOf string) (*domain.Recommendation, error)
}

func (m *MockRecommendationService) Recommend(ctx context.Context, asOf string) (*domain.Recommendation, error) {
	if m.recommendFunc != nil {
		return m.recommendFunc(ctx, asOf)
	}
	return &domain.Recommendation{
		Action:        domain.RecommendationMaintainRoutine,
		Reason:        "recent sleep is on target",
		AsOf:          "2025-06-30",
		TargetMinutes: 420,
	}, nil
}

// MockChronotypeService is a mock implementation of ChronotypeService
type MockChronotypeService struct {
	computeFunc func(ctx context.Context, asOf string, windowDays, minNights int) (*domain.ChronotypeResult, error)
}

func (m *MockChronotypeService) Compute(ctx context.Context, asOf string, windowDays, minNights int) (*domain.ChronotypeResult, error) {
	if m.computeFunc != nil {
		return m.computeFunc(ctx, asOf, windowDays, minNights)
	}
	return &domain.ChronotypeResult{
		Chronotype:                   domain.ChronotypeIntermediate,
		MidSleepTime:                 "03:30",
		MidSleepMinutesAfterMidnight: 210,
		WindowDays:                   windowDays,
		NightsUsed:                   30,
	}, nil
}

// MockQuoteService is a mock implementation of QuoteService
type MockQuoteService struct {
	quoteFunc func(ctx context.Context, date string) (*domain.QuoteResponse, error)
}

func (m *MockQuoteService) QuoteOfDay(ctx context.Context, date string) (*domain.QuoteResponse, error) {
	if m.quoteFunc != nil {
		return m.quoteFunc(ctx, date)
	}
	return &domain.QuoteResponse{
		Date: "2025-06-30",
		Quote: domain.Quote{
			Text:        "We are what we repeatedly do.",
			Philosopher: "Aristotle",
		},
	}, nil
}

// MockCorrelationService is a mock implementation of CorrelationService
type MockCorrelationService struct {
	correlateFunc func(ctx context.Context, req domain.CorrelationRequest) (*domain.CorrelationResult, error)
	matrixFunc    func(ctx context.Context, metrics []string, kind, day string) (*domain.CorrelationMatrix, error)
	metricsFunc   func() []domain.MetricInfo
}

func (m *MockCorrelationService) Correlate(ctx context.Context, req domain.CorrelationRequest) (*domain.CorrelationResult, error) {
	if m.correlateFunc != nil {
		return m.correlateFunc(ctx, req)
	}
	return &domain.CorrelationResult{
		MetricX:     req.MetricX,
		MetricY:     req.MetricY,
		Coefficient: 0.42,
		Pairs:       30,
	}, nil
}

func (m *MockCorrelationService) Matrix(ctx context.Context, metrics []string, kind, day string) (*domain.CorrelationMatrix, error) {
	if m.matrixFunc != nil {
		return m.matrixFunc(ctx, metrics, kind, day)
	}
	return &domain.CorrelationMatrix{Metrics: metrics}, nil
}

func (m *MockCorrelationService) Metrics() []domain.MetricInfo {
	if m.metricsFunc != nil {
		return m.metricsFunc()
	}
	return []domain.MetricInfo{
		{Name: "minutes_asleep", Label: "Minutes asleep"},
		{Name: "overall_score", Label: "Overall score"},
	}
}

// MockChartService is a mock implementation of ChartService
type MockChartService struct {
	heatmapFunc  func(ctx context.Context, metric string, year int) (*domain.HeatmapSeries, error)
	rhythmFunc   func(ctx context.Context, asOf string, windowDays int) (*domain.RhythmSeries, error)
	scatterFunc  func(ctx context.Context, metricX, metricY, asOf string, windowDays int) (*domain.ScatterSeries, error)
	funnelFunc   func(ctx context.Context, asOf string, windowDays int) (*domain.FunnelSeries, error)
	parallelFunc func(ctx context.Context, metrics []string, asOf string, windowDays int) (*domain.ParallelSeries, error)
}

func (m *MockChartService) Heatmap(ctx context.Context, metric string, year int) (*domain.HeatmapSeries, error) {
	if m.heatmapFunc != nil {
		return m.heatmapFunc(ctx, metric, year)
	}
	return &domain.HeatmapSeries{Metric: metric, Year: 2025}, nil
}

func (m *MockChartService) Rhythm(ctx context.Context, asOf string, windowDays int) (*domain.RhythmSeries, error) {
	if m.rhythmFunc != nil {
		return m.rhythmFunc(ctx, asOf, windowDays)
	}
	return &domain.RhythmSeries{}, nil
}

func (m *MockChartService) Scatter(ctx context.Context, metricX, metricY, asOf string, windowDays int) (*domain.ScatterSeries, error) {
	if m.scatterFunc != nil {
		return m.scatterFunc(ctx, metricX, metricY, asOf, windowDays)
	}
	return &domain.ScatterSeries{MetricX: metricX, MetricY: metricY}, nil
}

func (m *MockChartService) Funnel(ctx context.Context, asOf string, windowDays int) (*domain.FunnelSeries, error) {
	if m.funnelFunc != nil {
		return m.funnelFunc(ctx, asOf, windowDays)
	}
	return &domain.FunnelSeries{}, nil
}

func (m *MockChartService) Parallel(ctx context.Context, metrics []string, asOf string, windowDays int) (*domain.ParallelSeries, error) {
	if m.parallelFunc != nil {
		return m.parallelFunc(ctx, metrics, asOf, windowDays)
	}
	return &domain.ParallelSeries{Metrics: metrics}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, asOf string) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, asOf string) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, asOf)
	}
	return &domain.InsightsResponse{
		Insights: domain.LLMInsights{
			Summary:      "Your sleep held steady.",
			Observations: []string{"Consistent bedtime"},
			Guidance:     []string{"Keep it up"},
		},
		TraceID: "trace-abc",
	}, nil
}

// mockLangfuseClient records score submissions.
type mockLangfuseClient struct {
	enabled    bool
	scoreErr   error
	scoreCalls int
	lastScore  langfuse.ScoreInput
}

func (m *mockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return "", nil
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scoreCalls++
	m.lastScore = in
	return m.scoreErr
}
