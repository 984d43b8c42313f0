package service

import (
	"context"
	"encoding/json"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/stef4k/sleep-dashboard/internal/analytics"
	"github.com/stef4k/sleep-dashboard/internal/domain"
	"github.com/stef4k/sleep-dashboard/internal/langfuse"
	"github.com/stef4k/sleep-dashboard/internal/llm"
	"github.com/stef4k/sleep-dashboard/internal/repository"
)

const (
	// Window sizes for the insights context
	InsightsHistoryDays = 90
	InsightsRecentDays  = 14
)

// insightsCorrelationPairs are the metric pairs surfaced to the LLM.
var insightsCorrelationPairs = [][2]string{
	{"duration_min", "overall_score"},
	{"efficiency", "resting_heart_rate"},
	{"deep_pct", "overall_score"},
	{"start_hour", "efficiency"},
}

// InsightsService generates narrative insights over the computed aggregates.
type InsightsService interface {
	// Generate builds the aggregate context, asks the LLM for a narrative,
	// and returns both together with a trace ID for feedback linking.
	Generate(ctx context.Context, asOf string) (*domain.InsightsResponse, error)
}

type insightsService struct {
	repo           repository.SessionRepository
	llmClient      llm.InsightsLLM
	langfuseClient langfuse.Client
	targetMinutes  int
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	repo repository.SessionRepository,
	llmClient llm.InsightsLLM,
	langfuseClient langfuse.Client,
	targetMinutes int,
) InsightsService {
	if targetMinutes <= 0 {
		targetMinutes = analytics.DefaultTargetMinutes
	}
	return &insightsService{
		repo:           repo,
		llmClient:      llmClient,
		langfuseClient: langfuseClient,
		targetMinutes:  targetMinutes,
	}
}

func (s *insightsService) Generate(ctx context.Context, asOf string) (*domain.InsightsResponse, error) {
	tracer := otel.Tracer("sleep-dashboard-api/insights")
	ctx, span := tracer.Start(ctx, "InsightsService.Generate",
		trace.WithAttributes(attribute.String("insights.as_of", asOf)),
	)
	defer span.End()

	sessions, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	asOfDate, err := resolveAsOf(sessions, asOf)
	if err != nil {
		return nil, err
	}

	insightsCtx := &domain.InsightsContext{
		History:        analytics.Summarize(sessions, asOfDate, InsightsHistoryDays, s.targetMinutes),
		Recent:         analytics.Summarize(sessions, asOfDate, InsightsRecentDays, s.targetMinutes),
		Compare:        analytics.Compare(sessions, asOfDate, InsightsHistoryDays, s.targetMinutes),
		Chronotype:     analytics.Chronotype(sessions, asOfDate, analytics.DefaultChronotypeWindowDays, analytics.DefaultChronotypeMinNights),
		Recommendation: analytics.Recommend(sessions, asOfDate, s.targetMinutes),
	}

	// Best-effort correlations; pairs without enough data are left out.
	for _, pair := range insightsCorrelationPairs {
		corr, err := analytics.Correlate(sessions, pair[0], pair[1])
		if err != nil {
			continue
		}
		insightsCtx.Correlations = append(insightsCtx.Correlations, *corr)
	}

	if inputJSON, err := json.Marshal(insightsCtx); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	insights, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	if outputJSON, err := json.Marshal(insights); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	response := &domain.InsightsResponse{
		Context:  *insightsCtx,
		Insights: *insights,
		TraceID:  s.traceID(ctx, insightsCtx, insights),
	}

	return response, nil
}

// traceID links the response to a trace users can score. The ambient OTEL
// trace wins when one is recording; otherwise a trace is created directly
// through the Langfuse API so feedback still has something to attach to.
func (s *insightsService) traceID(ctx context.Context, input *domain.InsightsContext, output *domain.LLMInsights) string {
	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.IsValid() {
		return spanCtx.TraceID().String()
	}

	if s.langfuseClient == nil || !s.langfuseClient.IsEnabled() {
		return ""
	}

	traceID, err := s.langfuseClient.CreateTrace(ctx, langfuse.TraceInput{
		Name:   "dashboard-insights",
		Input:  input,
		Output: output,
		Tags:   []string{"sleep-dashboard", "insights"},
	})
	if err != nil {
		log.Printf("[insights] langfuse trace failed: %v", err)
	}
	return traceID
}
