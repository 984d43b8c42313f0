package service

import (
	"context"
	"encoding/json"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/stef4k/sleep-dashboard/internal/analytics"
	"github.com/stef4k/sleep-dashboard/internal/domain"
	"github.com/stef4k/sleep-dashboard/internal/repository"
)

// CorrelationService measures linear association between metric pairs.
type CorrelationService interface {
	// Correlate computes the Pearson coefficient for one metric pair over
	// the whole dataset, using only sessions where both metrics are present.
	Correlate(ctx context.Context, req domain.CorrelationRequest) (*domain.CorrelationResult, error)
	// Matrix computes pairwise coefficients for a set of metrics.
	Matrix(ctx context.Context, metrics []string, kind, day string) (*domain.CorrelationMatrix, error)
	// Metrics lists the metrics available for correlation.
	Metrics() []domain.MetricInfo
}

type correlationService struct {
	repo repository.SessionRepository
}

// NewCorrelationService creates a new CorrelationService.
func NewCorrelationService(repo repository.SessionRepository) CorrelationService {
	return &correlationService{repo: repo}
}

func (s *correlationService) Correlate(ctx context.Context, req domain.CorrelationRequest) (*domain.CorrelationResult, error) {
	tracer := otel.Tracer("sleep-dashboard-api/correlation")
	ctx, span := tracer.Start(ctx, "CorrelationService.Correlate",
		trace.WithAttributes(
			attribute.String("correlation.metric_x", req.MetricX),
			attribute.String("correlation.metric_y", req.MetricY),
		),
	)
	defer span.End()

	sessions, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := analytics.FilterDay(analytics.FilterKind(sessions, req.Kind), req.Day)

	result, err := analytics.Correlate(filtered, req.MetricX, req.MetricY)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Float64("correlation.coefficient", result.Coefficient),
		attribute.Int("correlation.pairs", result.Pairs),
	)
	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return result, nil
}

func (s *correlationService) Matrix(ctx context.Context, metrics []string, kind, day string) (*domain.CorrelationMatrix, error) {
	sessions, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := analytics.FilterDay(analytics.FilterKind(sessions, kind), day)

	return analytics.Matrix(filtered, metrics)
}

func (s *correlationService) Metrics() []domain.MetricInfo {
	names := analytics.MetricNames()
	infos := make([]domain.MetricInfo, 0, len(names))
	for _, name := range names {
		label, err := analytics.MetricLabel(name)
		if err != nil {
			continue
		}
		infos = append(infos, domain.MetricInfo{Name: name, Label: label})
	}
	return infos
}
