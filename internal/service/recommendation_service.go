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

// RecommendationService derives the nightly routine recommendation.
type RecommendationService interface {
	// Recommend evaluates the recent window against the target and the
	// user's own baseline. Same dataset and as-of date, same answer.
	Recommend(ctx context.Context, asOf string) (*domain.Recommendation, error)
}

type recommendationService struct {
	repo          repository.SessionRepository
	targetMinutes int
}

// NewRecommendationService creates a new RecommendationService.
// targetMinutes zero selects the default nightly target.
func NewRecommendationService(repo repository.SessionRepository, targetMinutes int) RecommendationService {
	if targetMinutes <= 0 {
		targetMinutes = analytics.DefaultTargetMinutes
	}
	return &recommendationService{
		repo:          repo,
		targetMinutes: targetMinutes,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, asOf string) (*domain.Recommendation, error) {
	tracer := otel.Tracer("sleep-dashboard-api/recommendation")
	ctx, span := tracer.Start(ctx, "RecommendationService.Recommend",
		trace.WithAttributes(
			attribute.String("recommendation.as_of", asOf),
			attribute.Int("recommendation.target_minutes", s.targetMinutes),
		),
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

	result := analytics.Recommend(sessions, asOfDate, s.targetMinutes)

	span.SetAttributes(attribute.String("recommendation.action", string(result.Action)))
	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return &result, nil
}
