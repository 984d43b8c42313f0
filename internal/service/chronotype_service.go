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

// ChronotypeService classifies the sleeper from mid-sleep timing.
type ChronotypeService interface {
	// Compute classifies the chronotype from nights in the trailing window.
	Compute(ctx context.Context, asOf string, windowDays, minNights int) (*domain.ChronotypeResult, error)
}

type chronotypeService struct {
	repo repository.SessionRepository
}

// NewChronotypeService creates a new ChronotypeService.
func NewChronotypeService(repo repository.SessionRepository) ChronotypeService {
	return &chronotypeService{repo: repo}
}

func (s *chronotypeService) Compute(ctx context.Context, asOf string, windowDays, minNights int) (*domain.ChronotypeResult, error) {
	tracer := otel.Tracer("sleep-dashboard-api/chronotype")
	ctx, span := tracer.Start(ctx, "ChronotypeService.Compute",
		trace.WithAttributes(
			attribute.String("chronotype.as_of", asOf),
			attribute.Int("chronotype.window_days", windowDays),
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

	result := analytics.Chronotype(sessions, asOfDate, windowDays, minNights)

	span.SetAttributes(
		attribute.String("chronotype.kind", string(result.Chronotype)),
		attribute.Int("chronotype.nights_used", result.NightsUsed),
	)
	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return &result, nil
}
