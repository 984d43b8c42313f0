package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/stef4k/sleep-dashboard/internal/analytics"
	"github.com/stef4k/sleep-dashboard/internal/dataset"
	"github.com/stef4k/sleep-dashboard/internal/domain"
	"github.com/stef4k/sleep-dashboard/internal/repository"
)

// SummaryService computes descriptive statistics over trailing windows.
type SummaryService interface {
	// Summarize aggregates the sessions in the trailing window ending at the
	// as-of date. Metric blocks are nil when the window holds no data.
	Summarize(ctx context.Context, req domain.SummaryRequest) (*domain.SummaryStats, error)
	// Compare splits the window into weekday and weekend nights and
	// summarizes each side.
	Compare(ctx context.Context, req domain.SummaryRequest) (*domain.CompareStats, error)
}

type summaryService struct {
	repo          repository.SessionRepository
	targetMinutes int
}

// NewSummaryService creates a new SummaryService. targetMinutes sets the
// nightly sleep target used for attainment stats; zero selects the default.
func NewSummaryService(repo repository.SessionRepository, targetMinutes int) SummaryService {
	if targetMinutes <= 0 {
		targetMinutes = analytics.DefaultTargetMinutes
	}
	return &summaryService{
		repo:          repo,
		targetMinutes: targetMinutes,
	}
}

func (s *summaryService) Summarize(ctx context.Context, req domain.SummaryRequest) (*domain.SummaryStats, error) {
	tracer := otel.Tracer("sleep-dashboard-api/summary")
	ctx, span := tracer.Start(ctx, "SummaryService.Summarize",
		trace.WithAttributes(
			attribute.String("summary.as_of", req.AsOf),
			attribute.Int("summary.window_days", req.WindowDays),
		),
	)
	defer span.End()

	if inputJSON, err := json.Marshal(req); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	sessions, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	asOf, err := resolveAsOf(sessions, req.AsOf)
	if err != nil {
		return nil, err
	}

	filtered := analytics.FilterDay(analytics.FilterKind(sessions, req.Kind), req.Day)
	result := analytics.Summarize(filtered, asOf, req.WindowDays, s.targetMinutes)

	span.SetAttributes(attribute.Int("summary.session_count", result.SessionCount))
	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return &result, nil
}

func (s *summaryService) Compare(ctx context.Context, req domain.SummaryRequest) (*domain.CompareStats, error) {
	tracer := otel.Tracer("sleep-dashboard-api/summary")
	ctx, span := tracer.Start(ctx, "SummaryService.Compare",
		trace.WithAttributes(
			attribute.String("summary.as_of", req.AsOf),
			attribute.Int("summary.window_days", req.WindowDays),
		),
	)
	defer span.End()

	sessions, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	asOf, err := resolveAsOf(sessions, req.AsOf)
	if err != nil {
		return nil, err
	}

	filtered := analytics.FilterKind(sessions, req.Kind)
	result := analytics.Compare(filtered, asOf, req.WindowDays, s.targetMinutes)

	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return &result, nil
}

// resolveAsOf picks the reference date for trailing windows. An explicit
// YYYY-MM-DD date wins; otherwise the newest session date anchors the window,
// so results stay stable for a dataset that is no longer being appended to.
// Only an empty dataset falls back to the wall clock.
func resolveAsOf(sessions []domain.SleepSession, explicit string) (time.Time, error) {
	if explicit != "" {
		t, err := time.Parse(dataset.DateLayout, explicit)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: as_of must be formatted as YYYY-MM-DD", domain.ErrInvalidInput)
		}
		return t, nil
	}
	if latest, ok := analytics.LatestDate(sessions); ok {
		return latest, nil
	}
	return time.Now().UTC(), nil
}
