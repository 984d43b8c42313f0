package service

import (
	"context"

	"github.com/stef4k/sleep-dashboard/internal/analytics"
	"github.com/stef4k/sleep-dashboard/internal/domain"
	"github.com/stef4k/sleep-dashboard/internal/repository"
)

// ChartService assembles the data series behind the dashboard panels.
type ChartService interface {
	// Heatmap returns one value per calendar day of a year.
	Heatmap(ctx context.Context, metric string, year int) (*domain.HeatmapSeries, error)
	// Rhythm returns bedtime and wake hours per session in the window.
	Rhythm(ctx context.Context, asOf string, windowDays int) (*domain.RhythmSeries, error)
	// Scatter returns paired metric values for sessions in the window.
	Scatter(ctx context.Context, metricX, metricY, asOf string, windowDays int) (*domain.ScatterSeries, error)
	// Funnel returns mean minutes per sleep stage for nights in the window.
	Funnel(ctx context.Context, asOf string, windowDays int) (*domain.FunnelSeries, error)
	// Parallel returns per-session rows across several metrics.
	Parallel(ctx context.Context, metrics []string, asOf string, windowDays int) (*domain.ParallelSeries, error)
}

type chartService struct {
	repo repository.SessionRepository
}

// NewChartService creates a new ChartService.
func NewChartService(repo repository.SessionRepository) ChartService {
	return &chartService{repo: repo}
}

func (s *chartService) Heatmap(ctx context.Context, metric string, year int) (*domain.HeatmapSeries, error) {
	sessions, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.Heatmap(sessions, metric, year)
}

func (s *chartService) Rhythm(ctx context.Context, asOf string, windowDays int) (*domain.RhythmSeries, error) {
	sessions, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	asOfDate, err := resolveAsOf(sessions, asOf)
	if err != nil {
		return nil, err
	}
	return analytics.Rhythm(sessions, asOfDate, windowDays), nil
}

func (s *chartService) Scatter(ctx context.Context, metricX, metricY, asOf string, windowDays int) (*domain.ScatterSeries, error) {
	sessions, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	asOfDate, err := resolveAsOf(sessions, asOf)
	if err != nil {
		return nil, err
	}
	return analytics.Scatter(sessions, metricX, metricY, asOfDate, windowDays)
}

func (s *chartService) Funnel(ctx context.Context, asOf string, windowDays int) (*domain.FunnelSeries, error) {
	sessions, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	asOfDate, err := resolveAsOf(sessions, asOf)
	if err != nil {
		return nil, err
	}
	return analytics.Funnel(sessions, asOfDate, windowDays), nil
}

func (s *chartService) Parallel(ctx context.Context, metrics []string, asOf string, windowDays int) (*domain.ParallelSeries, error) {
	sessions, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	asOfDate, err := resolveAsOf(sessions, asOf)
	if err != nil {
		return nil, err
	}
	return analytics.Parallel(sessions, metrics, asOfDate, windowDays)
}
