package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stef4k/sleep-dashboard/internal/domain"
	"github.com/stef4k/sleep-dashboard/internal/repository"
)

func TestCorrelationService_Correlate(t *testing.T) {
	// Longer nights carry higher scores, so the association is positive.
	sessions := []domain.SleepSession{
		nightOn(t, "2025-06-01", 23.0, 300),
		nightOn(t, "2025-06-02", 23.0, 360),
		nightOn(t, "2025-06-03", 23.0, 420),
		nightOn(t, "2025-06-04", 23.0, 480),
		nightOn(t, "2025-06-05", 23.0, 450),
	}
	svc := NewCorrelationService(repository.NewMemorySessionRepository(sessions))

	result, err := svc.Correlate(context.Background(), domain.CorrelationRequest{
		MetricX: "duration_min",
		MetricY: "overall_score",
	})
	if err != nil {
		t.Fatalf("Correlate: %v", err)
	}

	if result.Coefficient <= 0.8 {
		t.Errorf("expected strong positive correlation, got %v", result.Coefficient)
	}
	if result.Pairs != 5 {
		t.Errorf("expected 5 pairs, got %d", result.Pairs)
	}
	if result.LabelX == "" || result.LabelY == "" {
		t.Errorf("expected metric labels, got %+v", result)
	}
}

func TestCorrelationService_UnknownMetric(t *testing.T) {
	svc := NewCorrelationService(repository.NewMemorySessionRepository(nightsInJune(t, 5, 430)))

	_, err := svc.Correlate(context.Background(), domain.CorrelationRequest{
		MetricX: "duration_min",
		MetricY: "shoe_size",
	})
	if !errors.Is(err, domain.ErrUnknownMetric) {
		t.Errorf("expected ErrUnknownMetric, got %v", err)
	}
}

func TestCorrelationService_InsufficientData(t *testing.T) {
	svc := NewCorrelationService(repository.NewMemorySessionRepository(nightsInJune(t, 2, 430)))

	_, err := svc.Correlate(context.Background(), domain.CorrelationRequest{
		MetricX: "duration_min",
		MetricY: "overall_score",
	})
	if !errors.Is(err, domain.ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}

func TestCorrelationService_Matrix(t *testing.T) {
	// Varied nights so every metric has spread.
	sessions := make([]domain.SleepSession, 0, 10)
	for i := 0; i < 10; i++ {
		day := testDay(t, "2025-06-01").AddDate(0, 0, i).Format("2006-01-02")
		sessions = append(sessions, nightOn(t, day, 22.5+float64(i%3)*0.5, 380+i*12))
	}
	svc := NewCorrelationService(repository.NewMemorySessionRepository(sessions))

	matrix, err := svc.Matrix(context.Background(), []string{"duration_min", "minutes_asleep", "efficiency"}, "", "")
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}

	if len(matrix.Metrics) != 3 || len(matrix.Coefficients) != 3 {
		t.Fatalf("expected 3x3 matrix, got %d metrics", len(matrix.Metrics))
	}
	for i := range matrix.Coefficients {
		if matrix.Coefficients[i][i] == nil || *matrix.Coefficients[i][i] != 1 {
			t.Errorf("expected diagonal of 1 at %d", i)
		}
	}
}

func TestCorrelationService_MetricsCatalog(t *testing.T) {
	svc := NewCorrelationService(repository.NewMemorySessionRepository(nil))

	infos := svc.Metrics()
	if len(infos) == 0 {
		t.Fatal("expected metric catalog")
	}

	found := false
	for _, info := range infos {
		if info.Name == "minutes_asleep" {
			found = true
			if info.Label == "" {
				t.Error("expected a label for minutes_asleep")
			}
		}
	}
	if !found {
		t.Error("expected minutes_asleep in the catalog")
	}
}
