package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/stef4k/sleep-dashboard/internal/domain"
	"github.com/stef4k/sleep-dashboard/internal/langfuse"
)

// MockInsightsLLM returns canned insights and records the last context.
type MockInsightsLLM struct {
	insights    *domain.LLMInsights
	err         error
	lastContext *domain.InsightsContext
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsights, error) {
	m.lastContext = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.insights, nil
}

// MockLangfuseClient records trace and score calls.
type MockLangfuseClient struct {
	enabled  bool
	traceID  string
	traceErr error
	traces   []langfuse.TraceInput
	scores   []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.traces = append(m.traces, in)
	return m.traceID, m.traceErr
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}

// failingSessionRepository returns the configured error from every method.
type failingSessionRepository struct {
	err error
}

func (f *failingSessionRepository) ListAll(ctx context.Context) ([]domain.SleepSession, error) {
	return nil, f.err
}

func (f *failingSessionRepository) List(ctx context.Context, filter domain.SessionFilter) ([]domain.SleepSession, error) {
	return nil, f.err
}

func (f *failingSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepSession, error) {
	return nil, f.err
}

// Test data builders

func testDay(tb testing.TB, day string) time.Time {
	tb.Helper()
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		tb.Fatalf("bad test day %q: %v", day, err)
	}
	return d
}

// nightOn builds a plausible night session on the given civil day.
func nightOn(tb testing.TB, day string, bedHour float64, asleepMin int) domain.SleepSession {
	tb.Helper()
	d := testDay(tb, day)

	start := d.Add(time.Duration(bedHour * float64(time.Hour)))
	awake := 45
	duration := asleepMin + awake
	deep := asleepMin * 17 / 100
	rem := asleepMin * 22 / 100

	score := float64(asleepMin) / 6
	if score > 100 {
		score = 100
	}
	rhr := 52.0

	return domain.SleepSession{
		ID:               domain.SessionID(start),
		Date:             d,
		Kind:             domain.SessionKindNight,
		StartAt:          start,
		EndAt:            start.Add(time.Duration(duration) * time.Minute),
		DurationMin:      duration,
		MinutesAsleep:    asleepMin,
		MinutesAwake:     awake,
		Efficiency:       float64(asleepMin) / float64(duration) * 100,
		DeepMin:          deep,
		LightMin:         asleepMin - deep - rem,
		RemMin:           rem,
		OverallScore:     &score,
		RestingHeartRate: &rhr,
	}
}

// napOn builds a nap on the given civil day: no stage minutes, no score.
func napOn(tb testing.TB, day string, startHour float64, asleepMin int) domain.SleepSession {
	tb.Helper()
	d := testDay(tb, day)

	start := d.Add(time.Duration(startHour * float64(time.Hour)))
	duration := asleepMin + 5
	rhr := 52.0

	return domain.SleepSession{
		ID:               domain.SessionID(start),
		Date:             d,
		Kind:             domain.SessionKindNap,
		StartAt:          start,
		EndAt:            start.Add(time.Duration(duration) * time.Minute),
		DurationMin:      duration,
		MinutesAsleep:    asleepMin,
		MinutesAwake:     5,
		Efficiency:       float64(asleepMin) / float64(duration) * 100,
		RestingHeartRate: &rhr,
	}
}

// nightsInJune builds count consecutive nights starting June 1 2025, each
// with the given minutes asleep.
func nightsInJune(tb testing.TB, count, asleepMin int) []domain.SleepSession {
	tb.Helper()
	sessions := make([]domain.SleepSession, 0, count)
	for i := 0; i < count; i++ {
		day := time.Date(2025, 6, 1+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		sessions = append(sessions, nightOn(tb, day, 23.0, asleepMin))
	}
	return sessions
}
