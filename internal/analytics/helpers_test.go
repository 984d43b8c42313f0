package analytics

import (
	"testing"
	"time"
	_ "time/tzdata" // Embed timezone database for CI/minimal containers

	"github.com/stef4k/sleep-dashboard/internal/domain"
)

func testDay(tb testing.TB, day string) time.Time {
	tb.Helper()
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		tb.Fatalf("bad test day %q: %v", day, err)
	}
	return d
}

// nightOn builds a plausible night session on the given civil day, starting
// at the fractional bed hour, with the given minutes asleep. Stage minutes
// follow the usual deep/REM/light split and the score tracks minutes asleep
// so generated series stay internally consistent.
func nightOn(tb testing.TB, day string, bedHour float64, asleepMin int) domain.SleepSession {
	tb.Helper()
	d := testDay(tb, day)

	start := d.Add(time.Duration(bedHour * float64(time.Hour)))
	awake := 45
	duration := asleepMin + awake
	end := start.Add(time.Duration(duration) * time.Minute)

	deep := asleepMin * 17 / 100
	rem := asleepMin * 22 / 100
	light := asleepMin - deep - rem

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
		EndAt:            end,
		DurationMin:      duration,
		MinutesAsleep:    asleepMin,
		MinutesAwake:     awake,
		Efficiency:       float64(asleepMin) / float64(duration) * 100,
		DeepMin:          deep,
		LightMin:         light,
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

// nightSeries builds one night per consecutive day starting at firstDay,
// with per-night minutes asleep and a constant bed hour.
func nightSeries(tb testing.TB, firstDay string, bedHour float64, asleep []int) []domain.SleepSession {
	tb.Helper()
	first := testDay(tb, firstDay)

	out := make([]domain.SleepSession, 0, len(asleep))
	for i, mins := range asleep {
		day := first.AddDate(0, 0, i).Format("2006-01-02")
		out = append(out, nightOn(tb, day, bedHour, mins))
	}
	return out
}

// nightSeriesHours builds one night per consecutive day with constant
// minutes asleep and per-night bed hours.
func nightSeriesHours(tb testing.TB, firstDay string, asleepMin int, bedHours []float64) []domain.SleepSession {
	tb.Helper()
	first := testDay(tb, firstDay)

	out := make([]domain.SleepSession, 0, len(bedHours))
	for i, h := range bedHours {
		day := first.AddDate(0, 0, i).Format("2006-01-02")
		out = append(out, nightOn(tb, day, h, asleepMin))
	}
	return out
}

func repeatInts(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func repeatFloats(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
