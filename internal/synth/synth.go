// Package synth generates a realistic synthetic sleep dataset: one night per
// day with occasional naps, weekend lie-ins, and score/heart-rate values that
// co-move with sleep quality. Generation is fully seeded, so a given config
// always yields the same dataset.
package synth

import (
	"math"
	"math/rand"
	"time"

	"github.com/stef4k/sleep-dashboard/internal/domain"
)

// Config controls the generated date range and nap frequency.
type Config struct {
	// StartDate and EndDate bound the generated days, inclusive.
	StartDate time.Time
	EndDate   time.Time
	// Seed drives every random draw.
	Seed int64
	// NapProb is the per-day nap probability; WeekendNapBoost is added on
	// Saturdays and Sundays.
	NapProb         float64
	WeekendNapBoost float64
}

// DefaultConfig mirrors the dataset the dashboard demos with: six months of
// nights at a fixed seed.
func DefaultConfig() Config {
	return Config{
		StartDate:       time.Date(2025, 4, 16, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC),
		Seed:            7,
		NapProb:         0.15,
		WeekendNapBoost: 0.07,
	}
}

// Generate produces the sessions for cfg, ordered by start time ascending.
func Generate(cfg Config) []domain.SleepSession {
	rng := rand.New(rand.NewSource(cfg.Seed))

	var sessions []domain.SleepSession
	for day := cfg.StartDate; !day.After(cfg.EndDate); day = day.AddDate(0, 0, 1) {
		weekend := day.Weekday() == time.Saturday || day.Weekday() == time.Sunday

		night, rhr := generateNight(rng, day, weekend)
		sessions = append(sessions, night)

		napProb := cfg.NapProb
		if weekend {
			napProb += cfg.WeekendNapBoost
		}
		if rng.Float64() < napProb {
			sessions = append(sessions, generateNap(rng, day, rhr))
		}
	}
	return sessions
}

func generateNight(rng *rand.Rand, day time.Time, weekend bool) (domain.SleepSession, float64) {
	var startHour, duration float64
	if weekend {
		startHour = normal(rng, 2.9, 0.6)
		duration = normal(rng, 520, 45)
	} else {
		startHour = normal(rng, 2.4, 0.55)
		duration = normal(rng, 485, 40)
	}
	startHour = clamp(startHour, 0.3, 4.2)
	durationMin := int(clamp(duration, 360, 620))

	eff := clamp(normal(rng, 0.87, 0.04), 0.75, 0.94)
	asleep := int(clamp(math.Round(float64(durationMin)*eff), 240, float64(durationMin)))
	awake := durationMin - asleep
	efficiency := float64(asleep) / float64(durationMin)

	// Stage split: deep ~10-25%, REM ~15-30%, light the remainder.
	deepFrac := clamp(normal(rng, 0.17, 0.04), 0.10, 0.25)
	remFrac := clamp(normal(rng, 0.22, 0.05), 0.15, 0.30)
	deep := int(math.Round(float64(asleep) * deepFrac))
	rem := int(math.Round(float64(asleep) * remFrac))
	light := asleep - deep - rem
	if light < 0 {
		light = 0
		overflow := deep + rem - asleep
		take := minInt(overflow, rem)
		rem -= take
		overflow -= take
		deep -= minInt(overflow, deep)
	}

	// Resting HR drops a little with better and longer sleep.
	rhr := 60 - 7*(efficiency-0.85) - 0.01*(float64(asleep)-420) + normal(rng, 0, 1.8)
	rhr = round1(clamp(rhr, 45, 75))

	// Score co-moves with efficiency, amount, and deep/REM; high resting HR
	// drags it down.
	score := 25 +
		55*efficiency +
		0.03*float64(asleep) +
		0.04*float64(deep) +
		0.02*float64(rem) -
		0.7*math.Max(0, rhr-56) +
		normal(rng, 0, 4.0)
	score = round1(clamp(score, 0, 100))

	startMinute := int(clamp(normal(rng, 15, 20), 0, 59))
	startSecond := rng.Intn(60)
	start := day.
		Add(time.Duration(startHour * float64(time.Hour))).
		Add(time.Duration(startMinute) * time.Minute).
		Add(time.Duration(startSecond) * time.Second).
		Truncate(time.Second)
	end := start.Add(time.Duration(durationMin) * time.Minute)

	return domain.SleepSession{
		ID:               domain.SessionID(start),
		Date:             day,
		Kind:             domain.SessionKindNight,
		StartAt:          start,
		EndAt:            end,
		DurationMin:      durationMin,
		MinutesAsleep:    asleep,
		MinutesAwake:     awake,
		Efficiency:       math.Round(efficiency * 100),
		DeepMin:          deep,
		LightMin:         light,
		RemMin:           rem,
		OverallScore:     &score,
		RestingHeartRate: &rhr,
	}, rhr
}

func generateNap(rng *rand.Rand, day time.Time, nightRHR float64) domain.SleepSession {
	startHour := clamp(normal(rng, 16.8, 2.0), 12.5, 21.5)
	durationMin := int(clamp(normal(rng, 55, 20), 20, 120))
	eff := clamp(normal(rng, 0.90, 0.05), 0.75, 0.98)
	asleep := int(math.Round(float64(durationMin) * eff))
	awake := durationMin - asleep

	start := day.
		Add(time.Duration(startHour * float64(time.Hour))).
		Add(time.Duration(rng.Intn(60)) * time.Minute).
		Add(time.Duration(rng.Intn(60)) * time.Second).
		Truncate(time.Second)
	end := start.Add(time.Duration(durationMin) * time.Minute)

	rhr := nightRHR
	return domain.SleepSession{
		ID:               domain.SessionID(start),
		Date:             day,
		Kind:             domain.SessionKindNap,
		StartAt:          start,
		EndAt:            end,
		DurationMin:      durationMin,
		MinutesAsleep:    asleep,
		MinutesAwake:     awake,
		Efficiency:       math.Round(float64(asleep) / float64(durationMin) * 100),
		RestingHeartRate: &rhr,
	}
}

func normal(rng *rand.Rand, mean, std float64) float64 {
	return rng.NormFloat64()*std + mean
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
