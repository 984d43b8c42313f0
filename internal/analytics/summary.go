package analytics

import (
	"time"

	"github.com/stef4k/sleep-dashboard/internal/domain"
)

// DefaultTargetMinutes is the nightly minutes-asleep target applied when the
// caller configures none (7 hours).
const DefaultTargetMinutes = 420

// Summarize computes window aggregates over the sessions that start within
// the trailing window ending on asOf. An empty window yields a result whose
// aggregate blocks are all nil: "no data" is reported as absence, never as
// zero.
func Summarize(sessions []domain.SleepSession, asOf time.Time, windowDays, targetMinutes int) domain.SummaryStats {
	w := Window(asOf, windowDays)
	return SummarizeWindow(InWindow(sessions, w), w, targetMinutes)
}

// SummarizeWindow aggregates an already-restricted session set against its
// window. Exposed separately so partitioned views (weekday/weekend) can
// filter first and aggregate second without re-windowing.
func SummarizeWindow(sessions []domain.SleepSession, w domain.WindowRange, targetMinutes int) domain.SummaryStats {
	if targetMinutes <= 0 {
		targetMinutes = DefaultTargetMinutes
	}

	out := domain.SummaryStats{
		Window:       w,
		SessionCount: len(sessions),
		Target:       domain.TargetSummary{TargetMinutes: targetMinutes},
	}

	var (
		durations  []float64
		sleepHours []float64
		efficiency []float64
		scores     []float64
		heartRates []float64
		bedtimes   []float64
		deepPcts   []float64
		remPcts    []float64
	)

	for i := range sessions {
		s := &sessions[i]
		if s.Kind == domain.SessionKindNight {
			out.NightCount++
			out.Target.NightsTotal++
			if s.MinutesAsleep >= targetMinutes {
				out.Target.NightsMeeting++
			}
		} else {
			out.NapCount++
		}

		durations = append(durations, float64(s.DurationMin))
		sleepHours = append(sleepHours, s.SleepHours())
		efficiency = append(efficiency, s.Efficiency)
		bedtimes = append(bedtimes, s.StartHour())
		if s.OverallScore != nil {
			scores = append(scores, *s.OverallScore)
		}
		if s.RestingHeartRate != nil {
			heartRates = append(heartRates, *s.RestingHeartRate)
		}
		if frac, ok := s.DeepPct(); ok {
			deepPcts = append(deepPcts, frac*100)
		}
		if frac, ok := s.RemPct(); ok {
			remPcts = append(remPcts, frac*100)
		}
	}

	out.Duration = computeStats(durations)
	out.SleepHours = computeStats(sleepHours)
	out.Efficiency = computeStats(efficiency)
	out.Score = computeStats(scores)
	out.RestingHeartRate = computeStats(heartRates)
	out.Bedtime = computeStats(bedtimes)

	if len(deepPcts) > 0 {
		v := round2(mean(deepPcts))
		out.MeanDeepPct = &v
	}
	if len(remPcts) > 0 {
		v := round2(mean(remPcts))
		out.MeanRemPct = &v
	}
	if out.Target.NightsTotal > 0 {
		pct := round1(float64(out.Target.NightsMeeting) / float64(out.Target.NightsTotal) * 100)
		out.Target.PctMeeting = &pct
	}

	return out
}

// Compare summarizes the weekday and weekend partitions of one window side
// by side. The partition is exact: reuniting both sides reproduces the
// windowed input.
func Compare(sessions []domain.SleepSession, asOf time.Time, windowDays, targetMinutes int) domain.CompareStats {
	w := Window(asOf, windowDays)
	in := InWindow(sessions, w)
	return domain.CompareStats{
		Window:  w,
		Weekday: SummarizeWindow(Weekdays(in), w, targetMinutes),
		Weekend: SummarizeWindow(Weekends(in), w, targetMinutes),
	}
}
