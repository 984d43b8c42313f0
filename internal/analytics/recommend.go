package analytics

import (
	"fmt"
	"time"

	"github.com/stef4k/sleep-dashboard/internal/domain"
)

// Recommendation windows and thresholds. The rule set is intentionally
// simple and fully determined by its inputs: the same sessions and the same
// as-of date always produce the same action.
const (
	// RecentWindowDays is the trend window the advice is about.
	RecentWindowDays = 7
	// BaselineWindowDays is the personal-baseline window the trend is
	// measured against.
	BaselineWindowDays = 28
	// MinRecentNights is the fewest recent nights an action is derived from.
	MinRecentNights = 3

	// maintainSlackMin: a recent mean within this many minutes below target
	// still counts as on-target.
	maintainSlackMin = 20
	// maintainDriftMin: bedtime drift beyond this rules out MAINTAIN_ROUTINE.
	maintainDriftMin = 40
	// restDeficitMin: a deficit this deep alone suggests a rest day.
	restDeficitMin = 60
	// moderateDeficitMin + baselineDropMin: a moderate deficit combined with
	// sleeping well under one's own baseline also suggests a rest day.
	moderateDeficitMin = 30
	baselineDropMin    = 45
)

// Recommend derives the enumerated advice for asOf from the trailing
// 7-day trend versus the target and the 28-day personal baseline. Only
// night sessions participate; naps neither help nor hurt the verdict.
func Recommend(sessions []domain.SleepSession, asOf time.Time, targetMinutes int) domain.Recommendation {
	if targetMinutes <= 0 {
		targetMinutes = DefaultTargetMinutes
	}

	recentWindow := Window(asOf, RecentWindowDays)
	baselineWindow := Window(asOf, BaselineWindowDays)
	recent := FilterKind(InWindow(sessions, recentWindow), KindNight)
	baseline := FilterKind(InWindow(sessions, baselineWindow), KindNight)

	rec := domain.Recommendation{
		AsOf:           recentWindow.AsOf,
		RecentNights:   len(recent),
		BaselineNights: len(baseline),
		TargetMinutes:  targetMinutes,
	}

	if len(recent) < MinRecentNights {
		rec.Action = domain.RecommendationInsufficientData
		rec.Reason = fmt.Sprintf("only %d night session(s) in the last %d days, need %d",
			len(recent), RecentWindowDays, MinRecentNights)
		return rec
	}

	recentAsleep := round1(mean(asleepMinutes(recent)))
	baselineAsleep := round1(mean(asleepMinutes(baseline)))
	deficit := round1(float64(targetMinutes) - recentAsleep)
	drift := round1((mean(bedtimeHours(recent)) - mean(bedtimeHours(baseline))) * 60)

	rec.RecentMeanAsleepMin = &recentAsleep
	rec.BaselineMeanAsleepMin = &baselineAsleep
	rec.DeficitMin = &deficit
	rec.BedtimeDriftMin = &drift

	switch {
	case deficit <= maintainSlackMin && drift < maintainDriftMin:
		rec.Action = domain.RecommendationMaintainRoutine
		rec.Reason = fmt.Sprintf("averaging %.0f minutes asleep over the last %d days, on track for the %d-minute target",
			recentAsleep, RecentWindowDays, targetMinutes)
	case deficit > restDeficitMin,
		deficit > moderateDeficitMin && baselineAsleep-recentAsleep >= baselineDropMin:
		rec.Action = domain.RecommendationConsiderRestDay
		rec.Reason = fmt.Sprintf("averaging %.0f minutes below your %d-minute target over the last %d days",
			deficit, targetMinutes, RecentWindowDays)
	case drift >= maintainDriftMin && deficit <= maintainSlackMin:
		rec.Action = domain.RecommendationGoToBedEarlier
		rec.Reason = fmt.Sprintf("bedtime drifted %.0f minutes later than your %d-day baseline",
			drift, BaselineWindowDays)
	default:
		rec.Action = domain.RecommendationGoToBedEarlier
		rec.Reason = fmt.Sprintf("averaging %.0f minutes below your %d-minute target over the last %d days",
			deficit, targetMinutes, RecentWindowDays)
	}
	return rec
}

func asleepMinutes(sessions []domain.SleepSession) []float64 {
	out := make([]float64, 0, len(sessions))
	for i := range sessions {
		out = append(out, float64(sessions[i].MinutesAsleep))
	}
	return out
}

func bedtimeHours(sessions []domain.SleepSession) []float64 {
	out := make([]float64, 0, len(sessions))
	for i := range sessions {
		out = append(out, sessions[i].StartHour())
	}
	return out
}
