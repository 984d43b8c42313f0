package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/stef4k/sleep-dashboard/internal/domain"
)

const (
	// DefaultChronotypeWindowDays is the lookback for chronotype analysis.
	DefaultChronotypeWindowDays = 90
	// DefaultChronotypeMinNights is the fewest nights a classification is
	// derived from; below it the result is unknown.
	DefaultChronotypeMinNights = 7

	// Chronotype thresholds (minutes after midnight for mid-sleep).
	earlyBirdThreshold    = 150 // mid-sleep before 02:30
	intermediateThreshold = 270 // 02:30-04:29 intermediate, 04:30+ night owl
)

// Chronotype classifies the sleeper by the median mid-sleep time of night
// sessions in the trailing window.
func Chronotype(sessions []domain.SleepSession, asOf time.Time, windowDays, minNights int) domain.ChronotypeResult {
	if windowDays <= 0 {
		windowDays = DefaultChronotypeWindowDays
	}
	if minNights <= 0 {
		minNights = DefaultChronotypeMinNights
	}

	w := Window(asOf, windowDays)
	nights := FilterKind(InWindow(sessions, w), KindNight)

	var midMinutes []int
	for i := range nights {
		s := &nights[i]
		mid := s.StartAt.Add(s.EndAt.Sub(s.StartAt) / 2)
		midMinutes = append(midMinutes, mid.Hour()*60+mid.Minute())
	}

	result := domain.ChronotypeResult{
		WindowDays: windowDays,
		NightsUsed: len(midMinutes),
	}
	if len(midMinutes) < minNights {
		result.Chronotype = domain.ChronotypeUnknown
		return result
	}

	medianMid := medianInt(midMinutes)
	result.MidSleepMinutesAfterMidnight = medianMid
	result.MidSleepTime = minutesToClock(medianMid)
	result.Chronotype = classifyChronotype(medianMid)
	return result
}

func classifyChronotype(midSleepMinutes int) domain.ChronotypeKind {
	switch {
	case midSleepMinutes < earlyBirdThreshold:
		return domain.ChronotypeEarlyBird
	case midSleepMinutes < intermediateThreshold:
		return domain.ChronotypeIntermediate
	default:
		return domain.ChronotypeNightOwl
	}
}

// medianInt calculates the median of a slice of integers.
func medianInt(values []int) int {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// minutesToClock converts minutes after midnight to HH:MM.
func minutesToClock(minutes int) string {
	minutes %= 24 * 60
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
