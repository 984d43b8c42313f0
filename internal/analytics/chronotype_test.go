package analytics

import (
	"testing"

	"github.com/stef4k/sleep-dashboard/internal/domain"
)

func TestChronotype_Classification(t *testing.T) {
	tests := []struct {
		name    string
		bedHour float64
		asleep  int
		want    domain.ChronotypeKind
	}{
		{
			// Bed 22:00 for 7h45m in bed: mid-sleep ~01:52 (112 min).
			name:    "early bird",
			bedHour: 22.0,
			asleep:  420,
			want:    domain.ChronotypeEarlyBird,
		},
		{
			// Bed 00:30: mid-sleep ~04:22 (262 min).
			name:    "intermediate",
			bedHour: 0.5,
			asleep:  420,
			want:    domain.ChronotypeIntermediate,
		},
		{
			// Bed 02:30: mid-sleep ~06:22 (382 min).
			name:    "night owl",
			bedHour: 2.5,
			asleep:  420,
			want:    domain.ChronotypeNightOwl,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := nightSeries(t, "2025-06-01", tt.bedHour, repeatInts(tt.asleep, 14))

			res := Chronotype(sessions, testDay(t, "2025-06-30"), 90, 7)

			if res.Chronotype != tt.want {
				t.Errorf("Chronotype = %v (mid-sleep %s), want %v",
					res.Chronotype, res.MidSleepTime, tt.want)
			}
			if res.NightsUsed != 14 {
				t.Errorf("NightsUsed = %d, want 14", res.NightsUsed)
			}
			if res.MidSleepTime == "" {
				t.Error("MidSleepTime empty for a classified result")
			}
		})
	}
}

func TestChronotype_TooFewNights(t *testing.T) {
	sessions := nightSeries(t, "2025-06-25", 2.0, repeatInts(420, 3))

	res := Chronotype(sessions, testDay(t, "2025-06-30"), 90, 7)

	if res.Chronotype != domain.ChronotypeUnknown {
		t.Errorf("Chronotype = %v, want unknown with 3 nights", res.Chronotype)
	}
	if res.MidSleepTime != "" {
		t.Errorf("MidSleepTime = %q, want empty", res.MidSleepTime)
	}
	if res.NightsUsed != 3 {
		t.Errorf("NightsUsed = %d, want 3", res.NightsUsed)
	}
}

func TestChronotype_IgnoresNaps(t *testing.T) {
	sessions := nightSeries(t, "2025-06-01", 2.5, repeatInts(420, 10))
	for day := 1; day <= 9; day++ {
		sessions = append(sessions, napOn(t, testDay(t, "2025-06-01").AddDate(0, 0, day-1).Format("2006-01-02"), 15.0, 45))
	}

	res := Chronotype(sessions, testDay(t, "2025-06-30"), 90, 7)

	if res.NightsUsed != 10 {
		t.Errorf("NightsUsed = %d, want 10 (naps excluded)", res.NightsUsed)
	}
	if res.Chronotype != domain.ChronotypeNightOwl {
		t.Errorf("Chronotype = %v, want night_owl", res.Chronotype)
	}
}

func TestMinutesToClock(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{150, "02:30"},
		{365, "06:05"},
		{1439, "23:59"},
		{1500, "01:00"}, // wraps past midnight
	}
	for _, tt := range tests {
		if got := minutesToClock(tt.minutes); got != tt.want {
			t.Errorf("minutesToClock(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
