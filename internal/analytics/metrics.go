// Package analytics is the pure derived-metrics engine. Every function here
// is stateless and side-effect free: sessions go in, aggregates come out, and
// the caller-supplied as-of date is the only notion of "now".
package analytics

import (
	"fmt"

	"github.com/stef4k/sleep-dashboard/internal/domain"
)

// metricDef binds a queryable metric name to its display label and extractor.
// Extractors return false when the session has no value for the metric, so
// aggregation can drop the session instead of counting a phantom zero.
type metricDef struct {
	label   string
	extract func(s *domain.SleepSession) (float64, bool)
}

var metricOrder = []string{
	"duration_min",
	"minutes_asleep",
	"minutes_awake",
	"sleep_hours",
	"efficiency",
	"overall_score",
	"resting_heart_rate",
	"deep_minutes",
	"light_minutes",
	"rem_minutes",
	"deep_pct",
	"rem_pct",
	"awake_pct",
	"start_hour",
	"end_hour",
}

var metricRegistry = map[string]metricDef{
	"duration_min": {
		label:   "Time in bed (min)",
		extract: func(s *domain.SleepSession) (float64, bool) { return float64(s.DurationMin), true },
	},
	"minutes_asleep": {
		label:   "Minutes asleep",
		extract: func(s *domain.SleepSession) (float64, bool) { return float64(s.MinutesAsleep), true },
	},
	"minutes_awake": {
		label:   "Minutes awake",
		extract: func(s *domain.SleepSession) (float64, bool) { return float64(s.MinutesAwake), true },
	},
	"sleep_hours": {
		label:   "Sleep (hours)",
		extract: func(s *domain.SleepSession) (float64, bool) { return s.SleepHours(), true },
	},
	"efficiency": {
		label:   "Efficiency (%)",
		extract: func(s *domain.SleepSession) (float64, bool) { return s.Efficiency, true },
	},
	"overall_score": {
		label: "Overall score",
		extract: func(s *domain.SleepSession) (float64, bool) {
			if s.OverallScore == nil {
				return 0, false
			}
			return *s.OverallScore, true
		},
	},
	"resting_heart_rate": {
		label: "Resting heart rate (bpm)",
		extract: func(s *domain.SleepSession) (float64, bool) {
			if s.RestingHeartRate == nil {
				return 0, false
			}
			return *s.RestingHeartRate, true
		},
	},
	"deep_minutes": {
		label:   "Deep sleep (min)",
		extract: func(s *domain.SleepSession) (float64, bool) { return float64(s.DeepMin), true },
	},
	"light_minutes": {
		label:   "Light sleep (min)",
		extract: func(s *domain.SleepSession) (float64, bool) { return float64(s.LightMin), true },
	},
	"rem_minutes": {
		label:   "REM sleep (min)",
		extract: func(s *domain.SleepSession) (float64, bool) { return float64(s.RemMin), true },
	},
	"deep_pct": {
		label: "Deep sleep (% of asleep)",
		extract: func(s *domain.SleepSession) (float64, bool) {
			frac, ok := s.DeepPct()
			return frac * 100, ok
		},
	},
	"rem_pct": {
		label: "REM sleep (% of asleep)",
		extract: func(s *domain.SleepSession) (float64, bool) {
			frac, ok := s.RemPct()
			return frac * 100, ok
		},
	},
	"awake_pct": {
		label: "Awake (% of time in bed)",
		extract: func(s *domain.SleepSession) (float64, bool) {
			frac, ok := s.AwakePct()
			return frac * 100, ok
		},
	},
	"start_hour": {
		label:   "Bedtime (hour)",
		extract: func(s *domain.SleepSession) (float64, bool) { return s.StartHour(), true },
	},
	"end_hour": {
		label:   "Wake time (hour)",
		extract: func(s *domain.SleepSession) (float64, bool) { return s.EndHour(), true },
	},
}

// MetricNames returns every queryable metric name in stable display order.
func MetricNames() []string {
	names := make([]string, len(metricOrder))
	copy(names, metricOrder)
	return names
}

// IsMetric reports whether name is a queryable metric.
func IsMetric(name string) bool {
	_, ok := metricRegistry[name]
	return ok
}

// MetricLabel returns the display label for a metric name.
func MetricLabel(name string) (string, error) {
	def, ok := metricRegistry[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownMetric, name)
	}
	return def.label, nil
}

func lookupMetric(name string) (metricDef, error) {
	def, ok := metricRegistry[name]
	if !ok {
		return metricDef{}, fmt.Errorf("%w: %q", domain.ErrUnknownMetric, name)
	}
	return def, nil
}

// metricValues extracts the present values of one metric, in session order.
func metricValues(sessions []domain.SleepSession, def metricDef) []float64 {
	values := make([]float64, 0, len(sessions))
	for i := range sessions {
		if v, ok := def.extract(&sessions[i]); ok {
			values = append(values, v)
		}
	}
	return values
}
