package analytics

import (
	"fmt"
	"time"

	"github.com/stef4k/sleep-dashboard/internal/domain"
)

// Heatmap builds the calendar-heatmap payload: one cell per civil day of the
// chosen calendar year, keyed by ISO week and weekday. When a day holds both
// a night session and a nap the night session supplies the value. Year 0
// selects the latest year present in the data.
func Heatmap(sessions []domain.SleepSession, metric string, year int) (*domain.HeatmapSeries, error) {
	def, err := lookupMetric(metric)
	if err != nil {
		return nil, err
	}

	if year == 0 {
		for i := range sessions {
			if y := sessions[i].Date.Year(); y > year {
				year = y
			}
		}
	}

	series := &domain.HeatmapSeries{
		Metric: metric,
		Label:  def.label,
		Year:   year,
	}

	type dayValue struct {
		value *float64
		night bool
	}
	byDay := make(map[string]dayValue)
	var order []string

	for i := range sessions {
		s := &sessions[i]
		if s.Date.Year() != year {
			continue
		}
		key := s.DateKey()
		prev, seen := byDay[key]
		if !seen {
			order = append(order, key)
		}
		// A night value is never displaced by a nap's.
		if seen && prev.night && s.Kind != domain.SessionKindNight {
			continue
		}
		var value *float64
		if v, ok := def.extract(s); ok {
			value = &v
		}
		if seen && prev.value != nil && value == nil {
			continue
		}
		byDay[key] = dayValue{value: value, night: s.Kind == domain.SessionKindNight}
	}

	for _, key := range order {
		day, _ := time.Parse("2006-01-02", key)
		_, week := day.ISOWeek()
		series.Cells = append(series.Cells, domain.HeatmapCell{
			Date:    key,
			ISOWeek: week,
			Weekday: day.Weekday().String(),
			Value:   byDay[key].value,
		})
	}
	return series, nil
}

// Rhythm builds the sleep-rhythm timeline: each session's bedtime and wake
// hour over the trailing window.
func Rhythm(sessions []domain.SleepSession, asOf time.Time, windowDays int) *domain.RhythmSeries {
	w := Window(asOf, windowDays)
	in := InWindow(sessions, w)

	series := &domain.RhythmSeries{Window: w}
	for i := range in {
		s := &in[i]
		series.Points = append(series.Points, domain.RhythmPoint{
			Date:      s.DateKey(),
			Kind:      s.Kind,
			StartHour: round2(s.StartHour()),
			EndHour:   round2(s.EndHour()),
		})
	}
	return series
}

// Scatter builds the paired observations of two metrics over the trailing
// window, for charts like bedtime versus overall score. Sessions missing
// either metric are dropped, never imputed.
func Scatter(sessions []domain.SleepSession, metricX, metricY string, asOf time.Time, windowDays int) (*domain.ScatterSeries, error) {
	defX, err := lookupMetric(metricX)
	if err != nil {
		return nil, err
	}
	defY, err := lookupMetric(metricY)
	if err != nil {
		return nil, err
	}

	w := Window(asOf, windowDays)
	in := InWindow(sessions, w)

	series := &domain.ScatterSeries{
		MetricX: metricX,
		MetricY: metricY,
		LabelX:  defX.label,
		LabelY:  defY.label,
		Window:  w,
	}
	for i := range in {
		s := &in[i]
		x, okX := defX.extract(s)
		y, okY := defY.extract(s)
		if !okX || !okY {
			continue
		}
		series.Points = append(series.Points, domain.ScatterPoint{
			Date: s.DateKey(),
			X:    round2(x),
			Y:    round2(y),
		})
	}
	return series, nil
}

// funnelStages orders the funnel from time in bed down to deep sleep.
var funnelStages = []struct {
	name    string
	minutes func(s *domain.SleepSession) float64
}{
	{"in_bed", func(s *domain.SleepSession) float64 { return float64(s.DurationMin) }},
	{"asleep", func(s *domain.SleepSession) float64 { return float64(s.MinutesAsleep) }},
	{"light", func(s *domain.SleepSession) float64 { return float64(s.LightMin) }},
	{"rem", func(s *domain.SleepSession) float64 { return float64(s.RemMin) }},
	{"deep", func(s *domain.SleepSession) float64 { return float64(s.DeepMin) }},
}

// Funnel builds the stage funnel: mean minutes in bed, asleep, and per sleep
// stage over the window's night sessions. Naps are excluded because exports
// don't stage them.
func Funnel(sessions []domain.SleepSession, asOf time.Time, windowDays int) *domain.FunnelSeries {
	w := Window(asOf, windowDays)
	nights := FilterKind(InWindow(sessions, w), KindNight)

	series := &domain.FunnelSeries{
		Window:       w,
		SessionCount: len(nights),
	}
	if len(nights) == 0 {
		return series
	}

	for _, stage := range funnelStages {
		values := make([]float64, 0, len(nights))
		for i := range nights {
			values = append(values, stage.minutes(&nights[i]))
		}
		series.Stages = append(series.Stages, domain.FunnelStage{
			Stage:       stage.name,
			MeanMinutes: round2(mean(values)),
		})
	}
	return series
}

// Parallel builds the parallel-coordinates payload: one row per session in
// the window that carries every requested metric.
func Parallel(sessions []domain.SleepSession, metrics []string, asOf time.Time, windowDays int) (*domain.ParallelSeries, error) {
	if len(metrics) < 2 {
		return nil, fmt.Errorf("%w: parallel coordinates need at least two metrics", domain.ErrInvalidInput)
	}

	defs := make([]metricDef, len(metrics))
	labels := make([]string, len(metrics))
	for i, name := range metrics {
		def, err := lookupMetric(name)
		if err != nil {
			return nil, err
		}
		defs[i] = def
		labels[i] = def.label
	}

	w := Window(asOf, windowDays)
	in := InWindow(sessions, w)

	series := &domain.ParallelSeries{
		Metrics: append([]string(nil), metrics...),
		Labels:  labels,
		Window:  w,
	}
	for i := range in {
		s := &in[i]
		row := make([]float64, len(defs))
		complete := true
		for j, def := range defs {
			v, ok := def.extract(s)
			if !ok {
				complete = false
				break
			}
			row[j] = round2(v)
		}
		if !complete {
			continue
		}
		series.Dates = append(series.Dates, s.DateKey())
		series.Rows = append(series.Rows, row)
	}
	return series, nil
}
