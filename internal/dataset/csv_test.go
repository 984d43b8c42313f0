package dataset

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stef4k/sleep-dashboard/internal/domain"
)

const exportHeader = "date,week_day,is_night_sleep,start_time,end_time," +
	"duration_min,minutes_asleep,minutes_awake,efficiency," +
	"deep_minutes,light_minutes,rem_minutes,overall_score,resting_heart_rate"

func buildCSV(rows ...string) string {
	return exportHeader + "\n" + strings.Join(rows, "\n") + "\n"
}

func TestLoader_Load_ValidExport(t *testing.T) {
	// Rows deliberately out of start-time order; the loader must sort.
	input := buildCSV(
		"2025-04-17,Thursday,True,2025-04-17T02:21:30.000,2025-04-17T10:05:30.000,464,411,53,0.89,68,253,90,78.4,52.3",
		"2025-04-16,Wednesday,True,2025-04-16T01:58:12.000,2025-04-16T09:43:12.000,465,420,45,0.9,70,260,90,82.1,51.0",
		"2025-04-16,Wednesday,False,2025-04-16T16:12:05.000,2025-04-16T17:07:05.000,55,50,5,0.91,0,0,0,,51.0",
	)

	var loader Loader
	res, err := loader.Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(res.Sessions) != 3 {
		t.Fatalf("got %d sessions, want 3", len(res.Sessions))
	}
	if len(res.Skipped) != 0 {
		t.Fatalf("got %d skipped, want 0", len(res.Skipped))
	}

	// Sorted ascending by start time.
	for i := 1; i < len(res.Sessions); i++ {
		if res.Sessions[i].StartAt.Before(res.Sessions[i-1].StartAt) {
			t.Errorf("sessions not sorted: %v before %v",
				res.Sessions[i].StartAt, res.Sessions[i-1].StartAt)
		}
	}

	night := res.Sessions[0]
	if night.Kind != domain.SessionKindNight {
		t.Errorf("Kind = %v, want NIGHT", night.Kind)
	}
	wantStart := time.Date(2025, 4, 16, 1, 58, 12, 0, time.UTC)
	if !night.StartAt.Equal(wantStart) {
		t.Errorf("StartAt = %v, want %v", night.StartAt, wantStart)
	}
	if night.DurationMin != 465 || night.MinutesAsleep != 420 || night.MinutesAwake != 45 {
		t.Errorf("minutes = %d/%d/%d, want 465/420/45",
			night.DurationMin, night.MinutesAsleep, night.MinutesAwake)
	}
	// Fractional efficiency is normalized to percent.
	if night.Efficiency != 90 {
		t.Errorf("Efficiency = %v, want 90", night.Efficiency)
	}
	if night.OverallScore == nil || *night.OverallScore != 82.1 {
		t.Errorf("OverallScore = %v, want 82.1", night.OverallScore)
	}
	if night.ID != domain.SessionID(wantStart) {
		t.Errorf("ID not derived from start time")
	}

	nap := res.Sessions[1]
	if nap.Kind != domain.SessionKindNap {
		t.Errorf("Kind = %v, want NAP", nap.Kind)
	}
	if nap.OverallScore != nil {
		t.Errorf("nap OverallScore = %v, want nil", *nap.OverallScore)
	}
	if nap.DeepMin != 0 || nap.LightMin != 0 || nap.RemMin != 0 {
		t.Errorf("nap stage minutes = %d/%d/%d, want zeros", nap.DeepMin, nap.LightMin, nap.RemMin)
	}
}

func TestLoader_Load_StrictRejectsMalformed(t *testing.T) {
	tests := []struct {
		name       string
		row        string
		wantColumn string
	}{
		{
			name:       "end before start",
			row:        "2025-04-16,Wednesday,True,2025-04-16T09:43:12.000,2025-04-16T01:58:12.000,465,420,45,0.90,70,260,90,82.1,51.0",
			wantColumn: "end_time",
		},
		{
			name:       "end equals start",
			row:        "2025-04-16,Wednesday,True,2025-04-16T01:58:12.000,2025-04-16T01:58:12.000,465,420,45,0.90,70,260,90,82.1,51.0",
			wantColumn: "end_time",
		},
		{
			name:       "stage minutes exceed duration",
			row:        "2025-04-16,Wednesday,True,2025-04-16T01:58:12.000,2025-04-16T09:43:12.000,465,420,45,0.90,200,260,90,82.1,51.0",
			wantColumn: "duration_min",
		},
		{
			name:       "efficiency above 100",
			row:        "2025-04-16,Wednesday,True,2025-04-16T01:58:12.000,2025-04-16T09:43:12.000,465,420,45,105,70,260,90,82.1,51.0",
			wantColumn: "efficiency",
		},
		{
			name:       "score above 100",
			row:        "2025-04-16,Wednesday,True,2025-04-16T01:58:12.000,2025-04-16T09:43:12.000,465,420,45,0.90,70,260,90,182.1,51.0",
			wantColumn: "overall_score",
		},
		{
			name:       "negative minutes",
			row:        "2025-04-16,Wednesday,True,2025-04-16T01:58:12.000,2025-04-16T09:43:12.000,465,-420,45,0.90,70,260,90,82.1,51.0",
			wantColumn: "minutes_asleep",
		},
		{
			name:       "missing duration",
			row:        "2025-04-16,Wednesday,True,2025-04-16T01:58:12.000,2025-04-16T09:43:12.000,,420,45,0.90,70,260,90,82.1,51.0",
			wantColumn: "duration_min",
		},
		{
			name:       "garbage timestamp",
			row:        "2025-04-16,Wednesday,True,not-a-time,2025-04-16T09:43:12.000,465,420,45,0.90,70,260,90,82.1,51.0",
			wantColumn: "start_time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var loader Loader
			_, err := loader.Load(strings.NewReader(buildCSV(tt.row)))
			if err == nil {
				t.Fatal("Load() error = nil, want malformed record error")
			}
			if !errors.Is(err, domain.ErrMalformedRecord) {
				t.Fatalf("error %v does not wrap ErrMalformedRecord", err)
			}

			var malformed *domain.MalformedRecordError
			if !errors.As(err, &malformed) {
				t.Fatalf("error %T is not *MalformedRecordError", err)
			}
			if malformed.Column != tt.wantColumn {
				t.Errorf("Column = %q, want %q", malformed.Column, tt.wantColumn)
			}
			if malformed.Line != 2 {
				t.Errorf("Line = %d, want 2", malformed.Line)
			}
		})
	}
}

func TestLoader_Load_SkipMalformed(t *testing.T) {
	input := buildCSV(
		"2025-04-16,Wednesday,True,2025-04-16T01:58:12.000,2025-04-16T09:43:12.000,465,420,45,0.90,70,260,90,82.1,51.0",
		"2025-04-17,Thursday,True,2025-04-17T10:05:30.000,2025-04-17T02:21:30.000,464,411,53,0.89,68,253,90,78.4,52.3",
		"2025-04-18,Friday,True,2025-04-18T02:03:44.000,2025-04-18T09:48:44.000,465,415,50,0.89,66,259,90,80.0,50.8",
	)

	loader := Loader{SkipMalformed: true}
	res, err := loader.Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(res.Sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(res.Sessions))
	}
	if len(res.Skipped) != 1 {
		t.Fatalf("got %d skipped, want 1", len(res.Skipped))
	}
	if res.Skipped[0].Line != 3 {
		t.Errorf("Skipped line = %d, want 3", res.Skipped[0].Line)
	}
	if !strings.Contains(res.Skipped[0].Reason, "end time") {
		t.Errorf("Skipped reason = %q, want mention of end time", res.Skipped[0].Reason)
	}
}

func TestLoader_Load_MissingColumns(t *testing.T) {
	input := "date,week_day,start_time,end_time\n2025-04-16,Wednesday,a,b\n"

	var loader Loader
	_, err := loader.Load(strings.NewReader(input))
	if err == nil {
		t.Fatal("Load() error = nil, want missing-columns error")
	}
	if !strings.Contains(err.Error(), "is_night_sleep") {
		t.Errorf("error %q does not name the missing column", err)
	}
}

func TestLoader_Load_HeaderOrderIndependent(t *testing.T) {
	// Same columns, shuffled order.
	input := "is_night_sleep,date,week_day,end_time,start_time," +
		"minutes_asleep,duration_min,minutes_awake,efficiency," +
		"rem_minutes,deep_minutes,light_minutes,resting_heart_rate,overall_score\n" +
		"True,2025-04-16,Wednesday,2025-04-16T09:43:12.000,2025-04-16T01:58:12.000," +
		"420,465,45,0.90,90,70,260,51.0,82.1\n"

	var loader Loader
	res, err := loader.Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(res.Sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(res.Sessions))
	}
	s := res.Sessions[0]
	if s.DurationMin != 465 || s.MinutesAsleep != 420 {
		t.Errorf("minutes = %d/%d, want 465/420", s.DurationMin, s.MinutesAsleep)
	}
	if s.OverallScore == nil || *s.OverallScore != 82.1 {
		t.Errorf("OverallScore = %v, want 82.1", s.OverallScore)
	}
}

func TestLoader_Load_FloatRenderedIntegers(t *testing.T) {
	// Export tools promote integer columns to float when the column has gaps.
	input := buildCSV(
		"2025-04-16,Wednesday,True,2025-04-16T01:58:12.000,2025-04-16T09:43:12.000,465.0,420.0,45.0,0.90,70.0,260.0,90.0,82.1,51.0",
	)

	var loader Loader
	res, err := loader.Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if res.Sessions[0].DurationMin != 465 {
		t.Errorf("DurationMin = %d, want 465", res.Sessions[0].DurationMin)
	}
}
