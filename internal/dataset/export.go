package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/stef4k/sleep-dashboard/internal/domain"
)

// WriteCSV writes sessions in the tracker export format the Loader reads.
// Efficiency is written as a two-decimal fraction and optional fields as
// empty cells, matching real exports.
func WriteCSV(w io.Writer, sessions []domain.SleepSession) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(requiredColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range sessions {
		s := &sessions[i]

		isNight := "False"
		if s.Kind == domain.SessionKindNight {
			isNight = "True"
		}

		record := []string{
			s.DateKey(),
			s.Date.Weekday().String(),
			isNight,
			s.StartAt.Format(TimeLayout),
			s.EndAt.Format(TimeLayout),
			strconv.Itoa(s.DurationMin),
			strconv.Itoa(s.MinutesAsleep),
			strconv.Itoa(s.MinutesAwake),
			strconv.FormatFloat(s.Efficiency/100, 'f', 2, 64),
			strconv.Itoa(s.DeepMin),
			strconv.Itoa(s.LightMin),
			strconv.Itoa(s.RemMin),
			formatOptional(s.OverallScore),
			formatOptional(s.RestingHeartRate),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
