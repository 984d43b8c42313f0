// Package dataset loads sleep-session records from tracker CSV exports and
// validates them against the data-model invariants before anything downstream
// sees them.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/stef4k/sleep-dashboard/internal/domain"
)

// Timestamp layouts used by tracker exports.
const (
	// TimeLayout is the canonical export timestamp (millisecond suffix).
	TimeLayout = "2006-01-02T15:04:05.000"
	// DateLayout is the civil-day column format.
	DateLayout = "2006-01-02"
)

// stageSumTolerance absorbs per-stage rounding in exports where stage minutes
// were rounded independently of the total.
const stageSumTolerance = 2

var timestampLayouts = []string{
	TimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

var requiredColumns = []string{
	"date", "week_day", "is_night_sleep",
	"start_time", "end_time",
	"duration_min", "minutes_asleep", "minutes_awake", "efficiency",
	"deep_minutes", "light_minutes", "rem_minutes",
	"overall_score", "resting_heart_rate",
}

// Loader parses CSV exports into validated SleepSession records.
//
// The zero value is strict: the first malformed record aborts the whole load
// with a *domain.MalformedRecordError. With SkipMalformed set, malformed
// records are dropped and reported in LoadResult.Skipped instead.
type Loader struct {
	SkipMalformed bool
}

// SkippedRecord describes one record dropped during a lenient load.
type SkippedRecord struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// LoadResult carries the validated sessions, sorted by start time ascending,
// plus any records skipped under the lenient policy.
type LoadResult struct {
	Sessions []domain.SleepSession
	Skipped  []SkippedRecord
}

// LoadFile reads and validates the export at path.
func (l *Loader) LoadFile(path string) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	res, err := l.Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return res, nil
}

// Load reads and validates a CSV export from r.
func (l *Loader) Load(r io.Reader) (*LoadResult, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty dataset: %w", domain.ErrMalformedRecord)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	res := &LoadResult{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		line, _ := cr.FieldPos(0)

		session, perr := parseRecord(record, idx, line)
		if perr != nil {
			if l.SkipMalformed {
				res.Skipped = append(res.Skipped, SkippedRecord{Line: line, Reason: perr.Error()})
				continue
			}
			return nil, perr
		}
		res.Sessions = append(res.Sessions, *session)
	}

	sort.Slice(res.Sessions, func(i, j int) bool {
		return res.Sessions[i].StartAt.Before(res.Sessions[j].StartAt)
	})
	return res, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset missing required columns %v", missing)
	}
	return idx, nil
}

func parseRecord(record []string, idx map[string]int, line int) (*domain.SleepSession, *domain.MalformedRecordError) {
	field := func(col string) string {
		i := idx[col]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	malformed := func(col, reason string) *domain.MalformedRecordError {
		return &domain.MalformedRecordError{Line: line, Column: col, Reason: reason}
	}

	date, err := time.Parse(DateLayout, field("date"))
	if err != nil {
		return nil, malformed("date", fmt.Sprintf("invalid date %q", field("date")))
	}

	isNight, err := strconv.ParseBool(field("is_night_sleep"))
	if err != nil {
		return nil, malformed("is_night_sleep", fmt.Sprintf("invalid boolean %q", field("is_night_sleep")))
	}
	kind := domain.SessionKindNap
	if isNight {
		kind = domain.SessionKindNight
	}

	startAt, err := parseTimestamp(field("start_time"))
	if err != nil {
		return nil, malformed("start_time", fmt.Sprintf("invalid timestamp %q", field("start_time")))
	}
	endAt, err := parseTimestamp(field("end_time"))
	if err != nil {
		return nil, malformed("end_time", fmt.Sprintf("invalid timestamp %q", field("end_time")))
	}
	if !endAt.After(startAt) {
		return nil, malformed("end_time", "end time must be after start time")
	}

	ints := make(map[string]int, 6)
	for _, col := range []string{"duration_min", "minutes_asleep", "minutes_awake", "deep_minutes", "light_minutes", "rem_minutes"} {
		v, err := parseIntField(field(col))
		if err != nil {
			return nil, malformed(col, fmt.Sprintf("invalid integer %q", field(col)))
		}
		if v < 0 {
			return nil, malformed(col, "negative minutes")
		}
		ints[col] = v
	}

	stageSum := ints["deep_minutes"] + ints["light_minutes"] + ints["rem_minutes"] + ints["minutes_awake"]
	if stageSum > ints["duration_min"]+stageSumTolerance {
		return nil, malformed("duration_min",
			fmt.Sprintf("stage minutes sum to %d, exceeding duration %d", stageSum, ints["duration_min"]))
	}

	efficiency, err := strconv.ParseFloat(field("efficiency"), 64)
	if err != nil {
		return nil, malformed("efficiency", fmt.Sprintf("invalid number %q", field("efficiency")))
	}
	// Some exports record efficiency as a 0-1 fraction rather than a percent.
	if efficiency >= 0 && efficiency <= 1 {
		efficiency *= 100
	}
	if efficiency < 0 || efficiency > 100 {
		return nil, malformed("efficiency", fmt.Sprintf("efficiency %v outside [0,100]", efficiency))
	}

	score, err := parseOptionalFloat(field("overall_score"))
	if err != nil {
		return nil, malformed("overall_score", fmt.Sprintf("invalid number %q", field("overall_score")))
	}
	if score != nil && (*score < 0 || *score > 100) {
		return nil, malformed("overall_score", fmt.Sprintf("score %v outside [0,100]", *score))
	}

	rhr, err := parseOptionalFloat(field("resting_heart_rate"))
	if err != nil {
		return nil, malformed("resting_heart_rate", fmt.Sprintf("invalid number %q", field("resting_heart_rate")))
	}
	if rhr != nil && *rhr < 0 {
		return nil, malformed("resting_heart_rate", "negative heart rate")
	}

	return &domain.SleepSession{
		ID:               domain.SessionID(startAt),
		Date:             date,
		Kind:             kind,
		StartAt:          startAt,
		EndAt:            endAt,
		DurationMin:      ints["duration_min"],
		MinutesAsleep:    ints["minutes_asleep"],
		MinutesAwake:     ints["minutes_awake"],
		Efficiency:       efficiency,
		DeepMin:          ints["deep_minutes"],
		LightMin:         ints["light_minutes"],
		RemMin:           ints["rem_minutes"],
		OverallScore:     score,
		RestingHeartRate: rhr,
	}, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

// parseIntField accepts plain integers plus the float renderings ("68.0")
// that appear when an export tool promotes an integer column to float.
func parseIntField(raw string) (int, error) {
	if v, err := strconv.Atoi(raw); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer: %q", raw)
	}
	return int(f), nil
}

// parseOptionalFloat treats empty and NaN-ish cells as absent.
func parseOptionalFloat(raw string) (*float64, error) {
	switch strings.ToLower(raw) {
	case "", "nan", "na", "null":
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(v) {
		return nil, nil
	}
	return &v, nil
}
