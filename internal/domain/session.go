package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionKind represents the category of sleep session.
// @Description Kind of session: NIGHT for the main overnight sleep, NAP for daytime naps.
type SessionKind string

const (
	// SessionKindNight is the primary overnight sleep session
	SessionKindNight SessionKind = "NIGHT"
	// SessionKindNap is a short daytime sleep session
	SessionKindNap SessionKind = "NAP"
)

// sessionNamespace is the UUID namespace for deriving stable session IDs
// from start timestamps, so the same export row keeps the same ID across
// reloads and across the CSV and Postgres sources.
var sessionNamespace = uuid.MustParse("5caf31e5-9d9e-44dd-b1a4-7a2b3c0d9f41")

// SleepSession is one recorded sleep or nap interval from the tracker export.
// Records are immutable once loaded; all analytics derive from copies.
type SleepSession struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Date             time.Time   `gorm:"not null;index" json:"-"`
	Kind             SessionKind `gorm:"type:varchar(10);not null" json:"kind"`
	StartAt          time.Time   `gorm:"not null;uniqueIndex:idx_sleep_sessions_start" json:"start_at"`
	EndAt            time.Time   `gorm:"not null" json:"end_at"`
	DurationMin      int         `gorm:"not null" json:"duration_min"`
	MinutesAsleep    int         `gorm:"not null" json:"minutes_asleep"`
	MinutesAwake     int         `gorm:"not null" json:"minutes_awake"`
	Efficiency       float64     `gorm:"not null" json:"efficiency"`
	DeepMin          int         `gorm:"not null" json:"deep_minutes"`
	LightMin         int         `gorm:"not null" json:"light_minutes"`
	RemMin           int         `gorm:"not null" json:"rem_minutes"`
	OverallScore     *float64    `json:"overall_score,omitempty"`
	RestingHeartRate *float64    `json:"resting_heart_rate,omitempty"`
}

func (SleepSession) TableName() string {
	return "sleep_sessions"
}

// SessionID derives the stable identifier for a session that started at the
// given wall-clock time.
func SessionID(startAt time.Time) uuid.UUID {
	return uuid.NewSHA1(sessionNamespace, []byte(startAt.Format("2006-01-02T15:04:05")))
}

// DateKey returns the civil day the session belongs to, as YYYY-MM-DD.
func (s *SleepSession) DateKey() string {
	return s.Date.Format("2006-01-02")
}

// StartHour returns the bedtime as a fractional hour of day (e.g. 23.5 for 23:30).
func (s *SleepSession) StartHour() float64 {
	return float64(s.StartAt.Hour()) + float64(s.StartAt.Minute())/60.0
}

// EndHour returns the wake time as a fractional hour of day.
func (s *SleepSession) EndHour() float64 {
	return float64(s.EndAt.Hour()) + float64(s.EndAt.Minute())/60.0
}

// SleepHours returns time actually asleep in hours.
func (s *SleepSession) SleepHours() float64 {
	return float64(s.MinutesAsleep) / 60.0
}

// DurationHours returns time in bed in hours.
func (s *SleepSession) DurationHours() float64 {
	return float64(s.DurationMin) / 60.0
}

// DeepPct returns deep sleep as a fraction of minutes asleep, or false when
// the session has no asleep minutes or no stage data (naps).
func (s *SleepSession) DeepPct() (float64, bool) {
	if s.MinutesAsleep == 0 || s.DeepMin+s.LightMin+s.RemMin == 0 {
		return 0, false
	}
	return float64(s.DeepMin) / float64(s.MinutesAsleep), true
}

// RemPct returns REM sleep as a fraction of minutes asleep, or false when
// the session has no asleep minutes or no stage data.
func (s *SleepSession) RemPct() (float64, bool) {
	if s.MinutesAsleep == 0 || s.DeepMin+s.LightMin+s.RemMin == 0 {
		return 0, false
	}
	return float64(s.RemMin) / float64(s.MinutesAsleep), true
}

// AwakePct returns time awake as a fraction of time in bed, or false when the
// session has zero duration.
func (s *SleepSession) AwakePct() (float64, bool) {
	if s.DurationMin == 0 {
		return 0, false
	}
	return float64(s.MinutesAwake) / float64(s.DurationMin), true
}

// Weekday returns the calendar weekday of the start timestamp.
func (s *SleepSession) Weekday() time.Weekday {
	return s.StartAt.Weekday()
}

// IsWeekend reports whether the session started on a Saturday or Sunday.
func (s *SleepSession) IsWeekend() bool {
	wd := s.StartAt.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// SessionResponse is the response body for session endpoints.
// @Description One sleep session with derived display fields.
type SessionResponse struct {
	// Stable session identifier
	ID uuid.UUID `json:"id" example:"3b77e034-9f4c-5e0c-a3f2-1d2b6f9a8c11"`
	// Civil day the session belongs to (YYYY-MM-DD)
	Date string `json:"date" example:"2025-06-14"`
	// Session kind
	Kind SessionKind `json:"kind" example:"NIGHT"`
	// Sleep start (wall clock)
	StartAt time.Time `json:"start_at" example:"2025-06-14T02:21:30Z"`
	// Sleep end (wall clock)
	EndAt time.Time `json:"end_at" example:"2025-06-14T10:05:30Z"`
	// Time in bed, minutes
	DurationMin int `json:"duration_min" example:"464"`
	// Time asleep, minutes
	MinutesAsleep int `json:"minutes_asleep" example:"405"`
	// Time awake in bed, minutes
	MinutesAwake int `json:"minutes_awake" example:"59"`
	// Sleep efficiency percent (0-100)
	Efficiency float64 `json:"efficiency" example:"87.3"`
	// Deep sleep minutes
	DeepMin int `json:"deep_minutes" example:"71"`
	// Light sleep minutes
	LightMin int `json:"light_minutes" example:"245"`
	// REM sleep minutes
	RemMin int `json:"rem_minutes" example:"89"`
	// Overall score (0-100), absent for naps
	OverallScore *float64 `json:"overall_score,omitempty" example:"78.5"`
	// Resting heart rate, absent when the tracker did not record one
	RestingHeartRate *float64 `json:"resting_heart_rate,omitempty" example:"57.2"`
	// Bedtime as fractional hour of day
	StartHour float64 `json:"start_hour" example:"2.35"`
	// Wake time as fractional hour of day
	EndHour float64 `json:"end_hour" example:"10.08"`
	// Time asleep in hours
	SleepHours float64 `json:"sleep_hours" example:"6.75"`
	// Weekday of the start timestamp
	Weekday string `json:"weekday" example:"Saturday"`
	// True for Saturday/Sunday starts
	IsWeekend bool `json:"is_weekend" example:"true"`
}

func (s *SleepSession) ToResponse() SessionResponse {
	return SessionResponse{
		ID:               s.ID,
		Date:             s.DateKey(),
		Kind:             s.Kind,
		StartAt:          s.StartAt,
		EndAt:            s.EndAt,
		DurationMin:      s.DurationMin,
		MinutesAsleep:    s.MinutesAsleep,
		MinutesAwake:     s.MinutesAwake,
		Efficiency:       s.Efficiency,
		DeepMin:          s.DeepMin,
		LightMin:         s.LightMin,
		RemMin:           s.RemMin,
		OverallScore:     s.OverallScore,
		RestingHeartRate: s.RestingHeartRate,
		StartHour:        s.StartHour(),
		EndHour:          s.EndHour(),
		SleepHours:       s.SleepHours(),
		Weekday:          s.Weekday().String(),
		IsWeekend:        s.IsWeekend(),
	}
}

// SessionListResponse is the response body for listing sessions.
// @Description Paginated slice of the loaded dataset, newest first.
type SessionListResponse struct {
	// Session records
	Data []SessionResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SessionFilter contains filter parameters for listing sessions.
type SessionFilter struct {
	From   *time.Time
	To     *time.Time
	Kind   SessionKind // empty = all kinds
	Limit  int
	Cursor string
}
