package analytics

import (
	"time"

	"github.com/stef4k/sleep-dashboard/internal/domain"
)

// DefaultWindowDays is the trailing window applied when a request names none.
const DefaultWindowDays = 30

// Kind and day filter values accepted by the query surface.
const (
	KindAll   = "all"
	KindNight = "night"
	KindNap   = "nap"

	DayAll     = "all"
	DayWeekday = "weekday"
	DayWeekend = "weekend"
)

// Window builds the trailing window of `days` civil days ending on the as-of
// date (inclusive). The as-of date is always supplied by the caller; the
// engine never consults the wall clock, which is what makes replaying any
// historical date deterministic.
func Window(asOf time.Time, days int) domain.WindowRange {
	if days <= 0 {
		days = DefaultWindowDays
	}
	day := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	to := day.AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -days)
	return domain.WindowRange{
		AsOf: day.Format("2006-01-02"),
		From: from,
		To:   to,
		Days: days,
	}
}

// InWindow returns the sessions whose start timestamp falls in [From, To),
// preserving order. Input is never mutated.
func InWindow(sessions []domain.SleepSession, w domain.WindowRange) []domain.SleepSession {
	out := make([]domain.SleepSession, 0, len(sessions))
	for _, s := range sessions {
		if s.StartAt.Before(w.From) {
			continue
		}
		if !s.StartAt.Before(w.To) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// FilterKind restricts sessions to one kind; KindAll passes everything
// through. Order and values are untouched.
func FilterKind(sessions []domain.SleepSession, kind string) []domain.SleepSession {
	if kind == "" || kind == KindAll {
		return sessions
	}
	want := domain.SessionKindNight
	if kind == KindNap {
		want = domain.SessionKindNap
	}
	out := make([]domain.SleepSession, 0, len(sessions))
	for _, s := range sessions {
		if s.Kind == want {
			out = append(out, s)
		}
	}
	return out
}

// FilterDay restricts sessions by the calendar weekday of the start
// timestamp. Weekdays and Weekends partition the input exactly: every
// session lands on one side and no session on both.
func FilterDay(sessions []domain.SleepSession, day string) []domain.SleepSession {
	switch day {
	case DayWeekday:
		return Weekdays(sessions)
	case DayWeekend:
		return Weekends(sessions)
	default:
		return sessions
	}
}

// Weekdays returns the sessions starting Monday through Friday.
func Weekdays(sessions []domain.SleepSession) []domain.SleepSession {
	out := make([]domain.SleepSession, 0, len(sessions))
	for _, s := range sessions {
		if !s.IsWeekend() {
			out = append(out, s)
		}
	}
	return out
}

// Weekends returns the sessions starting Saturday or Sunday.
func Weekends(sessions []domain.SleepSession) []domain.SleepSession {
	out := make([]domain.SleepSession, 0, len(sessions))
	for _, s := range sessions {
		if s.IsWeekend() {
			out = append(out, s)
		}
	}
	return out
}

// LatestDate returns the civil day of the newest session, for defaulting the
// as-of date to the dataset's own horizon instead of the wall clock.
func LatestDate(sessions []domain.SleepSession) (time.Time, bool) {
	if len(sessions) == 0 {
		return time.Time{}, false
	}
	latest := sessions[0].StartAt
	for _, s := range sessions[1:] {
		if s.StartAt.After(latest) {
			latest = s.StartAt
		}
	}
	return time.Date(latest.Year(), latest.Month(), latest.Day(), 0, 0, 0, 0, time.UTC), true
}
