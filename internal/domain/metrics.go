package domain

import "time"

// WindowRange describes the trailing analysis window anchored at an as-of date.
// @Description Analysis window: trailing days ending on the as-of date (inclusive).
type WindowRange struct {
	// As-of date (YYYY-MM-DD) the window ends on
	AsOf string `json:"as_of" example:"2025-06-30"`
	// Window start (inclusive)
	From time.Time `json:"from" example:"2025-06-01T00:00:00Z"`
	// Window end (exclusive)
	To time.Time `json:"to" example:"2025-07-01T00:00:00Z"`
	// Window length in days
	Days int `json:"days" example:"30"`
}

// MetricStats holds descriptive statistics over the present values of one metric.
// @Description Descriptive statistics for a metric within a window.
type MetricStats struct {
	// Number of sessions the metric was present for
	Count int `json:"count" example:"28"`
	// Arithmetic mean
	Mean float64 `json:"mean" example:"437.25"`
	// Median
	Median float64 `json:"median" example:"441"`
	// Sample standard deviation (0 when Count < 2)
	Std float64 `json:"std" example:"38.12"`
	// Minimum
	Min float64 `json:"min" example:"361"`
	// Maximum
	Max float64 `json:"max" example:"512"`
}

// TargetSummary reports how many nights met the configured sleep target.
// @Description Nights meeting the configured minutes-asleep target.
type TargetSummary struct {
	// Target minutes asleep per night
	TargetMinutes int `json:"target_minutes" example:"420"`
	// Night sessions considered
	NightsTotal int `json:"nights_total" example:"30"`
	// Night sessions meeting the target
	NightsMeeting int `json:"nights_meeting" example:"22"`
	// Percentage of nights meeting the target; absent when no nights are in the window
	PctMeeting *float64 `json:"pct_meeting,omitempty" example:"73.3"`
}

// SummaryStats aggregates one window of sessions. Aggregate blocks are nil
// (absent in JSON) when the window holds no data for them, so callers can
// tell "no data" apart from a genuine zero.
// @Description Window aggregates. Absent blocks mean no data, not zero.
type SummaryStats struct {
	// Analysis window
	Window WindowRange `json:"window"`
	// Sessions in the window after filters
	SessionCount int `json:"session_count" example:"34"`
	// Night sessions in the window
	NightCount int `json:"night_count" example:"30"`
	// Naps in the window
	NapCount int `json:"nap_count" example:"4"`
	// Time in bed, minutes
	Duration *MetricStats `json:"duration_min,omitempty"`
	// Time asleep, hours
	SleepHours *MetricStats `json:"sleep_hours,omitempty"`
	// Efficiency percent
	Efficiency *MetricStats `json:"efficiency,omitempty"`
	// Overall score (sessions that carry one)
	Score *MetricStats `json:"overall_score,omitempty"`
	// Resting heart rate (sessions that carry one)
	RestingHeartRate *MetricStats `json:"resting_heart_rate,omitempty"`
	// Bedtime as fractional hour of day
	Bedtime *MetricStats `json:"bedtime_hour,omitempty"`
	// Mean deep-sleep share of minutes asleep, percent
	MeanDeepPct *float64 `json:"mean_deep_pct,omitempty" example:"17.2"`
	// Mean REM share of minutes asleep, percent
	MeanRemPct *float64 `json:"mean_rem_pct,omitempty" example:"21.8"`
	// Target attainment over night sessions
	Target TargetSummary `json:"target"`
}

// CompareStats is the weekday-versus-weekend view of a window.
// @Description Side-by-side weekday and weekend aggregates for one window.
type CompareStats struct {
	// Analysis window
	Window WindowRange `json:"window"`
	// Aggregates over sessions starting Monday-Friday
	Weekday SummaryStats `json:"weekday"`
	// Aggregates over sessions starting Saturday/Sunday
	Weekend SummaryStats `json:"weekend"`
}

// CorrelationResult is a Pearson correlation between two session metrics.
// @Description Pearson correlation over paired-present observations.
type CorrelationResult struct {
	// Requested metric names
	MetricX string `json:"metric_x" example:"start_hour"`
	MetricY string `json:"metric_y" example:"overall_score"`
	// Display labels for chart axes
	LabelX string `json:"label_x" example:"Bedtime (hour)"`
	LabelY string `json:"label_y" example:"Overall score"`
	// Pearson coefficient in [-1, 1]
	Coefficient float64 `json:"coefficient" example:"-0.41"`
	// Paired observations used
	Pairs int `json:"pairs" example:"148"`
}

// CorrelationMatrix is the pairwise coefficient grid for a metric list.
// Cells with fewer than three pairs or zero variance are nil.
// @Description Pairwise Pearson coefficients; undefined cells are null.
type CorrelationMatrix struct {
	// Metric names, in cell order
	Metrics []string `json:"metrics"`
	// Display labels matching Metrics
	Labels []string `json:"labels"`
	// Coefficients[i][j] between Metrics[i] and Metrics[j]; null when undefined
	Coefficients [][]*float64 `json:"coefficients"`
	// Pairs[i][j] paired observations behind each cell
	Pairs [][]int `json:"pairs"`
}

// RecommendationAction is the enumerated daily recommendation.
// @Description Daily recommendation derived from the recent trend.
type RecommendationAction string

const (
	RecommendationMaintainRoutine  RecommendationAction = "MAINTAIN_ROUTINE"
	RecommendationGoToBedEarlier   RecommendationAction = "GO_TO_BED_EARLIER"
	RecommendationConsiderRestDay  RecommendationAction = "CONSIDER_REST_DAY"
	RecommendationInsufficientData RecommendationAction = "INSUFFICIENT_DATA"
)

// Recommendation is the deterministic "today" advice for an as-of date,
// together with the numbers it was derived from.
// @Description Deterministic recommendation for the as-of date.
type Recommendation struct {
	// Enumerated action
	Action RecommendationAction `json:"action" example:"GO_TO_BED_EARLIER"`
	// One-line explanation
	Reason string `json:"reason" example:"averaging 48 minutes below your 420-minute target over the last 7 days"`
	// As-of date the advice applies to
	AsOf string `json:"as_of" example:"2025-06-30"`
	// Night sessions in the trailing recent window
	RecentNights int `json:"recent_nights" example:"6"`
	// Mean minutes asleep over the recent window; absent without data
	RecentMeanAsleepMin *float64 `json:"recent_mean_asleep_min,omitempty" example:"372.5"`
	// Night sessions in the baseline window
	BaselineNights int `json:"baseline_nights" example:"26"`
	// Mean minutes asleep over the baseline window; absent without data
	BaselineMeanAsleepMin *float64 `json:"baseline_mean_asleep_min,omitempty" example:"409.8"`
	// Minutes the recent mean falls short of the target (negative = surplus); absent without data
	DeficitMin *float64 `json:"deficit_min,omitempty" example:"47.5"`
	// Minutes the recent mean bedtime drifted later than baseline (negative = earlier); absent without data
	BedtimeDriftMin *float64 `json:"bedtime_drift_min,omitempty" example:"52.0"`
	// Target minutes asleep the advice is measured against
	TargetMinutes int `json:"target_minutes" example:"420"`
}

// ChronotypeKind classifies the sleeper by median mid-sleep time.
// @Description Chronotype classification based on mid-sleep time.
type ChronotypeKind string

const (
	ChronotypeEarlyBird    ChronotypeKind = "early_bird"
	ChronotypeIntermediate ChronotypeKind = "intermediate"
	ChronotypeNightOwl     ChronotypeKind = "night_owl"
	ChronotypeUnknown      ChronotypeKind = "unknown"
)

// ChronotypeResult contains the computed chronotype and supporting data.
// @Description Chronotype analysis result.
type ChronotypeResult struct {
	// Chronotype classification
	Chronotype ChronotypeKind `json:"chronotype" example:"night_owl"`
	// Median mid-sleep time (HH:MM), empty when unknown
	MidSleepTime string `json:"mid_sleep_time,omitempty" example:"06:05"`
	// Median mid-sleep minutes after midnight
	MidSleepMinutesAfterMidnight int `json:"mid_sleep_minutes_after_midnight" example:"365"`
	// Days in the analysis window
	WindowDays int `json:"window_days" example:"90"`
	// Night sessions used
	NightsUsed int `json:"nights_used" example:"84"`
}

// HeatmapCell is one day cell of the calendar heatmap.
type HeatmapCell struct {
	// Civil day (YYYY-MM-DD)
	Date string `json:"date" example:"2025-06-14"`
	// ISO week number
	ISOWeek int `json:"iso_week" example:"24"`
	// Weekday name
	Weekday string `json:"weekday" example:"Saturday"`
	// Metric value for the day; null when no session carries the metric
	Value *float64 `json:"value" example:"405"`
}

// HeatmapSeries is the calendar-heatmap payload for one metric.
// @Description ISO week x weekday grid of a selectable metric.
type HeatmapSeries struct {
	// Metric plotted
	Metric string `json:"metric" example:"minutes_asleep"`
	// Display label
	Label string `json:"label" example:"Minutes asleep"`
	// Calendar year the cells belong to
	Year int `json:"year" example:"2025"`
	// One cell per day with data
	Cells []HeatmapCell `json:"cells"`
}

// RhythmPoint is one session's bed/wake pair on the rhythm timeline.
type RhythmPoint struct {
	// Civil day (YYYY-MM-DD)
	Date string `json:"date" example:"2025-06-14"`
	// Session kind
	Kind SessionKind `json:"kind" example:"NIGHT"`
	// Bedtime as fractional hour of day
	StartHour float64 `json:"start_hour" example:"2.35"`
	// Wake time as fractional hour of day
	EndHour float64 `json:"end_hour" example:"10.08"`
}

// RhythmSeries is the bed/wake timeline payload.
// @Description Per-session bedtime and wake hour points over the window.
type RhythmSeries struct {
	Window WindowRange   `json:"window"`
	Points []RhythmPoint `json:"points"`
}

// ScatterPoint is one paired observation of two metrics.
type ScatterPoint struct {
	// Civil day (YYYY-MM-DD)
	Date string  `json:"date" example:"2025-06-14"`
	X    float64 `json:"x" example:"2.35"`
	Y    float64 `json:"y" example:"78.5"`
}

// ScatterSeries is the scatter-chart payload for a metric pair.
// @Description Paired observations of two metrics (paired deletion).
type ScatterSeries struct {
	MetricX string         `json:"metric_x" example:"start_hour"`
	MetricY string         `json:"metric_y" example:"overall_score"`
	LabelX  string         `json:"label_x" example:"Bedtime (hour)"`
	LabelY  string         `json:"label_y" example:"Overall score"`
	Window  WindowRange    `json:"window"`
	Points  []ScatterPoint `json:"points"`
}

// FunnelStage is one stage of the sleep funnel.
type FunnelStage struct {
	// Stage name
	Stage string `json:"stage" example:"asleep"`
	// Mean minutes per session in the window
	MeanMinutes float64 `json:"mean_minutes" example:"405.2"`
}

// FunnelSeries is the time-in-bed -> asleep -> stages funnel payload.
// @Description Mean minutes per funnel stage over the window.
type FunnelSeries struct {
	Window WindowRange `json:"window"`
	// Sessions behind the means
	SessionCount int           `json:"session_count" example:"30"`
	Stages       []FunnelStage `json:"stages"`
}

// ParallelSeries is the parallel-coordinates payload: one row per session
// that carries every requested metric.
// @Description Per-session rows across the requested metrics.
type ParallelSeries struct {
	Metrics []string    `json:"metrics"`
	Labels  []string    `json:"labels"`
	Window  WindowRange `json:"window"`
	// Dates[i] is the civil day of Rows[i]
	Dates []string    `json:"dates"`
	Rows  [][]float64 `json:"rows"`
}

// SummaryRequest carries the common analytics query parameters.
type SummaryRequest struct {
	AsOf       string `json:"as_of" validate:"omitempty,datetime=2006-01-02"`
	WindowDays int    `json:"window_days" validate:"omitempty,min=1,max=730"`
	Kind       string `json:"kind" validate:"omitempty,oneof=all night nap"`
	Day        string `json:"day" validate:"omitempty,oneof=all weekday weekend"`
}

// CorrelationRequest names the metric pair to correlate.
type CorrelationRequest struct {
	MetricX string `json:"x" validate:"required,metric"`
	MetricY string `json:"y" validate:"required,metric"`
	Kind    string `json:"kind" validate:"omitempty,oneof=all night nap"`
	Day     string `json:"day" validate:"omitempty,oneof=all weekday weekend"`
}

// MetricInfo describes one metric available for correlation and charting.
// @Description Catalog entry for a supported metric.
type MetricInfo struct {
	// Machine name used in query parameters
	Name string `json:"name" example:"minutes_asleep"`
	// Human-readable label
	Label string `json:"label" example:"Minutes asleep"`
}

// FeedbackRequest is the request body for insights feedback.
// @Description User rating for a previous insights response.
type FeedbackRequest struct {
	// Trace ID from the insights response
	TraceID string `json:"trace_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" validate:"required,min=1,max=5" example:"4"`
	// Optional comment
	Comment string `json:"comment,omitempty" validate:"omitempty,max=2000" example:"The insights were helpful!"`
}

// LLMInsights contains the structured narrative generated by the LLM.
// @Description LLM-generated narrative over the computed aggregates.
type LLMInsights struct {
	// Summary of recent sleep (2-3 sentences)
	Summary string `json:"summary" example:"Your sleep held steady this week..."`
	// Observations about patterns (3-6 items)
	Observations []string `json:"observations"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance"`
}

// InsightsContext is the aggregate bundle handed to the LLM.
// @Description Context data for narrative generation.
type InsightsContext struct {
	History        SummaryStats        `json:"history"`
	Recent         SummaryStats        `json:"recent"`
	Compare        CompareStats        `json:"weekday_weekend"`
	Chronotype     ChronotypeResult    `json:"chronotype"`
	Recommendation Recommendation      `json:"recommendation"`
	Correlations   []CorrelationResult `json:"correlations"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Narrative insights plus the aggregates they were derived from.
type InsightsResponse struct {
	// Aggregates handed to the model
	Context InsightsContext `json:"context"`
	// Generated narrative
	Insights LLMInsights `json:"insights"`
	// Trace ID for feedback linking (present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// Quote is one cached philosopher quote.
// @Description Philosopher quote from the local cache.
type Quote struct {
	// Quote text
	Text string `json:"text" example:"We are what we repeatedly do."`
	// Attributed philosopher
	Philosopher string `json:"philosopher" example:"Aristotle"`
	// School of thought
	School string `json:"school,omitempty" example:"Aristotelianism"`
	// Portrait URL when the cache carries one
	ImageURL string `json:"image_url,omitempty"`
}

// QuoteResponse is the quote-of-the-day payload.
// @Description Deterministic quote for the as-of date.
type QuoteResponse struct {
	// Date the quote was picked for
	Date  string `json:"date" example:"2025-06-30"`
	Quote Quote  `json:"quote"`
}
