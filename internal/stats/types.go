package stats

// TodayStats holds the current day's activity counters shown on the
// dashboard and stats views.
type TodayStats struct {
	Sessions  int
	Exercises int
	Breaks    int
	Postures  int
	Hours     float64
}

// DayStats is one day of aggregated history for the weekly panel.
type DayStats struct {
	Date         string // YYYY-MM-DD
	PostureScore float64
	Exercises    int
	Breaks       int
}

// Rating buckets the overall health score for display.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingVeryGood  Rating = "very_good"
	RatingGood      Rating = "good"
	RatingNeedsWork Rating = "needs_work"
)

// Overview is the computed summary for the stats view.
type Overview struct {
	HealthScore    int
	Rating         Rating
	ExerciseRate   float64 // fraction of the daily exercise target met
	BreakRate      float64
	CompletionRate float64 // combined target completion, 0..1
}
