// Package stats computes activity statistics for the stats and
// dashboard views. Calculator functions are pure computations with no
// side effects; Tracker holds the mutable per-day counters.
package stats

import "math"

// Daily targets used for completion rates and the health score.
const (
	DailyExerciseTarget = 15
	DailyBreakTarget    = 10
)

// Health score component weights.
const (
	postureWeight  = 0.4
	exerciseWeight = 0.3
	breakWeight    = 0.3
)

// Calculator computes derived statistics from activity counters.
type Calculator struct{}

// NewCalculator creates a new Calculator instance.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Overview computes the stats view summary from today's counters and
// the current posture score.
func (c *Calculator) Overview(today TodayStats, postureScore float64) Overview {
	exerciseRate := targetRate(today.Exercises, DailyExerciseTarget)
	breakRate := targetRate(today.Breaks, DailyBreakTarget)

	return Overview{
		HealthScore:    c.HealthScore(postureScore, today.Exercises, today.Breaks),
		Rating:         RatingFor(c.HealthScore(postureScore, today.Exercises, today.Breaks)),
		ExerciseRate:   exerciseRate,
		BreakRate:      breakRate,
		CompletionRate: (exerciseRate + breakRate) / 2,
	}
}

// HealthScore combines the posture score with exercise and break target
// completion into a single 0..100 score. Posture carries 40%, exercises
// and breaks 30% each; target completion is capped at 100%.
func (c *Calculator) HealthScore(postureScore float64, exercises, breaks int) int {
	exerciseScore := math.Min(100, float64(exercises)/DailyExerciseTarget*100)
	breakScore := math.Min(100, float64(breaks)/DailyBreakTarget*100)

	return int(math.Round(
		postureScore*postureWeight +
			exerciseScore*exerciseWeight +
			breakScore*breakWeight,
	))
}

// RatingFor buckets a health score for display.
func RatingFor(score int) Rating {
	switch {
	case score >= 90:
		return RatingExcellent
	case score >= 75:
		return RatingVeryGood
	case score >= 60:
		return RatingGood
	default:
		return RatingNeedsWork
	}
}

// WeeklyAverages returns the mean posture score, exercises, and breaks
// over the given days. Zero-length input yields zeros.
func (c *Calculator) WeeklyAverages(days []DayStats) (posture float64, exercises, breaks float64) {
	if len(days) == 0 {
		return 0, 0, 0
	}
	for _, d := range days {
		posture += d.PostureScore
		exercises += float64(d.Exercises)
		breaks += float64(d.Breaks)
	}
	n := float64(len(days))
	return posture / n, exercises / n, breaks / n
}

func targetRate(completed, target int) float64 {
	if target <= 0 {
		return 0
	}
	return math.Min(1, float64(completed)/float64(target))
}
