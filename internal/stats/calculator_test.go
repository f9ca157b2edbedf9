package stats

import (
	"testing"
	"time"
)

func TestHealthScore_Weighting(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		name      string
		posture   float64
		exercises int
		breaks    int
		want      int
	}{
		{"all zero", 0, 0, 0, 0},
		{"posture only", 100, 0, 0, 40},
		{"targets met", 100, 15, 10, 100},
		{"targets exceeded capped", 100, 30, 20, 100},
		{"half targets", 80, 7, 5, 61}, // 80*0.4 + 46.67*0.3 + 50*0.3 = 61
		{"typical day", 85, 12, 8, 82}, // 34 + 24 + 24 = 82
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.HealthScore(tt.posture, tt.exercises, tt.breaks)
			if got != tt.want {
				t.Errorf("HealthScore(%v, %d, %d) = %d, want %d",
					tt.posture, tt.exercises, tt.breaks, got, tt.want)
			}
		})
	}
}

func TestRatingFor_Buckets(t *testing.T) {
	tests := []struct {
		score int
		want  Rating
	}{
		{100, RatingExcellent},
		{90, RatingExcellent},
		{89, RatingVeryGood},
		{75, RatingVeryGood},
		{74, RatingGood},
		{60, RatingGood},
		{59, RatingNeedsWork},
		{0, RatingNeedsWork},
	}
	for _, tt := range tests {
		if got := RatingFor(tt.score); got != tt.want {
			t.Errorf("RatingFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestOverview_CompletionRates(t *testing.T) {
	c := NewCalculator()

	ov := c.Overview(TodayStats{Exercises: 15, Breaks: 5}, 80)
	if ov.ExerciseRate != 1.0 {
		t.Errorf("exercise rate: want 1.0, got %f", ov.ExerciseRate)
	}
	if ov.BreakRate != 0.5 {
		t.Errorf("break rate: want 0.5, got %f", ov.BreakRate)
	}
	if ov.CompletionRate != 0.75 {
		t.Errorf("completion rate: want 0.75, got %f", ov.CompletionRate)
	}
	if ov.Rating != RatingFor(ov.HealthScore) {
		t.Errorf("rating %q inconsistent with score %d", ov.Rating, ov.HealthScore)
	}
}

func TestWeeklyAverages(t *testing.T) {
	c := NewCalculator()

	days := []DayStats{
		{Date: "2026-08-24", PostureScore: 80, Exercises: 10, Breaks: 6},
		{Date: "2026-08-25", PostureScore: 90, Exercises: 14, Breaks: 10},
	}
	posture, exercises, breaks := c.WeeklyAverages(days)
	if posture != 85 {
		t.Errorf("posture average: want 85, got %f", posture)
	}
	if exercises != 12 {
		t.Errorf("exercise average: want 12, got %f", exercises)
	}
	if breaks != 8 {
		t.Errorf("break average: want 8, got %f", breaks)
	}

	posture, exercises, breaks = c.WeeklyAverages(nil)
	if posture != 0 || exercises != 0 || breaks != 0 {
		t.Error("empty input should yield zeros")
	}
}

func TestTracker_SeedAndIncrement(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	tr := NewTracker(now)
	tr.Seed(TodayStats{Sessions: 2, Exercises: 5})

	tr.AddSession(now, 30*time.Minute)
	tr.AddExercise(now)
	tr.AddBreak(now)
	tr.AddPostureCheck(now)

	today := tr.Today(now)
	if today.Sessions != 3 {
		t.Errorf("sessions: want 3, got %d", today.Sessions)
	}
	if today.Exercises != 6 {
		t.Errorf("exercises: want 6, got %d", today.Exercises)
	}
	if today.Breaks != 1 || today.Postures != 1 {
		t.Errorf("breaks/postures: got %d/%d", today.Breaks, today.Postures)
	}
	if today.Hours != 0.5 {
		t.Errorf("hours: want 0.5, got %f", today.Hours)
	}
}

func TestTracker_ResetsOnDateRollover(t *testing.T) {
	day1 := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	tr := NewTracker(day1)
	tr.AddExercise(day1)

	day2 := day1.Add(2 * time.Hour)
	today := tr.Today(day2)
	if today.Exercises != 0 {
		t.Errorf("expected counters reset at midnight, got %d exercises", today.Exercises)
	}

	tr.AddExercise(day2)
	if got := tr.Today(day2).Exercises; got != 1 {
		t.Errorf("post-rollover increment: want 1, got %d", got)
	}
}
