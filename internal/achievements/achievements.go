// Package achievements defines the static achievement catalog and
// computes progress and earned state from lifetime activity totals.
package achievements

import (
	"math"
	"sort"
	"time"
)

// RequirementType selects which activity total an achievement measures.
type RequirementType string

const (
	RequireSessions  RequirementType = "sessions"
	RequireExercises RequirementType = "exercises"
	RequireHours     RequirementType = "hours"
	RequireStreak    RequirementType = "streak"
)

// Definition is one catalog entry.
type Definition struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Requirement RequirementType
	Threshold   float64
	Points      int
}

// Totals is the activity input for progress computation.
type Totals struct {
	Sessions   int
	Exercises  int
	Hours      float64
	StreakDays int
}

// Status is a catalog entry resolved against a user's totals.
type Status struct {
	Definition
	Earned   bool
	EarnedAt time.Time
	Progress float64 // 0..100
}

// Catalog returns the full achievement catalog, highest points first.
func Catalog() []Definition {
	defs := []Definition{
		{ID: "first-session", Title: "Getting Started", Description: "Complete your first work session", Icon: "🌱", Requirement: RequireSessions, Threshold: 1, Points: 10},
		{ID: "session-25", Title: "Regular", Description: "Complete 25 work sessions", Icon: "📅", Requirement: RequireSessions, Threshold: 25, Points: 30},
		{ID: "session-100", Title: "Veteran", Description: "Complete 100 work sessions", Icon: "🎖️", Requirement: RequireSessions, Threshold: 100, Points: 75},
		{ID: "exercise-10", Title: "Warming Up", Description: "Complete 10 exercises", Icon: "💪", Requirement: RequireExercises, Threshold: 10, Points: 15},
		{ID: "eye-champion", Title: "Eye Exercise Champion", Description: "Complete 50 exercises", Icon: "👁️", Requirement: RequireExercises, Threshold: 50, Points: 40},
		{ID: "exercise-200", Title: "Exercise Master", Description: "Complete 200 exercises", Icon: "🏆", Requirement: RequireExercises, Threshold: 200, Points: 100},
		{ID: "hours-10", Title: "Focused", Description: "Track 10 hours of activity", Icon: "⏱️", Requirement: RequireHours, Threshold: 10, Points: 20},
		{ID: "hours-100", Title: "Marathon", Description: "Track 100 hours of activity", Icon: "🏃", Requirement: RequireHours, Threshold: 100, Points: 80},
		{ID: "streak-7", Title: "Seven Day Streak", Description: "Stay active 7 days in a row", Icon: "🔥", Requirement: RequireStreak, Threshold: 7, Points: 50},
		{ID: "streak-30", Title: "Habit Formed", Description: "Stay active 30 days in a row", Icon: "⚡", Requirement: RequireStreak, Threshold: 30, Points: 150},
	}
	sort.SliceStable(defs, func(i, j int) bool { return defs[i].Points > defs[j].Points })
	return defs
}

// value extracts the total the definition's requirement measures.
func (d Definition) value(t Totals) float64 {
	switch d.Requirement {
	case RequireSessions:
		return float64(t.Sessions)
	case RequireExercises:
		return float64(t.Exercises)
	case RequireHours:
		return t.Hours
	case RequireStreak:
		return float64(t.StreakDays)
	}
	return 0
}

// Met reports whether the totals satisfy the definition.
func (d Definition) Met(t Totals) bool {
	return d.value(t) >= d.Threshold
}

// ProgressFor returns completion toward the definition as a 0..100
// percentage, capped at 100.
func (d Definition) ProgressFor(t Totals) float64 {
	if d.Threshold <= 0 {
		return 100
	}
	return math.Min(100, d.value(t)/d.Threshold*100)
}

// Resolve maps the catalog against the user's totals and previously
// earned achievements. Earned entries report 100% progress regardless
// of current totals.
func Resolve(t Totals, earned map[string]time.Time) []Status {
	catalog := Catalog()
	out := make([]Status, 0, len(catalog))
	for _, def := range catalog {
		st := Status{Definition: def}
		if at, ok := earned[def.ID]; ok {
			st.Earned = true
			st.EarnedAt = at
			st.Progress = 100
		} else {
			st.Progress = def.ProgressFor(t)
		}
		out = append(out, st)
	}
	return out
}

// NewlyEarned returns catalog entries the totals now satisfy that are
// not yet in earned. Callers persist these and award their points.
func NewlyEarned(t Totals, earned map[string]time.Time) []Definition {
	var out []Definition
	for _, def := range Catalog() {
		if _, ok := earned[def.ID]; ok {
			continue
		}
		if def.Met(t) {
			out = append(out, def)
		}
	}
	return out
}

// TotalPoints sums the points of earned achievements.
func TotalPoints(earned map[string]time.Time) int {
	byID := make(map[string]Definition)
	for _, def := range Catalog() {
		byID[def.ID] = def
	}
	total := 0
	for id := range earned {
		total += byID[id].Points
	}
	return total
}
