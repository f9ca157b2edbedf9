package achievements

import (
	"testing"
	"time"
)

func TestCatalog_OrderedByPoints(t *testing.T) {
	catalog := Catalog()
	if len(catalog) == 0 {
		t.Fatal("catalog is empty")
	}
	for i := 1; i < len(catalog); i++ {
		if catalog[i].Points > catalog[i-1].Points {
			t.Errorf("catalog not sorted by points at index %d: %d > %d",
				i, catalog[i].Points, catalog[i-1].Points)
		}
	}

	seen := make(map[string]bool)
	for _, def := range catalog {
		if seen[def.ID] {
			t.Errorf("duplicate achievement id %q", def.ID)
		}
		seen[def.ID] = true
		if def.Threshold <= 0 {
			t.Errorf("%s: non-positive threshold %v", def.ID, def.Threshold)
		}
		if def.Points <= 0 {
			t.Errorf("%s: non-positive points %d", def.ID, def.Points)
		}
	}
}

func TestProgressFor_CapsAtHundred(t *testing.T) {
	def := Definition{ID: "x", Requirement: RequireExercises, Threshold: 50}

	tests := []struct {
		exercises int
		want      float64
	}{
		{0, 0},
		{25, 50},
		{50, 100},
		{200, 100},
	}
	for _, tt := range tests {
		got := def.ProgressFor(Totals{Exercises: tt.exercises})
		if got != tt.want {
			t.Errorf("ProgressFor(exercises=%d) = %v, want %v", tt.exercises, got, tt.want)
		}
	}
}

func TestMet_PerRequirementType(t *testing.T) {
	totals := Totals{Sessions: 25, Exercises: 10, Hours: 10.5, StreakDays: 7}

	tests := []struct {
		req       RequirementType
		threshold float64
		want      bool
	}{
		{RequireSessions, 25, true},
		{RequireSessions, 26, false},
		{RequireExercises, 10, true},
		{RequireHours, 10, true},
		{RequireHours, 11, false},
		{RequireStreak, 7, true},
		{RequireStreak, 8, false},
	}
	for _, tt := range tests {
		def := Definition{Requirement: tt.req, Threshold: tt.threshold}
		if got := def.Met(totals); got != tt.want {
			t.Errorf("Met(%s >= %v) = %v, want %v", tt.req, tt.threshold, got, tt.want)
		}
	}
}

func TestNewlyEarned_SkipsAlreadyEarned(t *testing.T) {
	totals := Totals{Sessions: 1, Exercises: 12}
	earned := map[string]time.Time{"first-session": time.Now()}

	newly := NewlyEarned(totals, earned)
	ids := make(map[string]bool)
	for _, def := range newly {
		ids[def.ID] = true
	}
	if ids["first-session"] {
		t.Error("already-earned achievement reported as new")
	}
	if !ids["exercise-10"] {
		t.Error("expected exercise-10 to be newly earned at 12 exercises")
	}
	if ids["eye-champion"] {
		t.Error("eye-champion requires 50 exercises, should not be earned at 12")
	}
}

func TestResolve_EarnedAlwaysFullProgress(t *testing.T) {
	earnedAt := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	// Totals no longer justify the earned achievement (e.g. streak broken).
	statuses := Resolve(Totals{StreakDays: 0}, map[string]time.Time{"streak-7": earnedAt})

	var found bool
	for _, st := range statuses {
		if st.ID != "streak-7" {
			continue
		}
		found = true
		if !st.Earned {
			t.Error("streak-7 should be earned")
		}
		if st.Progress != 100 {
			t.Errorf("earned achievement progress: want 100, got %v", st.Progress)
		}
		if !st.EarnedAt.Equal(earnedAt) {
			t.Errorf("earned_at: want %v, got %v", earnedAt, st.EarnedAt)
		}
	}
	if !found {
		t.Fatal("streak-7 missing from resolved catalog")
	}
}

func TestTotalPoints(t *testing.T) {
	earned := map[string]time.Time{
		"first-session": time.Now(), // 10
		"streak-7":      time.Now(), // 50
		"unknown-id":    time.Now(), // ignored
	}
	if got := TotalPoints(earned); got != 60 {
		t.Errorf("TotalPoints: want 60, got %d", got)
	}
}
