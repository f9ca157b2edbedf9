package stats

import (
	"sync"
	"time"
)

// Tracker accumulates today's activity counters. It is seeded from
// storage at startup and incremented by the session controller as
// activities complete. Counters reset when the local date rolls over.
type Tracker struct {
	mu    sync.Mutex
	date  string
	today TodayStats
}

// NewTracker creates a Tracker for the given day.
func NewTracker(now time.Time) *Tracker {
	return &Tracker{date: now.Format("2006-01-02")}
}

// Seed replaces today's counters, typically with values read back from
// storage at startup.
func (t *Tracker) Seed(today TodayStats) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.today = today
}

// AddSession records a completed work session of the given duration.
func (t *Tracker) AddSession(now time.Time, duration time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollLocked(now)
	t.today.Sessions++
	t.today.Hours += duration.Hours()
}

// AddExercise records a completed exercise.
func (t *Tracker) AddExercise(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollLocked(now)
	t.today.Exercises++
}

// AddBreak records a taken break.
func (t *Tracker) AddBreak(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollLocked(now)
	t.today.Breaks++
}

// AddPostureCheck records a posture check.
func (t *Tracker) AddPostureCheck(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollLocked(now)
	t.today.Postures++
}

// Today returns a snapshot of the current counters.
func (t *Tracker) Today(now time.Time) TodayStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollLocked(now)
	return t.today
}

func (t *Tracker) rollLocked(now time.Time) {
	date := now.Format("2006-01-02")
	if date != t.date {
		t.date = date
		t.today = TodayStats{}
	}
}
