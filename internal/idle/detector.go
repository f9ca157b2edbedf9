// Package idle tracks the time since the user's last interaction and
// raises threshold crossings on a fixed check interval. The presentation
// layer feeds interactions in; the session controller schedules the
// checks while monitoring is on.
package idle

import (
	"sync"
	"time"
)

// Threshold describes one inactivity rule. Kind is the reminder category
// the crossing maps to when dispatched ("stretch", "eye", ...).
type Threshold struct {
	After   time.Duration
	Kind    string
	Title   string
	Message string

	// Repeat makes the threshold fire on every check while the elapsed
	// time stays above After. One-shot thresholds fire once per idle
	// period and re-arm when activity is recorded.
	Repeat bool
}

// Crossing reports a threshold whose duration was met at check time.
type Crossing struct {
	Threshold Threshold
	Elapsed   time.Duration
	At        time.Time
}

// DefaultThresholds mirrors the stock rules: a one-shot stretch nudge at
// 30 minutes and a repeating eye-rest nudge at 2 hours.
func DefaultThresholds() []Threshold {
	return []Threshold{
		{
			After:   30 * time.Minute,
			Kind:    "stretch",
			Title:   "Time to move",
			Message: "You have been inactive for 30 minutes. How about a short break with some stretching?",
		},
		{
			After:   120 * time.Minute,
			Kind:    "eye",
			Title:   "Rest your eyes",
			Message: "You have been at it for 2 hours. Apply the 20-20-20 rule: look at something 6 meters away for 20 seconds.",
			Repeat:  true,
		},
	}
}

// Detector holds the last-activity timestamp and evaluates thresholds.
// Safe for concurrent use.
type Detector struct {
	mu           sync.Mutex
	lastActivity time.Time
	thresholds   []Threshold
	fired        []bool // one-shot bookkeeping, parallel to thresholds
}

// NewDetector creates a Detector with activity last seen at start.
func NewDetector(start time.Time, thresholds []Threshold) *Detector {
	return &Detector{
		lastActivity: start,
		thresholds:   thresholds,
		fired:        make([]bool, len(thresholds)),
	}
}

// RecordActivity resets the inactivity clock and re-arms one-shot
// thresholds. Timestamps older than the current last activity are
// ignored so out-of-order delivery cannot move the clock backwards.
func (d *Detector) RecordActivity(t time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t.Before(d.lastActivity) {
		return
	}
	d.lastActivity = t
	for i := range d.fired {
		d.fired[i] = false
	}
}

// LastActivity returns the current last-activity timestamp.
func (d *Detector) LastActivity() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastActivity
}

// Check evaluates every threshold against the elapsed inactivity time
// and returns the crossings that fire on this check. Thresholds are
// independent: crossing a later one does not suppress an earlier one.
func (d *Detector) Check(now time.Time) []Crossing {
	d.mu.Lock()
	defer d.mu.Unlock()

	elapsed := now.Sub(d.lastActivity)
	if elapsed < 0 {
		elapsed = 0
	}

	var crossings []Crossing
	for i, th := range d.thresholds {
		if elapsed < th.After {
			continue
		}
		if !th.Repeat && d.fired[i] {
			continue
		}
		d.fired[i] = true
		crossings = append(crossings, Crossing{
			Threshold: th,
			Elapsed:   elapsed,
			At:        now,
		})
	}
	return crossings
}
