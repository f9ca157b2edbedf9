// Package session coordinates the monitoring loops: it owns the
// scheduler tasks driving the posture simulator, idle detector, and
// reminder registry, and exposes a read model for the presentation
// layer.
package session

import (
	"sync"
	"time"

	"github.com/Can-Ozan/ergotop/internal/config"
	"github.com/Can-Ozan/ergotop/internal/idle"
	"github.com/Can-Ozan/ergotop/internal/notify"
	"github.com/Can-Ozan/ergotop/internal/posture"
	"github.com/Can-Ozan/ergotop/internal/reminder"
	"github.com/Can-Ozan/ergotop/internal/schedule"
	"github.com/Can-Ozan/ergotop/internal/stats"
	"github.com/Can-Ozan/ergotop/internal/storage"
)

// View identifies a top-level screen.
type View int

const (
	ViewDashboard View = iota
	ViewPosture
	ViewExercises
	ViewStreamer
	ViewStats
	ViewAssistant
	ViewLeaderboard
	ViewFeedback
)

// String returns the view's display name.
func (v View) String() string {
	switch v {
	case ViewDashboard:
		return "dashboard"
	case ViewPosture:
		return "posture"
	case ViewExercises:
		return "exercises"
	case ViewStreamer:
		return "streamer"
	case ViewStats:
		return "stats"
	case ViewAssistant:
		return "assistant"
	case ViewLeaderboard:
		return "leaderboard"
	case ViewFeedback:
		return "feedback"
	default:
		return "unknown"
	}
}

// Snapshot is the read model handed to the presentation layer.
type Snapshot struct {
	Score           float64
	Grade           posture.Grade
	Trend           posture.TrendDirection
	Warnings        []posture.Warning
	ActiveReminders []reminder.Reminder
	Notifications   []notify.Message
	Today           stats.TodayStats
	Monitoring      bool
	ActiveView      View
}

// Controller wires the scheduler-driven components together. The
// reminder tick always runs; the metric and idle tasks run only while
// monitoring is on.
type Controller struct {
	cfg       config.Config
	scheduler *schedule.Scheduler
	clock     schedule.Clock

	simulator  *posture.Simulator
	detector   *idle.Detector
	registry   *reminder.Registry
	dispatcher *notify.Dispatcher
	feed       *notify.Feed
	tracker    *stats.Tracker
	store      *storage.Store

	mu           sync.Mutex
	monitoring   bool
	activeView   View
	reminderTick *schedule.Handle
	metricTick   *schedule.Handle
	idleTick     *schedule.Handle
}

// New builds a Controller from already-constructed collaborators.
// store may be nil when persistence is unavailable.
func New(cfg config.Config, scheduler *schedule.Scheduler, clock schedule.Clock,
	dispatcher *notify.Dispatcher, feed *notify.Feed, tracker *stats.Tracker,
	store *storage.Store) *Controller {

	now := clock.Now()
	c := &Controller{
		cfg:        cfg,
		scheduler:  scheduler,
		clock:      clock,
		simulator:  posture.NewSimulator(cfg.Monitor.StartScore, now.UnixNano()),
		detector:   idle.NewDetector(now, thresholdsFromConfig(cfg.Idle)),
		registry:   reminder.NewRegistry(reminder.WithRecurrence(cfg.Reminders.Recur)),
		dispatcher: dispatcher,
		feed:       feed,
		tracker:    tracker,
		store:      store,
		activeView: ViewDashboard,
	}
	c.registry.OnEvent(c.onReminderEvent)
	return c
}

func thresholdsFromConfig(cfg config.IdleConfig) []idle.Threshold {
	return []idle.Threshold{
		{
			After:   time.Duration(cfg.StretchAfterMinutes) * time.Minute,
			Kind:    "stretch",
			Title:   "Time to stretch",
			Message: "You've been inactive for a while, a short stretch will do you good",
		},
		{
			After:   time.Duration(cfg.EyeAfterMinutes) * time.Minute,
			Kind:    "eye",
			Title:   "Rest your eyes",
			Message: "Look away from the screen and give your eyes a break",
			Repeat:  cfg.EyeRepeat,
		},
	}
}

// Start seeds the registry and launches the always-on reminder tick.
// Monitoring starts too when configured to.
func (c *Controller) Start() {
	now := c.clock.Now()
	if c.cfg.Reminders.Seed {
		c.registry.Seed(now)
	}

	c.mu.Lock()
	c.reminderTick = c.scheduler.Every(time.Second, func(now time.Time) {
		c.registry.Tick(now)
	})
	c.mu.Unlock()

	if c.cfg.Monitor.StartOnLaunch {
		c.SetMonitoring(true)
	}
}

// SetMonitoring starts or stops the metric and idle tasks. Stopping
// freezes the posture score in place; no ticks arrive after it
// returns. Toggling to the current state is a no-op.
func (c *Controller) SetMonitoring(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if on == c.monitoring {
		return
	}
	c.monitoring = on

	if !on {
		c.metricTick.Stop()
		c.idleTick.Stop()
		c.metricTick = nil
		c.idleTick = nil
		return
	}

	c.detector.RecordActivity(c.clock.Now())
	c.metricTick = c.scheduler.Every(
		time.Duration(c.cfg.Monitor.MetricIntervalSeconds)*time.Second,
		func(now time.Time) {
			c.simulator.Tick(now)
		})
	c.idleTick = c.scheduler.Every(
		time.Duration(c.cfg.Idle.CheckIntervalMinutes)*time.Minute,
		func(now time.Time) {
			for _, crossing := range c.detector.Check(now) {
				cr := crossing
				c.dispatcher.Dispatch(notify.Event{
					Type:     notify.IdleThresholdCrossed,
					Crossing: &cr,
				}, now)
			}
		})
}

// Monitoring reports whether the metric and idle tasks are running.
func (c *Controller) Monitoring() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.monitoring
}

// SetActiveView switches the top-level view. Entering the posture view
// enables monitoring; leaving it does not disable anything.
func (c *Controller) SetActiveView(v View) {
	c.mu.Lock()
	c.activeView = v
	c.mu.Unlock()

	if v == ViewPosture {
		c.SetMonitoring(true)
	}
}

// ActiveView returns the current top-level view.
func (c *Controller) ActiveView() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeView
}

// RecordActivity forwards a user interaction to the idle detector.
func (c *Controller) RecordActivity() {
	c.detector.RecordActivity(c.clock.Now())
}

// Registry exposes the reminder registry for the presentation layer's
// create/dismiss/complete actions.
func (c *Controller) Registry() *reminder.Registry {
	return c.registry
}

// QuickAdd creates a reminder from a spec and announces it, for the
// one-key quick actions.
func (c *Controller) QuickAdd(spec reminder.Spec) (reminder.Reminder, error) {
	now := c.clock.Now()

	var rem reminder.Reminder
	if spec.IntervalMinutes > 0 {
		// An interval implies a template so the countdown can recur.
		tmpl, err := c.registry.CreateTemplate(spec, now)
		if err != nil {
			return reminder.Reminder{}, err
		}
		rem, _ = c.registry.Trigger(tmpl.ID, now)
	} else {
		var err error
		rem, err = c.registry.Create(spec, now)
		if err != nil {
			return reminder.Reminder{}, err
		}
	}
	c.dispatcher.Dispatch(notify.Event{
		Type:     notify.ReminderCreated,
		Reminder: &rem,
	}, now)
	return rem, nil
}

// Dismiss removes an active reminder without counting it.
func (c *Controller) Dismiss(id string) {
	c.registry.Dismiss(id, c.clock.Now())
}

// Complete marks an active reminder as done, counting the activity.
func (c *Controller) Complete(id string) {
	c.registry.Complete(id, c.clock.Now())
}

// DismissNotification removes a message from the feed.
func (c *Controller) DismissNotification(id string) {
	c.feed.Dismiss(id)
}

// CompleteExercise records a finished guided exercise.
func (c *Controller) CompleteExercise(durationSeconds int) {
	now := c.clock.Now()
	c.tracker.AddExercise(now)
	if c.store != nil {
		d := durationSeconds
		c.store.RecordActivity(storage.ActivityRecord{
			UserID:          c.cfg.Profile.UserID,
			ActivityType:    storage.ActivityExercise,
			DurationSeconds: &d,
			CreatedAt:       now,
		})
	}
}

// Snapshot assembles the read model for rendering.
func (c *Controller) Snapshot() Snapshot {
	now := c.clock.Now()
	score := c.simulator.Score()

	c.mu.Lock()
	monitoring := c.monitoring
	view := c.activeView
	c.mu.Unlock()

	return Snapshot{
		Score:           score,
		Grade:           posture.GradeFor(score),
		Trend:           c.simulator.Trend(now),
		Warnings:        posture.Analyze(score),
		ActiveReminders: c.registry.Active(),
		Notifications:   c.feed.Visible(),
		Today:           c.tracker.Today(now),
		Monitoring:      monitoring,
		ActiveView:      view,
	}
}

// Close stops all scheduler tasks owned by the controller.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.monitoring = false
	c.reminderTick.Stop()
	c.metricTick.Stop()
	c.idleTick.Stop()
	c.reminderTick = nil
	c.metricTick = nil
	c.idleTick = nil
}

// onReminderEvent fans registry events out to notifications, stats,
// and storage.
func (c *Controller) onReminderEvent(ev reminder.Event) {
	switch ev.Type {
	case reminder.EventExpired:
		rem := ev.Reminder
		c.dispatcher.Dispatch(notify.Event{
			Type:     notify.ReminderExpired,
			Reminder: &rem,
		}, ev.At)
	case reminder.EventRearmed:
		rem := ev.Reminder
		c.dispatcher.Dispatch(notify.Event{
			Type:     notify.ReminderCreated,
			Reminder: &rem,
		}, ev.At)
	case reminder.EventCompleted:
		c.recordCompletion(ev)
	}
}

// recordCompletion maps a completed reminder onto the activity ledger:
// breaks count as breaks, everything else as an exercise.
func (c *Controller) recordCompletion(ev reminder.Event) {
	activityType := storage.ActivityExercise
	if ev.Reminder.Kind == reminder.KindBreak {
		activityType = storage.ActivityBreak
		c.tracker.AddBreak(ev.At)
	} else {
		c.tracker.AddExercise(ev.At)
	}
	if c.store == nil {
		return
	}
	duration := ev.Reminder.TotalSeconds - ev.Reminder.Remaining
	c.store.RecordActivity(storage.ActivityRecord{
		UserID:          c.cfg.Profile.UserID,
		ActivityType:    activityType,
		DurationSeconds: &duration,
		CreatedAt:       ev.At,
	})
}
