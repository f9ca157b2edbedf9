// Package reminder holds the countdown registry: user-defined and
// system-seeded reminders, each with a per-second countdown, plus the
// stored templates recurring reminders are spawned from.
package reminder

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry is the single owner of all reminder state. The tick task and
// user commands mutate it from different goroutines, so every method
// serializes on an internal mutex to preserve the at-most-once decrement
// per tick invariant.
type Registry struct {
	mu        sync.Mutex
	active    map[string]*Reminder
	templates map[string]*Template
	rearms    []rearm
	recur     bool
	listeners []Listener
}

// rearm is a recurrence entry waiting to spawn the next countdown.
type rearm struct {
	templateID string
	dueAt      time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithRecurrence enables template re-arming: a countdown spawned from a
// template with a positive interval schedules its successor when it
// expires or is completed. Dismissal does not re-arm.
func WithRecurrence(enabled bool) Option {
	return func(r *Registry) { r.recur = enabled }
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		active:    make(map[string]*Reminder),
		templates: make(map[string]*Template),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OnEvent registers a listener called after every lifecycle event.
// Listeners are invoked synchronously outside the registry lock.
func (r *Registry) OnEvent(fn Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

func (r *Registry) emit(events []Event) {
	if len(events) == 0 {
		return
	}
	r.mu.Lock()
	listeners := make([]Listener, len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	for _, ev := range events {
		for _, fn := range listeners {
			fn(ev)
		}
	}
}

// Create validates the spec and adds a new active countdown. Returns
// the created reminder, or a *ValidationError with nothing mutated.
func (r *Registry) Create(spec Spec, now time.Time) (Reminder, error) {
	spec = normalizeSpec(spec)
	if err := validateSpec(spec); err != nil {
		return Reminder{}, err
	}

	rem := Reminder{
		ID:           uuid.NewString(),
		Kind:         spec.Kind,
		Title:        spec.Title,
		Message:      spec.Message,
		Priority:     spec.Priority,
		TotalSeconds: spec.DurationSeconds,
		Remaining:    spec.DurationSeconds,
		State:        StateActive,
		CreatedAt:    now,
	}

	r.mu.Lock()
	r.active[rem.ID] = &rem
	r.mu.Unlock()

	return rem, nil
}

// Seed installs the fixed session-start reminders: an eye-exercise
// countdown already partway through its cycle and a short-break
// countdown. Matches the stock seed data the dashboard opens with.
func (r *Registry) Seed(now time.Time) []Reminder {
	seeds := []Reminder{
		{
			ID:           uuid.NewString(),
			Kind:         KindEye,
			Title:        "Eye exercise time",
			Message:      "Time to apply the 20-20-20 rule",
			Priority:     PriorityMedium,
			TotalSeconds: 1200,
			Remaining:    180,
			State:        StateActive,
			CreatedAt:    now,
		},
		{
			ID:           uuid.NewString(),
			Kind:         KindBreak,
			Title:        "Short break",
			Message:      "We suggest taking a 5 minute break",
			Priority:     PriorityHigh,
			TotalSeconds: 1800,
			Remaining:    300,
			State:        StateActive,
			CreatedAt:    now,
		},
	}

	r.mu.Lock()
	for i := range seeds {
		rem := seeds[i]
		r.active[rem.ID] = &rem
	}
	r.mu.Unlock()

	return seeds
}

// Tick decrements every active countdown by one second, expiring and
// removing those that reach zero within the same tick. Due recurrence
// entries spawn their next countdown on the same call.
func (r *Registry) Tick(now time.Time) {
	var events []Event

	r.mu.Lock()
	for id, rem := range r.active {
		if rem.Remaining > 0 {
			rem.Remaining--
		}
		if rem.Remaining <= 0 {
			rem.Remaining = 0
			rem.State = StateExpired
			delete(r.active, id)
			events = append(events, Event{Type: EventExpired, Reminder: *rem, At: now})
			r.scheduleRearmLocked(rem, now)
		}
	}
	events = append(events, r.spawnDueRearmsLocked(now)...)
	r.mu.Unlock()

	r.emit(events)
}

// Dismiss removes an active reminder without credit. Unknown ids are a
// no-op.
func (r *Registry) Dismiss(id string, now time.Time) {
	var events []Event

	r.mu.Lock()
	if rem, ok := r.active[id]; ok {
		rem.State = StateDismissed
		delete(r.active, id)
		events = append(events, Event{Type: EventDismissed, Reminder: *rem, At: now})
	}
	r.mu.Unlock()

	r.emit(events)
}

// Complete removes an active reminder and reports it as done, which the
// stats collaborator counts. Unknown ids are a no-op.
func (r *Registry) Complete(id string, now time.Time) {
	var events []Event

	r.mu.Lock()
	if rem, ok := r.active[id]; ok {
		rem.State = StateCompleted
		delete(r.active, id)
		events = append(events, Event{Type: EventCompleted, Reminder: *rem, At: now})
		r.scheduleRearmLocked(rem, now)
	}
	r.mu.Unlock()

	r.emit(events)
}

// scheduleRearmLocked queues the next occurrence for a countdown that
// left the active set via expiry or completion. Caller holds the lock.
func (r *Registry) scheduleRearmLocked(rem *Reminder, now time.Time) {
	if !r.recur || rem.TemplateID == "" {
		return
	}
	tmpl, ok := r.templates[rem.TemplateID]
	if !ok || tmpl.IntervalMinutes <= 0 {
		return
	}
	r.rearms = append(r.rearms, rearm{
		templateID: tmpl.ID,
		dueAt:      now.Add(time.Duration(tmpl.IntervalMinutes) * time.Minute),
	})
}

// spawnDueRearmsLocked converts due recurrence entries into fresh active
// countdowns. Caller holds the lock.
func (r *Registry) spawnDueRearmsLocked(now time.Time) []Event {
	if len(r.rearms) == 0 {
		return nil
	}

	var events []Event
	remaining := r.rearms[:0]
	for _, entry := range r.rearms {
		if entry.dueAt.After(now) {
			remaining = append(remaining, entry)
			continue
		}
		tmpl, ok := r.templates[entry.templateID]
		if !ok {
			// Template deleted while the re-arm was pending.
			continue
		}
		rem := spawnFromTemplate(tmpl, now)
		r.active[rem.ID] = &rem
		events = append(events, Event{Type: EventRearmed, Reminder: rem, At: now})
	}
	r.rearms = remaining
	return events
}

// Active returns a snapshot of the active countdowns, ordered by
// creation time, high priority first within the same instant.
func (r *Registry) Active() []Reminder {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Reminder, 0, len(r.active))
	for _, rem := range r.active {
		out = append(out, *rem)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		if out[i].Priority != out[j].Priority {
			return priorityRank(out[i].Priority) > priorityRank(out[j].Priority)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Get returns a snapshot of one active reminder.
func (r *Registry) Get(id string) (Reminder, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rem, ok := r.active[id]
	if !ok {
		return Reminder{}, false
	}
	return *rem, true
}

func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	default:
		return 0
	}
}

func spawnFromTemplate(tmpl *Template, now time.Time) Reminder {
	return Reminder{
		ID:           uuid.NewString(),
		TemplateID:   tmpl.ID,
		Kind:         tmpl.Kind,
		Title:        tmpl.Title,
		Message:      tmpl.Message,
		Priority:     tmpl.Priority,
		TotalSeconds: tmpl.DurationSeconds,
		Remaining:    tmpl.DurationSeconds,
		State:        StateActive,
		CreatedAt:    now,
	}
}
