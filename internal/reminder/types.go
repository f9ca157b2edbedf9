package reminder

import (
	"fmt"
	"strings"
	"time"
)

// Kind categorizes a reminder.
type Kind string

const (
	KindEye     Kind = "eye"
	KindPosture Kind = "posture"
	KindBreak   Kind = "break"
	KindStretch Kind = "stretch"
	KindCustom  Kind = "custom"
)

// Priority affects display ordering and styling only; there is no
// preemption between reminders.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// State is the reminder lifecycle state. Terminal states never
// transition back to active.
type State string

const (
	StateScheduled State = "scheduled"
	StateActive    State = "active"
	StateExpired   State = "expired"
	StateDismissed State = "dismissed"
	StateCompleted State = "completed"
)

// Spec carries caller-provided fields for creating a reminder or
// template.
type Spec struct {
	Kind     Kind
	Title    string
	Message  string
	Priority Priority

	// DurationSeconds is the countdown length. Must be positive.
	DurationSeconds int

	// IntervalMinutes is the recurrence interval for templates. Zero
	// means the template never re-arms.
	IntervalMinutes int
}

// Reminder is an active countdown. Remaining decrements once per tick
// while State is active; hitting zero transitions to expired within the
// same tick.
type Reminder struct {
	ID         string
	TemplateID string // empty unless spawned from a template
	Kind       Kind
	Title      string
	Message    string
	Priority   Priority

	TotalSeconds int
	Remaining    int
	State        State
	CreatedAt    time.Time
}

// Progress returns the elapsed fraction of the countdown in [0, 1].
func (r Reminder) Progress() float64 {
	if r.TotalSeconds <= 0 {
		return 1
	}
	return float64(r.TotalSeconds-r.Remaining) / float64(r.TotalSeconds)
}

// Template is a stored reminder definition without a running countdown.
// Triggering a template spawns an independent active Reminder; editing
// or deleting the template afterwards does not touch that countdown.
type Template struct {
	ID              string
	Kind            Kind
	Title           string
	Message         string
	Priority        Priority
	DurationSeconds int
	IntervalMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValidationError reports rejected reminder input. Nothing is mutated
// when it is returned.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid reminder: %s", strings.Join(e.Problems, "; "))
}

func validateSpec(spec Spec) error {
	var problems []string
	if strings.TrimSpace(spec.Title) == "" {
		problems = append(problems, "title is required")
	}
	if strings.TrimSpace(spec.Message) == "" {
		problems = append(problems, "message is required")
	}
	if spec.DurationSeconds <= 0 {
		problems = append(problems, fmt.Sprintf("duration must be positive, got %d", spec.DurationSeconds))
	}
	if spec.IntervalMinutes < 0 {
		problems = append(problems, fmt.Sprintf("interval must not be negative, got %d", spec.IntervalMinutes))
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func normalizeSpec(spec Spec) Spec {
	spec.Title = strings.TrimSpace(spec.Title)
	spec.Message = strings.TrimSpace(spec.Message)
	if spec.Kind == "" {
		spec.Kind = KindCustom
	}
	if spec.Priority == "" {
		spec.Priority = PriorityMedium
	}
	return spec
}

// EventType identifies a registry lifecycle event.
type EventType int

const (
	EventExpired EventType = iota
	EventCompleted
	EventDismissed
	EventRearmed
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventExpired:
		return "expired"
	case EventCompleted:
		return "completed"
	case EventDismissed:
		return "dismissed"
	case EventRearmed:
		return "rearmed"
	default:
		return "unknown"
	}
}

// Event reports a reminder leaving (or re-entering) the active set.
type Event struct {
	Type     EventType
	Reminder Reminder
	At       time.Time
}

// Listener is a callback invoked after registry mutations. Listeners
// run outside the registry lock and must not assume ordering between
// coincident ticks.
type Listener func(Event)
