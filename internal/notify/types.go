package notify

import (
	"time"

	"github.com/Can-Ozan/ergotop/internal/idle"
	"github.com/Can-Ozan/ergotop/internal/reminder"
)

// Category is the fixed message category set. Unknown inputs fall back
// to CategoryGeneral.
type Category string

const (
	CategoryEye     Category = "eye"
	CategoryPosture Category = "posture"
	CategoryBreak   Category = "break"
	CategoryStretch Category = "stretch"
	CategoryGeneral Category = "general"
)

// Icon returns the display glyph for a category.
func (c Category) Icon() string {
	switch c {
	case CategoryEye:
		return "👁"
	case CategoryPosture:
		return "🪑"
	case CategoryBreak:
		return "☕"
	case CategoryStretch:
		return "🤸"
	default:
		return "🔔"
	}
}

// Label returns the display name for a category.
func (c Category) Label() string {
	switch c {
	case CategoryEye:
		return "Eye care"
	case CategoryPosture:
		return "Posture"
	case CategoryBreak:
		return "Break"
	case CategoryStretch:
		return "Stretch"
	default:
		return "General"
	}
}

// CategoryFor maps a reminder kind onto the category set.
func CategoryFor(kind reminder.Kind) Category {
	switch kind {
	case reminder.KindEye:
		return CategoryEye
	case reminder.KindPosture:
		return CategoryPosture
	case reminder.KindBreak:
		return CategoryBreak
	case reminder.KindStretch:
		return CategoryStretch
	default:
		return CategoryGeneral
	}
}

func categoryForString(kind string) Category {
	switch Category(kind) {
	case CategoryEye, CategoryPosture, CategoryBreak, CategoryStretch:
		return Category(kind)
	default:
		return CategoryGeneral
	}
}

// Message is a user-facing notification held in the feed until the
// presentation layer dismisses it.
type Message struct {
	ID       string
	Title    string
	Body     string
	Category Category
	Priority reminder.Priority
	At       time.Time
}

// Event is the tagged union of dispatchable occurrences. Exactly one
// field is set, matching the Type tag.
type Event struct {
	Type     EventType
	Reminder *reminder.Reminder // ReminderExpired, ReminderCreated
	Crossing *idle.Crossing     // IdleThresholdCrossed
}

// EventType tags a dispatch event.
type EventType int

const (
	ReminderExpired EventType = iota
	ReminderCreated
	IdleThresholdCrossed
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case ReminderExpired:
		return "reminder_expired"
	case ReminderCreated:
		return "reminder_created"
	case IdleThresholdCrossed:
		return "idle_threshold_crossed"
	default:
		return "unknown"
	}
}

// Notifier delivers a message through a platform mechanism.
// Implementations must be non-blocking.
type Notifier interface {
	Notify(msg Message)
}
