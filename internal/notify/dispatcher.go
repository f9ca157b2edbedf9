// Package notify turns registry and idle-detector events into
// user-facing messages: an in-process feed the TUI renders, and
// optionally OS desktop notifications.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Can-Ozan/ergotop/internal/reminder"
)

// defaultDedupWindow suppresses identical OS notifications fired in
// quick succession so a repeating idle nag does not spam the desktop.
// The in-process feed always receives every message.
const defaultDedupWindow = 5 * time.Minute

// Dispatcher converts events into messages and appends them to the feed.
// Dispatch never fails; malformed events degrade to a general message.
type Dispatcher struct {
	feed     *Feed
	notifier Notifier
	logger   Logger
	dedup    time.Duration

	mu       sync.Mutex
	lastSent map[string]time.Time // dedup key -> last OS notification
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithNotifier attaches an OS-level notifier.
func WithNotifier(n Notifier) DispatcherOption {
	return func(d *Dispatcher) { d.notifier = n }
}

// WithLogger attaches a debug logger receiving every dispatched message.
func WithLogger(l Logger) DispatcherOption {
	return func(d *Dispatcher) { d.logger = l }
}

// WithDedupWindow overrides the OS notification dedup window.
func WithDedupWindow(window time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		if window > 0 {
			d.dedup = window
		}
	}
}

// NewDispatcher creates a Dispatcher appending to the given feed.
func NewDispatcher(feed *Feed, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		feed:     feed,
		logger:   NopLogger{},
		dedup:    defaultDedupWindow,
		lastSent: make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch renders an event as a message, appends it to the feed, and
// forwards it to the OS notifier subject to deduplication.
func (d *Dispatcher) Dispatch(ev Event, now time.Time) Message {
	msg := d.render(ev, now)
	d.feed.Append(msg)
	d.logger.LogMessage(ev.Type, msg)

	if d.notifier != nil && d.shouldNotify(msg, now) {
		d.notifier.Notify(msg)
	}
	return msg
}

func (d *Dispatcher) render(ev Event, now time.Time) Message {
	msg := Message{
		ID:       uuid.NewString(),
		Category: CategoryGeneral,
		Priority: reminder.PriorityMedium,
		At:       now,
	}

	switch ev.Type {
	case ReminderExpired:
		if ev.Reminder == nil {
			msg.Title = "Reminder"
			msg.Body = "A reminder has elapsed"
			return msg
		}
		msg.Title = ev.Reminder.Title
		msg.Body = ev.Reminder.Message
		msg.Category = CategoryFor(ev.Reminder.Kind)
		msg.Priority = ev.Reminder.Priority

	case ReminderCreated:
		if ev.Reminder == nil {
			msg.Title = "Reminder"
			msg.Body = "A new reminder was scheduled"
			return msg
		}
		msg.Title = ev.Reminder.Title
		msg.Body = ev.Reminder.Message
		msg.Category = CategoryFor(ev.Reminder.Kind)
		msg.Priority = ev.Reminder.Priority

	case IdleThresholdCrossed:
		if ev.Crossing == nil {
			msg.Title = "Inactivity"
			msg.Body = "You have been inactive for a while"
			return msg
		}
		msg.Title = ev.Crossing.Threshold.Title
		msg.Body = ev.Crossing.Threshold.Message
		msg.Category = categoryForString(ev.Crossing.Threshold.Kind)
		msg.Priority = reminder.PriorityMedium

	default:
		msg.Title = "Notification"
		msg.Body = "Something needs your attention"
	}

	return msg
}

// shouldNotify applies the dedup window keyed on category and title.
func (d *Dispatcher) shouldNotify(msg Message, now time.Time) bool {
	key := string(msg.Category) + ":" + msg.Title

	d.mu.Lock()
	defer d.mu.Unlock()

	if last, ok := d.lastSent[key]; ok && now.Sub(last) < d.dedup {
		return false
	}
	d.lastSent[key] = now
	return true
}
