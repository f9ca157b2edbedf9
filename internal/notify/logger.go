package notify

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger provides structured debug logging for dispatched notifications.
// Implementations must be safe for concurrent use.
type Logger interface {
	// LogMessage logs a dispatched message with the event type that
	// produced it.
	LogMessage(eventType EventType, msg Message)
}

// NopLogger discards all log output. This is the default when debug
// logging is not enabled.
type NopLogger struct{}

// LogMessage is a no-op.
func (NopLogger) LogMessage(EventType, Message) {}

// logEntry is the JSON structure written by FileLogger.
type logEntry struct {
	Timestamp string `json:"ts"`
	Event     string `json:"event"`
	Category  string `json:"category"`
	Priority  string `json:"priority"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}

// FileLogger writes structured JSON debug output to an io.Writer.
// Each line is a complete JSON object (JSONL format).
type FileLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewFileLogger creates a FileLogger that writes to the given writer.
func NewFileLogger(w io.Writer) *FileLogger {
	return &FileLogger{w: w}
}

// LogMessage writes a JSON line for a dispatched message.
func (l *FileLogger) LogMessage(eventType EventType, msg Message) {
	ts := msg.At
	if ts.IsZero() {
		ts = time.Now()
	}

	entry := logEntry{
		Timestamp: ts.UTC().Format(time.RFC3339Nano),
		Event:     eventType.String(),
		Category:  string(msg.Category),
		Priority:  string(msg.Priority),
		Title:     msg.Title,
		Body:      msg.Body,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, string(data))
}
