// Package feedback validates and persists user feedback entries.
package feedback

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Can-Ozan/ergotop/internal/storage"
)

// Category classifies a feedback entry.
type Category string

const (
	CategoryBug     Category = "bug"
	CategoryFeature Category = "feature"
	CategoryGeneral Category = "general"
)

// Entry is one submitted feedback item. ContactEmail is optional and,
// when set, is appended to the stored message as a contact line.
type Entry struct {
	Category     Category
	Rating       int // 1..5
	Message      string
	ContactEmail string
}

// ValidationError reports all problems found with an entry.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid feedback: %s", strings.Join(e.Problems, "; "))
}

func validate(entry Entry) error {
	var problems []string
	switch entry.Category {
	case CategoryBug, CategoryFeature, CategoryGeneral:
	case "":
		problems = append(problems, "category is required")
	default:
		problems = append(problems, fmt.Sprintf("unknown category %q", entry.Category))
	}
	if entry.Rating < 1 || entry.Rating > 5 {
		problems = append(problems, fmt.Sprintf("rating must be between 1 and 5, got %d", entry.Rating))
	}
	if strings.TrimSpace(entry.Message) == "" {
		problems = append(problems, "message must not be empty")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Recorder validates entries and hands them to storage.
type Recorder struct {
	store  *storage.Store
	userID string
}

// NewRecorder creates a Recorder writing on behalf of userID.
func NewRecorder(store *storage.Store, userID string) *Recorder {
	return &Recorder{store: store, userID: userID}
}

// Submit validates the entry and queues it for persistence. The write
// itself is fire-and-forget.
func (r *Recorder) Submit(entry Entry, now time.Time) error {
	if err := validate(entry); err != nil {
		return err
	}

	r.store.SaveFeedback(storage.FeedbackRecord{
		ID:        uuid.NewString(),
		UserID:    r.userID,
		Category:  string(entry.Category),
		Rating:    entry.Rating,
		Message:   composeMessage(entry),
		CreatedAt: now,
	})
	return nil
}

// composeMessage trims the message and appends the optional contact
// email as a trailing line.
func composeMessage(entry Entry) string {
	message := strings.TrimSpace(entry.Message)
	if email := strings.TrimSpace(entry.ContactEmail); email != "" {
		message += "\n\nContact: " + email
	}
	return message
}
