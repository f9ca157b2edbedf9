package feedback

import (
	"errors"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		entry    Entry
		problems int
	}{
		{"valid", Entry{Category: CategoryBug, Rating: 3, Message: "broken"}, 0},
		{"missing category", Entry{Rating: 3, Message: "hi"}, 1},
		{"unknown category", Entry{Category: "rant", Rating: 3, Message: "hi"}, 1},
		{"rating too low", Entry{Category: CategoryGeneral, Rating: 0, Message: "hi"}, 1},
		{"rating too high", Entry{Category: CategoryGeneral, Rating: 6, Message: "hi"}, 1},
		{"blank message", Entry{Category: CategoryFeature, Rating: 5, Message: "   "}, 1},
		{"everything wrong", Entry{}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.entry)
			if tt.problems == 0 {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if len(verr.Problems) != tt.problems {
				t.Errorf("problems: want %d, got %d (%v)", tt.problems, len(verr.Problems), verr.Problems)
			}
		})
	}
}

func TestSubmit_RejectsInvalidWithoutWriting(t *testing.T) {
	r := NewRecorder(nil, "u1")

	// A nil store would panic on write; invalid entries must return
	// before reaching it.
	err := r.Submit(Entry{}, time.Now())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestComposeMessage(t *testing.T) {
	got := composeMessage(Entry{Message: "  add themes  ", ContactEmail: "ada@example.com"})
	want := "add themes\n\nContact: ada@example.com"
	if got != want {
		t.Errorf("with email: want %q, got %q", want, got)
	}

	got = composeMessage(Entry{Message: "add themes", ContactEmail: "  "})
	if got != "add themes" {
		t.Errorf("without email: want %q, got %q", "add themes", got)
	}
}
