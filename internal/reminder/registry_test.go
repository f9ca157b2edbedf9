package reminder

import (
	"errors"
	"testing"
	"time"
)

var base = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func stretchSpec() Spec {
	return Spec{
		Kind:            KindStretch,
		Title:           "Stretch",
		Message:         "Time to stretch",
		DurationSeconds: 120,
	}
}

func TestCreateStartsActive(t *testing.T) {
	r := NewRegistry()

	rem, err := r.Create(stretchSpec(), base)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rem.State != StateActive {
		t.Errorf("expected active state, got %s", rem.State)
	}
	if rem.Remaining != 120 || rem.TotalSeconds != 120 {
		t.Errorf("expected remaining=total=120, got %d/%d", rem.Remaining, rem.TotalSeconds)
	}
	if rem.ID == "" {
		t.Error("expected non-empty id")
	}
	if len(r.Active()) != 1 {
		t.Errorf("expected 1 active reminder, got %d", len(r.Active()))
	}
}

func TestCreateValidation(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name string
		spec Spec
	}{
		{"empty title", Spec{Message: "m", DurationSeconds: 60}},
		{"empty message", Spec{Title: "t", DurationSeconds: 60}},
		{"whitespace title", Spec{Title: "   ", Message: "m", DurationSeconds: 60}},
		{"zero duration", Spec{Title: "t", Message: "m"}},
		{"negative interval", Spec{Title: "t", Message: "m", DurationSeconds: 60, IntervalMinutes: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Create(tt.spec, base)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(r.Active()) != 0 {
				t.Error("nothing must be mutated on validation failure")
			}
		})
	}
}

func TestTickDecrementsByOne(t *testing.T) {
	r := NewRegistry()
	rem, _ := r.Create(stretchSpec(), base)

	r.Tick(base.Add(time.Second))

	got, ok := r.Get(rem.ID)
	if !ok {
		t.Fatal("reminder disappeared")
	}
	if got.Remaining != 119 {
		t.Errorf("expected remaining 119, got %d", got.Remaining)
	}
}

func TestExpiryRemovesWithinSameTick(t *testing.T) {
	r := NewRegistry()
	rem, _ := r.Create(stretchSpec(), base)

	var expired []Event
	r.OnEvent(func(ev Event) {
		if ev.Type == EventExpired {
			expired = append(expired, ev)
		}
	})

	now := base
	for i := 0; i < 120; i++ {
		now = now.Add(time.Second)
		r.Tick(now)
	}

	if _, ok := r.Get(rem.ID); ok {
		t.Error("expected reminder removed from active set at remaining=0")
	}
	if len(expired) != 1 {
		t.Fatalf("expected 1 expired event, got %d", len(expired))
	}
	if expired[0].Reminder.State != StateExpired {
		t.Errorf("expected expired state, got %s", expired[0].Reminder.State)
	}
	if expired[0].Reminder.Remaining != 0 {
		t.Errorf("expected remaining 0, got %d", expired[0].Reminder.Remaining)
	}
	for _, a := range r.Active() {
		if a.Remaining == 0 {
			t.Error("no reminder may linger active at remaining=0")
		}
	}
}

func TestDismissAndCompleteUnknownIDAreNoOps(t *testing.T) {
	r := NewRegistry()
	r.Create(stretchSpec(), base)

	r.Dismiss("no-such-id", base)
	r.Complete("no-such-id", base)

	if len(r.Active()) != 1 {
		t.Errorf("expected active set untouched, got %d", len(r.Active()))
	}
}

func TestCompleteEmitsEvent(t *testing.T) {
	r := NewRegistry()
	rem, _ := r.Create(stretchSpec(), base)

	var got []Event
	r.OnEvent(func(ev Event) { got = append(got, ev) })

	r.Complete(rem.ID, base.Add(time.Minute))

	if len(got) != 1 || got[0].Type != EventCompleted {
		t.Fatalf("expected single completed event, got %v", got)
	}
	if len(r.Active()) != 0 {
		t.Error("expected empty active set after complete")
	}
}

func TestDuplicateTitlesAreDistinct(t *testing.T) {
	r := NewRegistry()
	a, _ := r.Create(stretchSpec(), base)
	b, _ := r.Create(stretchSpec(), base)

	if a.ID == b.ID {
		t.Fatal("expected distinct ids for identical titles")
	}

	r.Dismiss(a.ID, base)
	if _, ok := r.Get(b.ID); !ok {
		t.Error("dismissing one must not affect the other")
	}
}

func TestSeedInstallsStockReminders(t *testing.T) {
	r := NewRegistry()
	seeds := r.Seed(base)

	if len(seeds) != 2 {
		t.Fatalf("expected 2 seed reminders, got %d", len(seeds))
	}
	for _, s := range seeds {
		if s.State != StateActive {
			t.Errorf("seed %s: expected active, got %s", s.Kind, s.State)
		}
		if s.Remaining <= 0 || s.Remaining > s.TotalSeconds {
			t.Errorf("seed %s: remaining %d out of (0, %d]", s.Kind, s.Remaining, s.TotalSeconds)
		}
	}
}

func TestTemplateLifecycle(t *testing.T) {
	r := NewRegistry()

	tmpl, err := r.CreateTemplate(Spec{
		Kind:            KindCustom,
		Title:           "Water",
		Message:         "Drink some water",
		DurationSeconds: 60,
		IntervalMinutes: 45,
	}, base)
	if err != nil {
		t.Fatalf("create template: %v", err)
	}
	if len(r.Active()) != 0 {
		t.Error("templates must not create countdowns")
	}

	rem, ok := r.Trigger(tmpl.ID, base)
	if !ok {
		t.Fatal("trigger failed")
	}
	if rem.TemplateID != tmpl.ID || rem.Remaining != 60 {
		t.Errorf("unexpected spawned reminder: %+v", rem)
	}

	// Editing the template must not touch the running countdown.
	updated, err := r.UpdateTemplate(tmpl.ID, Spec{
		Kind:            KindCustom,
		Title:           "Hydrate",
		Message:         "Drink water",
		DurationSeconds: 30,
	}, base.Add(time.Minute))
	if err != nil || !updated {
		t.Fatalf("update template: updated=%v err=%v", updated, err)
	}
	got, _ := r.Get(rem.ID)
	if got.Title != "Water" || got.TotalSeconds != 60 {
		t.Errorf("active countdown mutated by template edit: %+v", got)
	}

	// Deleting likewise.
	r.DeleteTemplate(tmpl.ID)
	if _, ok := r.Get(rem.ID); !ok {
		t.Error("active countdown removed by template delete")
	}
	if len(r.Templates()) != 0 {
		t.Error("template not deleted")
	}
}

func TestUpdateTemplateUnknownIDIsNoOp(t *testing.T) {
	r := NewRegistry()
	updated, err := r.UpdateTemplate("missing", stretchSpec(), base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated {
		t.Error("expected updated=false for unknown id")
	}
}

func TestRecurrenceRearmsAfterInterval(t *testing.T) {
	r := NewRegistry(WithRecurrence(true))

	tmpl, _ := r.CreateTemplate(Spec{
		Kind:            KindCustom,
		Title:           "Water",
		Message:         "Drink some water",
		DurationSeconds: 2,
		IntervalMinutes: 1,
	}, base)
	r.Trigger(tmpl.ID, base)

	now := base
	for i := 0; i < 2; i++ {
		now = now.Add(time.Second)
		r.Tick(now)
	}
	if len(r.Active()) != 0 {
		t.Fatal("expected countdown expired")
	}

	// One minute later the next occurrence spawns on the tick.
	now = now.Add(time.Minute)
	r.Tick(now)

	active := r.Active()
	if len(active) != 1 {
		t.Fatalf("expected re-armed reminder, got %d active", len(active))
	}
	if active[0].TemplateID != tmpl.ID || active[0].Remaining != 2 {
		t.Errorf("unexpected re-armed reminder: %+v", active[0])
	}
}

func TestRecurrenceDisabledByDefault(t *testing.T) {
	r := NewRegistry()

	tmpl, _ := r.CreateTemplate(Spec{
		Kind:            KindCustom,
		Title:           "Water",
		Message:         "Drink some water",
		DurationSeconds: 1,
		IntervalMinutes: 1,
	}, base)
	r.Trigger(tmpl.ID, base)

	now := base.Add(time.Second)
	r.Tick(now)
	r.Tick(now.Add(2 * time.Minute))

	if len(r.Active()) != 0 {
		t.Error("recurrence must be off unless enabled")
	}
}

func TestDismissDoesNotRearm(t *testing.T) {
	r := NewRegistry(WithRecurrence(true))

	tmpl, _ := r.CreateTemplate(Spec{
		Kind:            KindCustom,
		Title:           "Water",
		Message:         "Drink some water",
		DurationSeconds: 60,
		IntervalMinutes: 1,
	}, base)
	rem, _ := r.Trigger(tmpl.ID, base)

	r.Dismiss(rem.ID, base.Add(time.Second))
	r.Tick(base.Add(5 * time.Minute))

	if len(r.Active()) != 0 {
		t.Error("dismissal must not schedule a recurrence")
	}
}

func TestActiveOrderedByCreation(t *testing.T) {
	r := NewRegistry()
	first, _ := r.Create(stretchSpec(), base)
	second, _ := r.Create(Spec{
		Kind:            KindEye,
		Title:           "Eyes",
		Message:         "Rest your eyes",
		DurationSeconds: 60,
	}, base.Add(time.Second))

	active := r.Active()
	if len(active) != 2 {
		t.Fatalf("expected 2 active, got %d", len(active))
	}
	if active[0].ID != first.ID || active[1].ID != second.ID {
		t.Error("expected creation-time ordering")
	}
}
