package exercises

import "testing"

func TestCatalog_Complete(t *testing.T) {
	catalog := Catalog()
	if len(catalog) != 5 {
		t.Fatalf("expected 5 exercises, got %d", len(catalog))
	}

	seen := make(map[string]bool)
	for _, ex := range catalog {
		if seen[ex.ID] {
			t.Errorf("duplicate exercise id %q", ex.ID)
		}
		seen[ex.ID] = true
		if ex.DurationSeconds <= 0 {
			t.Errorf("%s: non-positive duration", ex.ID)
		}
		if len(ex.Steps) == 0 {
			t.Errorf("%s: no steps", ex.ID)
		}
		if len(ex.Benefits) == 0 {
			t.Errorf("%s: no benefits", ex.ID)
		}
	}
}

func TestByCategory(t *testing.T) {
	stretch := ByCategory(CategoryStretch)
	if len(stretch) != 2 {
		t.Errorf("expected 2 stretch exercises, got %d", len(stretch))
	}
	for _, ex := range stretch {
		if ex.Category != CategoryStretch {
			t.Errorf("%s: wrong category %q", ex.ID, ex.Category)
		}
	}
	if len(ByCategory("")) != len(Catalog()) {
		t.Error("empty category should return the full catalog")
	}
	if len(ByCategory("nope")) != 0 {
		t.Error("unknown category should return nothing")
	}
}

func TestRunner_StartAndCountdown(t *testing.T) {
	var completed []string
	r := NewRunner(func(ex Exercise) { completed = append(completed, ex.ID) })

	if !r.Start("eye-20-20-20") {
		t.Fatal("Start returned false for known exercise")
	}
	if r.Start("unknown") {
		t.Error("Start returned true for unknown exercise")
	}

	active, step, remaining, playing := r.Progress()
	if active == nil || active.ID != "eye-20-20-20" {
		t.Fatal("expected eye-20-20-20 active")
	}
	if step != 0 || remaining != 60 || !playing {
		t.Errorf("initial state: step=%d remaining=%d playing=%v", step, remaining, playing)
	}

	for i := 0; i < 59; i++ {
		r.Tick()
	}
	if _, _, remaining, _ := r.Progress(); remaining != 1 {
		t.Errorf("after 59 ticks: remaining=%d, want 1", remaining)
	}
	if len(completed) != 0 {
		t.Error("completed before countdown finished")
	}

	r.Tick()
	if len(completed) != 1 || completed[0] != "eye-20-20-20" {
		t.Errorf("expected completion at zero, got %v", completed)
	}
	if active, _, _, _ := r.Progress(); active != nil {
		t.Error("runner should be idle after completion")
	}
}

func TestRunner_PauseStopsCountdown(t *testing.T) {
	r := NewRunner(nil)
	r.Start("neck-stretch")
	r.Pause()
	for i := 0; i < 10; i++ {
		r.Tick()
	}
	if _, _, remaining, playing := r.Progress(); remaining != 120 || playing {
		t.Errorf("paused runner advanced: remaining=%d playing=%v", remaining, playing)
	}

	r.Resume()
	r.Tick()
	if _, _, remaining, _ := r.Progress(); remaining != 119 {
		t.Errorf("resume did not restart countdown: remaining=%d", remaining)
	}
}

func TestRunner_StepAdvancementCompletes(t *testing.T) {
	var completed int
	r := NewRunner(func(Exercise) { completed++ })
	r.Start("shoulder-rolls") // 4 steps

	for i := 0; i < 3; i++ {
		r.NextStep()
	}
	if _, step, _, _ := r.Progress(); step != 3 {
		t.Errorf("step: want 3, got %d", step)
	}
	if completed != 0 {
		t.Error("completed before last step advanced")
	}

	r.NextStep()
	if completed != 1 {
		t.Errorf("expected 1 completion, got %d", completed)
	}
}

func TestRunner_StopDoesNotComplete(t *testing.T) {
	var completed int
	r := NewRunner(func(Exercise) { completed++ })
	r.Start("spinal-twist")
	r.Stop()

	if completed != 0 {
		t.Error("Stop should not report completion")
	}
	if active, _, _, _ := r.Progress(); active != nil {
		t.Error("runner should be idle after Stop")
	}
	// Ticks after stop are no-ops.
	r.Tick()
	r.NextStep()
	if completed != 0 {
		t.Error("idle runner reported completion")
	}
}

func TestRunner_RestartReplacesActive(t *testing.T) {
	var completed int
	r := NewRunner(func(Exercise) { completed++ })
	r.Start("neck-stretch")
	r.Tick()
	r.Start("deep-breathing")

	active, step, remaining, _ := r.Progress()
	if active == nil || active.ID != "deep-breathing" {
		t.Fatal("expected deep-breathing active after restart")
	}
	if step != 0 || remaining != 180 {
		t.Errorf("restart state: step=%d remaining=%d", step, remaining)
	}
	if completed != 0 {
		t.Error("replacing an exercise should not complete it")
	}
}
