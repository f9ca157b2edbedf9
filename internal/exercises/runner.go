package exercises

import "sync"

// CompletionFunc is invoked once when an exercise finishes, either by
// advancing past the last step or by the countdown reaching zero.
type CompletionFunc func(ex Exercise)

// Runner drives one exercise at a time: a second-resolution countdown
// plus manual step advancement, matching the guided-exercise flow.
type Runner struct {
	mu         sync.Mutex
	active     *Exercise
	step       int
	remaining  int
	playing    bool
	onComplete CompletionFunc
}

// NewRunner creates an idle Runner. onComplete may be nil.
func NewRunner(onComplete CompletionFunc) *Runner {
	return &Runner{onComplete: onComplete}
}

// Start begins the given exercise from step zero with a full countdown,
// replacing any exercise already in progress (without completing it).
func (r *Runner) Start(id string) bool {
	ex, ok := Get(id)
	if !ok {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = &ex
	r.step = 0
	r.remaining = ex.DurationSeconds
	r.playing = true
	return true
}

// Pause suspends the countdown without losing progress.
func (r *Runner) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.playing = false
}

// Resume continues a paused exercise.
func (r *Runner) Resume() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active != nil {
		r.playing = true
	}
}

// Stop abandons the current exercise without reporting completion.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resetLocked()
}

// NextStep advances to the next instruction. Advancing past the last
// step completes the exercise.
func (r *Runner) NextStep() {
	r.mu.Lock()
	if r.active == nil {
		r.mu.Unlock()
		return
	}
	if r.step < len(r.active.Steps)-1 {
		r.step++
		r.mu.Unlock()
		return
	}
	done := *r.active
	r.resetLocked()
	cb := r.onComplete
	r.mu.Unlock()

	if cb != nil {
		cb(done)
	}
}

// Tick decrements the countdown by one second while playing. Reaching
// zero completes the exercise.
func (r *Runner) Tick() {
	r.mu.Lock()
	if r.active == nil || !r.playing {
		r.mu.Unlock()
		return
	}
	r.remaining--
	if r.remaining > 0 {
		r.mu.Unlock()
		return
	}
	done := *r.active
	r.resetLocked()
	cb := r.onComplete
	r.mu.Unlock()

	if cb != nil {
		cb(done)
	}
}

// Progress reports the active exercise, current step index, and seconds
// remaining. Active is nil when idle.
func (r *Runner) Progress() (active *Exercise, step, remaining int, playing bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == nil {
		return nil, 0, 0, false
	}
	ex := *r.active
	return &ex, r.step, r.remaining, r.playing
}

func (r *Runner) resetLocked() {
	r.active = nil
	r.step = 0
	r.remaining = 0
	r.playing = false
}
