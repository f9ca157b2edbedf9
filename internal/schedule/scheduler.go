// Package schedule provides an explicit owner for periodic tasks. Every
// recurring activity in the application (reminder countdowns, the posture
// score feed, idle checks) runs through a Scheduler so that stopping a
// session cannot leak a timer.
package schedule

import (
	"log"
	"sync"
	"time"
)

// Task is a periodic callback. The now argument is the scheduler's clock
// reading at dispatch time.
type Task func(now time.Time)

// Scheduler owns cancellable periodic tasks. All methods are safe for
// concurrent use.
type Scheduler struct {
	clock Clock

	mu      sync.Mutex
	handles map[*Handle]struct{}
	closed  bool
}

// NewScheduler creates a Scheduler using the given clock. A nil clock
// defaults to SystemClock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	return &Scheduler{
		clock:   clock,
		handles: make(map[*Handle]struct{}),
	}
}

// Handle identifies a running periodic task. Stop must be called to
// release it; a Handle that is never stopped keeps its goroutine alive
// until Scheduler.StopAll.
type Handle struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once

	release func()
}

// Stop cancels the task. It is idempotent and blocks until the task
// goroutine has exited, so the task function is guaranteed not to run
// again after Stop returns.
func (h *Handle) Stop() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		close(h.stop)
		<-h.done
		h.release()
	})
}

// Every starts a periodic task with the given period and returns its
// Handle. The first invocation happens one period after Every returns.
// Returns nil if the scheduler has already been shut down.
func (s *Scheduler) Every(period time.Duration, fn Task) *Handle {
	if period <= 0 || fn == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}

	h := &Handle{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	h.release = func() {
		s.mu.Lock()
		delete(s.handles, h)
		s.mu.Unlock()
	}
	s.handles[h] = struct{}{}

	go s.run(h, period, fn)

	return h
}

func (s *Scheduler) run(h *Handle, period time.Duration, fn Task) {
	defer close(h.done)

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-h.stop:
			return
		case <-ticker.C:
			// A tick may already be queued when Stop closes the channel;
			// re-check so no tick fires after cancellation.
			select {
			case <-h.stop:
				return
			default:
			}
			dispatch(fn, s.clock.Now())
		}
	}
}

// dispatch invokes a task, converting panics into log warnings. A fault
// inside one tick must not cancel future scheduling.
func dispatch(fn Task, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("WARNING: scheduled task panicked: %v", r)
		}
	}()
	fn(now)
}

// Active returns the number of currently scheduled tasks.
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

// StopAll cancels every remaining task and marks the scheduler closed.
// Subsequent Every calls return nil.
func (s *Scheduler) StopAll() {
	s.mu.Lock()
	s.closed = true
	handles := make([]*Handle, 0, len(s.handles))
	for h := range s.handles {
		handles = append(handles, h)
	}
	s.mu.Unlock()

	for _, h := range handles {
		h.Stop()
	}
}
