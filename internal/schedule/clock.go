package schedule

import "time"

// Clock abstracts wall-clock time so timer-driven logic can be tested
// deterministically. Production code uses SystemClock; tests supply a
// manually advanced fake.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
