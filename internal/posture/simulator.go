// Package posture produces the simulated posture score feed: a bounded
// random walk updated on a fixed interval while monitoring is on, plus
// the warning bands derived from the current score. No camera analysis
// happens here; the score is synthetic.
package posture

import (
	"math/rand"
	"sync"
	"time"
)

// trendWindow is how far back score samples are kept for trend computation.
const trendWindow = 5 * time.Minute

// Simulator holds the current posture score and advances it one random
// step per tick. Safe for concurrent use: the scheduler ticks it while
// the presentation layer reads it.
type Simulator struct {
	mu      sync.Mutex
	score   float64
	rng     *rand.Rand
	samples []scoreSample
}

// NewSimulator creates a Simulator starting at the given score, clamped
// to the valid range. seed fixes the random walk for tests; pass a
// time-derived seed in production.
func NewSimulator(start float64, seed int64) *Simulator {
	return &Simulator{
		score: clamp(start),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Tick advances the score by uniform(-MaxStep, +MaxStep), clamped to
// [MinScore, MaxScore], and records a sample for trend computation.
func (s *Simulator) Tick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delta := s.rng.Float64()*2*MaxStep - MaxStep
	s.score = clamp(s.score + delta)

	s.samples = append(s.samples, scoreSample{Score: s.score, At: now})
	s.samples = pruneSamples(s.samples, now.Add(-trendWindow))
}

// Score returns the current score.
func (s *Simulator) Score() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Trend compares the average score of the most recent half of the
// retained window against the older half. Fewer than four samples is
// reported as flat.
func (s *Simulator) Trend(now time.Time) TrendDirection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.samples) < 4 {
		return TrendFlat
	}

	mid := now.Add(-trendWindow / 2)
	var oldSum, newSum float64
	var oldN, newN int
	for _, smp := range s.samples {
		if smp.At.Before(mid) {
			oldSum += smp.Score
			oldN++
		} else {
			newSum += smp.Score
			newN++
		}
	}
	if oldN == 0 || newN == 0 {
		return TrendFlat
	}

	diff := newSum/float64(newN) - oldSum/float64(oldN)
	switch {
	case diff > 2:
		return TrendUp
	case diff < -2:
		return TrendDown
	default:
		return TrendFlat
	}
}

// Reset moves the score back to the given value and clears trend
// history. Used when a session restarts from seed data.
func (s *Simulator) Reset(score float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.score = clamp(score)
	s.samples = nil
}

func clamp(v float64) float64 {
	if v < MinScore {
		return MinScore
	}
	if v > MaxScore {
		return MaxScore
	}
	return v
}

func pruneSamples(samples []scoreSample, cutoff time.Time) []scoreSample {
	i := 0
	for i < len(samples) && samples[i].At.Before(cutoff) {
		i++
	}
	return samples[i:]
}
