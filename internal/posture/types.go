package posture

import "time"

// Score bounds and the per-tick random walk step.
const (
	MinScore = 0.0
	MaxScore = 100.0
	MaxStep  = 5.0 // each tick moves the score by uniform(-MaxStep, +MaxStep)
)

// DefaultStartScore is the score a fresh monitoring session begins with.
const DefaultStartScore = 85.0

// TrendDirection indicates score change direction over the recent window.
type TrendDirection int

const (
	TrendFlat TrendDirection = iota
	TrendUp
	TrendDown
)

// String returns a human-readable representation of the trend.
func (t TrendDirection) String() string {
	switch t {
	case TrendUp:
		return "up"
	case TrendDown:
		return "down"
	default:
		return "flat"
	}
}

// Grade buckets a score for display.
type Grade int

const (
	GradeExcellent Grade = iota // score >= 80
	GradeGood                   // score >= 60
	GradePoor                   // below 60
)

// String returns a human-readable name for the grade.
func (g Grade) String() string {
	switch g {
	case GradeExcellent:
		return "excellent"
	case GradeGood:
		return "good"
	default:
		return "poor"
	}
}

// GradeFor returns the display grade for a score.
func GradeFor(score float64) Grade {
	switch {
	case score >= 80:
		return GradeExcellent
	case score >= 60:
		return GradeGood
	default:
		return GradePoor
	}
}

type scoreSample struct {
	Score float64
	At    time.Time
}
