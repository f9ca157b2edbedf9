package storage

import "time"

// Activity type constants recorded by the session controller and the
// exercise runner.
const (
	ActivitySession  = "session"
	ActivityExercise = "exercise"
	ActivityBreak    = "break"
	ActivityPosture  = "posture_check"
)

// ActivityRecord is the fire-and-forget write shape forwarded to the
// persistence layer: {user_id, activity_type, created_at, score?,
// duration?}.
type ActivityRecord struct {
	UserID          string
	ActivityType    string
	Score           *float64
	DurationSeconds *int
	CreatedAt       time.Time
}

// ChatRecord is one assistant exchange.
type ChatRecord struct {
	UserID      string
	Message     string
	Response    string
	MessageType string // general, suggestion, reminder
	CreatedAt   time.Time
}

// FeedbackRecord is a stored user feedback entry.
type FeedbackRecord struct {
	ID        string
	UserID    string
	Category  string
	Rating    int
	Message   string
	CreatedAt time.Time
}

// Profile is a leaderboard row.
type Profile struct {
	UserID      string
	DisplayName string
	Points      int
}

// EarnedAchievement links a user to an achievement definition.
type EarnedAchievement struct {
	AchievementID string
	EarnedAt      time.Time
}

// DailyCounters seeds the in-memory stats at session start.
type DailyCounters struct {
	Date      string // YYYY-MM-DD
	Sessions  int
	Exercises int
	Breaks    int
	Postures  int
}

// ActivityTotals feeds achievement progress computation.
type ActivityTotals struct {
	Sessions   int
	Exercises  int
	Hours      float64
	StreakDays int
}
