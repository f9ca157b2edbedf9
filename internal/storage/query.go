package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// TodayCounters reads the activity counters for the given local day.
// This is the only synchronous read performed at session start, used to
// seed the in-memory stats.
func (s *Store) TodayCounters(userID string, day time.Time) (DailyCounters, error) {
	date := day.Format("2006-01-02")
	counters := DailyCounters{Date: date}

	rows, err := s.db.Query(
		`SELECT activity_type, COUNT(*)
		 FROM activities
		 WHERE user_id = ? AND created_at >= ? AND created_at < ?
		 GROUP BY activity_type`,
		userID,
		day.UTC().Truncate(24*time.Hour).Format(time.RFC3339),
		day.UTC().Truncate(24*time.Hour).Add(24*time.Hour).Format(time.RFC3339),
	)
	if err != nil {
		return counters, fmt.Errorf("querying today counters: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var activityType string
		var count int
		if err := rows.Scan(&activityType, &count); err != nil {
			return counters, fmt.Errorf("scanning counter row: %w", err)
		}
		switch activityType {
		case ActivitySession:
			counters.Sessions = count
		case ActivityExercise:
			counters.Exercises = count
		case ActivityBreak:
			counters.Breaks = count
		case ActivityPosture:
			counters.Postures = count
		}
	}
	return counters, rows.Err()
}

// Totals aggregates lifetime activity for achievement progress: total
// sessions, exercises, active hours, and the current daily streak.
// Raw rows and summarized history both count.
func (s *Store) Totals(userID string, now time.Time) (ActivityTotals, error) {
	var totals ActivityTotals

	row := s.db.QueryRow(
		`SELECT
			COALESCE(SUM(CASE WHEN activity_type = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN activity_type = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(duration_seconds), 0)
		 FROM activities WHERE user_id = ?`,
		ActivitySession, ActivityExercise, userID,
	)
	var durationSeconds int64
	if err := row.Scan(&totals.Sessions, &totals.Exercises, &durationSeconds); err != nil {
		return totals, fmt.Errorf("querying totals: %w", err)
	}

	row = s.db.QueryRow(
		`SELECT COALESCE(SUM(sessions), 0), COALESCE(SUM(exercises), 0), COALESCE(SUM(duration_seconds), 0)
		 FROM activity_summaries WHERE user_id = ?`,
		userID,
	)
	var summarySessions, summaryExercises int
	var summarySeconds int64
	if err := row.Scan(&summarySessions, &summaryExercises, &summarySeconds); err != nil {
		return totals, fmt.Errorf("querying summary totals: %w", err)
	}
	totals.Sessions += summarySessions
	totals.Exercises += summaryExercises
	totals.Hours = float64(durationSeconds+summarySeconds) / 3600

	streak, err := s.streakDays(userID, now)
	if err != nil {
		return totals, err
	}
	totals.StreakDays = streak
	return totals, nil
}

// streakDays counts consecutive days ending today (or yesterday) with
// at least one recorded activity.
func (s *Store) streakDays(userID string, now time.Time) (int, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT d FROM (
			SELECT date(created_at) AS d FROM activities WHERE user_id = ?
			UNION
			SELECT date AS d FROM activity_summaries WHERE user_id = ?
		 ) ORDER BY d DESC LIMIT 366`,
		userID, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("querying streak days: %w", err)
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return 0, fmt.Errorf("scanning streak row: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	if len(days) == 0 {
		return 0, nil
	}

	// A streak may end today or yesterday (today's first activity might
	// not have happened yet).
	cursor := now.UTC().Truncate(24 * time.Hour)
	if days[0] != cursor.Format("2006-01-02") {
		cursor = cursor.Add(-24 * time.Hour)
		if days[0] != cursor.Format("2006-01-02") {
			return 0, nil
		}
	}

	streak := 0
	for _, d := range days {
		if d != cursor.Format("2006-01-02") {
			break
		}
		streak++
		cursor = cursor.Add(-24 * time.Hour)
	}
	return streak, nil
}

// RecentActivities returns the newest activity rows for assistant
// context, most recent first.
func (s *Store) RecentActivities(userID string, limit int) ([]ActivityRecord, error) {
	rows, err := s.db.Query(
		`SELECT activity_type, score, duration_seconds, created_at
		 FROM activities
		 WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying recent activities: %w", err)
	}
	defer rows.Close()

	var out []ActivityRecord
	for rows.Next() {
		var rec ActivityRecord
		var score sql.NullFloat64
		var duration sql.NullInt64
		var createdAt string
		if err := rows.Scan(&rec.ActivityType, &score, &duration, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}
		rec.UserID = userID
		if score.Valid {
			v := score.Float64
			rec.Score = &v
		}
		if duration.Valid {
			v := int(duration.Int64)
			rec.DurationSeconds = &v
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			rec.CreatedAt = t
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ChatHistory returns the oldest-first recent assistant exchanges, at
// most limit rows.
func (s *Store) ChatHistory(userID string, limit int) ([]ChatRecord, error) {
	rows, err := s.db.Query(
		`SELECT message, response, message_type, created_at FROM (
			SELECT id, message, response, message_type, created_at
			FROM chat_history
			WHERE user_id = ?
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		 ) ORDER BY created_at ASC, id ASC`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying chat history: %w", err)
	}
	defer rows.Close()

	var out []ChatRecord
	for rows.Next() {
		var rec ChatRecord
		var createdAt string
		if err := rows.Scan(&rec.Message, &rec.Response, &rec.MessageType, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning chat row: %w", err)
		}
		rec.UserID = userID
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			rec.CreatedAt = t
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Leaderboard returns profiles ordered by points descending.
func (s *Store) Leaderboard(limit int) ([]Profile, error) {
	rows, err := s.db.Query(
		`SELECT user_id, display_name, points
		 FROM profiles
		 ORDER BY points DESC, display_name ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying leaderboard: %w", err)
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.UserID, &p.DisplayName, &p.Points); err != nil {
			return nil, fmt.Errorf("scanning profile row: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// EarnedAchievements returns the achievements the user has earned.
func (s *Store) EarnedAchievements(userID string) ([]EarnedAchievement, error) {
	rows, err := s.db.Query(
		`SELECT achievement_id, earned_at
		 FROM user_achievements
		 WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying earned achievements: %w", err)
	}
	defer rows.Close()

	var out []EarnedAchievement
	for rows.Next() {
		var ea EarnedAchievement
		var earnedAt string
		if err := rows.Scan(&ea.AchievementID, &earnedAt); err != nil {
			return nil, fmt.Errorf("scanning achievement row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, earnedAt); err == nil {
			ea.EarnedAt = t
		}
		out = append(out, ea)
	}
	return out, rows.Err()
}
