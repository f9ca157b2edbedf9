package storage

import (
	"context"
	"fmt"
	"log"
	"time"
)

const (
	maintenanceInterval = 1 * time.Hour
	vacuumInterval      = 7 * 24 * time.Hour
)

func (s *Store) startMaintenance(ctx context.Context, retentionDays int) {
	go s.maintenanceLoop(ctx, retentionDays)
}

func (s *Store) maintenanceLoop(ctx context.Context, retentionDays int) {
	defer close(s.maintenanceDone)

	lastVacuum := time.Now()
	ticker := time.NewTicker(maintenanceInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.runMaintenanceCycle(retentionDays); err != nil {
				log.Printf("ERROR: maintenance cycle failed: %v", err)
			}

			if time.Since(lastVacuum) >= vacuumInterval {
				if _, err := s.db.Exec("VACUUM"); err != nil {
					log.Printf("ERROR: VACUUM failed: %v", err)
				} else {
					lastVacuum = time.Now()
				}
			}
		}
	}
}

// runMaintenanceCycle rolls raw activity rows older than the retention
// window into per-day summaries, then prunes the raw rows and old chat
// history. Summaries keep lifetime totals and streaks intact after the
// raw data is gone. Feedback, profiles, and earned achievements are
// kept indefinitely.
func (s *Store) runMaintenanceCycle(retentionDays int) error {
	retentionModifier := fmt.Sprintf("-%d days", retentionDays)

	_, err := s.db.Exec(`
		INSERT INTO activity_summaries (user_id, date, sessions, exercises, breaks, postures, duration_seconds)
		SELECT
			user_id,
			date(created_at),
			SUM(CASE WHEN activity_type = 'session' THEN 1 ELSE 0 END),
			SUM(CASE WHEN activity_type = 'exercise' THEN 1 ELSE 0 END),
			SUM(CASE WHEN activity_type = 'break' THEN 1 ELSE 0 END),
			SUM(CASE WHEN activity_type = 'posture_check' THEN 1 ELSE 0 END),
			COALESCE(SUM(duration_seconds), 0)
		FROM activities
		WHERE datetime(created_at) < datetime('now', ?)
		GROUP BY user_id, date(created_at)
		ON CONFLICT(user_id, date) DO UPDATE SET
			sessions = sessions + excluded.sessions,
			exercises = exercises + excluded.exercises,
			breaks = breaks + excluded.breaks,
			postures = postures + excluded.postures,
			duration_seconds = duration_seconds + excluded.duration_seconds
	`, retentionModifier)
	if err != nil {
		return fmt.Errorf("aggregating old activities: %w", err)
	}

	_, err = s.db.Exec("DELETE FROM activities WHERE datetime(created_at) < datetime('now', ?)", retentionModifier)
	if err != nil {
		return fmt.Errorf("pruning old activities: %w", err)
	}

	_, err = s.db.Exec("DELETE FROM chat_history WHERE datetime(created_at) < datetime('now', ?)", retentionModifier)
	if err != nil {
		return fmt.Errorf("pruning old chat history: %w", err)
	}

	return nil
}
