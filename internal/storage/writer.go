package storage

import (
	"database/sql"
	"log"
	"time"
)

func (s *Store) writerLoop() {
	defer close(s.doneChan)

	batch := make([]writeOp, 0, batchSize)
	flushTimer := time.NewTimer(flushInterval)
	defer flushTimer.Stop()

	for {
		select {
		case op, ok := <-s.writeChan:
			if !ok {
				if len(batch) > 0 {
					s.flushBatch(batch)
				}
				return
			}

			batch = append(batch, op)

			if len(batch) >= batchSize {
				s.flushBatch(batch)
				batch = batch[:0]
				flushTimer.Reset(flushInterval)
			}

		case <-flushTimer.C:
			if len(batch) > 0 {
				s.flushBatch(batch)
				batch = batch[:0]
			}
			flushTimer.Reset(flushInterval)
		}
	}
}

func (s *Store) flushBatch(batch []writeOp) {
	tx, err := s.db.Begin()
	if err != nil {
		log.Printf("WARNING: failed to begin write transaction: %v", err)
		return
	}

	for _, op := range batch {
		if err := s.executeOp(tx, op); err != nil {
			log.Printf("WARNING: write op %s failed: %v", op.opType, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Printf("WARNING: failed to commit write batch: %v", err)
		_ = tx.Rollback()
	}
}

func (s *Store) executeOp(tx *sql.Tx, op writeOp) error {
	switch op.opType {
	case "activity":
		return execActivity(tx, op.activity)
	case "chat":
		return execChat(tx, op.chat)
	case "feedback":
		return execFeedback(tx, op.feedback)
	case "achievement":
		return execAchievement(tx, op.achievement)
	case "points":
		return execPoints(tx, op.points)
	default:
		log.Printf("WARNING: unknown write op type %q", op.opType)
		return nil
	}
}

func execActivity(tx *sql.Tx, rec *ActivityRecord) error {
	if rec == nil {
		return nil
	}
	var score any
	if rec.Score != nil {
		score = *rec.Score
	}
	var duration any
	if rec.DurationSeconds != nil {
		duration = *rec.DurationSeconds
	}
	_, err := tx.Exec(
		`INSERT INTO activities (user_id, activity_type, score, duration_seconds, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.UserID, rec.ActivityType, score, duration, rec.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func execChat(tx *sql.Tx, rec *ChatRecord) error {
	if rec == nil {
		return nil
	}
	_, err := tx.Exec(
		`INSERT INTO chat_history (user_id, message, response, message_type, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.UserID, rec.Message, rec.Response, rec.MessageType, rec.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func execFeedback(tx *sql.Tx, rec *FeedbackRecord) error {
	if rec == nil {
		return nil
	}
	_, err := tx.Exec(
		`INSERT INTO feedback (id, user_id, category, rating, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.UserID, rec.Category, rec.Rating, rec.Message, rec.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func execAchievement(tx *sql.Tx, row *earnedRow) error {
	if row == nil {
		return nil
	}
	_, err := tx.Exec(
		`INSERT INTO user_achievements (user_id, achievement_id, earned_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(user_id, achievement_id) DO NOTHING`,
		row.UserID, row.AchievementID, row.EarnedAt,
	)
	return err
}

func execPoints(tx *sql.Tx, row *pointsRow) error {
	if row == nil {
		return nil
	}
	_, err := tx.Exec(
		`INSERT INTO profiles (user_id, display_name, points, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
			points = profiles.points + excluded.points,
			display_name = CASE WHEN excluded.display_name != '' THEN excluded.display_name ELSE profiles.display_name END`,
		row.UserID, row.DisplayName, row.Points, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}
