// Package storage is the persistence collaborator: a local sqlite
// database written through a buffered write-behind channel. Writes are
// fire-and-forget; a failure is logged and never blocks or fails the
// in-memory state transition that produced it.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync/atomic"
	"time"
)

const (
	writeChannelSize = 1000
	batchSize        = 50
	flushInterval    = 100 * time.Millisecond
)

type writeOp struct {
	opType      string
	activity    *ActivityRecord
	chat        *ChatRecord
	feedback    *FeedbackRecord
	achievement *earnedRow
	points      *pointsRow
}

type earnedRow struct {
	UserID        string
	AchievementID string
	EarnedAt      string
}

type pointsRow struct {
	UserID      string
	DisplayName string
	Points      int
}

// Store persists wellness activity through a background writer
// goroutine. All write methods return immediately.
type Store struct {
	db              *sql.DB
	writeChan       chan writeOp
	droppedWrites   atomic.Int64
	doneChan        chan struct{}
	closed          atomic.Bool
	cancelMaint     context.CancelFunc
	maintenanceDone chan struct{}
}

// Open opens the database at dbPath and starts the writer and
// maintenance goroutines. retentionDays bounds how long raw activity
// rows are kept.
func Open(dbPath string, retentionDays int) (*Store, error) {
	return openWithChannelSize(dbPath, writeChannelSize, retentionDays)
}

func openWithChannelSize(dbPath string, chanSize, retentionDays int) (*Store, error) {
	db, err := OpenDB(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Store{
		db:              db,
		writeChan:       make(chan writeOp, chanSize),
		doneChan:        make(chan struct{}),
		cancelMaint:     cancel,
		maintenanceDone: make(chan struct{}),
	}

	go s.writerLoop()
	s.startMaintenance(ctx, retentionDays)

	return s, nil
}

// RecordActivity queues an activity write. Never blocks; a full channel
// drops the write with a warning.
func (s *Store) RecordActivity(rec ActivityRecord) {
	s.sendWrite(writeOp{opType: "activity", activity: &rec})
}

// SaveChat queues an assistant exchange write.
func (s *Store) SaveChat(rec ChatRecord) {
	s.sendWrite(writeOp{opType: "chat", chat: &rec})
}

// SaveFeedback queues a feedback write.
func (s *Store) SaveFeedback(rec FeedbackRecord) {
	s.sendWrite(writeOp{opType: "feedback", feedback: &rec})
}

// MarkAchievementEarned queues an earned-achievement write and the
// corresponding points update.
func (s *Store) MarkAchievementEarned(userID, achievementID string, points int, earnedAt time.Time) {
	s.sendWrite(writeOp{opType: "achievement", achievement: &earnedRow{
		UserID:        userID,
		AchievementID: achievementID,
		EarnedAt:      earnedAt.UTC().Format(time.RFC3339),
	}})
	s.sendWrite(writeOp{opType: "points", points: &pointsRow{UserID: userID, Points: points}})
}

// UpsertProfile queues a profile write.
func (s *Store) UpsertProfile(userID, displayName string) {
	s.sendWrite(writeOp{opType: "points", points: &pointsRow{UserID: userID, DisplayName: displayName}})
}

func (s *Store) sendWrite(op writeOp) {
	if s.closed.Load() {
		return
	}
	defer func() { _ = recover() }()
	select {
	case s.writeChan <- op:
	default:
		s.droppedWrites.Add(1)
		log.Printf("WARNING: storage write channel full, dropped write (type=%s)", op.opType)
	}
}

// DroppedWrites returns the number of writes lost to a full channel.
func (s *Store) DroppedWrites() int64 {
	return s.droppedWrites.Load()
}

// Close stops maintenance, drains pending writes, and closes the
// database.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}

	s.cancelMaint()
	select {
	case <-s.maintenanceDone:
	case <-time.After(30 * time.Second):
		log.Printf("WARNING: maintenance goroutine did not stop within 30s")
	}

	close(s.writeChan)

	select {
	case <-s.doneChan:
	case <-time.After(10 * time.Second):
		log.Printf("ERROR: failed to drain writes within 10s, data may be lost")
	}

	return s.db.Close()
}
