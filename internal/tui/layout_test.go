package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/Can-Ozan/ergotop/internal/achievements"
	"github.com/Can-Ozan/ergotop/internal/notify"
	"github.com/Can-Ozan/ergotop/internal/posture"
	"github.com/Can-Ozan/ergotop/internal/reminder"
	"github.com/Can-Ozan/ergotop/internal/session"
	"github.com/Can-Ozan/ergotop/internal/stats"
	"github.com/Can-Ozan/ergotop/internal/storage"
)

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{9, "0:09"},
		{60, "1:00"},
		{299, "4:59"},
		{1200, "20:00"},
	}
	for _, tt := range tests {
		if got := formatCountdown(tt.seconds); got != tt.want {
			t.Errorf("formatCountdown(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestRenderProgressBarBounds(t *testing.T) {
	if got := renderProgressBar(-0.5, 10); strings.Contains(got, "█") {
		t.Errorf("negative ratio should render empty, got %q", got)
	}
	full := renderProgressBar(1.5, 10)
	if strings.Contains(full, "░") {
		t.Errorf("overfull ratio should render full, got %q", full)
	}
}

func TestEveryViewRenders(t *testing.T) {
	m, sess := newTestModel(t)
	sess.snapshot = session.Snapshot{
		Score:    42,
		Grade:    posture.GradeFor(42),
		Warnings: posture.Analyze(42),
		ActiveReminders: []reminder.Reminder{
			{ID: "r-1", Kind: reminder.KindEye, Title: "Rest your eyes",
				Priority: reminder.PriorityHigh, Remaining: 20, TotalSeconds: 20},
		},
		Notifications: []notify.Message{
			{ID: "n-1", Title: "Time to stretch", Body: "You have been sitting a while",
				Priority: reminder.PriorityHigh, At: time.Now()},
		},
		Today:      stats.TodayStats{Sessions: 2, Exercises: 5, Breaks: 3, Hours: 1.5},
		Monitoring: true,
	}

	for v := session.ViewDashboard; v <= session.ViewFeedback; v++ {
		m.view = v
		out := m.View()
		if out == "" {
			t.Errorf("view %v rendered empty", v)
		}
		if !strings.Contains(out, "ergotop") {
			t.Errorf("view %v is missing the header", v)
		}
	}
}

func TestDashboardShowsRemindersAndNotifications(t *testing.T) {
	m, sess := newTestModel(t)
	sess.snapshot.ActiveReminders = []reminder.Reminder{
		{ID: "r-1", Kind: reminder.KindStretch, Title: "Stretch now",
			Priority: reminder.PriorityMedium, Remaining: 75},
	}
	sess.snapshot.Notifications = []notify.Message{
		{ID: "n-1", Title: "Eye break", Body: "look away", At: time.Now()},
	}

	out := m.renderDashboard()
	if !strings.Contains(out, "Stretch now") {
		t.Error("dashboard is missing the reminder title")
	}
	if !strings.Contains(out, "1:15") {
		t.Error("dashboard is missing the reminder countdown")
	}
	if !strings.Contains(out, "Eye break") {
		t.Error("dashboard is missing the notification")
	}
}

func TestPostureViewShowsWarnings(t *testing.T) {
	m, sess := newTestModel(t)
	sess.snapshot.Score = 25
	sess.snapshot.Warnings = posture.Analyze(25)

	out := m.renderPosture()
	if !strings.Contains(out, "Keep your back straighter") {
		t.Error("posture view is missing band suggestions")
	}
	if !strings.Contains(out, "Urgent") {
		t.Error("posture view should surface the urgent warning")
	}
}

func TestLeaderboardShowsProfilesAndProgress(t *testing.T) {
	community := &mockCommunityProvider{
		points: 60,
		profiles: []storage.Profile{
			{UserID: "u1", DisplayName: "Alice", Points: 120},
			{UserID: "u2", DisplayName: "Bob", Points: 80},
		},
		statuses: []achievements.Status{
			{Definition: achievements.Definition{ID: "first-session", Title: "Getting Started",
				Icon: "🌱", Points: 10}, Earned: true, Progress: 100},
			{Definition: achievements.Definition{ID: "streak-7", Title: "Weekly Warrior",
				Icon: "🔥", Points: 50}, Progress: 40},
		},
	}
	m, _ := newTestModel(t, WithCommunityProvider(community))

	out := m.renderLeaderboard()
	if !strings.Contains(out, "Alice") || !strings.Contains(out, "Bob") {
		t.Error("leaderboard is missing profile names")
	}
	if !strings.Contains(out, "Getting Started") {
		t.Error("leaderboard is missing achievements")
	}
	if !strings.Contains(out, "60 pts earned") {
		t.Error("leaderboard is missing the points total")
	}
}

func TestHeaderShowsPersistenceWarning(t *testing.T) {
	m, _ := newTestModel(t, WithPersistenceFlag(false))
	if !strings.Contains(m.renderHeader("Dashboard"), "[No persistence]") {
		t.Error("header should flag missing persistence")
	}

	m2, _ := newTestModel(t, WithPersistenceFlag(true))
	if strings.Contains(m2.renderHeader("Dashboard"), "[No persistence]") {
		t.Error("header should not flag persistence when the store is live")
	}
}

func TestViewIsClampedToHeight(t *testing.T) {
	m, _ := newTestModel(t)
	m.height = 5
	out := m.View()
	if lines := strings.Count(out, "\n"); lines > 5 {
		t.Errorf("view has %d newlines, want at most 5", lines)
	}
}
