package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Can-Ozan/ergotop/internal/achievements"
	"github.com/Can-Ozan/ergotop/internal/assistant"
	"github.com/Can-Ozan/ergotop/internal/config"
	"github.com/Can-Ozan/ergotop/internal/exercises"
	"github.com/Can-Ozan/ergotop/internal/feedback"
	"github.com/Can-Ozan/ergotop/internal/reminder"
	"github.com/Can-Ozan/ergotop/internal/session"
	"github.com/Can-Ozan/ergotop/internal/stats"
	"github.com/Can-Ozan/ergotop/internal/storage"
)

const chatHistoryLimit = 20

type tickMsg time.Time

type assistantReplyMsg struct {
	reply string
}

// SessionProvider is the session controller surface the TUI drives.
type SessionProvider interface {
	Snapshot() session.Snapshot
	SetMonitoring(on bool)
	SetActiveView(v session.View)
	RecordActivity()
	QuickAdd(spec reminder.Spec) (reminder.Reminder, error)
	Dismiss(id string)
	Complete(id string)
	DismissNotification(id string)
	CompleteExercise(durationSeconds int)
}

// ExerciseProvider runs guided exercises.
type ExerciseProvider interface {
	Start(id string) bool
	Pause()
	Resume()
	Stop()
	NextStep()
	Tick()
	Progress() (active *exercises.Exercise, step, remaining int, playing bool)
}

// StatsProvider computes derived statistics.
type StatsProvider interface {
	Overview(today stats.TodayStats, postureScore float64) stats.Overview
}

// CommunityProvider serves achievements and the local leaderboard.
type CommunityProvider interface {
	Achievements() []achievements.Status
	TotalPoints() int
	Leaderboard() []storage.Profile
}

// AssistantProvider answers chat messages. Chat must not fail; it
// degrades to a fallback reply internally.
type AssistantProvider interface {
	Chat(ctx context.Context, message string) string
	History(limit int) []storage.ChatRecord
}

// FeedbackProvider validates and records feedback entries.
type FeedbackProvider interface {
	Submit(entry feedback.Entry) error
}

// StreamerSettings are display-only toggles for the streamer view.
type StreamerSettings struct {
	SilentMode        bool
	VisualOnlyAlerts  bool
	PostureMonitoring bool
	EyeReminders      bool
	BreakReminders    bool
	MinimizeOverlay   bool
}

func defaultStreamerSettings() StreamerSettings {
	return StreamerSettings{
		SilentMode:        true,
		VisualOnlyAlerts:  true,
		PostureMonitoring: true,
		EyeReminders:      true,
		BreakReminders:    true,
	}
}

type chatLine struct {
	fromUser bool
	text     string
	at       time.Time
}

type Model struct {
	view     session.View
	width    int
	height   int
	keys     KeyMap
	quitting bool

	cfg config.Config

	session   SessionProvider
	exercise  ExerciseProvider
	stats     StatsProvider
	community CommunityProvider
	assistant AssistantProvider
	feedback  FeedbackProvider

	reminderCursor int

	exerciseCursor   int
	exerciseCategory exercises.Category
	lastExerciseTick time.Time

	chatInput   textinput.Model
	chatLines   []chatLine
	chatWaiting bool
	chatSpinner spinner.Model
	chatLoaded  bool

	fbInput    textinput.Model
	fbCategory int
	fbRating   int
	fbField    int
	fbStatus   string

	streamer       StreamerSettings
	streamerCursor int

	isPersistent bool
	refreshRate  time.Duration
	onShutdown   func()
}

func NewModel(cfg config.Config, opts ...ModelOption) Model {
	chatInput := textinput.New()
	chatInput.Placeholder = "ask about posture, breaks, eye care…"
	chatInput.CharLimit = 500

	fbInput := textinput.New()
	fbInput.Placeholder = "your feedback…"
	fbInput.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		view:        session.ViewDashboard,
		keys:        DefaultKeyMap(),
		cfg:         cfg,
		chatInput:   chatInput,
		chatSpinner: sp,
		fbInput:     fbInput,
		fbRating:    5,
		streamer:    defaultStreamerSettings(),
		refreshRate: time.Duration(cfg.Display.RefreshRateMS) * time.Millisecond,
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

type ModelOption func(*Model)

func WithSessionProvider(s SessionProvider) ModelOption {
	return func(m *Model) { m.session = s }
}

func WithExerciseProvider(e ExerciseProvider) ModelOption {
	return func(m *Model) { m.exercise = e }
}

func WithStatsProvider(s StatsProvider) ModelOption {
	return func(m *Model) { m.stats = s }
}

func WithCommunityProvider(c CommunityProvider) ModelOption {
	return func(m *Model) { m.community = c }
}

func WithAssistantProvider(a AssistantProvider) ModelOption {
	return func(m *Model) { m.assistant = a }
}

func WithFeedbackProvider(f FeedbackProvider) ModelOption {
	return func(m *Model) { m.feedback = f }
}

func WithStartView(v session.View) ModelOption {
	return func(m *Model) { m.view = v }
}

func WithPersistenceFlag(isPersistent bool) ModelOption {
	return func(m *Model) { m.isPersistent = isPersistent }
}

func WithOnShutdown(fn func()) ModelOption {
	return func(m *Model) { m.onShutdown = fn }
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.chatSpinner.Tick,
	)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		if m.exercise != nil && now.Sub(m.lastExerciseTick) >= time.Second {
			m.exercise.Tick()
			m.lastExerciseTick = now
		}
		return m, m.tickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.chatSpinner, cmd = m.chatSpinner.Update(msg)
		return m, cmd

	case assistantReplyMsg:
		m.chatWaiting = false
		m.chatLines = append(m.chatLines, chatLine{text: msg.reply, at: time.Now()})
		return m, nil

	case tea.KeyMsg:
		if m.session != nil {
			m.session.RecordActivity()
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text inputs swallow most keys while focused.
	if m.view == session.ViewAssistant && m.chatInput.Focused() {
		return m.handleChatInputKey(msg)
	}
	if m.view == session.ViewFeedback && m.fbInput.Focused() {
		return m.handleFeedbackInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.onShutdown != nil {
			m.onShutdown()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Monitor):
		if m.session != nil {
			m.session.SetMonitoring(!m.snapshot().Monitoring)
		}
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		return m.switchView((m.view + 1) % 8), nil

	case key.Matches(msg, m.keys.Dashboard):
		return m.switchView(session.ViewDashboard), nil
	case key.Matches(msg, m.keys.Posture):
		return m.switchView(session.ViewPosture), nil
	case key.Matches(msg, m.keys.Exercises):
		return m.switchView(session.ViewExercises), nil
	case key.Matches(msg, m.keys.Streamer):
		return m.switchView(session.ViewStreamer), nil
	case key.Matches(msg, m.keys.Stats):
		return m.switchView(session.ViewStats), nil
	case key.Matches(msg, m.keys.Assistant):
		return m.switchView(session.ViewAssistant), nil
	case key.Matches(msg, m.keys.Leaderboard):
		return m.switchView(session.ViewLeaderboard), nil
	case key.Matches(msg, m.keys.Feedback):
		return m.switchView(session.ViewFeedback), nil
	}

	switch m.view {
	case session.ViewDashboard:
		return m.handleDashboardKey(msg)
	case session.ViewExercises:
		return m.handleExercisesKey(msg)
	case session.ViewStreamer:
		return m.handleStreamerKey(msg)
	case session.ViewAssistant:
		return m.handleAssistantKey(msg)
	case session.ViewFeedback:
		return m.handleFeedbackKey(msg)
	}

	return m, nil
}

func (m Model) switchView(v session.View) Model {
	m.view = v
	if m.session != nil {
		m.session.SetActiveView(v)
	}
	if v == session.ViewAssistant && !m.chatLoaded {
		m.chatLoaded = true
		m.chatLines = append(m.chatLines, chatLine{text: assistant.Welcome, at: time.Now()})
		if m.assistant != nil {
			for _, rec := range m.assistant.History(chatHistoryLimit) {
				m.chatLines = append(m.chatLines,
					chatLine{fromUser: true, text: rec.Message, at: rec.CreatedAt},
					chatLine{text: rec.Response, at: rec.CreatedAt},
				)
			}
		}
	}
	return m
}

func (m Model) snapshot() session.Snapshot {
	if m.session == nil {
		return session.Snapshot{}
	}
	return m.session.Snapshot()
}

func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	var output string
	switch m.view {
	case session.ViewDashboard:
		output = m.renderDashboard()
	case session.ViewPosture:
		output = m.renderPosture()
	case session.ViewExercises:
		output = m.renderExercises()
	case session.ViewStreamer:
		output = m.renderStreamer()
	case session.ViewStats:
		output = m.renderStats()
	case session.ViewAssistant:
		output = m.renderAssistant()
	case session.ViewLeaderboard:
		output = m.renderLeaderboard()
	case session.ViewFeedback:
		output = m.renderFeedback()
	}

	if m.height > 0 {
		lines := strings.Split(output, "\n")
		if len(lines) > m.height {
			lines = lines[:m.height]
			output = strings.Join(lines, "\n")
		}
	}

	return output
}

func (m Model) headerIndicators() string {
	var parts []string
	if !m.isPersistent {
		parts = append(parts, "[No persistence]")
	}
	if m.snapshot().Monitoring {
		parts = append(parts, goodStyle.Render("● monitoring"))
	} else {
		parts = append(parts, dimStyle.Render("○ paused"))
	}
	return strings.Join(parts, " ")
}

func (m Model) renderHeader(title string) string {
	left := headerStyle.Render(" ergotop ") + " " + panelTitleStyle.Render(title)
	return left + "  " + m.headerIndicators()
}
