package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const streamerToggleCount = 6

func (m Model) handleStreamerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.streamerCursor > 0 {
			m.streamerCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.streamerCursor < streamerToggleCount-1 {
			m.streamerCursor++
		}
	case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Pause):
		switch m.streamerCursor {
		case 0:
			m.streamer.SilentMode = !m.streamer.SilentMode
		case 1:
			m.streamer.VisualOnlyAlerts = !m.streamer.VisualOnlyAlerts
		case 2:
			m.streamer.PostureMonitoring = !m.streamer.PostureMonitoring
		case 3:
			m.streamer.EyeReminders = !m.streamer.EyeReminders
		case 4:
			m.streamer.BreakReminders = !m.streamer.BreakReminders
		case 5:
			m.streamer.MinimizeOverlay = !m.streamer.MinimizeOverlay
		}
	}
	return m, nil
}

func (m Model) renderStreamer() string {
	snap := m.snapshot()

	var b strings.Builder
	b.WriteString(m.renderHeader("Streamer mode"))
	b.WriteString("\n\n")

	toggles := []struct {
		label string
		on    bool
	}{
		{"Silent mode", m.streamer.SilentMode},
		{"Visual-only alerts", m.streamer.VisualOnlyAlerts},
		{"Posture monitoring", m.streamer.PostureMonitoring},
		{"Eye reminders", m.streamer.EyeReminders},
		{"Break reminders", m.streamer.BreakReminders},
		{"Minimize overlay", m.streamer.MinimizeOverlay},
	}

	b.WriteString(panelTitleStyle.Render("  Settings"))
	b.WriteString("\n")
	for i, t := range toggles {
		mark := dimStyle.Render("[ ]")
		if t.on {
			mark = goodStyle.Render("[x]")
		}
		line := fmt.Sprintf("    %s %s", mark, t.label)
		if i == m.streamerCursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(panelTitleStyle.Render("  Session"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("    posture %s · %d exercises · %d breaks today\n",
		scoreStyle(snap.Score).Render(fmt.Sprintf(" %3.0f ", snap.Score)),
		snap.Today.Exercises, snap.Today.Breaks))

	b.WriteString("\n")
	b.WriteString(statusBarStyle.Render(" j/k move · enter toggle · tab next view · q quit "))

	return b.String()
}
