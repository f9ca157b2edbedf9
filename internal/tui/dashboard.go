package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Can-Ozan/ergotop/internal/reminder"
)

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.snapshot()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.reminderCursor > 0 {
			m.reminderCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.reminderCursor < len(snap.ActiveReminders)-1 {
			m.reminderCursor++
		}

	case key.Matches(msg, m.keys.Dismiss):
		if m.reminderCursor < len(snap.ActiveReminders) {
			m.session.Dismiss(snap.ActiveReminders[m.reminderCursor].ID)
			if m.reminderCursor > 0 {
				m.reminderCursor--
			}
		}
	case key.Matches(msg, m.keys.Complete):
		if m.reminderCursor < len(snap.ActiveReminders) {
			m.session.Complete(snap.ActiveReminders[m.reminderCursor].ID)
			if m.reminderCursor > 0 {
				m.reminderCursor--
			}
		}
	case key.Matches(msg, m.keys.Escape):
		if len(snap.Notifications) > 0 {
			m.session.DismissNotification(snap.Notifications[0].ID)
		}

	case key.Matches(msg, m.keys.QuickEye):
		m.quickAdd(reminder.KindEye, "Rest your eyes", "Look 20 feet away for 20 seconds", 20)
	case key.Matches(msg, m.keys.QuickBreak):
		m.quickAdd(reminder.KindBreak, "Take a break", "Stand up and walk around", 300)
	case key.Matches(msg, m.keys.QuickStretch):
		m.quickAdd(reminder.KindStretch, "Stretch", "Stretch your neck and shoulders", 120)
	case key.Matches(msg, m.keys.QuickPosture):
		m.quickAdd(reminder.KindPosture, "Posture check", "Straighten your back", 30)
	}

	return m, nil
}

func (m Model) quickAdd(kind reminder.Kind, title, message string, durationSeconds int) {
	if m.session == nil {
		return
	}
	_, _ = m.session.QuickAdd(reminder.Spec{
		Kind:            kind,
		Title:           title,
		Message:         message,
		Priority:        reminder.PriorityMedium,
		DurationSeconds: durationSeconds,
	})
}

func (m Model) renderDashboard() string {
	snap := m.snapshot()

	var b strings.Builder
	b.WriteString(m.renderHeader("Dashboard"))
	b.WriteString("\n\n")

	score := scoreStyle(snap.Score).Render(fmt.Sprintf(" %3.0f ", snap.Score))
	b.WriteString(fmt.Sprintf("  Posture %s %s  trend %s\n\n",
		score, snap.Grade, snap.Trend))

	b.WriteString(panelTitleStyle.Render("  Active reminders"))
	b.WriteString("\n")
	if len(snap.ActiveReminders) == 0 {
		b.WriteString(dimStyle.Render("    none — e/b/s/p adds a quick one"))
		b.WriteString("\n")
	}
	for i, r := range snap.ActiveReminders {
		line := fmt.Sprintf("    %s %s %s  %s",
			formatCountdown(r.Remaining),
			priorityStyle(string(r.Priority)).Render(string(r.Priority)),
			r.Title,
			dimStyle.Render(string(r.Kind)))
		if i == m.reminderCursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(panelTitleStyle.Render("  Notifications"))
	b.WriteString("\n")
	if len(snap.Notifications) == 0 {
		b.WriteString(dimStyle.Render("    none"))
		b.WriteString("\n")
	}
	for _, n := range snap.Notifications {
		style := dimStyle
		if n.Priority == reminder.PriorityHigh {
			style = urgentStyle
		}
		b.WriteString(fmt.Sprintf("    %s %s\n",
			n.At.Format("15:04"), style.Render(n.Title+" — "+n.Body)))
	}

	b.WriteString("\n")
	t := snap.Today
	b.WriteString(fmt.Sprintf("  Today: %d sessions · %d exercises · %d breaks · %.1fh\n",
		t.Sessions, t.Exercises, t.Breaks, t.Hours))

	b.WriteString("\n")
	b.WriteString(statusBarStyle.Render(
		" m monitor · x dismiss · c complete · e/b/s/p quick add · 1-8 views · q quit "))

	return b.String()
}
