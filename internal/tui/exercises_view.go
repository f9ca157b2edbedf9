package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Can-Ozan/ergotop/internal/exercises"
)

func (m Model) handleExercisesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := exercises.ByCategory(m.exerciseCategory)

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.exerciseCursor > 0 {
			m.exerciseCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.exerciseCursor < len(list)-1 {
			m.exerciseCursor++
		}

	case key.Matches(msg, m.keys.Enter):
		if m.exerciseCursor < len(list) {
			m.exercise.Start(list[m.exerciseCursor].ID)
		}
	case key.Matches(msg, m.keys.Pause):
		if _, _, _, playing := m.exercise.Progress(); playing {
			m.exercise.Pause()
		} else {
			m.exercise.Resume()
		}
	case key.Matches(msg, m.keys.NextStep):
		m.exercise.NextStep()
	case key.Matches(msg, m.keys.Escape):
		m.exercise.Stop()

	case key.Matches(msg, m.keys.QuickEye):
		m.exerciseCategory = cycleCategory(m.exerciseCategory)
		m.exerciseCursor = 0
	}

	return m, nil
}

func cycleCategory(c exercises.Category) exercises.Category {
	switch c {
	case "":
		return exercises.CategoryEye
	case exercises.CategoryEye:
		return exercises.CategoryStretch
	case exercises.CategoryStretch:
		return exercises.CategoryPosture
	case exercises.CategoryPosture:
		return exercises.CategoryBreathing
	default:
		return ""
	}
}

func (m Model) renderExercises() string {
	var b strings.Builder
	b.WriteString(m.renderHeader("Exercises"))
	b.WriteString("\n\n")

	active, step, remaining, playing := m.exercise.Progress()
	if active != nil {
		b.WriteString(panelTitleStyle.Render("  " + active.Name))
		b.WriteString("\n")
		state := "▶ playing"
		if !playing {
			state = dimStyle.Render("⏸ paused")
		}
		total := active.DurationSeconds
		ratio := 0.0
		if total > 0 {
			ratio = float64(total-remaining) / float64(total)
		}
		b.WriteString(fmt.Sprintf("    %s  %s  %s\n",
			formatCountdown(remaining), renderProgressBar(ratio, 30), state))
		b.WriteString(fmt.Sprintf("    Step %d/%d: %s\n\n",
			step+1, len(active.Steps), active.Steps[step]))
	}

	category := "all"
	if m.exerciseCategory != "" {
		category = string(m.exerciseCategory)
	}
	b.WriteString(panelTitleStyle.Render("  Catalog — " + category))
	b.WriteString("\n")
	for i, ex := range exercises.ByCategory(m.exerciseCategory) {
		line := fmt.Sprintf("    %-22s %s  %s  %s",
			ex.Name,
			formatCountdown(ex.DurationSeconds),
			dimStyle.Render(string(ex.Category)),
			dimStyle.Render(string(ex.Difficulty)))
		if i == m.exerciseCursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusBarStyle.Render(
		" enter start · space pause · n next step · esc stop · e category · q quit "))

	return b.String()
}
