package tui

import (
	"fmt"
	"strings"
)

func (m Model) renderStats() string {
	snap := m.snapshot()

	var b strings.Builder
	b.WriteString(m.renderHeader("Statistics"))
	b.WriteString("\n\n")

	overview := m.stats.Overview(snap.Today, snap.Score)

	b.WriteString(fmt.Sprintf("  Health score  %s  %s\n\n",
		scoreStyle(float64(overview.HealthScore)).Render(fmt.Sprintf(" %3d ", overview.HealthScore)),
		ratingLabel(string(overview.Rating))))

	t := snap.Today
	today := fmt.Sprintf("%s\n Sessions   %3d\n Exercises  %3d  %s\n Breaks     %3d  %s\n Posture checks %3d\n Active time  %.1fh",
		panelTitleStyle.Render(" Today"),
		t.Sessions,
		t.Exercises, renderProgressBar(overview.ExerciseRate, 20),
		t.Breaks, renderProgressBar(overview.BreakRate, 20),
		t.Postures, t.Hours)
	width := m.width
	if width < minWidth {
		width = minWidth
	}
	if width > 64 {
		width = 64
	}
	b.WriteString(renderBorderedPanel(today, width, 8))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  Target completion  %s %.0f%%\n",
		renderProgressBar(overview.CompletionRate, 30), overview.CompletionRate*100))

	b.WriteString("\n")
	b.WriteString(statusBarStyle.Render(" tab next view · q quit "))

	return b.String()
}

func ratingLabel(rating string) string {
	switch rating {
	case "excellent":
		return goodStyle.Render("Excellent")
	case "very_good":
		return goodStyle.Render("Very good")
	case "good":
		return warnStyle.Render("Good")
	default:
		return badStyle.Render("Needs work")
	}
}
