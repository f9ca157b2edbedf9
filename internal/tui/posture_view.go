package tui

import (
	"fmt"
	"strings"
)

func (m Model) renderPosture() string {
	snap := m.snapshot()

	var b strings.Builder
	b.WriteString(m.renderHeader("Posture"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  Score  %s %s\n",
		scoreStyle(snap.Score).Render(fmt.Sprintf(" %3.0f ", snap.Score)),
		snap.Grade))
	b.WriteString(fmt.Sprintf("  %s\n\n", renderProgressBar(snap.Score/100, 40)))

	b.WriteString(fmt.Sprintf("  Trend  %s\n\n", snap.Trend))

	b.WriteString(panelTitleStyle.Render("  Suggestions"))
	b.WriteString("\n")
	if len(snap.Warnings) == 0 {
		b.WriteString(goodStyle.Render("    Posture looks good. Keep it up."))
		b.WriteString("\n")
	}
	for _, w := range snap.Warnings {
		if w.Urgent {
			b.WriteString("    " + urgentStyle.Render("! "+w.Text) + "\n")
		} else {
			b.WriteString("    " + warnStyle.Render("· "+w.Text) + "\n")
		}
	}

	if !snap.Monitoring {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("  Monitoring is paused — press m to resume."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusBarStyle.Render(" m monitor · tab next view · q quit "))

	return b.String()
}
