package tui

import (
	"fmt"
	"strings"
)

func (m Model) renderLeaderboard() string {
	var b strings.Builder
	b.WriteString(m.renderHeader("Leaderboard"))
	b.WriteString("\n\n")

	b.WriteString(panelTitleStyle.Render("  Rankings"))
	b.WriteString("\n")
	profiles := m.community.Leaderboard()
	if len(profiles) == 0 {
		b.WriteString(dimStyle.Render("    no profiles yet"))
		b.WriteString("\n")
	}
	for i, p := range profiles {
		marker := fmt.Sprintf("%2d.", i+1)
		switch i {
		case 0:
			marker = "🥇"
		case 1:
			marker = "🥈"
		case 2:
			marker = "🥉"
		}
		b.WriteString(fmt.Sprintf("    %s %-20s %5d pts\n", marker, p.DisplayName, p.Points))
	}

	b.WriteString("\n")
	b.WriteString(panelTitleStyle.Render(
		fmt.Sprintf("  Achievements — %d pts earned", m.community.TotalPoints())))
	b.WriteString("\n")
	for _, a := range m.community.Achievements() {
		mark := dimStyle.Render("·")
		if a.Earned {
			mark = goodStyle.Render("✔")
		}
		bar := renderProgressBar(a.Progress/100, 14)
		b.WriteString(fmt.Sprintf("    %s %s %-24s %s %3.0f%%  %s\n",
			mark, a.Icon, a.Title, bar, a.Progress,
			dimStyle.Render(fmt.Sprintf("%d pts", a.Points))))
	}

	b.WriteString("\n")
	b.WriteString(statusBarStyle.Render(" tab next view · q quit "))

	return b.String()
}
