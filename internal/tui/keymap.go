package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit    key.Binding
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Escape  key.Binding
	Tab     key.Binding
	Monitor key.Binding

	Dashboard   key.Binding
	Posture     key.Binding
	Exercises   key.Binding
	Streamer    key.Binding
	Stats       key.Binding
	Assistant   key.Binding
	Leaderboard key.Binding
	Feedback    key.Binding

	QuickEye     key.Binding
	QuickBreak   key.Binding
	QuickStretch key.Binding
	QuickPosture key.Binding

	Dismiss  key.Binding
	Complete key.Binding
	Pause    key.Binding
	NextStep key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		Monitor: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle monitoring"),
		),
		Dashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "dashboard"),
		),
		Posture: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "posture"),
		),
		Exercises: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "exercises"),
		),
		Streamer: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "streamer"),
		),
		Stats: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "stats"),
		),
		Assistant: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "assistant"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("7"),
			key.WithHelp("7", "leaderboard"),
		),
		Feedback: key.NewBinding(
			key.WithKeys("8"),
			key.WithHelp("8", "feedback"),
		),
		QuickEye: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "eye break"),
		),
		QuickBreak: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "short break"),
		),
		QuickStretch: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stretch"),
		),
		QuickPosture: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "posture check"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "complete"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/resume"),
		),
		NextStep: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next step"),
		),
	}
}
