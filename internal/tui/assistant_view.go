package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const assistantTimeout = 30 * time.Second

func (m Model) handleAssistantKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		m.chatInput.Focus()
		return m, nil
	}
	return m, nil
}

func (m Model) handleChatInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.chatInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		text := strings.TrimSpace(m.chatInput.Value())
		if text == "" || m.chatWaiting {
			return m, nil
		}
		m.chatInput.Reset()
		m.chatLines = append(m.chatLines, chatLine{fromUser: true, text: text, at: time.Now()})
		m.chatWaiting = true
		return m, askAssistantCmd(m.assistant, text)

	// Quit still works while typing.
	case msg.String() == "ctrl+c":
		m.quitting = true
		if m.onShutdown != nil {
			m.onShutdown()
		}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func askAssistantCmd(provider AssistantProvider, message string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), assistantTimeout)
		defer cancel()
		return assistantReplyMsg{reply: provider.Chat(ctx, message)}
	}
}

func (m Model) renderAssistant() string {
	var b strings.Builder
	b.WriteString(m.renderHeader("Assistant"))
	b.WriteString("\n\n")

	lines := m.chatLines
	maxLines := 12
	if m.height > 0 && m.height-8 > 0 {
		maxLines = m.height - 8
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}

	for _, line := range lines {
		who := goodStyle.Render("assistant")
		if line.fromUser {
			who = panelTitleStyle.Render("you")
		}
		b.WriteString("  " + who + "  " + line.text + "\n")
	}

	if m.chatWaiting {
		b.WriteString("  " + m.chatSpinner.View() + dimStyle.Render(" thinking…") + "\n")
	}

	b.WriteString("\n  " + m.chatInput.View() + "\n")

	hint := " enter to type · q quit "
	if m.chatInput.Focused() {
		hint = " enter send · esc stop typing "
	}
	b.WriteString("\n")
	b.WriteString(statusBarStyle.Render(hint))

	return b.String()
}
