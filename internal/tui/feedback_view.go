package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Can-Ozan/ergotop/internal/feedback"
)

var feedbackCategories = []feedback.Category{
	feedback.CategoryBug,
	feedback.CategoryFeature,
	feedback.CategoryGeneral,
}

// Feedback form fields, top to bottom.
const (
	fbFieldCategory = iota
	fbFieldRating
	fbFieldMessage
	fbFieldSubmit
)

func (m Model) handleFeedbackKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.fbField > 0 {
			m.fbField--
		}
	case key.Matches(msg, m.keys.Down):
		if m.fbField < fbFieldSubmit {
			m.fbField++
		}

	case key.Matches(msg, m.keys.Enter):
		switch m.fbField {
		case fbFieldCategory:
			m.fbCategory = (m.fbCategory + 1) % len(feedbackCategories)
		case fbFieldRating:
			m.fbRating = m.fbRating%5 + 1
		case fbFieldMessage:
			m.fbInput.Focus()
		case fbFieldSubmit:
			return m.submitFeedback(), nil
		}
	}

	return m, nil
}

func (m Model) handleFeedbackInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Enter):
		m.fbInput.Blur()
		return m, nil
	case msg.String() == "ctrl+c":
		m.quitting = true
		if m.onShutdown != nil {
			m.onShutdown()
		}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.fbInput, cmd = m.fbInput.Update(msg)
	return m, cmd
}

func (m Model) submitFeedback() Model {
	entry := feedback.Entry{
		Category: feedbackCategories[m.fbCategory],
		Rating:   m.fbRating,
		Message:  m.fbInput.Value(),
	}

	err := m.feedback.Submit(entry)
	if err == nil {
		m.fbStatus = goodStyle.Render("Thanks! Your feedback was recorded.")
		m.fbInput.Reset()
		m.fbRating = 5
		m.fbField = fbFieldCategory
		return m
	}

	var verr *feedback.ValidationError
	if errors.As(err, &verr) {
		m.fbStatus = badStyle.Render(strings.Join(verr.Problems, "; "))
	} else {
		m.fbStatus = badStyle.Render("Could not record feedback: " + err.Error())
	}
	return m
}

func (m Model) renderFeedback() string {
	var b strings.Builder
	b.WriteString(m.renderHeader("Feedback"))
	b.WriteString("\n\n")

	row := func(field int, label, value string) {
		line := fmt.Sprintf("    %-10s %s", label, value)
		if m.fbField == field {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	row(fbFieldCategory, "Category", string(feedbackCategories[m.fbCategory]))
	row(fbFieldRating, "Rating", strings.Repeat("★", m.fbRating)+strings.Repeat("☆", 5-m.fbRating))
	row(fbFieldMessage, "Message", m.fbInput.View())
	row(fbFieldSubmit, "", panelTitleStyle.Render("[ Send ]"))

	if m.fbStatus != "" {
		b.WriteString("\n    " + m.fbStatus + "\n")
	}

	b.WriteString("\n")
	hint := " j/k move · enter select · q quit "
	if m.fbInput.Focused() {
		hint = " enter/esc done typing "
	}
	b.WriteString(statusBarStyle.Render(hint))

	return b.String()
}
