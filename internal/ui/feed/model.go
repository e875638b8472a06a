// Package feed renders the notification panel.
package feed

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/malekluka/malek-kanban-portfolio/internal/keys"
	"github.com/malekluka/malek-kanban-portfolio/internal/model"
	"github.com/malekluka/malek-kanban-portfolio/internal/theme"
)

// MarkReadMsg asks the app to flag one notification as read.
type MarkReadMsg struct{ ID string }

// MarkAllReadMsg asks the app to flag every notification as read.
type MarkAllReadMsg struct{}

// ClearMsg asks the app to empty the feed.
type ClearMsg struct{}

// CloseMsg closes the panel.
type CloseMsg struct{}

// Model is the notification panel.
type Model struct {
	keys   *keys.KeyMap
	items  []model.Notification
	cursor int
	width  int
	height int
}

// New creates a notification panel.
func New(km *keys.KeyMap, width, height int) Model {
	return Model{keys: km, width: width, height: height}
}

// SetItems replaces the rendered notifications, newest first.
func (m *Model) SetItems(items []model.Notification) {
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = max(0, len(items)-1)
	}
}

// SetSize updates the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles key presses inside the panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case km.String() == "enter":
		if m.cursor < len(m.items) {
			id := m.items[m.cursor].ID
			return m, func() tea.Msg { return MarkReadMsg{ID: id} }
		}
	case key.Matches(km, m.keys.MarkAllRead):
		return m, func() tea.Msg { return MarkAllReadMsg{} }
	case key.Matches(km, m.keys.ClearFeed):
		return m, func() tea.Msg { return ClearMsg{} }
	case key.Matches(km, m.keys.Back), key.Matches(km, m.keys.Notifications):
		return m, func() tea.Msg { return CloseMsg{} }
	}
	return m, nil
}

// View renders the panel.
func (m Model) View() string {
	unread := 0
	for _, it := range m.items {
		if !it.Read {
			unread++
		}
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).
		Render(fmt.Sprintf("Notifications (%d unread)", unread))
	lines := []string{title, ""}

	if len(m.items) == 0 {
		lines = append(lines, theme.HelpStyle.Render("No notifications"))
	}

	maxLines := max(1, m.height-8)
	start := 0
	if m.cursor >= maxLines {
		start = m.cursor - maxLines + 1
	}
	for i := start; i < len(m.items) && i < start+maxLines; i++ {
		it := m.items[i]
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		text := it.Text + "  " + theme.DimmedStyle.Render(it.CreatedAt.Format("15:04"))
		if !it.Read {
			text = theme.UnreadStyle.Render("● ") + text
		} else {
			text = theme.DimmedStyle.Render("  ") + text
		}
		lines = append(lines, marker+text)
	}

	lines = append(lines, "", theme.HelpStyle.Render("enter mark read · r mark all read · C clear all · esc close"))
	return theme.PanelStyle.
		Width(max(0, m.width-4)).
		Render(strings.Join(lines, "\n"))
}
