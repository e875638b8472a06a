// Package prompt is a one-line text input used for search, tag filter
// and subtask titles.
package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/malekluka/malek-kanban-portfolio/internal/theme"
)

// Purpose tells the app what a submitted value is for.
type Purpose int

const (
	Search Purpose = iota
	TagFilter
	NewSubtask
)

// SubmitMsg is emitted when the user presses enter.
type SubmitMsg struct {
	Purpose Purpose
	Value   string
}

// CancelMsg is emitted when the user presses esc.
type CancelMsg struct {
	Purpose Purpose
}

// Model is a titled single-line input.
type Model struct {
	input   textinput.Model
	title   string
	purpose Purpose
	width   int
}

// New creates a prompt model.
func New(width int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Width = width - 6
	return Model{input: ti, width: width}
}

// Open shows the prompt for purpose, prefilled with value.
func (m *Model) Open(purpose Purpose, title, placeholder, value string) tea.Cmd {
	m.purpose = purpose
	m.title = title
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

// Update handles messages for the prompt.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			submit := SubmitMsg{Purpose: m.purpose, Value: strings.TrimSpace(m.input.Value())}
			m.input.Blur()
			return m, func() tea.Msg { return submit }
		case "esc":
			cancel := CancelMsg{Purpose: m.purpose}
			m.input.Blur()
			return m, func() tea.Msg { return cancel }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(m.title), m.input.View())
	return theme.PanelStyle.
		Width(max(0, m.width-4)).
		Render(content)
}

// SetSize updates the prompt width.
func (m *Model) SetSize(width int) {
	m.width = width
	m.input.Width = width - 6
}
