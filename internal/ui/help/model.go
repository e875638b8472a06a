package help

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/malekluka/malek-kanban-portfolio/internal/keys"
	"github.com/malekluka/malek-kanban-portfolio/internal/model"
	"github.com/malekluka/malek-kanban-portfolio/internal/theme"
)

// Model is the help overlay: every keybinding plus a status legend.
type Model struct {
	keys   *keys.KeyMap
	help   help.Model
	width  int
	height int
}

// New creates a new help view model.
func New(km *keys.KeyMap, width, height int) Model {
	h := help.New()
	h.Width = width
	h.ShowAll = true
	return Model{keys: km, help: h, width: width, height: height}
}

// View renders the help overlay.
func (m Model) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1).
		Render("Keyboard Shortcuts")

	legend := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.StatusStyle(model.StatusTodo).Render("todo"), "  ",
		theme.StatusStyle(model.StatusInProgress).Render("in-progress"), "  ",
		theme.StatusStyle(model.StatusDone).Render("done"),
	)
	note := theme.HelpStyle.Render("Drag: grab a card, move with h/l, t for trash, enter to drop, esc to cancel.")

	m.help.Width = m.width - 4
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.help.View(m.keys), "", legend, note)

	return theme.PanelStyle.
		Width(max(0, m.width-4)).
		Render(content)
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width - 4
}
