package columnform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/malekluka/malek-kanban-portfolio/internal/board"
	"github.com/malekluka/malek-kanban-portfolio/internal/model"
	"github.com/malekluka/malek-kanban-portfolio/internal/theme"
)

// CreatedMsg is dispatched when a new column title is submitted.
type CreatedMsg struct {
	Title string
}

// UpdatedMsg is dispatched when an existing column is submitted.
type UpdatedMsg struct {
	ColumnID string
	Patch    board.ColumnPatch
}

// CancelMsg is dispatched when the user cancels the form.
type CancelMsg struct{}

type formBindings struct {
	title string
	limit string
}

// Model is the column create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	current model.Column
	width    int
}

// New creates a new column form model.
func New(width int) Model {
	return Model{fb: &formBindings{}, width: width}
}

// StartCreate initializes the form for a new column.
func (m *Model) StartCreate() tea.Cmd {
	m.editMode = false
	m.current = model.Column{}
	m.fb.title = ""
	m.fb.limit = ""
	m.form = huh.NewForm(huh.NewGroup(m.titleField())).WithWidth(m.formWidth()).WithKeyMap(formKeyMap())
	return m.form.Init()
}

// StartEdit initializes the form for editing col.
func (m *Model) StartEdit(col model.Column) tea.Cmd {
	m.editMode = true
	m.current = col
	m.fb.title = col.Title
	m.fb.limit = ""
	if col.Limit != nil {
		m.fb.limit = strconv.Itoa(*col.Limit)
	}
	m.form = huh.NewForm(huh.NewGroup(
		m.titleField(),
		huh.NewInput().
			Title("WIP Limit").
			Placeholder("empty for no limit").
			Value(&m.fb.limit).
			Validate(validateLimit),
	)).WithWidth(m.formWidth()).WithKeyMap(formKeyMap())
	return m.form.Init()
}

// Update handles messages for the column form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m, m.handleSubmit()
	case huh.StateAborted:
		return m, func() tea.Msg { return CancelMsg{} }
	}
	return m, cmd
}

// View renders the column form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}
	heading := "New Column"
	if m.editMode {
		heading = "Edit Column"
	}
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)
	return theme.PanelStyle.Render(titleStyle.Render(heading) + "\n" + m.form.View())
}

// SetSize updates the form width.
func (m *Model) SetSize(width int) {
	m.width = width
}

func (m *Model) titleField() huh.Field {
	return huh.NewInput().
		Title("Title").
		Placeholder("e.g. QA").
		Value(&m.fb.title).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("title is required")
			}
			return nil
		})
}

func (m Model) handleSubmit() tea.Cmd {
	if !m.editMode {
		msg := CreatedMsg{Title: strings.TrimSpace(m.fb.title)}
		return func() tea.Msg { return msg }
	}
	msg := UpdatedMsg{ColumnID: m.current.ID, Patch: m.Patch()}
	return func() tea.Msg { return msg }
}

// Patch returns the edit as a column patch. The limit is always sent so
// clearing the field removes the limit.
func (m Model) Patch() board.ColumnPatch {
	var p board.ColumnPatch
	if title := strings.TrimSpace(m.fb.title); title != m.current.Title {
		p.Title = &title
	}
	limit := m.fb.limit
	p.Limit = &limit
	return p
}

func (m Model) formWidth() int {
	return min(max(m.width-8, 30), 60)
}

func validateLimit(s string) error {
	if _, err := board.ParseLimit(s); err != nil {
		return fmt.Errorf("enter a whole number, or leave empty")
	}
	return nil
}

// formKeyMap lets esc abort the form; ctrl+c is reserved for quitting.
func formKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	return km
}
