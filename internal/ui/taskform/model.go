package taskform

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/malekluka/malek-kanban-portfolio/internal/board"
	"github.com/malekluka/malek-kanban-portfolio/internal/model"
	"github.com/malekluka/malek-kanban-portfolio/internal/theme"
)

// SavedMsg is dispatched when the user submits the form.
type SavedMsg struct {
	ColumnID string
	TaskID   string
	Patch    board.TaskPatch
}

// CancelMsg is dispatched when the user cancels the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title       string
	description string
	priority    model.Priority
	status      model.Status
	assignee    string
	dueDate     string
	tags        string
	comments    string
}

// Model is the Bubble Tea model for the task edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	columnID string
	current model.Task
	width    int
	height   int
}

// New creates a new task form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// StartEdit fills the form from task.
func (m *Model) StartEdit(columnID string, task model.Task) tea.Cmd {
	m.columnID = columnID
	m.current = task
	m.fb.title = task.Title
	m.fb.description = task.Description
	m.fb.priority = task.Priority
	m.fb.status = task.Status
	m.fb.assignee = task.Assignee.Name
	if m.fb.assignee == board.Unassigned {
		m.fb.assignee = ""
	}
	m.fb.dueDate = task.DueDate
	m.fb.tags = strings.Join(task.Tags, ", ")
	m.fb.comments = strconv.Itoa(task.Comments)
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the task form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the task form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render("Edit Task") + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("What needs to be done?").
				Value(&m.fb.title).
				Validate(validateRequired("Title")),
			huh.NewText().
				Title("Description").
				Placeholder("Optional details...").
				Value(&m.fb.description),
			huh.NewSelect[model.Priority]().
				Title("Priority").
				Options(
					huh.NewOption("High", model.PriorityHigh),
					huh.NewOption("Medium", model.PriorityMedium),
					huh.NewOption("Low", model.PriorityLow),
				).
				Value(&m.fb.priority),
			huh.NewSelect[model.Status]().
				Title("Status").
				Options(
					huh.NewOption("To Do", model.StatusTodo),
					huh.NewOption("In Progress", model.StatusInProgress),
					huh.NewOption("Done", model.StatusDone),
				).
				Value(&m.fb.status),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Assignee").
				Placeholder("Unassigned").
				Value(&m.fb.assignee),
			huh.NewInput().
				Title("Due Date").
				Placeholder("YYYY-MM-DD (optional)").
				Value(&m.fb.dueDate).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Tags").
				Placeholder("comma separated").
				Value(&m.fb.tags),
			huh.NewInput().
				Title("Comments").
				Value(&m.fb.comments).
				Validate(validateCount),
		),
	).WithWidth(m.formWidth()).WithKeyMap(formKeyMap()).WithHeight(m.formHeight())
}

// Patch converts the current field values into an update, listing only
// the fields that differ from the task being edited.
func (m Model) Patch() board.TaskPatch {
	var p board.TaskPatch
	o := m.current

	if title := strings.TrimSpace(m.fb.title); title != o.Title {
		p.Title = &title
	}
	if m.fb.description != o.Description {
		d := m.fb.description
		p.Description = &d
	}
	if m.fb.priority != o.Priority {
		pr := m.fb.priority
		p.Priority = &pr
	}
	if m.fb.status != o.Status {
		st := m.fb.status
		p.Status = &st
	}

	name := strings.TrimSpace(m.fb.assignee)
	if name == "" {
		name = board.Unassigned
	}
	if name != o.Assignee.Name {
		// Initials are rederived; the color tag stays with the task.
		p.Assignee = &model.Assignee{Name: name, Color: o.Assignee.Color}
	}

	if due := strings.TrimSpace(m.fb.dueDate); due != o.DueDate {
		p.DueDate = &due
	}
	if tags := board.ParseTags(m.fb.tags); strings.Join(tags, ",") != strings.Join(o.Tags, ",") {
		p.Tags = &tags
	}
	if n, err := strconv.Atoi(strings.TrimSpace(m.fb.comments)); err == nil && n != o.Comments {
		p.Comments = &n
	}
	return p
}

func (m Model) handleSubmit() tea.Cmd {
	msg := SavedMsg{ColumnID: m.columnID, TaskID: m.current.ID, Patch: m.Patch()}
	return func() tea.Msg { return msg }
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(model.DateLayout, s); err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return nil
}

func validateCount(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return fmt.Errorf("must be a whole number")
	}
	return nil
}

// formKeyMap lets esc abort the form; ctrl+c is reserved for quitting.
func formKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	return km
}
