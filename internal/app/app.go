package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/malekluka/malek-kanban-portfolio/internal/board"
	"github.com/malekluka/malek-kanban-portfolio/internal/drag"
	"github.com/malekluka/malek-kanban-portfolio/internal/keys"
	appsync "github.com/malekluka/malek-kanban-portfolio/internal/sync"
	"github.com/malekluka/malek-kanban-portfolio/internal/theme"
	"github.com/malekluka/malek-kanban-portfolio/internal/ui"
	"github.com/malekluka/malek-kanban-portfolio/internal/ui/boardview"
	"github.com/malekluka/malek-kanban-portfolio/internal/ui/columnform"
	"github.com/malekluka/malek-kanban-portfolio/internal/ui/feed"
	helpview "github.com/malekluka/malek-kanban-portfolio/internal/ui/help"
	"github.com/malekluka/malek-kanban-portfolio/internal/ui/prompt"
	"github.com/malekluka/malek-kanban-portfolio/internal/ui/taskform"
)

// dueCheckInterval is how often due dates are re-evaluated while the board
// is open, so alerts recur after midnight.
const dueCheckInterval = time.Hour

type dueTickMsg time.Time

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewBoard ViewState = iota
	ViewTaskForm
	ViewColumnForm
	ViewPrompt
	ViewFeed
	ViewHelp
	ViewConfirm
)

type confirmKind int

const (
	confirmDeleteTask confirmKind = iota
	confirmDeleteColumn
)

// pendingConfirm is a destructive action waiting for the user's answer.
type pendingConfirm struct {
	kind     confirmKind
	columnID string
	taskID   string
	question string
}

// Model is the root Bubble Tea model. It turns key presses into engine
// operations and re-renders from the engine after each one.
type Model struct {
	engine *board.Engine
	drag   *drag.Controller
	mirror *appsync.Mirror
	keys   *keys.KeyMap
	layout ui.Layout

	board      boardview.Model
	taskForm   taskform.Model
	columnForm columnform.Model
	prompt     prompt.Model
	feed       feed.Model
	help       helpview.Model

	view    ViewState
	confirm *pendingConfirm
	flash   string
	health  appsync.Health
	ready   bool
}

// New creates the root model around an engine. mirror may be nil when the
// board is not persisted.
func New(e *board.Engine, mirror *appsync.Mirror) Model {
	km := keys.DefaultKeyMap()
	m := Model{
		engine:     e,
		drag:       drag.New(e),
		mirror:     mirror,
		keys:       km,
		board:      boardview.New(80, 24),
		taskForm:   taskform.New(80, 24),
		columnForm: columnform.New(80),
		prompt:     prompt.New(80),
		feed:       feed.New(km, 80, 24),
		help:       helpview.New(km, 80, 24),
	}
	m.refresh()
	return m
}

// Init starts listening for save results and schedules the periodic due
// date check.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitForSave(), dueTick())
}

func dueTick() tea.Cmd {
	return tea.Tick(dueCheckInterval, func(t time.Time) tea.Msg { return dueTickMsg(t) })
}

func (m Model) waitForSave() tea.Cmd {
	if m.mirror == nil {
		return nil
	}
	return m.mirror.WaitForResult()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w, h := m.layout.ContentWidth(), m.layout.ContentHeight()
		m.board.SetSize(w, h)
		m.taskForm.SetSize(w, h)
		m.columnForm.SetSize(w)
		m.prompt.SetSize(w)
		m.feed.SetSize(w, h)
		m.help.SetSize(w, h)
		return m.updateActiveView(msg)

	case appsync.SaveResultMsg:
		if m.mirror != nil {
			m.health = m.mirror.Health()
		}
		return m, m.waitForSave()

	case dueTickMsg:
		if n := m.engine.CheckDue(); n > 0 {
			m.refresh()
		}
		return m, dueTick()

	case taskform.SavedMsg:
		m.engine.StopEditing()
		m.view = ViewBoard
		m.apply(m.engine.UpdateTask(msg.ColumnID, msg.TaskID, msg.Patch))
		m.board.Focus(msg.ColumnID, msg.TaskID)
		return m, nil

	case taskform.CancelMsg:
		m.engine.StopEditing()
		m.view = ViewBoard
		return m, nil

	case columnform.CreatedMsg:
		m.view = ViewBoard
		m.apply(m.engine.AddColumn(msg.Title))
		return m, nil

	case columnform.UpdatedMsg:
		m.view = ViewBoard
		m.apply(m.engine.UpdateColumn(msg.ColumnID, msg.Patch))
		return m, nil

	case columnform.CancelMsg:
		m.view = ViewBoard
		return m, nil

	case prompt.SubmitMsg:
		m.view = ViewBoard
		return m, m.handlePrompt(msg)

	case prompt.CancelMsg:
		m.view = ViewBoard
		return m, nil

	case feed.MarkReadMsg:
		m.engine.MarkRead(msg.ID)
		m.refresh()
		return m, nil

	case feed.MarkAllReadMsg:
		m.engine.MarkAllRead()
		m.refresh()
		return m, nil

	case feed.ClearMsg:
		m.engine.ClearNotifications()
		m.refresh()
		return m, nil

	case feed.CloseMsg:
		m.view = ViewBoard
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.view {
		case ViewBoard:
			return m.handleBoardKey(msg)
		case ViewConfirm:
			return m.handleConfirmKey(msg)
		case ViewHelp:
			if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Back) {
				m.view = ViewBoard
			}
			return m, nil
		}
	}

	return m.updateActiveView(msg)
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.view {
	case ViewTaskForm:
		m.taskForm, cmd = m.taskForm.Update(msg)
	case ViewColumnForm:
		m.columnForm, cmd = m.columnForm.Update(msg)
	case ViewPrompt:
		m.prompt, cmd = m.prompt.Update(msg)
	case ViewFeed:
		m.feed, cmd = m.feed.Update(msg)
	}

	return m, cmd
}

// apply records the outcome of an engine call and re-renders from the
// engine. Not-found outcomes are silent; rejected input is shown.
func (m *Model) apply(out board.Outcome) {
	switch {
	case out.Notification != "":
		m.flash = out.Notification
	case board.IsValidation(out.Err):
		m.flash = "⚠ " + out.Err.Error()
	case out.Err == nil:
		m.flash = ""
	}
	m.refresh()
}

func (m *Model) refresh() {
	m.board.SetColumns(m.engine.Columns())
	m.board.SetDrag(m.drag.State(), m.drag.TrashHighlighted())
	m.feed.SetItems(m.engine.Notifications())
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader(m.headerTitle(), m.saveStatus())
	statusBar := m.layout.RenderStatusBar(m.keyHints())
	return m.layout.RenderWithFrame(header, m.renderContent(), statusBar)
}

func (m Model) renderContent() string {
	switch m.view {
	case ViewTaskForm:
		return m.taskForm.View()
	case ViewColumnForm:
		return m.columnForm.View()
	case ViewPrompt:
		return lipgloss.JoinVertical(lipgloss.Left, m.prompt.View(), m.board.View())
	case ViewFeed:
		return m.feed.View()
	case ViewHelp:
		return m.help.View()
	case ViewConfirm:
		panel := theme.PanelStyle.Render(m.confirm.question + "\n\n" + theme.HelpStyle.Render("y confirm · any other key cancels"))
		return lipgloss.JoinVertical(lipgloss.Left, panel, m.board.View())
	default:
		return m.board.View()
	}
}

func (m Model) headerTitle() string {
	s := m.engine.Stats()
	title := fmt.Sprintf("Kanban · %d tasks · %d todo · %d in progress · %d done",
		s.Total, s.Todo, s.InProgress, s.Done)
	if n := m.engine.UnreadCount(); n > 0 {
		title += fmt.Sprintf(" · 🔔 %d", n)
	}
	return title
}

// saveStatus is the persistence health indicator.
func (m Model) saveStatus() string {
	switch {
	case m.mirror == nil:
		return "in memory"
	case m.health.LastError != nil:
		return "⚠ not saved: " + m.health.LastError.Error()
	case m.health.Pending:
		return "saving…"
	case !m.health.LastSaved.IsZero():
		return "saved " + m.health.LastSaved.Format("15:04:05")
	default:
		return "ready"
	}
}

func (m Model) keyHints() string {
	switch m.view {
	case ViewTaskForm, ViewColumnForm:
		return "enter next/submit | esc cancel"
	case ViewPrompt:
		return "enter apply | esc cancel"
	case ViewFeed:
		return "j/k move | enter read | r all read | C clear | esc back"
	case ViewHelp:
		return "? close help | esc back"
	case ViewConfirm:
		return "y confirm | any key cancel"
	}
	if m.drag.Active() {
		return "h/l choose column | t trash | enter drop | esc cancel"
	}
	if m.flash != "" {
		return m.flash
	}
	if c := m.board.Criteria(); c.Active() {
		return fmt.Sprintf("filter: %q priority:%s tag:%q | 0 clear", c.Query, c.Priority, c.Tag)
	}
	return "q quit | ? help | n new | e edit | m move | / search | b notifications"
}
