package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/malekluka/malek-kanban-portfolio/internal/filter"
	"github.com/malekluka/malek-kanban-portfolio/internal/model"
	"github.com/malekluka/malek-kanban-portfolio/internal/ui/prompt"
)

var priorityCycle = []string{
	filter.PriorityAll,
	string(model.PriorityHigh),
	string(model.PriorityMedium),
	string(model.PriorityLow),
}

var statusCycle = map[model.Status]model.Status{
	model.StatusTodo:       model.StatusInProgress,
	model.StatusInProgress: model.StatusDone,
	model.StatusDone:       model.StatusTodo,
}

func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.drag.Active() {
		return m.handleDragKey(msg)
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Left):
		m.board.Left()
	case key.Matches(msg, k.Right):
		m.board.Right()
	case key.Matches(msg, k.Up):
		m.board.Up()
	case key.Matches(msg, k.Down):
		m.board.Down()

	case key.Matches(msg, k.NewTask):
		col, ok := m.board.SelectedColumn()
		if !ok {
			return m, nil
		}
		out := m.engine.AddTask(col.ID)
		m.apply(out)
		if out.EditTaskID == "" {
			return m, nil
		}
		m.board.Focus(col.ID, out.EditTaskID)
		return m, m.openTaskForm(col.ID, out.EditTaskID)

	case key.Matches(msg, k.Edit):
		if task, colID, ok := m.board.SelectedTask(); ok && m.engine.StartEditing(colID, task.ID) {
			return m, m.openTaskForm(colID, task.ID)
		}

	case key.Matches(msg, k.Delete):
		if task, colID, ok := m.board.SelectedTask(); ok {
			m.askConfirm(pendingConfirm{
				kind:     confirmDeleteTask,
				columnID: colID,
				taskID:   task.ID,
				question: fmt.Sprintf("Delete task %q?", task.Title),
			})
		}

	case key.Matches(msg, k.CycleState):
		if task, colID, ok := m.board.SelectedTask(); ok {
			m.apply(m.engine.SetStatus(colID, task.ID, statusCycle[task.Status]))
			m.board.Focus(colID, task.ID)
		}

	case key.Matches(msg, k.Subtask):
		if _, _, ok := m.board.SelectedTask(); ok {
			m.view = ViewPrompt
			return m, m.prompt.Open(prompt.NewSubtask, "Add subtask", "subtask title", "")
		}

	case key.Matches(msg, k.Toggle):
		if task, colID, ok := m.board.SelectedTask(); ok {
			if id := nextSubtask(task); id != "" {
				m.apply(m.engine.ToggleSubtask(colID, task.ID, id))
				m.board.Focus(colID, task.ID)
			}
		}

	case key.Matches(msg, k.Grab):
		if task, colID, ok := m.board.SelectedTask(); ok {
			m.drag.Start(task, colID)
			m.refresh()
		}

	case key.Matches(msg, k.NewColumn):
		m.view = ViewColumnForm
		return m, m.columnForm.StartCreate()

	case key.Matches(msg, k.EditColumn):
		if col, ok := m.board.SelectedColumn(); ok {
			m.view = ViewColumnForm
			return m, m.columnForm.StartEdit(col)
		}

	case key.Matches(msg, k.DeleteColumn):
		if col, ok := m.board.SelectedColumn(); ok {
			m.askConfirm(pendingConfirm{
				kind:     confirmDeleteColumn,
				columnID: col.ID,
				question: fmt.Sprintf("Delete column %q and its %d task(s)?", col.Title, len(col.Tasks)),
			})
		}

	case key.Matches(msg, k.Search):
		m.view = ViewPrompt
		return m, m.prompt.Open(prompt.Search, "Search tasks", "title, description, tag or assignee", m.board.Criteria().Query)

	case key.Matches(msg, k.TagFilter):
		m.view = ViewPrompt
		return m, m.prompt.Open(prompt.TagFilter, "Filter by tag", "tag", m.board.Criteria().Tag)

	case key.Matches(msg, k.CyclePriority):
		c := m.board.Criteria()
		c.Priority = nextPriority(c.Priority)
		m.board.SetCriteria(c)

	case key.Matches(msg, k.ClearFilters):
		m.board.SetCriteria(filter.Any())

	case key.Matches(msg, k.Notifications):
		m.view = ViewFeed
		m.refresh()

	case key.Matches(msg, k.Help):
		m.view = ViewHelp

	case key.Matches(msg, k.Back):
		m.flash = ""
	}
	return m, nil
}

// handleDragKey drives the drag controller from the keyboard: moving the
// cursor hovers the column under it.
func (m Model) handleDragKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Left), key.Matches(msg, k.Right):
		if key.Matches(msg, k.Left) {
			m.board.Left()
		} else {
			m.board.Right()
		}
		if col, ok := m.board.SelectedColumn(); ok {
			m.drag.HoverColumn(col.ID)
		}
	case key.Matches(msg, k.Trash):
		m.drag.HoverTrash()
	case key.Matches(msg, k.Drop):
		s := m.drag.State()
		out := m.drag.Drop()
		m.apply(out)
		if out.Applied() && s.OverColumnID != "" {
			m.board.Focus(s.OverColumnID, s.Task.ID)
		} else if !out.Applied() {
			log.WithError(out.Err).WithField("task_id", s.Task.ID).Debug("drop ignored")
		}
	case key.Matches(msg, k.Back):
		m.drag.End()
	}
	m.refresh()
	return m, nil
}

func (m *Model) askConfirm(p pendingConfirm) {
	m.confirm = &p
	m.view = ViewConfirm
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.confirm
	m.confirm = nil
	m.view = ViewBoard
	if p == nil || !key.Matches(msg, m.keys.Confirm) {
		return m, nil
	}

	switch p.kind {
	case confirmDeleteTask:
		m.apply(m.engine.DeleteTask(p.columnID, p.taskID))
	case confirmDeleteColumn:
		m.apply(m.engine.DeleteColumn(p.columnID))
	}
	return m, nil
}

func (m *Model) handlePrompt(msg prompt.SubmitMsg) tea.Cmd {
	c := m.board.Criteria()
	switch msg.Purpose {
	case prompt.Search:
		c.Query = msg.Value
		m.board.SetCriteria(c)
	case prompt.TagFilter:
		c.Tag = msg.Value
		m.board.SetCriteria(c)
	case prompt.NewSubtask:
		if task, colID, ok := m.board.SelectedTask(); ok {
			m.apply(m.engine.AddSubtask(colID, task.ID, msg.Value))
			m.board.Focus(colID, task.ID)
		}
	}
	return nil
}

func (m *Model) openTaskForm(columnID, taskID string) tea.Cmd {
	task, ok := m.engine.Task(columnID, taskID)
	if !ok {
		return nil
	}
	m.view = ViewTaskForm
	return m.taskForm.StartEdit(columnID, task)
}

// nextSubtask returns the first unchecked item, or the last checked one
// when all are done so the key also unchecks.
func nextSubtask(t model.Task) string {
	if t.Subtasks == nil || len(t.Subtasks.Items) == 0 {
		return ""
	}
	for _, it := range t.Subtasks.Items {
		if !it.Done {
			return it.ID
		}
	}
	return t.Subtasks.Items[len(t.Subtasks.Items)-1].ID
}

func nextPriority(current string) string {
	for i, p := range priorityCycle {
		if p == current {
			return priorityCycle[(i+1)%len(priorityCycle)]
		}
	}
	return priorityCycle[1]
}
