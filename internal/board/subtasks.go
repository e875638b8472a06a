package board

import (
	"strings"

	"github.com/google/uuid"

	"github.com/malekluka/malek-kanban-portfolio/internal/model"
)

// summarizeSubtasks builds a checklist from items with Completed and Total
// recomputed. Every write path that touches subtask items goes through
// here; caller-supplied counts are never trusted. An empty list clears the
// checklist.
func summarizeSubtasks(items []model.SubtaskItem) *model.Subtasks {
	if len(items) == 0 {
		return nil
	}
	st := &model.Subtasks{Items: make([]model.SubtaskItem, len(items))}
	copy(st.Items, items)
	for i := range st.Items {
		if st.Items[i].ID == "" {
			st.Items[i].ID = uuid.New().String()
		}
	}
	st.Recount()
	return st
}

func subtaskItems(t model.Task) []model.SubtaskItem {
	if t.Subtasks == nil {
		return nil
	}
	return append([]model.SubtaskItem(nil), t.Subtasks.Items...)
}

// AddSubtask appends a checklist item to a task. Blank titles are rejected.
func (e *Engine) AddSubtask(columnID, taskID, title string) Outcome {
	title = strings.TrimSpace(title)
	if title == "" {
		return skip("add_subtask", ErrBlankTitle, fieldsFor(columnID, taskID))
	}
	t, ok := e.Task(columnID, taskID)
	if !ok {
		return e.missing("add_subtask", columnID, taskID)
	}
	items := append(subtaskItems(t), model.SubtaskItem{ID: uuid.New().String(), Title: title})
	return e.UpdateTask(columnID, taskID, TaskPatch{Subtasks: &items})
}

// ToggleSubtask flips the done flag of a checklist item.
func (e *Engine) ToggleSubtask(columnID, taskID, subtaskID string) Outcome {
	t, ok := e.Task(columnID, taskID)
	if !ok {
		return e.missing("toggle_subtask", columnID, taskID)
	}
	items := subtaskItems(t)
	found := false
	for i := range items {
		if items[i].ID == subtaskID {
			items[i].Done = !items[i].Done
			found = true
		}
	}
	if !found {
		return skip("toggle_subtask", ErrTaskNotFound, fieldsFor(columnID, taskID))
	}
	return e.UpdateTask(columnID, taskID, TaskPatch{Subtasks: &items})
}

// RemoveSubtask deletes a checklist item.
func (e *Engine) RemoveSubtask(columnID, taskID, subtaskID string) Outcome {
	t, ok := e.Task(columnID, taskID)
	if !ok {
		return e.missing("remove_subtask", columnID, taskID)
	}
	var items []model.SubtaskItem
	found := false
	for _, it := range subtaskItems(t) {
		if it.ID == subtaskID {
			found = true
			continue
		}
		items = append(items, it)
	}
	if !found {
		return skip("remove_subtask", ErrTaskNotFound, fieldsFor(columnID, taskID))
	}
	return e.UpdateTask(columnID, taskID, TaskPatch{Subtasks: &items})
}
