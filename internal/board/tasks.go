package board

import (
	"fmt"
	"reflect"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/malekluka/malek-kanban-portfolio/internal/model"
)

// New task defaults.
const (
	NewTaskTitle       = "New Task"
	newTaskDescription = "Click to edit this task description and add details"
	newTaskTag         = "New"
	newTaskDueIn       = 7 * 24 * time.Hour
)

func fieldsFor(columnID, taskID string) log.Fields {
	return log.Fields{"column_id": columnID, "task_id": taskID}
}

// missing reports whichever of the column or the task does not exist.
func (e *Engine) missing(op, columnID, taskID string) Outcome {
	if e.columnIndex(columnID) < 0 {
		return skip(op, ErrColumnNotFound, fieldsFor(columnID, taskID))
	}
	return skip(op, ErrTaskNotFound, fieldsFor(columnID, taskID))
}

// AddTask appends a task with default values to a column and opens it
// for editing.
func (e *Engine) AddTask(columnID string) Outcome {
	ci := e.columnIndex(columnID)
	if ci < 0 {
		return skip("add_task", ErrColumnNotFound, log.Fields{"column_id": columnID})
	}

	now := e.now()
	id := e.newID()
	for e.taskExists(id) {
		id = e.newID()
	}
	task := model.Task{
		ID:          id,
		Title:       NewTaskTitle,
		Description: newTaskDescription,
		Priority:    model.PriorityMedium,
		Status:      model.StatusTodo,
		Assignee: model.Assignee{
			Name:     Unassigned,
			Initials: unassignedInitials,
			Color:    defaultAssigneeColor,
		},
		DueDate:   today(now.Add(newTaskDueIn)),
		Tags:      []string{newTaskTag},
		Subtasks:  &model.Subtasks{Items: []model.SubtaskItem{}},
		CreatedAt: today(now),
	}

	next := model.CloneColumns(e.columns)
	next[ci].Tasks = append(next[ci].Tasks, task)

	notice := fmt.Sprintf("🆕 New task \"%s\" created in %s", task.Title, next[ci].Title)
	e.commit(next, notice)
	e.editing = &TaskRef{ColumnID: columnID, TaskID: id}

	return Outcome{Notification: notice, EditTaskID: id}
}

// UpdateTask merges patch into a task and applies the first matching rule:
// a fully checked checklist forces status done, otherwise a status,
// priority or title/description change is announced. At most one
// notification is produced.
func (e *Engine) UpdateTask(columnID, taskID string, patch TaskPatch) Outcome {
	ci := e.columnIndex(columnID)
	if ci < 0 {
		return skip("update_task", ErrColumnNotFound, fieldsFor(columnID, taskID))
	}
	ti := taskIndex(e.columns[ci], taskID)
	if ti < 0 {
		return skip("update_task", ErrTaskNotFound, fieldsFor(columnID, taskID))
	}
	if err := patch.validate(); err != nil {
		return skip("update_task", err, fieldsFor(columnID, taskID))
	}

	prev := e.columns[ci].Tasks[ti]
	updated := patch.apply(prev)

	var notice string
	switch {
	case updated.Subtasks.AllDone() && updated.Status != model.StatusDone:
		updated.Status = model.StatusDone
		notice = fmt.Sprintf("✅ Task \"%s\" automatically completed (100%% subtasks done)", updated.Title)
	case prev.Status != updated.Status:
		if updated.Status == model.StatusDone {
			notice = fmt.Sprintf("✅ Task \"%s\" marked as done", updated.Title)
		} else {
			notice = fmt.Sprintf("🔄 Task \"%s\" moved from %s → %s", updated.Title, prev.Status, updated.Status)
		}
	case prev.Priority != updated.Priority:
		notice = fmt.Sprintf("⚡ Priority changed for \"%s\": %s → %s", updated.Title, prev.Priority, updated.Priority)
	case prev.Title != updated.Title || prev.Description != updated.Description:
		notice = fmt.Sprintf("✏️ Task \"%s\" updated", updated.Title)
	}

	if reflect.DeepEqual(prev, updated) {
		return skip("update_task", ErrNoChange, fieldsFor(columnID, taskID))
	}

	next := model.CloneColumns(e.columns)
	next[ci].Tasks[ti] = updated
	e.commit(next, notice)

	return Outcome{Notification: notice}
}

// SetStatus is the quick status change: an update touching only status.
func (e *Engine) SetStatus(columnID, taskID string, status model.Status) Outcome {
	return e.UpdateTask(columnID, taskID, TaskPatch{Status: &status})
}

// RemoveTask is the deletion primitive behind DeleteTask and TrashTask.
// confirmed records whether the caller obtained user confirmation; the
// engine never asks. Deleting the task open for editing clears the focus.
func (e *Engine) RemoveTask(columnID, taskID string, confirmed bool) Outcome {
	ci := e.columnIndex(columnID)
	if ci < 0 {
		return skip("delete_task", ErrColumnNotFound, fieldsFor(columnID, taskID))
	}
	ti := taskIndex(e.columns[ci], taskID)
	if ti < 0 {
		return skip("delete_task", ErrTaskNotFound, fieldsFor(columnID, taskID))
	}

	next := model.CloneColumns(e.columns)
	tasks := next[ci].Tasks
	next[ci].Tasks = append(tasks[:ti:ti], tasks[ti+1:]...)

	if e.editing != nil && e.editing.ColumnID == columnID && e.editing.TaskID == taskID {
		e.editing = nil
	}
	log.WithFields(fieldsFor(columnID, taskID)).WithField("confirmed", confirmed).Debug("task deleted")
	e.commit(next, "")

	return Outcome{}
}

// DeleteTask removes a task after the caller has confirmed with the user.
func (e *Engine) DeleteTask(columnID, taskID string) Outcome {
	return e.RemoveTask(columnID, taskID, true)
}

// TrashTask removes a task dropped on the trash target, without
// confirmation.
func (e *Engine) TrashTask(columnID, taskID string) Outcome {
	return e.RemoveTask(columnID, taskID, false)
}

// MoveTask transfers task from the source column to the end of the
// target column in a single commit. The stored copy of the task is moved;
// task is only used for its id and as a title fallback.
func (e *Engine) MoveTask(sourceColumnID string, task model.Task, targetColumnID string) Outcome {
	fields := log.Fields{"column_id": sourceColumnID, "task_id": task.ID, "target_column_id": targetColumnID}
	if sourceColumnID == targetColumnID {
		return skip("move_task", ErrSameColumn, fields)
	}
	si := e.columnIndex(sourceColumnID)
	ti := e.columnIndex(targetColumnID)
	if si < 0 || ti < 0 {
		return skip("move_task", ErrColumnNotFound, fields)
	}
	idx := taskIndex(e.columns[si], task.ID)
	if idx < 0 {
		return skip("move_task", ErrTaskNotFound, fields)
	}

	next := model.CloneColumns(e.columns)
	moved := next[si].Tasks[idx]
	src := next[si].Tasks
	next[si].Tasks = append(src[:idx:idx], src[idx+1:]...)
	next[ti].Tasks = append(next[ti].Tasks, moved)

	if e.editing != nil && e.editing.TaskID == moved.ID {
		e.editing.ColumnID = targetColumnID
	}

	title := moved.Title
	if title == "" {
		title = moved.ID
	}
	notice := fmt.Sprintf("Moved: \"%s\" from %s → %s",
		title, e.columnTitle(sourceColumnID), e.columnTitle(targetColumnID))
	e.commit(next, notice)

	return Outcome{Notification: notice}
}
