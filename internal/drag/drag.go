// Package drag implements the drag-and-drop transfer protocol: it tracks
// the task being dragged and the target under it, and on drop asks the
// board engine to move or trash the task.
package drag

import (
	"github.com/malekluka/malek-kanban-portfolio/internal/board"
	"github.com/malekluka/malek-kanban-portfolio/internal/model"
)

// Phase is the state of a drag gesture.
type Phase int

const (
	Idle Phase = iota
	Dragging
	HoveringColumn
	HoveringTrash
)

func (p Phase) String() string {
	switch p {
	case Dragging:
		return "dragging"
	case HoveringColumn:
		return "hovering-column"
	case HoveringTrash:
		return "hovering-trash"
	default:
		return "idle"
	}
}

// Board is the subset of engine operations a drop may invoke.
type Board interface {
	MoveTask(sourceColumnID string, task model.Task, targetColumnID string) board.Outcome
	TrashTask(columnID, taskID string) board.Outcome
}

// State is a read-only view of the controller.
type State struct {
	Phase          Phase
	Task           model.Task
	SourceColumnID string
	OverColumnID   string
}

// Controller tracks one drag gesture at a time. Hover changes are
// advisory highlight state and never touch the board.
type Controller struct {
	board  Board
	phase  Phase
	task   model.Task
	source string
	over   string
}

// New returns an idle controller dropping into b.
func New(b Board) *Controller {
	return &Controller{board: b}
}

// Start begins dragging task out of sourceColumnID. A drag already in
// progress is replaced.
func (c *Controller) Start(task model.Task, sourceColumnID string) {
	c.phase = Dragging
	c.task = task
	c.source = sourceColumnID
	c.over = ""
}

// Active reports whether a drag is in progress.
func (c *Controller) Active() bool { return c.phase != Idle }

// HoverColumn marks columnID as the current drop target.
func (c *Controller) HoverColumn(columnID string) {
	if c.phase == Idle {
		return
	}
	c.phase = HoveringColumn
	c.over = columnID
}

// HoverTrash marks the trash as the current drop target.
func (c *Controller) HoverTrash() {
	if c.phase == Idle {
		return
	}
	c.phase = HoveringTrash
	c.over = ""
}

// Leave clears the current drop target without ending the drag.
func (c *Controller) Leave() {
	if c.phase == Idle {
		return
	}
	c.phase = Dragging
	c.over = ""
}

// DropOnColumn moves the dragged task into targetColumnID and ends the
// drag. Dropping onto the source column is a no-op.
func (c *Controller) DropOnColumn(targetColumnID string) board.Outcome {
	if c.phase == Idle {
		return board.Outcome{Err: ErrNotDragging}
	}
	task, source := c.task, c.source
	c.End()
	if source == targetColumnID {
		return board.Outcome{Err: board.ErrSameColumn}
	}
	return c.board.MoveTask(source, task, targetColumnID)
}

// DropOnTrash deletes the dragged task without asking for confirmation
// and ends the drag.
func (c *Controller) DropOnTrash() board.Outcome {
	if c.phase == Idle {
		return board.Outcome{Err: ErrNotDragging}
	}
	taskID, source := c.task.ID, c.source
	c.End()
	return c.board.TrashTask(source, taskID)
}

// Drop delivers the dragged task to whatever target is hovered. With no
// target the drag is aborted.
func (c *Controller) Drop() board.Outcome {
	switch c.phase {
	case HoveringColumn:
		return c.DropOnColumn(c.over)
	case HoveringTrash:
		return c.DropOnTrash()
	default:
		c.End()
		return board.Outcome{Err: ErrNoTarget}
	}
}

// End resets the controller to Idle, clearing all hover state.
func (c *Controller) End() {
	c.phase = Idle
	c.task = model.Task{}
	c.source = ""
	c.over = ""
}

// State returns the current gesture.
func (c *Controller) State() State {
	return State{
		Phase:          c.phase,
		Task:           c.task,
		SourceColumnID: c.source,
		OverColumnID:   c.over,
	}
}

// Highlighted reports whether columnID is the hovered drop target.
func (c *Controller) Highlighted(columnID string) bool {
	return c.phase == HoveringColumn && c.over == columnID
}

// TrashHighlighted reports whether the trash is the hovered drop target.
func (c *Controller) TrashHighlighted() bool {
	return c.phase == HoveringTrash
}
