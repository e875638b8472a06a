// Package board is the board state engine. It owns the column collection,
// applies the task update rules, derives notifications and mirrors every
// commit to persistence.
package board

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/malekluka/malek-kanban-portfolio/internal/model"
	"github.com/malekluka/malek-kanban-portfolio/internal/notify"
)

// Outcome is the result of an engine operation. When Err is non-nil the
// board is unchanged and Err says why.
type Outcome struct {
	// Notification is the message derived from the change, if any.
	Notification string

	// EditTaskID names a task the presentation should open for editing.
	EditTaskID string

	Err error
}

// Applied reports whether the operation changed the board.
func (o Outcome) Applied() bool { return o.Err == nil }

// Persister receives a snapshot after every commit. Implementations must
// not block; persistence is a write-behind mirror of the in-memory board.
type Persister interface {
	Persist(cols []model.Column)
}

type discardPersister struct{}

func (discardPersister) Persist([]model.Column) {}

// TaskRef identifies a task by its column and id.
type TaskRef struct {
	ColumnID string
	TaskID   string
}

// Stats counts tasks by their status field, regardless of column.
type Stats struct {
	Total      int
	Todo       int
	InProgress int
	Done       int
}

// Engine is the only writer of the column collection. It is not safe for
// concurrent use; callers run operations one at a time.
type Engine struct {
	columns []model.Column
	feed    *notify.Feed
	persist Persister
	editing *TaskRef
	now     func() time.Time
	newID   func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source used for defaults and column ids.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithPersister sets where commits are mirrored. A nil p keeps the
// board in memory only.
func WithPersister(p Persister) Option {
	return func(e *Engine) {
		if p != nil {
			e.persist = p
		}
	}
}

// WithFeed sets the notification feed.
func WithFeed(f *notify.Feed) Option {
	return func(e *Engine) { e.feed = f }
}

// WithIDGenerator sets the task id generator.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

// New creates an engine owning a copy of cols. The loaded board is
// committed once so it is persisted and swept for due-date alerts.
func New(cols []model.Column, opts ...Option) *Engine {
	e := &Engine{
		persist: discardPersister{},
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.feed == nil {
		e.feed = notify.New(notify.WithClock(e.now))
	}

	loaded := model.CloneColumns(cols)
	for i := range loaded {
		if loaded[i].Tasks == nil {
			loaded[i].Tasks = []model.Task{}
		}
		for j := range loaded[i].Tasks {
			t := &loaded[i].Tasks[j]
			if t.Subtasks != nil {
				t.Subtasks = summarizeSubtasks(t.Subtasks.Items)
			}
		}
	}
	e.commit(loaded, "")
	return e
}

// Columns returns a deep copy of the current board.
func (e *Engine) Columns() []model.Column {
	return model.CloneColumns(e.columns)
}

// Column returns a copy of the column with id.
func (e *Engine) Column(id string) (model.Column, bool) {
	i := e.columnIndex(id)
	if i < 0 {
		return model.Column{}, false
	}
	return e.columns[i].Clone(), true
}

// Task returns a copy of a task in a column.
func (e *Engine) Task(columnID, taskID string) (model.Task, bool) {
	ci := e.columnIndex(columnID)
	if ci < 0 {
		return model.Task{}, false
	}
	ti := taskIndex(e.columns[ci], taskID)
	if ti < 0 {
		return model.Task{}, false
	}
	return e.columns[ci].Tasks[ti].Clone(), true
}

// Stats counts tasks by status.
func (e *Engine) Stats() Stats {
	var s Stats
	for _, c := range e.columns {
		for _, t := range c.Tasks {
			s.Total++
			switch t.Status {
			case model.StatusTodo:
				s.Todo++
			case model.StatusInProgress:
				s.InProgress++
			case model.StatusDone:
				s.Done++
			}
		}
	}
	return s
}

// Editing returns the task currently open for editing.
func (e *Engine) Editing() (TaskRef, bool) {
	if e.editing == nil {
		return TaskRef{}, false
	}
	return *e.editing, true
}

// StartEditing opens a task for editing. Unknown tasks are ignored.
func (e *Engine) StartEditing(columnID, taskID string) bool {
	if _, ok := e.Task(columnID, taskID); !ok {
		return false
	}
	e.editing = &TaskRef{ColumnID: columnID, TaskID: taskID}
	return true
}

// StopEditing clears the edit focus.
func (e *Engine) StopEditing() {
	e.editing = nil
}

// Notifications returns the feed, newest first.
func (e *Engine) Notifications() []model.Notification {
	return e.feed.Items()
}

// UnreadCount returns the number of unread notifications.
func (e *Engine) UnreadCount() int {
	return e.feed.Unread()
}

// MarkRead flags one notification as read.
func (e *Engine) MarkRead(id string) bool {
	return e.feed.MarkRead(id)
}

// MarkAllRead flags every notification as read.
func (e *Engine) MarkAllRead() {
	e.feed.MarkAllRead()
}

// ClearNotifications empties the feed.
func (e *Engine) ClearNotifications() {
	e.feed.ClearAll()
}

// CheckDue re-evaluates due dates without changing the board, so alerts
// recur once a new day starts. It returns the number of alerts pushed.
func (e *Engine) CheckDue() int {
	return e.feed.SweepDue(e.columns)
}

// commit installs cols as the board, pushes the derived notification,
// mirrors the snapshot and then runs the due-date sweep.
func (e *Engine) commit(cols []model.Column, notice string) {
	e.columns = cols
	if notice != "" {
		e.feed.Push(notice)
	}
	e.persist.Persist(model.CloneColumns(cols))
	e.feed.SweepDue(e.columns)
}

// skip logs why an operation was absorbed as a no-op.
func skip(op string, err error, fields log.Fields) Outcome {
	log.WithFields(fields).WithField("op", op).WithError(err).Debug("board operation skipped")
	return Outcome{Err: err}
}

func (e *Engine) columnIndex(id string) int {
	for i := range e.columns {
		if e.columns[i].ID == id {
			return i
		}
	}
	return -1
}

// columnTitle returns the title of column id, or id itself when the
// column no longer exists.
func (e *Engine) columnTitle(id string) string {
	if i := e.columnIndex(id); i >= 0 {
		return e.columns[i].Title
	}
	return id
}

func (e *Engine) taskExists(id string) bool {
	for _, c := range e.columns {
		if taskIndex(c, id) >= 0 {
			return true
		}
	}
	return false
}

func taskIndex(c model.Column, id string) int {
	for i := range c.Tasks {
		if c.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func today(now time.Time) string {
	return now.UTC().Format(model.DateLayout)
}
