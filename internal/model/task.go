package model

import "math"

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Status is the workflow state of a task. It is tracked independently of
// the column that holds the task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// DateLayout is the ISO calendar date format used for due and creation dates.
const DateLayout = "2006-01-02"

// Assignee is the person responsible for a task.
type Assignee struct {
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Color    string `json:"color"`
}

// SubtaskItem is a single checklist entry attached to a task.
type SubtaskItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// Subtasks holds a task's checklist. Completed and Total are derived from
// Items and are stored alongside them; writers must call Recount after
// changing Items.
type Subtasks struct {
	Items     []SubtaskItem `json:"items"`
	Completed int           `json:"completed"`
	Total     int           `json:"total"`
}

// Recount recomputes Completed and Total from Items.
func (s *Subtasks) Recount() {
	done := 0
	for _, it := range s.Items {
		if it.Done {
			done++
		}
	}
	s.Completed = done
	s.Total = len(s.Items)
}

// AllDone reports whether the checklist is non-empty and fully checked.
func (s *Subtasks) AllDone() bool {
	return s != nil && s.Total > 0 && s.Completed == s.Total
}

// Task is the unit of work tracked by the board.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	Assignee    Assignee  `json:"assignee"`
	DueDate     string    `json:"dueDate,omitempty"`
	Tags        []string  `json:"tags"`
	Subtasks    *Subtasks `json:"subtasks"`
	Comments    int       `json:"comments"`
	CreatedAt   string    `json:"createdAt"`
}

// Clone returns a deep copy of t so callers cannot alias the engine's slices.
func (t Task) Clone() Task {
	c := t
	if t.Tags != nil {
		c.Tags = append([]string(nil), t.Tags...)
	}
	if t.Subtasks != nil {
		st := *t.Subtasks
		st.Items = append([]SubtaskItem(nil), t.Subtasks.Items...)
		c.Subtasks = &st
	}
	return c
}

// Progress returns the completion percentage shown on a task card: the
// checked share of subtasks when any exist, otherwise a value implied by
// the status.
func (t Task) Progress() int {
	if t.Subtasks != nil && len(t.Subtasks.Items) > 0 {
		done := 0
		for _, it := range t.Subtasks.Items {
			if it.Done {
				done++
			}
		}
		return int(math.Round(float64(done) / float64(len(t.Subtasks.Items)) * 100))
	}
	switch t.Status {
	case StatusInProgress:
		return 50
	case StatusDone:
		return 100
	default:
		return 0
	}
}
