// Package filter decides which tasks are visible for a search query and
// the priority and tag filters.
package filter

import (
	"strings"

	"github.com/malekluka/malek-kanban-portfolio/internal/model"
)

// PriorityAll disables the priority filter.
const PriorityAll = "all"

// Criteria is the set of visibility filters applied to every task.
type Criteria struct {
	Query    string
	Priority string
	Tag      string
}

// Any returns criteria that match every task.
func Any() Criteria {
	return Criteria{Priority: PriorityAll}
}

// Active reports whether any filter narrows the result.
func (c Criteria) Active() bool {
	return strings.TrimSpace(c.Query) != "" ||
		strings.TrimSpace(c.Tag) != "" ||
		(c.Priority != "" && c.Priority != PriorityAll)
}

// Matches reports whether task is visible under c. It never modifies task.
func Matches(task model.Task, c Criteria) bool {
	tags := strings.ToLower(strings.Join(task.Tags, " "))

	q := strings.ToLower(strings.TrimSpace(c.Query))
	matchesSearch := q == "" ||
		strings.Contains(strings.ToLower(task.Title), q) ||
		strings.Contains(strings.ToLower(task.Description), q) ||
		strings.Contains(tags, q) ||
		strings.Contains(strings.ToLower(task.Assignee.Name), q)

	matchesPriority := c.Priority == "" || c.Priority == PriorityAll ||
		c.Priority == string(task.Priority)

	tagQ := strings.ToLower(strings.TrimSpace(c.Tag))
	matchesTag := tagQ == "" || strings.Contains(tags, tagQ)

	return matchesSearch && matchesPriority && matchesTag
}

// Visible returns the tasks of col that match c, in column order.
func Visible(col model.Column, c Criteria) []model.Task {
	out := make([]model.Task, 0, len(col.Tasks))
	for _, t := range col.Tasks {
		if Matches(t, c) {
			out = append(out, t)
		}
	}
	return out
}

// memoKey identifies a task revision by the fields Matches reads.
type memoKey struct {
	id, title, description, tags, assignee, priority string
	criteria                                         Criteria
}

// Memo caches Matches results. Entries are keyed by the fields the
// predicate reads, so an edited task is re-evaluated. Reset drops all
// entries.
type Memo struct {
	cache map[memoKey]bool
	max   int
}

// NewMemo returns a cache holding at most max entries; when full it is
// cleared before the next insert.
func NewMemo(max int) *Memo {
	if max <= 0 {
		max = 1024
	}
	return &Memo{cache: make(map[memoKey]bool), max: max}
}

// Matches is the cached form of the package-level Matches.
func (m *Memo) Matches(task model.Task, c Criteria) bool {
	k := memoKey{
		id:          task.ID,
		title:       task.Title,
		description: task.Description,
		tags:        strings.Join(task.Tags, " "),
		assignee:    task.Assignee.Name,
		priority:    string(task.Priority),
		criteria:    c,
	}
	if v, ok := m.cache[k]; ok {
		return v
	}
	v := Matches(task, c)
	if len(m.cache) >= m.max {
		m.Reset()
	}
	m.cache[k] = v
	return v
}

// Reset drops all cached results.
func (m *Memo) Reset() {
	m.cache = make(map[memoKey]bool)
}
