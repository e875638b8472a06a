package board

import (
	"strings"
	"time"

	"github.com/malekluka/malek-kanban-portfolio/internal/model"
)

// Default assignee values.
const (
	Unassigned           = "Unassigned"
	unassignedInitials   = "UN"
	defaultAssigneeColor = "from-gray-400 to-gray-500"
)

// TaskPatch lists the task fields an update may override. Nil fields keep
// their current value. Id and creation date are never patchable.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *model.Priority
	Status      *model.Status
	Assignee    *model.Assignee
	DueDate     *string
	Tags        *[]string

	// Subtasks replaces the checklist items; counts are recomputed.
	Subtasks *[]model.SubtaskItem
	Comments *int
}

// ColumnPatch lists the column fields an update may override. Limit is
// the raw user input: empty means unbounded.
type ColumnPatch struct {
	Title *string
	Limit *string
}

// Ptr returns a pointer to v, for building patches.
func Ptr[T any](v T) *T { return &v }

func (p TaskPatch) validate() error {
	if p.Priority != nil && !p.Priority.Valid() {
		return ErrInvalidField
	}
	if p.Status != nil && !p.Status.Valid() {
		return ErrInvalidField
	}
	if p.DueDate != nil && *p.DueDate != "" {
		if _, err := time.Parse(model.DateLayout, *p.DueDate); err != nil {
			return ErrInvalidField
		}
	}
	if p.Comments != nil && *p.Comments < 0 {
		return ErrInvalidField
	}
	return nil
}

// apply returns t with the patch merged in.
func (p TaskPatch) apply(t model.Task) model.Task {
	out := t.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Assignee != nil {
		out.Assignee = normalizeAssignee(*p.Assignee)
	}
	if p.DueDate != nil {
		out.DueDate = *p.DueDate
	}
	if p.Tags != nil {
		out.Tags = append([]string{}, (*p.Tags)...)
	}
	if p.Subtasks != nil {
		out.Subtasks = summarizeSubtasks(*p.Subtasks)
	}
	if p.Comments != nil {
		out.Comments = *p.Comments
	}
	return out
}

// normalizeAssignee fills a blank name, initials or color.
func normalizeAssignee(a model.Assignee) model.Assignee {
	a.Name = strings.TrimSpace(a.Name)
	if a.Initials == "" {
		a.Initials = Initials(a.Name)
	}
	if a.Name == "" {
		a.Name = Unassigned
	}
	if a.Color == "" {
		a.Color = defaultAssigneeColor
	}
	return a
}

// Initials derives up to two uppercase initials from a name.
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 || name == Unassigned {
		return unassignedInitials
	}
	initials := make([]rune, 0, 2)
	for _, w := range words {
		if len(initials) == 2 {
			break
		}
		initials = append(initials, []rune(w)[0])
	}
	return strings.ToUpper(string(initials))
}

// ParseTags splits a comma-separated list, trimming blanks.
func ParseTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
