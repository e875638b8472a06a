package board

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/malekluka/malek-kanban-portfolio/internal/model"
)

var whitespace = regexp.MustCompile(`\s+`)

// Slugify lowercases title and joins its words with dashes.
func Slugify(title string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), "-")
}

// AddColumn appends an empty, unbounded column. Its id is the slugified
// title plus a millisecond timestamp, bumped until unique.
func (e *Engine) AddColumn(title string) Outcome {
	title = strings.TrimSpace(title)
	if title == "" {
		return skip("add_column", ErrBlankTitle, log.Fields{})
	}

	slug := Slugify(title)
	stamp := e.now().UnixMilli()
	id := fmt.Sprintf("%s-%d", slug, stamp)
	for e.columnIndex(id) >= 0 {
		stamp++
		id = fmt.Sprintf("%s-%d", slug, stamp)
	}

	next := model.CloneColumns(e.columns)
	next = append(next, model.Column{
		ID:    id,
		Title: title,
		Color: model.ColorSlate,
		Tasks: []model.Task{},
	})

	notice := fmt.Sprintf("Column \"%s\" created", title)
	e.commit(next, notice)
	return Outcome{Notification: notice}
}

// ParseLimit turns WIP limit input into a limit. Empty input and zero
// mean unbounded.
func ParseLimit(input string) (*int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 0 {
		return nil, ErrInvalidLimit
	}
	if n == 0 {
		return nil, nil
	}
	return &n, nil
}

// UpdateColumn merges a title and/or limit change into a column.
func (e *Engine) UpdateColumn(columnID string, patch ColumnPatch) Outcome {
	fields := log.Fields{"column_id": columnID}
	ci := e.columnIndex(columnID)
	if ci < 0 {
		return skip("update_column", ErrColumnNotFound, fields)
	}

	next := model.CloneColumns(e.columns)
	col := &next[ci]
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return skip("update_column", ErrBlankTitle, fields)
		}
		col.Title = title
	}
	if patch.Limit != nil {
		limit, err := ParseLimit(*patch.Limit)
		if err != nil {
			return skip("update_column", err, fields)
		}
		col.Limit = limit
	}

	e.commit(next, "")
	return Outcome{}
}

// DeleteColumn removes a column and every task in it. Confirmation is the
// caller's responsibility.
func (e *Engine) DeleteColumn(columnID string) Outcome {
	ci := e.columnIndex(columnID)
	if ci < 0 {
		return skip("delete_column", ErrColumnNotFound, log.Fields{"column_id": columnID})
	}

	next := model.CloneColumns(e.columns)
	next = append(next[:ci:ci], next[ci+1:]...)

	if e.editing != nil && e.editing.ColumnID == columnID {
		e.editing = nil
	}
	e.commit(next, "")
	return Outcome{}
}
