// Package boardview renders the columns side by side and tracks the
// cursor. It never changes the board; the app turns keys into engine
// operations and hands the resulting columns back through SetColumns.
package boardview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/malekluka/malek-kanban-portfolio/internal/drag"
	"github.com/malekluka/malek-kanban-portfolio/internal/filter"
	"github.com/malekluka/malek-kanban-portfolio/internal/model"
	"github.com/malekluka/malek-kanban-portfolio/internal/theme"
	"github.com/malekluka/malek-kanban-portfolio/internal/ui"
)

// Model is the board view.
type Model struct {
	columns  []model.Column
	visible  [][]model.Task
	criteria filter.Criteria
	memo     *filter.Memo
	drag     drag.State
	trashHot bool

	col    int
	row    int
	offset int

	width  int
	height int
	now    func() time.Time
}

// New creates an empty board view.
func New(width, height int) Model {
	return Model{
		criteria: filter.Any(),
		memo:     filter.NewMemo(0),
		width:    width,
		height:   height,
		now:      time.Now,
	}
}

// SetColumns replaces the rendered board and keeps the cursor in range.
func (m *Model) SetColumns(cols []model.Column) {
	m.columns = cols
	m.refilter()
}

// SetCriteria changes the visibility filters.
func (m *Model) SetCriteria(c filter.Criteria) {
	m.criteria = c
	m.refilter()
}

// Criteria returns the active filters.
func (m Model) Criteria() filter.Criteria { return m.criteria }

// SetDrag mirrors the drag controller so the dragged card and hovered
// target are highlighted.
func (m *Model) SetDrag(s drag.State, trashHighlighted bool) {
	m.drag = s
	m.trashHot = trashHighlighted
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampOffset()
}

// SetClock sets the time source used to flag overdue cards.
func (m *Model) SetClock(now func() time.Time) { m.now = now }

func (m *Model) refilter() {
	m.visible = make([][]model.Task, len(m.columns))
	for i, c := range m.columns {
		tasks := make([]model.Task, 0, len(c.Tasks))
		for _, t := range c.Tasks {
			if m.memo.Matches(t, m.criteria) {
				tasks = append(tasks, t)
			}
		}
		m.visible[i] = tasks
	}
	m.clamp()
}

func (m *Model) clamp() {
	if m.col >= len(m.columns) {
		m.col = len(m.columns) - 1
	}
	if m.col < 0 {
		m.col = 0
	}
	n := 0
	if m.col < len(m.visible) {
		n = len(m.visible[m.col])
	}
	if m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
	m.clampOffset()
}

func (m *Model) clampOffset() {
	n := ui.NewLayout(m.width, m.height).VisibleColumns(len(m.columns))
	if m.col < m.offset {
		m.offset = m.col
	}
	if n > 0 && m.col >= m.offset+n {
		m.offset = m.col - n + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// Left moves the cursor to the previous column.
func (m *Model) Left() {
	if m.col > 0 {
		m.col--
		m.clamp()
	}
}

// Right moves the cursor to the next column.
func (m *Model) Right() {
	if m.col < len(m.columns)-1 {
		m.col++
		m.clamp()
	}
}

// Up moves the cursor to the previous card.
func (m *Model) Up() {
	if m.row > 0 {
		m.row--
	}
}

// Down moves the cursor to the next card.
func (m *Model) Down() {
	if m.col < len(m.visible) && m.row < len(m.visible[m.col])-1 {
		m.row++
	}
}

// Focus puts the cursor on a task, or on the column when taskID is empty
// or hidden by the filters.
func (m *Model) Focus(columnID, taskID string) {
	for ci, c := range m.columns {
		if c.ID != columnID {
			continue
		}
		m.col = ci
		m.row = 0
		for ri, t := range m.visible[ci] {
			if t.ID == taskID {
				m.row = ri
			}
		}
		m.clamp()
		return
	}
}

// SelectedColumn returns the column under the cursor.
func (m Model) SelectedColumn() (model.Column, bool) {
	if m.col < 0 || m.col >= len(m.columns) {
		return model.Column{}, false
	}
	return m.columns[m.col], true
}

// SelectedTask returns the card under the cursor and its column id.
func (m Model) SelectedTask() (model.Task, string, bool) {
	if m.col < 0 || m.col >= len(m.visible) {
		return model.Task{}, "", false
	}
	tasks := m.visible[m.col]
	if m.row < 0 || m.row >= len(tasks) {
		return model.Task{}, "", false
	}
	return tasks[m.row], m.columns[m.col].ID, true
}

// View renders the visible window of columns plus the trash target while
// a drag is in progress.
func (m Model) View() string {
	if len(m.columns) == 0 {
		return theme.HelpStyle.Render("No columns. Press N to add one.")
	}

	layout := ui.NewLayout(m.width, m.height)
	n := layout.VisibleColumns(len(m.columns))
	width := layout.ColumnWidth(n)

	bodyHeight := m.height
	if m.drag.Phase != drag.Idle {
		bodyHeight -= 3
	}

	end := min(m.offset+n, len(m.columns))
	rendered := make([]string, 0, end-m.offset)
	for ci := m.offset; ci < end; ci++ {
		rendered = append(rendered, m.renderColumn(ci, width, bodyHeight))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	if m.drag.Phase == drag.Idle {
		return board
	}
	trash := theme.TrashStyle(m.trashHot).
		Width(max(0, m.width-2)).
		Render("🗑  Drop here to delete " + fmt.Sprintf("%q", m.drag.Task.Title))
	return lipgloss.JoinVertical(lipgloss.Left, board, trash)
}

func (m Model) renderColumn(ci, width, height int) string {
	c := m.columns[ci]
	focused := ci == m.col
	highlighted := m.drag.Phase == drag.HoveringColumn && m.drag.OverColumnID == c.ID

	count := fmt.Sprintf("%d", len(c.Tasks))
	if c.Limit != nil {
		count = fmt.Sprintf("%d/%d", len(c.Tasks), *c.Limit)
	}
	lines := []string{
		theme.ColumnTitleStyle(c.Color).Render(c.Title) + " " + theme.DimmedStyle.Render(count),
	}
	if c.AtLimit() {
		lines = append(lines, theme.LimitReachedStyle.Render("⚠ WIP limit reached"))
	}
	if hidden := len(c.Tasks) - len(m.visible[ci]); hidden > 0 {
		lines = append(lines, theme.DimmedStyle.Render(fmt.Sprintf("%d hidden by filters", hidden)))
	}

	inner := max(0, width-4)
	used := len(lines)
	for ri, t := range m.visible[ci] {
		card := renderCard(t, cardState{
			width:    inner,
			selected: focused && ri == m.row,
			dragged:  m.drag.Phase != drag.Idle && m.drag.Task.ID == t.ID,
			today:    m.now(),
		})
		h := lipgloss.Height(card)
		if height > 0 && used+h > height-2 {
			more := len(m.visible[ci]) - ri
			lines = append(lines, theme.DimmedStyle.Render(fmt.Sprintf("… %d more", more)))
			break
		}
		lines = append(lines, card)
		used += h
	}
	if len(m.visible[ci]) == 0 {
		lines = append(lines, theme.HelpStyle.Render("empty"))
	}

	return theme.ColumnStyle(c.Color, focused, highlighted).
		Width(max(0, width-2)).
		Render(strings.Join(lines, "\n"))
}
