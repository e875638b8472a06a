package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/malekluka/malek-kanban-portfolio/internal/theme"
)

// minColumnWidth keeps cards readable on narrow terminals; columns that
// do not fit are scrolled horizontally by the board view.
const minColumnWidth = 28

// Layout manages the terminal frame: a header line, the board area and a
// status bar.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
// HeaderHeight and StatusBarHeight default to 1.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the board, accounting
// for the header and status bar.
func (l Layout) ContentHeight() int {
	h := l.Height - l.HeaderHeight - l.StatusBarHeight
	if h < 0 {
		return 0
	}
	return h
}

// VisibleColumns returns how many columns fit side by side.
func (l Layout) VisibleColumns(total int) int {
	if total == 0 {
		return 0
	}
	n := l.Width / minColumnWidth
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	return n
}

// ColumnWidth returns the outer width of each of n side-by-side columns.
func (l Layout) ColumnWidth(n int) int {
	if n <= 0 {
		return l.Width
	}
	w := l.Width / n
	if w < minColumnWidth {
		w = minColumnWidth
	}
	return w
}

// RenderHeader renders the top bar with the board title on the left and
// a status such as save health on the right.
func (l Layout) RenderHeader(title string, status string) string {
	titleRendered := theme.HeaderStyle.Render(title)
	statusRendered := theme.HeaderStyle.
		Align(lipgloss.Right).
		Render(status)

	gap := max(0, l.Width-lipgloss.Width(titleRendered)-lipgloss.Width(statusRendered))
	filler := lipgloss.NewStyle().
		Width(gap).
		Background(theme.HeaderStyle.GetBackground()).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, titleRendered, filler, statusRendered)
}

// RenderStatusBar renders the bottom bar with keyboard hints or a
// transient message.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(hints)

	gap := max(0, l.Width-lipgloss.Width(rendered))
	filler := lipgloss.NewStyle().
		Width(gap).
		Background(theme.StatusBarStyle.GetBackground()).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderWithFrame composes the full view from its three parts.
func (l Layout) RenderWithFrame(header, content, statusBar string) string {
	content = lipgloss.NewStyle().
		Height(l.ContentHeight()).
		MaxHeight(l.ContentHeight()).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}
