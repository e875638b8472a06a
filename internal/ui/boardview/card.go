package boardview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/malekluka/malek-kanban-portfolio/internal/model"
	"github.com/malekluka/malek-kanban-portfolio/internal/notify"
	"github.com/malekluka/malek-kanban-portfolio/internal/theme"
)

type cardState struct {
	width    int
	selected bool
	dragged  bool
	today    time.Time
}

var priorityIcon = map[model.Priority]string{
	model.PriorityHigh:   "▲",
	model.PriorityMedium: "■",
	model.PriorityLow:    "▼",
}

func renderCard(t model.Task, s cardState) string {
	style := theme.CardStyle
	switch {
	case s.dragged:
		style = theme.DraggedCardStyle
	case s.selected:
		style = theme.SelectedCardStyle
	}
	inner := max(4, s.width-4)

	title := lipgloss.NewStyle().Bold(s.selected).Render(truncate(t.Title, inner))
	meta := []string{
		theme.PriorityStyle(t.Priority).Render(priorityIcon[t.Priority] + " " + string(t.Priority)),
		theme.StatusStyle(t.Status).Render(string(t.Status)),
		t.Assignee.Initials,
	}
	lines := []string{title, strings.Join(meta, " · ")}

	if due := dueLabel(t.DueDate, s.today); due != "" {
		lines = append(lines, due)
	}
	if t.Subtasks != nil && t.Subtasks.Total > 0 {
		lines = append(lines, progressBar(t.Progress(), inner-12)+
			fmt.Sprintf(" %d/%d", t.Subtasks.Completed, t.Subtasks.Total))
	} else {
		lines = append(lines, progressBar(t.Progress(), inner-12)+fmt.Sprintf(" %d%%", t.Progress()))
	}
	if len(t.Tags) > 0 {
		tags := "#" + strings.Join(t.Tags, " #")
		if t.Comments > 0 {
			tags += fmt.Sprintf("  💬 %d", t.Comments)
		}
		lines = append(lines, theme.DimmedStyle.Render(truncate(tags, inner)))
	}

	return style.Width(max(0, s.width)).Render(strings.Join(lines, "\n"))
}

func dueLabel(date string, today time.Time) string {
	days, ok := notify.DaysUntil(date, today)
	if !ok {
		return ""
	}
	switch {
	case days < 0:
		return theme.OverdueStyle.Render(fmt.Sprintf("due %s (%dd overdue)", date, -days))
	case days == 0:
		return theme.OverdueStyle.Render("due today")
	case days == 1:
		return lipgloss.NewStyle().Foreground(theme.ColorOrange).Render("due tomorrow")
	default:
		return theme.DimmedStyle.Render("due " + date)
	}
}

func progressBar(percent, width int) string {
	if width < 5 {
		width = 5
	}
	filled := percent * width / 100
	return lipgloss.NewStyle().Foreground(theme.ColorGreen).Render(strings.Repeat("█", filled)) +
		theme.DimmedStyle.Render(strings.Repeat("░", width-filled))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
