package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/malekluka/malek-kanban-portfolio/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorSlate   = lipgloss.AdaptiveColor{Dark: "#94A3B8", Light: "#475569"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for the application title bar.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// PanelStyle wraps overlay content such as forms and the feed.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// CardStyle is the base style for a task card.
var CardStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// SelectedCardStyle highlights the focused task card.
var SelectedCardStyle = CardStyle.
	BorderForeground(ColorBlue)

// DraggedCardStyle marks the card being dragged.
var DraggedCardStyle = CardStyle.
	BorderStyle(lipgloss.DoubleBorder()).
	BorderForeground(ColorOrange)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// DimmedStyle renders secondary text.
var DimmedStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// OverdueStyle renders past-due dates.
var OverdueStyle = lipgloss.NewStyle().
	Foreground(ColorRed).
	Bold(true)

// LimitReachedStyle renders the WIP limit banner.
var LimitReachedStyle = lipgloss.NewStyle().
	Foreground(ColorRed).
	Bold(true)

// UnreadStyle marks unread notifications.
var UnreadStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Bold(true)

// ColumnColor maps a column color tag to a terminal color.
func ColumnColor(color string) lipgloss.AdaptiveColor {
	switch color {
	case model.ColorBlue:
		return ColorBlue
	case model.ColorAmber:
		return ColorYellow
	case model.ColorPurple:
		return ColorMagenta
	case model.ColorGreen:
		return ColorGreen
	case model.ColorSlate:
		return ColorSlate
	default:
		return ColorGray
	}
}

// ColumnStyle returns the frame for a column. Highlighted columns are the
// current drop target; focused columns hold the cursor.
func ColumnStyle(color string, focused, highlighted bool) lipgloss.Style {
	base := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	switch {
	case highlighted:
		return base.BorderStyle(lipgloss.ThickBorder()).BorderForeground(ColorOrange)
	case focused:
		return base.BorderForeground(ColumnColor(color))
	default:
		return base
	}
}

// ColumnTitleStyle renders a column heading in its color.
func ColumnTitleStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(ColumnColor(color))
}

// TrashStyle renders the trash drop target.
func TrashStyle(highlighted bool) lipgloss.Style {
	base := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Foreground(ColorGray)
	if highlighted {
		return base.BorderForeground(ColorRed).Foreground(ColorRed).Bold(true)
	}
	return base
}

// StatusStyle returns a color-coded style for a task status.
func StatusStyle(status model.Status) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch status {
	case model.StatusTodo:
		return base.Foreground(ColorBlue)
	case model.StatusInProgress:
		return base.Foreground(ColorYellow)
	case model.StatusDone:
		return base.Foreground(ColorGreen)
	default:
		return base.Foreground(ColorGray)
	}
}

// PriorityStyle returns a color-coded style for a task priority.
func PriorityStyle(priority model.Priority) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch priority {
	case model.PriorityHigh:
		return base.Foreground(ColorRed)
	case model.PriorityMedium:
		return base.Foreground(ColorOrange)
	case model.PriorityLow:
		return base.Foreground(ColorGreen)
	default:
		return base.Foreground(ColorGray)
	}
}
