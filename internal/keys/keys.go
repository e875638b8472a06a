package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the board keybindings.
type KeyMap struct {
	// Navigation
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding

	// Task actions
	NewTask    key.Binding
	Edit       key.Binding
	Delete     key.Binding
	CycleState key.Binding
	Subtask    key.Binding
	Toggle     key.Binding

	// Drag transfer
	Grab  key.Binding
	Drop  key.Binding
	Trash key.Binding

	// Columns
	NewColumn    key.Binding
	EditColumn   key.Binding
	DeleteColumn key.Binding

	// Filters
	Search        key.Binding
	CyclePriority key.Binding
	TagFilter     key.Binding
	ClearFilters  key.Binding

	// Notifications
	Notifications key.Binding
	MarkAllRead   key.Binding
	ClearFeed     key.Binding

	Confirm key.Binding
	Back    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "prev column"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next column"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		NewTask: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new task"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e/enter", "edit task"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete task"),
		),
		CycleState: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle status"),
		),
		Subtask: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add subtask"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "check next subtask"),
		),
		Grab: key.NewBinding(
			key.WithKeys("m", " "),
			key.WithHelp("m/space", "grab task"),
		),
		Drop: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "drop"),
		),
		Trash: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "hover trash"),
		),
		NewColumn: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "new column"),
		),
		EditColumn: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "edit column"),
		),
		DeleteColumn: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete column"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		CyclePriority: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "priority filter"),
		),
		TagFilter: key.NewBinding(
			key.WithKeys("#"),
			key.WithHelp("#", "tag filter"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "clear filters"),
		),
		Notifications: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "notifications"),
		),
		MarkAllRead: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "mark all read"),
		),
		ClearFeed: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear all"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Left, k.Right, k.NewTask, k.Edit,
		k.Grab, k.Search, k.Help, k.Quit,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Back, k.Quit},
		{k.NewTask, k.Edit, k.Delete, k.CycleState, k.Subtask, k.Toggle},
		{k.Grab, k.Drop, k.Trash, k.NewColumn, k.EditColumn, k.DeleteColumn},
		{k.Search, k.CyclePriority, k.TagFilter, k.ClearFilters},
		{k.Notifications, k.MarkAllRead, k.ClearFeed, k.Help},
	}
}
