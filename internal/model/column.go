package model

// Column colors understood by the theme. Unknown values render gray.
const (
	ColorSlate  = "slate"
	ColorBlue   = "blue"
	ColorAmber  = "amber"
	ColorPurple = "purple"
	ColorGreen  = "green"
)

// Column is one workflow stage holding an ordered list of tasks.
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`

	// Limit is an advisory WIP cap. Nil means unbounded.
	Limit *int   `json:"limit"`
	Tasks []Task `json:"tasks"`
}

// AtLimit reports whether the column has reached or passed its WIP limit.
func (c Column) AtLimit() bool {
	return c.Limit != nil && *c.Limit > 0 && len(c.Tasks) >= *c.Limit
}

// Clone returns a deep copy of c.
func (c Column) Clone() Column {
	out := c
	if c.Limit != nil {
		l := *c.Limit
		out.Limit = &l
	}
	out.Tasks = make([]Task, len(c.Tasks))
	for i, t := range c.Tasks {
		out.Tasks[i] = t.Clone()
	}
	return out
}

// CloneColumns deep-copies a column collection.
func CloneColumns(cols []Column) []Column {
	out := make([]Column, len(cols))
	for i, c := range cols {
		out[i] = c.Clone()
	}
	return out
}
