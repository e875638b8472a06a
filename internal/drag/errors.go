package drag

import "errors"

var (
	// ErrNotDragging is reported when a drop arrives with no drag in progress.
	ErrNotDragging = errors.New("no drag in progress")

	// ErrNoTarget is reported when a drag is released outside any target.
	ErrNoTarget = errors.New("drag released outside a drop target")
)
