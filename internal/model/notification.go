package model

import "time"

// Notification is a transient feed entry describing a board change or a
// due-date condition.
type Notification struct {
	// ID is the unique identifier for this notification.
	ID string `json:"id"`

	// Text is the human-readable message.
	Text string `json:"text"`

	// Time is the display label for when the entry was created.
	Time string `json:"time"`

	// Read indicates whether the user has seen this notification.
	Read bool `json:"read"`

	// CreatedAt is when this notification was pushed.
	CreatedAt time.Time `json:"created_at"`
}
