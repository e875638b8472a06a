// Package notify keeps the board's notification feed: a newest-first,
// size-capped list of messages with burst deduplication and once-per-day
// due-date alerts.
package notify

import (
	"time"

	"github.com/google/uuid"

	"github.com/malekluka/malek-kanban-portfolio/internal/model"
)

const (
	// DefaultCap is the number of entries kept in the feed.
	DefaultCap = 50

	// DefaultDedupWindow suppresses a repeated message pushed within it.
	DefaultDedupWindow = 3 * time.Second

	dedupPruneAbove = 200
	dedupKeep       = 100
)

// Feed is the notification feed of one board. It is not safe for
// concurrent use; the board engine serializes access.
type Feed struct {
	items  []model.Notification
	cap    int
	window time.Duration
	recent *recentTexts
	alerts *alertLog
	now    func() time.Time
	newID  func() string
}

// Option configures a Feed.
type Option func(*Feed)

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(f *Feed) { f.now = now }
}

// WithCap sets the maximum number of retained entries.
func WithCap(n int) Option {
	return func(f *Feed) {
		if n > 0 {
			f.cap = n
		}
	}
}

// WithDedupWindow sets the duplicate suppression window.
func WithDedupWindow(d time.Duration) Option {
	return func(f *Feed) {
		if d >= 0 {
			f.window = d
		}
	}
}

// New creates an empty feed.
func New(opts ...Option) *Feed {
	f := &Feed{
		cap:    DefaultCap,
		window: DefaultDedupWindow,
		recent: newRecentTexts(dedupPruneAbove, dedupKeep),
		alerts: newAlertLog(),
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Push adds text to the front of the feed. It returns false when the same
// text was accepted less than the dedup window ago.
func (f *Feed) Push(text string) bool {
	now := f.now()
	if last, ok := f.recent.lastSeen(text); ok && now.Sub(last) < f.window {
		return false
	}
	f.recent.touch(text, now)

	n := model.Notification{
		ID:        f.newID(),
		Text:      text,
		Time:      "now",
		CreatedAt: now,
	}
	f.items = append([]model.Notification{n}, f.items...)
	if len(f.items) > f.cap {
		f.items = f.items[:f.cap]
	}
	return true
}

// Items returns a copy of the feed, newest first.
func (f *Feed) Items() []model.Notification {
	out := make([]model.Notification, len(f.items))
	copy(out, f.items)
	return out
}

// Len returns the number of entries in the feed.
func (f *Feed) Len() int { return len(f.items) }

// Unread returns the number of entries not yet marked read.
func (f *Feed) Unread() int {
	n := 0
	for _, it := range f.items {
		if !it.Read {
			n++
		}
	}
	return n
}

// MarkRead flags a single entry as read. Unknown ids are ignored.
func (f *Feed) MarkRead(id string) bool {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllRead flags every entry as read.
func (f *Feed) MarkAllRead() {
	for i := range f.items {
		f.items[i].Read = true
	}
}

// ClearAll empties the feed. Dedup and alert history are kept.
func (f *Feed) ClearAll() {
	f.items = nil
}
