package notify

import (
	"fmt"
	"math"
	"time"

	"github.com/malekluka/malek-kanban-portfolio/internal/model"
)

type alertKind int

const (
	alertOverdue alertKind = iota
	alertDueTomorrow
)

type alertKey struct {
	taskID string
	kind   alertKind
}

// alertLog remembers which due-date alerts were sent on the current
// calendar day. Entries from earlier days are dropped when the day rolls
// over, so its size is bounded by the number of tasks.
type alertLog struct {
	day  string
	sent map[alertKey]bool
}

func newAlertLog() *alertLog {
	return &alertLog{sent: make(map[alertKey]bool)}
}

// markOnce records key for day and reports whether it was new.
func (a *alertLog) markOnce(day string, key alertKey) bool {
	if a.day != day {
		a.day = day
		a.sent = make(map[alertKey]bool)
	}
	if a.sent[key] {
		return false
	}
	a.sent[key] = true
	return true
}

const day = 24 * time.Hour

// DaysUntil returns ceil((due - today) / 1 day) for an ISO date string.
// ok is false when dueDate is empty or malformed.
func DaysUntil(dueDate string, today time.Time) (int, bool) {
	if dueDate == "" {
		return 0, false
	}
	due, err := time.Parse(model.DateLayout, dueDate)
	if err != nil {
		return 0, false
	}
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Ceil(float64(due.Sub(midnight)) / float64(day))), true
}

// SweepDue pushes an overdue or due-tomorrow alert for each task whose
// condition has not already been alerted today. It returns the number of
// alerts pushed.
func (f *Feed) SweepDue(cols []model.Column) int {
	now := f.now().UTC()
	today := now.Format(model.DateLayout)

	pushed := 0
	for _, c := range cols {
		for _, t := range c.Tasks {
			diff, ok := DaysUntil(t.DueDate, now)
			if !ok {
				continue
			}
			switch {
			case diff < 0:
				if f.alerts.markOnce(today, alertKey{taskID: t.ID, kind: alertOverdue}) {
					if f.Push(fmt.Sprintf("⚠️ Task \"%s\" is overdue by %d day(s)", t.Title, -diff)) {
						pushed++
					}
				}
			case diff == 1:
				if f.alerts.markOnce(today, alertKey{taskID: t.ID, kind: alertDueTomorrow}) {
					if f.Push(fmt.Sprintf("⏰ Task \"%s\" is due tomorrow", t.Title)) {
						pushed++
					}
				}
			}
		}
	}
	return pushed
}
