package boardview

import (
	"strings"
	"testing"
	"time"

	"github.com/malekluka/malek-kanban-portfolio/internal/drag"
	"github.com/malekluka/malek-kanban-portfolio/internal/filter"
	"github.com/malekluka/malek-kanban-portfolio/internal/model"
)

func sampleColumns() []model.Column {
	limit := 1
	return []model.Column{
		{ID: "todo", Title: "To Do", Limit: &limit, Tasks: []model.Task{
			{ID: "a", Title: "Write docs", Priority: model.PriorityLow, Status: model.StatusTodo, Tags: []string{"docs"}},
			{ID: "b", Title: "Fix login", Priority: model.PriorityHigh, Status: model.StatusTodo, Tags: []string{"auth"}},
		}},
		{ID: "done", Title: "Done", Tasks: []model.Task{
			{ID: "c", Title: "Ship", Priority: model.PriorityMedium, Status: model.StatusDone},
		}},
	}
}

func newView() Model {
	m := New(120, 40)
	m.SetClock(func() time.Time { return time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC) })
	m.SetColumns(sampleColumns())
	return m
}

func TestCursorMovement(t *testing.T) {
	m := newView()

	task, col, ok := m.SelectedTask()
	if !ok || task.ID != "a" || col != "todo" {
		t.Fatalf("initial selection = %s/%s, %v", col, task.ID, ok)
	}
	m.Down()
	m.Down()
	if task, _, _ := m.SelectedTask(); task.ID != "b" {
		t.Fatalf("after Down = %s, want b", task.ID)
	}
	m.Right()
	if task, col, _ := m.SelectedTask(); task.ID != "c" || col != "done" {
		t.Fatalf("after Right = %s/%s", col, task.ID)
	}
	m.Right()
	if c, _ := m.SelectedColumn(); c.ID != "done" {
		t.Fatalf("cursor left the board: %s", c.ID)
	}
}

func TestFiltersHideCards(t *testing.T) {
	m := newView()
	m.SetCriteria(filter.Criteria{Priority: string(model.PriorityHigh)})

	task, _, ok := m.SelectedTask()
	if !ok || task.ID != "b" {
		t.Fatalf("selection = %s, want b", task.ID)
	}
	out := m.View()
	if strings.Contains(out, "Write docs") {
		t.Fatal("filtered card rendered")
	}
	if !strings.Contains(out, "1 hidden by filters") {
		t.Fatal("hidden count missing")
	}
}

func TestFocusFollowsTask(t *testing.T) {
	m := newView()
	m.Focus("todo", "b")
	if task, _, _ := m.SelectedTask(); task.ID != "b" {
		t.Fatalf("Focus selected %s", task.ID)
	}

	cols := sampleColumns()
	cols[0].Tasks = cols[0].Tasks[:1]
	m.SetColumns(cols)
	if task, _, ok := m.SelectedTask(); !ok || task.ID != "a" {
		t.Fatalf("cursor not clamped after removal: %s, %v", task.ID, ok)
	}
}

func TestViewShowsLimitAndTrash(t *testing.T) {
	m := newView()
	out := m.View()
	if !strings.Contains(out, "WIP limit reached") {
		t.Fatal("limit banner missing")
	}
	if strings.Contains(out, "Drop here") {
		t.Fatal("trash shown while idle")
	}

	m.SetDrag(drag.State{Phase: drag.HoveringTrash, Task: model.Task{ID: "a", Title: "Write docs"}, SourceColumnID: "todo"}, true)
	if !strings.Contains(m.View(), "Drop here to delete") {
		t.Fatal("trash target missing while dragging")
	}
}

func TestEmptyBoard(t *testing.T) {
	m := New(80, 20)
	if _, _, ok := m.SelectedTask(); ok {
		t.Fatal("selection on empty board")
	}
	if !strings.Contains(m.View(), "No columns") {
		t.Fatal("empty hint missing")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("héllo world", 6); got != "héllo…" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate = %q", got)
	}
}
