package board_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/malekluka/malek-kanban-portfolio/internal/board"
	"github.com/malekluka/malek-kanban-portfolio/internal/model"
	"github.com/malekluka/malek-kanban-portfolio/internal/store"
	"github.com/malekluka/malek-kanban-portfolio/internal/sync"
	"github.com/malekluka/malek-kanban-portfolio/tests/testutil"
)

type recordingPersister struct {
	snapshots [][]model.Column
}

func (r *recordingPersister) Persist(cols []model.Column) {
	r.snapshots = append(r.snapshots, cols)
}

func intPtr(v int) *int { return &v }

func todoColumnBoard() []model.Column {
	return []model.Column{
		{ID: "todo", Title: "To Do", Color: model.ColorBlue, Limit: intPtr(5), Tasks: []model.Task{}},
		{ID: "progress", Title: "In Progress", Color: model.ColorAmber, Limit: intPtr(3)},
	}
}

func newEngine(t *testing.T, cols []model.Column, opts ...board.Option) (*board.Engine, *testutil.Clock) {
	t.Helper()
	clock := testutil.NewClock(testutil.Date(2025, time.September, 7).Add(10 * time.Hour))
	opts = append([]board.Option{board.WithClock(clock.Now)}, opts...)
	return board.New(cols, opts...), clock
}

func countContaining(items []model.Notification, substr string) int {
	n := 0
	for _, it := range items {
		if strings.Contains(it.Text, substr) {
			n++
		}
	}
	return n
}

func totalTasks(cols []model.Column) int {
	n := 0
	for _, c := range cols {
		n += len(c.Tasks)
	}
	return n
}

func TestAddTaskThenAutoComplete(t *testing.T) {
	e, _ := newEngine(t, todoColumnBoard())

	out := e.AddTask("todo")
	if !out.Applied() {
		t.Fatalf("AddTask: %v", out.Err)
	}
	col, _ := e.Column("todo")
	if len(col.Tasks) != 1 {
		t.Fatalf("todo has %d tasks, want 1", len(col.Tasks))
	}
	task := col.Tasks[0]
	if task.Status != model.StatusTodo || task.Title != "New Task" {
		t.Fatalf("new task = %q/%q, want todo/New Task", task.Status, task.Title)
	}
	if out.EditTaskID != task.ID {
		t.Fatalf("EditTaskID = %q, want %q", out.EditTaskID, task.ID)
	}
	if ref, ok := e.Editing(); !ok || ref.TaskID != task.ID {
		t.Fatalf("editing = %+v, %v", ref, ok)
	}

	out = e.UpdateTask("todo", task.ID, board.TaskPatch{
		Subtasks: &[]model.SubtaskItem{{ID: "a", Title: "x", Done: true}},
	})
	if !out.Applied() {
		t.Fatalf("UpdateTask: %v", out.Err)
	}
	got, _ := e.Task("todo", task.ID)
	if got.Status != model.StatusDone {
		t.Fatalf("status = %q, want done", got.Status)
	}
	if got.Subtasks.Completed != 1 || got.Subtasks.Total != 1 {
		t.Fatalf("subtasks = %d/%d, want 1/1", got.Subtasks.Completed, got.Subtasks.Total)
	}
	if n := countContaining(e.Notifications(), "automatically completed"); n != 1 {
		t.Fatalf("auto-complete notifications = %d, want 1", n)
	}
}

func TestAddTaskDefaults(t *testing.T) {
	e, _ := newEngine(t, todoColumnBoard())
	out := e.AddTask("todo")

	task, ok := e.Task("todo", out.EditTaskID)
	if !ok {
		t.Fatal("new task not found")
	}
	if task.Priority != model.PriorityMedium {
		t.Errorf("priority = %q", task.Priority)
	}
	if task.DueDate != "2025-09-14" {
		t.Errorf("due = %q, want 2025-09-14", task.DueDate)
	}
	if task.CreatedAt != "2025-09-07" {
		t.Errorf("createdAt = %q", task.CreatedAt)
	}
	if len(task.Tags) != 1 {
		t.Errorf("tags = %v", task.Tags)
	}
	if task.Subtasks == nil || task.Subtasks.Total != 0 {
		t.Errorf("subtasks = %+v", task.Subtasks)
	}
	if task.Assignee.Name != board.Unassigned || task.Assignee.Initials != "UN" {
		t.Errorf("assignee = %+v", task.Assignee)
	}
	if n := countContaining(e.Notifications(), "created in To Do"); n != 1 {
		t.Errorf("creation notifications = %d, want 1", n)
	}
}

func TestAddTaskUnknownColumn(t *testing.T) {
	e, _ := newEngine(t, todoColumnBoard())
	out := e.AddTask("nope")
	if !board.IsNotFound(out.Err) {
		t.Fatalf("err = %v, want not found", out.Err)
	}
	if totalTasks(e.Columns()) != 0 {
		t.Fatal("board changed")
	}
}

func TestWIPLimitIsAdvisory(t *testing.T) {
	e, _ := newEngine(t, todoColumnBoard())
	for i := 0; i < 6; i++ {
		if out := e.AddTask("todo"); !out.Applied() {
			t.Fatalf("AddTask %d: %v", i, out.Err)
		}
	}
	col, _ := e.Column("todo")
	if len(col.Tasks) != 6 {
		t.Fatalf("todo has %d tasks, want 6", len(col.Tasks))
	}
	if !col.AtLimit() {
		t.Fatal("column should be flagged at limit")
	}
}

func TestAutoCompleteIsIdempotent(t *testing.T) {
	e, _ := newEngine(t, todoColumnBoard())
	id := e.AddTask("todo").EditTaskID
	items := []model.SubtaskItem{{ID: "a", Title: "x", Done: true}}

	for i := 0; i < 3; i++ {
		e.UpdateTask("todo", id, board.TaskPatch{Subtasks: &items})
		got, _ := e.Task("todo", id)
		if got.Status != model.StatusDone {
			t.Fatalf("call %d: status = %q", i, got.Status)
		}
	}
	if n := countContaining(e.Notifications(), "automatically completed"); n != 1 {
		t.Fatalf("auto-complete notifications = %d, want 1", n)
	}
}

func TestAutoCompleteOverridesRequestedStatus(t *testing.T) {
	e, _ := newEngine(t, todoColumnBoard())
	id := e.AddTask("todo").EditTaskID
	items := []model.SubtaskItem{{ID: "a", Title: "x", Done: true}}
	status := model.StatusInProgress

	e.UpdateTask("todo", id, board.TaskPatch{Subtasks: &items, Status: &status})
	got, _ := e.Task("todo", id)
	if got.Status != model.StatusDone {
		t.Fatalf("status = %q, want done", got.Status)
	}
}

func TestUpdateTaskRuleOrder(t *testing.T) {
	tests := []struct {
		name  string
		patch board.TaskPatch
		want  string
	}{
		{"status done", board.TaskPatch{Status: board.Ptr(model.StatusDone)}, "marked as done"},
		{"status moved", board.TaskPatch{Status: board.Ptr(model.StatusInProgress)}, "moved from todo → in-progress"},
		{"status wins over priority", board.TaskPatch{
			Status:   board.Ptr(model.StatusInProgress),
			Priority: board.Ptr(model.PriorityHigh),
		}, "moved from"},
		{"priority", board.TaskPatch{Priority: board.Ptr(model.PriorityLow)}, "Priority changed"},
		{"title", board.TaskPatch{Title: board.Ptr("Renamed")}, "\"Renamed\" updated"},
		{"description", board.TaskPatch{Description: board.Ptr("more")}, "updated"},
		{"tags only", board.TaskPatch{Tags: &[]string{"x"}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newEngine(t, todoColumnBoard())
			id := e.AddTask("todo").EditTaskID

			out := e.UpdateTask("todo", id, tt.patch)
			if !out.Applied() {
				t.Fatalf("UpdateTask: %v", out.Err)
			}
			if tt.want == "" {
				if out.Notification != "" {
					t.Fatalf("notification = %q, want none", out.Notification)
				}
				return
			}
			if !strings.Contains(out.Notification, tt.want) {
				t.Fatalf("notification = %q, want it to contain %q", out.Notification, tt.want)
			}
		})
	}
}

func TestUpdateTaskWithoutChange(t *testing.T) {
	e, _ := newEngine(t, todoColumnBoard())
	id := e.AddTask("todo").EditTaskID
	before := len(e.Notifications())

	out := e.UpdateTask("todo", id, board.TaskPatch{Title: board.Ptr("New Task")})
	if out.Err != board.ErrNoChange {
		t.Fatalf("err = %v, want ErrNoChange", out.Err)
	}
	if len(e.Notifications()) != before {
		t.Fatal("unexpected notification")
	}
}

func TestUpdateTaskRejectsInvalidFields(t *testing.T) {
	e, _ := newEngine(t, todoColumnBoard())
	id := e.AddTask("todo").EditTaskID

	for _, p := range []board.TaskPatch{
		{Priority: board.Ptr(model.Priority("urgent"))},
		{Status: board.Ptr(model.Status("blocked"))},
		{DueDate: board.Ptr("next week")},
		{Comments: board.Ptr(-1)},
	} {
		if out := e.UpdateTask("todo", id, p); !board.IsValidation(out.Err) {
			t.Fatalf("patch %+v: err = %v, want validation", p, out.Err)
		}
	}
}

func TestUpdateTaskUnknownIDs(t *testing.T) {
	e, _ := newEngine(t, todoColumnBoard())
	id := e.AddTask("todo").EditTaskID

	if out := e.UpdateTask("missing", id, board.TaskPatch{Title: board.Ptr("x")}); out.Err != board.ErrColumnNotFound {
		t.Fatalf("err = %v", out.Err)
	}
	if out := e.UpdateTask("todo", "missing", board.TaskPatch{Title: board.Ptr("x")}); out.Err != board.ErrTaskNotFound {
		t.Fatalf("err = %v", out.Err)
	}
	// The task lives in todo, not progress.
	if out := e.UpdateTask("progress", id, board.TaskPatch{Title: board.Ptr("x")}); !board.IsNotFound(out.Err) {
		t.Fatalf("err = %v", out.Err)
	}
}

func TestAssigneeIsNormalized(t *testing.T) {
	e, _ := newEngine(t, todoColumnBoard())
	id := e.AddTask("todo").EditTaskID

	e.UpdateTask("todo", id, board.TaskPatch{Assignee: &model.Assignee{Name: "  jane doe smith "}})
	got, _ := e.Task("todo", id)
	if got.Assignee.Name != "jane doe smith" || got.Assignee.Initials != "JD" {
		t.Fatalf("assignee = %+v", got.Assignee)
	}
	if got.Assignee.Color == "" {
		t.Fatal("assignee color not defaulted")
	}
}

func TestSubtaskOperations(t *testing.T) {
	e, _ := newEngine(t, todoColumnBoard())
	id := e.AddTask("todo").EditTaskID

	e.AddSubtask("todo", id, "first")
	e.AddSubtask("todo", id, "second")
	if out := e.AddSubtask("todo", id, "   "); out.Err != board.ErrBlankTitle {
		t.Fatalf("blank subtask err = %v", out.Err)
	}

	got, _ := e.Task("todo", id)
	if got.Subtasks.Total != 2 || got.Subtasks.Completed != 0 {
		t.Fatalf("subtasks = %d/%d", got.Subtasks.Completed, got.Subtasks.Total)
	}
	first, second := got.Subtasks.Items[0].ID, got.Subtasks.Items[1].ID

	e.ToggleSubtask("todo", id, first)
	got, _ = e.Task("todo", id)
	if got.Subtasks.Completed != 1 || got.Status != model.StatusTodo {
		t.Fatalf("after toggle: %d done, status %q", got.Subtasks.Completed, got.Status)
	}

	out := e.RemoveSubtask("todo", id, second)
	if !strings.Contains(out.Notification, "automatically completed") {
		t.Fatalf("notification = %q", out.Notification)
	}
	got, _ = e.Task("todo", id)
	if got.Status != model.StatusDone || got.Subtasks.Total != 1 {
		t.Fatalf("after remove: status %q, total %d", got.Status, got.Subtasks.Total)
	}

	if out := e.ToggleSubtask("todo", id, "nope"); !board.IsNotFound(out.Err) {
		t.Fatalf("toggle unknown err = %v", out.Err)
	}
}

func TestDoneTaskCanBeReverted(t *testing.T) {
	e, _ := newEngine(t, todoColumnBoard())
	id := e.AddTask("todo").EditTaskID
	e.SetStatus("todo", id, model.StatusDone)

	out := e.SetStatus("todo", id, model.StatusTodo)
	if !strings.Contains(out.Notification, "moved from done → todo") {
		t.Fatalf("notification = %q", out.Notification)
	}
}

func TestMoveRoundTrip(t *testing.T) {
	seed := store.Seed()
	e, _ := newEngine(t, seed)
	before := e.Columns()

	task, _ := e.Task("todo", "3")
	out := e.MoveTask("todo", task, "progress")
	if !out.Applied() {
		t.Fatalf("MoveTask: %v", out.Err)
	}
	if out.Notification != "Moved: \"API Rate Limiting\" from To Do → In Progress" {
		t.Fatalf("notification = %q", out.Notification)
	}
	if _, ok := e.Task("todo", "3"); ok {
		t.Fatal("task still in source")
	}
	if _, ok := e.Task("progress", "3"); !ok {
		t.Fatal("task missing from target")
	}
	if totalTasks(e.Columns()) != totalTasks(before) {
		t.Fatal("task count changed")
	}

	e.MoveTask("progress", task, "todo")
	after := e.Columns()
	for i := range before {
		if len(before[i].Tasks) != len(after[i].Tasks) {
			t.Fatalf("column %s: %d tasks, want %d", before[i].ID, len(after[i].Tasks), len(before[i].Tasks))
		}
	}
}

func TestMoveNoOps(t *testing.T) {
	e, _ := newEngine(t, store.Seed())
	task, _ := e.Task("todo", "3")

	if out := e.MoveTask("todo", task, "todo"); out.Err != board.ErrSameColumn {
		t.Fatalf("same column err = %v", out.Err)
	}
	if out := e.MoveTask("todo", task, "gone"); out.Err != board.ErrColumnNotFound {
		t.Fatalf("missing target err = %v", out.Err)
	}
	if out := e.MoveTask("backlog", task, "done"); out.Err != board.ErrTaskNotFound {
		t.Fatalf("wrong source err = %v", out.Err)
	}
}

func TestMoveUsesStoredTask(t *testing.T) {
	e, _ := newEngine(t, store.Seed())
	stale, _ := e.Task("todo", "3")
	e.UpdateTask("todo", "3", board.TaskPatch{Title: board.Ptr("Fresh")})

	e.MoveTask("todo", stale, "done")
	got, _ := e.Task("done", "3")
	if got.Title != "Fresh" {
		t.Fatalf("title = %q, want Fresh", got.Title)
	}
	if got.Status != model.StatusTodo {
		t.Fatalf("status = %q, moving must not change status", got.Status)
	}
}

func TestDeleteTaskClearsEditFocus(t *testing.T) {
	e, _ := newEngine(t, todoColumnBoard())
	id := e.AddTask("todo").EditTaskID

	if out := e.DeleteTask("todo", id); !out.Applied() {
		t.Fatalf("DeleteTask: %v", out.Err)
	}
	if _, ok := e.Editing(); ok {
		t.Fatal("edit focus not cleared")
	}
	if out := e.TrashTask("todo", id); out.Err != board.ErrTaskNotFound {
		t.Fatalf("second delete err = %v", out.Err)
	}
}

func TestTrashKeepsOtherEditFocus(t *testing.T) {
	e, _ := newEngine(t, todoColumnBoard())
	first := e.AddTask("todo").EditTaskID
	second := e.AddTask("todo").EditTaskID

	e.TrashTask("todo", first)
	ref, ok := e.Editing()
	if !ok || ref.TaskID != second {
		t.Fatalf("editing = %+v, %v", ref, ok)
	}
}

func TestAddColumn(t *testing.T) {
	e, clock := newEngine(t, todoColumnBoard())

	if out := e.AddColumn("  "); out.Err != board.ErrBlankTitle {
		t.Fatalf("blank err = %v", out.Err)
	}
	out := e.AddColumn("QA  Testing")
	if !out.Applied() || out.Notification != "Column \"QA  Testing\" created" {
		t.Fatalf("outcome = %+v", out)
	}
	e.AddColumn("QA Testing")

	cols := e.Columns()
	if len(cols) != 4 {
		t.Fatalf("columns = %d, want 4", len(cols))
	}
	want := fmt.Sprintf("qa-testing-%d", clock.Now().UnixMilli())
	if cols[2].ID != want {
		t.Fatalf("id = %q, want %q", cols[2].ID, want)
	}
	if cols[3].ID == cols[2].ID {
		t.Fatal("column ids collide")
	}
	if cols[2].Limit != nil || len(cols[2].Tasks) != 0 {
		t.Fatalf("new column = %+v", cols[2])
	}
}

func TestIDsStayUnique(t *testing.T) {
	e, _ := newEngine(t, store.Seed())
	for i := 0; i < 20; i++ {
		e.AddColumn("Lane")
		e.AddTask("backlog")
	}

	cols := e.Columns()
	colIDs := map[string]bool{}
	taskIDs := map[string]bool{}
	for _, c := range cols {
		if colIDs[c.ID] {
			t.Fatalf("duplicate column id %q", c.ID)
		}
		colIDs[c.ID] = true
		for _, task := range c.Tasks {
			if taskIDs[task.ID] {
				t.Fatalf("duplicate task id %q", task.ID)
			}
			taskIDs[task.ID] = true
		}
	}
}

func TestTaskIDGeneratorCollision(t *testing.T) {
	ids := []string{"1", "1", "fresh"}
	next := 0
	gen := func() string {
		id := ids[next]
		next++
		return id
	}
	e, _ := newEngine(t, store.Seed(), board.WithIDGenerator(gen))

	out := e.AddTask("todo")
	if out.EditTaskID != "fresh" {
		t.Fatalf("id = %q, want fresh", out.EditTaskID)
	}
}

func TestUpdateColumn(t *testing.T) {
	e, _ := newEngine(t, todoColumnBoard())

	tests := []struct {
		name      string
		patch     board.ColumnPatch
		wantErr   error
		wantLimit *int
	}{
		{"set limit", board.ColumnPatch{Limit: board.Ptr(" 4 ")}, nil, intPtr(4)},
		{"clear limit", board.ColumnPatch{Limit: board.Ptr("")}, nil, nil},
		{"zero is unbounded", board.ColumnPatch{Limit: board.Ptr("0")}, nil, nil},
		{"negative", board.ColumnPatch{Limit: board.Ptr("-2")}, board.ErrInvalidLimit, nil},
		{"garbage", board.ColumnPatch{Limit: board.Ptr("lots")}, board.ErrInvalidLimit, nil},
		{"blank title", board.ColumnPatch{Title: board.Ptr(" ")}, board.ErrBlankTitle, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := e.UpdateColumn("todo", tt.patch)
			if out.Err != tt.wantErr {
				t.Fatalf("err = %v, want %v", out.Err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			col, _ := e.Column("todo")
			if (col.Limit == nil) != (tt.wantLimit == nil) {
				t.Fatalf("limit = %v, want %v", col.Limit, tt.wantLimit)
			}
			if col.Limit != nil && *col.Limit != *tt.wantLimit {
				t.Fatalf("limit = %d, want %d", *col.Limit, *tt.wantLimit)
			}
		})
	}

	e.UpdateColumn("todo", board.ColumnPatch{Title: board.Ptr("Next Up")})
	if col, _ := e.Column("todo"); col.Title != "Next Up" {
		t.Fatalf("title = %q", col.Title)
	}
}

func TestDeleteColumn(t *testing.T) {
	e, _ := newEngine(t, todoColumnBoard())
	e.AddTask("todo")

	if out := e.DeleteColumn("todo"); !out.Applied() {
		t.Fatalf("DeleteColumn: %v", out.Err)
	}
	if _, ok := e.Column("todo"); ok {
		t.Fatal("column still present")
	}
	if _, ok := e.Editing(); ok {
		t.Fatal("edit focus points into deleted column")
	}
	if out := e.DeleteColumn("todo"); out.Err != board.ErrColumnNotFound {
		t.Fatalf("second delete err = %v", out.Err)
	}
}

func TestSeedOverdueAlertOncePerDay(t *testing.T) {
	e, clock := newEngine(t, store.Seed())

	n := countContaining(e.Notifications(), "\"User Authentication System\" is overdue by 2 day(s)")
	if n != 1 {
		t.Fatalf("overdue alerts on load = %d, want 1", n)
	}
	if pushed := e.CheckDue(); pushed != 0 {
		t.Fatalf("second sweep pushed %d, want 0", pushed)
	}
	e.UpdateTask("backlog", "2", board.TaskPatch{Comments: board.Ptr(8)})
	if n := countContaining(e.Notifications(), "User Authentication System"); n != 1 {
		t.Fatalf("alerts after commit = %d, want 1", n)
	}

	clock.Advance(24 * time.Hour)
	e.CheckDue()
	if n := countContaining(e.Notifications(), "\"User Authentication System\" is overdue by 3 day(s)"); n != 1 {
		t.Fatalf("next-day alerts = %d, want 1", n)
	}
}

func TestDueTomorrowAlert(t *testing.T) {
	cols := todoColumnBoard()
	cols[0].Tasks = []model.Task{{ID: "t", Title: "Ship", Status: model.StatusTodo, DueDate: "2025-09-08"}}
	e, _ := newEngine(t, cols)

	if n := countContaining(e.Notifications(), "\"Ship\" is due tomorrow"); n != 1 {
		t.Fatalf("due-tomorrow alerts = %d, want 1", n)
	}
}

func TestEveryCommitIsPersisted(t *testing.T) {
	p := &recordingPersister{}
	e, _ := newEngine(t, todoColumnBoard(), board.WithPersister(p))
	if len(p.snapshots) != 1 {
		t.Fatalf("snapshots after load = %d, want 1", len(p.snapshots))
	}

	id := e.AddTask("todo").EditTaskID
	e.UpdateTask("todo", id, board.TaskPatch{Title: board.Ptr("Renamed")})
	e.AddColumn("")
	e.UpdateTask("todo", "missing", board.TaskPatch{Title: board.Ptr("x")})

	if len(p.snapshots) != 3 {
		t.Fatalf("snapshots = %d, want 3", len(p.snapshots))
	}
	// Snapshots must not alias engine state.
	p.snapshots[2][0].Tasks[0].Title = "mutated"
	if got, _ := e.Task("todo", id); got.Title != "Renamed" {
		t.Fatalf("engine state aliased: title %q", got.Title)
	}
}

func TestMirrorWritesBoardToStore(t *testing.T) {
	s := testutil.NewTestStore(t)
	m := sync.NewMirror(s)
	e, _ := newEngine(t, todoColumnBoard(), board.WithPersister(m))

	e.AddTask("todo")
	if err := m.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	loaded, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if totalTasks(loaded) != 1 {
		t.Fatalf("stored tasks = %d, want 1", totalTasks(loaded))
	}
}

func TestNotificationsNewestFirst(t *testing.T) {
	e, _ := newEngine(t, todoColumnBoard())
	e.AddColumn("Alpha")
	e.AddColumn("Beta")

	items := e.Notifications()
	if len(items) != 2 || !strings.Contains(items[0].Text, "Beta") {
		t.Fatalf("items = %+v", items)
	}
	if e.UnreadCount() != 2 {
		t.Fatalf("unread = %d", e.UnreadCount())
	}
	e.MarkRead(items[0].ID)
	if e.UnreadCount() != 1 {
		t.Fatalf("unread after MarkRead = %d", e.UnreadCount())
	}
	e.MarkAllRead()
	if e.UnreadCount() != 0 {
		t.Fatal("MarkAllRead left unread entries")
	}
	e.ClearNotifications()
	if len(e.Notifications()) != 0 {
		t.Fatal("feed not cleared")
	}
}

func TestStats(t *testing.T) {
	e, _ := newEngine(t, store.Seed())
	s := e.Stats()
	if s.Total != 6 || s.Todo != 3 || s.InProgress != 2 || s.Done != 1 {
		t.Fatalf("stats = %+v", s)
	}
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"":               "UN",
		"Unassigned":     "UN",
		"sarah":          "S",
		"Sarah Chen":     "SC",
		"mary jane wats": "MJ",
		"émile zola":     "ÉZ",
	}
	for in, want := range tests {
		if got := board.Initials(in); got != want {
			t.Errorf("Initials(%q) = %q, want %q", in, got, want)
		}
	}
}
