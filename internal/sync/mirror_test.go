package sync

import (
	"context"
	"errors"
	gosync "sync"
	"testing"
	"time"

	"github.com/malekluka/malek-kanban-portfolio/internal/model"
)

type recordingSaver struct {
	mu    gosync.Mutex
	saves [][]model.Column
	err   error
}

func (r *recordingSaver) Save(_ context.Context, cols []model.Column) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves = append(r.saves, cols)
	return r.err
}

func (r *recordingSaver) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saves)
}

func TestFlushSavesNewestSnapshotOnly(t *testing.T) {
	rs := &recordingSaver{}
	m := NewMirror(rs)

	m.Persist([]model.Column{{ID: "a"}})
	m.Persist([]model.Column{{ID: "b"}})
	if err := m.Flush(context.Background()); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if rs.count() != 1 {
		t.Fatalf("expected one coalesced save, got %d", rs.count())
	}
	if rs.saves[0][0].ID != "b" {
		t.Fatalf("expected newest snapshot saved, got %q", rs.saves[0][0].ID)
	}
	if err := m.Flush(context.Background()); err != nil || rs.count() != 1 {
		t.Fatalf("flush with nothing pending should not save: err=%v count=%d", err, rs.count())
	}
}

func TestFailureIsRecordedInHealth(t *testing.T) {
	rs := &recordingSaver{err: errors.New("quota exceeded")}
	m := NewMirror(rs)

	m.Persist([]model.Column{{ID: "a"}})
	if err := m.Flush(context.Background()); err == nil {
		t.Fatal("expected flush to report the save error")
	}
	h := m.Health()
	if h.LastError == nil || h.Pending {
		t.Fatalf("unexpected health: %+v", h)
	}

	rs.err = nil
	m.Persist([]model.Column{{ID: "b"}})
	if err := m.Flush(context.Background()); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if m.Health().LastError != nil {
		t.Fatal("expected error cleared after a successful save")
	}
}

func TestBackgroundWriterAndStopDrains(t *testing.T) {
	rs := &recordingSaver{}
	m := NewMirror(rs)
	m.Start()

	m.Persist([]model.Column{{ID: "a"}})
	deadline := time.Now().Add(2 * time.Second)
	for rs.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if rs.count() == 0 {
		t.Fatal("background writer did not save")
	}

	m.Persist([]model.Column{{ID: "last"}})
	m.Stop()
	last := rs.saves[len(rs.saves)-1]
	if last[0].ID != "last" {
		t.Fatalf("expected final snapshot saved on stop, got %q", last[0].ID)
	}
	m.Stop()
}
