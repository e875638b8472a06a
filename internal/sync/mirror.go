package sync

import (
	"context"
	gosync "sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/malekluka/malek-kanban-portfolio/internal/model"
)

// saveTimeout is the maximum time allowed for a single save operation.
const saveTimeout = 10 * time.Second

// Saver writes a full column collection to durable storage.
type Saver interface {
	Save(ctx context.Context, cols []model.Column) error
}

// Health describes the outcome of the most recent save.
type Health struct {
	LastSaved time.Time
	LastError error
	Pending   bool
}

// SaveResultMsg is a tea.Msg sent after each background save.
type SaveResultMsg struct {
	At    time.Time
	Error error
}

// Mirror is a write-behind copy of the board. Enqueued snapshots are saved
// by a background goroutine; only the newest unsaved snapshot is kept, so
// a burst of commits results in one write. Callers never wait on storage.
type Mirror struct {
	saver    Saver
	signalCh chan struct{}
	stopCh   chan struct{}
	resultCh chan SaveResultMsg
	wg       gosync.WaitGroup

	mu      gosync.Mutex
	latest  []model.Column
	dirty   bool
	health  Health
	running bool
	now     func() time.Time
}

// NewMirror creates a Mirror writing through s.
func NewMirror(s Saver) *Mirror {
	return &Mirror{
		saver:    s,
		signalCh: make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
		resultCh: make(chan SaveResultMsg, 16),
		now:      time.Now,
	}
}

// Start launches the background writer. Calling Start twice is a no-op.
func (m *Mirror) Start() {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	m.running = true
	m.mu.Unlock()

	m.wg.Add(1)
	go m.loop()
}

// Persist records cols as the newest snapshot and wakes the writer. The
// slice must not be mutated by the caller afterwards.
func (m *Mirror) Persist(cols []model.Column) {
	m.mu.Lock()
	m.latest = cols
	m.dirty = true
	m.health.Pending = true
	m.mu.Unlock()

	select {
	case m.signalCh <- struct{}{}:
	default:
	}
}

// Flush synchronously saves any pending snapshot.
func (m *Mirror) Flush(ctx context.Context) error {
	return m.saveLatest(ctx)
}

// Stop halts the writer after saving any pending snapshot.
func (m *Mirror) Stop() {
	m.mu.Lock()
	running := m.running
	m.running = false
	m.mu.Unlock()
	if !running {
		return
	}
	close(m.stopCh)
	m.wg.Wait()
}

// Health returns the state of the most recent save.
func (m *Mirror) Health() Health {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.health
}

// WaitForResult returns a tea.Cmd that blocks until the next save result.
func (m *Mirror) WaitForResult() tea.Cmd {
	return func() tea.Msg {
		select {
		case res := <-m.resultCh:
			return res
		case <-m.stopCh:
			return nil
		}
	}
}

func (m *Mirror) loop() {
	defer m.wg.Done()
	for {
		select {
		case <-m.signalCh:
			ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
			_ = m.saveLatest(ctx)
			cancel()
		case <-m.stopCh:
			ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
			_ = m.saveLatest(ctx)
			cancel()
			return
		}
	}
}

// saveLatest writes the newest snapshot if one is pending. Failures are
// logged and kept in Health; the in-memory board stays authoritative.
func (m *Mirror) saveLatest(ctx context.Context) error {
	m.mu.Lock()
	if !m.dirty {
		m.mu.Unlock()
		return nil
	}
	cols := m.latest
	m.dirty = false
	m.mu.Unlock()

	err := m.saver.Save(ctx, cols)
	at := m.now()

	m.mu.Lock()
	if err != nil {
		m.health.LastError = err
		log.WithError(err).Warn("saving board failed, changes kept in memory only")
	} else {
		m.health.LastError = nil
		m.health.LastSaved = at
	}
	m.health.Pending = m.dirty
	m.mu.Unlock()

	select {
	case m.resultCh <- SaveResultMsg{At: at, Error: err}:
	default:
	}
	return err
}
