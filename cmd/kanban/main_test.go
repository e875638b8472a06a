package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/malekluka/malek-kanban-portfolio/internal/filter"
	"github.com/malekluka/malek-kanban-portfolio/internal/model"
	"github.com/malekluka/malek-kanban-portfolio/internal/store"
)

func TestPrintBoardAppliesFilters(t *testing.T) {
	cfg = model.DefaultAppConfig()
	e := newEngine(store.Seed(), nil)

	var buf bytes.Buffer
	printBoard(&buf, e, filter.Criteria{Priority: filter.PriorityAll, Tag: "security"})
	out := buf.String()

	if !strings.Contains(out, "User Authentication System") || !strings.Contains(out, "Security Audit") {
		t.Fatalf("security tasks missing:\n%s", out)
	}
	if strings.Contains(out, "Mobile App Redesign") {
		t.Fatalf("filtered task printed:\n%s", out)
	}
	if !strings.Contains(out, "== To Do (1/5)") {
		t.Fatalf("column header missing:\n%s", out)
	}
	if !strings.Contains(out, "6 tasks: 3 todo, 2 in progress, 1 done") {
		t.Fatalf("stats missing:\n%s", out)
	}
}

func TestNewEngineUsesFeedConfig(t *testing.T) {
	cfg = model.DefaultAppConfig()
	cfg.Notifications.FeedCap = 2
	e := newEngine(nil, nil)

	for _, title := range []string{"A", "B", "C"} {
		e.AddColumn(title)
	}
	if n := len(e.Notifications()); n != 2 {
		t.Fatalf("feed has %d entries, want 2", n)
	}
}

func TestSetupLoggingToFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetFormatter(&log.TextFormatter{})

	path := filepath.Join(t.TempDir(), "logs", "kanban.log")
	if err := setupLogging(model.LogConfig{Level: "debug", File: path}, true); err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	defer logFile.Close()

	log.Info("hello")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("log file = %q", data)
	}
	if log.GetLevel() != log.DebugLevel {
		t.Fatalf("level = %v", log.GetLevel())
	}
}

func TestSetupLoggingRejectsBadLevel(t *testing.T) {
	if err := setupLogging(model.LogConfig{Level: "loud"}, false); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
