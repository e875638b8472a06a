package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/malekluka/malek-kanban-portfolio/internal/app"
	"github.com/malekluka/malek-kanban-portfolio/internal/board"
	"github.com/malekluka/malek-kanban-portfolio/internal/model"
	"github.com/malekluka/malek-kanban-portfolio/internal/notify"
	"github.com/malekluka/malek-kanban-portfolio/internal/store"
	appsync "github.com/malekluka/malek-kanban-portfolio/internal/sync"
)

var (
	configPath string
	cfg        *model.AppConfig
	logFile    *os.File
)

var rootCmd = &cobra.Command{
	Use:           "kanban",
	Short:         "Terminal kanban board",
	Long:          "A kanban board with WIP limits, subtasks, due-date alerts and drag-and-drop between columns.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Debug(".env file not found, using environment variables")
		}

		loaded, err := model.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		// The TUI owns the terminal, so its logs go to a file.
		toFile := cmd == cmd.Root()
		return setupLogging(cfg.Log, toFile)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			_ = logFile.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, err := store.Open(ctx, cfg.Storage)
		if err != nil {
			return err
		}
		defer s.Close()

		cols, seeded := s.LoadOrSeed(ctx)
		log.WithFields(log.Fields{"key": s.Key(), "seeded": seeded, "columns": len(cols)}).Info("board loaded")

		mirror := appsync.NewMirror(s)
		mirror.Start()
		defer mirror.Stop()

		engine := newEngine(cols, mirror)
		p := tea.NewProgram(app.New(engine, mirror), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running board: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", model.DefaultConfigPath(), "path to the config file")
}

func newEngine(cols []model.Column, p board.Persister) *board.Engine {
	feed := notify.New(
		notify.WithCap(cfg.Notifications.FeedCap),
		notify.WithDedupWindow(msDuration(cfg.Notifications.DedupWindowMS)),
	)
	return board.New(cols, board.WithPersister(p), board.WithFeed(feed))
}

func setupLogging(lc model.LogConfig, toFile bool) error {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		return fmt.Errorf("parsing log level %q: %w", lc.Level, err)
	}
	log.SetLevel(level)

	if !toFile || lc.File == "" {
		log.SetOutput(os.Stderr)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(lc.File), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", lc.File, err)
	}
	logFile = f
	log.SetOutput(f)
	log.SetFormatter(&log.JSONFormatter{})
	return nil
}
