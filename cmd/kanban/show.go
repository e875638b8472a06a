package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/malekluka/malek-kanban-portfolio/internal/board"
	"github.com/malekluka/malek-kanban-portfolio/internal/filter"
	"github.com/malekluka/malek-kanban-portfolio/internal/store"
)

var showCriteria = filter.Any()

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the board and notifications",
	Long:  "Loads the stored board, runs the due-date check and prints every column with its visible tasks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, err := store.Open(ctx, cfg.Storage)
		if err != nil {
			return err
		}
		defer s.Close()

		cols, _ := s.LoadOrSeed(ctx)
		engine := newEngine(cols, nil)
		printBoard(cmd.OutOrStdout(), engine, showCriteria)
		return nil
	},
}

func init() {
	showCmd.Flags().StringVarP(&showCriteria.Query, "query", "q", "", "free-text search")
	showCmd.Flags().StringVarP(&showCriteria.Priority, "priority", "p", filter.PriorityAll, "priority filter: all, low, medium or high")
	showCmd.Flags().StringVarP(&showCriteria.Tag, "tag", "t", "", "tag filter")
	rootCmd.AddCommand(showCmd)
}

func printBoard(w io.Writer, e *board.Engine, c filter.Criteria) {
	for _, col := range e.Columns() {
		limit := ""
		if col.Limit != nil {
			limit = fmt.Sprintf("/%d", *col.Limit)
			if col.AtLimit() {
				limit += " limit reached"
			}
		}
		fmt.Fprintf(w, "== %s (%d%s)\n", col.Title, len(col.Tasks), limit)
		for _, t := range filter.Visible(col, c) {
			fmt.Fprintf(w, "  [%s] %s  %s  %s  %d%%", t.Status, t.Title, t.Priority, t.Assignee.Initials, t.Progress())
			if t.DueDate != "" {
				fmt.Fprintf(w, "  due %s", t.DueDate)
			}
			if len(t.Tags) > 0 {
				fmt.Fprintf(w, "  #%s", strings.Join(t.Tags, " #"))
			}
			fmt.Fprintln(w)
		}
	}

	s := e.Stats()
	fmt.Fprintf(w, "\n%d tasks: %d todo, %d in progress, %d done\n", s.Total, s.Todo, s.InProgress, s.Done)

	if items := e.Notifications(); len(items) > 0 {
		fmt.Fprintln(w, "\nNotifications:")
		for _, n := range items {
			fmt.Fprintf(w, "  %s\n", n.Text)
		}
	}
}
