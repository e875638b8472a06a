package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/malekluka/malek-kanban-portfolio/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the stored board with the sample board",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, err := store.Open(ctx, cfg.Storage)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Save(ctx, store.Seed()); err != nil {
			return fmt.Errorf("resetting board: %w", err)
		}
		log.WithField("key", s.Key()).Info("board reset to sample data")
		fmt.Fprintln(cmd.OutOrStdout(), "Board reset to sample data.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
