package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aerialops/snaptrigger/internal/config"
	"github.com/aerialops/snaptrigger/internal/session"
	"github.com/aerialops/snaptrigger/internal/stats"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the statistics from the last recorded session",
	Long: `Status reads the session statistics file written by a previous run
from the photo output directory and prints it in the same format the
daemon uses for its periodic status display.`,
	RunE: showStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func showStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	snap, err := stats.LoadSnapshot(cfg.Capture.OutputDir)
	if err != nil {
		return fmt.Errorf("no session statistics in %s: %w", cfg.Capture.OutputDir, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), session.RenderStatus(snap, cfg.Capture.OutputDir))
	return nil
}
