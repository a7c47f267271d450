package cmd

import (
	"github.com/spf13/cobra"

	"supersnoofer/internal/ui"
)

var resetCacheCmd = &cobra.Command{
	Use:   "reset-cache",
	Short: "Drop the cached PATH executable index",
	Long: `Drops the cached PATH scan so the next completion rescans PATH.
Recorded history and learned corrections are kept; use reset-memory to drop
everything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()
		defer s.Close()

		if err := s.ClearPathIndex(); err != nil {
			return err
		}
		ui.NewRenderer().Successf("cache cleared")
		return nil
	},
}

var resetMemoryCmd = &cobra.Command{
	Use:   "reset-memory",
	Short: "Forget all history, learned corrections, and cached scans",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()
		defer s.Close()

		for _, clear := range []func() error{s.ClearPathIndex, s.ClearCorrections, s.ClearHistory} {
			if err := clear(); err != nil {
				return err
			}
		}
		ui.NewRenderer().Successf("memory cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCacheCmd)
	rootCmd.AddCommand(resetMemoryCmd)
}
