package cmd

import (
	"github.com/spf13/cobra"

	"supersnoofer/internal/ui"
)

var enableHistoryCmd = &cobra.Command{
	Use:   "enable-history",
	Short: "Resume recording commands into history",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()
		defer s.Close()

		if err := s.SetHistoryEnabled(true); err != nil {
			return err
		}
		ui.NewRenderer().Successf("history tracking enabled")
		return nil
	},
}

var disableHistoryCmd = &cobra.Command{
	Use:   "disable-history",
	Short: "Stop recording commands into history",
	Long: `Stops recording new commands. Existing history, learned corrections,
and completions keep working; use reset-memory to forget what is already
recorded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()
		defer s.Close()

		if err := s.SetHistoryEnabled(false); err != nil {
			return err
		}
		ui.NewRenderer().Successf("history tracking disabled")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enableHistoryCmd)
	rootCmd.AddCommand(disableHistoryCmd)
}
