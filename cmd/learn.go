package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"supersnoofer/internal/ui"
)

var learnCorrectionCmd = &cobra.Command{
	Use:   "learn-correction <typo> <correction>...",
	Short: "Teach a correction that always wins over fuzzy matching",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		typo := args[0]
		correction := strings.Join(args[1:], " ")

		s := openStore()
		defer s.Close()

		if err := s.LearnCorrection(typo, correction); err != nil {
			return err
		}

		ui.NewRenderer().Successf("learned: %s -> %s", typo, correction)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(learnCorrectionCmd)
}
