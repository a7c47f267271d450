package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"supersnoofer/internal/ui"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded commands ranked by successful use",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()
		defer s.Close()

		r := ui.NewRenderer()
		commands := s.TopBySuccess(historyLimit)
		if len(commands) == 0 {
			r.Empty("commands")
			return nil
		}

		r.Heading("command history")
		r.List(commands, nil)
		return nil
	},
}

var frequentTyposCmd = &cobra.Command{
	Use:   "frequent-typos",
	Short: "Show the typos corrected most often",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()
		defer s.Close()

		r := ui.NewRenderer()
		tallies := s.FrequentTypos(historyLimit)
		if len(tallies) == 0 {
			r.Empty("typos")
			return nil
		}

		r.Heading("frequent typos")
		for _, t := range tallies {
			correction, _ := s.Correction(t.Text)
			r.Mapping(fmt.Sprintf("%s (%d)", t.Text, t.Count), correction)
		}
		return nil
	},
}

var frequentCorrectionsCmd = &cobra.Command{
	Use:   "frequent-corrections",
	Short: "Show the commands you get corrected to most often",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()
		defer s.Close()

		r := ui.NewRenderer()
		tallies := s.FrequentCorrections(historyLimit)
		if len(tallies) == 0 {
			r.Empty("corrections")
			return nil
		}

		items := make([]string, len(tallies))
		counts := make([]uint64, len(tallies))
		for i, t := range tallies {
			items[i] = t.Text
			counts[i] = t.Count
		}

		r.Heading("frequent corrections")
		r.List(items, counts)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{historyCmd, frequentTyposCmd, frequentCorrectionsCmd} {
		c.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum entries to show")
		rootCmd.AddCommand(c)
	}
}
