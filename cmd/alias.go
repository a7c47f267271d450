package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"supersnoofer/internal/ui"
)

var suggestAliasCmd = &cobra.Command{
	Use:   "suggest-alias [command]",
	Short: "Suggest a shell alias for a frequently used command",
	Long: `Suggests a short alias for the given command, or for your most used
command when none is given, and offers to append it to your shell rc file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()
		defer s.Close()

		r := ui.NewRenderer()

		var command string
		if len(args) > 0 {
			command = args[0]
		} else {
			var ok bool
			if command, ok = s.MostFrequent(); !ok {
				r.Empty("commands")
				return nil
			}
		}

		name := aliasName(command)
		line := fmt.Sprintf("alias %s='%s'", name, command)
		r.Paragraph("Suggested alias: " + line)

		rcFile := shellRCFile()
		if rcFile == "" {
			r.Paragraph("Could not detect your shell; add the alias manually.")
			return nil
		}

		confirmed := false
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Append to %s?", rcFile)).
			Value(&confirmed)
		if err := prompt.Run(); err != nil || !confirmed {
			return nil
		}

		if err := appendLine(rcFile, line); err != nil {
			return err
		}
		r.Successf("added to %s, restart your shell to use it", rcFile)
		return nil
	},
}

// aliasName picks the alias name: commands longer than three characters
// shorten to their first two letters, shorter ones keep their name.
func aliasName(command string) string {
	first := command
	if fields := strings.Fields(command); len(fields) > 0 {
		first = fields[0]
	}
	if len(first) <= 3 {
		return first
	}
	return first[:2]
}

// shellRCFile maps $SHELL to the rc file aliases belong in.
func shellRCFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	shell := filepath.Base(os.Getenv("SHELL"))
	switch shell {
	case "zsh":
		return filepath.Join(home, ".zshrc")
	case "bash":
		return filepath.Join(home, ".bashrc")
	case "fish":
		return filepath.Join(home, ".config", "fish", "config.fish")
	default:
		return ""
	}
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "\n%s\n", line)
	return err
}

func init() {
	rootCmd.AddCommand(suggestAliasCmd)
}
