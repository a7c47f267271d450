// Package cmd provides the Super Snoofer CLI: hook flags driven by shell
// keybindings plus human-facing subcommands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"supersnoofer/internal/config"
	"supersnoofer/internal/engine"
	"supersnoofer/internal/logger"
	"supersnoofer/internal/store"
	"supersnoofer/pkg/fuzzy"
)

var (
	// Version is set during build
	Version = "dev"
	// BuildTime is set during build
	BuildTime = "unknown"
	// Commit is set during build
	Commit = "unknown"

	cfg *config.Config

	suggestCompletion     string
	suggestFullCompletion string
	suggestFrequent       string
	recordValid           string
	recordFailed          string
	copySuggestion        bool

	rootCmd = &cobra.Command{
		Use:   "super_snoofer",
		Short: "Fuzzy command correction and completion for your shell",
		Long: `Super Snoofer watches what you type, fixes typos, and completes
commands from your own history.

Shell hooks call the flags below on every keystroke or accepted line; the
flags print suggestions to stdout and always exit zero so a cache problem can
never break the shell. The subcommands are for humans: inspecting history,
teaching corrections, and resetting state.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				// A broken config file degrades to defaults, it never blocks.
				loaded = &config.Config{}
				logger.Init(logger.Options{Level: "warn"})
				logger.L().Warn("config load failed, using defaults", "error", err)
			} else {
				logger.Init(logger.Options{Level: loaded.Logging.Level, File: loaded.Logging.File})
			}
			cfg = loaded
			return nil
		},
		RunE: runRoot,
	}
)

// Execute runs the root command. Called by main.main().
func Execute() {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		printUsageError(os.Stderr, err)
		os.Exit(1)
	}
}

// printUsageError reports invalid input: the error itself plus a pointer to
// the recognized flags. Hook-driven suggest and record paths never reach
// this; they return nil.
func printUsageError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	fmt.Fprintln(w, "Run 'super_snoofer --help' for usage.")
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&suggestCompletion, "suggest-completion", "", "complete or correct a single token")
	flags.StringVar(&suggestFullCompletion, "suggest-full-completion", "", "complete a whole command line")
	flags.StringVar(&suggestFrequent, "suggest-frequent-command", "", "print the most used command, optionally matching a prefix")
	flags.StringVar(&recordValid, "record-valid-command", "", "record a command that exited successfully")
	flags.StringVar(&recordFailed, "record-failed-command", "", "record a command that exited with an error")
	flags.BoolVar(&copySuggestion, "copy", false, "also copy the top suggestion to the clipboard")

	// --suggest-frequent-command works bare or with =prefix.
	flags.Lookup("suggest-frequent-command").NoOptDefVal = " "
}

// runRoot dispatches the hook flags. Record and suggest paths always return
// nil: a hook that exits nonzero would surface as shell noise on every
// keystroke.
func runRoot(cmd *cobra.Command, args []string) error {
	acted := false

	if recordValid != "" {
		acted = true
		recordOutcome(recordValid, true)
	}
	if recordFailed != "" {
		acted = true
		recordOutcome(recordFailed, false)
	}

	if cmd.Flags().Changed("suggest-completion") {
		acted = true
		withEngine(func(e *engine.Engine) {
			if suggestion, ok := e.SuggestCompletion(suggestCompletion); ok {
				emit(suggestion)
			}
		})
	}

	if cmd.Flags().Changed("suggest-full-completion") {
		acted = true
		withEngine(func(e *engine.Engine) {
			suggestions := e.SuggestFullCompletion(suggestFullCompletion)
			for _, s := range suggestions {
				fmt.Println(s)
			}
			if copySuggestion && len(suggestions) > 0 {
				copyToClipboard(suggestions[0])
			}
		})
	}

	if cmd.Flags().Changed("suggest-frequent-command") {
		acted = true
		prefix := strings.TrimSpace(suggestFrequent)
		withEngine(func(e *engine.Engine) {
			if command, ok := e.MostFrequent(prefix); ok {
				emit(command)
			}
		})
	}

	if !acted {
		return cmd.Help()
	}
	return nil
}

func recordOutcome(command string, success bool) {
	command = strings.TrimSpace(command)
	if command == "" {
		return
	}
	s := openStore()
	defer s.Close()

	var err error
	if success {
		err = s.RecordSuccess(command)
	} else {
		err = s.RecordFailure(command)
	}
	if err != nil {
		logger.With("record").Warn("failed to record command", "error", err)
	}
}

func emit(suggestion string) {
	fmt.Println(suggestion)
	if copySuggestion {
		copyToClipboard(suggestion)
	}
}

func copyToClipboard(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		logger.With("clipboard").Debug("copy failed", "error", err)
	}
}

// openStore opens the configured cache. It never fails; a degraded store
// logs why and continues in memory.
func openStore() *store.Store {
	path := cfg.Cache.Path
	if path == "" {
		path = config.DefaultCachePath()
	}
	s, err := store.Open(path)
	if err != nil {
		logger.With("store").Warn("cache degraded", "error", err)
	}
	return s
}

func withEngine(fn func(*engine.Engine)) {
	s := openStore()
	defer s.Close()

	m := fuzzy.NewMatcher(cfg.Fuzzy.CaseSensitive, cfg.Fuzzy.MaxDistance, cfg.Fuzzy.Threshold)
	e := engine.New(s, m, engine.Options{
		Threshold:  cfg.Fuzzy.Threshold,
		MaxResults: cfg.Completion.MaxResults,
		ScanPath:   cfg.Completion.ScanPath,
		PathTTL:    cfg.Cache.PathTTL,
	})
	fn(e)
}
