// Package logger wraps charmbracelet/log. Output always goes to stderr
// because stdout carries completion results back to the shell hook.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu       sync.Mutex
	instance *log.Logger
)

// Options configures the process logger.
type Options struct {
	Level string
	File  string
}

// Init builds the global logger. Calling it again reconfigures, which tests
// rely on. A log file, when set, receives a copy of everything.
func Init(opts Options) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	var w io.Writer = os.Stderr
	if opts.File != "" {
		if f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			w = io.MultiWriter(os.Stderr, f)
		}
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "super_snoofer",
	})
	l.SetLevel(parseLevel(opts.Level))

	instance = l
	return l
}

// L returns the global logger, initializing a default one on first use.
func L() *log.Logger {
	mu.Lock()
	l := instance
	mu.Unlock()
	if l != nil {
		return l
	}
	return Init(Options{Level: "warn"})
}

// With returns a child logger tagged with a component prefix.
func With(component string) *log.Logger {
	return L().WithPrefix(component)
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
