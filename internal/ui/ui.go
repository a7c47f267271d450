// Package ui renders the human-facing subcommand output. Hook output
// (completions, corrections) never goes through here; it stays plain so
// shells can parse it.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Styles holds the lipgloss styles used by list and report output.
type Styles struct {
	Title   lipgloss.Style
	Item    lipgloss.Style
	Count   lipgloss.Style
	Arrow   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultStyles returns styles for a color terminal, or unstyled text when
// stdout is not a TTY.
func DefaultStyles() *Styles {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return &Styles{}
	}
	return &Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Item:    lipgloss.NewStyle(),
		Count:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Arrow:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Renderer writes styled report output.
type Renderer struct {
	Styles *Styles
	width  int
	titler cases.Caser
}

// NewRenderer creates a renderer sized to the current terminal.
func NewRenderer() *Renderer {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	return &Renderer{
		Styles: DefaultStyles(),
		width:  width,
		titler: cases.Title(language.English),
	}
}

// Heading prints a title-cased section heading.
func (r *Renderer) Heading(text string) {
	fmt.Println(r.Styles.Title.Render(r.titler.String(text)))
}

// List prints numbered items with an optional count column.
func (r *Renderer) List(items []string, counts []uint64) {
	for i, item := range items {
		line := fmt.Sprintf("%2d. %s", i+1, r.Styles.Item.Render(item))
		if counts != nil && i < len(counts) {
			line += r.Styles.Count.Render(fmt.Sprintf("  (%d)", counts[i]))
		}
		fmt.Println(line)
	}
}

// Mapping prints a typo alongside its correction.
func (r *Renderer) Mapping(from, to string) {
	fmt.Printf("%s %s %s\n", from, r.Styles.Arrow.Render("->"), to)
}

// Paragraph prints text wrapped to the terminal width.
func (r *Renderer) Paragraph(text string) {
	fmt.Println(wordwrap.String(text, r.width))
}

// Errorf prints a styled error line to stderr.
func (r *Renderer) Errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, r.Styles.Error.Render(fmt.Sprintf(format, args...)))
}

// Successf prints a styled confirmation line.
func (r *Renderer) Successf(format string, args ...any) {
	fmt.Println(r.Styles.Success.Render(fmt.Sprintf(format, args...)))
}

// Empty prints a muted placeholder when a list has nothing to show.
func (r *Renderer) Empty(what string) {
	fmt.Println(r.Styles.Muted.Render("no " + strings.ToLower(what) + " recorded yet"))
}
