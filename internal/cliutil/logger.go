package cliutil

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/pinglow/apisidebar/parser"
)

// newHandler creates a charm log handler with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
// Verbose output includes debug messages; otherwise only warnings and errors.
func newHandler(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
	l.SetStyles(logStyles())
	return l
}

// logStyles highlights the attributes that point at a place in the
// document or on disk. Colors are dropped when w is not a terminal.
func logStyles() *log.Styles {
	styles := log.DefaultStyles()
	location := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	for _, key := range []string{"href", "operation", "first", "source", "output"} {
		styles.Keys[key] = location
	}
	styles.Values["href"] = lipgloss.NewStyle().Bold(true)
	return styles
}

// NewLogger returns a parser.Logger writing to w through a charm log handler.
func NewLogger(w io.Writer, verbose bool) parser.Logger {
	return parser.NewSlogAdapter(slog.New(newHandler(w, verbose)))
}
