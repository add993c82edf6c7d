// Package ctl implements the client-side commands for meshctl.
// It talks to a running meshfreqd over HTTP and WebSocket and renders the results to the terminal.
package ctl

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ANSI escape codes for terminal formatting.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	white  = "\033[37m"
)

// colorEnabled reports whether stdout is a terminal. When output is piped
// or redirected, ANSI escape codes are suppressed.
func colorEnabled() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// stateColor returns the ANSI color code appropriate for a daemon state.
func stateColor(state string) string {
	if !colorEnabled() {
		return ""
	}
	switch state {
	case "SERVING":
		return green
	case "BOOTING":
		return dim
	default:
		return white
	}
}

// colorize wraps text with an ANSI color sequence.
// Returns the text unchanged when color output is disabled.
func colorize(color, text string) string {
	if !colorEnabled() {
		return text
	}
	return color + text + reset
}

// header returns a bold section header, or plain text when color is off.
func header(title string) string {
	if colorEnabled() {
		return bold + title + reset
	}
	return title
}

// padRight pads s with spaces to reach the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// formatDuration renders a time.
// Duration as a compact human string like "2h 14m 8s" or "45s".
func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// table accumulates rows and renders them with columns sized to the widest
// cell. The header row is bolded when color output is enabled.
type table struct {
	indent string
	rows   [][]string
}

// newTable starts a table with the given indent and header columns.
func newTable(indent string, columns ...string) *table {
	return &table{indent: indent, rows: [][]string{columns}}
}

func (t *table) row(cells ...string) {
	t.rows = append(t.rows, cells)
}

// flush prints the accumulated rows to stdout.
func (t *table) flush() {
	if len(t.rows) == 0 {
		return
	}

	widths := make([]int, len(t.rows[0]))
	for _, r := range t.rows {
		for i, cell := range r {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for ri, r := range t.rows {
		var b strings.Builder
		b.WriteString(t.indent)
		for i, cell := range r {
			if i < len(widths) {
				b.WriteString(padRight(cell, widths[i]+2))
			} else {
				b.WriteString(cell)
			}
		}
		line := strings.TrimRight(b.String(), " ")
		if ri == 0 {
			fmt.Println(header(line))
		} else {
			fmt.Println(line)
		}
	}
}
