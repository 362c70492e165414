// Package format holds pure display helpers shared by the TUI renderers.
package format

import (
	"strconv"
	"strings"
	"time"
)

// Wrap word-wraps s to the given width, preserving existing line breaks.
// Words longer than the width are placed on their own line unbroken.
// A width <= 0 returns s unchanged.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}

	var out []string
	for _, line := range strings.Split(s, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

// wrapLine wraps a single line (no newlines) into width-limited lines.
func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{line}
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		if len(current)+1+len(w) > width {
			lines = append(lines, current)
			current = w
			continue
		}
		current += " " + w
	}
	return append(lines, current)
}

// Clock formats a timestamp as HH:MM:SS for transcript entries.
// The zero time renders as an empty string.
func Clock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("15:04:05")
}

// Truncate shortens s to at most n characters, appending "..." when cut.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Reading formats a measurement value with its unit, dropping trailing
// zeros: 98.6 "F" → "98.6 F", 72 "bpm" → "72 bpm", 98 "%" → "98%".
func Reading(value float64, unit string) string {
	v := strconv.FormatFloat(value, 'f', -1, 64)
	if unit == "%" {
		return v + "%"
	}
	if unit == "" {
		return v
	}
	return v + " " + unit
}
