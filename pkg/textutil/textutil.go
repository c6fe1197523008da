// Package textutil provides display helpers for terminal tables and
// text reports. Widths are computed with go-runewidth so columns stay
// aligned when cells contain wide characters.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// PadRight pads s with spaces to the given display width.
func PadRight(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}

	return s + strings.Repeat(" ", gap)
}

// PadLeft pads s with spaces on the left to the given display width.
func PadLeft(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}

	return strings.Repeat(" ", gap) + s
}

// Truncate shortens s to at most maxWidth display columns, appending "..."
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	return runewidth.Truncate(s, maxWidth, "...")
}

// NormalizeWhitespace collapses runs of whitespace into single spaces.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Bar renders a proportional bar of at most width cells.
func Bar(value, max float64, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}

	n := int(value / max * float64(width))
	if n > width {
		n = width
	}

	return strings.Repeat("█", n)
}

// Stars renders a rating as filled and hollow stars on the given scale.
func Stars(rating float64, scale int) string {
	filled := int(rating)
	if filled < 0 {
		filled = 0
	}

	if filled > scale {
		filled = scale
	}

	return strings.Repeat("★", filled) + strings.Repeat("☆", scale-filled)
}
