package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateString truncates plain text to the given display width,
// respecting wide runes.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// Ellipsize truncates s to width cells, ending in "..." when shortened.
func Ellipsize(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return TruncateString(s, width)
	}
	return runewidth.Truncate(s, width, "...")
}

// FirstLine returns s up to its first newline.
func FirstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
