package view

import (
	"strings"

	"coursectl/internal/tui/design"
)

// PrepareLogContent applies color styles based on log level keywords.
// Overflow is left to the viewport.
func PrepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, rawLine := range lines {
		out[i] = styleLogLine(rawLine)
	}
	return strings.Join(out, "\n")
}

// styleLogLine wraps the line in the style matching its level marker.
func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
