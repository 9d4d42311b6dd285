package view

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Icon constants
const (
	IconCross     = "❌" // U+274C
	IconSparkles  = "✨" // U+2728
	IconLightbulb = "💡" // U+1F4A1
	IconScroll    = "📜" // U+1F4DC
	IconInfo      = "ℹ" // U+2139 without VS16
)

// SafeIcon wraps an icon with trailing spacing so it doesn't swallow the
// next character. Wide icons get two spaces, narrow ones one.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}

// IconText formats an icon with text, handling spacing properly
func IconText(icon string, text string) string {
	return SafeIcon(icon) + text
}
