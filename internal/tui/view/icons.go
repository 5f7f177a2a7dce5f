package view

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Icon constants
const (
	IconCheck     = "✔" // U+2714
	IconCross     = "❌" // U+274C
	IconSparkles  = "✨" // U+2728
	IconLightbulb = "💡" // U+1F4A1
	IconScroll    = "📜" // U+1F4DC
	IconInfo      = "ℹ" // U+2139 without VS16
	IconLocked    = "🔒" // U+1F512
	IconUnlocked  = "🔓" // U+1F513
	IconPalette   = "🎨" // U+1F3A8
)

// SafeIcon wraps an icon with proper spacing to prevent rendering issues.
// Single-cell icons get one trailing space, wide icons get two so at least
// one stays visible.
func SafeIcon(icon string) string {
	w := runewidth.StringWidth(icon)
	spaces := 1
	if w >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}

// Truncate shortens s to at most width terminal cells, marking the cut
// with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
