package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	ellipsis   = "..."
	sgrReset   = "\x1b[0m"
	tabSpaces  = "    "
	unreadSlot = 6
)

// clip cuts plain text to at most width display columns.
func clip(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= width {
		return text
	}
	return truncate.String(text, uint(width))
}

// clipANSI cuts text to width visible columns while keeping escape sequences
// intact, and closes any styling left open so it cannot bleed into the next row.
func clipANSI(text string, width int) string {
	out := clip(text, width)
	if strings.Contains(out, "\x1b") {
		out += sgrReset
	}
	return out
}

// clipEllipsis cuts text to width columns, marking the cut with "...".
// Widths of three or less leave room only for dots.
func clipEllipsis(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= width {
		return text
	}
	if width <= len(ellipsis) {
		return strings.Repeat(".", width)
	}
	return truncate.StringWithTail(text, uint(width), ellipsis)
}

// padRight pads s with spaces to width display columns.
func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// padLeft right-aligns s within width display columns.
func padLeft(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

// fitTabTitle renders label with one space of padding on each side, exactly
// width columns wide.
func fitTabTitle(label string, width int) string {
	switch {
	case width <= 0:
		return ""
	case width <= 2:
		return strings.Repeat(" ", width)
	}
	piece := " " + clipEllipsis(label, width-2) + " "
	return clip(padRight(piece, width), width)
}

// formatUnreadSlot renders the fixed-width unread badge; blank when zero.
func formatUnreadSlot(unread uint64) string {
	if unread == 0 {
		return strings.Repeat(" ", unreadSlot)
	}
	badge := "•999+"
	if unread <= 999 {
		badge = "•" + strconv.FormatUint(unread, 10)
	}
	return padLeft(badge, unreadSlot)
}

// sanitize expands tabs and drops control characters other than ESC, which
// would otherwise move the cursor and corrupt the layout.
func sanitize(text string) string {
	if !strings.ContainsFunc(text, isControl) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t':
			b.WriteString(tabSpaces)
		case isControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isControl(r rune) bool {
	return (r < 0x20 && r != 0x1b) || r == 0x7f
}
