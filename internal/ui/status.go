package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/streamtabs/internal/state"
)

// renderFooter renders the status line: focused tab, line counts, input
// state and the short key help on the right.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	f := m.frame

	parts := []string{statusText(f)}
	switch {
	case f.Ended && f.EndErr != nil:
		parts = append(parts, styles.DangerText.Render("input error: "+f.EndErr.Error()))
	case f.Ended:
		parts = append(parts, styles.WarningText.Render("end of input"))
	}
	if m.notice != "" {
		parts = append(parts, styles.AccentText.Render(m.notice))
	}
	left := " " + strings.Join(parts, "  ")

	right := m.help.ShortHelpView(m.keys.ShortHelp()) + " "
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	line := left
	if gap >= 2 {
		line = left + strings.Repeat(" ", gap) + right
	}
	return styles.Footer.Width(m.width).MaxWidth(m.width).Render(clipANSI(line, m.width))
}

// statusText summarizes the focused tab, e.g.
// "[2] error  120 lines of 5000  selected 60  9120 read  paused".
func statusText(f state.Frame) string {
	if len(f.Tabs) == 0 {
		return ""
	}
	tab := f.Tabs[f.Focused]
	text := fmt.Sprintf("[%d] %s  %d lines", tab.Index, tab.Label, f.Visible)
	if f.Mode == state.Paused {
		text += fmt.Sprintf(" of %d", tab.Stored)
	}
	if r, ok := f.AbsoluteSelectionRank(); ok {
		text += fmt.Sprintf("  selected %d", r+1)
	}
	text += fmt.Sprintf("  %d read", f.Ingested)
	if f.Mode == state.Paused {
		text += "  paused"
	}
	return text
}
