package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/streamtabs/internal/state"
)

const (
	headerRows   = 3
	pausedLabel  = " (paused)"
	numberWidth  = 3 // " N "
	trailingSlot = 1
	fixedInner   = numberWidth + unreadSlot + trailingSlot
)

// tabHitbox is the inclusive column span of one tab box.
type tabHitbox struct {
	index       int
	left, right int
}

// tabBox describes one tab as laid out in the header.
type tabBox struct {
	hitbox tabHitbox
	inner  int    // columns between the borders
	title  string // fitted label, exactly inner-fixedInner wide (or empty)
}

// layoutTabs places tab boxes left to right within width columns. Tabs that
// do not fit at all are dropped; the last one may be narrowed. While paused,
// room is kept for the paused label.
func layoutTabs(tabs []state.TabInfo, width int, paused bool) []tabBox {
	limit := width
	if paused {
		limit -= len(pausedLabel)
	}

	var boxes []tabBox
	x := 0
	for i, tab := range tabs {
		if x >= limit {
			break
		}
		remaining := limit - x
		if remaining < 3 {
			break
		}
		label := sanitize(tab.Label)
		desired := fixedInner + lipgloss.Width(label) + 2
		inner := min(desired, remaining-2)
		if inner <= 0 {
			break
		}
		right := x + inner + 1
		boxes = append(boxes, tabBox{
			hitbox: tabHitbox{index: i, left: x, right: right},
			inner:  inner,
			title:  fitTabTitle(label, inner-fixedInner),
		})
		x = right + 2
	}
	return boxes
}

// tabAt returns the tab whose box spans column x.
func tabAt(boxes []tabBox, x int) (int, bool) {
	for _, b := range boxes {
		if x >= b.hitbox.left && x <= b.hitbox.right {
			return b.hitbox.index, true
		}
	}
	return 0, false
}

// renderHeader draws the tab boxes and the paused label as three rows.
func (m Model) renderHeader(boxes []tabBox) []string {
	styles := m.theme.Styles()
	f := m.frame

	parts := make([]string, 0, 2*len(boxes)+1)
	gapBlock := strings.Join([]string{" ", " ", " "}, "\n")
	right := -1
	for i, b := range boxes {
		tab := f.Tabs[b.hitbox.index]
		box := styles.TabBox
		if tab.Index == f.Focused {
			box = styles.TabBoxFocused
		}

		titleStyle := styles.Text
		if tab.Kind == state.KindAll {
			titleStyle = styles.MutedText
		}

		var content strings.Builder
		remaining := b.inner
		writeClipped(&content, &remaining, " "+strconv.Itoa(tab.Index)+" ", styles.MutedText)
		writeClipped(&content, &remaining, b.title, titleStyle)
		writeClipped(&content, &remaining, formatUnreadSlot(tab.Unread), styles.AccentText)
		writeClipped(&content, &remaining, " ", lipgloss.NewStyle())
		content.WriteString(strings.Repeat(" ", remaining))

		if i > 0 {
			parts = append(parts, gapBlock)
		}
		parts = append(parts, box.Render(content.String()))
		right = b.hitbox.right
	}

	if f.Mode == state.Paused {
		start := right + 1
		if start < m.width {
			label := styles.MutedText.Render(clip(pausedLabel, m.width-start))
			parts = append(parts, strings.Join([]string{"", label, ""}, "\n"))
		}
	}

	if len(parts) == 0 {
		return make([]string, headerRows)
	}
	rows := strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, parts...), "\n")
	for len(rows) < headerRows {
		rows = append(rows, "")
	}
	return rows[:headerRows]
}

// writeClipped appends as much of text as still fits in remaining columns.
func writeClipped(b *strings.Builder, remaining *int, text string, style lipgloss.Style) {
	if *remaining <= 0 || text == "" {
		return
	}
	shown := clip(text, *remaining)
	if shown == "" {
		return
	}
	b.WriteString(style.Render(shown))
	*remaining -= lipgloss.Width(shown)
}
