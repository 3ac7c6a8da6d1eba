package ui

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/streamtabs/internal/state"
)

// viewport decides which of count lines to draw in a body of height rows.
// It returns the index of the first line, how many lines are drawn and the
// body row of the first one. Live views stick to the newest lines at the
// bottom; a paused view with a selection centres it where possible.
func viewport(count, height, rank int, paused bool) (start, visible, firstRow int) {
	visible = min(count, height)
	if visible <= 0 {
		return 0, 0, 0
	}

	if paused && rank >= 0 && rank < count {
		half := height / 2
		start = max(rank-half, 0)
		start = min(start, count-visible)

		selectedRow := rank - start
		firstRow = max(half-selectedRow, 0)
		firstRow = min(firstRow, height-visible)
		return start, visible, firstRow
	}

	return count - visible, visible, height - visible
}

// renderBody draws the focused tab into height rows and records which line
// sits on which row.
func (m Model) renderBody(height int) ([]string, []*state.RenderedLine) {
	rows := make([]string, height)
	lineRows := make([]*state.RenderedLine, height)
	if height <= 0 {
		return rows, lineRows
	}

	f := m.frame
	start, visible, firstRow := viewport(len(f.Lines), height, f.SelectionRank, f.Mode == state.Paused)
	styles := m.theme.Styles()

	for i := 0; i < visible; i++ {
		line := f.Lines[start+i]
		row := firstRow + i
		if line.Selected {
			plain := sanitize(ansi.Strip(line.Text))
			rows[row] = styles.Selected.Render(clip(plain, m.width))
		} else {
			rows[row] = clipANSI(sanitize(line.Text), m.width)
		}
		lineRows[row] = &f.Lines[start+i]
	}
	return rows, lineRows
}

// middleLine returns the line drawn in the middle of the body, if any.
func middleLine(lineRows []*state.RenderedLine) (state.RenderedLine, bool) {
	var shown []*state.RenderedLine
	for _, l := range lineRows {
		if l != nil {
			shown = append(shown, l)
		}
	}
	if len(shown) == 0 {
		return state.RenderedLine{}, false
	}
	return *shown[len(shown)/2], true
}
