package state

// RenderedLine is one line of the focused tab as it should be displayed.
type RenderedLine struct {
	Seq      uint64
	Text     string
	Selected bool
}

// TabInfo summarizes one tab for the tab bar.
type TabInfo struct {
	Index  int
	Label  string
	Kind   TabKind
	Unread uint64
	Stored int
}

// FrameOptions limit how much of the focused tab a frame copies.
type FrameOptions struct {
	// Tail caps Lines to the newest Tail entries while live. It is ignored
	// while paused because the whole snapshot is needed to centre the
	// selection. Zero copies everything.
	Tail int
}

// Frame is an immutable copy of everything a render pass needs.
type Frame struct {
	Tabs    []TabInfo
	Focused int
	Mode    Mode

	// Lines is the visible window of the focused tab with the selection
	// merged in at its chronological position.
	Lines []RenderedLine
	// Offset is the number of visible lines that precede Lines[0].
	Offset int
	// Visible is the size of the whole visible window including Offset.
	Visible int
	// SelectionRank is the index in Lines of the selected line, or -1.
	SelectionRank int

	Selection    Selection
	HasSelection bool

	Ingested uint64
	Ended    bool
	EndErr   error
	Version  uint64
}

// Frame copies the current view of the focused tab.
func (s *Store) Frame(opts FrameOptions) Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f := Frame{
		Tabs:          make([]TabInfo, len(s.tabs)),
		Focused:       s.focused,
		Mode:          s.mode,
		SelectionRank: -1,
		Ingested:      s.nextSeq,
		Ended:         s.ended,
		EndErr:        s.endErr,
		Version:       s.version,
	}
	for i, t := range s.tabs {
		f.Tabs[i] = TabInfo{
			Index:  i,
			Label:  t.label(),
			Kind:   t.kind,
			Unread: t.unread(),
			Stored: t.buf.Len(),
		}
	}
	if s.selection != nil {
		f.Selection = *s.selection
		f.HasSelection = true
	}

	t := s.tabs[s.focused]
	n := t.visibleLen(s.mode)

	// rank is the selection's position in the merged window; inject is set
	// when the selected line is not part of this tab and must be merged in.
	rank, inject, show := -1, false, false
	if s.selectionRetainedLocked() {
		rank = t.buf.Search(s.selection.Seq, n)
		inject = rank >= n || t.buf.At(rank).Seq != s.selection.Seq
		show = true
	}

	total := n
	if inject {
		total++
	}
	start := 0
	if s.mode == Live && opts.Tail > 0 && total > opts.Tail {
		start = total - opts.Tail
	}

	f.Offset = start
	f.Visible = total
	f.Lines = make([]RenderedLine, 0, total-start)
	for p := start; p < total; p++ {
		switch {
		case show && p == rank:
			if inject {
				f.Lines = append(f.Lines, RenderedLine{Seq: s.selection.Seq, Text: s.selection.Text, Selected: true})
			} else {
				l := t.buf.At(p)
				f.Lines = append(f.Lines, RenderedLine{Seq: l.Seq, Text: l.Text, Selected: true})
			}
		case inject && p > rank:
			l := t.buf.At(p - 1)
			f.Lines = append(f.Lines, RenderedLine{Seq: l.Seq, Text: l.Text})
		default:
			l := t.buf.At(p)
			f.Lines = append(f.Lines, RenderedLine{Seq: l.Seq, Text: l.Text})
		}
	}
	if show && rank >= start {
		f.SelectionRank = rank - start
	}
	return f
}

// AbsoluteSelectionRank returns the position of the selected line in the whole
// visible window of the focused tab.
func (f Frame) AbsoluteSelectionRank() (int, bool) {
	if f.SelectionRank < 0 {
		return 0, false
	}
	return f.Offset + f.SelectionRank, true
}
