package state

// Selection is the single line pinned across all tabs.
type Selection struct {
	Seq  uint64
	Text string
}

// Select pins the line with sequence seq. Selecting the already selected
// sequence clears the selection instead. It reports whether a line is
// selected afterwards.
func (s *Store) Select(seq uint64, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.version++
	if s.selection != nil && s.selection.Seq == seq {
		s.selection = nil
		return false
	}
	s.selection = &Selection{Seq: seq, Text: text}
	return true
}

// ClearSelection removes the selection. It reports whether one existed.
func (s *Store) ClearSelection() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selection == nil {
		return false
	}
	s.selection = nil
	s.version++
	return true
}

// Selection returns the current selection, if any.
func (s *Store) Selection() (Selection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selection == nil {
		return Selection{}, false
	}
	return *s.selection, true
}

// selectionRetainedLocked reports whether the selected line is still stored
// in at least one tab. A selection whose line was evicted everywhere is kept
// but never rendered.
func (s *Store) selectionRetainedLocked() bool {
	if s.selection == nil {
		return false
	}
	for _, t := range s.tabs {
		if t.buf.Contains(s.selection.Seq) {
			return true
		}
	}
	return false
}
