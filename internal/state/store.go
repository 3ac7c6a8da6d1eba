package state

import (
	"errors"
	"fmt"
	"sync"

	"github.com/five82/streamtabs/internal/buffer"
)

// MaxFilters is the number of filter tabs that fit next to tab 0.
const MaxFilters = 9

var (
	ErrNoFilters      = errors.New("at least one filter is required")
	ErrTooManyFilters = fmt.Errorf("at most %d filters are supported", MaxFilters)
	ErrEmptyFilter    = errors.New("filters must not be empty")
)

// Mode is the process-wide display mode.
type Mode int

const (
	Live Mode = iota
	Paused
)

func (m Mode) String() string {
	if m == Paused {
		return "paused"
	}
	return "live"
}

// Options configure a Store.
type Options struct {
	Filters  []string
	Capacity int // per-tab line limit; zero uses buffer.DefaultCapacity
}

// Store owns every piece of state shared between ingestion and the UI: tab
// buffers, unread marks, the display mode, focus and the selection.
type Store struct {
	mu sync.RWMutex

	tabs      []*tab
	nextSeq   uint64
	mode      Mode
	focused   int
	selection *Selection

	ended   bool
	endErr  error
	version uint64

	quitOnce sync.Once
	done     chan struct{}
}

// New builds a store with tab 0 plus one tab per filter.
func New(opts Options) (*Store, error) {
	if len(opts.Filters) == 0 {
		return nil, ErrNoFilters
	}
	if len(opts.Filters) > MaxFilters {
		return nil, ErrTooManyFilters
	}

	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = buffer.DefaultCapacity
	}

	tabs := make([]*tab, 0, len(opts.Filters)+1)
	tabs = append(tabs, newTab(KindAll, "", capacity))
	for _, f := range opts.Filters {
		if f == "" {
			return nil, ErrEmptyFilter
		}
		tabs = append(tabs, newTab(KindFilter, f, capacity))
	}

	return &Store{tabs: tabs, done: make(chan struct{})}, nil
}

// Ingest assigns the next sequence number to text and appends it to every
// matching tab. The returned line is the one stored.
func (s *Store) Ingest(text string) buffer.Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := buffer.Line{Seq: s.nextSeq, Text: text}
	s.nextSeq++

	for i, t := range s.tabs {
		if !t.matches(text) {
			continue
		}
		t.buf.Append(line)
		// The focused tab is on screen while live, so its new tail is read.
		if i == s.focused && s.mode == Live {
			t.markSeen(t.buf.Total())
		}
	}
	s.version++
	return line
}

// MarkEnded records that the line source is exhausted. err is nil for a clean
// end of stream.
func (s *Store) MarkEnded(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ended = true
	s.endErr = err
	s.version++
}

// Pause freezes every tab at its current length in one step.
func (s *Store) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pauseLocked()
}

// Unpause drops all snapshots and returns to the live tail.
func (s *Store) Unpause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unpauseLocked()
}

// TogglePause switches between Live and Paused and returns the new mode.
func (s *Store) TogglePause() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == Live {
		s.pauseLocked()
	} else {
		s.unpauseLocked()
	}
	return s.mode
}

func (s *Store) pauseLocked() {
	if s.mode == Paused {
		return
	}
	s.mode = Paused
	for _, t := range s.tabs {
		t.cutoff = t.buf.Total()
	}
	s.tabs[s.focused].markSeen(s.tabs[s.focused].cutoff)
	s.version++
}

func (s *Store) unpauseLocked() {
	if s.mode == Live {
		return
	}
	s.mode = Live
	for _, t := range s.tabs {
		t.cutoff = 0
	}
	focused := s.tabs[s.focused]
	focused.markSeen(focused.buf.Total())
	s.version++
}

// Focus moves focus to tab i and marks what is visible there as read.
// Out-of-range indexes are ignored and reported as false.
func (s *Store) Focus(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focusLocked(i)
}

// CycleFocus moves focus to the next tab, wrapping to tab 0.
func (s *Store) CycleFocus() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.focusLocked((s.focused + 1) % len(s.tabs))
	return s.focused
}

func (s *Store) focusLocked(i int) bool {
	if i < 0 || i >= len(s.tabs) {
		return false
	}
	s.focused = i
	t := s.tabs[i]
	if s.mode == Paused {
		t.markSeen(t.cutoff)
	} else {
		t.markSeen(t.buf.Total())
	}
	s.version++
	return true
}

// Done is closed once a Quit intent has been applied.
func (s *Store) Done() <-chan struct{} {
	return s.done
}

func (s *Store) quit() {
	s.quitOnce.Do(func() { close(s.done) })
}

// Version changes whenever anything a frame depends on changes.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Mode returns the current display mode.
func (s *Store) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Focused returns the index of the focused tab.
func (s *Store) Focused() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.focused
}

// TabCount returns the number of tabs including tab 0.
func (s *Store) TabCount() int {
	return len(s.tabs)
}

// Unread returns the unread count of tab i, or zero for an unknown tab.
func (s *Store) Unread(i int) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.tabs) {
		return 0
	}
	return s.tabs[i].unread()
}

// Lines copies every line stored for tab i, oldest first.
func (s *Store) Lines(i int) []buffer.Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.tabs) {
		return nil
	}
	b := s.tabs[i].buf
	return b.Range(0, b.Len())
}

// VisibleLen returns how many stored lines of tab i the current mode allows
// to be shown.
func (s *Store) VisibleLen(i int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.tabs) {
		return 0
	}
	return s.tabs[i].visibleLen(s.mode)
}

// Ended reports whether the line source is exhausted and the error, if any,
// that ended it.
func (s *Store) Ended() (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ended, s.endErr
}
