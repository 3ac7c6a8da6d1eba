package state

import (
	"strings"

	"github.com/five82/streamtabs/internal/buffer"
)

// TabKind distinguishes the unfiltered tab from filter tabs.
type TabKind int

const (
	KindAll TabKind = iota
	KindFilter
)

// AllLabel is the label shown for tab 0.
const AllLabel = "(all)"

type tab struct {
	kind    TabKind
	pattern string
	buf     *buffer.Ring

	// seen is the number of appended lines (buffer.Total) the user has viewed.
	seen uint64
	// cutoff is buffer.Total at the moment of the last pause.
	cutoff uint64
}

func newTab(kind TabKind, pattern string, capacity int) *tab {
	return &tab{kind: kind, pattern: pattern, buf: buffer.New(capacity)}
}

func (t *tab) label() string {
	if t.kind == KindAll {
		return AllLabel
	}
	return t.pattern
}

func (t *tab) matches(text string) bool {
	if t.kind == KindAll {
		return true
	}
	return strings.Contains(text, t.pattern)
}

func (t *tab) unread() uint64 {
	return t.buf.Total() - t.seen
}

// markSeen advances the read mark; it never moves backwards.
func (t *tab) markSeen(through uint64) {
	if through > t.buf.Total() {
		through = t.buf.Total()
	}
	if through > t.seen {
		t.seen = through
	}
}

// visibleLen returns how many of the oldest retained lines may be rendered.
func (t *tab) visibleLen(mode Mode) int {
	n := t.buf.Len()
	if mode == Live {
		return n
	}
	evicted := t.buf.Evicted()
	if t.cutoff <= evicted {
		return 0
	}
	if v := int(t.cutoff - evicted); v < n {
		return v
	}
	return n
}
