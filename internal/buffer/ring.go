package buffer

import "sort"

// DefaultCapacity is the number of lines each tab keeps before evicting the oldest.
const DefaultCapacity = 5000

// Line is one ingested line tagged with its global sequence number.
type Line struct {
	Seq  uint64
	Text string
}

// Ring is a bounded FIFO of lines ordered by sequence number.
//
// Ring is not safe for concurrent use; callers serialize access (state.Engine
// holds its lock around every call).
type Ring struct {
	entries  []Line
	head     int // index of the oldest entry once the ring is full
	capacity int
	total    uint64
}

// New returns an empty ring holding at most capacity lines. A non-positive
// capacity falls back to DefaultCapacity.
func New(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{capacity: capacity}
}

// Cap returns the maximum number of retained lines.
func (r *Ring) Cap() int {
	return r.capacity
}

// Len returns the number of retained lines.
func (r *Ring) Len() int {
	return len(r.entries)
}

// Total returns how many lines were ever appended, including evicted ones.
func (r *Ring) Total() uint64 {
	return r.total
}

// Evicted returns how many lines were dropped to stay within capacity.
func (r *Ring) Evicted() uint64 {
	return r.total - uint64(len(r.entries))
}

// Append stores line as the newest entry, dropping the oldest one first when
// the ring is full. It reports whether an entry was evicted.
func (r *Ring) Append(line Line) bool {
	r.total++
	if len(r.entries) < r.capacity {
		r.entries = append(r.entries, line)
		return false
	}
	r.entries[r.head] = line
	r.head = (r.head + 1) % r.capacity
	return true
}

// At returns the i-th retained line, oldest first. It panics when i is out of range.
func (r *Ring) At(i int) Line {
	if i < 0 || i >= len(r.entries) {
		panic("buffer: index out of range")
	}
	return r.entries[(r.head+i)%len(r.entries)]
}

// Range copies the lines in [from, to), oldest first. Bounds are clamped.
func (r *Ring) Range(from, to int) []Line {
	if from < 0 {
		from = 0
	}
	if to > len(r.entries) {
		to = len(r.entries)
	}
	if from >= to {
		return nil
	}
	out := make([]Line, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, r.At(i))
	}
	return out
}

// Tail copies the newest n lines, oldest first.
func (r *Ring) Tail(n int) []Line {
	return r.Range(len(r.entries)-n, len(r.entries))
}

// Search returns the index of the first line among the oldest limit lines
// whose sequence is >= seq. The result is in [0, limit].
func (r *Ring) Search(seq uint64, limit int) int {
	if limit > len(r.entries) {
		limit = len(r.entries)
	}
	if limit < 0 {
		limit = 0
	}
	return sort.Search(limit, func(i int) bool {
		return r.At(i).Seq >= seq
	})
}

// Contains reports whether a line with sequence seq is still retained.
func (r *Ring) Contains(seq uint64) bool {
	i := r.Search(seq, len(r.entries))
	return i < len(r.entries) && r.At(i).Seq == seq
}
