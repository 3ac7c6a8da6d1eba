package buffer

import (
	"fmt"
	"reflect"
	"testing"
)

func seqs(lines []Line) []uint64 {
	out := make([]uint64, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Seq)
	}
	return out
}

func fill(r *Ring, from, to uint64) {
	for i := from; i < to; i++ {
		r.Append(Line{Seq: i, Text: fmt.Sprintf("line %d", i)})
	}
}

func TestRing_KeepsNewestOnOverflow(t *testing.T) {
	r := New(3)
	fill(r, 0, 5)

	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3", r.Len())
	}
	if got := seqs(r.Range(0, r.Len())); !reflect.DeepEqual(got, []uint64{2, 3, 4}) {
		t.Fatalf("Range = %v, want [2 3 4]", got)
	}
	if r.Total() != 5 || r.Evicted() != 2 {
		t.Fatalf("Total/Evicted = %d/%d, want 5/2", r.Total(), r.Evicted())
	}
}

func TestRing_AppendReportsEviction(t *testing.T) {
	r := New(2)
	if r.Append(Line{Seq: 0}) {
		t.Fatalf("first append reported eviction")
	}
	if r.Append(Line{Seq: 1}) {
		t.Fatalf("second append reported eviction")
	}
	if !r.Append(Line{Seq: 2}) {
		t.Fatalf("append past capacity did not report eviction")
	}
}

func TestRing_NeverExceedsCapacity(t *testing.T) {
	r := New(DefaultCapacity)
	for i := uint64(0); i < 3*DefaultCapacity+17; i++ {
		r.Append(Line{Seq: i})
		if r.Len() > DefaultCapacity {
			t.Fatalf("Len = %d after %d appends, want <= %d", r.Len(), i+1, DefaultCapacity)
		}
	}
	first := r.At(0).Seq
	last := r.At(r.Len() - 1).Seq
	if want := uint64(2*DefaultCapacity + 17); first != want {
		t.Fatalf("oldest seq = %d, want %d", first, want)
	}
	if want := uint64(3*DefaultCapacity + 16); last != want {
		t.Fatalf("newest seq = %d, want %d", last, want)
	}
}

func TestRing_DefaultCapacity(t *testing.T) {
	if got := New(0).Cap(); got != DefaultCapacity {
		t.Fatalf("Cap = %d, want %d", got, DefaultCapacity)
	}
	if got := New(-4).Cap(); got != DefaultCapacity {
		t.Fatalf("Cap = %d, want %d", got, DefaultCapacity)
	}
}

func TestRing_RangeAndTail(t *testing.T) {
	r := New(5)
	fill(r, 10, 17) // retains 12..16

	tests := []struct {
		name string
		got  []Line
		want []uint64
	}{
		{"full range", r.Range(0, 5), []uint64{12, 13, 14, 15, 16}},
		{"clamped range", r.Range(-3, 99), []uint64{12, 13, 14, 15, 16}},
		{"middle", r.Range(1, 3), []uint64{13, 14}},
		{"empty", r.Range(3, 3), []uint64{}},
		{"tail 2", r.Tail(2), []uint64{15, 16}},
		{"tail more than len", r.Tail(50), []uint64{12, 13, 14, 15, 16}},
		{"tail zero", r.Tail(0), []uint64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := seqs(tt.got); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("seqs = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRing_RangeReturnsCopy(t *testing.T) {
	r := New(3)
	fill(r, 0, 3)

	out := r.Range(0, 3)
	out[0].Text = "mutated"
	if r.At(0).Text != "line 0" {
		t.Fatalf("Range should copy; At(0).Text = %q", r.At(0).Text)
	}
}

func TestRing_Search(t *testing.T) {
	r := New(10)
	for _, s := range []uint64{1, 3, 7, 9} {
		r.Append(Line{Seq: s})
	}

	tests := []struct {
		seq   uint64
		limit int
		want  int
	}{
		{0, 4, 0},
		{1, 4, 0},
		{2, 4, 1},
		{7, 4, 2},
		{8, 4, 3},
		{10, 4, 4},
		{8, 2, 2},
		{8, 99, 3},
		{8, -1, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("seq%d_limit%d", tt.seq, tt.limit), func(t *testing.T) {
			if got := r.Search(tt.seq, tt.limit); got != tt.want {
				t.Fatalf("Search(%d, %d) = %d, want %d", tt.seq, tt.limit, got, tt.want)
			}
		})
	}
}

func TestRing_ContainsAfterEviction(t *testing.T) {
	r := New(2)
	fill(r, 0, 4)

	if r.Contains(1) {
		t.Fatalf("Contains(1) = true after eviction, want false")
	}
	if !r.Contains(3) {
		t.Fatalf("Contains(3) = false, want true")
	}
}
