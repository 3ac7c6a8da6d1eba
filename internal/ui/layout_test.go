package ui

import (
	"reflect"
	"testing"

	"github.com/five82/streamtabs/internal/state"
)

func TestViewport(t *testing.T) {
	tests := []struct {
		name                  string
		count, height, rank   int
		paused                bool
		start, visible, first int
	}{
		{"empty", 0, 10, -1, false, 0, 0, 0},
		{"no body", 5, 0, -1, false, 0, 0, 0},
		{"short live is bottom anchored", 3, 10, -1, false, 0, 3, 7},
		{"long live shows the tail", 50, 10, -1, false, 40, 10, 0},
		{"live ignores selection", 50, 10, 5, false, 40, 10, 0},
		{"paused centres selection", 20, 10, 10, true, 5, 10, 0},
		{"paused selection near top", 20, 10, 2, true, 0, 10, 0},
		{"paused selection near bottom", 20, 10, 18, true, 10, 10, 0},
		{"paused short content centres", 3, 10, 1, true, 0, 3, 4},
		{"paused short content clamps", 8, 10, 0, true, 0, 8, 2},
		{"paused without selection", 20, 10, -1, true, 10, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, visible, first := viewport(tt.count, tt.height, tt.rank, tt.paused)
			if start != tt.start || visible != tt.visible || first != tt.first {
				t.Fatalf("viewport(%d, %d, %d, %v) = (%d, %d, %d), want (%d, %d, %d)",
					tt.count, tt.height, tt.rank, tt.paused,
					start, visible, first, tt.start, tt.visible, tt.first)
			}
		})
	}
}

func TestMiddleLine(t *testing.T) {
	a := &state.RenderedLine{Seq: 1, Text: "a"}
	b := &state.RenderedLine{Seq: 2, Text: "b"}
	c := &state.RenderedLine{Seq: 3, Text: "c"}

	if _, ok := middleLine([]*state.RenderedLine{nil, nil}); ok {
		t.Fatalf("middleLine of empty rows reported a line")
	}
	got, ok := middleLine([]*state.RenderedLine{nil, a, b, c})
	if !ok || got.Seq != 2 {
		t.Fatalf("middleLine = %+v %v, want seq 2", got, ok)
	}
	got, _ = middleLine([]*state.RenderedLine{a, b})
	if got.Seq != 2 {
		t.Fatalf("middleLine of two = seq %d, want 2", got.Seq)
	}
}

func tabInfos(labels ...string) []state.TabInfo {
	out := make([]state.TabInfo, len(labels))
	for i, l := range labels {
		kind := state.KindFilter
		if i == 0 {
			kind = state.KindAll
		}
		out[i] = state.TabInfo{Index: i, Label: l, Kind: kind}
	}
	return out
}

func hitboxes(boxes []tabBox) []tabHitbox {
	out := make([]tabHitbox, len(boxes))
	for i, b := range boxes {
		out[i] = b.hitbox
	}
	return out
}

func TestLayoutTabs(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		width  int
		paused bool
		want   []tabHitbox
	}{
		{
			name:   "all fit",
			labels: []string{state.AllLabel, "foo"},
			width:  80,
			want:   []tabHitbox{{0, 0, 18}, {1, 20, 36}},
		},
		{
			name:   "paused label reserves room",
			labels: []string{state.AllLabel, "foo"},
			width:  30,
			paused: true,
			want:   []tabHitbox{{0, 0, 18}},
		},
		{
			name:   "last tab narrowed",
			labels: []string{state.AllLabel, "a-very-long-filter"},
			width:  30,
			want:   []tabHitbox{{0, 0, 18}, {1, 20, 29}},
		},
		{
			name:   "too narrow for any tab",
			labels: []string{state.AllLabel},
			width:  2,
			want:   []tabHitbox{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hitboxes(layoutTabs(tabInfos(tt.labels...), tt.width, tt.paused))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("layoutTabs = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLayoutTabs_NarrowedTitleKeepsWidth(t *testing.T) {
	boxes := layoutTabs(tabInfos(state.AllLabel, "a-very-long-filter"), 40, false)
	if len(boxes) != 2 {
		t.Fatalf("got %d boxes, want 2", len(boxes))
	}
	b := boxes[1]
	if b.inner != 18 {
		t.Fatalf("inner = %d, want 18", b.inner)
	}
	if b.title != " a-v... " {
		t.Fatalf("title = %q, want %q", b.title, " a-v... ")
	}
}

func TestTabAt(t *testing.T) {
	boxes := layoutTabs(tabInfos(state.AllLabel, "foo"), 80, false)
	tests := []struct {
		x      int
		want   int
		wantOK bool
	}{
		{0, 0, true},
		{18, 0, true},
		{19, 0, false},
		{20, 1, true},
		{36, 1, true},
		{37, 0, false},
	}
	for _, tt := range tests {
		got, ok := tabAt(boxes, tt.x)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Fatalf("tabAt(%d) = %d %v, want %d %v", tt.x, got, ok, tt.want, tt.wantOK)
		}
	}
}
