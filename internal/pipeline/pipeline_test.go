package pipeline

import "testing"

func TestShouldSignal(t *testing.T) {
	tests := []struct {
		name   string
		self   int
		parent int
		want   bool
	}{
		{"own group", 200, 100, true},
		{"shared with parent", 100, 100, false},
		{"unknown self", 0, 100, false},
		{"unknown parent", 200, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldSignal(tt.self, tt.parent); got != tt.want {
				t.Fatalf("shouldSignal(%d, %d) = %v, want %v", tt.self, tt.parent, got, tt.want)
			}
		})
	}
}
