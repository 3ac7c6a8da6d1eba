package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	for _, name := range names {
		if !HasTheme(name) {
			t.Fatalf("HasTheme(%q) = false", name)
		}
	}
	if HasTheme("Dracula") {
		t.Fatalf("HasTheme(Dracula) = true, want false")
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct {
		current, want string
	}{
		{"Nightfox", "Kanagawa"},
		{"Kanagawa", "Slate"},
		{"Slate", "Nightfox"},
		{"Unknown", "Nightfox"},
	}
	for _, tt := range tests {
		if got := NextTheme(tt.current); got != tt.want {
			t.Fatalf("NextTheme(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q, want Slate", got)
	}
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestThemesDefineEveryColor(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		colors := map[string]string{
			"Background":  th.Background,
			"Surface":     th.Surface,
			"Border":      th.Border,
			"BorderFocus": th.BorderFocus,
			"Text":        th.Text,
			"Muted":       th.Muted,
			"Faint":       th.Faint,
			"Accent":      th.Accent,
			"Highlight":   th.Highlight,
			"Warning":     th.Warning,
			"Danger":      th.Danger,
		}
		for field, value := range colors {
			if value == "" {
				t.Fatalf("%s theme has empty %s", name, field)
			}
		}
	}
}
