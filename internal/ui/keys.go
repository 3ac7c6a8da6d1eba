package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the viewer.
type keyMap struct {
	// Tabs
	NextTab key.Binding
	JumpTab key.Binding

	// Lines
	Pause          key.Binding
	SelectMiddle   key.Binding
	ClearSelection key.Binding
	Copy           key.Binding

	// General
	Help       key.Binding
	CycleTheme key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		JumpTab: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "jump to tab"),
		),

		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/resume"),
		),
		SelectMiddle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "select middle line"),
		),
		ClearSelection: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "clear selection"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy selection"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "cycle theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Pause, k.SelectMiddle, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.JumpTab},
		{k.Pause, k.SelectMiddle, k.ClearSelection, k.Copy},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

// tabDigit returns the tab index for a digit key, or -1.
func tabDigit(s string) int {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return -1
	}
	return int(s[0] - '0')
}
