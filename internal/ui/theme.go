package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors of the viewer.
type Theme struct {
	Name string

	Background string
	Surface    string

	Border      string // unfocused tab boxes
	BorderFocus string // focused tab box

	Text      string
	Muted     string
	Faint     string
	Accent    string // unread badges
	Highlight string // the selected line
	Warning   string
	Danger    string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Highlight)).
			Bold(true),

		TabBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)),

		TabBoxFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Selected      lipgloss.Style
	TabBox        lipgloss.Style
	TabBoxFocused lipgloss.Style
	Footer        lipgloss.Style
}

// HelpStyles styles the bubbles help view in the footer.
func (t Theme) HelpStyles() help.Styles {
	key := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning))
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
	sep := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint))
	return help.Styles{
		ShortKey:       key,
		ShortDesc:      desc,
		ShortSeparator: sep,
		Ellipsis:       sep,
		FullKey:        key,
		FullDesc:       desc,
		FullSeparator:  sep,
	}
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name, falling back to Nightfox.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// HasTheme reports whether name is a known theme.
func HasTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1

		Border:      "#39506d", // bg4
		BorderFocus: "#cdcecf", // fg1

		Text:      "#cdcecf", // fg1
		Muted:     "#738091", // comment
		Faint:     "#71839b", // fg3
		Accent:    "#63cdcf", // cyan
		Highlight: "#dbc074", // yellow
		Warning:   "#dbc074", // yellow
		Danger:    "#c94f6d", // red
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3

		Border:      "#54546D", // sumiInk6
		BorderFocus: "#DCD7BA", // fujiWhite

		Text:      "#DCD7BA", // fujiWhite
		Muted:     "#C8C093", // oldWhite
		Faint:     "#727169", // fujiGray
		Accent:    "#7FB4CA", // springBlue
		Highlight: "#E6C384", // carpYellow
		Warning:   "#E6C384", // carpYellow
		Danger:    "#E46876", // waveRed
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900

		Border:      "#334155", // slate-700
		BorderFocus: "#f1f5f9", // slate-100

		Text:      "#f1f5f9", // slate-100
		Muted:     "#94a3b8", // slate-400
		Faint:     "#64748b", // slate-500
		Accent:    "#06b6d4", // cyan-500
		Highlight: "#f59e0b", // amber-500
		Warning:   "#f59e0b", // amber-500
		Danger:    "#ef4444", // red-500
	}
}
