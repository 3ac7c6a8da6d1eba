package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// helpGroupTitles name the groups returned by keyMap.FullHelp, in order.
var helpGroupTitles = []string{"Tabs", "Lines", "General"}

// mouseHelp lists pointer actions, which have no key.Binding.
var mouseHelp = [][2]string{
	{"click tab", "focus tab"},
	{"click line", "select / unselect line"},
}

const helpKeyWidth = 12

// renderHelp draws the key reference centred over the screen. Its content
// comes from the key map, so rebinding a key updates the overlay too.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	keyStyle := styles.WarningText.Width(helpKeyWidth)

	row := func(k, desc string) string {
		return keyStyle.Render(k) + styles.Text.Render(desc)
	}

	var lines []string
	lines = append(lines,
		styles.Text.Bold(true).Render("Keyboard Shortcuts"),
		styles.FaintText.Render(strings.Repeat("─", 30)),
	)
	for i, group := range m.keys.FullHelp() {
		title := "Other"
		if i < len(helpGroupTitles) {
			title = helpGroupTitles[i]
		}
		lines = append(lines, "", styles.AccentText.Bold(true).Render(title))
		for _, b := range group {
			lines = append(lines, row(b.Help().Key, bindingDesc(b, m.theme.Name)))
		}
	}
	lines = append(lines, "", styles.AccentText.Bold(true).Render("Mouse"))
	for _, item := range mouseHelp {
		lines = append(lines, row(item[0], item[1]))
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(strings.Join(lines, "\n")),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// bindingDesc returns the help text of b, naming the current theme on the
// theme binding.
func bindingDesc(b key.Binding, theme string) string {
	desc := b.Help().Desc
	if desc == "cycle theme" {
		desc += " (" + theme + ")"
	}
	return desc
}
