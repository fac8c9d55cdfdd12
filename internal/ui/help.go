package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

func newHelp(theme Theme) help.Model {
	h := help.New()
	h.ShowAll = true
	h.FullSeparator = "   "
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warning))
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text))
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint))
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted))
	return h
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("Press any key to close"))

	return m.placeModal(b.String(), 0)
}

// placeModal centers content in a bordered box over the whole screen. A zero
// width lets the content decide.
func (m Model) placeModal(content string, width int) string {
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2)
	if width > 0 {
		modal = modal.Width(width)
	}

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
