package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/directory"
)

// gridColumns is the number of cards that fit side by side.
func gridColumns(width int) int {
	return max(width/CardWidth, 1)
}

// renderGrid lays the visible records out as cards, scrolling by whole rows
// to keep the selection on screen.
func (m Model) renderGrid(width, height int) string {
	cols := gridColumns(width)
	rowsOnScreen := max(height/CardHeight, 1)
	selectedRow := m.selected / cols

	firstRow := 0
	if selectedRow >= rowsOnScreen {
		firstRow = selectedRow - rowsOnScreen + 1
	}

	var rows []string
	for r := firstRow; r < firstRow+rowsOnScreen; r++ {
		start := r * cols
		if start >= len(m.visible) {
			break
		}
		end := min(start+cols, len(m.visible))
		cards := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(m.visible[i], i == m.selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, body,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)))
}

func (m Model) renderCard(emp directory.Employee, selected bool) string {
	bgColor := m.theme.SurfaceAlt
	border := m.theme.Border
	if selected {
		bgColor = m.theme.FocusBg
		border = m.theme.BorderFocus
	}
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)
	inner := CardWidth - 4

	nameStyle := styles.Text.Bold(true)
	prefix := ""
	if m.snapshot.Pending.Active() && m.snapshot.Pending.ID == emp.ID {
		prefix = m.spinner.View() + " "
		nameStyle = styles.WarningText.Bold(true)
	}

	lines := []string{
		prefix + bg.Render(truncate(emp.DisplayName(), inner-lipgloss.Width(prefix)), nameStyle),
		bg.Render(truncate(emp.Email, inner), styles.AccentText),
		bg.Render(truncate(emp.Location(), inner), styles.MutedText),
		bg.Render(fmt.Sprintf("Age %d", emp.Age), styles.FaintText),
	}
	for i, line := range lines {
		lines[i] = bg.FillLine(line, inner)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(m.theme.Background)).
		Background(lipgloss.Color(bgColor)).
		Padding(0, 1).
		Width(CardWidth - 2).
		Render(strings.Join(lines, "\n"))
}
