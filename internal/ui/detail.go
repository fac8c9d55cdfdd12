package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/directory"
)

// detailEmployee resolves the record the detail overlay is showing.
func (m Model) detailEmployee() (directory.Employee, bool) {
	return m.snapshot.Employee(m.detailID)
}

func (m *Model) openDetail() {
	if m.snapshot.Loading {
		return
	}
	emp, ok := m.selectedEmployee()
	if !ok {
		return
	}
	m.detailID = emp.ID
	m.overlay = overlayDetail
	m.updateDetailViewport()
	m.detail.GotoTop()
}

func (m *Model) updateDetailViewport() {
	emp, ok := m.detailEmployee()
	if !ok {
		m.detail.SetContent("")
		return
	}
	m.detail.SetContent(m.detailContent(emp))
}

// detailContent lists every attribute of emp, read-only.
func (m Model) detailContent(emp directory.Employee) string {
	styles := m.theme.Styles()
	label := styles.FaintText.Width(13)

	rows := []struct{ name, value string }{
		{"Email", emp.Email},
		{"Phone", emp.Phone},
		{"City", emp.City},
		{"Country", emp.Country},
		{"Age", fmt.Sprintf("%d", emp.Age)},
		{"Gender", emp.Gender},
		{"Nationality", emp.Nationality},
		{"Avatar", emp.AvatarURL},
		{"ID", emp.ID},
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(emp.DisplayName()))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(emp.Location()))
	b.WriteString("\n\n")
	for _, r := range rows {
		value := r.value
		if strings.TrimSpace(value) == "" {
			value = "-"
		}
		b.WriteString(label.Render(r.name))
		b.WriteString(styles.Text.Render(value))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderDetail renders the detail overlay with the action hints underneath.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()

	hints := []string{
		m.hint(m.keys.Edit),
		m.hint(m.keys.Flag),
		m.hint(m.keys.Delete),
		styles.AccentText.Render("esc") + styles.MutedText.Render(":Close"),
	}
	if emp, ok := m.detailEmployee(); ok && m.snapshot.Pending.Active() && m.snapshot.Pending.ID == emp.ID {
		hints = append([]string{m.spinner.View() + " " + styles.WarningText.Render(pendingLabel(m.snapshot.Pending.Kind))}, hints...)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.detail.View(),
		"",
		strings.Join(hints, "  "),
	)
	return m.placeModal(content, 0)
}
