package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/directory"
	"github.com/five82/roster/internal/state"
)

// column is one table column. Columns with flex share the leftover width.
type column struct {
	title    string
	width    int
	flex     bool
	sortable bool
	key      directory.SortKey
	value    func(directory.Employee) string
}

const rowMarkerWidth = 2

func tableColumns(width int) []column {
	name := column{title: "Name", flex: true, sortable: true, key: directory.SortByName, value: directory.Employee.DisplayName}
	email := column{title: "Email", flex: true, sortable: true, key: directory.SortByEmail, value: func(e directory.Employee) string { return e.Email }}
	phone := column{title: "Phone", width: 16, value: func(e directory.Employee) string { return e.Phone }}
	location := column{title: "Location", width: 22, value: directory.Employee.Location}
	age := column{title: "Age", width: 6, sortable: true, key: directory.SortByAge, value: func(e directory.Employee) string { return strconv.Itoa(e.Age) }}
	gender := column{title: "Gender", width: 8, value: func(e directory.Employee) string { return e.Gender }}
	nat := column{title: "Nat", width: 5, value: func(e directory.Employee) string { return e.Nationality }}

	var cols []column
	switch {
	case width < LayoutCompactWidth:
		cols = []column{name, email, location, age}
	case width < LayoutWideWidth:
		cols = []column{name, email, phone, location, age, nat}
	default:
		location.width = 28
		cols = []column{name, email, phone, location, age, gender, nat}
	}

	fixed, flexCount := rowMarkerWidth, 0
	for _, c := range cols {
		if c.flex {
			flexCount++
			continue
		}
		fixed += c.width + 1
	}
	remaining := max(width-fixed-flexCount, flexCount*8)
	for i := range cols {
		if cols[i].flex {
			cols[i].width = remaining / flexCount
		}
	}
	return cols
}

// renderTable renders the visible records as rows under a header. The window
// scrolls to keep the selection on screen.
func (m Model) renderTable(width, height int) string {
	styles := m.theme.Styles()
	cols := tableColumns(width)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	lines := []string{m.renderTableHeader(cols, width)}

	rows := max(height-1, 1)
	start := 0
	if m.selected >= rows {
		start = m.selected - rows + 1
	}
	end := min(start+rows, len(m.visible))

	for i := start; i < end; i++ {
		emp := m.visible[i]
		selected := i == m.selected
		pending := m.snapshot.Pending.Active() && m.snapshot.Pending.ID == emp.ID

		marker := "  "
		if pending {
			marker = m.spinner.View() + " "
		}
		cells := make([]string, 0, len(cols))
		for _, c := range cols {
			cells = append(cells, fit(c.value(emp), c.width))
		}
		text := strings.Join(cells, " ")

		switch {
		case selected:
			line := styles.Selected.Render(marker + text)
			lines = append(lines, lipgloss.NewStyle().Background(lipgloss.Color(m.theme.SelectionBg)).Width(width).Render(line))
		case pending:
			lines = append(lines, bg.FillLine(marker+bg.Render(text, styles.WarningText), width))
		default:
			lines = append(lines, bg.FillLine(bg.Spaces(rowMarkerWidth)+bg.Render(text, styles.Text), width))
		}
	}

	for len(lines) < height {
		lines = append(lines, bg.FillLine("", width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTableHeader(cols []column, width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	titles := headerTitles(cols, m.snapshot)
	cells := make([]string, 0, len(cols))
	for i, c := range cols {
		style := styles.MutedText.Bold(true)
		if c.sortable && c.key == m.snapshot.Key {
			style = styles.AccentText.Bold(true)
		}
		cells = append(cells, bg.Render(fit(titles[i], c.width), style))
	}
	return bg.FillLine(bg.Spaces(rowMarkerWidth)+strings.Join(cells, bg.Spaces(1)), width)
}

// headerTitles labels each column, marking the active sort key with its
// direction.
func headerTitles(cols []column, snap state.Snapshot) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		title := c.title
		if c.sortable && c.key == snap.Key {
			title += " " + sortArrow(snap.Order)
		}
		out = append(out, title)
	}
	return out
}
