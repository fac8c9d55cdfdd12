package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/roster/internal/state"
)

// startSearch focuses the search box, seeded with the current term.
func (m *Model) startSearch() tea.Cmd {
	m.searching = true
	m.search.SetValue(m.snapshot.Search)
	m.search.CursorEnd()
	return m.search.Focus()
}

// handleSearchKey feeds the search box and filters live. Enter keeps the
// term, esc clears it.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.dispatch(state.SetSearch{Term: ""})
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.dispatch(state.SetSearch{Term: m.search.Value()})
	return m, cmd
}

func (m Model) renderSearch() string {
	bg := NewBgStyle(m.theme.SurfaceAlt)
	m.search.Width = max(m.width-4, 10)
	return bg.FillLine(" "+m.search.View(), m.width)
}
