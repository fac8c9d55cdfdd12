package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/directory"
	"github.com/five82/roster/internal/state"
)

// handleKey routes a key to the search box, the open overlay or the
// directory, in that order.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch m.overlay {
	case overlayHelp:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Any key closes help
		m.overlay = overlayNone
		return m, nil
	case overlayDetail:
		return m.handleDetailKey(msg)
	case overlayMenu:
		return m.handleMenuKey(msg)
	case overlayActivity:
		return m.handleActivityKey(msg)
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.overlay = overlayHelp

	case key.Matches(msg, k.CycleTheme):
		m.setTheme(GetTheme(NextTheme(m.theme.Name)))
		m.savePrefs()

	case key.Matches(msg, k.Activity):
		return m, m.openActivity()

	case key.Matches(msg, k.Escape):
		if m.snapshot.Search != "" {
			m.search.SetValue("")
			m.dispatch(state.SetSearch{Term: ""})
		} else {
			m.dispatch(state.DismissActionError{})
		}

	case key.Matches(msg, k.Search):
		return m, m.startSearch()

	case key.Matches(msg, k.PrevPage):
		return m, m.requestPage(m.snapshot.Page-1, false)

	case key.Matches(msg, k.NextPage):
		return m, m.requestPage(m.snapshot.Page+1, false)

	case key.Matches(msg, k.Reload):
		return m, m.requestPage(max(m.snapshot.Page, 1), true)

	case key.Matches(msg, k.ToggleView):
		m.dispatch(state.ToggleView{})
		m.savePrefs()

	case key.Matches(msg, k.SortName, k.SortEmail, k.SortAge):
		// Sort headers exist only in the table.
		if m.snapshot.View != state.TableView {
			return m, nil
		}
		m.dispatch(state.ToggleSort{Key: sortKeyFor(msg, k)})
		m.savePrefs()

	case key.Matches(msg, k.Detail):
		m.openDetail()

	case key.Matches(msg, k.Menu):
		m.openMenu()

	case key.Matches(msg, k.Edit, k.Flag, k.Delete):
		emp, ok := m.selectedEmployee()
		if !ok {
			return m, nil
		}
		return m, m.startAction(actionKindFor(msg, k), emp)

	case key.Matches(msg, k.Dismiss):
		m.dispatch(state.DismissActionError{})

	case key.Matches(msg, k.Up):
		m.moveSelection(-m.rowStep())
	case key.Matches(msg, k.Down):
		m.moveSelection(m.rowStep())
	case key.Matches(msg, k.Left):
		if m.snapshot.View == state.GridView {
			m.moveSelection(-1)
		}
	case key.Matches(msg, k.Right):
		if m.snapshot.View == state.GridView {
			m.moveSelection(1)
		}
	case key.Matches(msg, k.Top):
		m.selected = 0
	case key.Matches(msg, k.Bottom):
		m.selected = max(len(m.visible)-1, 0)
	}

	return m, nil
}

// handleDetailKey scrolls the detail overlay and runs the record shortcuts.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case msg.String() == "esc", msg.String() == "enter", msg.String() == "backspace":
		m.overlay = overlayNone
		return m, nil
	case key.Matches(msg, k.Edit, k.Flag, k.Delete):
		emp, ok := m.detailEmployee()
		if !ok {
			return m, nil
		}
		return m, m.startAction(actionKindFor(msg, k), emp)
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// handleMenuKey moves within the action menu. Triggers are ignored while an
// action is in flight or a page is loading.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case msg.String() == "esc", msg.String() == "a":
		m.overlay = overlayNone
	case key.Matches(msg, k.Up):
		m.menuIndex = (m.menuIndex + len(state.ActionKinds) - 1) % len(state.ActionKinds)
	case key.Matches(msg, k.Down):
		m.menuIndex = (m.menuIndex + 1) % len(state.ActionKinds)
	case key.Matches(msg, k.Confirm):
		return m, m.runMenuAction(state.ActionKinds[m.menuIndex])
	case key.Matches(msg, k.Edit, k.Flag, k.Delete):
		return m, m.runMenuAction(actionKindFor(msg, k))
	}
	return m, nil
}

func (m *Model) runMenuAction(kind state.ActionKind) tea.Cmd {
	if m.snapshot.ActionsBlocked() {
		return nil
	}
	emp, ok := m.selectedEmployee()
	if !ok {
		return nil
	}
	m.overlay = overlayNone
	return m.startAction(kind, emp)
}

func (m *Model) moveSelection(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.selected = clampInt(m.selected+delta, 0, len(m.visible)-1)
}

// rowStep is how far up and down move: one row in the table, one row of
// cards in the grid.
func (m Model) rowStep() int {
	if m.snapshot.View == state.GridView {
		return gridColumns(m.width)
	}
	return 1
}

func (m *Model) setTheme(theme Theme) {
	m.theme = theme
	m.help = newHelp(theme)
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	if m.overlay == overlayDetail {
		m.updateDetailViewport()
	}
}

func sortKeyFor(msg tea.KeyMsg, k keyMap) directory.SortKey {
	switch {
	case key.Matches(msg, k.SortEmail):
		return directory.SortByEmail
	case key.Matches(msg, k.SortAge):
		return directory.SortByAge
	default:
		return directory.SortByName
	}
}

func actionKindFor(msg tea.KeyMsg, k keyMap) state.ActionKind {
	switch {
	case key.Matches(msg, k.Flag):
		return state.ActionFlag
	case key.Matches(msg, k.Delete):
		return state.ActionDelete
	default:
		return state.ActionEdit
	}
}
