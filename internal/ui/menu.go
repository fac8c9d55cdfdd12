package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/roster/internal/state"
)

func (m *Model) openMenu() {
	if _, ok := m.selectedEmployee(); !ok {
		return
	}
	m.menuIndex = 0
	m.overlay = overlayMenu
}

// renderMenu renders the action menu for the selected record. Items are
// dimmed while any action is in flight or a page is loading.
func (m Model) renderMenu() string {
	styles := m.theme.Styles()
	emp, ok := m.selectedEmployee()
	if !ok {
		return m.placeModal(styles.MutedText.Render("No employee selected"), 0)
	}

	disabled := m.snapshot.ActionsBlocked()
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(truncate(emp.DisplayName(), 30)))
	b.WriteString("\n\n")

	for i, kind := range state.ActionKinds {
		label := fit(kind.Title(), 12) + m.actionBinding(kind).Help().Key
		line := "  " + label
		style := styles.Text
		switch {
		case disabled:
			style = styles.FaintText.Faint(true)
		case i == m.menuIndex:
			line = "› " + label
			style = styles.Selected
		case kind == state.ActionDelete:
			style = styles.DangerText.Bold(false)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("enter:Run  esc:Close"))

	return m.placeModal(b.String(), 28)
}

// actionBinding returns the shortcut bound to kind.
func (m Model) actionBinding(kind state.ActionKind) key.Binding {
	switch kind {
	case state.ActionFlag:
		return m.keys.Flag
	case state.ActionDelete:
		return m.keys.Delete
	default:
		return m.keys.Edit
	}
}

// hint renders "key:Desc", dimmed when the binding is disabled.
func (m Model) hint(b key.Binding) string {
	styles := m.theme.Styles()
	h := b.Help()
	if !b.Enabled() {
		dim := styles.FaintText.Faint(true)
		return dim.Render(h.Key + ":" + h.Desc)
	}
	return styles.AccentText.Render(h.Key) + styles.MutedText.Render(":"+h.Desc)
}
