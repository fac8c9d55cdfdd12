package ui

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/randomuser"
	"github.com/five82/roster/internal/state"
)

// renderHeader renders the status bar: page, counts, sort, view and search.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	snap := m.snapshot
	compact := m.width < LayoutCompactWidth

	page := "-"
	if snap.Page > 0 {
		page = fmt.Sprintf("%d/%d", snap.Page, snap.TotalPages())
	}

	// Held records belong to the previous page until the load lands.
	shown, held := "-", "-"
	if !snap.Loading {
		shown, held = fmt.Sprintf("%d", len(m.visible)), fmt.Sprintf("%d", len(snap.Employees))
	}

	parts := []string{
		bg.Render("roster", styles.Logo),
		bg.Render("Page", styles.FaintText) + bg.Spaces(1) + bg.Render(page, styles.Text),
		bg.Render(shown, styles.AccentText) +
			bg.Render(" of "+held+" shown", styles.MutedText),
	}

	sortText := sortLabel(snap.Key) + " " + sortArrow(snap.Order)
	if !compact {
		parts = append(parts,
			bg.Render("Sort", styles.FaintText)+bg.Spaces(1)+bg.Render(sortText, styles.Text))
	}
	parts = append(parts, bg.Render(viewLabel(snap.View), styles.InfoText))

	if term := strings.TrimSpace(snap.Search); term != "" && !m.searching {
		parts = append(parts, bg.Render("/"+truncate(term, 18), styles.AccentText))
	}
	if snap.ActionsDisabled() {
		pending := snap.Pending
		parts = append(parts,
			bg.Render(m.spinner.View(), styles.WarningText)+bg.Spaces(1)+
				bg.Render(pendingLabel(pending.Kind), styles.WarningText))
	}
	if !snap.LastUpdated.IsZero() && !compact {
		parts = append(parts, bg.Render(snap.LastUpdated.Local().Format("15:04:05"), styles.FaintText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderCommandBar renders the command hints. Disabled triggers are dimmed.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	colon := bg.Sep(":")

	bindings := []key.Binding{m.keys.Search, m.keys.PrevPage, m.keys.NextPage, m.keys.ToggleView}
	if m.snapshot.View == state.TableView {
		bindings = append(bindings, sortBinding())
	}
	bindings = append(bindings, m.keys.Detail, m.keys.Menu, m.keys.Edit, m.keys.Flag, m.keys.Delete, m.keys.Activity, m.keys.Help)

	segments := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		keyStyle, descStyle := styles.AccentText, styles.MutedText
		if !b.Enabled() {
			keyStyle, descStyle = styles.FaintText.Faint(true), styles.FaintText.Faint(true)
		}
		segments = append(segments, bg.Render(h.Key, keyStyle)+colon+bg.Render(h.Desc, descStyle))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	// Drop trailing hints rather than wrap onto a second row.
	gap := bg.Spaces(2)
	room := m.width - 2
	line := ""
	for _, seg := range segments {
		candidate := seg
		if line != "" {
			candidate = line + gap + seg
		}
		if lipgloss.Width(candidate) > room {
			break
		}
		line = candidate
	}
	return styles.Header.Width(m.width).Render(line)
}

// renderBanner shows the last action failure until dismissed.
func (m Model) renderBanner() string {
	err := m.snapshot.ActionError
	if err == nil {
		return ""
	}
	bg := NewBgStyle(m.theme.Danger)
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Background)).Bold(true)
	content := bg.Render(truncate(err.Error(), max(m.width-24, 10)), text) +
		bg.Spaces(2) + bg.Render("x to dismiss", text.Bold(false))
	return bg.FillLine(" "+content, m.width)
}

func sortBinding() key.Binding {
	return key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1/2/3", "Sort"))
}

func viewLabel(v state.ViewMode) string {
	if v == state.GridView {
		return "Grid"
	}
	return "Table"
}

func pendingLabel(kind state.ActionKind) string {
	switch kind {
	case state.ActionFlag:
		return "Flagging..."
	case state.ActionDelete:
		return "Deleting..."
	default:
		return "Editing..."
	}
}

func loadingLabel(page int) string {
	if page <= 0 {
		return "Loading employees..."
	}
	return fmt.Sprintf("Loading page %d...", page)
}

// pageErrorMessage turns a fetch failure into the single line shown in place
// of the directory.
func pageErrorMessage(err error) string {
	const prefix = "Failed to load employees: "
	var statusErr *randomuser.StatusError
	var schemaErr *randomuser.SchemaError
	var netErr net.Error
	switch {
	case errors.As(err, &statusErr):
		return prefix + fmt.Sprintf("server returned HTTP %d", statusErr.StatusCode)
	case errors.As(err, &schemaErr):
		return prefix + "unexpected response (" + schemaErr.Error() + ")"
	case errors.As(err, &netErr) && netErr.Timeout():
		return prefix + "request timed out"
	case errors.As(err, &netErr):
		return prefix + "directory service unreachable"
	default:
		return prefix + err.Error()
	}
}
