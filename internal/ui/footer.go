package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderFooter shows the page position on the left and the latest toast on
// the right.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	pageText := m.pager.View()
	if m.snapshot.Page == 0 {
		pageText = fmt.Sprintf("Page - of %d", m.snapshot.TotalPages())
	}
	left := bg.Render(pageText, styles.MutedText)

	right := ""
	if n, ok := m.snapshot.LatestNotice(m.now(), m.noticeTTL); ok {
		msg := truncate(n.Message, max(m.width-lipgloss.Width(left)-6, 0))
		right = bg.Render(msg, styles.NoticeStyle(n.Level))
	}

	gap := max(m.width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return styles.Header.Width(m.width).Render(left + bg.Spaces(gap) + right)
}
