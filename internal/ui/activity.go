package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// openActivity shows the log overlay and loads the tail of the log file.
func (m *Model) openActivity() tea.Cmd {
	m.overlay = overlayActivity
	if m.logFile == "" {
		m.updateActivityViewport(nil)
		return nil
	}
	return readActivityCmd(m.logFile)
}

// updateActivityViewport replaces the overlay content, following the tail
// when the view was already at the bottom.
func (m *Model) updateActivityViewport(lines []string) {
	follow := m.activity.AtBottom() || m.activity.TotalLineCount() == 0
	styles := m.theme.Styles()

	var content string
	switch {
	case m.activityErr != nil:
		content = styles.DangerText.Render("Could not read log: " + m.activityErr.Error())
	case len(lines) == 0:
		content = styles.MutedText.Render("No activity yet")
	default:
		colored := make([]string, len(lines))
		for i, line := range lines {
			colored[i] = m.colorizeLogLine(line)
		}
		content = strings.Join(colored, "\n")
	}
	m.activity.SetContent(content)
	if follow {
		m.activity.GotoBottom()
	}
}

// colorizeLogLine tints a formatted entry by its level column, which is the
// first or second field depending on whether a timestamp was logged.
func (m Model) colorizeLogLine(line string) string {
	styles := m.theme.Styles()
	fields := strings.Fields(line)
	level := ""
	for _, f := range fields[:min(len(fields), 2)] {
		switch f {
		case "DEBUG", "INFO", "WARN", "ERROR", "DPANIC", "PANIC", "FATAL":
			level = f
		}
	}
	switch level {
	case "ERROR", "DPANIC", "PANIC", "FATAL":
		return styles.DangerText.Bold(false).Render(line)
	case "WARN":
		return styles.WarningText.Render(line)
	case "DEBUG":
		return styles.FaintText.Render(line)
	default:
		return styles.Text.Render(line)
	}
}

func (m Model) renderActivity() string {
	styles := m.theme.Styles()
	title := styles.Text.Bold(true).Render("Activity")
	if m.logFile != "" {
		title += "  " + styles.FaintText.Render(truncate(m.logFile, 60))
	}
	footer := styles.FaintText.Render("j/k:Scroll  esc:Close")
	return m.placeModal(lipgloss.JoinVertical(lipgloss.Left, title, "", m.activity.View(), "", footer), 0)
}

// handleActivityKey scrolls the overlay; esc or L closes it.
func (m Model) handleActivityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "L":
		m.overlay = overlayNone
		return m, nil
	case "ctrl+c", "q":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.activity, cmd = m.activity.Update(msg)
	return m, cmd
}
