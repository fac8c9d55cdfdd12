package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/directory"
)

// truncate shortens a string to the given limit, adding an ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// fit truncates then pads value to exactly width display cells.
func fit(value string, width int) string {
	return padRight(truncate(value, width), width)
}

// padRight pads a string with spaces to the given display width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// sortArrow marks the active sort direction.
func sortArrow(order directory.SortOrder) string {
	if order == directory.Descending {
		return "▼"
	}
	return "▲"
}

func sortLabel(key directory.SortKey) string {
	switch key {
	case directory.SortByEmail:
		return "Email"
	case directory.SortByAge:
		return "Age"
	default:
		return "Name"
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
