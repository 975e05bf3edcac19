package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the border style for a slider panel. Active panels
// are the ones currently being dragged.
func PanelStyle(active bool) lipgloss.Style {
	border := T().Border
	if active {
		border = T().BorderActive
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}
