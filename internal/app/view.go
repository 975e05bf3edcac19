package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/rangeslider/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	t := styles.T()
	horizontal, vertical := m.orientationGroups()

	sections := []string{t.S().Title.Render("rangeslider")}

	if len(horizontal) > 0 {
		rows := make([]string, 0, len(horizontal))
		active := false
		for _, i := range horizontal {
			marker := strings.Repeat(" ", lipgloss.Width(focusMarker))
			if i == m.Focus {
				marker = focusMarker
			}
			active = active || m.Sliders[i].Dragging()
			rows = append(rows, marker+m.Sliders[i].View())
		}
		sections = append(sections, styles.PanelStyle(active).Render(
			lipgloss.JoinVertical(lipgloss.Left, rows...),
		))
	}

	if len(vertical) > 0 {
		cols := make([]string, 0, len(vertical))
		active := false
		gap := strings.Repeat(" ", verticalGap)
		for n, i := range vertical {
			marker := " "
			if i == m.Focus {
				marker = "▾"
			}
			active = active || m.Sliders[i].Dragging()
			if n > 0 {
				cols = append(cols, gap)
			}
			cols = append(cols, lipgloss.JoinVertical(lipgloss.Center, marker, m.Sliders[i].View()))
		}
		sections = append(sections, styles.PanelStyle(active).Render(
			lipgloss.JoinHorizontal(lipgloss.Top, cols...),
		))
	}

	sections = append(sections, m.statusView(), m.Help.View(m.Keys))
	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) statusView() string {
	s := styles.T().S()
	if m.Status == "" {
		return s.Subtle.Render("drag a slider or press tab")
	}
	if m.StatusErr {
		status := m.Status
		if m.Diag != nil && m.Diag.Dropped() > 0 {
			status += " (+" + humanize.Comma(m.Diag.Dropped()) + " dropped)"
		}
		return s.Error.Render(status)
	}
	return s.Success.Render(m.Status)
}
