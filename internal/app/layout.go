package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rangeslider/internal/ui/layout"
)

// Layout constants.
const (
	titleHeight  = 1
	statusHeight = 1
	focusMarker  = "› "
	verticalGap  = 2
)

// layout distributes the window between the horizontal panel, the
// vertical panel and the footer.
func (m *Model) layout() {
	horizontal, vertical := m.orientationGroups()

	width := layout.HorizontalWidth(m.Width, lipgloss.Width(focusMarker))
	for _, i := range horizontal {
		m.Sliders[i].SetSize(width, 1)
	}

	if len(vertical) == 0 {
		return
	}
	content := layout.ContentHeight(m.Height, layout.ContentOpts{
		TitleHeight:  titleHeight,
		StatusHeight: statusHeight,
		HelpHeight:   lipgloss.Height(m.Help.View(m.Keys)),
	})
	height := layout.VerticalHeight(content, len(horizontal))
	for _, i := range vertical {
		m.Sliders[i].SetSize(0, height)
	}
}
