// Package layout provides pure functions for UI dimension calculations.
package layout

import "github.com/llehouerou/rangeslider/internal/ui"

// MinVerticalTrack is the smallest height given to a vertical slider,
// labels included.
const MinVerticalTrack = ui.VerticalOverhead + ui.MinTrackLength

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	TitleHeight  int
	StatusHeight int
	HelpHeight   int // 0 if help is hidden
}

// ContentHeight calculates the available height for the slider panels.
// This is the terminal height minus title, status line and help.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.TitleHeight
	height -= opts.StatusHeight
	height -= opts.HelpHeight
	return height
}

// HorizontalPanelHeight returns the height of the bordered panel holding
// count one-row sliders. An empty panel is not drawn.
func HorizontalPanelHeight(count int) int {
	if count == 0 {
		return 0
	}
	return count + ui.BorderHeight
}

// HorizontalWidth returns the width available to a horizontal slider row
// (name, track and value) inside the panel, after the focus marker.
func HorizontalWidth(windowWidth, markerWidth int) int {
	return max(0, windowWidth-ui.BorderWidth-markerWidth)
}

// VerticalHeight returns the height given to each vertical slider. The
// panel sits below the horizontal one and spends a row on focus markers.
func VerticalHeight(contentHeight, horizontalCount int) int {
	height := contentHeight
	height -= HorizontalPanelHeight(horizontalCount)
	height -= ui.BorderHeight
	height-- // focus marker row
	return max(height, MinVerticalTrack)
}
