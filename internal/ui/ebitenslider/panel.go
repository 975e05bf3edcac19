package ebitenslider

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/llehouerou/rangeslider/internal/slider"
)

const (
	margin       = 24
	rowHeight    = 2 * DefaultThumbRadius
	rowSpacing   = LabelHeight + 16
	columnWidth  = 80
	verticalFoot = 2*LabelHeight + DefaultThumbRadius
)

// Panel lays out a set of sliders and routes pointer input to them. Only
// one slider owns the pointer at a time.
type Panel struct {
	Sliders []*Slider
	input   Input
	screen  image.Rectangle
}

// NewPanel creates a panel reading from the device pointer.
func NewPanel(sliders []*Slider) *Panel {
	return NewPanelWithInput(sliders, DeviceInput{})
}

// NewPanelWithInput creates a panel with a custom pointer source.
func NewPanelWithInput(sliders []*Slider, input Input) *Panel {
	return &Panel{Sliders: sliders, input: input}
}

// Resize places horizontal sliders in rows at the top and vertical sliders
// in columns below them.
func (p *Panel) Resize(width, height int) {
	p.screen = image.Rect(0, 0, width, height)

	y := margin + LabelHeight
	for _, s := range p.Sliders {
		if s.Orientation() != slider.Horizontal {
			continue
		}
		s.SetRect(image.Rect(margin, y, max(margin+1, width-margin), y+rowHeight))
		y += rowHeight + rowSpacing
	}

	x := margin
	bottom := max(y+1, height-margin-verticalFoot)
	for _, s := range p.Sliders {
		if s.Orientation() == slider.Horizontal {
			continue
		}
		s.SetRect(image.Rect(x, y, x+rowHeight, bottom))
		x += columnWidth
	}
}

// Update polls the pointer and hands it to the sliders. A dragging slider
// keeps the pointer until it is released.
func (p *Panel) Update() {
	x, y, pressed := p.input.Pointer()
	for _, s := range p.Sliders {
		if s.Dragging() {
			s.Handle(x, y, pressed, p.screen)
			p.syncPressed(pressed)
			return
		}
	}
	owned := false
	for _, s := range p.Sliders {
		if owned {
			s.wasPressed = pressed
			continue
		}
		owned = s.Handle(x, y, pressed, p.screen)
	}
}

// syncPressed keeps every slider's edge detection current.
func (p *Panel) syncPressed(pressed bool) {
	for _, s := range p.Sliders {
		s.wasPressed = pressed
	}
}

// Draw renders every slider.
func (p *Panel) Draw(dst *ebiten.Image) {
	for _, s := range p.Sliders {
		s.Draw(dst)
	}
}
