package ebitenslider

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Input reports the primary pointer once per frame. Tests substitute a
// scripted implementation.
type Input interface {
	Pointer() (x, y int, pressed bool)
}

// DeviceInput reads the first active touch, falling back to the mouse.
type DeviceInput struct{}

// Pointer implements Input.
func (DeviceInput) Pointer() (int, int, bool) {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return x, y, true
	}
	x, y := ebiten.CursorPosition()
	return x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}
