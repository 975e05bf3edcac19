package ebitenslider

import (
	"bytes"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui/render"
)

const (
	trackThickness = 4
	labelSize      = 14
	// LabelHeight is the space a host reserves above a horizontal slider
	// (or below a vertical one) for its labels.
	LabelHeight = labelSize + 6
)

var (
	faceOnce sync.Once
	face     *text.GoTextFace
	faceErr  error
)

// labelFace loads the embedded Go font once.
func labelFace() (*text.GoTextFace, error) {
	faceOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			faceErr = err
			return
		}
		face = &text.GoTextFace{Source: src, Size: labelSize}
	})
	return face, faceErr
}

// Label returns the formatted current value.
func (s *Slider) Label() string {
	return render.Value(s.engine.Value(), s.engine.Range())
}

// thumbCenter returns the thumb center in screen pixels.
func (s *Slider) thumbCenter() (float32, float32) {
	pos := float32(s.engine.Position() + float64(s.opts.ThumbRadius))
	if s.opts.Orientation == slider.Vertical {
		return float32(s.rect.Min.X) + float32(s.rect.Dx())/2, float32(s.rect.Min.Y) + pos
	}
	return float32(s.rect.Min.X) + pos, float32(s.rect.Min.Y) + float32(s.rect.Dy())/2
}

// Draw renders the track, the fill up to the thumb, the thumb and the
// labels.
func (s *Slider) Draw(dst *ebiten.Image) {
	if s.rect.Empty() {
		return
	}
	fill, thumb := s.fill, s.thumb
	if s.opts.Disabled {
		fill, thumb = s.disabled, s.disabled
	} else if s.engine.Dragging() {
		thumb = fill
	}

	cx, cy := s.thumbCenter()
	x0, y0 := float32(s.rect.Min.X), float32(s.rect.Min.Y)
	x1, y1 := float32(s.rect.Max.X), float32(s.rect.Max.Y)
	mirrored := (s.opts.Orientation == slider.Vertical) != s.opts.Inverted

	if s.opts.Orientation == slider.Vertical {
		tx := cx - trackThickness/2
		vector.DrawFilledRect(dst, tx, y0, trackThickness, y1-y0, s.track, true)
		if mirrored {
			vector.DrawFilledRect(dst, tx, cy, trackThickness, y1-cy, fill, true)
		} else {
			vector.DrawFilledRect(dst, tx, y0, trackThickness, cy-y0, fill, true)
		}
	} else {
		ty := cy - trackThickness/2
		vector.DrawFilledRect(dst, x0, ty, x1-x0, trackThickness, s.track, true)
		if mirrored {
			vector.DrawFilledRect(dst, cx, ty, x1-cx, trackThickness, fill, true)
		} else {
			vector.DrawFilledRect(dst, x0, ty, cx-x0, trackThickness, fill, true)
		}
	}
	vector.DrawFilledCircle(dst, cx, cy, float32(s.opts.ThumbRadius), thumb, true)

	s.drawLabels(dst)
}

func (s *Slider) drawLabels(dst *ebiten.Image) {
	f, err := labelFace()
	if err != nil {
		return
	}
	clr := color.Color(s.thumb)
	if s.opts.Disabled {
		clr = s.disabled
	}
	value := s.Label()

	if s.opts.Orientation == slider.Vertical {
		// Name and value stacked under the track.
		y := float64(s.rect.Max.Y + s.opts.ThumbRadius)
		drawText(dst, render.Sanitize(s.name), f, float64(s.rect.Min.X), y, clr)
		drawText(dst, value, f, float64(s.rect.Min.X), y+LabelHeight, clr)
		return
	}

	y := float64(s.rect.Min.Y - LabelHeight)
	drawText(dst, render.Sanitize(s.name), f, float64(s.rect.Min.X), y, clr)
	w, _ := text.Measure(value, f, 0)
	drawText(dst, value, f, float64(s.rect.Max.X)-w, y, clr)
}

func drawText(dst *ebiten.Image, str string, f text.Face, x, y float64, clr color.Color) {
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, f, opts)
}
