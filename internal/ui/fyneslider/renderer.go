package fyneslider

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/llehouerou/rangeslider/internal/slider"
)

const trackThickness = float32(4)

type renderer struct {
	s     *Slider
	track *canvas.Rectangle
	fill  *canvas.Rectangle
	thumb *canvas.Circle
	objs  []fyne.CanvasObject
}

func newRenderer(s *Slider) *renderer {
	r := &renderer{
		s:     s,
		track: canvas.NewRectangle(s.track),
		fill:  canvas.NewRectangle(s.fill),
		thumb: canvas.NewCircle(s.thumb),
	}
	r.objs = []fyne.CanvasObject{r.track, r.fill, r.thumb}
	return r
}

// thumbCenter returns the thumb center along the track axis.
func (r *renderer) thumbCenter() float32 {
	return float32(r.s.padding() + r.s.engine.Position() + float64(r.s.opts.ThumbRadius))
}

func (r *renderer) Layout(sz fyne.Size) {
	radius := r.s.opts.ThumbRadius
	c := r.thumbCenter()
	mirrored := (r.s.opts.Orientation == slider.Vertical) != r.s.opts.Inverted

	if r.s.opts.Orientation == slider.Vertical {
		x := (sz.Width - trackThickness) / 2
		r.track.Move(fyne.NewPos(x, 0))
		r.track.Resize(fyne.NewSize(trackThickness, sz.Height))
		if mirrored {
			r.fill.Move(fyne.NewPos(x, c))
			r.fill.Resize(fyne.NewSize(trackThickness, max(0, sz.Height-c)))
		} else {
			r.fill.Move(fyne.NewPos(x, 0))
			r.fill.Resize(fyne.NewSize(trackThickness, max(0, c)))
		}
		r.thumb.Move(fyne.NewPos(sz.Width/2-radius, c-radius))
	} else {
		y := (sz.Height - trackThickness) / 2
		r.track.Move(fyne.NewPos(0, y))
		r.track.Resize(fyne.NewSize(sz.Width, trackThickness))
		if mirrored {
			r.fill.Move(fyne.NewPos(c, y))
			r.fill.Resize(fyne.NewSize(max(0, sz.Width-c), trackThickness))
		} else {
			r.fill.Move(fyne.NewPos(0, y))
			r.fill.Resize(fyne.NewSize(max(0, c), trackThickness))
		}
		r.thumb.Move(fyne.NewPos(c-radius, sz.Height/2-radius))
	}
	r.thumb.Resize(fyne.NewSize(radius*2, radius*2))
}

func (r *renderer) MinSize() fyne.Size { return r.s.MinSize() }

func (r *renderer) Refresh() {
	fill, thumb := r.s.fill, r.s.thumb
	if r.s.opts.Disabled {
		fill, thumb = r.s.disabled, r.s.disabled
	} else if r.s.engine.Dragging() {
		thumb = fill
	}
	r.fill.FillColor = fill
	r.thumb.FillColor = thumb

	r.Layout(r.s.Size())
	canvas.Refresh(r.track)
	canvas.Refresh(r.fill)
	canvas.Refresh(r.thumb)
}

func (r *renderer) Destroy() {}

func (r *renderer) Objects() []fyne.CanvasObject { return r.objs }
