// Package ebitenslider hosts the slider engine in an Ebitengine game. A
// Slider owns a screen rectangle, measures its track from it and turns
// per-frame pointer samples into pointer down, move and up events.
package ebitenslider

import (
	"errors"
	"image"
	"image/color"

	"github.com/llehouerou/rangeslider/internal/diag"
	"github.com/llehouerou/rangeslider/internal/errmsg"
	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui/styles"
)

// DefaultThumbRadius is the thumb radius in pixels.
const DefaultThumbRadius = 8

// Options configures a Slider.
type Options struct {
	Range       slider.Range
	Orientation slider.Orientation
	Mode        slider.Mode
	Inverted    bool
	Disabled    bool
	Color       string // named fill color or #rrggbb
	Palette     bool   // inverted palette
	ThumbRadius int
	// OnChange receives accepted value changes.
	OnChange slider.ChangeFunc
}

// Slider is an Ebitengine slider widget.
type Slider struct {
	name   string
	opts   Options
	rect   image.Rectangle
	engine *slider.Slider
	rec    *diag.Recorder

	wasPressed bool

	fill, track, thumb, disabled color.RGBA
}

// New creates a slider. Its rectangle is empty until SetRect is called.
func New(name string, opts Options, rec *diag.Recorder) (*Slider, error) {
	if opts.ThumbRadius <= 0 {
		opts.ThumbRadius = DefaultThumbRadius
	}
	s := &Slider{
		name:     name,
		opts:     opts,
		rec:      rec,
		fill:     styles.RGBA(styles.Fill(opts.Color, opts.Palette)),
		track:    styles.RGBA(styles.T().TrackColor(opts.Palette)),
		thumb:    styles.RGBA(styles.T().Thumb),
		disabled: styles.RGBA(styles.T().Disabled),
	}
	engine, err := slider.New(slider.Config{
		Range:          opts.Range,
		Orientation:    opts.Orientation,
		Mode:           opts.Mode,
		Inverted:       opts.Inverted,
		Disabled:       opts.Disabled,
		ThumbHalfWidth: float64(opts.ThumbRadius),
		OnChange:       opts.OnChange,
	}, s)
	if err != nil {
		return nil, err
	}
	s.engine = engine
	s.engine.Mount()
	return s, nil
}

// Name returns the slider name.
func (s *Slider) Name() string { return s.name }

// Value returns the current value.
func (s *Slider) Value() float64 { return s.engine.Value() }

// State returns the engine state.
func (s *Slider) State() slider.State { return s.engine.State() }

// Range returns the active range.
func (s *Slider) Range() slider.Range { return s.engine.Range() }

// Dragging reports whether a drag is in progress.
func (s *Slider) Dragging() bool { return s.engine.Dragging() }

// Orientation returns the track axis.
func (s *Slider) Orientation() slider.Orientation { return s.opts.Orientation }

// Rect returns the track rectangle.
func (s *Slider) Rect() image.Rectangle { return s.rect }

// SetRect moves the slider and repositions its thumb.
func (s *Slider) SetRect(r image.Rectangle) {
	s.rect = r
	s.engine.Relayout()
}

// SetDisabled enables or disables pointer input.
func (s *Slider) SetDisabled(disabled bool) {
	s.opts.Disabled = disabled
	s.engine.SetDisabled(disabled)
}

// SetValue syncs an external value.
func (s *Slider) SetValue(v float64) error {
	return s.engine.Sync(v)
}

// TrackBounds implements slider.Geometry. The track spans the rectangle
// along its axis, both end pixels included.
func (s *Slider) TrackBounds(o slider.Orientation) slider.Bounds {
	if s.rect.Empty() {
		return slider.Bounds{}
	}
	if o == slider.Vertical {
		return slider.Bounds{Start: float64(s.rect.Min.Y), End: float64(s.rect.Max.Y - 1)}
	}
	return slider.Bounds{Start: float64(s.rect.Min.X), End: float64(s.rect.Max.X - 1)}
}

// ThumbOffset implements slider.Geometry.
func (s *Slider) ThumbOffset() float64 { return 0 }

// hitRect is the rectangle grown by the thumb radius so the thumb can be
// grabbed at the track ends.
func (s *Slider) hitRect() image.Rectangle {
	return s.rect.Inset(-s.opts.ThumbRadius)
}

// Handle feeds one frame of pointer state. screen is the window bounds; a
// drag ends when the pointer leaves it. Handle reports whether the slider
// owns the pointer this frame.
func (s *Slider) Handle(x, y int, pressed bool, screen image.Rectangle) bool {
	justPressed := pressed && !s.wasPressed
	s.wasPressed = pressed
	pt := image.Pt(x, y)

	switch {
	case justPressed:
		if !pt.In(s.hitRect()) {
			return false
		}
		s.rec.Record(s.name, errmsg.OpPointerDown, s.engine.PointerDown(slider.At(float64(x), float64(y))))
		return s.engine.Dragging()

	case !s.engine.Dragging():
		return false

	case !pressed || !pt.In(screen):
		s.engine.PointerUp()
		return true

	default:
		err := s.engine.PointerMove(slider.At(float64(x), float64(y)))
		if !errors.Is(err, slider.ErrOutOfBounds) {
			s.rec.Record(s.name, errmsg.OpPointerMove, err)
		}
		return true
	}
}
