// Package fyneslider hosts the slider engine as a Fyne widget. Pointer
// coordinates are widget-local, so the track is measured from the widget
// size alone.
package fyneslider

import (
	"errors"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/llehouerou/rangeslider/internal/diag"
	"github.com/llehouerou/rangeslider/internal/errmsg"
	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui/styles"
)

const (
	// DefaultThumbRadius is the thumb radius in device-independent pixels.
	DefaultThumbRadius = 8
	minTrackLength     = 120
)

// Options configures a Slider.
type Options struct {
	Range       slider.Range
	Orientation slider.Orientation
	Mode        slider.Mode
	Inverted    bool
	Disabled    bool
	Color       string
	Palette     bool
	ThumbRadius float32
	OnChange    slider.ChangeFunc
}

// Slider is a Fyne range slider.
type Slider struct {
	widget.BaseWidget

	name   string
	opts   Options
	engine *slider.Slider
	rec    *diag.Recorder

	fill, track, thumb, disabled color.Color
}

var (
	_ fyne.Widget       = (*Slider)(nil)
	_ fyne.Draggable    = (*Slider)(nil)
	_ desktop.Mouseable = (*Slider)(nil)
	_ desktop.Hoverable = (*Slider)(nil)
)

// New creates a slider widget.
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
	s.ExtendBaseWidget(s)
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

// SetValue syncs an external value and redraws.
func (s *Slider) SetValue(v float64) error {
	if err := s.engine.Sync(v); err != nil {
		return err
	}
	s.Refresh()
	return nil
}

// SetDisabled enables or disables pointer input.
func (s *Slider) SetDisabled(disabled bool) {
	s.opts.Disabled = disabled
	s.engine.SetDisabled(disabled)
	s.Refresh()
}

// padding keeps the thumb inside the widget at both track ends.
func (s *Slider) padding() float64 {
	return float64(s.opts.ThumbRadius)
}

// TrackBounds implements slider.Geometry.
func (s *Slider) TrackBounds(o slider.Orientation) slider.Bounds {
	size := s.Size()
	length := float64(size.Width)
	if o == slider.Vertical {
		length = float64(size.Height)
	}
	pad := s.padding()
	if length <= 2*pad {
		return slider.Bounds{Start: pad, End: pad}
	}
	return slider.Bounds{Start: pad, End: length - pad}
}

// ThumbOffset implements slider.Geometry.
func (s *Slider) ThumbOffset() float64 { return 0 }

// Resize repositions the thumb for the new track length.
func (s *Slider) Resize(size fyne.Size) {
	s.BaseWidget.Resize(size)
	s.engine.Relayout()
	s.Refresh()
}

// MinSize keeps a usable track and room for the thumb.
func (s *Slider) MinSize() fyne.Size {
	thick := 2*s.opts.ThumbRadius + 4
	if s.opts.Orientation == slider.Vertical {
		return fyne.NewSize(thick, minTrackLength)
	}
	return fyne.NewSize(minTrackLength, thick)
}

func pointerAt(p fyne.Position) slider.Pointer {
	return slider.At(float64(p.X), float64(p.Y))
}

// MouseDown starts a drag on the primary button.
func (s *Slider) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	s.rec.Record(s.name, errmsg.OpPointerDown, s.engine.PointerDown(pointerAt(ev.Position)))
	s.Refresh()
}

// MouseUp ends the drag.
func (s *Slider) MouseUp(*desktop.MouseEvent) {
	s.release()
}

// Dragged follows the pointer while the button is held.
func (s *Slider) Dragged(ev *fyne.DragEvent) {
	s.move(ev.Position)
}

// DragEnd ends the drag.
func (s *Slider) DragEnd() {
	s.release()
}

// MouseIn implements desktop.Hoverable.
func (s *Slider) MouseIn(*desktop.MouseEvent) {}

// MouseMoved follows the pointer during a drag.
func (s *Slider) MouseMoved(ev *desktop.MouseEvent) {
	s.move(ev.Position)
}

// MouseOut ends a drag when the pointer leaves the widget.
func (s *Slider) MouseOut() {
	s.release()
}

func (s *Slider) move(p fyne.Position) {
	if !s.engine.Dragging() {
		return
	}
	err := s.engine.PointerMove(pointerAt(p))
	if !errors.Is(err, slider.ErrOutOfBounds) {
		s.rec.Record(s.name, errmsg.OpPointerMove, err)
	}
	s.Refresh()
}

func (s *Slider) release() {
	if !s.engine.Dragging() {
		return
	}
	s.engine.PointerUp()
	s.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (s *Slider) CreateRenderer() fyne.WidgetRenderer {
	return newRenderer(s)
}
