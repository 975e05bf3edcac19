// Package rangeslider provides a mouse-driven slider component for
// bubbletea programs. Rendering and hit testing live here; value mapping
// and the drag state machine are delegated to the slider package.
package rangeslider

import (
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui"
	"github.com/llehouerou/rangeslider/internal/ui/render"
)

// DefaultThumb is drawn when Options.Thumb is empty.
const DefaultThumb = "●"

// defaultLength is the track length used before the first SetSize.
const defaultLength = 20

// hitMargin lets a press land one cell past either end of the track.
const hitMargin = 1

// Options configures a slider component.
type Options struct {
	Range       slider.Range
	Orientation slider.Orientation
	Mode        slider.Mode
	Inverted    bool
	Disabled    bool

	Color    string // palette name or "#rrggbb"
	Palette  bool   // use the inverted palette
	Gradient bool   // fade the fill toward the minimum end
	Thumb    string

	// Length fixes the track length in cells. Zero derives it from the
	// size set with SetSize.
	Length int
	// NameWidth pads or truncates the name label so horizontal tracks
	// line up. Zero uses the name's own width.
	NameWidth int

	// Geometry replaces the bubblezone measurement, mostly for tests.
	Geometry Geometry
}

// Model is a terminal slider. Models are values; copies share the
// underlying drag engine.
type Model struct {
	ui.Base
	id     string
	opts   Options
	slider *slider.Slider
	geom   Geometry
	layout *trackLayout
	events *eventBuffer

	thumbWidth int
}

type trackLayout struct {
	length int
}

// eventBuffer collects change notifications raised while the engine
// handles one message.
type eventBuffer struct {
	changes []Changed
}

func (b *eventBuffer) onChange(v float64, meta slider.Meta) {
	b.changes = append(b.changes, Changed{Value: v, TriggeredByUser: meta.TriggeredByUser})
}

func (b *eventBuffer) take() []Changed {
	out := b.changes
	b.changes = nil
	return out
}

// New creates a slider identified by id. The id names the slider in
// emitted actions and labels it on screen.
func New(id string, opts Options) (Model, error) {
	if opts.Thumb == "" {
		opts.Thumb = DefaultThumb
	}

	m := Model{
		id:         id,
		opts:       opts,
		layout:     &trackLayout{length: defaultLength},
		events:     &eventBuffer{},
		thumbWidth: max(runewidth.StringWidth(opts.Thumb), 1),
	}
	if opts.Length > 0 {
		m.layout.length = opts.Length
	}

	m.geom = opts.Geometry
	if m.geom == nil {
		layout := m.layout
		m.geom = ZoneGeometry{
			id:          zone.NewPrefix() + id,
			orientation: opts.Orientation,
			margin:      hitMargin,
			length:      func() int { return layout.length },
		}
	}

	s, err := slider.New(slider.Config{
		Range:          opts.Range,
		Orientation:    opts.Orientation,
		Mode:           opts.Mode,
		Inverted:       opts.Inverted,
		Disabled:       opts.Disabled,
		ThumbHalfWidth: m.thumbHalfWidth(),
		OnChange:       m.events.onChange,
	}, m.geom)
	if err != nil {
		return Model{}, err
	}
	m.slider = s
	m.slider.Mount()
	return m, nil
}

// thumbHalfWidth centers wide thumbs on their value. Vertical thumbs
// occupy a single row.
func (m Model) thumbHalfWidth() float64 {
	if m.opts.Orientation == slider.Vertical {
		return 0
	}
	return float64((m.thumbWidth - 1) / 2)
}

// ID returns the slider id.
func (m Model) ID() string {
	return m.id
}

// ZoneID returns the bubblezone marker of the track, or "" when the
// geometry is not zone based.
func (m Model) ZoneID() string {
	if g, ok := m.geom.(ZoneGeometry); ok {
		return g.id
	}
	return ""
}

// Value returns the current value.
func (m Model) Value() float64 {
	return m.slider.Value()
}

// State returns the engine state.
func (m Model) State() slider.State {
	return m.slider.State()
}

// Range returns the active range.
func (m Model) Range() slider.Range {
	return m.slider.Range()
}

// Orientation returns the track axis.
func (m Model) Orientation() slider.Orientation {
	return m.opts.Orientation
}

// Dragging reports whether a drag is in progress.
func (m Model) Dragging() bool {
	return m.slider.Dragging()
}

// Disabled reports whether pointer input is ignored.
func (m Model) Disabled() bool {
	return m.slider.Disabled()
}

// SetDisabled enables or disables the slider.
func (m Model) SetDisabled(disabled bool) {
	m.slider.SetDisabled(disabled)
}

// SetSize sets the space available to the slider and repositions the
// thumb for the new track length.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.layout.length = m.trackLength()
	m.slider.Relayout()
}

// TrackLength returns the current track length in cells.
func (m Model) TrackLength() int {
	return m.layout.length
}

func (m Model) trackLength() int {
	if m.opts.Length > 0 {
		return m.opts.Length
	}
	var n int
	if m.opts.Orientation == slider.Vertical {
		n = m.Height() - ui.VerticalOverhead
	} else {
		n = m.Width() - m.nameWidth() - m.valueWidth() - 2*ui.LabelGap
	}
	return max(n, ui.MinTrackLength)
}

func (m Model) nameWidth() int {
	if m.opts.NameWidth > 0 {
		return m.opts.NameWidth
	}
	return runewidth.StringWidth(m.id)
}

func (m Model) valueWidth() int {
	return render.ValueWidth(m.slider.Range())
}

// Label returns the current value formatted for display.
func (m Model) Label() string {
	return render.Value(m.slider.Value(), m.slider.Range())
}
