package slider

import "fmt"

// Config configures a Slider.
type Config struct {
	Range
	Orientation Orientation
	Mode        Mode
	Inverted    bool
	Disabled    bool
	// ThumbHalfWidth is subtracted from every computed position so the
	// thumb is centered on its value.
	ThumbHalfWidth float64
	OnChange       ChangeFunc
}

// Slider is the drag state machine. It starts idle; PointerDown starts a
// drag session, PointerMove updates it and PointerUp ends it. Sync applies
// externally supplied values between drags.
//
// A Slider is not safe for concurrent use. Hosts drive it from their event
// loop.
type Slider struct {
	cfg     Config
	geom    Geometry
	mapper  Mapper
	state   State
	session *DragSession
	// pending holds a range change requested mid-drag.
	pending *Range
	// stale is set when a relayout was requested mid-drag.
	stale bool
}

// New validates cfg and returns an idle slider holding cfg.Start.
// geom may be nil until the host can measure its track; see SetGeometry.
func New(cfg Config, geom Geometry) (*Slider, error) {
	if err := cfg.Range.Validate(); err != nil {
		return nil, err
	}
	if cfg.ThumbHalfWidth < 0 {
		return nil, fmt.Errorf("thumb half width %v must not be negative", cfg.ThumbHalfWidth)
	}
	s := &Slider{
		cfg:    cfg,
		geom:   geom,
		mapper: NewMapper(cfg.Range),
	}
	s.state = State{
		Value:     cfg.Start,
		Precision: s.mapper.Precision(),
	}
	return s, nil
}

// SetGeometry replaces the geometry provider. An active drag keeps using
// its snapshot.
func (s *Slider) SetGeometry(g Geometry) {
	s.geom = g
}

// SetOnChange replaces the notification sink.
func (s *Slider) SetOnChange(fn ChangeFunc) {
	s.cfg.OnChange = fn
}

// State returns a copy of the current state.
func (s *Slider) State() State {
	return s.state
}

// Value returns the current value.
func (s *Slider) Value() float64 {
	return s.state.Value
}

// Position returns the current thumb position.
func (s *Slider) Position() float64 {
	return s.state.Position
}

// Dragging reports whether a drag session is active.
func (s *Slider) Dragging() bool {
	return s.state.Dragging
}

// Session returns the active drag session, or nil when idle.
func (s *Slider) Session() *DragSession {
	if s.session == nil {
		return nil
	}
	cp := *s.session
	return &cp
}

// Config returns the current configuration.
func (s *Slider) Config() Config {
	return s.cfg
}

// Range returns the active range. A range set during a drag is not
// reported until the drag ends.
func (s *Slider) Range() Range {
	return s.mapper.Range()
}

// Disabled reports whether pointer input is ignored.
func (s *Slider) Disabled() bool {
	return s.cfg.Disabled
}

// SetDisabled enables or disables pointer-down handling. A drag already in
// progress runs to its pointer up.
func (s *Slider) SetDisabled(disabled bool) {
	s.cfg.Disabled = disabled
}

// SetInverted flips the track direction for subsequent sessions and
// repositions the thumb when idle.
func (s *Slider) SetInverted(inverted bool) {
	if s.cfg.Inverted == inverted {
		return
	}
	s.cfg.Inverted = inverted
	s.Relayout()
}

// SetOrientation changes the active axis for subsequent sessions and
// repositions the thumb when idle.
func (s *Slider) SetOrientation(o Orientation) {
	if s.cfg.Orientation == o {
		return
	}
	s.cfg.Orientation = o
	s.Relayout()
}

// SetMode changes how positions follow the pointer. Takes effect on the
// next update.
func (s *Slider) SetMode(m Mode) {
	s.cfg.Mode = m
}

// SetRange replaces the range. Precision is never recomputed mid-drag, so
// during a drag the change is deferred to PointerUp. The current value is
// clamped into the new range without notification.
func (s *Slider) SetRange(r Range) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if s.state.Dragging {
		s.pending = &r
		return nil
	}
	s.applyRange(r)
	return nil
}

func (s *Slider) applyRange(r Range) {
	s.cfg.Range = r
	s.mapper = NewMapper(r)
	s.state.Precision = s.mapper.Precision()
	s.state.Value = r.Clamp(s.state.Value)
	s.Relayout()
}

// Mount positions the thumb for the current value against live geometry.
// It never notifies.
func (s *Slider) Mount() {
	s.Relayout()
}

// Relayout recomputes the thumb position from the value, for example after
// the host resized the track. During a drag it is deferred to PointerUp.
func (s *Slider) Relayout() {
	if s.state.Dragging {
		s.stale = true
		return
	}
	s.stale = false
	t := measure(s.geom, s.cfg.Orientation, s.cfg.Inverted)
	s.state.Position = s.mapper.ValueToPixel(s.state.Value, t, s.cfg.ThumbHalfWidth)
}

// PointerDown starts a drag session. Disabled sliders ignore it entirely.
// The session starts even when the update itself is skipped; the returned
// error says why.
func (s *Slider) PointerDown(p Pointer) error {
	if s.cfg.Disabled {
		return nil
	}
	s.session = &DragSession{
		Orientation: s.cfg.Orientation,
		Track:       measure(s.geom, s.cfg.Orientation, s.cfg.Inverted),
	}
	s.state.Dragging = true
	return s.track(p, true)
}

// PointerMove updates the value from a pointer inside the captured track.
// It is a no-op while idle. Pointers outside the track freeze the state
// without ending the drag.
func (s *Slider) PointerMove(p Pointer) error {
	if !s.state.Dragging || s.session == nil {
		return nil
	}
	return s.track(p, false)
}

// PointerUp ends the drag session. Value and position are kept unless the
// range or the layout changed during the drag.
func (s *Slider) PointerUp() {
	s.state.Dragging = false
	s.session = nil
	switch {
	case s.pending != nil:
		r := *s.pending
		s.pending = nil
		s.applyRange(r)
	case s.stale:
		s.Relayout()
	}
}

// Sync reconciles an externally supplied value. It does nothing during a
// drag or when v is already the current value; values outside the range
// are rejected and leave the state untouched.
func (s *Slider) Sync(v float64) error {
	if s.state.Dragging || v == s.state.Value {
		return nil
	}
	r := s.mapper.Range()
	if !r.Contains(v) {
		return fmt.Errorf("%w: %v outside [%v, %v]", ErrOutOfRange, v, r.Min, r.Max)
	}
	t := measure(s.geom, s.cfg.Orientation, s.cfg.Inverted)
	s.state.Position = s.mapper.ValueToPixel(v, t, s.cfg.ThumbHalfWidth)
	s.setValue(v, true)
	return nil
}

func (s *Slider) track(p Pointer, byUser bool) error {
	coord, ok := p.Along(s.session.Orientation)
	if !ok {
		return fmt.Errorf("%w: no %s coordinate", ErrMissingCoordinate, s.session.Orientation)
	}
	t := s.session.Track
	if t.Degenerate() {
		return fmt.Errorf("%w: track [%v, %v]", ErrDegenerateGeometry, t.Start, t.End)
	}
	if !t.Contains(coord) {
		return fmt.Errorf("%w: %v not in [%v, %v]", ErrOutOfBounds, coord, t.Start, t.End)
	}

	lo, hi := t.ValueEnds()
	v, err := s.mapper.CoordinateToValue(lo, hi, coord)
	if err != nil {
		return err
	}
	if !s.mapper.Range().Contains(v) {
		// The nearest step lies past an end of the range.
		return nil
	}

	switch s.cfg.Mode {
	case Discrete:
		s.state.Position = s.mapper.ValueToPixel(v, t, s.cfg.ThumbHalfWidth)
	default:
		s.state.Position = coord - t.Start - s.cfg.ThumbHalfWidth
	}
	s.setValue(v, byUser)
	return nil
}

func (s *Slider) setValue(v float64, byUser bool) {
	if v == s.state.Value {
		return
	}
	s.state.Value = v
	if s.cfg.OnChange != nil {
		s.cfg.OnChange(v, Meta{TriggeredByUser: byUser})
	}
}
