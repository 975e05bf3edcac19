package slider

// Bounds is the extent of the track along one axis, in host pixels (or
// cells). Start is the screen-origin side: left for horizontal tracks, top
// for vertical ones.
type Bounds struct {
	Start float64
	End   float64
}

// Length returns the track length.
func (b Bounds) Length() float64 {
	return b.End - b.Start
}

// Degenerate reports whether the track has no length.
func (b Bounds) Degenerate() bool {
	return b.End == b.Start
}

// Contains reports whether coord lies on the track, ends included.
func (b Bounds) Contains(coord float64) bool {
	lo, hi := b.Start, b.End
	if lo > hi {
		lo, hi = hi, lo
	}
	return coord >= lo && coord <= hi
}

// Geometry measures the rendered track. Hosts implement it on top of
// whatever layout information they have.
type Geometry interface {
	// TrackBounds returns the track extent along the orientation's axis.
	TrackBounds(o Orientation) Bounds
	// ThumbOffset returns the fill origin relative to the track origin.
	ThumbOffset() float64
}

// Track is a geometry snapshot along the active axis.
type Track struct {
	Bounds
	Offset float64
	// Mirrored is set when the minimum value sits at End instead of Start.
	Mirrored bool
}

// ValueEnds returns the coordinates where the minimum and maximum values
// lie. Passing them to CoordinateToValue gives the right monotonicity for
// every orientation/inversion combination.
func (t Track) ValueEnds() (lo, hi float64) {
	if t.Mirrored {
		return t.End, t.Start
	}
	return t.Start, t.End
}

// mirrored reports whether the minimum value sits at the far end of the
// screen axis. Vertical tracks grow upward; inversion flips either axis.
func mirrored(o Orientation, inverted bool) bool {
	return (o == Vertical) != inverted
}

func measure(g Geometry, o Orientation, inverted bool) Track {
	if g == nil {
		return Track{Mirrored: mirrored(o, inverted)}
	}
	return Track{
		Bounds:   g.TrackBounds(o),
		Offset:   g.ThumbOffset(),
		Mirrored: mirrored(o, inverted),
	}
}

// DragSession holds what a drag needs across pointer events. It is created
// on pointer down and dropped on pointer up; the track is measured once per
// drag, so layout changes mid-drag are not observed.
type DragSession struct {
	Orientation Orientation
	Track       Track
}

// StaticGeometry is a fixed Geometry, useful for hosts that already know
// their layout and for tests.
type StaticGeometry struct {
	Horizontal Bounds
	Vertical   Bounds
	Offset     float64
}

// TrackBounds implements Geometry.
func (g StaticGeometry) TrackBounds(o Orientation) Bounds {
	if o == Vertical {
		return g.Vertical
	}
	return g.Horizontal
}

// ThumbOffset implements Geometry.
func (g StaticGeometry) ThumbOffset() float64 {
	return g.Offset
}
