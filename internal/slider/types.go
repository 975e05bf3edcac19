package slider

import (
	"fmt"
	"math"
)

// Orientation selects the axis the track runs along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Mode controls how the thumb position follows the pointer during a drag.
type Mode int

const (
	// Continuous places the thumb under the pointer; only the value snaps.
	Continuous Mode = iota
	// Discrete snaps the thumb to the step grid on every update.
	Discrete
)

func (m Mode) String() string {
	switch m {
	case Continuous:
		return "continuous"
	case Discrete:
		return "discrete"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Range is the numeric domain of a slider.
type Range struct {
	Min   float64
	Max   float64
	Step  float64
	Start float64
}

// Validate reports whether the range can drive a slider.
func (r Range) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"min", r.Min}, {"max", r.Max}, {"step", r.Step}, {"start", r.Start}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidRange, f.name)
		}
	}
	if r.Step <= 0 {
		return fmt.Errorf("%w: step %v must be positive", ErrInvalidRange, r.Step)
	}
	if r.Min >= r.Max {
		return fmt.Errorf("%w: min %v must be below max %v", ErrInvalidRange, r.Min, r.Max)
	}
	if !r.Contains(r.Start) {
		return fmt.Errorf("%w: start %v outside [%v, %v]", ErrInvalidRange, r.Start, r.Min, r.Max)
	}
	return nil
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	return max(r.Min, min(r.Max, v))
}

// Meta accompanies every value-change notification.
type Meta struct {
	// TriggeredByUser is true for pointer-down and externally synced
	// changes, false for changes produced while the pointer moves.
	TriggeredByUser bool
}

// ChangeFunc receives accepted value changes. It must not call back into
// the slider that invoked it.
type ChangeFunc func(value float64, meta Meta)

// State is the observable slider state.
type State struct {
	Value     float64
	Position  float64 // thumb offset from the track's screen origin
	Precision float64
	Dragging  bool
}

// Pointer is a device coordinate. An axis without data is reported as
// missing rather than guessed.
type Pointer struct {
	X, Y       float64
	HasX, HasY bool
}

// At returns a pointer with both coordinates present.
func At(x, y float64) Pointer {
	return Pointer{X: x, Y: y, HasX: true, HasY: true}
}

// Along returns the coordinate for the given axis.
func (p Pointer) Along(o Orientation) (float64, bool) {
	if o == Vertical {
		return p.Y, p.HasY
	}
	return p.X, p.HasX
}
