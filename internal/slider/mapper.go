package slider

import (
	"fmt"
	"math"
)

// Mapper converts between pointer coordinates, values and thumb positions
// for one Range. It is a value type; a new Mapper is built whenever the
// range changes.
type Mapper struct {
	rng       Range
	precision float64
	// final rounds the "+ min" result; min may carry more digits than step.
	final float64
}

// NewMapper builds a mapper for r. The range is assumed valid.
func NewMapper(r Range) Mapper {
	p := Precision(r.Step)
	return Mapper{
		rng:       r,
		precision: p,
		final:     max(p, Precision(r.Min)),
	}
}

// Range returns the mapped range.
func (m Mapper) Range() Range {
	return m.rng
}

// Precision returns the step-derived rounding factor.
func (m Mapper) Precision() float64 {
	return m.precision
}

// CoordinateToValue maps coordinate on a track running from trackStart
// (minimum value) to trackEnd (maximum value) onto the step grid. The
// result is not clamped; callers clamp before storing.
func (m Mapper) CoordinateToValue(trackStart, trackEnd, coordinate float64) (float64, error) {
	if trackEnd == trackStart {
		return 0, fmt.Errorf("%w: track [%v, %v]", ErrDegenerateGeometry, trackStart, trackEnd)
	}
	ratio := (coordinate - trackStart) / (trackEnd - trackStart)
	steps := math.Round(ratio * (m.rng.Max - m.rng.Min) / m.rng.Step)
	// 35 * 0.01 is 0.35000000000000003 in binary floating point.
	rounded := roundTo(steps*m.rng.Step, m.precision)
	return roundTo(rounded+m.rng.Min, m.final), nil
}

// ValueToPixel returns the thumb position for value, measured from the
// track's screen origin.
func (m Mapper) ValueToPixel(value float64, t Track, thumbHalfWidth float64) float64 {
	ratio := (value - m.rng.Min) / (m.rng.Max - m.rng.Min)
	if t.Mirrored {
		ratio = 1 - ratio
	}
	return math.Round(ratio*math.Abs(t.Length())) + t.Offset - thumbHalfWidth
}
