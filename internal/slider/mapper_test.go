package slider

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateToValue(t *testing.T) {
	tests := []struct {
		name   string
		rng    Range
		coord  float64
		want   float64
		start  float64
		end    float64
		hasErr bool
	}{
		{name: "track start", rng: Range{Min: 0, Max: 100, Step: 1}, start: 0, end: 200, coord: 0, want: 0},
		{name: "track end", rng: Range{Min: 0, Max: 100, Step: 1}, start: 0, end: 200, coord: 200, want: 100},
		{name: "middle", rng: Range{Min: 0, Max: 100, Step: 1}, start: 0, end: 200, coord: 100, want: 50},
		{name: "offset track", rng: Range{Min: 0, Max: 100, Step: 1}, start: 40, end: 240, coord: 186, want: 73},
		{name: "negative min", rng: Range{Min: -50, Max: 50, Step: 5}, start: 0, end: 100, coord: 26, want: -25},
		{name: "snaps to step", rng: Range{Min: 0, Max: 10, Step: 2}, start: 0, end: 100, coord: 42, want: 4},
		{name: "decimal step", rng: Range{Min: 0, Max: 10, Step: 0.1}, start: 0, end: 100, coord: 35, want: 3.5},
		{name: "hundredths", rng: Range{Min: 0, Max: 1, Step: 0.01}, start: 0, end: 100, coord: 35, want: 0.35},
		{name: "decimal min", rng: Range{Min: 0.1, Max: 1.1, Step: 0.2}, start: 0, end: 100, coord: 20, want: 0.3},
		{name: "reversed ends", rng: Range{Min: 0, Max: 100, Step: 1}, start: 200, end: 0, coord: 50, want: 75},
		{name: "degenerate", rng: Range{Min: 0, Max: 100, Step: 1}, start: 10, end: 10, coord: 10, hasErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMapper(tt.rng)
			got, err := m.CoordinateToValue(tt.start, tt.end, tt.coord)
			if tt.hasErr {
				assert.ErrorIs(t, err, ErrDegenerateGeometry)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoordinateToValue_Monotonic(t *testing.T) {
	m := NewMapper(Range{Min: 0, Max: 10, Step: 0.5})

	cases := []struct {
		name       string
		track      Track
		increasing bool
	}{
		{name: "horizontal", track: Track{Bounds: Bounds{Start: 0, End: 120}}, increasing: true},
		{name: "horizontal inverted", track: Track{Bounds: Bounds{Start: 0, End: 120}, Mirrored: true}, increasing: false},
		{name: "vertical", track: Track{Bounds: Bounds{Start: 0, End: 120}, Mirrored: mirrored(Vertical, false)}, increasing: false},
		{name: "vertical inverted", track: Track{Bounds: Bounds{Start: 0, End: 120}, Mirrored: mirrored(Vertical, true)}, increasing: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lo, hi := c.track.ValueEnds()
			prev, err := m.CoordinateToValue(lo, hi, 0)
			require.NoError(t, err)
			for coord := 1.0; coord <= 120; coord++ {
				v, err := m.CoordinateToValue(lo, hi, coord)
				require.NoError(t, err)
				if c.increasing {
					assert.GreaterOrEqual(t, v, prev, "coord %v", coord)
				} else {
					assert.LessOrEqual(t, v, prev, "coord %v", coord)
				}
				prev = v
			}
		})
	}
}

func TestCoordinateToValue_StaysNearRange(t *testing.T) {
	// 10 is not a multiple of 4: the last step overshoots before clamping.
	r := Range{Min: 0, Max: 10, Step: 4}
	m := NewMapper(r)
	for coord := 0.0; coord <= 100; coord++ {
		v, err := m.CoordinateToValue(0, 100, coord)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, r.Min-r.Step)
		assert.LessOrEqual(t, v, r.Max+r.Step)
	}
}

func TestValueToPixel(t *testing.T) {
	m := NewMapper(Range{Min: 0, Max: 100, Step: 1})
	track := Track{Bounds: Bounds{Start: 10, End: 210}}

	assert.Equal(t, 0.0, m.ValueToPixel(0, track, 0))
	assert.Equal(t, 100.0, m.ValueToPixel(50, track, 0))
	assert.Equal(t, 200.0, m.ValueToPixel(100, track, 0))
	// Thumb half width and fill offset shift the result.
	assert.Equal(t, 97.0, m.ValueToPixel(50, Track{Bounds: track.Bounds, Offset: 2}, 5))

	mirroredTrack := Track{Bounds: track.Bounds, Mirrored: true}
	assert.Equal(t, 200.0, m.ValueToPixel(0, mirroredTrack, 0))
	assert.Equal(t, 54.0, m.ValueToPixel(73, mirroredTrack, 0))
	assert.Equal(t, 0.0, m.ValueToPixel(100, mirroredTrack, 0))
}

func TestMapper_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		rng       Range
		track     Track
		thumbHalf float64
	}{
		{
			name:  "horizontal tenths",
			rng:   Range{Min: 0, Max: 10, Step: 0.1},
			track: Track{Bounds: Bounds{Start: 100, End: 300}},
		},
		{
			name:      "horizontal with offsets",
			rng:       Range{Min: -20, Max: 20, Step: 2},
			track:     Track{Bounds: Bounds{Start: 5, End: 85}, Offset: 2},
			thumbHalf: 4,
		},
		{
			name:  "vertical",
			rng:   Range{Min: 0, Max: 50, Step: 0.5},
			track: Track{Bounds: Bounds{Start: 0, End: 400}, Mirrored: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMapper(tt.rng)
			lo, hi := tt.track.ValueEnds()
			unit := 1 / m.Precision()
			n := int((tt.rng.Max - tt.rng.Min) / tt.rng.Step)
			for i := 0; i <= n; i++ {
				v := tt.rng.Min + float64(i)*tt.rng.Step
				pos := m.ValueToPixel(v, tt.track, tt.thumbHalf)
				coord := tt.track.Start + pos - tt.track.Offset + tt.thumbHalf
				got, err := m.CoordinateToValue(lo, hi, coord)
				require.NoError(t, err)
				assert.InDelta(t, v, got, unit, "value %v -> pos %v -> %v", v, pos, got)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	b := Bounds{Start: 10, End: 20}
	assert.True(t, b.Contains(10))
	assert.True(t, b.Contains(20))
	assert.False(t, b.Contains(9.5))
	assert.False(t, b.Contains(20.5))
	assert.Equal(t, 10.0, b.Length())
	assert.False(t, b.Degenerate())
	assert.True(t, Bounds{Start: 3, End: 3}.Degenerate())
	assert.True(t, errors.Is(Range{Min: 1, Max: 1, Step: 1, Start: 1}.Validate(), ErrInvalidRange))
}
