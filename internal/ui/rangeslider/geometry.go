package rangeslider

import (
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/rangeslider/internal/slider"
)

// Geometry measures a rendered slider for the drag engine and decides
// which presses start a drag.
type Geometry interface {
	slider.Geometry
	// Hit reports whether a press at screen cell (x, y) belongs to the
	// slider.
	Hit(x, y int) bool
}

// ZoneGeometry measures the track through its bubblezone marker. The
// track length comes from the model's own layout so positions are right
// before the first scan; the zone only supplies the screen origin.
type ZoneGeometry struct {
	id          string
	orientation slider.Orientation
	// margin widens the hit area along the track axis.
	margin int
	length func() int
}

func (g ZoneGeometry) info() *zone.ZoneInfo {
	z := zone.Get(g.id)
	if z == nil || z.IsZero() {
		return nil
	}
	return z
}

// TrackBounds implements slider.Geometry. The fill starts at the track
// origin, so bounds run from the first to the last track cell.
func (g ZoneGeometry) TrackBounds(o slider.Orientation) slider.Bounds {
	n := g.length()
	start := 0
	if z := g.info(); z != nil {
		if o == slider.Vertical {
			start = z.StartY
		} else {
			start = z.StartX
		}
	}
	return slider.Bounds{Start: float64(start), End: float64(start + n - 1)}
}

// ThumbOffset implements slider.Geometry.
func (g ZoneGeometry) ThumbOffset() float64 {
	return 0
}

// Hit implements Geometry.
func (g ZoneGeometry) Hit(x, y int) bool {
	z := g.info()
	if z == nil {
		return false
	}
	if g.orientation == slider.Vertical {
		return x >= z.StartX && x <= z.EndX && y >= z.StartY-g.margin && y <= z.EndY+g.margin
	}
	return x >= z.StartX-g.margin && x <= z.EndX+g.margin && y >= z.StartY && y <= z.EndY
}
