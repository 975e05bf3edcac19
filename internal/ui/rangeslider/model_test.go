package rangeslider

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/rangeslider/internal/errmsg"
	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui/action"
	"github.com/llehouerou/rangeslider/internal/ui/testutil"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

// fixedGeometry places the track at known screen cells.
type fixedGeometry struct {
	bounds   slider.Bounds
	vertical bool
	line     int // row of a horizontal track, column of a vertical one
}

func (g fixedGeometry) TrackBounds(slider.Orientation) slider.Bounds { return g.bounds }
func (g fixedGeometry) ThumbOffset() float64                       { return 0 }

func (g fixedGeometry) Hit(x, y int) bool {
	along, across := x, y
	if g.vertical {
		along, across = y, x
	}
	return across == g.line &&
		along >= int(g.bounds.Start)-hitMargin &&
		along <= int(g.bounds.End)+hitMargin
}

// horizontalAt10 is a 20-cell track on row 0 starting at column 10.
var horizontalAt10 = fixedGeometry{bounds: slider.Bounds{Start: 10, End: 29}}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Range == (slider.Range{}) {
		opts.Range = slider.Range{Min: 0, Max: 100, Step: 1, Start: 50}
	}
	if opts.Geometry == nil {
		opts.Geometry = horizontalAt10
		opts.Length = 20
	}
	m, err := New("demo", opts)
	require.NoError(t, err)
	return m
}

func collect(msgs []tea.Msg) (changes []Changed, diags []Diagnostic) {
	for _, msg := range msgs {
		am, ok := msg.(action.Msg)
		if !ok {
			continue
		}
		switch a := am.Action.(type) {
		case Changed:
			changes = append(changes, a)
		case Diagnostic:
			diags = append(diags, a)
		}
	}
	return changes, diags
}

func TestNew(t *testing.T) {
	m := newTestModel(t, Options{})

	assert.Equal(t, "demo", m.ID())
	assert.Equal(t, 50.0, m.Value())
	assert.Equal(t, 10.0, m.State().Position)
	assert.False(t, m.Dragging())
	assert.Equal(t, DefaultThumb, m.opts.Thumb)
}

func TestNew_InvalidRange(t *testing.T) {
	_, err := New("bad", Options{Range: slider.Range{Min: 1, Max: 0, Step: 1}, Geometry: horizontalAt10})

	require.ErrorIs(t, err, slider.ErrInvalidRange)
}

func TestMouse_PressDragRelease(t *testing.T) {
	h := testutil.NewHarness(newTestModel(t, Options{}))

	h.Press(10, 0)
	assert.True(t, h.Model().Dragging())
	h.Drag(29, 0)
	h.Drag(40, 0)
	h.Release(40, 0)

	changes, diags := collect(h.Messages())
	assert.Empty(t, diags)
	assert.Equal(t, []Changed{
		{Value: 0, TriggeredByUser: true},
		{Value: 100, TriggeredByUser: false},
	}, changes)
	assert.False(t, h.Model().Dragging())
	assert.Equal(t, 100.0, h.Model().Value())
}

func TestMouse_IgnoredInput(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
	}{
		{
			name: "press outside hit area",
			msg:  testutil.Mouse(5, 0, tea.MouseActionPress),
		},
		{
			name: "press on another row",
			msg:  testutil.Mouse(15, 1, tea.MouseActionPress),
		},
		{
			name: "right button",
			msg:  tea.MouseMsg{X: 15, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		},
		{
			name: "wheel",
			msg:  tea.MouseMsg{X: 15, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
		},
		{
			name: "motion without press",
			msg:  testutil.Mouse(15, 0, tea.MouseActionMotion),
		},
		{
			name: "release without press",
			msg:  tea.MouseMsg{X: 15, Y: 0, Action: tea.MouseActionRelease},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testutil.NewHarness(newTestModel(t, Options{}))

			cmd := h.SendMsg(tt.msg)

			assert.Nil(t, cmd)
			assert.False(t, h.Model().Dragging())
			assert.Equal(t, 50.0, h.Model().Value())
		})
	}
}

func TestMouse_PressOnMarginReportsDiagnostic(t *testing.T) {
	h := testutil.NewHarness(newTestModel(t, Options{}))

	h.Press(9, 0)

	changes, diags := collect(h.Messages())
	assert.Empty(t, changes)
	require.Len(t, diags, 1)
	assert.Equal(t, errmsg.OpPointerDown, diags[0].Op)
	require.ErrorIs(t, diags[0].Err, slider.ErrOutOfBounds)
	// The drag still starts; moving onto the track updates the value.
	assert.True(t, h.Model().Dragging())

	h.Drag(12, 0)
	changes, _ = collect(h.Messages())
	require.Len(t, changes, 1)
	assert.InDelta(t, 11.0, changes[0].Value, 1e-9)
}

func TestMouse_NegativeCoordinateIsMissing(t *testing.T) {
	h := testutil.NewHarness(newTestModel(t, Options{}))
	h.Press(15, 0)
	h.ClearCommands()

	h.Drag(-1, 0)

	_, diags := collect(h.Messages())
	require.Len(t, diags, 1)
	assert.Equal(t, errmsg.OpPointerMove, diags[0].Op)
	require.ErrorIs(t, diags[0].Err, slider.ErrMissingCoordinate)
}

func TestMouse_Disabled(t *testing.T) {
	h := testutil.NewHarness(newTestModel(t, Options{Disabled: true}))

	assert.Nil(t, h.Press(15, 0))
	assert.False(t, h.Model().Dragging())

	h.Model().SetDisabled(false)
	h.Press(15, 0)
	assert.True(t, h.Model().Dragging())
}

func TestMouse_DiscreteSnapsThumb(t *testing.T) {
	m := newTestModel(t, Options{
		Range:    slider.Range{Min: 0, Max: 10, Step: 1},
		Mode:     slider.Discrete,
		Geometry: fixedGeometry{bounds: slider.Bounds{Start: 10, End: 30}},
		Length:   21,
	})
	h := testutil.NewHarness(m)

	h.Press(13, 0)

	assert.Equal(t, 2.0, h.Model().Value())
	assert.Equal(t, 4.0, h.Model().State().Position)
}

func TestMouse_Vertical(t *testing.T) {
	m := newTestModel(t, Options{
		Range:       slider.Range{Min: 0, Max: 10, Step: 1},
		Orientation: slider.Vertical,
		Geometry:    fixedGeometry{bounds: slider.Bounds{Start: 2, End: 6}, vertical: true, line: 3},
		Length:      5,
	})
	h := testutil.NewHarness(m)

	h.Press(3, 2)
	assert.Equal(t, 10.0, h.Model().Value())
	h.Drag(3, 6)
	assert.Equal(t, 0.0, h.Model().Value())
	h.Drag(3, 4)
	assert.Equal(t, 5.0, h.Model().Value())
}

func TestSetValue(t *testing.T) {
	m := newTestModel(t, Options{})

	changes, diags := collect(testutil.Flatten(m.SetValue(75)))
	assert.Empty(t, diags)
	assert.Equal(t, []Changed{{Value: 75, TriggeredByUser: true}}, changes)
	assert.Equal(t, 14.0, m.State().Position)

	assert.Nil(t, m.SetValue(75))

	changes, diags = collect(testutil.Flatten(m.SetValue(150)))
	assert.Empty(t, changes)
	require.Len(t, diags, 1)
	assert.Equal(t, errmsg.OpSync, diags[0].Op)
	require.ErrorIs(t, diags[0].Err, slider.ErrOutOfRange)
	assert.Equal(t, 75.0, m.Value())
}

func TestSetValue_IgnoredDuringDrag(t *testing.T) {
	h := testutil.NewHarness(newTestModel(t, Options{}))
	h.Press(20, 0)
	h.ClearCommands()

	assert.Nil(t, h.Model().SetValue(10))
	assert.Equal(t, 53.0, h.Model().Value())
}

func TestSetRange(t *testing.T) {
	m := newTestModel(t, Options{})

	assert.Nil(t, m.SetRange(slider.Range{Min: 0, Max: 10, Step: 0.5}))
	assert.Equal(t, 10.0, m.Value())
	assert.Equal(t, "10.0", m.Label())

	_, diags := collect(testutil.Flatten(m.SetRange(slider.Range{Min: 0, Max: 10, Step: 0})))
	require.Len(t, diags, 1)
	assert.Equal(t, errmsg.OpSetRange, diags[0].Op)
}

func TestKeysAreIgnored(t *testing.T) {
	m := newTestModel(t, Options{})
	m.SetFocused(true)
	h := testutil.NewHarness(m)

	assert.Nil(t, h.SendSpecialKey(tea.KeyRight))
	assert.Equal(t, 50.0, h.Model().Value())
}

func TestSetSize_DerivesTrackLength(t *testing.T) {
	m, err := New("volume", Options{
		Range:     slider.Range{Min: 0, Max: 100, Step: 1},
		NameWidth: 6,
		Geometry:  horizontalAt10,
	})
	require.NoError(t, err)
	assert.Equal(t, defaultLength, m.TrackLength())

	m.SetSize(40, 1)
	// 40 - name 6 - value 3 - two gaps
	assert.Equal(t, 29, m.TrackLength())

	m.SetSize(5, 1)
	assert.Equal(t, 2, m.TrackLength())
}

func TestSetSize_DuringDragAppliesOnRelease(t *testing.T) {
	g := &fixedGeometry{bounds: slider.Bounds{Start: 10, End: 29}}
	h := testutil.NewHarness(newTestModel(t, Options{Geometry: g, Length: 20}))

	h.Press(10, 0)
	h.Drag(20, 0)
	if got := h.Model().Value(); got != 53 {
		t.Fatalf("Value() = %v, want 53", got)
	}

	// The terminal grows mid-drag: the track now spans 10..48.
	g.bounds = slider.Bounds{Start: 10, End: 48}
	m := h.Model()
	m.SetSize(80, 1)
	if got := h.Model().State().Position; got != 10 {
		t.Errorf("Position mid-drag = %v, want 10", got)
	}

	h.Release(20, 0)
	// 53% of 38 cells.
	if got := h.Model().State().Position; got != 20 {
		t.Errorf("Position after release = %v, want 20", got)
	}
	if got := h.Model().Value(); got != 53 {
		t.Errorf("Value() after release = %v, want 53", got)
	}
}

func TestSetSize_Vertical(t *testing.T) {
	m, err := New("gain", Options{
		Range:       slider.Range{Min: 0, Max: 10, Step: 1},
		Orientation: slider.Vertical,
		Geometry:    horizontalAt10,
	})
	require.NoError(t, err)

	m.SetSize(10, 12)

	assert.Equal(t, 10, m.TrackLength())
}

func TestZoneGeometry_BeforeFirstScan(t *testing.T) {
	g := ZoneGeometry{
		id:     zone.NewPrefix() + "unrendered",
		margin: hitMargin,
		length: func() int { return 10 },
	}

	assert.Equal(t, slider.Bounds{Start: 0, End: 9}, g.TrackBounds(slider.Horizontal))
	assert.Zero(t, g.ThumbOffset())
	assert.False(t, g.Hit(0, 0))
}

func TestNew_ZoneGeometryPositionsFromLayout(t *testing.T) {
	m, err := New("zoned", Options{
		Range:  slider.Range{Min: 0, Max: 10, Step: 1, Start: 5},
		Length: 11,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, m.ZoneID())
	assert.Equal(t, 5.0, m.State().Position)
}
