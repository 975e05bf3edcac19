package rangeslider

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rangeslider/internal/errmsg"
	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui/action"
)

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles mouse input on the track. Value changes are emitted as
// Changed actions.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.MouseMsg); ok {
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	p := pointerFrom(msg)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.geom.Hit(msg.X, msg.Y) {
			return m, nil
		}
		return m, m.flush(errmsg.OpPointerDown, m.slider.PointerDown(p))

	case tea.MouseActionMotion:
		if !m.slider.Dragging() {
			return m, nil
		}
		err := m.slider.PointerMove(p)
		// Leaving the track mid-drag only freezes the thumb.
		if errors.Is(err, slider.ErrOutOfBounds) {
			err = nil
		}
		return m, m.flush(errmsg.OpPointerMove, err)

	case tea.MouseActionRelease:
		if !m.slider.Dragging() {
			return m, nil
		}
		m.slider.PointerUp()
		return m, m.flush("", nil)
	}
	return m, nil
}

// SetValue applies a value supplied by the program, as a controlled input.
// It is ignored during a drag; out-of-range values produce a Diagnostic.
func (m Model) SetValue(v float64) tea.Cmd {
	return m.flush(errmsg.OpSync, m.slider.Sync(v))
}

// SetRange replaces the range. During a drag the change waits for the
// release.
func (m Model) SetRange(r slider.Range) tea.Cmd {
	if err := m.slider.SetRange(r); err != nil {
		return m.flush(errmsg.OpSetRange, err)
	}
	return nil
}

// flush turns the notifications raised by the last engine call, and err
// when set, into action commands.
func (m Model) flush(op errmsg.Op, err error) tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range m.events.take() {
		cmds = append(cmds, action.Cmd(m.id, c))
	}
	if err != nil {
		cmds = append(cmds, action.Cmd(m.id, Diagnostic{Op: op, Err: err}))
	}
	return tea.Batch(cmds...)
}

// pointerFrom converts a mouse event. Terminals report negative cells
// for positions they cannot resolve, which count as missing.
func pointerFrom(msg tea.MouseMsg) slider.Pointer {
	return slider.Pointer{
		X:    float64(msg.X),
		Y:    float64(msg.Y),
		HasX: msg.X >= 0,
		HasY: msg.Y >= 0,
	}
}
