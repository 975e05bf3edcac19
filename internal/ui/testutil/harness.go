package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Component is a bubbletea model whose Update returns its own concrete type.
type Component[M any] interface {
	Update(msg tea.Msg) (M, tea.Cmd)
	View() string
}

// Harness wraps a component for testing, providing helpers to simulate
// mouse and key input and to inspect the emitted commands.
type Harness[M Component[M]] struct {
	model M
	cmds  []tea.Cmd
}

// NewHarness creates a test harness around model.
func NewHarness[M Component[M]](model M) *Harness[M] {
	return &Harness[M]{model: model}
}

// Model returns the current component state.
func (h *Harness[M]) Model() M {
	return h.model
}

// View returns the component's rendered content without ANSI codes.
func (h *Harness[M]) View() string {
	return StripANSI(h.model.View())
}

// SendMsg sends any message to the component and returns the resulting command.
func (h *Harness[M]) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates a key press by creating a tea.KeyMsg.
func (h *Harness[M]) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (left, right, tab, etc.).
func (h *Harness[M]) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Press sends a left-button press at (x, y).
func (h *Harness[M]) Press(x, y int) tea.Cmd {
	return h.SendMsg(Mouse(x, y, tea.MouseActionPress))
}

// Drag sends a left-button motion event at (x, y).
func (h *Harness[M]) Drag(x, y int) tea.Cmd {
	return h.SendMsg(Mouse(x, y, tea.MouseActionMotion))
}

// Release sends a button release at (x, y).
func (h *Harness[M]) Release(x, y int) tea.Cmd {
	return h.SendMsg(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
}

// Commands returns all commands collected since creation or last ClearCommands.
func (h *Harness[M]) Commands() []tea.Cmd {
	return h.cmds
}

// ClearCommands clears the collected commands.
func (h *Harness[M]) ClearCommands() {
	h.cmds = nil
}

// Messages runs every collected command, flattening batches, and returns
// the produced messages in order. The command list is cleared.
func (h *Harness[M]) Messages() []tea.Msg {
	var msgs []tea.Msg
	for _, cmd := range h.cmds {
		msgs = append(msgs, Flatten(cmd)...)
	}
	h.cmds = nil
	return msgs
}

// Mouse builds a left-button mouse message.
func Mouse(x, y int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

// ExecuteCmd runs a command and returns the resulting message.
// This is useful for testing async command flows.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Flatten runs cmd and returns its messages, descending into batches. Nil commands and nil messages are skipped.
func Flatten(cmd tea.Cmd) []tea.Msg {
	msg := ExecuteCmd(cmd)
	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, Flatten(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}
