package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rangeslider/internal/errmsg"
	"github.com/llehouerou/rangeslider/internal/ui/action"
	"github.com/llehouerou/rangeslider/internal/ui/rangeslider"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case action.Msg:
		cmd := m.handleSliderAction(msg)
		return m, cmd

	case DiagnosticMsg:
		m.Status = msg.Event.String()
		m.StatusErr = true
		return m, WatchDiagnostics(m.Diag)

	case CopiedMsg:
		if msg.Err != nil {
			m.Diag.Record(msg.Source, errmsg.OpClipboardCopy, msg.Err)
			return m, nil
		}
		m.Status = "copied " + msg.Source + " = " + msg.Value
		m.StatusErr = false
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.Keys.NextFocus):
		m.setFocus(m.Focus + 1)
		return m, nil
	case key.Matches(msg, m.Keys.PrevFocus):
		m.setFocus(m.Focus - 1)
		return m, nil
	case key.Matches(msg, m.Keys.Reset):
		return m, m.reset()
	}

	s, ok := m.focused()
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.Keys.Disable):
		s.SetDisabled(!s.Disabled())
		state := "enabled"
		if s.Disabled() {
			state = "disabled"
		}
		m.Status = s.ID() + " " + state
		m.StatusErr = false
		return m, nil
	case key.Matches(msg, m.Keys.Copy):
		return m, copyCmd(m.Clipboard, s.ID(), s.Label())
	}
	return m, nil
}

// handleMouse offers the event to every slider. A slider that starts
// dragging takes keyboard focus.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i := range m.Sliders {
		wasDragging := m.Sliders[i].Dragging()
		var cmd tea.Cmd
		m.Sliders[i], cmd = m.Sliders[i].Update(msg)
		cmds = append(cmds, cmd)
		if !wasDragging && m.Sliders[i].Dragging() {
			m.setFocus(i)
		}
	}
	return m, tea.Batch(cmds...)
}

// reset returns every slider to its configured start value.
func (m Model) reset() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.Sliders))
	for i := range m.Sliders {
		cmds = append(cmds, m.Sliders[i].SetValue(m.starts[i]))
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleSliderAction(msg action.Msg) tea.Cmd {
	switch a := msg.Action.(type) {
	case rangeslider.Changed:
		m.Logger.Debug("value changed",
			"slider", msg.Source,
			"value", a.Value,
			"user", a.TriggeredByUser,
		)
		if i, ok := m.index(msg.Source); ok {
			m.Status = msg.Source + " = " + m.Sliders[i].Label()
			m.StatusErr = false
		}
		return m.syncLinked(msg.Source, a.Value)

	case rangeslider.Diagnostic:
		m.Diag.Record(msg.Source, a.Op, a.Err)
	}
	return nil
}

// syncLinked pushes value to every other slider sharing source's link
// group. Each linked slider reports its own change, which settles once
// every member holds the value.
func (m *Model) syncLinked(source string, value float64) tea.Cmd {
	i, ok := m.index(source)
	if !ok || m.linkOf[i] == "" {
		return nil
	}
	var cmds []tea.Cmd
	for _, j := range m.Links[m.linkOf[i]] {
		if j == i {
			continue
		}
		cmds = append(cmds, m.Sliders[j].SetValue(value))
	}
	return tea.Batch(cmds...)
}
