package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rangeslider/internal/diag"
)

// waitForChannel creates a command that waits for a value from a channel.
// Returns nil if the channel is nil. The onResult function is called with
// the received value and ok status.
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// WatchDiagnostics returns a command that waits for the next recorded
// diagnostic.
func WatchDiagnostics(rec *diag.Recorder) tea.Cmd {
	if rec == nil {
		return nil
	}
	return waitForChannel(rec.Events(), func(ev diag.Event, ok bool) tea.Msg {
		if !ok {
			return nil // Recorder closed
		}
		return DiagnosticMsg{Event: ev}
	})
}

// copyCmd writes value to the clipboard off the event loop.
func copyCmd(write func(string) error, source, value string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Source: source, Value: value, Err: write(value)}
	}
}
