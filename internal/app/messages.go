package app

import "github.com/llehouerou/rangeslider/internal/diag"

// DiagnosticMsg delivers a recorded diagnostic to the status line.
type DiagnosticMsg struct {
	Event diag.Event
}

// CopiedMsg reports the result of copying a value to the clipboard.
type CopiedMsg struct {
	Source string
	Value  string
	Err    error
}
