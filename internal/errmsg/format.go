// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"

	"github.com/llehouerou/rangeslider/internal/slider"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Pointer handling
	OpPointerDown Op = "start drag"
	OpPointerMove Op = "track pointer"

	// Value reconciliation
	OpSync     Op = "apply external value"
	OpSetRange Op = "change range"

	// Startup
	OpConfigLoad  Op = "load configuration"
	OpSliderBuild Op = "create slider"
	OpLogOpen     Op = "open log file"
	OpInitialize  Op = "initialize application"

	// Clipboard
	OpClipboardCopy Op = "copy value"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Hint returns a short explanation for slider errors, or "" when there is
// nothing more useful to say than the error itself.
func Hint(err error) string {
	switch {
	case errors.Is(err, slider.ErrOutOfBounds):
		return "pointer left the track"
	case errors.Is(err, slider.ErrMissingCoordinate):
		return "pointer event had no position"
	case errors.Is(err, slider.ErrDegenerateGeometry):
		return "track not laid out yet"
	case errors.Is(err, slider.ErrOutOfRange):
		return "value outside slider range"
	case errors.Is(err, slider.ErrInvalidRange):
		return "check min, max, step and start"
	default:
		return ""
	}
}
