package slider

import "errors"

// Errors reported for skipped updates. None of them leave the slider in a
// broken state: the last valid value and position are kept.
var (
	// ErrDegenerateGeometry means the track has zero length.
	ErrDegenerateGeometry = errors.New("degenerate track geometry")
	// ErrMissingCoordinate means the pointer event had no coordinate for
	// the active axis.
	ErrMissingCoordinate = errors.New("pointer coordinate missing")
	// ErrOutOfRange means an external value fell outside [min, max].
	ErrOutOfRange = errors.New("value out of range")
	// ErrOutOfBounds means the pointer was outside the captured track.
	ErrOutOfBounds = errors.New("pointer outside track")
	// ErrInvalidRange is returned by Range.Validate.
	ErrInvalidRange = errors.New("invalid range")
)
