// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a panel border and
	// its padding.
	BorderWidth = 4

	// MinTrackLength is the shortest track that can still map a drag.
	MinTrackLength = 2

	// LabelGap separates a slider's name, track and value.
	LabelGap = 1

	// VerticalOverhead is the rows used by a vertical slider's name and
	// value labels.
	VerticalOverhead = 2
)
