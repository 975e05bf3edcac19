package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Slider parts
	Track    lipgloss.Color // Empty track
	TrackInv lipgloss.Color // Empty track on the inverted palette
	Thumb    lipgloss.Color // Thumb glyph
	Disabled lipgloss.Color // Fill and thumb of a disabled slider

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Borders
	Border       lipgloss.Color // Idle slider panels
	BorderActive lipgloss.Color // Slider being dragged

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	Title   lipgloss.Style // Slider names
	Value   lipgloss.Style // Value labels
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Track:    lipgloss.Color("#3a3a3a"),
	TrackInv: lipgloss.Color("#6b6b6b"),
	Thumb:    lipgloss.Color("#f0f0f0"),
	Disabled: lipgloss.Color("#585858"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	// Borders
	Border:       lipgloss.Color("#585858"),
	BorderActive: lipgloss.Color("#a78bfa"),

	// Status
	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Value:   lipgloss.NewStyle().Foreground(t.FgBase).Bold(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// palette maps color names to their normal and inverted fill colors.
var palette = map[string][2]lipgloss.Color{
	"red":    {"#db2828", "#ff695e"},
	"orange": {"#f2711c", "#ff851b"},
	"yellow": {"#fbbd08", "#ffe21f"},
	"olive":  {"#b5cc18", "#d9e778"},
	"green":  {"#21ba45", "#2ecc40"},
	"teal":   {"#00b5ad", "#6dffff"},
	"blue":   {"#2185d0", "#54c8ff"},
	"violet": {"#6435c9", "#a291fb"},
	"purple": {"#a333c8", "#dc73ff"},
	"pink":   {"#e03997", "#ff8edf"},
	"brown":  {"#a5673f", "#d67c1c"},
	"grey":   {"#767676", "#dcddde"},
	"black":  {"#1b1c1d", "#545454"},
}

// DefaultColor is the fill color name used when none is configured.
const DefaultColor = "red"

// Fill returns the fill color for a named color. Unknown names fall back to
// DefaultColor; "#rrggbb" values are used as is.
func Fill(name string, inverted bool) lipgloss.Color {
	name = strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		return lipgloss.Color(name)
	}
	pair, ok := palette[name]
	if !ok {
		pair = palette[DefaultColor]
	}
	if inverted {
		return pair[1]
	}
	return pair[0]
}

// TrackColor returns the empty-track color for the palette.
func (t *Theme) TrackColor(inverted bool) lipgloss.Color {
	if inverted {
		return t.TrackInv
	}
	return t.Track
}
